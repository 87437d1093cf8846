package repository

import (
	"database/sql"
	"fmt"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

type huespedRepository struct {
	db *sql.DB
}

// NewHuespedRepository crea una nueva instancia del repositorio de huéspedes
func NewHuespedRepository(db *sql.DB) domain.HuespedRepository {
	return &huespedRepository{db: db}
}

// GetAll implementa domain.HuespedRepository
func (r *huespedRepository) GetAll() ([]domain.Huesped, error) {
	query := `
		SELECT id, nombre, apellido, telefono, email, password
		FROM huespedes
		ORDER BY id;`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al consultar huéspedes: %w", err)
	}
	defer rows.Close()

	var huespedes []domain.Huesped
	for rows.Next() {
		var h domain.Huesped
		if err := rows.Scan(&h.ID, &h.Nombre, &h.Apellido, &h.Telefono, &h.Email, &h.PasswordHash); err != nil {
			return nil, fmt.Errorf("error al leer huésped: %w", err)
		}
		huespedes = append(huespedes, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar huéspedes: %w", err)
	}

	return huespedes, nil
}

// GetByID implementa domain.HuespedRepository
func (r *huespedRepository) GetByID(id int) (*domain.Huesped, error) {
	query := `
		SELECT id, nombre, apellido, telefono, email, password
		FROM huespedes
		WHERE id = $1;`

	var h domain.Huesped
	err := r.db.QueryRow(query, id).Scan(&h.ID, &h.Nombre, &h.Apellido, &h.Telefono, &h.Email, &h.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al consultar huésped: %w", err)
	}

	return &h, nil
}

// GetByTelefono busca un huésped por su número de teléfono. Devuelve
// (nil, nil) cuando no existe.
func (r *huespedRepository) GetByTelefono(telefono string) (*domain.Huesped, error) {
	query := `
		SELECT id, nombre, apellido, telefono, email, password
		FROM huespedes
		WHERE telefono = $1;`

	var h domain.Huesped
	err := r.db.QueryRow(query, telefono).Scan(&h.ID, &h.Nombre, &h.Apellido, &h.Telefono, &h.Email, &h.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar huésped por teléfono: %w", err)
	}

	return &h, nil
}

// Create implementa domain.HuespedRepository
func (r *huespedRepository) Create(h *domain.Huesped) (int, error) {
	var newID int
	err := r.db.QueryRow(
		`INSERT INTO huespedes (nombre, apellido, telefono, email, password)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		h.Nombre, h.Apellido, h.Telefono, h.Email, h.PasswordHash,
	).Scan(&newID)
	if err != nil {
		if traducirError(err) == domain.ErrDuplicado {
			return 0, domain.ErrDuplicado
		}
		return 0, fmt.Errorf("error al insertar huésped: %w", err)
	}
	return newID, nil
}

// Update implementa domain.HuespedRepository
func (r *huespedRepository) Update(h *domain.Huesped) error {
	res, err := r.db.Exec(
		`UPDATE huespedes SET nombre=$1, apellido=$2, telefono=$3, email=$4 WHERE id=$5`,
		h.Nombre, h.Apellido, h.Telefono, h.Email, h.ID,
	)
	if err != nil {
		if traducirError(err) == domain.ErrDuplicado {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("error al actualizar huésped: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar actualización: %w", err)
	}
	if filas == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}
