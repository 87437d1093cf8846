package repository

import (
	"database/sql"
	"fmt"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

type habitacionRepository struct {
	db *sql.DB
}

// NewHabitacionRepository crea una nueva instancia del repositorio de habitaciones
func NewHabitacionRepository(db *sql.DB) domain.HabitacionRepository {
	return &habitacionRepository{db: db}
}

// GetAll implementa domain.HabitacionRepository
func (r *habitacionRepository) GetAll() ([]domain.Habitacion, error) {
	query := `
		SELECT id, numero, tipo, precio, estado
		FROM habitaciones
		ORDER BY numero;`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al consultar habitaciones: %w", err)
	}
	defer rows.Close()

	var habitaciones []domain.Habitacion
	for rows.Next() {
		var h domain.Habitacion
		if err := rows.Scan(&h.ID, &h.Numero, &h.Tipo, &h.Precio, &h.Estado); err != nil {
			return nil, fmt.Errorf("error al leer habitación: %w", err)
		}
		habitaciones = append(habitaciones, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar habitaciones: %w", err)
	}

	return habitaciones, nil
}

// GetByID implementa domain.HabitacionRepository
func (r *habitacionRepository) GetByID(id int) (*domain.Habitacion, error) {
	query := `
		SELECT id, numero, tipo, precio, estado
		FROM habitaciones
		WHERE id = $1;`

	var h domain.Habitacion
	err := r.db.QueryRow(query, id).Scan(&h.ID, &h.Numero, &h.Tipo, &h.Precio, &h.Estado)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al consultar habitación: %w", err)
	}

	return &h, nil
}

// GetDisponibles devuelve las habitaciones listas para reservar
func (r *habitacionRepository) GetDisponibles() ([]domain.Habitacion, error) {
	query := `
		SELECT id, numero, tipo, precio, estado
		FROM habitaciones
		WHERE estado = $1
		ORDER BY numero;`

	rows, err := r.db.Query(query, domain.HabitacionDisponible)
	if err != nil {
		return nil, fmt.Errorf("error al consultar habitaciones disponibles: %w", err)
	}
	defer rows.Close()

	var habitaciones []domain.Habitacion
	for rows.Next() {
		var h domain.Habitacion
		if err := rows.Scan(&h.ID, &h.Numero, &h.Tipo, &h.Precio, &h.Estado); err != nil {
			return nil, fmt.Errorf("error al leer habitación disponible: %w", err)
		}
		habitaciones = append(habitaciones, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar habitaciones disponibles: %w", err)
	}

	return habitaciones, nil
}

// Create implementa domain.HabitacionRepository
func (r *habitacionRepository) Create(h *domain.Habitacion) (int, error) {
	var newID int
	err := r.db.QueryRow(
		`INSERT INTO habitaciones (numero, tipo, precio, estado) VALUES ($1,$2,$3,$4) RETURNING id`,
		h.Numero, h.Tipo, h.Precio, h.Estado,
	).Scan(&newID)
	if err != nil {
		if e := traducirError(err); e == domain.ErrDuplicado {
			return 0, e
		}
		return 0, fmt.Errorf("error al insertar habitación: %w", err)
	}
	return newID, nil
}

// Update implementa domain.HabitacionRepository
func (r *habitacionRepository) Update(h *domain.Habitacion) error {
	res, err := r.db.Exec(
		`UPDATE habitaciones SET numero=$1, tipo=$2, precio=$3, estado=$4 WHERE id=$5`,
		h.Numero, h.Tipo, h.Precio, h.Estado, h.ID,
	)
	if err != nil {
		if e := traducirError(err); e == domain.ErrDuplicado {
			return e
		}
		return fmt.Errorf("error al actualizar habitación: %w", err)
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

// CambiarEstado cambia únicamente el estado de la habitación. Lo usa el flujo
// administrativo (mantenimiento, fin de limpieza); el ledger de reservaciones
// hace sus propios cambios de estado dentro de su transacción.
func (r *habitacionRepository) CambiarEstado(id int, estado domain.EstadoHabitacion) error {
	res, err := r.db.Exec(`UPDATE habitaciones SET estado=$1 WHERE id=$2`, estado, id)
	if err != nil {
		return fmt.Errorf("error al cambiar estado de habitación: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar cambio de estado: %w", err)
	}
	if filas == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}

// Delete implementa domain.HabitacionRepository. La eliminación falla con
// ErrConflicto mientras exista una reservación activa que referencie la
// habitación.
func (r *habitacionRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var activas int
	err = tx.QueryRow(
		`SELECT COUNT(*) FROM reservaciones WHERE habitacion_id = $1 AND estado = $2`,
		id, domain.ReservacionActiva,
	).Scan(&activas)
	if err != nil {
		return fmt.Errorf("error al verificar reservaciones activas: %w", err)
	}
	if activas > 0 {
		err = domain.ErrConflicto
		return err
	}

	var res sql.Result
	res, err = tx.Exec(`DELETE FROM habitaciones WHERE id = $1`, id)
	if err != nil {
		if traducirError(err) == domain.ErrConflicto {
			err = domain.ErrConflicto
			return err
		}
		return fmt.Errorf("error al eliminar habitación: %w", err)
	}

	var filas int64
	filas, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if filas == 0 {
		err = domain.ErrNoEncontrado
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar transacción: %w", err)
	}
	return nil
}
