package repository

import (
	"database/sql"
	"fmt"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

type empleadoRepository struct {
	db *sql.DB
}

// NewEmpleadoRepository crea una nueva instancia del repositorio de empleados
func NewEmpleadoRepository(db *sql.DB) domain.EmpleadoRepository {
	return &empleadoRepository{db: db}
}

// GetAll implementa domain.EmpleadoRepository
func (r *empleadoRepository) GetAll() ([]domain.Empleado, error) {
	query := `
		SELECT id, nombre, apellido, puesto, telefono, usuario, password, privilegio
		FROM empleados
		ORDER BY id;`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al consultar empleados: %w", err)
	}
	defer rows.Close()

	var empleados []domain.Empleado
	for rows.Next() {
		var e domain.Empleado
		if err := rows.Scan(&e.ID, &e.Nombre, &e.Apellido, &e.Puesto, &e.Telefono, &e.Usuario, &e.PasswordHash, &e.Privilegio); err != nil {
			return nil, fmt.Errorf("error al leer empleado: %w", err)
		}
		empleados = append(empleados, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar empleados: %w", err)
	}

	return empleados, nil
}

// GetByID implementa domain.EmpleadoRepository
func (r *empleadoRepository) GetByID(id int) (*domain.Empleado, error) {
	query := `
		SELECT id, nombre, apellido, puesto, telefono, usuario, password, privilegio
		FROM empleados
		WHERE id = $1;`

	var e domain.Empleado
	err := r.db.QueryRow(query, id).Scan(
		&e.ID, &e.Nombre, &e.Apellido, &e.Puesto, &e.Telefono, &e.Usuario, &e.PasswordHash, &e.Privilegio,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al consultar empleado: %w", err)
	}

	return &e, nil
}

// GetByUsuario busca un empleado por su nombre de usuario. Devuelve (nil, nil)
// cuando no existe: en el flujo de login la ausencia no es un error.
func (r *empleadoRepository) GetByUsuario(usuario string) (*domain.Empleado, error) {
	query := `
		SELECT id, nombre, apellido, puesto, telefono, usuario, password, privilegio
		FROM empleados
		WHERE usuario = $1;`

	var e domain.Empleado
	err := r.db.QueryRow(query, usuario).Scan(
		&e.ID, &e.Nombre, &e.Apellido, &e.Puesto, &e.Telefono, &e.Usuario, &e.PasswordHash, &e.Privilegio,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar empleado por usuario: %w", err)
	}

	return &e, nil
}

// Create implementa domain.EmpleadoRepository
func (r *empleadoRepository) Create(e *domain.Empleado) (int, error) {
	var newID int
	err := r.db.QueryRow(
		`INSERT INTO empleados (nombre, apellido, puesto, telefono, usuario, password, privilegio)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		e.Nombre, e.Apellido, e.Puesto, e.Telefono, e.Usuario, e.PasswordHash, e.Privilegio,
	).Scan(&newID)
	if err != nil {
		if traducirError(err) == domain.ErrDuplicado {
			return 0, domain.ErrDuplicado
		}
		return 0, fmt.Errorf("error al insertar empleado: %w", err)
	}
	return newID, nil
}

// Update actualiza los datos de un empleado. La contraseña no se toca aquí:
// el alta y el cambio de contraseña pasan por el servicio de credenciales.
func (r *empleadoRepository) Update(e *domain.Empleado) error {
	res, err := r.db.Exec(
		`UPDATE empleados SET nombre=$1, apellido=$2, puesto=$3, telefono=$4, privilegio=$5 WHERE id=$6`,
		e.Nombre, e.Apellido, e.Puesto, e.Telefono, e.Privilegio, e.ID,
	)
	if err != nil {
		if traducirError(err) == domain.ErrDuplicado {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("error al actualizar empleado: %w", err)
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

// Delete implementa domain.EmpleadoRepository
func (r *empleadoRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM empleados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error al eliminar empleado: %w", err)
	}

	filas, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar eliminación: %w", err)
	}
	if filas == 0 {
		return domain.ErrNoEncontrado
	}
	return nil
}
