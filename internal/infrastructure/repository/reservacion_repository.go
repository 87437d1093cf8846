package repository

import (
	"database/sql"
	"fmt"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

type reservacionRepository struct {
	db *sql.DB
}

// NewReservacionRepository crea una nueva instancia del repositorio de
// reservaciones. Es el único componente que escribe en reservaciones o mueve
// una habitación entre ocupada/limpieza/disponible.
func NewReservacionRepository(db *sql.DB) domain.ReservacionRepository {
	return &reservacionRepository{db: db}
}

// GetAll implementa domain.ReservacionRepository
func (r *reservacionRepository) GetAll() ([]domain.ReservacionDetalle, error) {
	query := `
		SELECT r.id,
		       r.huesped_id,
		       h.nombre || ' ' || h.apellido AS huesped_nombre,
		       r.habitacion_id,
		       hab.numero,
		       hab.tipo,
		       r.fecha_entrada,
		       r.fecha_salida,
		       r.estado,
		       r.total
		FROM reservaciones r
		         JOIN huespedes h ON r.huesped_id = h.id
		         JOIN habitaciones hab ON r.habitacion_id = hab.id
		ORDER BY r.fecha_entrada DESC;`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al consultar reservaciones: %w", err)
	}
	defer rows.Close()

	var reservaciones []domain.ReservacionDetalle
	for rows.Next() {
		var d domain.ReservacionDetalle
		err := rows.Scan(
			&d.ID,
			&d.HuespedID,
			&d.HuespedNombre,
			&d.HabitacionID,
			&d.HabitacionNumero,
			&d.HabitacionTipo,
			&d.FechaEntrada,
			&d.FechaSalida,
			&d.Estado,
			&d.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("error al leer reservación: %w", err)
		}
		reservaciones = append(reservaciones, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error al iterar reservaciones: %w", err)
	}

	return reservaciones, nil
}

// GetByID implementa domain.ReservacionRepository
func (r *reservacionRepository) GetByID(id int) (*domain.Reservacion, error) {
	query := `
		SELECT id, huesped_id, habitacion_id, fecha_entrada, fecha_salida, total, estado
		FROM reservaciones
		WHERE id = $1;`

	var res domain.Reservacion
	err := r.db.QueryRow(query, id).Scan(
		&res.ID, &res.HuespedID, &res.HabitacionID, &res.FechaEntrada, &res.FechaSalida, &res.Total, &res.Estado,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al consultar reservación: %w", err)
	}

	return &res, nil
}

// Crear inserta la reservación y marca la habitación como ocupada en una sola
// transacción. La fila de la habitación se bloquea primero con FOR UPDATE
// para que la verificación de disponibilidad y el cambio de estado sean
// atómicos frente a otra conexión.
func (r *reservacionRepository) Crear(res *domain.Reservacion) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var estado domain.EstadoHabitacion
	err = tx.QueryRow(
		`SELECT estado FROM habitaciones WHERE id = $1 FOR UPDATE`,
		res.HabitacionID,
	).Scan(&estado)
	if err == sql.ErrNoRows {
		err = domain.ErrNoEncontrado
		return 0, err
	}
	if err != nil {
		return 0, fmt.Errorf("error al bloquear habitación: %w", err)
	}
	if estado != domain.HabitacionDisponible {
		err = domain.ErrConflicto
		return 0, err
	}

	var newID int
	err = tx.QueryRow(
		`INSERT INTO reservaciones (huesped_id, habitacion_id, fecha_entrada, fecha_salida, total, estado)
		 VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		res.HuespedID, res.HabitacionID, res.FechaEntrada, res.FechaSalida, res.Total, domain.ReservacionActiva,
	).Scan(&newID)
	if err != nil {
		// El índice único parcial sobre (habitacion_id) WHERE estado='activa'
		// convierte una doble reserva en violación de unicidad.
		if e := traducirError(err); e == domain.ErrDuplicado || e == domain.ErrConflicto {
			err = domain.ErrConflicto
			return 0, err
		}
		return 0, fmt.Errorf("error al insertar reservación: %w", err)
	}

	if _, err = tx.Exec(
		`UPDATE habitaciones SET estado=$1 WHERE id=$2`,
		domain.HabitacionOcupada, res.HabitacionID,
	); err != nil {
		return 0, fmt.Errorf("error al ocupar habitación: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("error al confirmar reservación: %w", err)
	}

	res.ID = newID
	res.Estado = domain.ReservacionActiva
	return newID, nil
}

// Finalizar hace el check-out: la reservación pasa a finalizada y su
// habitación a limpieza, en una sola transacción.
func (r *reservacionRepository) Finalizar(id int) error {
	return r.transicionar(id, domain.ReservacionFinalizada, domain.HabitacionLimpieza)
}

// Cancelar anula la reservación y devuelve su habitación a disponible, en una
// sola transacción.
func (r *reservacionRepository) Cancelar(id int) error {
	return r.transicionar(id, domain.ReservacionCancelada, domain.HabitacionDisponible)
}

// transicionar cierra una reservación activa con el estado destino indicado y
// deja la habitación en el estado correspondiente. Ambas escrituras se
// confirman juntas o ninguna.
func (r *reservacionRepository) transicionar(id int, estadoReserva domain.EstadoReservacion, estadoHabitacion domain.EstadoHabitacion) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var habitacionID int
	var estadoActual domain.EstadoReservacion
	err = tx.QueryRow(
		`SELECT habitacion_id, estado FROM reservaciones WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&habitacionID, &estadoActual)
	if err == sql.ErrNoRows {
		err = domain.ErrNoEncontrado
		return err
	}
	if err != nil {
		return fmt.Errorf("error al consultar reservación: %w", err)
	}
	if estadoActual != domain.ReservacionActiva {
		// Sólo una reservación activa admite check-out o cancelación.
		err = domain.ErrConflicto
		return err
	}

	if _, err = tx.Exec(
		`UPDATE reservaciones SET estado=$1 WHERE id=$2`,
		estadoReserva, id,
	); err != nil {
		return fmt.Errorf("error al actualizar reservación: %w", err)
	}

	if _, err = tx.Exec(
		`UPDATE habitaciones SET estado=$1 WHERE id=$2`,
		estadoHabitacion, habitacionID,
	); err != nil {
		return fmt.Errorf("error al actualizar habitación: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error al confirmar transición: %w", err)
	}
	return nil
}
