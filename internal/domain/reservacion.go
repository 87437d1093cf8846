package domain

import "time"

// EstadoReservacion representa el ciclo de vida de una reservación.
type EstadoReservacion string

const (
	ReservacionActiva     EstadoReservacion = "activa"
	ReservacionFinalizada EstadoReservacion = "finalizada"
	ReservacionCancelada  EstadoReservacion = "cancelada"
)

// Reservacion representa una reservación de habitación.
//
// Invariante: para una habitación dada hay a lo sumo una reservación activa,
// y la habitación está ocupada exactamente cuando esa reservación existe.
type Reservacion struct {
	ID           int               `json:"id"`
	HuespedID    int               `json:"huespedId"`
	HabitacionID int               `json:"habitacionId"`
	FechaEntrada time.Time         `json:"fechaEntrada"`
	FechaSalida  time.Time         `json:"fechaSalida"`
	Total        float64           `json:"total"`
	Estado       EstadoReservacion `json:"estado"`
}

// ReservacionDetalle es la vista de una reservación con los campos de
// presentación del huésped y la habitación ya resueltos.
type ReservacionDetalle struct {
	Reservacion
	HuespedNombre    string `json:"huespedNombre"`
	HabitacionNumero string `json:"habitacionNumero"`
	HabitacionTipo   string `json:"habitacionTipo"`
}

// ReservacionRepository es el único componente autorizado a cambiar el estado
// de una reservación o a mover una habitación entre ocupada/limpieza/
// disponible. Cada operación de escritura es una única transacción: la fila
// de la reservación y la fila de la habitación se confirman juntas o no se
// confirma ninguna.
type ReservacionRepository interface {
	// GetAll devuelve todas las reservaciones con detalle, ordenadas por
	// fecha de entrada descendente.
	GetAll() ([]ReservacionDetalle, error)
	// GetByID devuelve una reservación por id; ErrNoEncontrado si no existe.
	GetByID(id int) (*Reservacion, error)
	// Crear inserta la reservación en estado activa y marca la habitación
	// como ocupada. ErrNoEncontrado si la habitación no existe; ErrConflicto
	// si no está disponible o ya tiene una reservación activa.
	Crear(r *Reservacion) (int, error)
	// Finalizar hace el check-out: reservación a finalizada y habitación a
	// limpieza. ErrNoEncontrado si el id no existe; ErrConflicto si la
	// reservación no está activa.
	Finalizar(id int) error
	// Cancelar anula la reservación y libera la habitación a disponible.
	// Mismos errores que Finalizar.
	Cancelar(id int) error
}
