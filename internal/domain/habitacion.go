package domain

// EstadoHabitacion representa el estado operativo de una habitación.
type EstadoHabitacion string

const (
	HabitacionDisponible    EstadoHabitacion = "disponible"
	HabitacionOcupada       EstadoHabitacion = "ocupada"
	HabitacionLimpieza      EstadoHabitacion = "limpieza"
	HabitacionMantenimiento EstadoHabitacion = "mantenimiento"
)

// EsValido indica si el estado es uno de los cuatro conocidos.
func (e EstadoHabitacion) EsValido() bool {
	switch e {
	case HabitacionDisponible, HabitacionOcupada, HabitacionLimpieza, HabitacionMantenimiento:
		return true
	}
	return false
}

// Tipos de habitación admitidos.
const (
	TipoSencilla = "Sencilla"
	TipoDoble    = "Doble"
	TipoFamiliar = "Familiar"
	TipoDeluxe   = "Deluxe"
)

// TipoHabitacionValido indica si el tipo es uno de los cuatro admitidos.
func TipoHabitacionValido(tipo string) bool {
	switch tipo {
	case TipoSencilla, TipoDoble, TipoFamiliar, TipoDeluxe:
		return true
	}
	return false
}

// Habitacion representa una habitación del hotel.
//
// Invariante: Estado siempre refleja el último evento de reserva que afectó a
// la habitación; sólo el ledger de reservas mueve una habitación entre
// ocupada/limpieza/disponible.
type Habitacion struct {
	ID     int              `json:"id"`
	Numero string           `json:"numero"`
	Tipo   string           `json:"tipo"`
	Precio float64          `json:"precio"`
	Estado EstadoHabitacion `json:"estado"`
}

// HabitacionRepository define las operaciones de persistencia de habitaciones.
type HabitacionRepository interface {
	// GetAll devuelve todas las habitaciones ordenadas por número.
	GetAll() ([]Habitacion, error)
	// GetByID devuelve una habitación por id; ErrNoEncontrado si no existe.
	GetByID(id int) (*Habitacion, error)
	// GetDisponibles devuelve las habitaciones en estado disponible.
	GetDisponibles() ([]Habitacion, error)
	// Create inserta una habitación y devuelve su id; ErrDuplicado si el
	// número ya está en uso.
	Create(h *Habitacion) (int, error)
	// Update actualiza una habitación existente; ErrDuplicado si el nuevo
	// número colisiona, ErrNoEncontrado si el id no existe.
	Update(h *Habitacion) error
	// CambiarEstado cambia sólo el estado (flujo administrativo de
	// mantenimiento/limpieza); ErrNoEncontrado si el id no existe.
	CambiarEstado(id int, estado EstadoHabitacion) error
	// Delete elimina una habitación; ErrConflicto si una reserva activa la
	// referencia, ErrNoEncontrado si el id no existe.
	Delete(id int) error
}
