package domain

import "time"

// ReporteReserva es una fila del reporte de reservaciones en un período:
// la reservación con los campos de presentación del huésped y la habitación.
type ReporteReserva struct {
	ReservaID        int               `json:"reservaId"`
	Huesped          string            `json:"huesped"`
	HabitacionNumero string            `json:"habitacionNumero"`
	FechaEntrada     time.Time         `json:"fechaEntrada"`
	FechaSalida      time.Time         `json:"fechaSalida"`
	Total            float64           `json:"total"`
	Estado           EstadoReservacion `json:"estado"`
}

// Tipos de evento del reporte de uso de habitaciones.
const (
	EventoCheckIn  = "Check-in / Ocupación"
	EventoCheckOut = "Check-out / Limpieza"
)

// EventoHabitacion es una fila del historial de uso de habitaciones: una
// entrada (check-in) o una salida (check-out de reservación finalizada).
type EventoHabitacion struct {
	HabitacionNumero string    `json:"habitacionNumero"`
	HabitacionTipo   string    `json:"habitacionTipo"`
	Evento           string    `json:"evento"`
	Fecha            time.Time `json:"fecha"`
	Huesped          string    `json:"huesped"`
	Detalles         string    `json:"detalles"`
}

// Estadisticas resume el estado general del hotel para el tablero.
type Estadisticas struct {
	Disponibles   int `json:"disponibles"`
	Ocupadas      int `json:"ocupadas"`
	Limpieza      int `json:"limpieza"`
	Mantenimiento int `json:"mantenimiento"`
	Empleados     int `json:"empleados"`
}

// ReporteRepository define las consultas de sólo lectura sobre reservaciones
// y habitaciones. Ninguna operación tiene efectos de escritura.
type ReporteRepository interface {
	// ReporteReservas devuelve las reservaciones cuya fecha de entrada cae
	// en [inicio, fin], ordenadas por fecha de entrada descendente.
	ReporteReservas(inicio, fin time.Time) ([]ReporteReserva, error)
	// ReporteHabitaciones devuelve la unión de eventos de entrada y de
	// salida (sólo reservaciones finalizadas) en [inicio, fin], ordenada por
	// fecha descendente y número de habitación.
	ReporteHabitaciones(inicio, fin time.Time) ([]EventoHabitacion, error)
	// Estadisticas devuelve el conteo de habitaciones por estado y el total
	// de empleados.
	Estadisticas() (*Estadisticas, error)
}
