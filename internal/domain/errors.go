package domain

import "errors"

// Errores tipados que las capas superiores pueden inspeccionar con errors.Is.
// El handler HTTP es el único lugar donde se convierten en mensajes para el
// usuario.
var (
	// ErrNoEncontrado indica que el registro solicitado no existe.
	ErrNoEncontrado = errors.New("registro no encontrado")
	// ErrDuplicado indica una violación de unicidad (numero de habitación,
	// usuario de empleado o teléfono de huésped).
	ErrDuplicado = errors.New("registro duplicado")
	// ErrConflicto indica que la operación del ledger no pudo completarse de
	// forma atómica: habitación no disponible o reserva en un estado que no
	// admite la transición.
	ErrConflicto = errors.New("conflicto de estado")
	// ErrConexion indica que la base de datos no está accesible.
	ErrConexion = errors.New("base de datos no disponible")
)
