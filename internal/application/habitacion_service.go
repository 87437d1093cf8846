package application

import (
	"fmt"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// HabitacionService expone el CRUD de habitaciones con validación de dominio.
type HabitacionService struct {
	repo domain.HabitacionRepository
}

// NewHabitacionService crea una nueva instancia del servicio de habitaciones
func NewHabitacionService(repo domain.HabitacionRepository) *HabitacionService {
	return &HabitacionService{repo: repo}
}

// GetAll devuelve todas las habitaciones.
func (s *HabitacionService) GetAll() ([]domain.Habitacion, error) {
	return s.repo.GetAll()
}

// GetByID devuelve una habitación por id.
func (s *HabitacionService) GetByID(id int) (*domain.Habitacion, error) {
	return s.repo.GetByID(id)
}

// GetDisponibles devuelve las habitaciones listas para reservar.
func (s *HabitacionService) GetDisponibles() ([]domain.Habitacion, error) {
	return s.repo.GetDisponibles()
}

// Crear registra una habitación nueva. Las habitaciones nacen disponibles
// salvo que se indique otro estado válido.
func (s *HabitacionService) Crear(h *domain.Habitacion) (int, error) {
	if err := validarHabitacion(h); err != nil {
		return 0, err
	}
	if h.Estado == "" {
		h.Estado = domain.HabitacionDisponible
	}
	if !h.Estado.EsValido() {
		return 0, fmt.Errorf("estado de habitación '%s' no reconocido", h.Estado)
	}
	return s.repo.Create(h)
}

// Actualizar modifica una habitación existente.
func (s *HabitacionService) Actualizar(h *domain.Habitacion) error {
	if h.ID <= 0 {
		return fmt.Errorf("el id de la habitación es requerido")
	}
	if err := validarHabitacion(h); err != nil {
		return err
	}
	if !h.Estado.EsValido() {
		return fmt.Errorf("estado de habitación '%s' no reconocido", h.Estado)
	}
	return s.repo.Update(h)
}

// CambiarEstado es el flujo administrativo: pasar a mantenimiento, o devolver
// una habitación de limpieza/mantenimiento a disponible.
func (s *HabitacionService) CambiarEstado(id int, estado domain.EstadoHabitacion) error {
	if !estado.EsValido() {
		return fmt.Errorf("estado de habitación '%s' no reconocido", estado)
	}
	return s.repo.CambiarEstado(id, estado)
}

// Eliminar borra una habitación sin reservación activa.
func (s *HabitacionService) Eliminar(id int) error {
	return s.repo.Delete(id)
}

func validarHabitacion(h *domain.Habitacion) error {
	if err := ValidarNumeroHabitacion(h.Numero); err != nil {
		return err
	}
	if !domain.TipoHabitacionValido(h.Tipo) {
		return fmt.Errorf("tipo de habitación '%s' no reconocido", h.Tipo)
	}
	if h.Precio <= 0 {
		return fmt.Errorf("el precio por noche debe ser mayor a 0")
	}
	return nil
}
