package application

import (
	"fmt"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// HuespedService expone el CRUD de huéspedes.
type HuespedService struct {
	repo domain.HuespedRepository
}

// NewHuespedService crea una nueva instancia del servicio de huéspedes
func NewHuespedService(repo domain.HuespedRepository) *HuespedService {
	return &HuespedService{repo: repo}
}

// GetAll devuelve todos los huéspedes.
func (s *HuespedService) GetAll() ([]domain.Huesped, error) {
	return s.repo.GetAll()
}

// GetByID devuelve un huésped por id.
func (s *HuespedService) GetByID(id int) (*domain.Huesped, error) {
	return s.repo.GetByID(id)
}

// BuscarPorTelefono busca un huésped por teléfono; (nil, nil) si no existe.
func (s *HuespedService) BuscarPorTelefono(telefono string) (*domain.Huesped, error) {
	if telefono == "" {
		return nil, nil
	}
	return s.repo.GetByTelefono(telefono)
}

// Crear registra un huésped nuevo. La contraseña es opcional (huéspedes dados
// de alta en recepción no siempre tienen acceso al portal).
func (s *HuespedService) Crear(h *domain.Huesped, password string) (int, error) {
	if err := ValidarNombre(h.Nombre, "nombre"); err != nil {
		return 0, err
	}
	if err := ValidarNombre(h.Apellido, "apellido"); err != nil {
		return 0, err
	}
	if err := ValidarTelefono(h.Telefono); err != nil {
		return 0, err
	}
	if h.Email != "" {
		if err := ValidarEmail(h.Email); err != nil {
			return 0, err
		}
	}

	hash, err := HashearPassword(password)
	if err != nil {
		return 0, fmt.Errorf("error al hashear contraseña: %w", err)
	}
	h.PasswordHash = hash

	return s.repo.Create(h)
}

// Actualizar modifica los datos de un huésped.
func (s *HuespedService) Actualizar(h *domain.Huesped) error {
	if h.ID <= 0 {
		return fmt.Errorf("el id del huésped es requerido")
	}
	if err := ValidarTelefono(h.Telefono); err != nil {
		return err
	}
	return s.repo.Update(h)
}
