package application

import (
	"fmt"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// EmpleadoService expone el CRUD de empleados. El hash de contraseñas ocurre
// aquí: el repositorio sólo persiste hashes, nunca texto plano.
type EmpleadoService struct {
	repo domain.EmpleadoRepository
}

// NewEmpleadoService crea una nueva instancia del servicio de empleados
func NewEmpleadoService(repo domain.EmpleadoRepository) *EmpleadoService {
	return &EmpleadoService{repo: repo}
}

// GetAll devuelve todos los empleados.
func (s *EmpleadoService) GetAll() ([]domain.Empleado, error) {
	return s.repo.GetAll()
}

// GetByID devuelve un empleado por id.
func (s *EmpleadoService) GetByID(id int) (*domain.Empleado, error) {
	return s.repo.GetByID(id)
}

// Crear registra un empleado nuevo; la contraseña llega en texto plano y se
// almacena hasheada. Contraseña vacía significa cuenta sin acceso al sistema.
func (s *EmpleadoService) Crear(e *domain.Empleado, password string) (int, error) {
	if err := ValidarNombre(e.Nombre, "nombre"); err != nil {
		return 0, err
	}
	if err := ValidarNombre(e.Apellido, "apellido"); err != nil {
		return 0, err
	}
	if e.Usuario == "" {
		return 0, fmt.Errorf("el usuario es requerido")
	}
	if err := validarPrivilegio(e.Privilegio); err != nil {
		return 0, err
	}
	if e.Telefono != "" {
		if err := ValidarTelefono(e.Telefono); err != nil {
			return 0, err
		}
	}

	hash, err := HashearPassword(password)
	if err != nil {
		return 0, fmt.Errorf("error al hashear contraseña: %w", err)
	}
	e.PasswordHash = hash

	return s.repo.Create(e)
}

// Actualizar modifica los datos de un empleado (sin tocar la contraseña).
func (s *EmpleadoService) Actualizar(e *domain.Empleado) error {
	if e.ID <= 0 {
		return fmt.Errorf("el id del empleado es requerido")
	}
	if err := ValidarNombre(e.Nombre, "nombre"); err != nil {
		return err
	}
	if err := ValidarNombre(e.Apellido, "apellido"); err != nil {
		return err
	}
	if err := validarPrivilegio(e.Privilegio); err != nil {
		return err
	}
	return s.repo.Update(e)
}

// Eliminar borra un empleado.
func (s *EmpleadoService) Eliminar(id int) error {
	return s.repo.Delete(id)
}

func validarPrivilegio(p string) error {
	if p != domain.PrivilegioAdministrador && p != domain.PrivilegioEmpleado {
		return fmt.Errorf("privilegio '%s' no reconocido", p)
	}
	return nil
}
