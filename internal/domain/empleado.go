package domain

// Niveles de privilegio del personal.
const (
	PrivilegioAdministrador = "Administrador"
	PrivilegioEmpleado      = "Empleado"
)

// Empleado representa a un miembro del personal del hotel.
type Empleado struct {
	ID           int    `json:"id"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Puesto       string `json:"puesto"`
	Telefono     string `json:"telefono"`
	Usuario      string `json:"usuario"`
	PasswordHash string `json:"-"`
	Privilegio   string `json:"privilegio"`
}

// NombreCompleto devuelve "Nombre Apellido" para presentación.
func (e *Empleado) NombreCompleto() string {
	return e.Nombre + " " + e.Apellido
}

// EsAdministrador indica si el empleado tiene privilegios de administrador.
func (e *Empleado) EsAdministrador() bool {
	return e.Privilegio == PrivilegioAdministrador
}

// EmpleadoRepository define las operaciones de persistencia de empleados.
type EmpleadoRepository interface {
	GetAll() ([]Empleado, error)
	// GetByID devuelve un empleado por id; ErrNoEncontrado si no existe.
	GetByID(id int) (*Empleado, error)
	// GetByUsuario busca por nombre de usuario. Devuelve (nil, nil) si no
	// existe: la ausencia es un resultado normal en el flujo de login.
	GetByUsuario(usuario string) (*Empleado, error)
	// Create inserta un empleado; ErrDuplicado si el usuario ya existe.
	Create(e *Empleado) (int, error)
	// Update actualiza los datos de un empleado (no toca la contraseña).
	Update(e *Empleado) error
	Delete(id int) error
}
