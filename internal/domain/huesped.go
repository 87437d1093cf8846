package domain

// Huesped representa a un huésped del hotel. Los huéspedes se crean al
// momento de reservar o directamente por el personal; el ledger nunca los
// elimina.
type Huesped struct {
	ID           int    `json:"id"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Telefono     string `json:"telefono"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// NombreCompleto devuelve "Nombre Apellido" para presentación.
func (h *Huesped) NombreCompleto() string {
	return h.Nombre + " " + h.Apellido
}

// HuespedRepository define las operaciones de persistencia de huéspedes.
type HuespedRepository interface {
	GetAll() ([]Huesped, error)
	// GetByID devuelve un huésped por id; ErrNoEncontrado si no existe.
	GetByID(id int) (*Huesped, error)
	// GetByTelefono busca por teléfono. Devuelve (nil, nil) si no existe.
	GetByTelefono(telefono string) (*Huesped, error)
	// Create inserta un huésped y devuelve su id; ErrDuplicado si el
	// teléfono ya está registrado.
	Create(h *Huesped) (int, error)
	Update(h *Huesped) error
}
