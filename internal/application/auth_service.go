package application

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// AuthService valida credenciales del personal y emite tokens de sesión.
type AuthService struct {
	empleadoRepo domain.EmpleadoRepository
	jwtSecret    string
	tokenTTL     time.Duration
}

// NewAuthService crea una nueva instancia del servicio de autenticación
func NewAuthService(empleadoRepo domain.EmpleadoRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 8 * time.Hour
	}
	return &AuthService{empleadoRepo: empleadoRepo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// ValidarLogin busca al empleado por usuario y verifica la contraseña.
// Devuelve (nil, nil) cuando el usuario no existe o la contraseña no
// coincide: las credenciales incorrectas no son un error del sistema.
func (s *AuthService) ValidarLogin(usuario, password string) (*domain.Empleado, error) {
	if usuario == "" || password == "" {
		return nil, nil
	}

	empleado, err := s.empleadoRepo.GetByUsuario(usuario)
	if err != nil {
		return nil, fmt.Errorf("error al validar login: %w", err)
	}
	if empleado == nil {
		return nil, nil
	}

	if !VerificarPassword(password, empleado.PasswordHash) {
		return nil, nil
	}

	return empleado, nil
}

// GenerarToken emite un JWT HS256 con la identidad y el privilegio del
// empleado.
func (s *AuthService) GenerarToken(e *domain.Empleado) (string, error) {
	claims := jwt.MapClaims{
		"jti":        uuid.NewString(),
		"sub":        e.Usuario,
		"empleadoId": e.ID,
		"nombre":     e.NombreCompleto(),
		"privilegio": e.Privilegio,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
