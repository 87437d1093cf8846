// Package session mantiene el estado de la sesión de operación: el empleado
// autenticado y el contador de intentos de login. Es un objeto explícito que
// se construye en el arranque y se pasa a quien lo necesite; no hay estado
// global.
package session

import (
	"sync"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// MaxIntentos es el número de intentos de login fallidos antes de bloquear
// la sesión.
const MaxIntentos = 3

// Session representa la sesión de la terminal de recepción.
type Session struct {
	mu               sync.Mutex
	empleado         *domain.Empleado
	intentosFallidos int
	bloqueada        bool
}

// New crea una sesión sin usuario autenticado.
func New() *Session {
	return &Session{}
}

// IniciarSesion registra al empleado autenticado y reinicia el contador de
// intentos. Devuelve false si la sesión está bloqueada.
func (s *Session) IniciarSesion(e *domain.Empleado) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bloqueada || e == nil {
		return false
	}
	s.empleado = e
	s.intentosFallidos = 0
	return true
}

// RegistrarIntentoFallido incrementa el contador y devuelve los intentos
// restantes. Al llegar a cero la sesión queda bloqueada.
func (s *Session) RegistrarIntentoFallido() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.intentosFallidos++
	restantes := MaxIntentos - s.intentosFallidos
	if restantes <= 0 {
		s.bloqueada = true
		return 0
	}
	return restantes
}

// CerrarSesion limpia el usuario actual. No desbloquea una sesión bloqueada.
func (s *Session) CerrarSesion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.empleado = nil
}

// Activa indica si hay un empleado autenticado.
func (s *Session) Activa() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.empleado != nil
}

// Bloqueada indica si la sesión quedó bloqueada por exceso de intentos.
func (s *Session) Bloqueada() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bloqueada
}

// Empleado devuelve el empleado autenticado, o nil.
func (s *Session) Empleado() *domain.Empleado {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.empleado
}

// EsAdministrador indica si el usuario actual tiene privilegios de
// administrador.
func (s *Session) EsAdministrador() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.empleado != nil && s.empleado.EsAdministrador()
}
