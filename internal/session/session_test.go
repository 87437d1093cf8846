package session

import (
	"testing"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

func empleadoDePrueba(privilegio string) *domain.Empleado {
	return &domain.Empleado{
		ID:         1,
		Nombre:     "Rosa",
		Apellido:   "Martínez",
		Puesto:     "Gerente",
		Usuario:    "rmartinez",
		Privilegio: privilegio,
	}
}

func TestSession_IniciarYCerrar(t *testing.T) {
	s := New()

	if s.Activa() {
		t.Fatal("una sesión nueva no debe estar activa")
	}

	if !s.IniciarSesion(empleadoDePrueba(domain.PrivilegioAdministrador)) {
		t.Fatal("IniciarSesion debió aceptar al empleado")
	}
	if !s.Activa() {
		t.Fatal("la sesión debe quedar activa")
	}
	if !s.EsAdministrador() {
		t.Fatal("el empleado es administrador")
	}

	s.CerrarSesion()
	if s.Activa() {
		t.Fatal("la sesión debe quedar inactiva tras cerrar")
	}
	if s.EsAdministrador() {
		t.Fatal("sin sesión no hay privilegios")
	}
}

func TestSession_PrivilegioEmpleado(t *testing.T) {
	s := New()
	s.IniciarSesion(empleadoDePrueba(domain.PrivilegioEmpleado))

	if s.EsAdministrador() {
		t.Fatal("un empleado regular no es administrador")
	}
}

func TestSession_BloqueoPorIntentos(t *testing.T) {
	s := New()

	if restantes := s.RegistrarIntentoFallido(); restantes != 2 {
		t.Fatalf("primer intento fallido: se esperaban 2 restantes, hay %d", restantes)
	}
	if restantes := s.RegistrarIntentoFallido(); restantes != 1 {
		t.Fatalf("segundo intento fallido: se esperaba 1 restante, hay %d", restantes)
	}
	if s.Bloqueada() {
		t.Fatal("la sesión no debe bloquearse antes del tercer intento")
	}

	if restantes := s.RegistrarIntentoFallido(); restantes != 0 {
		t.Fatalf("tercer intento fallido: se esperaban 0 restantes, hay %d", restantes)
	}
	if !s.Bloqueada() {
		t.Fatal("la sesión debe bloquearse al tercer intento")
	}

	// Bloqueada: ni siquiera credenciales correctas inician sesión.
	if s.IniciarSesion(empleadoDePrueba(domain.PrivilegioAdministrador)) {
		t.Fatal("una sesión bloqueada no debe aceptar login")
	}
}

func TestSession_LoginExitosoReiniciaContador(t *testing.T) {
	s := New()

	s.RegistrarIntentoFallido()
	s.RegistrarIntentoFallido()
	if !s.IniciarSesion(empleadoDePrueba(domain.PrivilegioEmpleado)) {
		t.Fatal("dos intentos fallidos no bloquean el login")
	}

	s.CerrarSesion()

	// El contador se reinició: de nuevo hay tres intentos.
	if restantes := s.RegistrarIntentoFallido(); restantes != 2 {
		t.Fatalf("se esperaban 2 restantes tras reiniciar el contador, hay %d", restantes)
	}
}
