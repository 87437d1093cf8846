package application

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	telefonoRegex = regexp.MustCompile(`^\+?\d{7,15}$`)
	numeroRegex   = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)
)

// ValidarEmail valida el formato de un email
func ValidarEmail(email string) error {
	if email == "" {
		return fmt.Errorf("el email es requerido")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("el formato del email '%s' no es válido", email)
	}
	return nil
}

// ValidarTelefono valida el formato de un teléfono
func ValidarTelefono(telefono string) error {
	if telefono == "" {
		return fmt.Errorf("el teléfono es requerido")
	}

	// Limpiar espacios, guiones y paréntesis
	limpio := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(telefono)

	if !telefonoRegex.MatchString(limpio) {
		return fmt.Errorf("el teléfono '%s' debe tener entre 7 y 15 dígitos", telefono)
	}
	return nil
}

// ValidarNombre valida que un nombre o apellido no esté vacío y tenga un
// largo razonable
func ValidarNombre(nombre, campo string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return fmt.Errorf("el %s es requerido", campo)
	}
	if len(nombre) < 2 {
		return fmt.Errorf("el %s debe tener al menos 2 caracteres", campo)
	}
	if len(nombre) > 50 {
		return fmt.Errorf("el %s no puede tener más de 50 caracteres", campo)
	}
	return nil
}

// ValidarNumeroHabitacion valida el número de habitación: requerido, máximo
// 10 caracteres, alfanumérico con guiones
func ValidarNumeroHabitacion(numero string) error {
	if numero == "" {
		return fmt.Errorf("el número de habitación es requerido")
	}
	if len(numero) > 10 {
		return fmt.Errorf("el número de habitación no puede exceder 10 caracteres")
	}
	if !numeroRegex.MatchString(numero) {
		return fmt.Errorf("el número de habitación '%s' contiene caracteres no válidos", numero)
	}
	return nil
}
