package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// validate valida los structs de petición de todos los handlers.
var validate = validator.New()

// responderError es el único punto donde los errores tipados del dominio se
// convierten en códigos HTTP y mensajes para el usuario.
func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "El registro solicitado no existe",
		})
	case errors.Is(err, domain.ErrDuplicado):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Ya existe un registro con ese valor único",
		})
	case errors.Is(err, domain.ErrConflicto):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "La operación no pudo completarse por el estado actual del registro",
		})
	case errors.Is(err, domain.ErrConexion):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Base de datos no disponible",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error interno del servidor",
		})
	}
}

// esErrorDominio distingue los errores tipados del dominio de los errores de
// validación de los servicios, que se reportan como 400.
func esErrorDominio(err error) bool {
	return errors.Is(err, domain.ErrNoEncontrado) ||
		errors.Is(err, domain.ErrDuplicado) ||
		errors.Is(err, domain.ErrConflicto) ||
		errors.Is(err, domain.ErrConexion)
}

// responderValidacion devuelve un 400 con el mensaje de validación.
func responderValidacion(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
