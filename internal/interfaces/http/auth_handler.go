package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/application"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/session"
)

// AuthHandler atiende el inicio y cierre de sesión del personal.
type AuthHandler struct {
	service *application.AuthService
	sesion  *session.Session
}

// NewAuthHandler crea una nueva instancia del handler de autenticación
func NewAuthHandler(service *application.AuthService, sesion *session.Session) *AuthHandler {
	return &AuthHandler{service: service, sesion: sesion}
}

// LoginRequest representa la petición de inicio de sesión
type LoginRequest struct {
	Usuario  string `json:"usuario" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login valida credenciales y emite un token de sesión. Tres intentos
// fallidos bloquean la terminal hasta reiniciar la aplicación.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if h.sesion.Bloqueada() {
		return c.Status(fiber.StatusLocked).JSON(fiber.Map{
			"error": "Demasiados intentos fallidos. Contacte al administrador",
		})
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return responderValidacion(c, err)
	}

	empleado, err := h.service.ValidarLogin(req.Usuario, req.Password)
	if err != nil {
		return responderError(c, err)
	}
	if empleado == nil {
		restantes := h.sesion.RegistrarIntentoFallido()
		if restantes == 0 {
			return c.Status(fiber.StatusLocked).JSON(fiber.Map{
				"error": "Demasiados intentos fallidos. Contacte al administrador",
			})
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":             "Usuario o contraseña incorrectos",
			"intentosRestantes": restantes,
		})
	}

	h.sesion.IniciarSesion(empleado)

	token, err := h.service.GenerarToken(empleado)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"empleado": fiber.Map{
			"id":         empleado.ID,
			"nombre":     empleado.NombreCompleto(),
			"puesto":     empleado.Puesto,
			"privilegio": empleado.Privilegio,
		},
	})
}

// Logout cierra la sesión actual.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sesion.CerrarSesion()
	return c.JSON(fiber.Map{"mensaje": "Sesión cerrada"})
}
