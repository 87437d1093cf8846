package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// RequireAuth valida el token JWT del encabezado Authorization y deja la
// identidad del empleado en los locals del contexto.
func RequireAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Se requiere iniciar sesión",
			})
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !parsed.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Sesión inválida o expirada",
			})
		}

		if usuario, ok := claims["sub"].(string); ok {
			c.Locals("usuario", usuario)
		}
		if privilegio, ok := claims["privilegio"].(string); ok {
			c.Locals("privilegio", privilegio)
		}
		return c.Next()
	}
}

// RequireAdministrador permite el paso sólo a empleados con privilegio de
// administrador. Gobierna las funciones de personal, administración de
// habitaciones y reportes.
func RequireAdministrador() fiber.Handler {
	return func(c *fiber.Ctx) error {
		privilegio, _ := c.Locals("privilegio").(string)
		if privilegio != domain.PrivilegioAdministrador {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Se requieren privilegios de administrador",
			})
		}
		return c.Next()
	}
}
