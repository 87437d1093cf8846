package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/application"
)

// ReporteHandler atiende los reportes de ocupación y el tablero.
type ReporteHandler struct {
	service *application.ReporteService
}

// NewReporteHandler crea una nueva instancia del handler de reportes
func NewReporteHandler(service *application.ReporteService) *ReporteHandler {
	return &ReporteHandler{service: service}
}

// rangoFechas lee los parámetros inicio/fin (YYYY-MM-DD) de la petición.
// El rango es inclusivo: el día final se extiende hasta su último instante.
func rangoFechas(c *fiber.Ctx) (time.Time, time.Time, bool) {
	inicio, err := time.Parse("2006-01-02", c.Query("inicio"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	fin, err := time.Parse("2006-01-02", c.Query("fin"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	fin = fin.Add(24*time.Hour - time.Second)
	return inicio, fin, true
}

// Reservas devuelve el historial de reservaciones del período
func (h *ReporteHandler) Reservas(c *fiber.Ctx) error {
	inicio, fin, ok := rangoFechas(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Parámetros inicio y fin requeridos en formato YYYY-MM-DD",
		})
	}
	return c.JSON(h.service.ReporteReservas(inicio, fin))
}

// Habitaciones devuelve el historial de uso de habitaciones del período
func (h *ReporteHandler) Habitaciones(c *fiber.Ctx) error {
	inicio, fin, ok := rangoFechas(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Parámetros inicio y fin requeridos en formato YYYY-MM-DD",
		})
	}
	return c.JSON(h.service.ReporteHabitaciones(inicio, fin))
}

// Estadisticas devuelve el resumen del tablero
func (h *ReporteHandler) Estadisticas(c *fiber.Ctx) error {
	return c.JSON(h.service.Estadisticas())
}
