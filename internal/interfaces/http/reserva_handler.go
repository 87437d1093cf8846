package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/application"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// ReservaHandler atiende el ciclo de vida de las reservaciones a través del
// ledger.
type ReservaHandler struct {
	service *application.ReservaService
}

// NewReservaHandler crea una nueva instancia del handler de reservaciones
func NewReservaHandler(service *application.ReservaService) *ReservaHandler {
	return &ReservaHandler{service: service}
}

// CreateReservaRequest representa la petición para crear una reservación
type CreateReservaRequest struct {
	HuespedID    int     `json:"huespedId" validate:"required,gt=0"`
	HabitacionID int     `json:"habitacionId" validate:"required,gt=0"`
	FechaEntrada string  `json:"fechaEntrada" validate:"required"` // Formato: YYYY-MM-DD
	FechaSalida  string  `json:"fechaSalida" validate:"required"`  // Formato: YYYY-MM-DD
	Total        float64 `json:"total" validate:"required,gt=0"`
}

// GetAll devuelve todas las reservaciones con detalle
func (h *ReservaHandler) GetAll(c *fiber.Ctx) error {
	reservaciones, err := h.service.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	if reservaciones == nil {
		reservaciones = []domain.ReservacionDetalle{}
	}
	return c.JSON(reservaciones)
}

// GetByID devuelve una reservación por id
func (h *ReservaHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	reservacion, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(reservacion)
}

// Create registra una reservación nueva y ocupa la habitación
func (h *ReservaHandler) Create(c *fiber.Ctx) error {
	var req CreateReservaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de solicitud inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return responderValidacion(c, err)
	}

	entrada, err := time.Parse("2006-01-02", req.FechaEntrada)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fecha de entrada inválido. Use YYYY-MM-DD",
		})
	}
	salida, err := time.Parse("2006-01-02", req.FechaSalida)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fecha de salida inválido. Use YYYY-MM-DD",
		})
	}

	reservacion := domain.Reservacion{
		HuespedID:    req.HuespedID,
		HabitacionID: req.HabitacionID,
		FechaEntrada: entrada,
		FechaSalida:  salida,
		Total:        req.Total,
	}

	id, err := h.service.Crear(&reservacion)
	if err != nil {
		if esErrorDominio(err) {
			return responderError(c, err)
		}
		return responderValidacion(c, err)
	}

	reservacion.ID = id
	return c.Status(fiber.StatusCreated).JSON(reservacion)
}

// Finalizar hace el check-out de una reservación
func (h *ReservaHandler) Finalizar(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := h.service.Finalizar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"mensaje": "Check-out registrado. Habitación en limpieza"})
}

// Cancelar anula una reservación y libera la habitación
func (h *ReservaHandler) Cancelar(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := h.service.Cancelar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"mensaje": "Reservación cancelada. Habitación disponible"})
}
