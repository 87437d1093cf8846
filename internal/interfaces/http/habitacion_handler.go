package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/application"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// HabitacionHandler atiende el CRUD de habitaciones.
type HabitacionHandler struct {
	service *application.HabitacionService
}

// NewHabitacionHandler crea una nueva instancia del handler de habitaciones
func NewHabitacionHandler(service *application.HabitacionService) *HabitacionHandler {
	return &HabitacionHandler{service: service}
}

// HabitacionRequest representa la petición para crear o actualizar una
// habitación
type HabitacionRequest struct {
	Numero string  `json:"numero" validate:"required,max=10"`
	Tipo   string  `json:"tipo" validate:"required,oneof=Sencilla Doble Familiar Deluxe"`
	Precio float64 `json:"precio" validate:"required,gt=0"`
	Estado string  `json:"estado" validate:"omitempty,oneof=disponible ocupada limpieza mantenimiento"`
}

// CambiarEstadoRequest representa la petición administrativa de cambio de
// estado
type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=disponible ocupada limpieza mantenimiento"`
}

// GetAll devuelve todas las habitaciones
func (h *HabitacionHandler) GetAll(c *fiber.Ctx) error {
	habitaciones, err := h.service.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	if habitaciones == nil {
		habitaciones = []domain.Habitacion{}
	}
	return c.JSON(habitaciones)
}

// GetDisponibles devuelve las habitaciones disponibles para reservar
func (h *HabitacionHandler) GetDisponibles(c *fiber.Ctx) error {
	habitaciones, err := h.service.GetDisponibles()
	if err != nil {
		return responderError(c, err)
	}
	if habitaciones == nil {
		habitaciones = []domain.Habitacion{}
	}
	return c.JSON(habitaciones)
}

// GetByID devuelve una habitación por id
func (h *HabitacionHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	habitacion, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(habitacion)
}

// Create registra una habitación nueva
func (h *HabitacionHandler) Create(c *fiber.Ctx) error {
	var req HabitacionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de solicitud inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return responderValidacion(c, err)
	}

	habitacion := domain.Habitacion{
		Numero: req.Numero,
		Tipo:   req.Tipo,
		Precio: req.Precio,
		Estado: domain.EstadoHabitacion(req.Estado),
	}

	id, err := h.service.Crear(&habitacion)
	if err != nil {
		if esErrorDominio(err) {
			return responderError(c, err)
		}
		return responderValidacion(c, err)
	}

	habitacion.ID = id
	return c.Status(fiber.StatusCreated).JSON(habitacion)
}

// Update actualiza una habitación existente
func (h *HabitacionHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	var req HabitacionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de solicitud inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return responderValidacion(c, err)
	}

	habitacion := domain.Habitacion{
		ID:     id,
		Numero: req.Numero,
		Tipo:   req.Tipo,
		Precio: req.Precio,
		Estado: domain.EstadoHabitacion(req.Estado),
	}

	if err := h.service.Actualizar(&habitacion); err != nil {
		if esErrorDominio(err) {
			return responderError(c, err)
		}
		return responderValidacion(c, err)
	}
	return c.JSON(habitacion)
}

// CambiarEstado es el flujo administrativo de mantenimiento/limpieza
func (h *HabitacionHandler) CambiarEstado(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	var req CambiarEstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de solicitud inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return responderValidacion(c, err)
	}

	if err := h.service.CambiarEstado(id, domain.EstadoHabitacion(req.Estado)); err != nil {
		if esErrorDominio(err) {
			return responderError(c, err)
		}
		return responderValidacion(c, err)
	}
	return c.JSON(fiber.Map{"mensaje": "Estado actualizado"})
}

// Delete elimina una habitación sin reservación activa
func (h *HabitacionHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := h.service.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"mensaje": "Habitación eliminada"})
}
