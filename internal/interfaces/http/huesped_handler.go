package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/application"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// HuespedHandler atiende el CRUD de huéspedes.
type HuespedHandler struct {
	service *application.HuespedService
}

// NewHuespedHandler crea una nueva instancia del handler de huéspedes
func NewHuespedHandler(service *application.HuespedService) *HuespedHandler {
	return &HuespedHandler{service: service}
}

// HuespedRequest representa la petición para registrar o actualizar un
// huésped
type HuespedRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Apellido string `json:"apellido" validate:"required"`
	Telefono string `json:"telefono" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// GetAll devuelve todos los huéspedes
func (h *HuespedHandler) GetAll(c *fiber.Ctx) error {
	huespedes, err := h.service.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	if huespedes == nil {
		huespedes = []domain.Huesped{}
	}
	return c.JSON(huespedes)
}

// GetByID devuelve un huésped por id
func (h *HuespedHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	huesped, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(huesped)
}

// BuscarPorTelefono busca un huésped por teléfono. La ausencia devuelve 404
// pero no es un error del sistema.
func (h *HuespedHandler) BuscarPorTelefono(c *fiber.Ctx) error {
	telefono := c.Query("telefono")
	if telefono == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "El teléfono es requerido"})
	}

	huesped, err := h.service.BuscarPorTelefono(telefono)
	if err != nil {
		return responderError(c, err)
	}
	if huesped == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Huésped no registrado"})
	}
	return c.JSON(huesped)
}

// Create registra un huésped nuevo
func (h *HuespedHandler) Create(c *fiber.Ctx) error {
	var req HuespedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de solicitud inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return responderValidacion(c, err)
	}

	huesped := domain.Huesped{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Telefono: req.Telefono,
		Email:    req.Email,
	}

	id, err := h.service.Crear(&huesped, req.Password)
	if err != nil {
		if esErrorDominio(err) {
			return responderError(c, err)
		}
		return responderValidacion(c, err)
	}

	huesped.ID = id
	return c.Status(fiber.StatusCreated).JSON(huesped)
}

// Update actualiza los datos de un huésped
func (h *HuespedHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	var req HuespedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de solicitud inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return responderValidacion(c, err)
	}

	huesped := domain.Huesped{
		ID:       id,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Telefono: req.Telefono,
		Email:    req.Email,
	}

	if err := h.service.Actualizar(&huesped); err != nil {
		if esErrorDominio(err) {
			return responderError(c, err)
		}
		return responderValidacion(c, err)
	}
	return c.JSON(huesped)
}
