package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/application"
	"github.com/IbarrioNix/Hotel-Amigues-Empleado/internal/domain"
)

// EmpleadoHandler atiende el CRUD de empleados (sólo administradores).
type EmpleadoHandler struct {
	service *application.EmpleadoService
}

// NewEmpleadoHandler crea una nueva instancia del handler de empleados
func NewEmpleadoHandler(service *application.EmpleadoService) *EmpleadoHandler {
	return &EmpleadoHandler{service: service}
}

// CreateEmpleadoRequest representa la petición para registrar un empleado
type CreateEmpleadoRequest struct {
	Nombre     string `json:"nombre" validate:"required"`
	Apellido   string `json:"apellido" validate:"required"`
	Puesto     string `json:"puesto" validate:"required"`
	Telefono   string `json:"telefono"`
	Usuario    string `json:"usuario" validate:"required"`
	Password   string `json:"password"`
	Privilegio string `json:"privilegio" validate:"required,oneof=Administrador Empleado"`
}

// UpdateEmpleadoRequest representa la petición para actualizar un empleado
type UpdateEmpleadoRequest struct {
	Nombre     string `json:"nombre" validate:"required"`
	Apellido   string `json:"apellido" validate:"required"`
	Puesto     string `json:"puesto" validate:"required"`
	Telefono   string `json:"telefono"`
	Privilegio string `json:"privilegio" validate:"required,oneof=Administrador Empleado"`
}

// GetAll devuelve todos los empleados
func (h *EmpleadoHandler) GetAll(c *fiber.Ctx) error {
	empleados, err := h.service.GetAll()
	if err != nil {
		return responderError(c, err)
	}
	if empleados == nil {
		empleados = []domain.Empleado{}
	}
	return c.JSON(empleados)
}

// Create registra un empleado nuevo
func (h *EmpleadoHandler) Create(c *fiber.Ctx) error {
	var req CreateEmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de solicitud inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return responderValidacion(c, err)
	}

	empleado := domain.Empleado{
		Nombre:     req.Nombre,
		Apellido:   req.Apellido,
		Puesto:     req.Puesto,
		Telefono:   req.Telefono,
		Usuario:    req.Usuario,
		Privilegio: req.Privilegio,
	}

	id, err := h.service.Crear(&empleado, req.Password)
	if err != nil {
		if esErrorDominio(err) {
			return responderError(c, err)
		}
		return responderValidacion(c, err)
	}

	empleado.ID = id
	return c.Status(fiber.StatusCreated).JSON(empleado)
}

// Update actualiza los datos de un empleado
func (h *EmpleadoHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	var req UpdateEmpleadoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Formato de solicitud inválido"})
	}
	if err := validate.Struct(&req); err != nil {
		return responderValidacion(c, err)
	}

	empleado := domain.Empleado{
		ID:         id,
		Nombre:     req.Nombre,
		Apellido:   req.Apellido,
		Puesto:     req.Puesto,
		Telefono:   req.Telefono,
		Privilegio: req.Privilegio,
	}

	if err := h.service.Actualizar(&empleado); err != nil {
		if esErrorDominio(err) {
			return responderError(c, err)
		}
		return responderValidacion(c, err)
	}
	return c.JSON(empleado)
}

// Delete elimina un empleado
func (h *EmpleadoHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID inválido"})
	}

	if err := h.service.Eliminar(id); err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"mensaje": "Empleado eliminado"})
}
