package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/hierarchy"
)

// RackHandler maneja las peticiones HTTP de estanterías (protegido, staff).
type RackHandler struct {
	uc *hierarchy.RackUseCase
}

// NewRackHandler construye el handler.
func NewRackHandler(uc *hierarchy.RackUseCase) *RackHandler {
	return &RackHandler{uc: uc}
}

// Create godoc
// @Summary      Crear estantería
// @Description  Reserva su peso máximo contra el pool de reserva de la sección.
// @Tags         racks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRackRequest  true  "section_id, rack_name, max_weight, max_levels"
// @Success      201   {object}  dto.RackResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/racks [post]
func (h *RackHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SectionID == "" || in.RackName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "section_id y rack_name son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener estantería por ID
// @Tags         racks
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la estantería"
// @Success      200  {object}  dto.RackResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/racks/{id} [get]
func (h *RackHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "estantería no encontrada"})
	}
	return c.JSON(out)
}

// ListBySection godoc
// @Summary      Listar estanterías de una sección
// @Tags         racks
// @Security     Bearer
// @Produce      json
// @Param        section_id  query  string  true   "ID de la sección"
// @Param        limit       query  int     false  "Límite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.RackListResponse
// @Router       /api/racks [get]
func (h *RackHandler) ListBySection(c *fiber.Ctx) error {
	sectionID := c.Query("section_id")
	if sectionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "section_id es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListBySection(sectionID, page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Redimensionar o renombrar estantería
// @Tags         racks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la estantería"
// @Param        body  body  dto.UpdateRackRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.RackResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/racks/{id} [put]
func (h *RackHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRackRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar estantería (solo si está vacía)
// @Tags         racks
// @Security     Bearer
// @Param        id  path  string  true  "ID de la estantería"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/racks/{id} [delete]
func (h *RackHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
