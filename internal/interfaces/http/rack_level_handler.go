package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/hierarchy"
)

// RackLevelHandler maneja las peticiones HTTP de niveles (protegido, staff).
type RackLevelHandler struct {
	uc *hierarchy.RackLevelUseCase
}

// NewRackLevelHandler construye el handler.
func NewRackLevelHandler(uc *hierarchy.RackLevelUseCase) *RackLevelHandler {
	return &RackLevelHandler{uc: uc}
}

// Create godoc
// @Summary      Crear nivel de estantería
// @Description  Genera automáticamente sus casillas 1..max_slots, todas activas y vacías.
// @Tags         rack-levels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRackLevelRequest  true  "rack_id, rack_level_number, max_weight, max_slots"
// @Success      201   {object}  dto.RackLevelResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rack-levels [post]
func (h *RackLevelHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRackLevelRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.RackID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rack_id es requerido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener nivel por ID
// @Tags         rack-levels
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del nivel"
// @Success      200  {object}  dto.RackLevelResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rack-levels/{id} [get]
func (h *RackLevelHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nivel no encontrado"})
	}
	return c.JSON(out)
}

// ListByRack godoc
// @Summary      Listar niveles de una estantería
// @Tags         rack-levels
// @Security     Bearer
// @Produce      json
// @Param        rack_id  query  string  true   "ID de la estantería"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.RackLevelListResponse
// @Router       /api/rack-levels [get]
func (h *RackLevelHandler) ListByRack(c *fiber.Ctx) error {
	rackID := c.Query("rack_id")
	if rackID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rack_id es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListByRack(rackID, page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Redimensionar nivel
// @Description  Reducir max_slots exige que las casillas sobrantes estén inactivas y sean las últimas del nivel, sin huecos.
// @Tags         rack-levels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del nivel"
// @Param        body  body  dto.UpdateRackLevelRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.RackLevelResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rack-levels/{id} [put]
func (h *RackLevelHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRackLevelRequest
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
// @Summary      Eliminar nivel (solo si está vacío)
// @Tags         rack-levels
// @Security     Bearer
// @Param        id  path  string  true  "ID del nivel"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rack-levels/{id} [delete]
func (h *RackLevelHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
