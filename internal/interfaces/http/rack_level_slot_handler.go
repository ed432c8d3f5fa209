package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/hierarchy"
)

// RackLevelSlotHandler maneja las peticiones HTTP de casillas (protegido, staff).
// Las casillas no se crean ni borran directamente: nacen y mueren con el
// redimensionado de su nivel.
type RackLevelSlotHandler struct {
	uc *hierarchy.RackLevelSlotUseCase
}

// NewRackLevelSlotHandler construye el handler.
func NewRackLevelSlotHandler(uc *hierarchy.RackLevelSlotUseCase) *RackLevelSlotHandler {
	return &RackLevelSlotHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener casilla por ID
// @Tags         rack-level-slots
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la casilla"
// @Success      200  {object}  dto.RackLevelSlotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rack-level-slots/{id} [get]
func (h *RackLevelSlotHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "casilla no encontrada"})
	}
	return c.JSON(out)
}

// ListByLevel godoc
// @Summary      Listar casillas de un nivel
// @Tags         rack-level-slots
// @Security     Bearer
// @Produce      json
// @Param        rack_level_id  query  string  true   "ID del nivel"
// @Param        limit          query  int     false  "Límite"  default(20)
// @Param        offset         query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.RackLevelSlotListResponse
// @Router       /api/rack-level-slots [get]
func (h *RackLevelSlotHandler) ListByLevel(c *fiber.Ctx) error {
	levelID := c.Query("rack_level_id")
	if levelID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rack_level_id es requerido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.ListByLevel(levelID, page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar descripción de una casilla
// @Tags         rack-level-slots
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la casilla"
// @Param        body  body  dto.UpdateRackLevelSlotRequest  true  "description"
// @Success      200   {object}  dto.RackLevelSlotResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rack-level-slots/{id} [put]
func (h *RackLevelSlotHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRackLevelSlotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar casilla
// @Tags         rack-level-slots
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la casilla"
// @Success      200  {object}  dto.RackLevelSlotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rack-level-slots/{id}/activate [post]
func (h *RackLevelSlotHandler) Activate(c *fiber.Ctx) error {
	out, err := h.uc.Activate(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar casilla (debe estar vacía)
// @Tags         rack-level-slots
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la casilla"
// @Success      200  {object}  dto.RackLevelSlotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rack-level-slots/{id}/deactivate [post]
func (h *RackLevelSlotHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
