package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/hierarchy"
)

// WaitingRoomHandler maneja las peticiones HTTP de salas de espera (protegido, staff).
type WaitingRoomHandler struct {
	uc *hierarchy.WaitingRoomUseCase
}

// NewWaitingRoomHandler construye el handler.
func NewWaitingRoomHandler(uc *hierarchy.WaitingRoomUseCase) *WaitingRoomHandler {
	return &WaitingRoomHandler{uc: uc}
}

// Create godoc
// @Summary      Crear sala de espera
// @Tags         waiting-rooms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWaitingRoomRequest  true  "name, max_weight, max_stocks"
// @Success      201   {object}  dto.WaitingRoomResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/waiting-rooms [post]
func (h *WaitingRoomHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWaitingRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener sala de espera por ID
// @Tags         waiting-rooms
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la sala"
// @Success      200  {object}  dto.WaitingRoomResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/waiting-rooms/{id} [get]
func (h *WaitingRoomHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sala de espera no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar salas de espera
// @Tags         waiting-rooms
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.WaitingRoomListResponse
// @Router       /api/waiting-rooms [get]
func (h *WaitingRoomHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Redimensionar o renombrar sala de espera
// @Tags         waiting-rooms
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la sala"
// @Param        body  body  dto.UpdateWaitingRoomRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.WaitingRoomResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/waiting-rooms/{id} [put]
func (h *WaitingRoomHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateWaitingRoomRequest
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
// @Summary      Eliminar sala de espera (solo si está vacía)
// @Tags         waiting-rooms
// @Security     Bearer
// @Param        id  path  string  true  "ID de la sala"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/waiting-rooms/{id} [delete]
func (h *WaitingRoomHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
