package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// mapDomainError traduce los errores de dominio a respuestas HTTP.
// Los errores específicos envuelven una categoría (%w), así que basta
// con errors.Is sobre los centinelas de categoría.
func mapDomainError(c *fiber.Ctx, err error) error {
	var status int
	var code string
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrAlreadyExists):
		status, code = fiber.StatusConflict, "ALREADY_EXISTS"
	case errors.Is(err, domain.ErrCapacityExceeded):
		status, code = fiber.StatusConflict, "CAPACITY_EXCEEDED"
	case errors.Is(err, domain.ErrIllegalState):
		status, code = fiber.StatusConflict, "ILLEGAL_STATE"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
