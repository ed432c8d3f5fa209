package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/reports"
)

// ReportHandler maneja la generación de reportes PDF (protegido, staff).
type ReportHandler struct {
	movementReport *reports.MovementReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(movementReport *reports.MovementReportUseCase) *ReportHandler {
	return &ReportHandler{movementReport: movementReport}
}

// MovementReport godoc
// @Summary      Reporte PDF del historial de movimientos
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        limit  query  int  false  "Máximo de filas"  default(200)
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) MovementReport(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "200"))
	pdfBytes, err := h.movementReport.Generate(limit)
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(pdfBytes)
}
