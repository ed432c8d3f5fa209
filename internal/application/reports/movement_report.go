package reports

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementRow fila plana del reporte de movimientos.
type MovementRow struct {
	StockID     string
	UserID      string
	From        string
	To          string
	ReceptionID string
	IssueID     string
	MovedAt     time.Time
}

// PDFGenerator genera la representación PDF del historial de movimientos.
type PDFGenerator interface {
	MovementHistory(rows []MovementRow) ([]byte, error)
}

// MovementReportUseCase arma el reporte PDF del historial de movimientos.
type MovementReportUseCase struct {
	movRepo   repository.StockMovementRepository
	generator PDFGenerator
}

// NewMovementReportUseCase construye el caso de uso.
func NewMovementReportUseCase(movRepo repository.StockMovementRepository, generator PDFGenerator) *MovementReportUseCase {
	return &MovementReportUseCase{movRepo: movRepo, generator: generator}
}

// Generate produce el PDF con los últimos movimientos (hasta limit filas).
func (uc *MovementReportUseCase) Generate(limit int) ([]byte, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	movements, err := uc.movRepo.List(limit, 0)
	if err != nil {
		return nil, err
	}
	rows := make([]MovementRow, 0, len(movements))
	for _, m := range movements {
		row := MovementRow{
			StockID: m.StockID,
			UserID:  m.UserID,
			MovedAt: m.CreatedAt,
		}
		switch {
		case m.FromWaitingRoomID != nil:
			row.From = "sala " + *m.FromWaitingRoomID
		case m.FromRackLevelSlotID != nil:
			row.From = "casilla " + *m.FromRackLevelSlotID
		}
		switch {
		case m.ToWaitingRoomID != nil:
			row.To = "sala " + *m.ToWaitingRoomID
		case m.ToRackLevelSlotID != nil:
			row.To = "casilla " + *m.ToRackLevelSlotID
		case m.IssueID != nil:
			row.To = "emitido"
		}
		if m.ReceptionID != nil {
			row.ReceptionID = *m.ReceptionID
		}
		if m.IssueID != nil {
			row.IssueID = *m.IssueID
		}
		rows = append(rows, row)
	}
	return uc.generator.MovementHistory(rows)
}
