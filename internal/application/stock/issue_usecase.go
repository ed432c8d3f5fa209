package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/placement"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// decimalFromInt convierte una cantidad entera a decimal para multiplicar pesos.
func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// IssueUseCase emite stocks fuera del sistema: libera los recursos de su
// contenedor, marca IsIssued (irreversible) y registra el movimiento con la
// referencia de la emisión. Todo en una transacción.
type IssueUseCase struct {
	txRunner  ports.TxRunner
	engine    *placement.Engine
	issueRepo repository.IssueRepository
}

// NewIssueUseCase construye el caso de uso.
func NewIssueUseCase(txRunner ports.TxRunner, engine *placement.Engine, issueRepo repository.IssueRepository) *IssueUseCase {
	return &IssueUseCase{txRunner: txRunner, engine: engine, issueRepo: issueRepo}
}

// Create emite el conjunto de stocks indicado. Si algún ID no resuelve a un
// stock no emitido, la operación entera falla: pedir N y encontrar menos de N
// es un conflicto (algún stock ya fue emitido o no existe).
func (uc *IssueUseCase) Create(ctx context.Context, userID string, in dto.CreateIssueRequest) (*dto.IssueResponse, error) {
	if len(in.StockIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	issue := &entity.Issue{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: in.Description,
		CreatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		stocks, err := repos.Stocks.ListForIssueForUpdate(in.StockIDs)
		if err != nil {
			return err
		}
		if len(stocks) != len(in.StockIDs) {
			return domain.ErrServiceConflict
		}
		if err := repos.Issues.Create(issue); err != nil {
			return err
		}
		for _, s := range stocks {
			from, err := uc.engine.ReleaseCurrent(repos, s)
			if err != nil {
				return err
			}
			s.IsIssued = true
			s.UpdatedAt = now
			if err := repos.Stocks.Update(s); err != nil {
				return err
			}
			movement := &entity.StockMovement{
				ID:                  uuid.New().String(),
				UserID:              userID,
				StockID:             s.ID,
				FromWaitingRoomID:   from.WaitingRoomID,
				FromRackLevelSlotID: from.RackLevelSlotID,
				IssueID:             &issue.ID,
				CreatedAt:           now,
			}
			if err := repos.Movements.Create(movement); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.IssueResponse{
		ID:          issue.ID,
		UserID:      issue.UserID,
		Description: issue.Description,
		StockIDs:    in.StockIDs,
		CreatedAt:   issue.CreatedAt,
	}, nil
}

// GetByID devuelve una emisión.
func (uc *IssueUseCase) GetByID(id string) (*dto.IssueResponse, error) {
	issue, err := uc.issueRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.IssueResponse{
		ID:          issue.ID,
		UserID:      issue.UserID,
		Description: issue.Description,
		CreatedAt:   issue.CreatedAt,
	}, nil
}
