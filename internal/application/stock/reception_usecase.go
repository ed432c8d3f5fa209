package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/placement"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ReceptionUseCase registra la llegada de mercancía: por cada ítem crea un
// stock (peso = peso unitario del producto * cantidad) y lo coloca mediante el
// motor de asignación. La recepción es todo-o-nada: cualquier fallo revierte
// la transacción completa y no queda nada persistido.
type ReceptionUseCase struct {
	txRunner      ports.TxRunner
	engine        *placement.Engine
	receptionRepo repository.ReceptionRepository
}

// NewReceptionUseCase construye el caso de uso.
func NewReceptionUseCase(txRunner ports.TxRunner, engine *placement.Engine, receptionRepo repository.ReceptionRepository) *ReceptionUseCase {
	return &ReceptionUseCase{txRunner: txRunner, engine: engine, receptionRepo: receptionRepo}
}

// Create ejecuta la recepción completa en una transacción.
func (uc *ReceptionUseCase) Create(ctx context.Context, userID string, in dto.CreateReceptionRequest) (*dto.ReceptionResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrMissingProductData
	}
	now := time.Now()
	reception := &entity.Reception{
		ID:          uuid.New().String(),
		UserID:      userID,
		Description: in.Description,
		CreatedAt:   now,
	}
	stocks := make([]*entity.Stock, 0, len(in.Items))

	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		if err := repos.Receptions.Create(reception); err != nil {
			return err
		}
		for _, item := range in.Items {
			if item.ProductID == "" || item.ProductCount < 1 {
				return domain.ErrMissingProductData
			}
			product, err := repos.Products.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.IsLegacy {
				return domain.ErrCannotReceiveLegacyProduct
			}
			s := &entity.Stock{
				ID:           uuid.New().String(),
				ProductID:    product.ID,
				Weight:       product.Weight.Mul(decimalFromInt(item.ProductCount)),
				ProductCount: item.ProductCount,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := repos.Stocks.Create(s); err != nil {
				return err
			}
			if err := uc.engine.Place(repos, userID, s, item.Destination, &reception.ID); err != nil {
				return err
			}
			stocks = append(stocks, s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		items = append(items, *toStockResponse(s))
	}
	return &dto.ReceptionResponse{
		ID:          reception.ID,
		UserID:      reception.UserID,
		Description: reception.Description,
		Stocks:      items,
		CreatedAt:   reception.CreatedAt,
	}, nil
}

// GetByID devuelve una recepción.
func (uc *ReceptionUseCase) GetByID(id string) (*dto.ReceptionResponse, error) {
	reception, err := uc.receptionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reception == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.ReceptionResponse{
		ID:          reception.ID,
		UserID:      reception.UserID,
		Description: reception.Description,
		CreatedAt:   reception.CreatedAt,
	}, nil
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	if s == nil {
		return nil
	}
	return &dto.StockResponse{
		ID:              s.ID,
		ProductID:       s.ProductID,
		Weight:          s.Weight,
		ProductCount:    s.ProductCount,
		WaitingRoomID:   s.WaitingRoomID,
		RackLevelSlotID: s.RackLevelSlotID,
		IsIssued:        s.IsIssued,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
