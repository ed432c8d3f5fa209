package stock

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/placement"
	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MoveStockUseCase ejecuta movimientos internos de stock (casilla ↔ sala de
// espera ↔ casilla) delegando en el motor de asignación. El permiso del
// usuario para mover stocks se verifica en el middleware HTTP.
type MoveStockUseCase struct {
	txRunner  ports.TxRunner
	engine    *placement.Engine
	stockRepo repository.StockRepository
	movRepo   repository.StockMovementRepository
}

// NewMoveStockUseCase construye el caso de uso.
func NewMoveStockUseCase(txRunner ports.TxRunner, engine *placement.Engine, stockRepo repository.StockRepository, movRepo repository.StockMovementRepository) *MoveStockUseCase {
	return &MoveStockUseCase{txRunner: txRunner, engine: engine, stockRepo: stockRepo, movRepo: movRepo}
}

// Move reubica un stock en el destino indicado, en una transacción.
func (uc *MoveStockUseCase) Move(ctx context.Context, userID, stockID string, in dto.MoveStockRequest) (*dto.StockResponse, error) {
	var moved *dto.StockResponse
	err := uc.txRunner.Run(ctx, func(repos *repository.Atomic) error {
		stock, err := repos.Stocks.GetForUpdate(stockID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		if err := uc.engine.Relocate(repos, userID, stock, in.Destination); err != nil {
			return err
		}
		moved = toStockResponse(stock)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// GetByID devuelve un stock.
func (uc *MoveStockUseCase) GetByID(id string) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, domain.ErrNotFound
	}
	return toStockResponse(stock), nil
}

// List lista stocks; con issued=false solo los disponibles.
func (uc *MoveStockUseCase) List(issued bool, limit, offset int) (*dto.StockListResponse, error) {
	list, err := uc.stockRepo.List(issued, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return &dto.StockListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// History lista el historial de movimientos de un stock.
func (uc *MoveStockUseCase) History(stockID string, limit, offset int) (*dto.StockMovementListResponse, error) {
	list, err := uc.movRepo.ListByStock(stockID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(list, limit, offset), nil
}
