package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia del historial de
// movimientos. Solo inserta y lista: las filas son inmutables.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByStock(stockID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByUser(userID string, limit, offset int) ([]*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
}
