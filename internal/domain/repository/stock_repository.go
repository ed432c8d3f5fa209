package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para stocks.
// Las operaciones de mutación se usan dentro de transacciones.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByID(id string) (*entity.Stock, error)
	GetForUpdate(id string) (*entity.Stock, error)
	// ListForIssueForUpdate devuelve y bloquea los stocks no emitidos con esos IDs.
	ListForIssueForUpdate(ids []string) ([]*entity.Stock, error)
	// List devuelve stocks; issued controla si se incluyen los emitidos.
	List(issued bool, limit, offset int) ([]*entity.Stock, error)
	Update(stock *entity.Stock) error
}
