package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para el almacén (DIP).
// El sistema admite un único almacén: GetSingle devuelve la fila si existe.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetSingle() (*entity.Warehouse, error)
	GetByID(id string) (*entity.Warehouse, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de la tx.
	GetForUpdate(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	Delete(id string) error
}
