package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// WaitingRoomRepository define el puerto de persistencia para salas de espera.
type WaitingRoomRepository interface {
	Create(room *entity.WaitingRoom) error
	GetByID(id string) (*entity.WaitingRoom, error)
	GetForUpdate(id string) (*entity.WaitingRoom, error)
	// FindAvailableForUpdate devuelve, ya bloqueada, la primera sala con peso
	// disponible suficiente y al menos un slot libre, o nil si no hay ninguna.
	FindAvailableForUpdate(stockWeight decimal.Decimal) (*entity.WaitingRoom, error)
	ExistsByName(warehouseID, name string) (bool, error)
	List(limit, offset int) ([]*entity.WaitingRoom, error)
	Update(room *entity.WaitingRoom) error
	Delete(id string) error
}
