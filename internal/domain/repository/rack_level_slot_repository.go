package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// RackLevelSlotRepository define el puerto de persistencia para casillas.
type RackLevelSlotRepository interface {
	Create(slot *entity.RackLevelSlot) error
	// CreateBatch inserta las casillas autogeneradas de un nivel nuevo.
	CreateBatch(slots []*entity.RackLevelSlot) error
	GetByID(id string) (*entity.RackLevelSlot, error)
	GetForUpdate(id string) (*entity.RackLevelSlot, error)
	// FindFirstFree devuelve la casilla libre y activa de menor número del nivel
	// (ORDER BY slot_number ASC LIMIT 1), o nil si no existe.
	FindFirstFree(rackLevelID string) (*entity.RackLevelSlot, error)
	// ListTrailing devuelve las casillas con número > fromNumber, ordenadas ascendente.
	ListTrailing(rackLevelID string, fromNumber int) ([]*entity.RackLevelSlot, error)
	ListByLevel(rackLevelID string, limit, offset int) ([]*entity.RackLevelSlot, error)
	Update(slot *entity.RackLevelSlot) error
	Delete(id string) error
}
