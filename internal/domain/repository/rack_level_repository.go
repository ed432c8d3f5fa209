package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// RackLevelRepository define el puerto de persistencia para niveles de estantería.
type RackLevelRepository interface {
	Create(level *entity.RackLevel) error
	GetByID(id string) (*entity.RackLevel, error)
	GetForUpdate(id string) (*entity.RackLevel, error)
	// ExistsByNumber verifica unicidad del número de nivel dentro de la estantería.
	ExistsByNumber(rackID string, number int) (bool, error)
	ListByRack(rackID string, limit, offset int) ([]*entity.RackLevel, error)
	Update(level *entity.RackLevel) error
	Delete(id string) error
}
