package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// RackRepository define el puerto de persistencia para estanterías.
type RackRepository interface {
	Create(rack *entity.Rack) error
	GetByID(id string) (*entity.Rack, error)
	GetForUpdate(id string) (*entity.Rack, error)
	// ExistsByName verifica unicidad del nombre dentro de la sección.
	ExistsByName(sectionID, name string) (bool, error)
	ListBySection(sectionID string, limit, offset int) ([]*entity.Rack, error)
	Update(rack *entity.Rack) error
	Delete(id string) error
}
