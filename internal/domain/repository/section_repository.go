package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// SectionRepository define el puerto de persistencia para secciones.
type SectionRepository interface {
	Create(section *entity.Section) error
	GetByID(id string) (*entity.Section, error)
	GetForUpdate(id string) (*entity.Section, error)
	// ExistsByName verifica unicidad del nombre dentro del almacén.
	ExistsByName(warehouseID, name string) (bool, error)
	List(limit, offset int) ([]*entity.Section, error)
	Update(section *entity.Section) error
	Delete(id string) error
}
