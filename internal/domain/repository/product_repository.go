package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	ExistsByName(name string) (bool, error)
	List(legacy *bool, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
}
