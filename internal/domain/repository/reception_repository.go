package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ReceptionRepository define el puerto de persistencia para recepciones.
type ReceptionRepository interface {
	Create(reception *entity.Reception) error
	GetByID(id string) (*entity.Reception, error)
	List(limit, offset int) ([]*entity.Reception, error)
}

// IssueRepository define el puerto de persistencia para emisiones.
type IssueRepository interface {
	Create(issue *entity.Issue) error
	GetByID(id string) (*entity.Issue, error)
	List(limit, offset int) ([]*entity.Issue, error)
}
