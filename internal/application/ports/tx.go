package ports

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios atados a esa tx. Garantiza atomicidad: Commit si fn devuelve
// nil, Rollback en cualquier otro caso. Cada operación lógica del almacén
// (creación de contenedores, recepción, emisión, movimiento) corre en una
// única transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos *repository.Atomic) error) error
}
