package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/almacen-api/internal/application/ports"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con los repos atados a la tx y hace
// Commit o Rollback. Cada operación lógica del almacén pasa por aquí: o se
// aplica completa o no se aplica nada.
func (r *TxRunner) Run(ctx context.Context, fn func(repos *repository.Atomic) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := &repository.Atomic{
		Warehouses:   NewWarehouseRepository(tx),
		Sections:     NewSectionRepository(tx),
		Racks:        NewRackRepository(tx),
		RackLevels:   NewRackLevelRepository(tx),
		Slots:        NewRackLevelSlotRepository(tx),
		WaitingRooms: NewWaitingRoomRepository(tx),
		Products:     NewProductRepository(tx),
		Stocks:       NewStockRepository(tx),
		Movements:    NewStockMovementRepository(tx),
		Receptions:   NewReceptionRepository(tx),
		Issues:       NewIssueRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// NewAtomic construye el conjunto de repos sobre el pool, fuera de transacción.
// Útil para las rutas de solo lectura.
func NewAtomic(pool *pgxpool.Pool) *repository.Atomic {
	return &repository.Atomic{
		Warehouses:   NewWarehouseRepository(pool),
		Sections:     NewSectionRepository(pool),
		Racks:        NewRackRepository(pool),
		RackLevels:   NewRackLevelRepository(pool),
		Slots:        NewRackLevelSlotRepository(pool),
		WaitingRooms: NewWaitingRoomRepository(pool),
		Products:     NewProductRepository(pool),
		Stocks:       NewStockRepository(pool),
		Movements:    NewStockMovementRepository(pool),
		Receptions:   NewReceptionRepository(pool),
		Issues:       NewIssueRepository(pool),
	}
}
