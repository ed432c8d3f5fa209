package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, user_id, stock_id,
	from_waiting_room_id, to_waiting_room_id,
	from_rack_level_slot_id, to_rack_level_slot_id,
	reception_id, issue_id, created_at`

// StockMovementRepo implementación de StockMovementRepository sobre PostgreSQL.
// Las filas son inmutables: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create inserta una fila de auditoría de movimiento.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, user_id, stock_id,
			from_waiting_room_id, to_waiting_room_id,
			from_rack_level_slot_id, to_rack_level_slot_id,
			reception_id, issue_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.UserID, movement.StockID,
		movement.FromWaitingRoomID, movement.ToWaitingRoomID,
		movement.FromRackLevelSlotID, movement.ToRackLevelSlotID,
		movement.ReceptionID, movement.IssueID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByStock lista los movimientos de un stock, más recientes primero.
func (r *StockMovementRepo) ListByStock(stockID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		WHERE stock_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, stockID, limit, offset)
}

// ListByUser lista los movimientos ejecutados por un usuario.
func (r *StockMovementRepo) ListByUser(userID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, userID, limit, offset)
}

// List lista todos los movimientos, más recientes primero.
func (r *StockMovementRepo) List(limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	err := row.Scan(
		&m.ID, &m.UserID, &m.StockID,
		&m.FromWaitingRoomID, &m.ToWaitingRoomID,
		&m.FromRackLevelSlotID, &m.ToRackLevelSlotID,
		&m.ReceptionID, &m.IssueID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
