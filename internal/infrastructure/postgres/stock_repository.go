package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, product_id, weight, product_count,
	waiting_room_id, rack_level_slot_id, is_issued,
	created_at, updated_at`

// StockRepo implementación de StockRepository sobre PostgreSQL.
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste un nuevo stock.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, product_id, weight, product_count,
			waiting_room_id, rack_level_slot_id, is_issued,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ProductID, stock.Weight, stock.ProductCount,
		stock.WaitingRoomID, stock.RackLevelSlotID, stock.IsIssued,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un stock por ID.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1 FOR UPDATE`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// ListForIssueForUpdate devuelve y bloquea los stocks no emitidos con esos IDs.
// El llamador compara longitudes para detectar IDs inexistentes o ya emitidos.
func (r *StockRepo) ListForIssueForUpdate(ids []string) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks
		WHERE id = ANY($1) AND NOT is_issued
		ORDER BY created_at ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list stocks for issue: %w", err)
	}
	defer rows.Close()
	return collectStocks(rows)
}

// List devuelve stocks; issued controla si se incluyen los emitidos.
func (r *StockRepo) List(issued bool, limit, offset int) ([]*entity.Stock, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stocks
		WHERE ($1 OR NOT is_issued)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, issued, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	return collectStocks(rows)
}

// Update actualiza ubicación y estado del stock.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stocks SET waiting_room_id = $2, rack_level_slot_id = $3, is_issued = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.WaitingRoomID, stock.RackLevelSlotID, stock.IsIssued, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

func (r *StockRepo) scanRow(row pgx.Row) (*entity.Stock, error) {
	s, err := scanStock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

func collectStocks(rows pgx.Rows) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	err := row.Scan(
		&s.ID, &s.ProductID, &s.Weight, &s.ProductCount,
		&s.WaitingRoomID, &s.RackLevelSlotID, &s.IsIssued,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
