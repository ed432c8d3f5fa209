package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.RackLevelSlotRepository = (*RackLevelSlotRepo)(nil)

const slotColumns = `id, rack_level_id, slot_number, description, is_active, stock_id, created_at, updated_at`

// RackLevelSlotRepo implementación de RackLevelSlotRepository sobre PostgreSQL.
type RackLevelSlotRepo struct {
	q Querier
}

// NewRackLevelSlotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRackLevelSlotRepository(q Querier) *RackLevelSlotRepo {
	return &RackLevelSlotRepo{q: q}
}

// Create persiste una casilla.
func (r *RackLevelSlotRepo) Create(slot *entity.RackLevelSlot) error {
	query := `
		INSERT INTO rack_level_slots (id, rack_level_id, slot_number, description, is_active, stock_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		slot.ID, slot.RackLevelID, slot.SlotNumber, slot.Description,
		slot.IsActive, slot.StockID, slot.CreatedAt, slot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rack level slot: %w", err)
	}
	return nil
}

// CreateBatch inserta las casillas autogeneradas de un nivel en un solo batch.
func (r *RackLevelSlotRepo) CreateBatch(slots []*entity.RackLevelSlot) error {
	if len(slots) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO rack_level_slots (id, rack_level_id, slot_number, description, is_active, stock_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, slot := range slots {
		batch.Queue(query,
			slot.ID, slot.RackLevelID, slot.SlotNumber, slot.Description,
			slot.IsActive, slot.StockID, slot.CreatedAt, slot.UpdatedAt,
		)
	}
	br := r.q.SendBatch(context.Background(), batch)
	defer br.Close()
	for range slots {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert rack level slot batch: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una casilla por ID.
func (r *RackLevelSlotRepo) GetByID(id string) (*entity.RackLevelSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM rack_level_slots WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la casilla y bloquea la fila (SELECT FOR UPDATE).
func (r *RackLevelSlotRepo) GetForUpdate(id string) (*entity.RackLevelSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM rack_level_slots WHERE id = $1 FOR UPDATE`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// FindFirstFree devuelve, bloqueada, la casilla libre y activa de menor número
// del nivel, o nil si no hay ninguna.
func (r *RackLevelSlotRepo) FindFirstFree(rackLevelID string) (*entity.RackLevelSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM rack_level_slots
		WHERE rack_level_id = $1 AND is_active AND stock_id IS NULL
		ORDER BY slot_number ASC
		LIMIT 1
		FOR UPDATE`
	return r.scanRow(r.q.QueryRow(context.Background(), query, rackLevelID))
}

// ListTrailing devuelve las casillas con número mayor a fromNumber, ascendente.
// Se usa al reducir el tamaño de un nivel.
func (r *RackLevelSlotRepo) ListTrailing(rackLevelID string, fromNumber int) ([]*entity.RackLevelSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM rack_level_slots
		WHERE rack_level_id = $1 AND slot_number > $2
		ORDER BY slot_number ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, rackLevelID, fromNumber)
	if err != nil {
		return nil, fmt.Errorf("list trailing slots: %w", err)
	}
	defer rows.Close()
	return collectSlots(rows)
}

// ListByLevel lista casillas de un nivel ordenadas por número.
func (r *RackLevelSlotRepo) ListByLevel(rackLevelID string, limit, offset int) ([]*entity.RackLevelSlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM rack_level_slots
		WHERE rack_level_id = $1
		ORDER BY slot_number ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, rackLevelID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()
	return collectSlots(rows)
}

// Update actualiza descripción, estado y stock de la casilla.
func (r *RackLevelSlotRepo) Update(slot *entity.RackLevelSlot) error {
	query := `
		UPDATE rack_level_slots SET description = $2, is_active = $3, stock_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		slot.ID, slot.Description, slot.IsActive, slot.StockID, slot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rack level slot: %w", err)
	}
	return nil
}

// Delete elimina una casilla por ID.
func (r *RackLevelSlotRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rack_level_slots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rack level slot: %w", err)
	}
	return nil
}

func (r *RackLevelSlotRepo) scanRow(row pgx.Row) (*entity.RackLevelSlot, error) {
	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rack level slot: %w", err)
	}
	return s, nil
}

func collectSlots(rows pgx.Rows) ([]*entity.RackLevelSlot, error) {
	var list []*entity.RackLevelSlot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rack level slot: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSlot(row pgx.Row) (*entity.RackLevelSlot, error) {
	var s entity.RackLevelSlot
	err := row.Scan(
		&s.ID, &s.RackLevelID, &s.SlotNumber, &s.Description,
		&s.IsActive, &s.StockID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
