package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.RackLevelRepository = (*RackLevelRepo)(nil)

const rackLevelColumns = `id, rack_id, rack_level_number, description,
	max_weight, available_weight, occupied_weight,
	max_slots, available_slots, occupied_slots, inactive_slots,
	created_at, updated_at`

// RackLevelRepo implementación de RackLevelRepository sobre PostgreSQL.
type RackLevelRepo struct {
	q Querier
}

// NewRackLevelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRackLevelRepository(q Querier) *RackLevelRepo {
	return &RackLevelRepo{q: q}
}

// Create persiste un nuevo nivel.
func (r *RackLevelRepo) Create(level *entity.RackLevel) error {
	query := `
		INSERT INTO rack_levels (id, rack_id, rack_level_number, description,
			max_weight, available_weight, occupied_weight,
			max_slots, available_slots, occupied_slots, inactive_slots,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		level.ID, level.RackID, level.RackLevelNumber, level.Description,
		level.Weight.Max, level.Weight.Available, level.Weight.Occupied,
		level.Slots.Max, level.Slots.Available, level.Slots.Occupied, level.InactiveSlots,
		level.CreatedAt, level.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rack level: %w", err)
	}
	return nil
}

// GetByID obtiene un nivel por ID.
func (r *RackLevelRepo) GetByID(id string) (*entity.RackLevel, error) {
	query := `SELECT ` + rackLevelColumns + ` FROM rack_levels WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el nivel y bloquea la fila (SELECT FOR UPDATE).
func (r *RackLevelRepo) GetForUpdate(id string) (*entity.RackLevel, error) {
	query := `SELECT ` + rackLevelColumns + ` FROM rack_levels WHERE id = $1 FOR UPDATE`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// ExistsByNumber verifica si ya hay un nivel con ese número en la estantería.
func (r *RackLevelRepo) ExistsByNumber(rackID string, number int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM rack_levels WHERE rack_id = $1 AND rack_level_number = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, rackID, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists rack level by number: %w", err)
	}
	return exists, nil
}

// ListByRack lista niveles de una estantería ordenados por número.
func (r *RackLevelRepo) ListByRack(rackID string, limit, offset int) ([]*entity.RackLevel, error) {
	query := `SELECT ` + rackLevelColumns + ` FROM rack_levels WHERE rack_id = $1 ORDER BY rack_level_number ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, rackID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list rack levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.RackLevel
	for rows.Next() {
		l, err := scanRackLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rack level: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Update actualiza descripción y contadores del nivel.
func (r *RackLevelRepo) Update(level *entity.RackLevel) error {
	query := `
		UPDATE rack_levels SET description = $2,
			max_weight = $3, available_weight = $4, occupied_weight = $5,
			max_slots = $6, available_slots = $7, occupied_slots = $8, inactive_slots = $9,
			updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		level.ID, level.Description,
		level.Weight.Max, level.Weight.Available, level.Weight.Occupied,
		level.Slots.Max, level.Slots.Available, level.Slots.Occupied, level.InactiveSlots,
		level.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rack level: %w", err)
	}
	return nil
}

// Delete elimina un nivel por ID.
func (r *RackLevelRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM rack_levels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rack level: %w", err)
	}
	return nil
}

func (r *RackLevelRepo) scanRow(row pgx.Row) (*entity.RackLevel, error) {
	l, err := scanRackLevel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rack level: %w", err)
	}
	return l, nil
}

func scanRackLevel(row pgx.Row) (*entity.RackLevel, error) {
	var l entity.RackLevel
	err := row.Scan(
		&l.ID, &l.RackID, &l.RackLevelNumber, &l.Description,
		&l.Weight.Max, &l.Weight.Available, &l.Weight.Occupied,
		&l.Slots.Max, &l.Slots.Available, &l.Slots.Occupied, &l.InactiveSlots,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
