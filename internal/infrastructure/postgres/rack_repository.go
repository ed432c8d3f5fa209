package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.RackRepository = (*RackRepo)(nil)

const rackColumns = `id, section_id, rack_name,
	max_weight, available_weight, occupied_weight,
	reserved_weight, weight_to_reserve,
	max_rack_levels, available_rack_levels, occupied_rack_levels,
	created_at, updated_at`

// RackRepo implementación de RackRepository sobre PostgreSQL.
type RackRepo struct {
	q Querier
}

// NewRackRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRackRepository(q Querier) *RackRepo {
	return &RackRepo{q: q}
}

// Create persiste una nueva estantería.
func (r *RackRepo) Create(rack *entity.Rack) error {
	query := `
		INSERT INTO racks (id, section_id, rack_name,
			max_weight, available_weight, occupied_weight,
			reserved_weight, weight_to_reserve,
			max_rack_levels, available_rack_levels, occupied_rack_levels,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		rack.ID, rack.SectionID, rack.RackName,
		rack.Weight.Max, rack.Weight.Available, rack.Weight.Occupied,
		rack.Reservation.Reserved, rack.Reservation.ToReserve,
		rack.Levels.Max, rack.Levels.Available, rack.Levels.Occupied,
		rack.CreatedAt, rack.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rack: %w", err)
	}
	return nil
}

// GetByID obtiene una estantería por ID.
func (r *RackRepo) GetByID(id string) (*entity.Rack, error) {
	query := `SELECT ` + rackColumns + ` FROM racks WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la estantería y bloquea la fila (SELECT FOR UPDATE).
func (r *RackRepo) GetForUpdate(id string) (*entity.Rack, error) {
	query := `SELECT ` + rackColumns + ` FROM racks WHERE id = $1 FOR UPDATE`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// ExistsByName verifica si ya hay una estantería con ese nombre en la sección.
func (r *RackRepo) ExistsByName(sectionID, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM racks WHERE section_id = $1 AND rack_name = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, sectionID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists rack by name: %w", err)
	}
	return exists, nil
}

// ListBySection lista estanterías de una sección con paginación.
func (r *RackRepo) ListBySection(sectionID string, limit, offset int) ([]*entity.Rack, error) {
	query := `SELECT ` + rackColumns + ` FROM racks WHERE section_id = $1 ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, sectionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list racks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Rack
	for rows.Next() {
		rk, err := scanRack(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rack: %w", err)
		}
		list = append(list, rk)
	}
	return list, rows.Err()
}

// Update actualiza nombre y contadores de la estantería.
func (r *RackRepo) Update(rack *entity.Rack) error {
	query := `
		UPDATE racks SET rack_name = $2,
			max_weight = $3, available_weight = $4, occupied_weight = $5,
			reserved_weight = $6, weight_to_reserve = $7,
			max_rack_levels = $8, available_rack_levels = $9, occupied_rack_levels = $10,
			updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rack.ID, rack.RackName,
		rack.Weight.Max, rack.Weight.Available, rack.Weight.Occupied,
		rack.Reservation.Reserved, rack.Reservation.ToReserve,
		rack.Levels.Max, rack.Levels.Available, rack.Levels.Occupied,
		rack.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rack: %w", err)
	}
	return nil
}

// Delete elimina una estantería por ID.
func (r *RackRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM racks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rack: %w", err)
	}
	return nil
}

func (r *RackRepo) scanRow(row pgx.Row) (*entity.Rack, error) {
	rk, err := scanRack(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rack: %w", err)
	}
	return rk, nil
}

func scanRack(row pgx.Row) (*entity.Rack, error) {
	var rk entity.Rack
	err := row.Scan(
		&rk.ID, &rk.SectionID, &rk.RackName,
		&rk.Weight.Max, &rk.Weight.Available, &rk.Weight.Occupied,
		&rk.Reservation.Reserved, &rk.Reservation.ToReserve,
		&rk.Levels.Max, &rk.Levels.Available, &rk.Levels.Occupied,
		&rk.CreatedAt, &rk.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rk, nil
}
