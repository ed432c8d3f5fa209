package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

const warehouseColumns = `id, name,
	max_sections, available_sections, occupied_sections,
	max_waiting_rooms, available_waiting_rooms, occupied_waiting_rooms,
	created_at, updated_at`

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persiste el almacén. La unicidad global se apoya en un índice único
// sobre una columna constante (singleton_guard).
func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name,
			max_sections, available_sections, occupied_sections,
			max_waiting_rooms, available_waiting_rooms, occupied_waiting_rooms,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name,
		warehouse.Sections.Max, warehouse.Sections.Available, warehouse.Sections.Occupied,
		warehouse.WaitingRooms.Max, warehouse.WaitingRooms.Available, warehouse.WaitingRooms.Occupied,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrWarehouseAlreadyExists
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetSingle devuelve el único almacén del sistema, o nil si aún no existe.
func (r *WarehouseRepo) GetSingle() (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses LIMIT 1`
	return r.scanRow(r.q.QueryRow(context.Background(), query))
}

// GetByID obtiene un almacén por ID.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el almacén y bloquea la fila (SELECT FOR UPDATE).
func (r *WarehouseRepo) GetForUpdate(id string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE id = $1 FOR UPDATE`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// Update actualiza nombre y contadores del almacén.
func (r *WarehouseRepo) Update(warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $2,
			max_sections = $3, available_sections = $4, occupied_sections = $5,
			max_waiting_rooms = $6, available_waiting_rooms = $7, occupied_waiting_rooms = $8,
			updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		warehouse.ID, warehouse.Name,
		warehouse.Sections.Max, warehouse.Sections.Available, warehouse.Sections.Occupied,
		warehouse.WaitingRooms.Max, warehouse.WaitingRooms.Available, warehouse.WaitingRooms.Occupied,
		warehouse.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// Delete elimina el almacén por ID.
func (r *WarehouseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) scanRow(row pgx.Row) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := row.Scan(
		&w.ID, &w.Name,
		&w.Sections.Max, &w.Sections.Available, &w.Sections.Occupied,
		&w.WaitingRooms.Max, &w.WaitingRooms.Available, &w.WaitingRooms.Occupied,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}
