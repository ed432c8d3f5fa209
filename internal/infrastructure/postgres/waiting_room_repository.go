package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.WaitingRoomRepository = (*WaitingRoomRepo)(nil)

const waitingRoomColumns = `id, warehouse_id, name,
	max_weight, available_weight, occupied_weight,
	max_slots, available_slots, occupied_slots,
	created_at, updated_at`

// WaitingRoomRepo implementación de WaitingRoomRepository sobre PostgreSQL.
type WaitingRoomRepo struct {
	q Querier
}

// NewWaitingRoomRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWaitingRoomRepository(q Querier) *WaitingRoomRepo {
	return &WaitingRoomRepo{q: q}
}

// Create persiste una nueva sala de espera.
func (r *WaitingRoomRepo) Create(room *entity.WaitingRoom) error {
	query := `
		INSERT INTO waiting_rooms (id, warehouse_id, name,
			max_weight, available_weight, occupied_weight,
			max_slots, available_slots, occupied_slots,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.WarehouseID, room.Name,
		room.Weight.Max, room.Weight.Available, room.Weight.Occupied,
		room.Slots.Max, room.Slots.Available, room.Slots.Occupied,
		room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert waiting room: %w", err)
	}
	return nil
}

// GetByID obtiene una sala por ID.
func (r *WaitingRoomRepo) GetByID(id string) (*entity.WaitingRoom, error) {
	query := `SELECT ` + waitingRoomColumns + ` FROM waiting_rooms WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la sala y bloquea la fila (SELECT FOR UPDATE).
func (r *WaitingRoomRepo) GetForUpdate(id string) (*entity.WaitingRoom, error) {
	query := `SELECT ` + waitingRoomColumns + ` FROM waiting_rooms WHERE id = $1 FOR UPDATE`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// FindAvailableForUpdate devuelve, ya bloqueada, la sala más antigua con peso
// disponible suficiente y al menos un slot libre, o nil si no hay ninguna.
// SKIP LOCKED evita que dos recepciones concurrentes se queden esperando la
// misma sala cuando hay otras libres.
func (r *WaitingRoomRepo) FindAvailableForUpdate(stockWeight decimal.Decimal) (*entity.WaitingRoom, error) {
	query := `
		SELECT ` + waitingRoomColumns + `
		FROM waiting_rooms
		WHERE available_weight >= $1 AND available_slots > 0
		ORDER BY created_at ASC
		LIMIT 1
		FOR UPDATE SKIP LOCKED`
	return r.scanRow(r.q.QueryRow(context.Background(), query, stockWeight))
}

// ExistsByName verifica si ya hay una sala con ese nombre en el almacén.
func (r *WaitingRoomRepo) ExistsByName(warehouseID, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM waiting_rooms WHERE warehouse_id = $1 AND name = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, warehouseID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists waiting room by name: %w", err)
	}
	return exists, nil
}

// List lista salas de espera con paginación.
func (r *WaitingRoomRepo) List(limit, offset int) ([]*entity.WaitingRoom, error) {
	query := `SELECT ` + waitingRoomColumns + ` FROM waiting_rooms ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list waiting rooms: %w", err)
	}
	defer rows.Close()
	var list []*entity.WaitingRoom
	for rows.Next() {
		wr, err := scanWaitingRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan waiting room: %w", err)
		}
		list = append(list, wr)
	}
	return list, rows.Err()
}

// Update actualiza nombre y contadores de la sala.
func (r *WaitingRoomRepo) Update(room *entity.WaitingRoom) error {
	query := `
		UPDATE waiting_rooms SET name = $2,
			max_weight = $3, available_weight = $4, occupied_weight = $5,
			max_slots = $6, available_slots = $7, occupied_slots = $8,
			updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		room.ID, room.Name,
		room.Weight.Max, room.Weight.Available, room.Weight.Occupied,
		room.Slots.Max, room.Slots.Available, room.Slots.Occupied,
		room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update waiting room: %w", err)
	}
	return nil
}

// Delete elimina una sala por ID.
func (r *WaitingRoomRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM waiting_rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete waiting room: %w", err)
	}
	return nil
}

func (r *WaitingRoomRepo) scanRow(row pgx.Row) (*entity.WaitingRoom, error) {
	wr, err := scanWaitingRoom(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get waiting room: %w", err)
	}
	return wr, nil
}

func scanWaitingRoom(row pgx.Row) (*entity.WaitingRoom, error) {
	var wr entity.WaitingRoom
	err := row.Scan(
		&wr.ID, &wr.WarehouseID, &wr.Name,
		&wr.Weight.Max, &wr.Weight.Available, &wr.Weight.Occupied,
		&wr.Slots.Max, &wr.Slots.Available, &wr.Slots.Occupied,
		&wr.CreatedAt, &wr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &wr, nil
}
