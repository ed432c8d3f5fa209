package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.SectionRepository = (*SectionRepo)(nil)

const sectionColumns = `id, warehouse_id, section_name,
	max_weight, available_weight, occupied_weight,
	reserved_weight, weight_to_reserve,
	max_racks, available_racks, occupied_racks,
	created_at, updated_at`

// SectionRepo implementación de SectionRepository sobre PostgreSQL.
type SectionRepo struct {
	q Querier
}

// NewSectionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSectionRepository(q Querier) *SectionRepo {
	return &SectionRepo{q: q}
}

// Create persiste una nueva sección.
func (r *SectionRepo) Create(section *entity.Section) error {
	query := `
		INSERT INTO sections (id, warehouse_id, section_name,
			max_weight, available_weight, occupied_weight,
			reserved_weight, weight_to_reserve,
			max_racks, available_racks, occupied_racks,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		section.ID, section.WarehouseID, section.SectionName,
		section.Weight.Max, section.Weight.Available, section.Weight.Occupied,
		section.Reservation.Reserved, section.Reservation.ToReserve,
		section.Racks.Max, section.Racks.Available, section.Racks.Occupied,
		section.CreatedAt, section.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert section: %w", err)
	}
	return nil
}

// GetByID obtiene una sección por ID.
func (r *SectionRepo) GetByID(id string) (*entity.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = $1`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene la sección y bloquea la fila (SELECT FOR UPDATE).
func (r *SectionRepo) GetForUpdate(id string) (*entity.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = $1 FOR UPDATE`
	return r.scanRow(r.q.QueryRow(context.Background(), query, id))
}

// ExistsByName verifica si ya hay una sección con ese nombre en el almacén.
func (r *SectionRepo) ExistsByName(warehouseID, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM sections WHERE warehouse_id = $1 AND section_name = $2)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, warehouseID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists section by name: %w", err)
	}
	return exists, nil
}

// List lista secciones con paginación.
func (r *SectionRepo) List(limit, offset int) ([]*entity.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()
	var list []*entity.Section
	for rows.Next() {
		s, err := r.scanRows(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update actualiza nombre y contadores de la sección.
func (r *SectionRepo) Update(section *entity.Section) error {
	query := `
		UPDATE sections SET section_name = $2,
			max_weight = $3, available_weight = $4, occupied_weight = $5,
			reserved_weight = $6, weight_to_reserve = $7,
			max_racks = $8, available_racks = $9, occupied_racks = $10,
			updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		section.ID, section.SectionName,
		section.Weight.Max, section.Weight.Available, section.Weight.Occupied,
		section.Reservation.Reserved, section.Reservation.ToReserve,
		section.Racks.Max, section.Racks.Available, section.Racks.Occupied,
		section.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	return nil
}

// Delete elimina una sección por ID.
func (r *SectionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}

func (r *SectionRepo) scanRow(row pgx.Row) (*entity.Section, error) {
	s, err := scanSection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section: %w", err)
	}
	return s, nil
}

func (r *SectionRepo) scanRows(rows pgx.Rows) (*entity.Section, error) {
	s, err := scanSection(rows)
	if err != nil {
		return nil, fmt.Errorf("scan section: %w", err)
	}
	return s, nil
}

func scanSection(row pgx.Row) (*entity.Section, error) {
	var s entity.Section
	err := row.Scan(
		&s.ID, &s.WarehouseID, &s.SectionName,
		&s.Weight.Max, &s.Weight.Available, &s.Weight.Occupied,
		&s.Reservation.Reserved, &s.Reservation.ToReserve,
		&s.Racks.Max, &s.Racks.Available, &s.Racks.Occupied,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
