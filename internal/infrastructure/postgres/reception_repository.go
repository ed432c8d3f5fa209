package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ReceptionRepository = (*ReceptionRepo)(nil)
var _ repository.IssueRepository = (*IssueRepo)(nil)

// ReceptionRepo implementación de ReceptionRepository sobre PostgreSQL.
type ReceptionRepo struct {
	q Querier
}

// NewReceptionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceptionRepository(q Querier) *ReceptionRepo {
	return &ReceptionRepo{q: q}
}

// Create inserta una recepción.
func (r *ReceptionRepo) Create(reception *entity.Reception) error {
	query := `INSERT INTO receptions (id, user_id, description, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		reception.ID, reception.UserID, reception.Description, reception.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reception: %w", err)
	}
	return nil
}

// GetByID obtiene una recepción por ID.
func (r *ReceptionRepo) GetByID(id string) (*entity.Reception, error) {
	query := `SELECT id, user_id, description, created_at FROM receptions WHERE id = $1`
	var rec entity.Reception
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.UserID, &rec.Description, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reception: %w", err)
	}
	return &rec, nil
}

// List lista recepciones, más recientes primero.
func (r *ReceptionRepo) List(limit, offset int) ([]*entity.Reception, error) {
	query := `SELECT id, user_id, description, created_at FROM receptions
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reception
	for rows.Next() {
		var rec entity.Reception
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan reception: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// IssueRepo implementación de IssueRepository sobre PostgreSQL.
type IssueRepo struct {
	q Querier
}

// NewIssueRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIssueRepository(q Querier) *IssueRepo {
	return &IssueRepo{q: q}
}

// Create inserta una emisión.
func (r *IssueRepo) Create(issue *entity.Issue) error {
	query := `INSERT INTO issues (id, user_id, description, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		issue.ID, issue.UserID, issue.Description, issue.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert issue: %w", err)
	}
	return nil
}

// GetByID obtiene una emisión por ID.
func (r *IssueRepo) GetByID(id string) (*entity.Issue, error) {
	query := `SELECT id, user_id, description, created_at FROM issues WHERE id = $1`
	var is entity.Issue
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&is.ID, &is.UserID, &is.Description, &is.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get issue: %w", err)
	}
	return &is, nil
}

// List lista emisiones, más recientes primero.
func (r *IssueRepo) List(limit, offset int) ([]*entity.Issue, error) {
	query := `SELECT id, user_id, description, created_at FROM issues
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()
	var list []*entity.Issue
	for rows.Next() {
		var is entity.Issue
		if err := rows.Scan(&is.ID, &is.UserID, &is.Description, &is.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		list = append(list, &is)
	}
	return list, rows.Err()
}
