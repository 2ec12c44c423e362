package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) Create(ctx context.Context, t *domain.Tool) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	query := `INSERT INTO tools (id, owner_id, title, description, category, price_per_day_cents, district, municipality, active, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.OwnerID, t.Title, t.Description, t.Category, t.PricePerDayCents,
		t.District, t.Municipality, t.Active, time.Now())
	return err
}

func (r *toolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	t := &domain.Tool{}
	var createdOn time.Time
	query := `SELECT id, owner_id, title, description, category, price_per_day_cents, district, municipality, active, created_on
	          FROM tools WHERE id = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Category, &t.PricePerDayCents,
		&t.District, &t.Municipality, &t.Active, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tool %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	t.CreatedOn = createdOn.Format(time.RFC3339)
	return t, nil
}

func (r *toolRepository) Update(ctx context.Context, t *domain.Tool) error {
	query := `UPDATE tools SET title=$1, description=$2, category=$3, price_per_day_cents=$4, district=$5, municipality=$6, active=$7
	          WHERE id=$8 AND deleted_on IS NULL`
	_, err := r.db.ExecContext(ctx, query,
		t.Title, t.Description, t.Category, t.PricePerDayCents, t.District, t.Municipality, t.Active, t.ID)
	return err
}

func (r *toolRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE tools SET deleted_on=$1 WHERE id=$2 AND deleted_on IS NULL`
	_, err := r.db.ExecContext(ctx, query, time.Now(), id)
	return err
}

func (r *toolRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Tool, error) {
	query := `SELECT id, owner_id, title, description, category, price_per_day_cents, district, municipality, active, created_on
	          FROM tools WHERE owner_id = $1 AND deleted_on IS NULL ORDER BY created_on DESC`
	return r.queryTools(ctx, query, ownerID)
}

func (r *toolRepository) Search(ctx context.Context, district, municipality, query string) ([]domain.Tool, error) {
	sqlQuery := `SELECT id, owner_id, title, description, category, price_per_day_cents, district, municipality, active, created_on
	             FROM tools WHERE deleted_on IS NULL AND active = TRUE`
	args := []any{}
	argIdx := 1
	if district != "" {
		sqlQuery += fmt.Sprintf(" AND lower(district) = lower($%d)", argIdx)
		args = append(args, district)
		argIdx++
	}
	if municipality != "" {
		sqlQuery += fmt.Sprintf(" AND lower(municipality) = lower($%d)", argIdx)
		args = append(args, municipality)
		argIdx++
	}
	if query != "" {
		sqlQuery += fmt.Sprintf(" AND (title ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')", argIdx, argIdx)
		args = append(args, query)
	}
	sqlQuery += " ORDER BY created_on DESC"
	return r.queryTools(ctx, sqlQuery, args...)
}

func (r *toolRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE tools SET active=$1 WHERE id=$2 AND deleted_on IS NULL`
	_, err := r.db.ExecContext(ctx, query, active, id)
	return err
}

func (r *toolRepository) queryTools(ctx context.Context, query string, args ...any) ([]domain.Tool, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		var createdOn time.Time
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.Category, &t.PricePerDayCents,
			&t.District, &t.Municipality, &t.Active, &createdOn); err != nil {
			return nil, err
		}
		t.CreatedOn = createdOn.Format(time.RFC3339)
		tools = append(tools, t)
	}
	return tools, rows.Err()
}
