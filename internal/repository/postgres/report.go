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

const reportColumns = `id, reporter_id, reported_user_id, tool_id, reason, description, status, created_at, resolved_by, resolved_at`

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, rep *domain.Report) error {
	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now()
	}
	query := `INSERT INTO reports (` + reportColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		rep.ID, rep.ReporterID, nullString(rep.ReportedUserID), nullString(rep.ToolID),
		rep.Reason, nullString(rep.Description), rep.Status, rep.CreatedAt,
		nullString(rep.ResolvedBy), rep.ResolvedAt)
	return err
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`
	rep, err := scanReport(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %s: %w", id, repository.ErrNotFound)
	}
	return rep, err
}

func (r *reportRepository) Update(ctx context.Context, rep *domain.Report) error {
	query := `UPDATE reports SET status=$1, resolved_by=$2, resolved_at=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, rep.Status, nullString(rep.ResolvedBy), rep.ResolvedAt, rep.ID)
	return err
}

func (r *reportRepository) List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rep)
	}
	return reports, rows.Err()
}

func scanReport(row rowScanner) (*domain.Report, error) {
	rep := &domain.Report{}
	var (
		reportedUser sql.NullString
		toolID       sql.NullString
		description  sql.NullString
		resolvedBy   sql.NullString
		resolvedAt   sql.NullTime
	)
	err := row.Scan(&rep.ID, &rep.ReporterID, &reportedUser, &toolID, &rep.Reason,
		&description, &rep.Status, &rep.CreatedAt, &resolvedBy, &resolvedAt)
	if err != nil {
		return nil, err
	}
	rep.ReportedUserID = reportedUser.String
	rep.ToolID = toolID.String
	rep.Description = description.String
	rep.ResolvedBy = resolvedBy.String
	if resolvedAt.Valid {
		rep.ResolvedAt = &resolvedAt.Time
	}
	return rep, nil
}
