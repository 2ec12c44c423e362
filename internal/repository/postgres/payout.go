package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type payoutRepository struct {
	db *sql.DB
}

func NewPayoutRepository(db *sql.DB) repository.PayoutRepository {
	return &payoutRepository{db: db}
}

func (r *payoutRepository) Create(ctx context.Context, p *domain.Payout) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.RequestedAt.IsZero() {
		p.RequestedAt = time.Now()
	}
	query := `INSERT INTO payouts (id, owner_id, amount_cents, status, requested_at, completed_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.OwnerID, p.AmountCents, p.Status, p.RequestedAt, p.CompletedAt)
	return err
}

func (r *payoutRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Payout, error) {
	query := `SELECT id, owner_id, amount_cents, status, requested_at, completed_at
	          FROM payouts WHERE owner_id = $1 ORDER BY requested_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		var completedAt sql.NullTime
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.AmountCents, &p.Status, &p.RequestedAt, &completedAt); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			p.CompletedAt = &completedAt.Time
		}
		payouts = append(payouts, p)
	}
	return payouts, rows.Err()
}

func (r *payoutRepository) TotalWithdrawnCents(ctx context.Context, ownerID string) (int64, error) {
	var total sql.NullInt64
	query := `SELECT SUM(amount_cents) FROM payouts WHERE owner_id = $1`
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&total); err != nil {
		return 0, err
	}
	return total.Int64, nil
}
