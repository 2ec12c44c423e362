package postgres

import (
	"context"
	"database/sql"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) PlatformStats(ctx context.Context) (*domain.PlatformStats, error) {
	query := `SELECT
	  (SELECT COUNT(*) FROM users),
	  (SELECT COUNT(*) FROM users WHERE subscription_tier = 'PRO'),
	  (SELECT COUNT(*) FROM tools WHERE deleted_on IS NULL),
	  (SELECT COUNT(*) FROM tools WHERE deleted_on IS NULL AND active = TRUE),
	  (SELECT COUNT(*) FROM bookings),
	  (SELECT COUNT(*) FROM bookings WHERE status = 'COMPLETED'),
	  (SELECT COALESCE(SUM(total_price_cents), 0) FROM bookings WHERE status = 'COMPLETED' AND payment_status = 'COMPLETED'),
	  (SELECT COUNT(*) FROM reports WHERE status = 'OPEN')`

	stats := &domain.PlatformStats{}
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalUsers, &stats.ProUsers,
		&stats.TotalTools, &stats.ActiveTools,
		&stats.TotalBookings, &stats.CompletedBookings,
		&stats.TotalRevenueCents, &stats.OpenReports)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
