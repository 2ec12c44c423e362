package postgres

import (
	"database/sql"

	"toolshed-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ToolRepository
	repository.BookingRepository
	repository.ReviewRepository
	repository.PayoutRepository
	repository.ReportRepository
	repository.StatsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		ToolRepository:    NewToolRepository(db),
		BookingRepository: NewBookingRepository(db),
		ReviewRepository:  NewReviewRepository(db),
		PayoutRepository:  NewPayoutRepository(db),
		ReportRepository:  NewReportRepository(db),
		StatsRepository:   NewStatsRepository(db),
	}
}
