package repository

import (
	"context"
	"errors"

	"toolshed-backend/internal/domain"
)

// ErrNotFound is returned by lookups for rows that do not exist. Implementations
// wrap it with the entity and id, so match with errors.Is.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}

type ToolRepository interface {
	Create(ctx context.Context, tool *domain.Tool) error
	GetByID(ctx context.Context, id string) (*domain.Tool, error)
	Update(ctx context.Context, tool *domain.Tool) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Tool, error)
	Search(ctx context.Context, district, municipality, query string) ([]domain.Tool, error)
	SetActive(ctx context.Context, id string, active bool) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	ListByRenter(ctx context.Context, renterID string) ([]domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error)
	ListByTool(ctx context.Context, toolID string) ([]domain.Booking, error)
	// FindOverlapping returns bookings of the tool whose inclusive windows
	// intersect [startDate, endDate], excluding cancelled and rejected ones.
	FindOverlapping(ctx context.Context, toolID, startDate, endDate string) ([]domain.Booking, error)
	ListCompletedByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Update(ctx context.Context, review *domain.Review) error
	Delete(ctx context.Context, id string) error
	ListByBooking(ctx context.Context, bookingID string) ([]domain.Review, error)
	ListByTool(ctx context.Context, toolID string) ([]domain.Review, error)
}

type PayoutRepository interface {
	Create(ctx context.Context, payout *domain.Payout) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Payout, error)
	TotalWithdrawnCents(ctx context.Context, ownerID string) (int64, error)
}

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	Update(ctx context.Context, report *domain.Report) error
	// List returns reports filtered by status; an empty status returns all.
	List(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error)
}

type StatsRepository interface {
	PlatformStats(ctx context.Context) (*domain.PlatformStats, error)
}
