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

const bookingColumns = `id, tool_id, renter_id, owner_id, tool_title, start_date, end_date, status, payment_status, total_price_cents,
	condition_status, condition_description, condition_reported_by, condition_reported_at,
	deposit_status, deposit_amount_cents, deposit_paid_at, created_on, updated_on`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	query := `INSERT INTO bookings (id, tool_id, renter_id, owner_id, tool_title, start_date, end_date, status, payment_status, total_price_cents, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.ToolID, b.RenterID, b.OwnerID, b.ToolTitle, b.StartDate, b.EndDate,
		b.Status, b.PaymentStatus, b.TotalPriceCents, now, now)
	return err
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %s: %w", id, repository.ErrNotFound)
	}
	return b, err
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET status=$1, payment_status=$2, total_price_cents=$3,
	          condition_status=$4, condition_description=$5, condition_reported_by=$6, condition_reported_at=$7,
	          deposit_status=$8, deposit_amount_cents=$9, deposit_paid_at=$10, updated_on=$11
	          WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query,
		b.Status, b.PaymentStatus, b.TotalPriceCents,
		b.ConditionStatus, nullString(b.ConditionDescription), nullString(b.ConditionReportedBy), b.ConditionReportedAt,
		b.DepositStatus, b.DepositAmountCents, b.DepositPaidAt, time.Now(), b.ID)
	return err
}

func (r *bookingRepository) ListByRenter(ctx context.Context, renterID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE renter_id = $1 ORDER BY created_on DESC`
	return r.queryBookings(ctx, query, renterID)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE owner_id = $1 ORDER BY created_on DESC`
	return r.queryBookings(ctx, query, ownerID)
}

func (r *bookingRepository) ListByTool(ctx context.Context, toolID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE tool_id = $1 ORDER BY start_date`
	return r.queryBookings(ctx, query, toolID)
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, toolID, startDate, endDate string) ([]domain.Booking, error) {
	// Inclusive windows intersect when each starts on or before the other
	// ends. Cancelled and rejected bookings never block a window.
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE tool_id = $1 AND start_date <= $3 AND end_date >= $2
	            AND status NOT IN ('CANCELLED', 'REJECTED')`
	return r.queryBookings(ctx, query, toolID, startDate, endDate)
}

func (r *bookingRepository) ListCompletedByOwner(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE owner_id = $1 AND status = 'COMPLETED' ORDER BY end_date DESC`
	return r.queryBookings(ctx, query, ownerID)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{}
	var (
		toolTitle  sql.NullString
		condStatus sql.NullString
		condDesc   sql.NullString
		condBy     sql.NullString
		condAt     sql.NullTime
		depStatus  sql.NullString
		depAmount  sql.NullInt64
		depPaidAt  sql.NullTime
		createdOn  time.Time
		updatedOn  time.Time
	)
	err := row.Scan(&b.ID, &b.ToolID, &b.RenterID, &b.OwnerID, &toolTitle, &b.StartDate, &b.EndDate,
		&b.Status, &b.PaymentStatus, &b.TotalPriceCents,
		&condStatus, &condDesc, &condBy, &condAt,
		&depStatus, &depAmount, &depPaidAt, &createdOn, &updatedOn)
	if err != nil {
		return nil, err
	}

	b.ToolTitle = toolTitle.String
	if condStatus.Valid {
		cs := domain.ConditionStatus(condStatus.String)
		b.ConditionStatus = &cs
	}
	b.ConditionDescription = condDesc.String
	b.ConditionReportedBy = condBy.String
	if condAt.Valid {
		b.ConditionReportedAt = &condAt.Time
	}
	if depStatus.Valid {
		ds := domain.DepositStatus(depStatus.String)
		b.DepositStatus = &ds
	}
	if depAmount.Valid {
		b.DepositAmountCents = depAmount.Int64
	}
	if depPaidAt.Valid {
		b.DepositPaidAt = &depPaidAt.Time
	}
	b.CreatedOn = createdOn.Format(time.RFC3339)
	b.UpdatedOn = updatedOn.Format(time.RFC3339)
	return b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
