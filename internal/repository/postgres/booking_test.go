package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tool_id", "renter_id", "owner_id", "tool_title", "start_date", "end_date",
		"status", "payment_status", "total_price_cents",
		"condition_status", "condition_description", "condition_reported_by", "condition_reported_at",
		"deposit_status", "deposit_amount_cents", "deposit_paid_at", "created_on", "updated_on",
	})
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		b := &domain.Booking{
			ToolID:          "tool-1",
			RenterID:        "renter-1",
			OwnerID:         "owner-1",
			ToolTitle:       "Cordless Drill",
			StartDate:       "2026-09-10",
			EndDate:         "2026-09-12",
			Status:          domain.BookingStatusPending,
			PaymentStatus:   domain.PaymentStatusPending,
			TotalPriceCents: 6000,
		}

		mock.ExpectExec("INSERT INTO bookings").
			WithArgs(sqlmock.AnyArg(), b.ToolID, b.RenterID, b.OwnerID, b.ToolTitle, b.StartDate, b.EndDate,
				b.Status, b.PaymentStatus, b.TotalPriceCents, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, b)
		assert.NoError(t, err)
		assert.NotEmpty(t, b.ID, "create assigns a uuid")
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("nullable condition fields stay unset", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs("b-1").
			WillReturnRows(bookingRows().AddRow(
				"b-1", "tool-1", "renter-1", "owner-1", "Cordless Drill", "2026-09-10", "2026-09-12",
				"APPROVED", "PENDING", 6000,
				nil, nil, nil, nil,
				nil, nil, nil, now, now,
			))

		b, err := repo.GetByID(ctx, "b-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusApproved, b.Status)
		assert.Nil(t, b.ConditionStatus)
		assert.Nil(t, b.DepositStatus)
	})

	t.Run("condition and deposit fields round trip", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs("b-2").
			WillReturnRows(bookingRows().AddRow(
				"b-2", "tool-1", "renter-1", "owner-1", "Cordless Drill", "2026-09-10", "2026-09-12",
				"COMPLETED", "COMPLETED", 6000,
				"BROKEN", "snapped chuck", "renter-1", now,
				"REQUIRED", 5000, nil, now, now,
			))

		b, err := repo.GetByID(ctx, "b-2")
		assert.NoError(t, err)
		assert.Equal(t, domain.ConditionStatusBroken, *b.ConditionStatus)
		assert.Equal(t, domain.DepositStatusRequired, *b.DepositStatus)
		assert.Equal(t, int64(5000), b.DepositAmountCents)
		assert.Nil(t, b.DepositPaidAt)
	})

	t.Run("a missing row maps to ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
			WithArgs("missing").
			WillReturnRows(bookingRows())

		b, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, b)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestBookingRepository_FindOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM bookings(.+)start_date <= (.+) AND end_date >=").
		WithArgs("tool-1", "2026-09-10", "2026-09-12").
		WillReturnRows(bookingRows().AddRow(
			"b-1", "tool-1", "renter-2", "owner-1", "Cordless Drill", "2026-09-11", "2026-09-14",
			"APPROVED", "COMPLETED", 8000,
			nil, nil, nil, nil,
			nil, nil, nil, now, now,
		))

	bookings, err := repo.FindOverlapping(ctx, "tool-1", "2026-09-10", "2026-09-12")
	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, "b-1", bookings[0].ID)
}

func TestBookingRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	required := domain.DepositStatusRequired
	reported := domain.ConditionStatusMinorDamage
	now := time.Now()
	b := &domain.Booking{
		ID:                   "b-1",
		Status:               domain.BookingStatusCompleted,
		PaymentStatus:        domain.PaymentStatusCompleted,
		TotalPriceCents:      6000,
		ConditionStatus:      &reported,
		ConditionDescription: "scratched casing",
		ConditionReportedBy:  "renter-1",
		ConditionReportedAt:  &now,
		DepositStatus:        &required,
		DepositAmountCents:   5000,
	}

	mock.ExpectExec("UPDATE bookings SET").
		WithArgs(b.Status, b.PaymentStatus, b.TotalPriceCents,
			b.ConditionStatus, sqlmock.AnyArg(), sqlmock.AnyArg(), b.ConditionReportedAt,
			b.DepositStatus, b.DepositAmountCents, nil, sqlmock.AnyArg(), b.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(ctx, b)
	assert.NoError(t, err)
}
