package utils

import (
	"testing"

	"toolshed-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

var allBookingStatuses = []domain.BookingStatus{
	domain.BookingStatusPending,
	domain.BookingStatusApproved,
	domain.BookingStatusRejected,
	domain.BookingStatusCancelled,
	domain.BookingStatusCompleted,
}

var allPaymentStatuses = []domain.PaymentStatus{
	domain.PaymentStatusPending,
	domain.PaymentStatusCompleted,
	domain.PaymentStatusRefunded,
}

func TestCanPay(t *testing.T) {
	// Exactly one of the 15 status/payment combinations permits payment.
	for _, status := range allBookingStatuses {
		for _, payment := range allPaymentStatuses {
			b := &domain.Booking{Status: status, PaymentStatus: payment}
			expected := status == domain.BookingStatusApproved && payment == domain.PaymentStatusPending
			assert.Equal(t, expected, CanPay(b), "status=%s payment=%s", status, payment)
		}
	}
}

func TestCanCancel(t *testing.T) {
	cancellable := map[domain.BookingStatus]bool{
		domain.BookingStatusPending:   true,
		domain.BookingStatusApproved:  true,
		domain.BookingStatusRejected:  false,
		domain.BookingStatusCancelled: false,
		domain.BookingStatusCompleted: false,
	}

	for _, status := range allBookingStatuses {
		// Cancellation eligibility is independent of the payment axis.
		for _, payment := range allPaymentStatuses {
			b := &domain.Booking{Status: status, PaymentStatus: payment}
			assert.Equal(t, cancellable[status], CanCancel(b), "status=%s payment=%s", status, payment)
		}
	}
}

func TestCanReview(t *testing.T) {
	t.Run("Renter needs completed and paid", func(t *testing.T) {
		b := &domain.Booking{Status: domain.BookingStatusCompleted, PaymentStatus: domain.PaymentStatusCompleted}
		assert.True(t, CanReviewAsRenter(b))

		b.PaymentStatus = domain.PaymentStatusPending
		assert.False(t, CanReviewAsRenter(b))

		b.Status = domain.BookingStatusApproved
		b.PaymentStatus = domain.PaymentStatusCompleted
		assert.False(t, CanReviewAsRenter(b))
	})

	t.Run("Owner needs completed only", func(t *testing.T) {
		b := &domain.Booking{Status: domain.BookingStatusCompleted, PaymentStatus: domain.PaymentStatusPending}
		assert.True(t, CanReviewAsOwner(b))

		b.Status = domain.BookingStatusCancelled
		assert.False(t, CanReviewAsOwner(b))
	})
}

func TestConditionRequiresDeposit(t *testing.T) {
	tests := []struct {
		condition domain.ConditionStatus
		expected  bool
	}{
		{domain.ConditionStatusOK, false},
		{domain.ConditionStatusUsed, false},
		{domain.ConditionStatusMinorDamage, true},
		{domain.ConditionStatusBroken, true},
		{domain.ConditionStatusMissingParts, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.condition), func(t *testing.T) {
			assert.Equal(t, tt.expected, ConditionRequiresDeposit(tt.condition))
		})
	}
}

func TestEstimateCancellationRefund(t *testing.T) {
	today, _ := ParseDate("2024-06-01")
	const totalPrice = int64(10000) // EUR 100.00

	tests := []struct {
		name           string
		start          string
		expectedPct    int
		expectedAmount int64
		expectedDays   int
	}{
		{"Ten days out", "2024-06-11", 100, 10000, 10},
		{"Exactly seven days", "2024-06-08", 100, 10000, 7},
		{"Six days", "2024-06-07", 50, 5000, 6},
		{"Five days", "2024-06-06", 50, 5000, 5},
		{"Three days", "2024-06-04", 50, 5000, 3},
		{"Two days", "2024-06-03", 25, 2500, 2},
		{"One day", "2024-06-02", 25, 2500, 1},
		{"Starts today", "2024-06-01", 0, 0, 0},
		{"Already started", "2024-05-29", 0, 0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			assert.NoError(t, err)

			est := EstimateCancellationRefund(start, totalPrice, today)
			assert.Equal(t, tt.expectedPct, est.Percentage)
			assert.Equal(t, tt.expectedAmount, est.AmountCents)
			assert.Equal(t, tt.expectedDays, est.DaysUntilStart)
		})
	}
}
