package utils

import (
	"math"

	"toolshed-backend/internal/domain"
)

// CanPay reports whether the renter may start checkout for a booking. The
// owner must have approved the request and the rental fee must still be
// outstanding.
func CanPay(b *domain.Booking) bool {
	return b.Status == domain.BookingStatusApproved &&
		b.PaymentStatus == domain.PaymentStatusPending
}

// CanCancel reports whether the renter may cancel a booking. Only requests
// that are still pending or approved can be cancelled; rejected, cancelled
// and completed bookings are terminal.
func CanCancel(b *domain.Booking) bool {
	switch b.Status {
	case domain.BookingStatusPending, domain.BookingStatusApproved:
		return true
	case domain.BookingStatusRejected, domain.BookingStatusCancelled, domain.BookingStatusCompleted:
		return false
	}
	return false
}

// CanReviewAsRenter reports whether the renter may create or edit reviews on
// a booking: the rental must be completed and paid for.
func CanReviewAsRenter(b *domain.Booking) bool {
	return b.Status == domain.BookingStatusCompleted &&
		b.PaymentStatus == domain.PaymentStatusCompleted
}

// CanReviewAsOwner reports whether the owner may review the renter.
func CanReviewAsOwner(b *domain.Booking) bool {
	return b.Status == domain.BookingStatusCompleted
}

// ConditionRequiresDeposit reports whether a condition report with the given
// status obliges the renter to pay the damage deposit.
func ConditionRequiresDeposit(cs domain.ConditionStatus) bool {
	switch cs {
	case domain.ConditionStatusMinorDamage, domain.ConditionStatusBroken, domain.ConditionStatusMissingParts:
		return true
	case domain.ConditionStatusOK, domain.ConditionStatusUsed:
		return false
	}
	return false
}

// RefundEstimate is the advisory cancellation refund shown to the renter
// before they confirm. The authoritative refund is computed by the payment
// processor on the backend of the checkout provider.
type RefundEstimate struct {
	Percentage     int   `json:"percentage"`
	AmountCents    int64 `json:"amount_cents"`
	DaysUntilStart int   `json:"days_until_start"`
}

// EstimateCancellationRefund applies the tiered refund policy:
// 7+ days before the start date refunds 100%, 3-6 days 50%, 1-2 days 25%,
// and cancellations on or after the start date refund nothing.
func EstimateCancellationRefund(start Date, totalPriceCents int64, today Date) RefundEstimate {
	daysUntilStart := DaysBetween(today, start)

	var pct int
	switch {
	case daysUntilStart >= 7:
		pct = 100
	case daysUntilStart >= 3:
		pct = 50
	case daysUntilStart >= 1:
		pct = 25
	default:
		pct = 0
	}

	amount := int64(math.Round(float64(totalPriceCents) * float64(pct) / 100))
	return RefundEstimate{
		Percentage:     pct,
		AmountCents:    amount,
		DaysUntilStart: daysUntilStart,
	}
}
