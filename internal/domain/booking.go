package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusApproved  BookingStatus = "APPROVED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

type ConditionStatus string

const (
	ConditionStatusOK           ConditionStatus = "OK"
	ConditionStatusUsed         ConditionStatus = "USED"
	ConditionStatusMinorDamage  ConditionStatus = "MINOR_DAMAGE"
	ConditionStatusBroken       ConditionStatus = "BROKEN"
	ConditionStatusMissingParts ConditionStatus = "MISSING_PARTS"
)

type DepositStatus string

const (
	DepositStatusNotRequired DepositStatus = "NOT_REQUIRED"
	DepositStatusRequired    DepositStatus = "REQUIRED"
	DepositStatusPaid        DepositStatus = "PAID"
)

type Booking struct {
	ID        string `json:"id"`
	ToolID    string `json:"tool_id"`
	RenterID  string `json:"renter_id"`
	OwnerID   string `json:"owner_id"`
	ToolTitle string `json:"tool_title,omitempty"`
	// Dates are calendar dates in yyyy-mm-dd form; the rental window is
	// inclusive of both ends.
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	TotalPriceCents int64         `json:"total_price_cents"`

	// Condition report, set at most once after completion.
	ConditionStatus      *ConditionStatus `json:"condition_status,omitempty"`
	ConditionDescription string           `json:"condition_description,omitempty"`
	ConditionReportedBy  string           `json:"condition_reported_by,omitempty"`
	ConditionReportedAt  *time.Time       `json:"condition_reported_at,omitempty"`

	// Damage deposit, required when the condition report indicates damage.
	DepositStatus      *DepositStatus `json:"deposit_status,omitempty"`
	DepositAmountCents int64          `json:"deposit_amount_cents,omitempty"`
	DepositPaidAt      *time.Time     `json:"deposit_paid_at,omitempty"`

	Reviews []Review `json:"reviews,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}

// ReviewByType returns the booking's review of the given type, or nil.
func (b *Booking) ReviewByType(t ReviewType) *Review {
	for i := range b.Reviews {
		if b.Reviews[i].Type == t {
			return &b.Reviews[i]
		}
	}
	return nil
}
