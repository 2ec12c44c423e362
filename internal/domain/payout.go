package domain

import "time"

type PayoutStatus string

const (
	PayoutStatusPending   PayoutStatus = "PENDING"
	PayoutStatusCompleted PayoutStatus = "COMPLETED"
)

// Payout is a supplier withdrawal of accumulated rental earnings.
type Payout struct {
	ID          string       `json:"id"`
	OwnerID     string       `json:"owner_id"`
	AmountCents int64        `json:"amount_cents"`
	Status      PayoutStatus `json:"status"`
	RequestedAt time.Time    `json:"requested_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}
