package domain

import "time"

type ReviewType string

const (
	ReviewTypeRenterToOwner ReviewType = "RENTER_TO_OWNER"
	ReviewTypeRenterToTool  ReviewType = "RENTER_TO_TOOL"
	ReviewTypeOwnerToRenter ReviewType = "OWNER_TO_RENTER"
)

type Review struct {
	ID         string     `json:"id"`
	BookingID  string     `json:"booking_id"`
	ReviewerID string     `json:"reviewer_id"`
	ToolID     string     `json:"tool_id,omitempty"`
	Type       ReviewType `json:"type"`
	Rating     int        `json:"rating"` // 1..5
	Comment    string     `json:"comment"`
	Date       time.Time  `json:"date"`
}
