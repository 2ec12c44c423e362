package domain

// MonthlyEarnings aggregates completed booking income for one calendar month.
type MonthlyEarnings struct {
	Month       string `json:"month"` // yyyy-mm
	AmountCents int64  `json:"amount_cents"`
	Bookings    int    `json:"bookings"`
}

// EarningsSummary is the supplier earnings dashboard payload.
type EarningsSummary struct {
	TotalEarnedCents    int64             `json:"total_earned_cents"`
	TotalWithdrawnCents int64             `json:"total_withdrawn_cents"`
	AvailableCents      int64             `json:"available_cents"`
	Monthly             []MonthlyEarnings `json:"monthly"`
}
