package domain

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalUsers        int64 `json:"total_users"`
	ProUsers          int64 `json:"pro_users"`
	TotalTools        int64 `json:"total_tools"`
	ActiveTools       int64 `json:"active_tools"`
	TotalBookings     int64 `json:"total_bookings"`
	CompletedBookings int64 `json:"completed_bookings"`
	TotalRevenueCents int64 `json:"total_revenue_cents"`
	OpenReports       int64 `json:"open_reports"`
}
