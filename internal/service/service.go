package service

import (
	"context"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/utils"
)

type BookingService interface {
	CreateBooking(ctx context.Context, renterID, toolID, startDate, endDate string) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error)
	ListRenterBookings(ctx context.Context, renterID string) ([]domain.Booking, error)
	ListOwnerBookings(ctx context.Context, ownerID string) ([]domain.Booking, error)
	ListToolBookings(ctx context.Context, toolID string) ([]domain.Booking, error)
	ApproveBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	RejectBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error)
	CancelBooking(ctx context.Context, renterID, bookingID string) (*domain.Booking, *utils.RefundEstimate, error)
	EstimateRefund(ctx context.Context, renterID, bookingID string) (*utils.RefundEstimate, error)
	SubmitConditionReport(ctx context.Context, renterID, bookingID string, status domain.ConditionStatus, description string) (*domain.Booking, error)
	OwnerEarnings(ctx context.Context, ownerID string) (*domain.EarningsSummary, error)
}

type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, renterID, bookingID string) (*domain.Booking, string, error)
	CreateDepositCheckoutSession(ctx context.Context, renterID, bookingID string) (*domain.Booking, string, error)
	ConfirmPayment(ctx context.Context, renterID, bookingID string) (*domain.Booking, error)
	ConfirmDepositPayment(ctx context.Context, renterID, bookingID string) (*domain.Booking, error)
	PaymentStatus(ctx context.Context, renterID, bookingID string) (domain.PaymentStatus, error)
}

type PayoutService interface {
	RequestPayout(ctx context.Context, ownerID string, amountCents int64) (*domain.Payout, error)
	ListPayouts(ctx context.Context, ownerID string) ([]domain.Payout, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateSubscription(ctx context.Context, userID string, tier domain.SubscriptionTier) (*domain.User, error)
}

type ReportService interface {
	CreateReport(ctx context.Context, reporterID, reportedUserID, toolID, reason, description string) (*domain.Report, error)
	ListReports(ctx context.Context, adminID string, status domain.ReportStatus) ([]domain.Report, error)
	ResolveReport(ctx context.Context, adminID, reportID string) (*domain.Report, error)
	DismissReport(ctx context.Context, adminID, reportID string) (*domain.Report, error)
}

type AdminService interface {
	ListUsers(ctx context.Context, adminID string) ([]domain.User, error)
	PlatformStats(ctx context.Context, adminID string) (*domain.PlatformStats, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, reviewerID, bookingID string, reviewType domain.ReviewType, rating int, comment string) (*domain.Review, error)
	UpdateReview(ctx context.Context, reviewerID, reviewID string, rating int, comment string) (*domain.Review, error)
	DeleteReview(ctx context.Context, reviewerID, reviewID string) error
	ListToolReviews(ctx context.Context, toolID string) ([]domain.Review, error)
}

type ToolService interface {
	AddTool(ctx context.Context, tool *domain.Tool) error
	GetTool(ctx context.Context, id string) (*domain.Tool, error)
	UpdateTool(ctx context.Context, ownerID string, tool *domain.Tool) error
	DeleteTool(ctx context.Context, ownerID, toolID string) error
	ListMyTools(ctx context.Context, ownerID string) ([]domain.Tool, error)
	SearchTools(ctx context.Context, district, municipality, query string) ([]domain.Tool, error)
}

type EmailService interface {
	SendBookingRequestNotification(ctx context.Context, ownerEmail, renterName, toolTitle, startDate, endDate string) error
	SendBookingDecisionNotification(ctx context.Context, renterEmail, toolTitle string, approved bool) error
	SendBookingCancellationNotification(ctx context.Context, ownerEmail, renterName, toolTitle string, refundPct int) error
	SendDepositRequiredNotification(ctx context.Context, renterEmail, toolTitle string, amountCents int64) error
}
