package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/logger"
	"toolshed-backend/internal/repository"
	"toolshed-backend/internal/utils"
)

var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidDates     = errors.New("invalid booking dates")
	ErrToolUnavailable  = errors.New("tool is not available for the requested dates")
	ErrNotPending       = errors.New("booking is not pending")
	ErrNotCancellable   = errors.New("booking can no longer be cancelled")
	ErrAlreadyReported  = errors.New("condition already reported for this booking")
	ErrReportNotAllowed = errors.New("condition report is only allowed on completed bookings")
)

// PricingPolicy holds the deployment-wide pricing constants applied to every
// booking quote.
type PricingPolicy struct {
	SecurityDepositCents int64
	DamageDepositCents   int64
	ProDiscountPercent   float64
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	toolRepo    repository.ToolRepository
	userRepo    repository.UserRepository
	reviewRepo  repository.ReviewRepository
	payoutRepo  repository.PayoutRepository
	emailSvc    EmailService
	pricing     PricingPolicy
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	toolRepo repository.ToolRepository,
	userRepo repository.UserRepository,
	reviewRepo repository.ReviewRepository,
	payoutRepo repository.PayoutRepository,
	emailSvc EmailService,
	pricing PricingPolicy,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		toolRepo:    toolRepo,
		userRepo:    userRepo,
		reviewRepo:  reviewRepo,
		payoutRepo:  payoutRepo,
		emailSvc:    emailSvc,
		pricing:     pricing,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, renterID, toolID, startDateStr, endDateStr string) (*domain.Booking, error) {
	start, err := utils.ParseDate(startDateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}
	end, err := utils.ParseDate(endDateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}
	if !utils.CanSubmitBooking(start, end) {
		return nil, ErrInvalidDates
	}

	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if !tool.Active {
		return nil, ErrToolUnavailable
	}
	if tool.OwnerID == renterID {
		return nil, errors.New("cannot book your own tool")
	}

	overlapping, err := s.bookingRepo.FindOverlapping(ctx, toolID, startDateStr, endDateStr)
	if err != nil {
		return nil, err
	}
	for _, b := range overlapping {
		if b.Status == domain.BookingStatusApproved {
			return nil, ErrToolUnavailable
		}
	}

	renter, err := s.userRepo.GetByID(ctx, renterID)
	if err != nil {
		return nil, err
	}

	days := utils.RentalDays(start, end)
	total := utils.TotalPriceCents(days, tool.PricePerDayCents)
	if renter.IsPro() {
		total = utils.ApplyProDiscount(total, s.pricing.ProDiscountPercent)
	}

	booking := &domain.Booking{
		ToolID:          toolID,
		RenterID:        renterID,
		OwnerID:         tool.OwnerID,
		ToolTitle:       tool.Title,
		StartDate:       startDateStr,
		EndDate:         endDateStr,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
		TotalPriceCents: total,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if owner, err := s.userRepo.GetByID(ctx, tool.OwnerID); err == nil {
		if err := s.emailSvc.SendBookingRequestNotification(ctx, owner.Email, renter.FullName(), tool.Title, startDateStr, endDateStr); err != nil {
			logger.Warn("failed to send booking request email", "booking_id", booking.ID, "error", err)
		}
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RenterID != userID && booking.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	reviews, err := s.reviewRepo.ListByBooking(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	booking.Reviews = reviews
	return booking, nil
}

func (s *bookingService) ListRenterBookings(ctx context.Context, renterID string) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, err
	}
	if err := s.attachReviews(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *bookingService) ListOwnerBookings(ctx context.Context, ownerID string) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.attachReviews(ctx, bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// attachReviews embeds each booking's reviews so clients can tell which review
// types are still open.
func (s *bookingService) attachReviews(ctx context.Context, bookings []domain.Booking) error {
	for i := range bookings {
		reviews, err := s.reviewRepo.ListByBooking(ctx, bookings[i].ID)
		if err != nil {
			return err
		}
		bookings[i].Reviews = reviews
	}
	return nil
}

// ListToolBookings returns a tool's bookings so callers can show the
// unavailable windows on its calendar.
func (s *bookingService) ListToolBookings(ctx context.Context, toolID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByTool(ctx, toolID)
}

func (s *bookingService) ApproveBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, ErrNotPending
	}

	// A competing approval may have landed since this request was created.
	overlapping, err := s.bookingRepo.FindOverlapping(ctx, booking.ToolID, booking.StartDate, booking.EndDate)
	if err != nil {
		return nil, err
	}
	for _, b := range overlapping {
		if b.ID != booking.ID && b.Status == domain.BookingStatusApproved {
			return nil, ErrToolUnavailable
		}
	}

	booking.Status = domain.BookingStatusApproved
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	// The tool only leaves the catalog while an approved window covers today;
	// approving a future window keeps it bookable for disjoint dates.
	s.refreshToolAvailability(ctx, booking.ToolID)

	s.notifyDecision(ctx, booking, true)
	return booking, nil
}

// refreshToolAvailability recomputes the tool's active flag from whether any
// approved booking covers today. Failures only log: availability is repaired
// again by the nightly completion job.
func (s *bookingService) refreshToolAvailability(ctx context.Context, toolID string) {
	today := utils.DateFromTime(time.Now()).String()
	overlapping, err := s.bookingRepo.FindOverlapping(ctx, toolID, today, today)
	if err != nil {
		logger.Warn("failed to check tool availability", "tool_id", toolID, "error", err)
		return
	}
	active := true
	for _, b := range overlapping {
		if b.Status == domain.BookingStatusApproved {
			active = false
			break
		}
	}
	if err := s.toolRepo.SetActive(ctx, toolID, active); err != nil {
		logger.Warn("failed to update tool availability", "tool_id", toolID, "error", err)
	}
}

func (s *bookingService) RejectBooking(ctx context.Context, ownerID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != ownerID {
		return nil, ErrUnauthorized
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, ErrNotPending
	}

	booking.Status = domain.BookingStatusRejected
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, booking, false)
	return booking, nil
}

func (s *bookingService) notifyDecision(ctx context.Context, booking *domain.Booking, approved bool) {
	renter, err := s.userRepo.GetByID(ctx, booking.RenterID)
	if err != nil {
		logger.Warn("failed to load renter for decision email", "booking_id", booking.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendBookingDecisionNotification(ctx, renter.Email, booking.ToolTitle, approved); err != nil {
		logger.Warn("failed to send booking decision email", "booking_id", booking.ID, "error", err)
	}
}

func (s *bookingService) CancelBooking(ctx context.Context, renterID, bookingID string) (*domain.Booking, *utils.RefundEstimate, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if booking.RenterID != renterID {
		return nil, nil, ErrUnauthorized
	}
	if !utils.CanCancel(booking) {
		return nil, nil, ErrNotCancellable
	}

	start, err := utils.ParseDate(booking.StartDate)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}
	estimate := utils.EstimateCancellationRefund(start, booking.TotalPriceCents, utils.DateFromTime(time.Now()))

	wasApproved := booking.Status == domain.BookingStatusApproved
	booking.Status = domain.BookingStatusCancelled
	if booking.PaymentStatus == domain.PaymentStatusCompleted {
		booking.PaymentStatus = domain.PaymentStatusRefunded
	}
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, nil, err
	}

	// An approved window may have taken the tool off the catalog; cancelling
	// it must put the tool back.
	if wasApproved {
		s.refreshToolAvailability(ctx, booking.ToolID)
	}

	renter, err := s.userRepo.GetByID(ctx, renterID)
	if err == nil {
		if owner, oerr := s.userRepo.GetByID(ctx, booking.OwnerID); oerr == nil {
			if err := s.emailSvc.SendBookingCancellationNotification(ctx, owner.Email, renter.FullName(), booking.ToolTitle, estimate.Percentage); err != nil {
				logger.Warn("failed to send cancellation email", "booking_id", booking.ID, "error", err)
			}
		}
	}

	return booking, &estimate, nil
}

func (s *bookingService) EstimateRefund(ctx context.Context, renterID, bookingID string) (*utils.RefundEstimate, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RenterID != renterID {
		return nil, ErrUnauthorized
	}
	if !utils.CanCancel(booking) {
		return nil, ErrNotCancellable
	}

	start, err := utils.ParseDate(booking.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDates, err)
	}
	estimate := utils.EstimateCancellationRefund(start, booking.TotalPriceCents, utils.DateFromTime(time.Now()))
	return &estimate, nil
}

func (s *bookingService) SubmitConditionReport(ctx context.Context, renterID, bookingID string, status domain.ConditionStatus, description string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RenterID != renterID {
		return nil, ErrUnauthorized
	}
	if booking.Status != domain.BookingStatusCompleted {
		return nil, ErrReportNotAllowed
	}
	if booking.ConditionStatus != nil {
		return nil, ErrAlreadyReported
	}

	switch status {
	case domain.ConditionStatusOK, domain.ConditionStatusUsed,
		domain.ConditionStatusMinorDamage, domain.ConditionStatusBroken,
		domain.ConditionStatusMissingParts:
	default:
		return nil, fmt.Errorf("unknown condition status %q", status)
	}

	now := time.Now()
	booking.ConditionStatus = &status
	booking.ConditionDescription = description
	booking.ConditionReportedBy = renterID
	booking.ConditionReportedAt = &now

	depositStatus := domain.DepositStatusNotRequired
	if utils.ConditionRequiresDeposit(status) {
		depositStatus = domain.DepositStatusRequired
		booking.DepositAmountCents = s.pricing.DamageDepositCents
	}
	booking.DepositStatus = &depositStatus

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if depositStatus == domain.DepositStatusRequired {
		if renter, rerr := s.userRepo.GetByID(ctx, renterID); rerr == nil {
			if err := s.emailSvc.SendDepositRequiredNotification(ctx, renter.Email, booking.ToolTitle, booking.DepositAmountCents); err != nil {
				logger.Warn("failed to send deposit required email", "booking_id", booking.ID, "error", err)
			}
		}
	}

	return booking, nil
}

func (s *bookingService) OwnerEarnings(ctx context.Context, ownerID string) (*domain.EarningsSummary, error) {
	completed, err := s.bookingRepo.ListCompletedByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary := &domain.EarningsSummary{Monthly: []domain.MonthlyEarnings{}}
	byMonth := make(map[string]*domain.MonthlyEarnings)
	for _, b := range completed {
		if b.PaymentStatus != domain.PaymentStatusCompleted {
			continue
		}
		summary.TotalEarnedCents += b.TotalPriceCents

		month := b.EndDate
		if len(month) >= 7 {
			month = month[:7]
		}
		m, ok := byMonth[month]
		if !ok {
			m = &domain.MonthlyEarnings{Month: month}
			byMonth[month] = m
		}
		m.AmountCents += b.TotalPriceCents
		m.Bookings++
	}

	for _, m := range byMonth {
		summary.Monthly = append(summary.Monthly, *m)
	}
	sort.Slice(summary.Monthly, func(i, j int) bool {
		return summary.Monthly[i].Month > summary.Monthly[j].Month
	})

	withdrawn, err := s.payoutRepo.TotalWithdrawnCents(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	summary.TotalWithdrawnCents = withdrawn
	summary.AvailableCents = summary.TotalEarnedCents - withdrawn

	return summary, nil
}
