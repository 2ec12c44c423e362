package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"toolshed-backend/internal/checkout"
	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
	"toolshed-backend/internal/utils"
)

var (
	ErrNotPayable         = errors.New("booking is not ready for payment")
	ErrDepositNotRequired = errors.New("no deposit is due on this booking")
)

type paymentService struct {
	bookingRepo repository.BookingRepository
	provider    checkout.Provider
	deposit     int64 // refundable security hold added to every checkout
}

func NewPaymentService(bookingRepo repository.BookingRepository, provider checkout.Provider, securityDepositCents int64) PaymentService {
	return &paymentService{
		bookingRepo: bookingRepo,
		provider:    provider,
		deposit:     securityDepositCents,
	}
}

func (s *paymentService) CreateCheckoutSession(ctx context.Context, renterID, bookingID string) (*domain.Booking, string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	if booking.RenterID != renterID {
		return nil, "", ErrUnauthorized
	}
	if !utils.CanPay(booking) {
		return nil, "", ErrNotPayable
	}

	session, err := s.provider.CreateSession(ctx, checkout.SessionRequest{
		BookingID:   booking.ID,
		AmountCents: utils.GrandTotalCents(booking.TotalPriceCents, s.deposit),
		Description: fmt.Sprintf("Rental of %s (%s to %s)", booking.ToolTitle, booking.StartDate, booking.EndDate),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return booking, session.CheckoutURL, nil
}

func (s *paymentService) CreateDepositCheckoutSession(ctx context.Context, renterID, bookingID string) (*domain.Booking, string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	if booking.RenterID != renterID {
		return nil, "", ErrUnauthorized
	}
	if booking.DepositStatus == nil || *booking.DepositStatus != domain.DepositStatusRequired {
		return nil, "", ErrDepositNotRequired
	}

	session, err := s.provider.CreateSession(ctx, checkout.SessionRequest{
		BookingID:   booking.ID,
		AmountCents: booking.DepositAmountCents,
		Description: fmt.Sprintf("Damage deposit for %s", booking.ToolTitle),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create deposit checkout session: %w", err)
	}
	return booking, session.CheckoutURL, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, renterID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RenterID != renterID {
		return nil, ErrUnauthorized
	}
	if !utils.CanPay(booking) {
		return nil, ErrNotPayable
	}

	booking.PaymentStatus = domain.PaymentStatusCompleted
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *paymentService) PaymentStatus(ctx context.Context, renterID, bookingID string) (domain.PaymentStatus, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", err
	}
	if booking.RenterID != renterID {
		return "", ErrUnauthorized
	}
	return booking.PaymentStatus, nil
}

func (s *paymentService) ConfirmDepositPayment(ctx context.Context, renterID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.RenterID != renterID {
		return nil, ErrUnauthorized
	}
	if booking.DepositStatus == nil || *booking.DepositStatus != domain.DepositStatusRequired {
		return nil, ErrDepositNotRequired
	}

	now := time.Now()
	paid := domain.DepositStatusPaid
	booking.DepositStatus = &paid
	booking.DepositPaidAt = &now
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
