package service

import (
	"context"
	"errors"
	"time"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

var (
	ErrInvalidPayoutAmount = errors.New("payout amount must be positive")
	ErrInsufficientFunds   = errors.New("payout amount exceeds available earnings")
)

type payoutService struct {
	payoutRepo  repository.PayoutRepository
	bookingRepo repository.BookingRepository
}

func NewPayoutService(payoutRepo repository.PayoutRepository, bookingRepo repository.BookingRepository) PayoutService {
	return &payoutService{
		payoutRepo:  payoutRepo,
		bookingRepo: bookingRepo,
	}
}

// RequestPayout withdraws part of the owner's accumulated earnings. Payouts
// settle immediately; there is no external payout provider to wait on.
func (s *payoutService) RequestPayout(ctx context.Context, ownerID string, amountCents int64) (*domain.Payout, error) {
	if amountCents <= 0 {
		return nil, ErrInvalidPayoutAmount
	}

	completed, err := s.bookingRepo.ListCompletedByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var earned int64
	for _, b := range completed {
		if b.PaymentStatus == domain.PaymentStatusCompleted {
			earned += b.TotalPriceCents
		}
	}
	withdrawn, err := s.payoutRepo.TotalWithdrawnCents(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if amountCents > earned-withdrawn {
		return nil, ErrInsufficientFunds
	}

	now := time.Now()
	payout := &domain.Payout{
		OwnerID:     ownerID,
		AmountCents: amountCents,
		Status:      domain.PayoutStatusCompleted,
		RequestedAt: now,
		CompletedAt: &now,
	}
	if err := s.payoutRepo.Create(ctx, payout); err != nil {
		return nil, err
	}
	return payout, nil
}

func (s *payoutService) ListPayouts(ctx context.Context, ownerID string) ([]domain.Payout, error) {
	return s.payoutRepo.ListByOwner(ctx, ownerID)
}
