package service

import (
	"context"
	"errors"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/logger"
	"toolshed-backend/internal/repository"
)

var ErrInvalidTier = errors.New("unknown subscription tier")

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateSubscription switches the user between the free and the paid tier.
// The pro discount applies to bookings created after the switch; existing
// bookings keep their quoted price.
func (s *userService) UpdateSubscription(ctx context.Context, userID string, tier domain.SubscriptionTier) (*domain.User, error) {
	switch tier {
	case domain.SubscriptionTierFree, domain.SubscriptionTierPro:
	default:
		return nil, ErrInvalidTier
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.SubscriptionTier == tier {
		return user, nil
	}

	user.SubscriptionTier = tier
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	logger.Info("subscription tier changed", "user_id", userID, "tier", tier)
	return user, nil
}
