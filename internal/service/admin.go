package service

import (
	"context"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type adminService struct {
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
}

func NewAdminService(userRepo repository.UserRepository, statsRepo repository.StatsRepository) AdminService {
	return &adminService{
		userRepo:  userRepo,
		statsRepo: statsRepo,
	}
}

func (s *adminService) ListUsers(ctx context.Context, adminID string) ([]domain.User, error) {
	if err := requireAdmin(ctx, s.userRepo, adminID); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

func (s *adminService) PlatformStats(ctx context.Context, adminID string) (*domain.PlatformStats, error) {
	if err := requireAdmin(ctx, s.userRepo, adminID); err != nil {
		return nil, err
	}
	return s.statsRepo.PlatformStats(ctx)
}

// requireAdmin rejects callers whose stored role is not ADMIN.
func requireAdmin(ctx context.Context, userRepo repository.UserRepository, userID string) error {
	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.Role != domain.UserRoleAdmin {
		return ErrUnauthorized
	}
	return nil
}
