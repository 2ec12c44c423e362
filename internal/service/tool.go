package service

import (
	"context"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type toolService struct {
	toolRepo repository.ToolRepository
	userRepo repository.UserRepository
}

func NewToolService(toolRepo repository.ToolRepository, userRepo repository.UserRepository) ToolService {
	return &toolService{
		toolRepo: toolRepo,
		userRepo: userRepo,
	}
}

func (s *toolService) AddTool(ctx context.Context, tool *domain.Tool) error {
	tool.Active = true
	return s.toolRepo.Create(ctx, tool)
}

func (s *toolService) GetTool(ctx context.Context, id string) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner, oerr := s.userRepo.GetByID(ctx, tool.OwnerID); oerr == nil {
		tool.Owner = owner
	}
	return tool, nil
}

func (s *toolService) UpdateTool(ctx context.Context, ownerID string, tool *domain.Tool) error {
	existing, err := s.toolRepo.GetByID(ctx, tool.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrUnauthorized
	}
	tool.OwnerID = existing.OwnerID
	return s.toolRepo.Update(ctx, tool)
}

func (s *toolService) DeleteTool(ctx context.Context, ownerID, toolID string) error {
	existing, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrUnauthorized
	}
	return s.toolRepo.Delete(ctx, toolID)
}

func (s *toolService) ListMyTools(ctx context.Context, ownerID string) ([]domain.Tool, error) {
	return s.toolRepo.ListByOwner(ctx, ownerID)
}

func (s *toolService) SearchTools(ctx context.Context, district, municipality, query string) ([]domain.Tool, error) {
	return s.toolRepo.Search(ctx, district, municipality, query)
}
