package catalog

import (
	"context"

	"logisa-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the read-side of the materials catalog.
type Service interface {
	List(ctx context.Context, opts ListOptions) ([]*Material, error)
	Get(ctx context.Context, id string) (*Material, error)
	Groups(ctx context.Context) ([]*MaterialGroup, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Material, error) {
	return s.repo.List(ctx, opts)
}

func (s *service) Get(ctx context.Context, id string) (*Material, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Error("material lookup failed",
			zap.String("material_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	if m == nil {
		return nil, ErrMaterialNotFound
	}
	return m, nil
}

func (s *service) Groups(ctx context.Context) ([]*MaterialGroup, error) {
	return s.repo.ListGroups(ctx)
}
