package wip

import (
	"context"

	"github.com/jpeder/gamevault/internal/domain"
	"github.com/jpeder/gamevault/internal/logger"
	"github.com/jpeder/gamevault/internal/repository"
)

// Service defines the interface for scratch-pad operations
type Service interface {
	Create(ctx context.Context, wip domain.WipReview) (*domain.WipReview, error)
	Get(ctx context.Context, id int) (*domain.WipReview, error)
	List(ctx context.Context) ([]domain.WipReview, error)
	Update(ctx context.Context, id int, wip domain.WipReview) (*domain.WipReview, error)
	Delete(ctx context.Context, id int) error
}

// service implements the Service interface
type service struct {
	repo repository.Wip
}

// NewService creates a new scratch-pad service
func NewService(repo repository.Wip) Service {
	return &service{repo: repo}
}

// Create stores a new scratch-pad entry
func (s *service) Create(ctx context.Context, wip domain.WipReview) (*domain.WipReview, error) {
	log := logger.FromContext(ctx)

	if err := wip.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &wip); err != nil {
		return nil, err
	}

	log.Info("Wip review created", "wip_id", wip.ID, "game", wip.GameName)
	return &wip, nil
}

// Get fetches one scratch-pad entry
func (s *service) Get(ctx context.Context, id int) (*domain.WipReview, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all scratch-pad entries, most recently updated first
func (s *service) List(ctx context.Context) ([]domain.WipReview, error) {
	return s.repo.List(ctx)
}

// Update replaces a scratch-pad entry's fields
func (s *service) Update(ctx context.Context, id int, wip domain.WipReview) (*domain.WipReview, error) {
	if err := wip.Validate(); err != nil {
		return nil, err
	}
	wip.ID = id
	if err := s.repo.Update(ctx, &wip); err != nil {
		return nil, err
	}
	return &wip, nil
}

// Delete removes a scratch-pad entry
func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
