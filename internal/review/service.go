package review

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jpeder/gamevault/internal/domain"
	"github.com/jpeder/gamevault/internal/logger"
	"github.com/jpeder/gamevault/internal/metrics"
	"github.com/jpeder/gamevault/internal/repository"
)

// Service defines the interface for review operations
type Service interface {
	Submit(ctx context.Context, sub domain.ReviewSubmission) (*domain.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, id uuid.UUID, sub domain.ReviewSubmission) (*domain.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CacheInvalidator is the slice of the taxonomy service the write paths
// need: submitting or editing a review may create genres and categories as a
// side effect, which must not be served stale.
type CacheInvalidator interface {
	InvalidateCache()
}

// service implements the Service interface
type service struct {
	repo     repository.Review
	taxonomy CacheInvalidator
}

// NewService creates a new review service
func NewService(repo repository.Review, taxonomy CacheInvalidator) Service {
	return &service{repo: repo, taxonomy: taxonomy}
}

// Submit validates a submission and writes the normalized review row plus
// its archive snapshot atomically.
func (s *service) Submit(ctx context.Context, sub domain.ReviewSubmission) (*domain.Review, error) {
	log := logger.FromContext(ctx)

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	rev, err := s.repo.CreateWithSnapshot(ctx, sub)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(sub.Genre) != "" {
		s.taxonomy.InvalidateCache()
	}
	metrics.ReviewsSubmitted.Inc()

	log.Info("Review submitted",
		"review_id", rev.ID,
		"game", rev.GameName,
		"rating", rev.Rating)
	return rev, nil
}

// Get fetches one review
func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all reviews, newest first
func (s *service) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.List(ctx)
}

// Update validates the replacement fields and applies them to both the
// review row and its archive snapshot.
func (s *service) Update(ctx context.Context, id uuid.UUID, sub domain.ReviewSubmission) (*domain.Review, error) {
	log := logger.FromContext(ctx)

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	rev, err := s.repo.Update(ctx, id, sub)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(sub.Genre) != "" {
		s.taxonomy.InvalidateCache()
	}
	metrics.ReviewsUpdated.Inc()

	log.Info("Review updated", "review_id", rev.ID, "game", rev.GameName)
	return rev, nil
}

// Delete removes a review. The archive snapshot stays behind so the review
// can be rebuilt later through materialization.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.ReviewsDeleted.Inc()

	log.Info("Review deleted", "review_id", id)
	return nil
}
