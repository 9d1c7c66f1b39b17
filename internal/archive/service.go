package archive

import (
	"context"

	"github.com/google/uuid"

	"github.com/jpeder/gamevault/internal/domain"
	"github.com/jpeder/gamevault/internal/logger"
	"github.com/jpeder/gamevault/internal/metrics"
	"github.com/jpeder/gamevault/internal/repository"
)

// Service defines the interface for archive snapshot operations
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.ArchivedReview, error)
	List(ctx context.Context) ([]domain.ArchivedReview, error)
	Materialize(ctx context.Context, id uuid.UUID, ref domain.GenreRef) (*domain.MaterializeResult, error)
	Patch(ctx context.Context, id uuid.UUID, patch map[string]any) (*domain.ArchivedReview, error)
	AggregateByRating(ctx context.Context) ([]domain.RatingBucket, error)
	AggregateByCategory(ctx context.Context) (*domain.CategoryDashboard, error)
}

// CacheInvalidator is the slice of the taxonomy service the write paths
// need; materialize and patch can both create genres and categories.
type CacheInvalidator interface {
	InvalidateCache()
}

// service implements the Service interface
type service struct {
	repo     repository.Archive
	taxonomy CacheInvalidator
}

// NewService creates a new archive service
func NewService(repo repository.Archive, taxonomy CacheInvalidator) Service {
	return &service{repo: repo, taxonomy: taxonomy}
}

// Get fetches one archive snapshot
func (s *service) Get(ctx context.Context, id uuid.UUID) (*domain.ArchivedReview, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all archive snapshots, newest first
func (s *service) List(ctx context.Context) ([]domain.ArchivedReview, error) {
	return s.repo.List(ctx)
}

// Materialize rebuilds the normalized review row from a snapshot. The caller
// may supply genre hints in ref; with a zero ref the snapshot's own genre
// fields drive normalization.
func (s *service) Materialize(ctx context.Context, id uuid.UUID, ref domain.GenreRef) (*domain.MaterializeResult, error) {
	log := logger.FromContext(ctx)

	res, err := s.repo.Materialize(ctx, id, ref)
	if err != nil {
		return nil, err
	}

	s.taxonomy.InvalidateCache()
	metrics.ArchivesMaterialized.WithLabelValues(string(res.Materialized)).Inc()

	if res.Review != nil {
		log.Info("Archive materialized",
			"archive_id", id,
			"review_id", res.Review.ID,
			"outcome", res.Materialized)
	} else {
		log.Info("Archive materialized", "archive_id", id, "outcome", res.Materialized)
	}
	return res, nil
}

// Patch merges a partial JSON document into a snapshot and pushes the
// changed fields through to the linked review, if one exists.
func (s *service) Patch(ctx context.Context, id uuid.UUID, patch map[string]any) (*domain.ArchivedReview, error) {
	log := logger.FromContext(ctx)

	if len(patch) == 0 {
		return nil, domain.ErrEmptyPatch
	}

	arch, err := s.repo.Patch(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.taxonomy.InvalidateCache()
	metrics.ArchivePatches.Inc()

	log.Info("Archive patched", "archive_id", id, "fields", len(patch))
	return arch, nil
}

// AggregateByRating returns the rating histogram over all snapshots
func (s *service) AggregateByRating(ctx context.Context) ([]domain.RatingBucket, error) {
	return s.repo.AggregateByRating(ctx)
}

// AggregateByCategory returns per-category and per-genre rating aggregates
func (s *service) AggregateByCategory(ctx context.Context) (*domain.CategoryDashboard, error) {
	return s.repo.AggregateByCategory(ctx)
}
