package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jpeder/gamevault/internal/domain"
)

// Archive defines the interface for archived snapshot persistence and the
// reconciliation workflows built on top of it.
type Archive interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ArchivedReview, error)
	List(ctx context.Context) ([]domain.ArchivedReview, error)

	// Materialize produces or refreshes the normalized review for an
	// archive-only snapshot, writing resolved names back into the snapshot
	// JSON within the same transaction.
	Materialize(ctx context.Context, id uuid.UUID, ref domain.GenreRef) (*domain.MaterializeResult, error)

	// Patch shallow-merges a partial JSON object into the snapshot and
	// propagates normalizable fields to the linked review, if one exists.
	Patch(ctx context.Context, id uuid.UUID, patch map[string]any) (*domain.ArchivedReview, error)

	AggregateByRating(ctx context.Context) ([]domain.RatingBucket, error)
	AggregateByCategory(ctx context.Context) (*domain.CategoryDashboard, error)
}
