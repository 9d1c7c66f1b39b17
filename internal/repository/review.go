package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jpeder/gamevault/internal/domain"
)

// Review defines the interface for review persistence.
// CreateWithSnapshot and Update are multi-table transactions; no partial
// writes are ever visible.
type Review interface {
	CreateWithSnapshot(ctx context.Context, sub domain.ReviewSubmission) (*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	List(ctx context.Context) ([]domain.Review, error)
	Update(ctx context.Context, id uuid.UUID, sub domain.ReviewSubmission) (*domain.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
