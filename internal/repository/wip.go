package repository

import (
	"context"

	"github.com/jpeder/gamevault/internal/domain"
)

// Wip defines the interface for scratch-pad review persistence.
type Wip interface {
	Create(ctx context.Context, wip *domain.WipReview) error
	GetByID(ctx context.Context, id int) (*domain.WipReview, error)
	List(ctx context.Context) ([]domain.WipReview, error)
	Update(ctx context.Context, wip *domain.WipReview) error
	Delete(ctx context.Context, id int) error
}
