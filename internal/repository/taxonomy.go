package repository

import (
	"context"

	"github.com/jpeder/gamevault/internal/domain"
)

// Taxonomy defines the interface for genre/category persistence.
// NormalizeGenre is an idempotent upsert: it may create rows as a side
// effect of a read-like resolution call.
type Taxonomy interface {
	NormalizeGenre(ctx context.Context, ref domain.GenreRef) (*domain.GenreResolution, error)
	GetGenreByID(ctx context.Context, id int) (*domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
