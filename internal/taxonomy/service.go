package taxonomy

import (
	"context"
	"strings"
	"time"

	"github.com/jpeder/gamevault/internal/domain"
	"github.com/jpeder/gamevault/internal/logger"
	"github.com/jpeder/gamevault/internal/metrics"
	"github.com/jpeder/gamevault/internal/repository"
)

// Default cache sizing. The taxonomy is small and changes rarely, so a
// modest LRU in front of the database absorbs most dashboard traffic.
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Service defines the interface for genre and category operations
type Service interface {
	Normalize(ctx context.Context, ref domain.GenreRef) (*domain.GenreResolution, error)
	GetGenre(ctx context.Context, id int) (*domain.Genre, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	InvalidateCache()
}

// service implements the Service interface
type service struct {
	repo  repository.Taxonomy
	cache *taxonomyCache
}

// NewService creates a new taxonomy service
func NewService(repo repository.Taxonomy, cacheSize int, cacheTTL time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		cache: newTaxonomyCache(cacheSize, cacheTTL),
	}
}

// Normalize resolves a free-text or id-addressed (genre, category) pair into
// stable rows, creating them as needed. A name-only lookup whose exact casing
// is already cached skips the database round trip; anything that can write
// new state goes through and invalidates the cache.
func (s *service) Normalize(ctx context.Context, ref domain.GenreRef) (*domain.GenreResolution, error) {
	log := logger.FromContext(ctx)

	if err := ref.Validate(); err != nil {
		return nil, err
	}
	metrics.GenresNormalized.Inc()

	nameOnly := ref.GenreID == nil && ref.CategoryID == nil && strings.TrimSpace(ref.CategoryName) == ""
	if nameOnly {
		if res, found := s.cache.GetResolution(strings.TrimSpace(ref.GenreName)); found {
			metrics.GenreCacheHits.Inc()
			return res, nil
		}
		metrics.GenreCacheMisses.Inc()
	}

	res, err := s.repo.NormalizeGenre(ctx, ref)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate()
	s.cache.SetResolution(res)

	log.Debug("Genre normalized",
		"genre_id", res.Genre.ID,
		"genre", res.Genre.Name,
		"category", res.CategoryName)
	return res, nil
}

// GetGenre fetches one genre by id
func (s *service) GetGenre(ctx context.Context, id int) (*domain.Genre, error) {
	return s.repo.GetGenreByID(ctx, id)
}

// ListGenres returns all genres, served from cache when fresh
func (s *service) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	if genres, found := s.cache.GetGenres(); found {
		metrics.GenreCacheHits.Inc()
		return genres, nil
	}
	metrics.GenreCacheMisses.Inc()

	genres, err := s.repo.ListGenres(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetGenres(genres)
	return genres, nil
}

// ListCategories returns all categories, served from cache when fresh
func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	if categories, found := s.cache.GetCategories(); found {
		metrics.GenreCacheHits.Inc()
		return categories, nil
	}
	metrics.GenreCacheMisses.Inc()

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetCategories(categories)
	return categories, nil
}

// InvalidateCache drops all cached taxonomy state. Other services call this
// after write paths that may create genres or categories as a side effect.
func (s *service) InvalidateCache() {
	s.cache.Invalidate()
}
