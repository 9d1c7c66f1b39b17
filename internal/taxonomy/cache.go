package taxonomy

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"

	"github.com/jpeder/gamevault/internal/domain"
)

// Cache keys for the full list entries. Genre resolutions are keyed by the
// case-folded genre name alongside them.
const (
	cacheKeyGenres     = "genres"
	cacheKeyCategories = "categories"
)

// taxonomyCache provides an in-memory LRU cache for genre and category
// lookups with time-based expiration. Resolution entries are keyed by the
// Unicode case-folded genre name so lookups agree with the database's
// case-insensitive uniqueness.
type taxonomyCache struct {
	resolutions *expirable.LRU[string, *domain.GenreResolution]
	genres      *expirable.LRU[string, []domain.Genre]
	categories  *expirable.LRU[string, []domain.Category]
}

// newTaxonomyCache creates a new taxonomy cache with the specified size and TTL.
func newTaxonomyCache(size int, ttl time.Duration) *taxonomyCache {
	return &taxonomyCache{
		resolutions: expirable.NewLRU[string, *domain.GenreResolution](size, nil, ttl),
		genres:      expirable.NewLRU[string, []domain.Genre](1, nil, ttl),
		categories:  expirable.NewLRU[string, []domain.Category](1, nil, ttl),
	}
}

// foldName normalizes a genre name into a cache key
func foldName(name string) string {
	return cases.Fold().String(name)
}

// GetResolution returns a cached resolution for a genre name. The stored
// casing must match exactly; a caller asking with different casing has to go
// to the database so the last-writer-wins rename still happens.
func (c *taxonomyCache) GetResolution(name string) (*domain.GenreResolution, bool) {
	res, found := c.resolutions.Get(foldName(name))
	if !found {
		return nil, false
	}
	if res.Genre.Name != name {
		return nil, false
	}
	return res, true
}

// SetResolution stores a resolved genre under its folded name
func (c *taxonomyCache) SetResolution(res *domain.GenreResolution) {
	c.resolutions.Add(foldName(res.Genre.Name), res)
}

// GetGenres returns the cached genre list
func (c *taxonomyCache) GetGenres() ([]domain.Genre, bool) {
	return c.genres.Get(cacheKeyGenres)
}

// SetGenres stores the full genre list
func (c *taxonomyCache) SetGenres(genres []domain.Genre) {
	c.genres.Add(cacheKeyGenres, genres)
}

// GetCategories returns the cached category list
func (c *taxonomyCache) GetCategories() ([]domain.Category, bool) {
	return c.categories.Get(cacheKeyCategories)
}

// SetCategories stores the full category list
func (c *taxonomyCache) SetCategories(categories []domain.Category) {
	c.categories.Add(cacheKeyCategories, categories)
}

// Invalidate drops everything. Called after any write that may have created
// or renamed a genre or category.
func (c *taxonomyCache) Invalidate() {
	c.resolutions.Purge()
	c.genres.Purge()
	c.categories.Purge()
}
