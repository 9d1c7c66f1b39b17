package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jpeder/gamevault/internal/domain"
)

// TaxonomyRepository implements the taxonomy repository for PostgreSQL
type TaxonomyRepository struct {
	db *pgxpool.Pool
}

// NewTaxonomyRepository creates a new TaxonomyRepository
func NewTaxonomyRepository(db *pgxpool.Pool) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// NormalizeGenre turns a free-text (genre, category) pair or id pair into
// stable foreign keys, creating rows as needed. The whole workflow runs in
// one transaction so a half-created category can never outlive a failed
// genre upsert.
func (r *TaxonomyRepository) NormalizeGenre(ctx context.Context, ref domain.GenreRef) (*domain.GenreResolution, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapDBError("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	res, err := resolveGenreTx(ctx, tx, ref)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapDBError("failed to commit transaction", err)
	}
	return res, nil
}

// GetGenreByID fetches a single genre row
func (r *TaxonomyRepository) GetGenreByID(ctx context.Context, id int) (*domain.Genre, error) {
	query := `SELECT id, name, category_id FROM genres WHERE id = $1`
	var g domain.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(&g.ID, &g.Name, &g.CategoryID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrGenreNotFound
		}
		return nil, wrapDBError("failed to get genre", err)
	}
	return &g, nil
}

// ListGenres returns all genres ordered by name
func (r *TaxonomyRepository) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	query := `SELECT id, name, category_id FROM genres ORDER BY LOWER(name)`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("failed to list genres", err)
	}
	defer rows.Close()

	var genres []domain.Genre
	for rows.Next() {
		var g domain.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.CategoryID); err != nil {
			return nil, wrapDBError("failed to scan genre", err)
		}
		genres = append(genres, g)
	}
	return genres, rows.Err()
}

// ListCategories returns all categories ordered by name
func (r *TaxonomyRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY LOWER(name)`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("failed to list categories", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, wrapDBError("failed to scan category", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
