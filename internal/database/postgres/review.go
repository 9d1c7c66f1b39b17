package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jpeder/gamevault/internal/domain"
)

// ReviewRepository implements the review repository for PostgreSQL
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `
	r.id, r.game_id, g.name, r.title, r.review_text, r.rating,
	r.positive_points, r.negative_points, r.tags, r.genre_id,
	r.created_at, r.updated_at
`

func scanReview(row pgx.Row) (*domain.Review, error) {
	var rev domain.Review
	err := row.Scan(
		&rev.ID, &rev.GameID, &rev.GameName, &rev.Title, &rev.ReviewText,
		&rev.Rating, &rev.PositivePoints, &rev.NegativePoints, &rev.Tags,
		&rev.GenreID, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

// CreateWithSnapshot inserts the normalized review row and the full JSON
// snapshot in one transaction, sharing a single UUID between them. An
// existing game with the same exact name is reused silently.
func (r *ReviewRepository) CreateWithSnapshot(ctx context.Context, sub domain.ReviewSubmission) (*domain.Review, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapDBError("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	gameID, err := resolveGameTx(ctx, tx, strings.TrimSpace(sub.GameName), false)
	if err != nil {
		return nil, err
	}

	var genreID *int
	if strings.TrimSpace(sub.Genre) != "" {
		res, err := resolveGenreTx(ctx, tx, domain.GenreRef{
			GenreName:    sub.Genre,
			CategoryName: sub.CategoryName,
		})
		if err != nil {
			return nil, err
		}
		genreID = &res.Genre.ID
	}

	id := uuid.New()
	insertQuery := `
		INSERT INTO reviews (id, game_id, title, review_text, rating,
		                     positive_points, negative_points, tags, genre_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = tx.Exec(ctx, insertQuery, id, gameID, sub.Title, sub.ReviewText, sub.Rating,
		orEmpty(sub.PositivePoints), orEmpty(sub.NegativePoints), orEmpty(sub.Tags), genreID)
	if err != nil {
		return nil, wrapDBError("failed to insert review", err)
	}

	snapshot, err := json.Marshal(domain.SnapshotFromSubmission(sub))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO archived_reviews (id, review_json) VALUES ($1, $2)`, id, snapshot)
	if err != nil {
		return nil, wrapDBError("failed to insert archive snapshot", err)
	}

	rev, err := scanReview(tx.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews r JOIN games g ON g.id = r.game_id WHERE r.id = $1`, id))
	if err != nil {
		return nil, wrapDBError("failed to load created review", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapDBError("failed to commit transaction", err)
	}
	return rev, nil
}

// GetByID fetches one review with its game name
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	rev, err := scanReview(r.db.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews r JOIN games g ON g.id = r.game_id WHERE r.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrReviewNotFound
		}
		return nil, wrapDBError("failed to get review", err)
	}
	return rev, nil
}

// List returns all reviews, newest first
func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews r JOIN games g ON g.id = r.game_id ORDER BY r.created_at DESC`)
	if err != nil {
		return nil, wrapDBError("failed to list reviews", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, wrapDBError("failed to scan review", err)
		}
		reviews = append(reviews, *rev)
	}
	return reviews, rows.Err()
}

// Update replaces the normalized fields of a review and merges the new
// values into its archive snapshot, all in one transaction. The game link
// follows the three-way policy: reuse an exact-name match, rename in place
// when this review is the game's only reference, otherwise create a new
// game row.
func (r *ReviewRepository) Update(ctx context.Context, id uuid.UUID, sub domain.ReviewSubmission) (*domain.Review, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapDBError("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	var currentGameID int
	err = tx.QueryRow(ctx, `SELECT game_id FROM reviews WHERE id = $1`, id).Scan(&currentGameID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrReviewNotFound
		}
		return nil, wrapDBError("failed to load review", err)
	}

	gameID, err := relinkGameTx(ctx, tx, currentGameID, strings.TrimSpace(sub.GameName))
	if err != nil {
		return nil, err
	}

	var genreID *int
	if strings.TrimSpace(sub.Genre) != "" {
		res, err := resolveGenreTx(ctx, tx, domain.GenreRef{
			GenreName:    sub.Genre,
			CategoryName: sub.CategoryName,
		})
		if err != nil {
			return nil, err
		}
		genreID = &res.Genre.ID
	}

	updateQuery := `
		UPDATE reviews
		SET game_id = $2, title = $3, review_text = $4, rating = $5,
		    positive_points = $6, negative_points = $7, tags = $8,
		    genre_id = $9, updated_at = NOW()
		WHERE id = $1
	`
	_, err = tx.Exec(ctx, updateQuery, id, gameID, sub.Title, sub.ReviewText, sub.Rating,
		orEmpty(sub.PositivePoints), orEmpty(sub.NegativePoints), orEmpty(sub.Tags), genreID)
	if err != nil {
		return nil, wrapDBError("failed to update review", err)
	}

	// Keep the snapshot in sync: merge, don't replace, so keys written by
	// other paths survive.
	snapshot, err := json.Marshal(domain.SnapshotFromSubmission(sub))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	_, err = tx.Exec(ctx,
		`UPDATE archived_reviews SET review_json = review_json || $2::jsonb WHERE id = $1`, id, snapshot)
	if err != nil {
		return nil, wrapDBError("failed to merge archive snapshot", err)
	}

	rev, err := scanReview(tx.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews r JOIN games g ON g.id = r.game_id WHERE r.id = $1`, id))
	if err != nil {
		return nil, wrapDBError("failed to load updated review", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapDBError("failed to commit transaction", err)
	}
	return rev, nil
}

// Delete removes the normalized row only; the archive snapshot is never
// deleted through the modeled endpoints.
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return wrapDBError("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// orEmpty keeps TEXT[] columns non-null when the client omits a slice.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
