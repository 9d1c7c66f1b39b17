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

// ArchiveRepository implements the archive repository for PostgreSQL
type ArchiveRepository struct {
	db *pgxpool.Pool
}

// NewArchiveRepository creates a new ArchiveRepository
func NewArchiveRepository(db *pgxpool.Pool) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// GetByID fetches one archived snapshot
func (r *ArchiveRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ArchivedReview, error) {
	query := `SELECT id, review_json, created_at FROM archived_reviews WHERE id = $1`
	var ar domain.ArchivedReview
	err := r.db.QueryRow(ctx, query, id).Scan(&ar.ID, &ar.ReviewJSON, &ar.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrArchiveNotFound
		}
		return nil, wrapDBError("failed to get archived review", err)
	}
	return &ar, nil
}

// List returns all archived snapshots, newest first
func (r *ArchiveRepository) List(ctx context.Context) ([]domain.ArchivedReview, error) {
	query := `SELECT id, review_json, created_at FROM archived_reviews ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("failed to list archived reviews", err)
	}
	defer rows.Close()

	var archives []domain.ArchivedReview
	for rows.Next() {
		var ar domain.ArchivedReview
		if err := rows.Scan(&ar.ID, &ar.ReviewJSON, &ar.CreatedAt); err != nil {
			return nil, wrapDBError("failed to scan archived review", err)
		}
		archives = append(archives, ar)
	}
	return archives, rows.Err()
}

// Materialize produces or refreshes the normalized review for an archive
// snapshot. The game row is locked while resolving so concurrent
// materialize calls against the same existing game serialize. The resolved
// names are merged back into review_json inside the same transaction; any
// failure rolls the whole operation back.
func (r *ArchiveRepository) Materialize(ctx context.Context, id uuid.UUID, ref domain.GenreRef) (*domain.MaterializeResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapDBError("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	var raw json.RawMessage
	err = tx.QueryRow(ctx, `SELECT review_json FROM archived_reviews WHERE id = $1`, id).Scan(&raw)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrArchiveNotFound
		}
		return nil, wrapDBError("failed to load archive snapshot", err)
	}

	snap, err := domain.DecodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode archive snapshot: %w", err)
	}

	// A snapshot without a game name cannot be linked to a normalized
	// review; the review write is skipped and only the classification
	// write-back below runs.
	var gameID int
	gameName := strings.TrimSpace(snap.GameName)
	if gameName != "" {
		gameID, err = resolveGameTx(ctx, tx, gameName, true)
		if err != nil {
			return nil, err
		}
	}

	// Fall back to the snapshot's own classification when the caller did
	// not supply one.
	if ref.IsZero() && strings.TrimSpace(snap.Genre) != "" {
		ref = domain.GenreRef{GenreName: snap.Genre, CategoryName: snap.CategoryName}
	}

	var genre *domain.GenreResolution
	var genreID *int
	if !ref.IsZero() {
		genre, err = resolveGenreTx(ctx, tx, ref)
		if err != nil {
			return nil, err
		}
		genreID = &genre.Genre.ID
	}

	var rating float64
	if snap.Rating != nil {
		rating = *snap.Rating
	}

	var rev *domain.Review
	outcome := domain.MaterializeSkipped
	if gameName != "" {
		// Update-vs-create hinges on whether a review already references
		// the resolved game; a created review takes the archive row's own
		// id so the two representations share identity from then on.
		var targetID uuid.UUID
		outcome = domain.MaterializeUpdated
		err = tx.QueryRow(ctx, `SELECT id FROM reviews WHERE game_id = $1 LIMIT 1`, gameID).Scan(&targetID)
		if err == pgx.ErrNoRows {
			targetID = id
			outcome = domain.MaterializeCreated
			insertQuery := `
				INSERT INTO reviews (id, game_id, title, review_text, rating,
				                     positive_points, negative_points, tags, genre_id)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`
			_, err = tx.Exec(ctx, insertQuery, targetID, gameID, snap.Title, snap.ReviewText,
				rating, snap.PositivePoints, snap.NegativePoints, snap.Tags, genreID)
			if err != nil {
				return nil, wrapDBError("failed to insert materialized review", err)
			}
		} else if err != nil {
			return nil, wrapDBError("failed to find review for game", err)
		} else {
			updateQuery := `
				UPDATE reviews
				SET game_id = $2, title = $3, review_text = $4, rating = $5,
				    positive_points = $6, negative_points = $7, tags = $8,
				    genre_id = $9, updated_at = NOW()
				WHERE id = $1
			`
			_, err = tx.Exec(ctx, updateQuery, targetID, gameID, snap.Title, snap.ReviewText,
				rating, snap.PositivePoints, snap.NegativePoints, snap.Tags, genreID)
			if err != nil {
				return nil, wrapDBError("failed to update materialized review", err)
			}
		}

		rev, err = scanReview(tx.QueryRow(ctx,
			`SELECT `+reviewColumns+` FROM reviews r JOIN games g ON g.id = r.game_id WHERE r.id = $1`, targetID))
		if err != nil {
			return nil, wrapDBError("failed to load materialized review", err)
		}
	}

	// Write resolved names back into the snapshot so later reads reflect
	// the normalized classification without a join.
	writeback := map[string]any{}
	if gameName != "" {
		writeback["game_name"] = gameName
	}
	if genre != nil {
		writeback["genre"] = genre.Genre.Name
		if genre.CategoryName != "" {
			writeback["categoryName"] = genre.CategoryName
		}
	}
	if len(writeback) > 0 {
		patch, err := json.Marshal(writeback)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal writeback patch: %w", err)
		}
		_, err = tx.Exec(ctx,
			`UPDATE archived_reviews SET review_json = review_json || $2::jsonb WHERE id = $1`, id, patch)
		if err != nil {
			return nil, wrapDBError("failed to write back archive metadata", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapDBError("failed to commit transaction", err)
	}

	return &domain.MaterializeResult{
		Review:       rev,
		Genre:        genre,
		Materialized: outcome,
	}, nil
}

// Patch shallow-merges a partial JSON object into the snapshot (new keys
// overwrite, absent keys are preserved) and propagates normalizable fields
// to the linked review, if one exists. Atomic.
func (r *ArchiveRepository) Patch(ctx context.Context, id uuid.UUID, patch map[string]any) (*domain.ArchivedReview, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, wrapDBError("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	patchJSON, err := json.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patch: %w", err)
	}

	var ar domain.ArchivedReview
	ar.ID = id
	err = tx.QueryRow(ctx, `
		UPDATE archived_reviews
		SET review_json = review_json || $2::jsonb
		WHERE id = $1
		RETURNING review_json, created_at
	`, id, patchJSON).Scan(&ar.ReviewJSON, &ar.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrArchiveNotFound
		}
		return nil, wrapDBError("failed to merge archive patch", err)
	}

	// The merged JSON, not the client payload, is the source of truth for
	// propagation.
	snap, err := domain.DecodeSnapshot(ar.ReviewJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode merged snapshot: %w", err)
	}

	var currentGameID int
	err = tx.QueryRow(ctx, `SELECT game_id FROM reviews WHERE id = $1`, id).Scan(&currentGameID)
	if err == pgx.ErrNoRows {
		// Archive-only snapshot: nothing to propagate.
		if err := tx.Commit(ctx); err != nil {
			return nil, wrapDBError("failed to commit transaction", err)
		}
		return &ar, nil
	}
	if err != nil {
		return nil, wrapDBError("failed to load linked review", err)
	}

	gameID := currentGameID
	if name := strings.TrimSpace(snap.GameName); name != "" {
		gameID, err = relinkGameTx(ctx, tx, currentGameID, name)
		if err != nil {
			return nil, err
		}
	}

	var genreID *int
	if strings.TrimSpace(snap.Genre) != "" {
		res, err := resolveGenreTx(ctx, tx, domain.GenreRef{
			GenreName:    snap.Genre,
			CategoryName: snap.CategoryName,
		})
		if err != nil {
			return nil, err
		}
		genreID = &res.Genre.ID
	}

	var rating float64
	if snap.Rating != nil {
		rating = *snap.Rating
	}
	_, err = tx.Exec(ctx, `
		UPDATE reviews
		SET game_id = $2, title = $3, review_text = $4, rating = $5,
		    positive_points = $6, negative_points = $7, tags = $8,
		    genre_id = $9, updated_at = NOW()
		WHERE id = $1
	`, id, gameID, snap.Title, snap.ReviewText, rating,
		snap.PositivePoints, snap.NegativePoints, snap.Tags, genreID)
	if err != nil {
		return nil, wrapDBError("failed to propagate to review", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapDBError("failed to commit transaction", err)
	}
	return &ar, nil
}

// numericRating filters archive rows to those whose rating parses as a
// number; rows missing a rating are excluded from the dashboards.
const numericRating = `review_json->>'rating' ~ '^-?[0-9]+(\.[0-9]+)?$'`

// AggregateByRating groups archive snapshots into integer rating buckets
// with up to three sample titles each.
func (r *ArchiveRepository) AggregateByRating(ctx context.Context) ([]domain.RatingBucket, error) {
	query := `
		SELECT ROUND((review_json->>'rating')::numeric)::int AS rating,
		       COUNT(*)::int AS count,
		       (ARRAY_AGG(COALESCE(review_json->>'title', '') ORDER BY created_at DESC))[1:3] AS samples
		FROM archived_reviews
		WHERE ` + numericRating + `
		GROUP BY 1
		ORDER BY 1
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("failed to aggregate by rating", err)
	}
	defer rows.Close()

	var buckets []domain.RatingBucket
	for rows.Next() {
		var b domain.RatingBucket
		if err := rows.Scan(&b.Rating, &b.Count, &b.Samples); err != nil {
			return nil, wrapDBError("failed to scan rating bucket", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

// AggregateByCategory computes the two-level dashboard: category rollups and
// genre rollups, joining each snapshot's denormalized genre text against the
// genres table case-insensitively. Genres and categories with no matching
// archive rows are omitted (inner joins).
func (r *ArchiveRepository) AggregateByCategory(ctx context.Context) (*domain.CategoryDashboard, error) {
	categoryQuery := `
		SELECT c.id, c.name, COUNT(*)::int AS count,
		       AVG((ar.review_json->>'rating')::numeric)::float8 AS avg_rating,
		       MIN(ar.review_json->>'game_name') AS sample_game
		FROM archived_reviews ar
		JOIN genres g ON LOWER(g.name) = LOWER(ar.review_json->>'genre')
		JOIN categories c ON c.id = g.category_id
		WHERE ` + numericRating + `
		GROUP BY c.id, c.name
		ORDER BY LOWER(c.name)
	`
	rows, err := r.db.Query(ctx, categoryQuery)
	if err != nil {
		return nil, wrapDBError("failed to aggregate by category", err)
	}
	defer rows.Close()

	dashboard := &domain.CategoryDashboard{}
	for rows.Next() {
		var agg domain.CategoryAggregate
		if err := rows.Scan(&agg.CategoryID, &agg.CategoryName, &agg.Count, &agg.AvgRating, &agg.SampleGame); err != nil {
			return nil, wrapDBError("failed to scan category aggregate", err)
		}
		dashboard.Categories = append(dashboard.Categories, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	genreQuery := `
		SELECT g.id, g.name, g.category_id, COUNT(*)::int AS count,
		       AVG((ar.review_json->>'rating')::numeric)::float8 AS avg_rating,
		       MIN(ar.review_json->>'game_name') AS sample_game
		FROM archived_reviews ar
		JOIN genres g ON LOWER(g.name) = LOWER(ar.review_json->>'genre')
		WHERE ` + numericRating + `
		GROUP BY g.id, g.name, g.category_id
		ORDER BY LOWER(g.name)
	`
	genreRows, err := r.db.Query(ctx, genreQuery)
	if err != nil {
		return nil, wrapDBError("failed to aggregate by genre", err)
	}
	defer genreRows.Close()

	for genreRows.Next() {
		var agg domain.GenreAggregate
		if err := genreRows.Scan(&agg.GenreID, &agg.GenreName, &agg.CategoryID, &agg.Count, &agg.AvgRating, &agg.SampleGame); err != nil {
			return nil, wrapDBError("failed to scan genre aggregate", err)
		}
		dashboard.Genres = append(dashboard.Genres, agg)
	}
	return dashboard, genreRows.Err()
}
