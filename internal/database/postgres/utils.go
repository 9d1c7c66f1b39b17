package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jpeder/gamevault/internal/domain"
)

// wrapDBError tags a failed statement as a storage error; the handler layer
// maps anything carrying domain.ErrDatabaseError to a generic 500 so driver
// text never reaches clients.
func wrapDBError(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, domain.ErrDatabaseError, err)
}

// upsertCategoryTx inserts or updates a category by case-insensitive name.
// The stored casing is the last writer's (ON CONFLICT DO UPDATE rewrites the
// name), and the id is stable across casings.
func upsertCategoryTx(ctx context.Context, tx pgx.Tx, name string) (int, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (LOWER(name)) DO UPDATE
		SET name = EXCLUDED.name
		RETURNING id
	`
	var id int
	if err := tx.QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, wrapDBError("failed to upsert category", err)
	}
	return id, nil
}

// upsertGenreTx inserts or updates a genre by case-insensitive name. A nil
// categoryID preserves any existing category link (COALESCE semantics); a
// non-nil one overwrites it.
func upsertGenreTx(ctx context.Context, tx pgx.Tx, name string, categoryID *int) (int, error) {
	query := `
		INSERT INTO genres (name, category_id)
		VALUES ($1, $2)
		ON CONFLICT (LOWER(name)) DO UPDATE
		SET name = EXCLUDED.name,
		    category_id = COALESCE(EXCLUDED.category_id, genres.category_id)
		RETURNING id
	`
	var id int
	if err := tx.QueryRow(ctx, query, name, categoryID).Scan(&id); err != nil {
		return 0, wrapDBError("failed to upsert genre", err)
	}
	return id, nil
}

// linkGenreCategoryTx sets the category link on an id-addressed genre,
// preserving an existing link when categoryID is nil.
func linkGenreCategoryTx(ctx context.Context, tx pgx.Tx, genreID int, categoryID *int) error {
	query := `
		UPDATE genres
		SET category_id = COALESCE($2, category_id)
		WHERE id = $1
	`
	tag, err := tx.Exec(ctx, query, genreID, categoryID)
	if err != nil {
		return wrapDBError("failed to link genre category", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGenreNotFound
	}
	return nil
}

// genreResolutionTx re-queries the resolved genre and its category display
// name after an upsert.
func genreResolutionTx(ctx context.Context, tx pgx.Tx, genreID int) (*domain.GenreResolution, error) {
	query := `
		SELECT g.id, g.name, g.category_id, COALESCE(c.name, '')
		FROM genres g
		LEFT JOIN categories c ON c.id = g.category_id
		WHERE g.id = $1
	`
	var res domain.GenreResolution
	err := tx.QueryRow(ctx, query, genreID).Scan(
		&res.Genre.ID, &res.Genre.Name, &res.Genre.CategoryID, &res.CategoryName)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrGenreNotFound
		}
		return nil, wrapDBError("failed to load genre resolution", err)
	}
	return &res, nil
}

// resolveGenreTx runs the full normalizer workflow inside the caller's
// transaction: upsert category by name (if given), resolve the final
// category id, upsert/link the genre, and re-query the resolved names.
func resolveGenreTx(ctx context.Context, tx pgx.Tx, ref domain.GenreRef) (*domain.GenreResolution, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	finalCategoryID := ref.CategoryID
	if finalCategoryID == nil {
		if name := strings.TrimSpace(ref.CategoryName); name != "" {
			id, err := upsertCategoryTx(ctx, tx, name)
			if err != nil {
				return nil, err
			}
			finalCategoryID = &id
		}
	}

	var genreID int
	if ref.GenreID != nil {
		genreID = *ref.GenreID
		if err := linkGenreCategoryTx(ctx, tx, genreID, finalCategoryID); err != nil {
			return nil, err
		}
	} else {
		id, err := upsertGenreTx(ctx, tx, strings.TrimSpace(ref.GenreName), finalCategoryID)
		if err != nil {
			return nil, err
		}
		genreID = id
	}

	return genreResolutionTx(ctx, tx, genreID)
}

// findGameByNameTx looks a game up by exact name. The forUpdate variant
// locks the row so concurrent materialize calls against the same game
// serialize on it.
func findGameByNameTx(ctx context.Context, tx pgx.Tx, name string, forUpdate bool) (int, bool, error) {
	query := `SELECT id FROM games WHERE name = $1 LIMIT 1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var id int
	err := tx.QueryRow(ctx, query, name).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, wrapDBError("failed to find game", err)
	}
	return id, true, nil
}

// resolveGameTx finds a game by exact name or lazily creates it.
func resolveGameTx(ctx context.Context, tx pgx.Tx, name string, forUpdate bool) (int, error) {
	id, found, err := findGameByNameTx(ctx, tx, name, forUpdate)
	if err != nil {
		return 0, err
	}
	if found {
		return id, nil
	}
	err = tx.QueryRow(ctx, `INSERT INTO games (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, wrapDBError("failed to create game", err)
	}
	return id, nil
}

// countReviewsForGameTx reports how many reviews reference a game. Used by
// the rename-vs-new-game decision: renaming is only safe when exactly one
// review would be affected.
func countReviewsForGameTx(ctx context.Context, tx pgx.Tx, gameID int) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE game_id = $1`, gameID).Scan(&count)
	if err != nil {
		return 0, wrapDBError("failed to count reviews for game", err)
	}
	return count, nil
}

// relinkGameTx applies the three-way game policy for edits: link an existing
// exact-name game, rename the current game in place when this review is its
// only reference, or create a fresh game row and relink.
func relinkGameTx(ctx context.Context, tx pgx.Tx, currentGameID int, targetName string) (int, error) {
	id, found, err := findGameByNameTx(ctx, tx, targetName, false)
	if err != nil {
		return 0, err
	}
	if found {
		return id, nil
	}

	count, err := countReviewsForGameTx(ctx, tx, currentGameID)
	if err != nil {
		return 0, err
	}
	if count == 1 {
		_, err := tx.Exec(ctx, `UPDATE games SET name = $1 WHERE id = $2`, targetName, currentGameID)
		if err != nil {
			return 0, wrapDBError("failed to rename game", err)
		}
		return currentGameID, nil
	}

	var newID int
	err = tx.QueryRow(ctx, `INSERT INTO games (name) VALUES ($1) RETURNING id`, targetName).Scan(&newID)
	if err != nil {
		return 0, wrapDBError("failed to create game", err)
	}
	return newID, nil
}
