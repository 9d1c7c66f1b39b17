package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jpeder/gamevault/internal/domain"
)

// WipRepository implements the scratch-pad repository for PostgreSQL
type WipRepository struct {
	db *pgxpool.Pool
}

// NewWipRepository creates a new WipRepository
func NewWipRepository(db *pgxpool.Pool) *WipRepository {
	return &WipRepository{db: db}
}

// Create inserts a new scratch-pad entry and fills in its id and timestamps
func (r *WipRepository) Create(ctx context.Context, wip *domain.WipReview) error {
	query := `
		INSERT INTO wip_reviews (game_name, remarks)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, wip.GameName, wip.Remarks).
		Scan(&wip.ID, &wip.CreatedAt, &wip.UpdatedAt)
	if err != nil {
		return wrapDBError("failed to insert wip review", err)
	}
	return nil
}

// GetByID fetches one scratch-pad entry
func (r *WipRepository) GetByID(ctx context.Context, id int) (*domain.WipReview, error) {
	query := `SELECT id, game_name, remarks, created_at, updated_at FROM wip_reviews WHERE id = $1`
	var wip domain.WipReview
	err := r.db.QueryRow(ctx, query, id).
		Scan(&wip.ID, &wip.GameName, &wip.Remarks, &wip.CreatedAt, &wip.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrWipNotFound
		}
		return nil, wrapDBError("failed to get wip review", err)
	}
	return &wip, nil
}

// List returns all scratch-pad entries, most recently updated first
func (r *WipRepository) List(ctx context.Context) ([]domain.WipReview, error) {
	query := `SELECT id, game_name, remarks, created_at, updated_at FROM wip_reviews ORDER BY updated_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("failed to list wip reviews", err)
	}
	defer rows.Close()

	var wips []domain.WipReview
	for rows.Next() {
		var wip domain.WipReview
		if err := rows.Scan(&wip.ID, &wip.GameName, &wip.Remarks, &wip.CreatedAt, &wip.UpdatedAt); err != nil {
			return nil, wrapDBError("failed to scan wip review", err)
		}
		wips = append(wips, wip)
	}
	return wips, rows.Err()
}

// Update replaces a scratch-pad entry's fields
func (r *WipRepository) Update(ctx context.Context, wip *domain.WipReview) error {
	query := `
		UPDATE wip_reviews
		SET game_name = $2, remarks = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, wip.ID, wip.GameName, wip.Remarks).Scan(&wip.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrWipNotFound
		}
		return wrapDBError("failed to update wip review", err)
	}
	return nil
}

// Delete removes a scratch-pad entry
func (r *WipRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM wip_reviews WHERE id = $1`, id)
	if err != nil {
		return wrapDBError("failed to delete wip review", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWipNotFound
	}
	return nil
}
