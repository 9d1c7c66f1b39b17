package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpeder/gamevault/internal/domain"
)

func newSubmission(game, title string, rating float64) domain.ReviewSubmission {
	return domain.ReviewSubmission{
		Title:      title,
		GameName:   game,
		ReviewText: "Some thoughts on " + game,
		Rating:     rating,
	}
}

func TestReviewRepository_Integration(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewReviewRepository(pool)
	archiveRepo := NewArchiveRepository(pool)
	ctx := context.Background()

	t.Run("CreateWithSnapshotSharesID", func(t *testing.T) {
		sub := newSubmission("Hades", "Death is progress", 9)
		sub.Genre = "Roguelike"
		sub.CategoryName = "Action"
		sub.Tags = []string{"replayable"}

		rev, err := repo.CreateWithSnapshot(ctx, sub)
		require.NoError(t, err)
		assert.Equal(t, "Hades", rev.GameName)
		require.NotNil(t, rev.GenreID)

		arch, err := archiveRepo.GetByID(ctx, rev.ID)
		require.NoError(t, err)
		assert.Equal(t, rev.ID, arch.ID)

		snap, err := domain.DecodeSnapshot(arch.ReviewJSON)
		require.NoError(t, err)
		assert.Equal(t, domain.SnapshotSchemaVersion, snap.SchemaVersion)
		assert.Equal(t, "Hades", snap.GameName)
		assert.Equal(t, "Roguelike", snap.Genre)
		require.NotNil(t, snap.Rating)
		assert.Equal(t, 9.0, *snap.Rating)
		assert.Equal(t, []string{"replayable"}, snap.Tags)
	})

	t.Run("ExactGameNameIsReused", func(t *testing.T) {
		first, err := repo.CreateWithSnapshot(ctx, newSubmission("Celeste", "Climb", 9))
		require.NoError(t, err)
		second, err := repo.CreateWithSnapshot(ctx, newSubmission("Celeste", "Climb again", 8))
		require.NoError(t, err)

		assert.Equal(t, first.GameID, second.GameID)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("UpdateLinksExistingGame", func(t *testing.T) {
		hades, err := repo.CreateWithSnapshot(ctx, newSubmission("Hades II", "More death", 9))
		require.NoError(t, err)
		other, err := repo.CreateWithSnapshot(ctx, newSubmission("Mislabeled", "Oops", 7))
		require.NoError(t, err)

		updated, err := repo.Update(ctx, other.ID, newSubmission("Hades II", "Oops fixed", 7))
		require.NoError(t, err)
		assert.Equal(t, hades.GameID, updated.GameID)
	})

	t.Run("UpdateRenamesGameInPlace", func(t *testing.T) {
		rev, err := repo.CreateWithSnapshot(ctx, newSubmission("Silksong", "Worth the wait", 9))
		require.NoError(t, err)

		// Sole reference, so the game row is renamed rather than duplicated
		updated, err := repo.Update(ctx, rev.ID, newSubmission("Hollow Knight: Silksong", "Worth the wait", 9))
		require.NoError(t, err)
		assert.Equal(t, rev.GameID, updated.GameID)
		assert.Equal(t, "Hollow Knight: Silksong", updated.GameName)

		var count int
		err = pool.QueryRow(ctx, `SELECT COUNT(*) FROM games WHERE name = 'Silksong'`).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, "old name should be gone after the in-place rename")
	})

	t.Run("UpdateSplitsSharedGame", func(t *testing.T) {
		a, err := repo.CreateWithSnapshot(ctx, newSubmission("Skyrim", "First run", 8))
		require.NoError(t, err)
		b, err := repo.CreateWithSnapshot(ctx, newSubmission("Skyrim", "Modded run", 9))
		require.NoError(t, err)

		updated, err := repo.Update(ctx, b.ID, newSubmission("Skyrim SE", "Modded run", 9))
		require.NoError(t, err)
		assert.NotEqual(t, a.GameID, updated.GameID, "shared game must not be renamed under the other review")

		remaining, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Skyrim", remaining.GameName)
	})

	t.Run("UpdateMergesSnapshot", func(t *testing.T) {
		rev, err := repo.CreateWithSnapshot(ctx, newSubmission("Outer Wilds", "Loop", 10))
		require.NoError(t, err)

		sub := newSubmission("Outer Wilds", "Loop, revisited", 10)
		sub.Genre = "Exploration"
		_, err = repo.Update(ctx, rev.ID, sub)
		require.NoError(t, err)

		arch, err := archiveRepo.GetByID(ctx, rev.ID)
		require.NoError(t, err)
		snap, err := domain.DecodeSnapshot(arch.ReviewJSON)
		require.NoError(t, err)
		assert.Equal(t, "Loop, revisited", snap.Title)
		assert.Equal(t, "Exploration", snap.Genre)
	})

	t.Run("UpdateUnknownReview", func(t *testing.T) {
		_, err := repo.Update(ctx, uuid.New(), newSubmission("Nope", "Nope", 1))
		assert.ErrorIs(t, err, domain.ErrReviewNotFound)
	})

	t.Run("DeleteKeepsArchive", func(t *testing.T) {
		rev, err := repo.CreateWithSnapshot(ctx, newSubmission("Tunic", "Fox game", 8))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, rev.ID))

		_, err = repo.GetByID(ctx, rev.ID)
		assert.ErrorIs(t, err, domain.ErrReviewNotFound)

		arch, err := archiveRepo.GetByID(ctx, rev.ID)
		require.NoError(t, err)
		assert.Equal(t, rev.ID, arch.ID)

		assert.ErrorIs(t, repo.Delete(ctx, rev.ID), domain.ErrReviewNotFound)
	})

	t.Run("List", func(t *testing.T) {
		reviews, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, reviews)
		for _, rev := range reviews {
			assert.NotEmpty(t, rev.GameName)
		}
	})
}
