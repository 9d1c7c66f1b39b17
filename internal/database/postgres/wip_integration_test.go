package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpeder/gamevault/internal/domain"
)

func TestWipRepository_Integration(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewWipRepository(pool)
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		wip := &domain.WipReview{GameName: "Silksong", Remarks: "halfway through act 2"}
		require.NoError(t, repo.Create(ctx, wip))
		assert.NotZero(t, wip.ID)
		assert.False(t, wip.CreatedAt.IsZero())

		got, err := repo.GetByID(ctx, wip.ID)
		require.NoError(t, err)
		assert.Equal(t, "Silksong", got.GameName)
		assert.Equal(t, "halfway through act 2", got.Remarks)
	})

	t.Run("Update", func(t *testing.T) {
		wip := &domain.WipReview{GameName: "Blue Prince", Remarks: "room 12"}
		require.NoError(t, repo.Create(ctx, wip))

		wip.Remarks = "reached the antechamber"
		require.NoError(t, repo.Update(ctx, wip))

		got, err := repo.GetByID(ctx, wip.ID)
		require.NoError(t, err)
		assert.Equal(t, "reached the antechamber", got.Remarks)
	})

	t.Run("UpdateUnknown", func(t *testing.T) {
		wip := &domain.WipReview{ID: 999999, GameName: "Ghost"}
		assert.ErrorIs(t, repo.Update(ctx, wip), domain.ErrWipNotFound)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		wips, err := repo.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, wips)
		for i := 1; i < len(wips); i++ {
			assert.False(t, wips[i-1].UpdatedAt.Before(wips[i].UpdatedAt))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		wip := &domain.WipReview{GameName: "Throwaway"}
		require.NoError(t, repo.Create(ctx, wip))

		require.NoError(t, repo.Delete(ctx, wip.ID))
		_, err := repo.GetByID(ctx, wip.ID)
		assert.ErrorIs(t, err, domain.ErrWipNotFound)

		assert.ErrorIs(t, repo.Delete(ctx, wip.ID), domain.ErrWipNotFound)
	})
}
