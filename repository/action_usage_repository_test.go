package repository_test

import (
	"context"
	"testing"
	"time"

	"shopkeeper/repository"
	"shopkeeper/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionUsageRepository(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeRowStore()
	repo := repository.NewActionUsageRepository(store, repository.TableDailyRewards)
	ctx := context.Background()

	t.Run("unknown user reads as never used", func(t *testing.T) {
		usage, err := repo.GetByUser(ctx, "u1")

		require.NoError(t, err)
		assert.Nil(t, usage)
	})

	t.Run("upsert inserts then updates in place", func(t *testing.T) {
		first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		second := first.Add(24 * time.Hour)

		require.NoError(t, repo.Upsert(ctx, "u1", first))
		require.NoError(t, repo.Upsert(ctx, "u1", second))

		usage, err := repo.GetByUser(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, usage)
		assert.Equal(t, second, usage.LastUsed)
		assert.Len(t, store.Snapshot(repository.TableDailyRewards), 1)
	})

	t.Run("tables are independent per action", func(t *testing.T) {
		coinflipRepo := repository.NewActionUsageRepository(store, repository.TableCoinflipUsage)

		usage, err := coinflipRepo.GetByUser(ctx, "u1")

		require.NoError(t, err)
		assert.Nil(t, usage, "a daily claim must not consume the coinflip attempt")
	})

	t.Run("corrupt timestamp reads as the zero time", func(t *testing.T) {
		store.Seed(repository.TableCoinflipUsage, []string{"u2", "yesterday-ish"})
		coinflipRepo := repository.NewActionUsageRepository(store, repository.TableCoinflipUsage)

		usage, err := coinflipRepo.GetByUser(ctx, "u2")

		require.NoError(t, err)
		require.NotNil(t, usage)
		assert.True(t, usage.LastUsed.IsZero())
	})
}

func TestLeaderboardRepository(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeRowStore()
	store.Seed(repository.TableLeaderboard,
		[]string{"u1", "120", "12"},
		[]string{"u2", "300", "30"},
		[]string{"u3", "40", "4"},
	)
	repo := repository.NewLeaderboardRepository(store)
	ctx := context.Background()

	t.Run("get top sorts by total earned descending", func(t *testing.T) {
		entries, err := repo.GetTop(ctx, 2)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "u2", entries[0].UserID)
		assert.Equal(t, int64(300), entries[0].TotalEarned)
		assert.Equal(t, "u1", entries[1].UserID)
	})

	t.Run("get by user", func(t *testing.T) {
		entry, err := repo.GetByUser(ctx, "u3")

		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, int64(40), entry.TotalEarned)
		assert.Equal(t, int64(4), entry.DailyClaims)

		missing, err := repo.GetByUser(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("upsert updates in place and inserts new users", func(t *testing.T) {
		entry, err := repo.GetByUser(ctx, "u3")
		require.NoError(t, err)
		entry.TotalEarned += 10
		entry.DailyClaims++
		require.NoError(t, repo.Upsert(ctx, entry))

		fresh, err := repo.GetByUser(ctx, "u3")
		require.NoError(t, err)
		assert.Equal(t, int64(50), fresh.TotalEarned)
		assert.Len(t, store.Snapshot(repository.TableLeaderboard), 3)
	})
}
