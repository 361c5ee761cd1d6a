package repository_test

import (
	"context"
	"testing"
	"time"

	"shopkeeper/domain/entities"
	"shopkeeper/repository"
	"shopkeeper/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseRepository(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeRowStore()
	repo := repository.NewPurchaseRepository(store)
	ctx := context.Background()

	purchasedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entities.Purchase{UserID: "u1", RoleID: "r1", PurchasedAt: purchasedAt}))
	require.NoError(t, repo.Create(ctx, &entities.Purchase{UserID: "u2", RoleID: "r1", PurchasedAt: purchasedAt}))
	require.NoError(t, repo.Create(ctx, &entities.Purchase{UserID: "u1", RoleID: "r2", PurchasedAt: purchasedAt}))

	t.Run("exists matches the exact pair", func(t *testing.T) {
		owned, err := repo.Exists(ctx, "u1", "r1")
		require.NoError(t, err)
		assert.True(t, owned)

		owned, err = repo.Exists(ctx, "u2", "r2")
		require.NoError(t, err)
		assert.False(t, owned)
	})

	t.Run("get by user returns only that user's purchases", func(t *testing.T) {
		purchases, err := repo.GetByUser(ctx, "u1")

		require.NoError(t, err)
		require.Len(t, purchases, 2)
		assert.Equal(t, "r1", purchases[0].RoleID)
		assert.Equal(t, "r2", purchases[1].RoleID)
		assert.Equal(t, purchasedAt, purchases[0].PurchasedAt)
	})
}

func TestEquippedRoleRepository(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeRowStore()
	repo := repository.NewEquippedRoleRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.EquippedRole{UserID: "u1", RoleID: "r1"}))
	require.NoError(t, repo.Create(ctx, &entities.EquippedRole{UserID: "u2", RoleID: "r1"}))
	require.NoError(t, repo.Create(ctx, &entities.EquippedRole{UserID: "u1", RoleID: "r2"}))

	t.Run("get by user", func(t *testing.T) {
		equipped, err := repo.GetByUser(ctx, "u1")

		require.NoError(t, err)
		require.Len(t, equipped, 2)
		assert.Equal(t, "r1", equipped[0].RoleID)
		assert.Equal(t, "r2", equipped[1].RoleID)
	})

	t.Run("delete removes a single row and missing rows are a no-op", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "u1", "r1"))
		require.NoError(t, repo.Delete(ctx, "u1", "r1"))

		equipped, err := repo.GetByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, equipped, 1)
		assert.Equal(t, "r2", equipped[0].RoleID)
	})

	t.Run("delete all clears only that user", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &entities.EquippedRole{UserID: "u1", RoleID: "r3"}))
		require.NoError(t, repo.DeleteAllForUser(ctx, "u1"))

		equipped, err := repo.GetByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, equipped)

		others, err := repo.GetByUser(ctx, "u2")
		require.NoError(t, err)
		assert.Len(t, others, 1)
	})
}
