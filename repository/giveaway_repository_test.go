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

func TestGiveawayRepository(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeRowStore()
	repo := repository.NewGiveawayRepository(store)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	giveaway := &entities.Giveaway{
		ID:           "g1",
		Title:        "Nitro Drop",
		Description:  "Monthly giveaway",
		Prize:        "1 month of Nitro",
		WinnersCount: 2,
		EndTime:      created.Add(48 * time.Hour),
		CreatorID:    "admin",
		CreatedAt:    created,
		Status:       entities.GiveawayStatusActive,
	}

	t.Run("round-trips through the row encoding", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, giveaway))

		stored, err := repo.GetByID(ctx, "g1")

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, giveaway, stored)
	})

	t.Run("update persists status and message IDs", func(t *testing.T) {
		giveaway.SetMessage("chan1", "msg1")
		giveaway.End()
		require.NoError(t, repo.Update(ctx, giveaway))

		stored, err := repo.GetByID(ctx, "g1")
		require.NoError(t, err)
		assert.True(t, stored.IsEnded())
		assert.Equal(t, "chan1", stored.ChannelID)
		assert.Equal(t, "msg1", stored.MessageID)
	})

	t.Run("unknown giveaway reads as nil", func(t *testing.T) {
		stored, err := repo.GetByID(ctx, "ghost")

		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("update of an unknown giveaway fails", func(t *testing.T) {
		err := repo.Update(ctx, &entities.Giveaway{ID: "ghost"})

		assert.Error(t, err)
	})
}

func TestGiveawayParticipantRepository(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeRowStore()
	repo := repository.NewGiveawayParticipantRepository(store)
	ctx := context.Background()

	joinedAt := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entities.GiveawayParticipant{GiveawayID: "g1", UserID: "u1", JoinedAt: joinedAt}))
	require.NoError(t, repo.Create(ctx, &entities.GiveawayParticipant{GiveawayID: "g2", UserID: "u1", JoinedAt: joinedAt}))
	require.NoError(t, repo.Create(ctx, &entities.GiveawayParticipant{GiveawayID: "g1", UserID: "u2", JoinedAt: joinedAt}))

	t.Run("exists matches the exact pair", func(t *testing.T) {
		joined, err := repo.Exists(ctx, "g1", "u1")
		require.NoError(t, err)
		assert.True(t, joined)

		joined, err = repo.Exists(ctx, "g2", "u2")
		require.NoError(t, err)
		assert.False(t, joined)
	})

	t.Run("get by giveaway returns entries in order", func(t *testing.T) {
		participants, err := repo.GetByGiveaway(ctx, "g1")

		require.NoError(t, err)
		require.Len(t, participants, 2)
		assert.Equal(t, "u1", participants[0].UserID)
		assert.Equal(t, "u2", participants[1].UserID)
	})
}

func TestGiveawayWinnerRepository_GetWinnersSince(t *testing.T) {
	t.Parallel()

	store := testutil.NewFakeRowStore()
	repo := repository.NewGiveawayWinnerRepository(store)
	ctx := context.Background()

	cutoff := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &entities.GiveawayWinner{GiveawayID: "g1", UserID: "old", WonAt: cutoff.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, &entities.GiveawayWinner{GiveawayID: "g2", UserID: "exact", WonAt: cutoff}))
	require.NoError(t, repo.Create(ctx, &entities.GiveawayWinner{GiveawayID: "g3", UserID: "recent", WonAt: cutoff.Add(time.Hour)}))

	winners, err := repo.GetWinnersSince(ctx, cutoff)

	require.NoError(t, err)
	require.Len(t, winners, 2)
	assert.Equal(t, "exact", winners[0].UserID)
	assert.Equal(t, "recent", winners[1].UserID)
}
