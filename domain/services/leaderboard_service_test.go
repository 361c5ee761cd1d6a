package services

import (
	"context"
	"testing"

	"shopkeeper/domain/entities"
	"shopkeeper/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardService_RecordClaim(t *testing.T) {
	t.Parallel()

	t.Run("accumulates onto an existing entry", func(t *testing.T) {
		t.Parallel()

		repo := new(testhelpers.MockLeaderboardRepository)
		repo.On("GetByUser", mock.Anything, "u1").Return(&entities.LeaderboardEntry{
			UserID:      "u1",
			TotalEarned: 50,
			DailyClaims: 5,
		}, nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(e *entities.LeaderboardEntry) bool {
			return e.UserID == "u1" && e.TotalEarned == 60 && e.DailyClaims == 6
		})).Return(nil)
		svc := NewLeaderboardService(repo)

		err := svc.RecordClaim(context.Background(), "u1", 10)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("starts a fresh entry for a first claim", func(t *testing.T) {
		t.Parallel()

		repo := new(testhelpers.MockLeaderboardRepository)
		repo.On("GetByUser", mock.Anything, "u1").Return(nil, nil)
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(e *entities.LeaderboardEntry) bool {
			return e.UserID == "u1" && e.TotalEarned == 10 && e.DailyClaims == 1
		})).Return(nil)
		svc := NewLeaderboardService(repo)

		err := svc.RecordClaim(context.Background(), "u1", 10)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestLeaderboardService_Top(t *testing.T) {
	t.Parallel()

	repo := new(testhelpers.MockLeaderboardRepository)
	repo.On("GetTop", mock.Anything, 10).Return([]*entities.LeaderboardEntry{
		{UserID: "u1", TotalEarned: 300, DailyClaims: 30},
		{UserID: "u2", TotalEarned: 120, DailyClaims: 12},
	}, nil)
	svc := NewLeaderboardService(repo)

	entries, err := svc.Top(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "u1", entries[0].UserID)
}
