package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopkeeper/domain/testhelpers"
	"shopkeeper/domain/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDailyFixture() (*testhelpers.MockBalanceService, *testhelpers.MockCooldownService, *testhelpers.MockLeaderboardService, *dailyService) {
	balance := new(testhelpers.MockBalanceService)
	cooldown := new(testhelpers.MockCooldownService)
	leaderboard := new(testhelpers.MockLeaderboardService)
	svc := NewDailyService(balance, cooldown, leaderboard, utils.NewUserLocker()).(*dailyService)
	return balance, cooldown, leaderboard, svc
}

func TestDailyService_Claim_Success(t *testing.T) {
	t.Parallel()

	balance, cooldown, leaderboard, svc := newDailyFixture()
	nextEligible := time.Now().Add(24 * time.Hour)

	cooldown.On("CanAct", mock.Anything, "u1").Return(true)
	balance.On("Credit", mock.Anything, "u1", DailyRewardAmount).Return(int64(50), nil)
	cooldown.On("RecordUse", mock.Anything, "u1").Return(nil)
	leaderboard.On("RecordClaim", mock.Anything, "u1", DailyRewardAmount).Return(nil)
	cooldown.On("NextEligibleTime", mock.Anything, "u1").Return(nextEligible)

	result, err := svc.Claim(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, DailyRewardAmount, result.Amount)
	assert.Equal(t, int64(50), result.NewBalance)
	assert.Equal(t, nextEligible, result.NextEligible)
	balance.AssertExpectations(t)
	leaderboard.AssertExpectations(t)
}

func TestDailyService_Claim_OnCooldown(t *testing.T) {
	t.Parallel()

	balance, cooldown, _, svc := newDailyFixture()
	nextEligible := time.Now().Add(3 * time.Hour)

	cooldown.On("CanAct", mock.Anything, "u1").Return(false)
	cooldown.On("NextEligibleTime", mock.Anything, "u1").Return(nextEligible)

	result, err := svc.Claim(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrOnCooldown)
	assert.Nil(t, result)

	var cdErr *CooldownError
	require.ErrorAs(t, err, &cdErr)
	assert.Equal(t, nextEligible, cdErr.NextEligible)
	balance.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyService_Claim_RecordFailureRevertsCredit(t *testing.T) {
	t.Parallel()

	balance, cooldown, leaderboard, svc := newDailyFixture()

	cooldown.On("CanAct", mock.Anything, "u1").Return(true)
	balance.On("Credit", mock.Anything, "u1", DailyRewardAmount).Return(int64(50), nil)
	cooldown.On("RecordUse", mock.Anything, "u1").Return(errors.New("upsert failed"))
	balance.On("Debit", mock.Anything, "u1", DailyRewardAmount).Return(int64(40), nil)

	result, err := svc.Claim(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrClaimNotRecorded)
	assert.Nil(t, result)
	// The credited reward must be debited back
	balance.AssertCalled(t, "Debit", mock.Anything, "u1", DailyRewardAmount)
	leaderboard.AssertNotCalled(t, "RecordClaim", mock.Anything, mock.Anything, mock.Anything)
}

func TestDailyService_Claim_LeaderboardFailureIsBestEffort(t *testing.T) {
	t.Parallel()

	balance, cooldown, leaderboard, svc := newDailyFixture()

	cooldown.On("CanAct", mock.Anything, "u1").Return(true)
	balance.On("Credit", mock.Anything, "u1", DailyRewardAmount).Return(DailyRewardAmount, nil)
	cooldown.On("RecordUse", mock.Anything, "u1").Return(nil)
	leaderboard.On("RecordClaim", mock.Anything, "u1", DailyRewardAmount).Return(errors.New("upsert failed"))
	cooldown.On("NextEligibleTime", mock.Anything, "u1").Return(time.Now())

	result, err := svc.Claim(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, DailyRewardAmount, result.NewBalance)
}

func TestDailyService_Claim_CreditFailure(t *testing.T) {
	t.Parallel()

	balance, cooldown, _, svc := newDailyFixture()

	cooldown.On("CanAct", mock.Anything, "u1").Return(true)
	balance.On("Credit", mock.Anything, "u1", DailyRewardAmount).Return(int64(0), errors.New("store unavailable"))

	result, err := svc.Claim(context.Background(), "u1")

	assert.Error(t, err)
	assert.Nil(t, result)
	// Credit never landed, so the attempt must not be consumed
	cooldown.AssertNotCalled(t, "RecordUse", mock.Anything, mock.Anything)
	balance.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything)
}
