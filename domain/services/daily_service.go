package services

import (
	"context"
	"fmt"

	"shopkeeper/domain/interfaces"
	"shopkeeper/domain/utils"

	log "github.com/sirupsen/logrus"
)

// DailyRewardAmount is the fixed credit for each daily claim
const DailyRewardAmount int64 = 10

// dailyService hands out the time-gated daily reward
type dailyService struct {
	balance     interfaces.BalanceService
	cooldown    interfaces.CooldownService
	leaderboard interfaces.LeaderboardService
	locker      *utils.UserLocker
}

// NewDailyService creates a new daily reward service
func NewDailyService(
	balance interfaces.BalanceService,
	cooldown interfaces.CooldownService,
	leaderboard interfaces.LeaderboardService,
	locker *utils.UserLocker,
) interfaces.DailyService {
	return &dailyService{
		balance:     balance,
		cooldown:    cooldown,
		leaderboard: leaderboard,
		locker:      locker,
	}
}

// Claim credits the daily reward through the ledger, then consumes the
// daily attempt. If the attempt cannot be recorded the credit is debited
// back so a retry cannot double-pay. The leaderboard accumulator is a
// best-effort side call.
func (s *dailyService) Claim(ctx context.Context, userID string) (*interfaces.ClaimResult, error) {
	unlock := s.locker.Lock(userID)
	defer unlock()

	if !s.cooldown.CanAct(ctx, userID) {
		return nil, &CooldownError{NextEligible: s.cooldown.NextEligibleTime(ctx, userID)}
	}

	newBalance, err := s.balance.Credit(ctx, userID, DailyRewardAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to credit daily reward: %w", err)
	}

	if err := s.cooldown.RecordUse(ctx, userID); err != nil {
		// The user lock is still held, so debiting the reward restores
		// the pre-claim balance.
		if _, revertErr := s.balance.Debit(ctx, userID, DailyRewardAmount); revertErr != nil {
			log.WithError(revertErr).WithFields(log.Fields{
				"userID": userID,
				"amount": DailyRewardAmount,
			}).Error("revert after failed claim record also failed, manual correction required")
		}
		return nil, fmt.Errorf("%w: %v", ErrClaimNotRecorded, err)
	}

	if err := s.leaderboard.RecordClaim(ctx, userID, DailyRewardAmount); err != nil {
		log.WithError(err).WithField("userID", userID).
			Warn("failed to update leaderboard accumulator")
	}

	return &interfaces.ClaimResult{
		Amount:       DailyRewardAmount,
		NewBalance:   newBalance,
		NextEligible: s.cooldown.NextEligibleTime(ctx, userID),
	}, nil
}
