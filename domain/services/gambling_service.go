package services

import (
	"context"
	"fmt"
	"math/rand"

	"shopkeeper/domain/interfaces"
	"shopkeeper/domain/utils"
)

// gamblingService resolves the daily coinflip. Outcome randomness has no
// fairness audit trail, unlike giveaway draws.
type gamblingService struct {
	balance  interfaces.BalanceService
	cooldown interfaces.CooldownService
	locker   *utils.UserLocker
	flip     func() bool
}

// NewGamblingService creates a new coinflip service
func NewGamblingService(
	balance interfaces.BalanceService,
	cooldown interfaces.CooldownService,
	locker *utils.UserLocker,
) interfaces.GamblingService {
	return &gamblingService{
		balance:  balance,
		cooldown: cooldown,
		locker:   locker,
		flip:     func() bool { return rand.Intn(2) == 0 },
	}
}

// Coinflip wagers betAmount on a 50/50 outcome. The daily attempt is
// consumed before the flip resolves, so a crash mid-resolution still costs
// the attempt and can never mint coins. The wager is settled through the
// ledger: a win credits the bet, a loss debits it.
func (s *gamblingService) Coinflip(ctx context.Context, userID string, betAmount int64) (*interfaces.FlipResult, error) {
	if betAmount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBet, betAmount)
	}

	unlock := s.locker.Lock(userID)
	defer unlock()

	if !s.cooldown.CanAct(ctx, userID) {
		return nil, &CooldownError{NextEligible: s.cooldown.NextEligibleTime(ctx, userID)}
	}

	current := s.balance.GetBalance(ctx, userID)
	if current < betAmount {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, current, betAmount)
	}

	if err := s.cooldown.RecordUse(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to record gamble usage: %w", err)
	}

	won := s.flip()
	var newBalance int64
	var err error
	if won {
		newBalance, err = s.balance.Credit(ctx, userID, betAmount)
	} else {
		newBalance, err = s.balance.Debit(ctx, userID, betAmount)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to settle flip: %w", err)
	}

	return &interfaces.FlipResult{
		Won:        won,
		BetAmount:  betAmount,
		NewBalance: newBalance,
	}, nil
}
