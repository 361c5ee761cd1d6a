package services

import (
	"errors"
	"fmt"
	"time"
)

// Validation failures: no mutation has happened, nothing to compensate.
var (
	ErrItemUnavailable   = errors.New("item is not available in the shop")
	ErrAlreadyOwned      = errors.New("role is already owned")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidBet        = errors.New("bet must be a positive amount")
	ErrOnCooldown        = errors.New("action is still on cooldown")
	ErrGiveawayNotFound  = errors.New("giveaway not found")
	ErrAlreadyJoined     = errors.New("already entered this giveaway")
	ErrGiveawayEnded     = errors.New("giveaway has already ended")
	ErrGiveawayNotEnded  = errors.New("giveaway has not ended yet")
)

// Partial-commit failures: a compensating action has already been attempted
// by the time these surface.
var (
	ErrBalanceUpdateFailed  = errors.New("balance update failed")
	ErrPurchaseRecordFailed = errors.New("purchase could not be recorded, balance refunded")
	ErrClaimNotRecorded     = errors.New("claim could not be recorded, reward reverted")
	ErrRevokeRefused        = errors.New("role removal was refused by the platform")
)

// CooldownError carries the time at which the user becomes eligible again.
// It matches ErrOnCooldown under errors.Is.
type CooldownError struct {
	NextEligible time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("on cooldown until %s", e.NextEligible.Format(time.RFC3339))
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrOnCooldown
}
