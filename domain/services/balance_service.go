package services

import (
	"context"
	"fmt"

	"shopkeeper/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// balanceService implements reads and writes of user balances
type balanceService struct {
	userRepo interfaces.UserRepository
}

// NewBalanceService creates a new balance service
func NewBalanceService(userRepo interfaces.UserRepository) interfaces.BalanceService {
	return &balanceService{userRepo: userRepo}
}

// GetBalance returns the stored balance, creating a zero row on first read.
// A backing-store failure is reported as 0 rather than blocking the user;
// the lossy default is logged.
func (s *balanceService) GetBalance(ctx context.Context, userID string) int64 {
	user, err := s.userRepo.GetOrCreate(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("userID", userID).Warn("balance read failed, defaulting to 0")
		return 0
	}
	return user.Balance
}

// Credit adds amount to the user's balance
func (s *balanceService) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	user, err := s.userRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}

	newBalance := user.CalculateNewBalance(amount)
	if err := s.userRepo.UpdateBalance(ctx, userID, newBalance); err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}
	return newBalance, nil
}

// Debit subtracts amount from the user's balance. A debit that would take
// the balance below zero is refused with ErrInsufficientFunds.
func (s *balanceService) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	user, err := s.userRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.CanAfford(amount) {
		return 0, fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, user.Balance, amount)
	}

	newBalance := user.CalculateNewBalance(-amount)
	if err := s.userRepo.UpdateBalance(ctx, userID, newBalance); err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}
	return newBalance, nil
}
