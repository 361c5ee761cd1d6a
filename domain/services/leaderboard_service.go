package services

import (
	"context"
	"fmt"

	"shopkeeper/domain/entities"
	"shopkeeper/domain/interfaces"
)

// leaderboardService maintains the derived earnings accumulator
type leaderboardService struct {
	leaderboardRepo interfaces.LeaderboardRepository
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(leaderboardRepo interfaces.LeaderboardRepository) interfaces.LeaderboardService {
	return &leaderboardService{leaderboardRepo: leaderboardRepo}
}

// RecordClaim adds a claimed reward to the user's running totals
func (s *leaderboardService) RecordClaim(ctx context.Context, userID string, amount int64) error {
	entry, err := s.leaderboardRepo.GetByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get leaderboard entry: %w", err)
	}
	if entry == nil {
		entry = &entities.LeaderboardEntry{UserID: userID}
	}

	entry.TotalEarned += amount
	entry.DailyClaims++

	if err := s.leaderboardRepo.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("failed to upsert leaderboard entry: %w", err)
	}
	return nil
}

// Top returns up to limit entries ordered by total earned descending
func (s *leaderboardService) Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	entries, err := s.leaderboardRepo.GetTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return entries, nil
}
