package repository

import (
	"context"
	"fmt"
	"sort"

	"shopkeeper/domain/entities"
)

// LeaderboardRepository implements the LeaderboardRepository interface over
// the Leaderboard table. Rows are [userID, totalEarned, dailyClaims].
type LeaderboardRepository struct {
	store RowStore
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(store RowStore) *LeaderboardRepository {
	return &LeaderboardRepository{store: store}
}

// GetByUser retrieves a user's leaderboard entry, or nil if absent
func (r *LeaderboardRepository) GetByUser(ctx context.Context, userID string) (*entities.LeaderboardEntry, error) {
	rows, err := r.store.Rows(ctx, TableLeaderboard)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard table: %w", err)
	}

	for _, row := range rows {
		if row.Cell(0) == userID {
			return parseLeaderboardRow(row), nil
		}
	}
	return nil, nil
}

// Upsert writes a user's leaderboard entry, inserting if absent
func (r *LeaderboardRepository) Upsert(ctx context.Context, entry *entities.LeaderboardEntry) error {
	rows, err := r.store.Rows(ctx, TableLeaderboard)
	if err != nil {
		return fmt.Errorf("failed to read leaderboard table: %w", err)
	}

	values := []string{entry.UserID, formatInt64(entry.TotalEarned), formatInt64(entry.DailyClaims)}
	for _, row := range rows {
		if row.Cell(0) == entry.UserID {
			if err := r.store.Update(ctx, TableLeaderboard, row.Index, values); err != nil {
				return fmt.Errorf("failed to update leaderboard row: %w", err)
			}
			return nil
		}
	}
	if err := r.store.Append(ctx, TableLeaderboard, values); err != nil {
		return fmt.Errorf("failed to append leaderboard row: %w", err)
	}
	return nil
}

// GetTop returns up to limit entries ordered by total earned descending.
// The table has no ordering of its own, so sorting happens here.
func (r *LeaderboardRepository) GetTop(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	rows, err := r.store.Rows(ctx, TableLeaderboard)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard table: %w", err)
	}

	entries := make([]*entities.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, parseLeaderboardRow(row))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalEarned > entries[j].TotalEarned
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func parseLeaderboardRow(row Row) *entities.LeaderboardEntry {
	totalEarned, _ := parseInt64(row.Cell(1))
	dailyClaims, _ := parseInt64(row.Cell(2))
	return &entities.LeaderboardEntry{
		UserID:      row.Cell(0),
		TotalEarned: totalEarned,
		DailyClaims: dailyClaims,
	}
}
