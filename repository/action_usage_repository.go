package repository

import (
	"context"
	"fmt"
	"time"

	"shopkeeper/domain/entities"
)

// ActionUsageRepository implements the ActionUsageRepository interface over
// a per-action timestamp table (DailyRewards, CoinflipUsage). Rows are
// [userID, lastUsed], one row per user.
type ActionUsageRepository struct {
	store RowStore
	table string
}

// NewActionUsageRepository creates a usage repository for one action table
func NewActionUsageRepository(store RowStore, table string) *ActionUsageRepository {
	return &ActionUsageRepository{store: store, table: table}
}

// GetByUser retrieves the user's last-used record, or nil if never used
func (r *ActionUsageRepository) GetByUser(ctx context.Context, userID string) (*entities.ActionUsage, error) {
	rows, err := r.store.Rows(ctx, r.table)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s table: %w", r.table, err)
	}

	for _, row := range rows {
		if row.Cell(0) == userID {
			return &entities.ActionUsage{UserID: userID, LastUsed: parseTime(row.Cell(1))}, nil
		}
	}
	return nil, nil
}

// Upsert updates the user's last-used timestamp, inserting if absent
func (r *ActionUsageRepository) Upsert(ctx context.Context, userID string, usedAt time.Time) error {
	rows, err := r.store.Rows(ctx, r.table)
	if err != nil {
		return fmt.Errorf("failed to read %s table: %w", r.table, err)
	}

	values := []string{userID, formatTime(usedAt)}
	for _, row := range rows {
		if row.Cell(0) == userID {
			if err := r.store.Update(ctx, r.table, row.Index, values); err != nil {
				return fmt.Errorf("failed to update %s row: %w", r.table, err)
			}
			return nil
		}
	}
	if err := r.store.Append(ctx, r.table, values); err != nil {
		return fmt.Errorf("failed to append %s row: %w", r.table, err)
	}
	return nil
}
