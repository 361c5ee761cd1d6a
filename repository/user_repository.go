package repository

import (
	"context"
	"fmt"

	"shopkeeper/domain/entities"

	log "github.com/sirupsen/logrus"
)

// UserRepository implements the UserRepository interface over the Currency
// table. Rows are [userID, balance].
type UserRepository struct {
	store RowStore
}

// NewUserRepository creates a new user repository
func NewUserRepository(store RowStore) *UserRepository {
	return &UserRepository{store: store}
}

// GetOrCreate retrieves a user's balance row, appending a zero-balance row
// on first sight. A balance cell that fails to parse reads as 0.
func (r *UserRepository) GetOrCreate(ctx context.Context, userID string) (*entities.User, error) {
	rows, err := r.store.Rows(ctx, TableCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to read currency table: %w", err)
	}

	for _, row := range rows {
		if row.Cell(0) != userID {
			continue
		}
		balance, err := parseInt64(row.Cell(1))
		if err != nil {
			log.WithFields(log.Fields{
				"userID": userID,
				"cell":   row.Cell(1),
			}).Warn("unparseable balance cell, reading as 0")
			balance = 0
		}
		return &entities.User{UserID: userID, Balance: balance}, nil
	}

	if err := r.store.Append(ctx, TableCurrency, []string{userID, "0"}); err != nil {
		return nil, fmt.Errorf("failed to create balance row for user %s: %w", userID, err)
	}
	return &entities.User{UserID: userID, Balance: 0}, nil
}

// UpdateBalance overwrites the user's stored balance. It refuses to create
// a missing row so a lost read cannot silently mint an account.
func (r *UserRepository) UpdateBalance(ctx context.Context, userID string, newBalance int64) error {
	rows, err := r.store.Rows(ctx, TableCurrency)
	if err != nil {
		return fmt.Errorf("failed to read currency table: %w", err)
	}

	for _, row := range rows {
		if row.Cell(0) == userID {
			if err := r.store.Update(ctx, TableCurrency, row.Index, []string{userID, formatInt64(newBalance)}); err != nil {
				return fmt.Errorf("failed to update balance for user %s: %w", userID, err)
			}
			return nil
		}
	}
	return fmt.Errorf("no balance row for user %s", userID)
}
