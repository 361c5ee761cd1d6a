package repository

import (
	"context"
	"fmt"

	"shopkeeper/domain/entities"
)

// PurchaseRepository implements the PurchaseRepository interface over the
// UserRoles table. Rows are [userID, roleID, purchasedAt]; the table is
// append-only, ownership is never revoked.
type PurchaseRepository struct {
	store RowStore
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(store RowStore) *PurchaseRepository {
	return &PurchaseRepository{store: store}
}

// Create appends a new purchase record
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entities.Purchase) error {
	values := []string{purchase.UserID, purchase.RoleID, formatTime(purchase.PurchasedAt)}
	if err := r.store.Append(ctx, TableUserRoles, values); err != nil {
		return fmt.Errorf("failed to append purchase record: %w", err)
	}
	return nil
}

// Exists reports whether the user already owns the role
func (r *PurchaseRepository) Exists(ctx context.Context, userID, roleID string) (bool, error) {
	rows, err := r.store.Rows(ctx, TableUserRoles)
	if err != nil {
		return false, fmt.Errorf("failed to read user roles table: %w", err)
	}

	for _, row := range rows {
		if row.Cell(0) == userID && row.Cell(1) == roleID {
			return true, nil
		}
	}
	return false, nil
}

// GetByUser returns all purchases made by a user in sheet order
func (r *PurchaseRepository) GetByUser(ctx context.Context, userID string) ([]*entities.Purchase, error) {
	rows, err := r.store.Rows(ctx, TableUserRoles)
	if err != nil {
		return nil, fmt.Errorf("failed to read user roles table: %w", err)
	}

	var purchases []*entities.Purchase
	for _, row := range rows {
		if row.Cell(0) != userID {
			continue
		}
		purchases = append(purchases, &entities.Purchase{
			UserID:      userID,
			RoleID:      row.Cell(1),
			PurchasedAt: parseTime(row.Cell(2)),
		})
	}
	return purchases, nil
}
