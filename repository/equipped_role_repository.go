package repository

import (
	"context"
	"fmt"

	"shopkeeper/domain/entities"
)

// EquippedRoleRepository implements the EquippedRoleRepository interface
// over the EquippedRoles table. Rows are [userID, roleID]; unlike the
// purchase log this table is mutable.
type EquippedRoleRepository struct {
	store RowStore
}

// NewEquippedRoleRepository creates a new equipped role repository
func NewEquippedRoleRepository(store RowStore) *EquippedRoleRepository {
	return &EquippedRoleRepository{store: store}
}

// GetByUser returns the user's currently equipped roles
func (r *EquippedRoleRepository) GetByUser(ctx context.Context, userID string) ([]*entities.EquippedRole, error) {
	rows, err := r.store.Rows(ctx, TableEquippedRoles)
	if err != nil {
		return nil, fmt.Errorf("failed to read equipped roles table: %w", err)
	}

	var equipped []*entities.EquippedRole
	for _, row := range rows {
		if row.Cell(0) == userID {
			equipped = append(equipped, &entities.EquippedRole{UserID: userID, RoleID: row.Cell(1)})
		}
	}
	return equipped, nil
}

// Create appends an equipped-set row
func (r *EquippedRoleRepository) Create(ctx context.Context, equipped *entities.EquippedRole) error {
	if err := r.store.Append(ctx, TableEquippedRoles, []string{equipped.UserID, equipped.RoleID}); err != nil {
		return fmt.Errorf("failed to append equipped role: %w", err)
	}
	return nil
}

// Delete removes a single equipped-set row. Missing rows are a no-op so a
// retried unequip stays idempotent.
func (r *EquippedRoleRepository) Delete(ctx context.Context, userID, roleID string) error {
	rows, err := r.store.Rows(ctx, TableEquippedRoles)
	if err != nil {
		return fmt.Errorf("failed to read equipped roles table: %w", err)
	}

	for _, row := range rows {
		if row.Cell(0) == userID && row.Cell(1) == roleID {
			if err := r.store.Delete(ctx, TableEquippedRoles, row.Index); err != nil {
				return fmt.Errorf("failed to delete equipped role row: %w", err)
			}
			return nil
		}
	}
	return nil
}

// DeleteAllForUser removes every equipped-set row for the user. Rows are
// deleted bottom-up because each deletion shifts later indices.
func (r *EquippedRoleRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	rows, err := r.store.Rows(ctx, TableEquippedRoles)
	if err != nil {
		return fmt.Errorf("failed to read equipped roles table: %w", err)
	}

	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].Cell(0) != userID {
			continue
		}
		if err := r.store.Delete(ctx, TableEquippedRoles, rows[i].Index); err != nil {
			return fmt.Errorf("failed to delete equipped role row: %w", err)
		}
	}
	return nil
}
