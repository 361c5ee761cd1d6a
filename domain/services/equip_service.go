package services

import (
	"context"
	"fmt"

	"shopkeeper/domain/entities"
	"shopkeeper/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// equipService keeps the external role gateway and the equipped-set registry
// in sync. Failures always re-synchronize the gateway to whatever the
// registry records, preferring to leave the user with a role rather than
// without one.
type equipService struct {
	purchaseRepo interfaces.PurchaseRepository
	equippedRepo interfaces.EquippedRoleRepository
	gateway      interfaces.RoleGateway
}

// NewEquipService creates a new equip service
func NewEquipService(
	purchaseRepo interfaces.PurchaseRepository,
	equippedRepo interfaces.EquippedRoleRepository,
	gateway interfaces.RoleGateway,
) interfaces.EquipService {
	return &equipService{
		purchaseRepo: purchaseRepo,
		equippedRepo: equippedRepo,
		gateway:      gateway,
	}
}

// Equip applies each requested role. Roles already equipped are reported
// separately and not re-processed. A gateway grant that succeeds but whose
// registry append fails is compensated by a best-effort revoke.
func (s *equipService) Equip(ctx context.Context, userID string, roleIDs []string) (*interfaces.EquipResult, error) {
	ownedSet, err := s.ownedSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	equippedSet, err := s.equippedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &interfaces.EquipResult{}
	for _, roleID := range roleIDs {
		if equippedSet[roleID] {
			result.AlreadyEquipped = append(result.AlreadyEquipped, roleID)
			continue
		}
		if !ownedSet[roleID] {
			log.WithFields(log.Fields{"userID": userID, "roleID": roleID}).
				Warn("equip requested for unowned role")
			result.Failed = append(result.Failed, roleID)
			continue
		}

		if err := s.gateway.Grant(ctx, userID, roleID); err != nil {
			log.WithError(err).WithFields(log.Fields{"userID": userID, "roleID": roleID}).
				Error("role grant failed")
			result.Failed = append(result.Failed, roleID)
			continue
		}

		equipped := &entities.EquippedRole{UserID: userID, RoleID: roleID}
		if err := s.equippedRepo.Create(ctx, equipped); err != nil {
			// Granted but not recorded: take the role back so gateway and
			// registry agree
			if revokeErr := s.gateway.Revoke(ctx, userID, roleID); revokeErr != nil {
				log.WithError(revokeErr).WithFields(log.Fields{"userID": userID, "roleID": roleID}).
					Error("compensating revoke after failed equip record also failed")
			}
			result.Failed = append(result.Failed, roleID)
			continue
		}

		result.Equipped = append(result.Equipped, roleID)
	}

	return result, nil
}

// Unequip removes the selected roles. A registry delete that fails after the
// gateway revoke succeeded is compensated by re-granting the role.
func (s *equipService) Unequip(ctx context.Context, userID string, roleIDs []string) (*interfaces.UnequipResult, error) {
	equippedSet, err := s.equippedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &interfaces.UnequipResult{}
	for _, roleID := range roleIDs {
		if !equippedSet[roleID] {
			result.NotEquipped = append(result.NotEquipped, roleID)
			continue
		}

		if err := s.gateway.Revoke(ctx, userID, roleID); err != nil {
			log.WithError(err).WithFields(log.Fields{"userID": userID, "roleID": roleID}).
				Error("role revoke failed")
			result.Failed = append(result.Failed, roleID)
			continue
		}

		if err := s.equippedRepo.Delete(ctx, userID, roleID); err != nil {
			// Revoked but still recorded: give the role back
			if grantErr := s.gateway.Grant(ctx, userID, roleID); grantErr != nil {
				log.WithError(grantErr).WithFields(log.Fields{"userID": userID, "roleID": roleID}).
					Error("compensating grant after failed unequip record also failed")
			}
			result.Failed = append(result.Failed, roleID)
			continue
		}

		result.Unequipped = append(result.Unequipped, roleID)
	}

	return result, nil
}

// UnequipAll removes every equipped role. The registry is only cleared once
// every gateway revoke has succeeded; a single refused revoke aborts before
// any row is deleted.
func (s *equipService) UnequipAll(ctx context.Context, userID string) (int, error) {
	equipped, err := s.equippedRepo.GetByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get equipped roles: %w", err)
	}
	if len(equipped) == 0 {
		return 0, nil
	}

	for _, role := range equipped {
		if err := s.gateway.Revoke(ctx, userID, role.RoleID); err != nil {
			return 0, fmt.Errorf("%w: role %s: %v", ErrRevokeRefused, role.RoleID, err)
		}
	}

	if err := s.equippedRepo.DeleteAllForUser(ctx, userID); err != nil {
		// Discord-side removal already happened; the registry still lists
		// the roles. Accepted inconsistency, surfaced in the logs.
		log.WithError(err).WithField("userID", userID).
			Error("failed to clear equipped-set after revoking all roles")
		return 0, fmt.Errorf("failed to clear equipped roles: %w", err)
	}

	return len(equipped), nil
}

// OwnedRoleIDs returns the role IDs the user has purchased
func (s *equipService) OwnedRoleIDs(ctx context.Context, userID string) ([]string, error) {
	purchases, err := s.purchaseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchases: %w", err)
	}
	ids := make([]string, 0, len(purchases))
	seen := make(map[string]bool)
	for _, p := range purchases {
		if seen[p.RoleID] {
			continue
		}
		seen[p.RoleID] = true
		ids = append(ids, p.RoleID)
	}
	return ids, nil
}

// EquippedRoleIDs returns the role IDs the user currently has equipped
func (s *equipService) EquippedRoleIDs(ctx context.Context, userID string) ([]string, error) {
	equipped, err := s.equippedRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipped roles: %w", err)
	}
	ids := make([]string, 0, len(equipped))
	for _, e := range equipped {
		ids = append(ids, e.RoleID)
	}
	return ids, nil
}

func (s *equipService) ownedSet(ctx context.Context, userID string) (map[string]bool, error) {
	purchases, err := s.purchaseRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchases: %w", err)
	}
	set := make(map[string]bool, len(purchases))
	for _, p := range purchases {
		set[p.RoleID] = true
	}
	return set, nil
}

func (s *equipService) equippedSet(ctx context.Context, userID string) (map[string]bool, error) {
	equipped, err := s.equippedRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipped roles: %w", err)
	}
	set := make(map[string]bool, len(equipped))
	for _, e := range equipped {
		set[e.RoleID] = true
	}
	return set, nil
}
