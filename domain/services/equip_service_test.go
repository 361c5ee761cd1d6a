package services

import (
	"context"
	"errors"
	"testing"

	"shopkeeper/domain/entities"
	"shopkeeper/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEquipFixture() (*testhelpers.MockPurchaseRepository, *testhelpers.MockEquippedRoleRepository, *testhelpers.MockRoleGateway, *equipService) {
	purchaseRepo := new(testhelpers.MockPurchaseRepository)
	equippedRepo := new(testhelpers.MockEquippedRoleRepository)
	gateway := new(testhelpers.MockRoleGateway)
	svc := NewEquipService(purchaseRepo, equippedRepo, gateway).(*equipService)
	return purchaseRepo, equippedRepo, gateway, svc
}

func ownedRoles(userID string, roleIDs ...string) []*entities.Purchase {
	purchases := make([]*entities.Purchase, 0, len(roleIDs))
	for _, id := range roleIDs {
		purchases = append(purchases, &entities.Purchase{UserID: userID, RoleID: id})
	}
	return purchases
}

func equippedRoles(userID string, roleIDs ...string) []*entities.EquippedRole {
	equipped := make([]*entities.EquippedRole, 0, len(roleIDs))
	for _, id := range roleIDs {
		equipped = append(equipped, &entities.EquippedRole{UserID: userID, RoleID: id})
	}
	return equipped
}

func TestEquipService_Equip_Buckets(t *testing.T) {
	t.Parallel()

	purchaseRepo, equippedRepo, gateway, svc := newEquipFixture()

	purchaseRepo.On("GetByUser", mock.Anything, "u1").Return(ownedRoles("u1", "r1", "r2", "r3"), nil)
	equippedRepo.On("GetByUser", mock.Anything, "u1").Return(equippedRoles("u1", "r2"), nil)

	gateway.On("Grant", mock.Anything, "u1", "r1").Return(nil)
	equippedRepo.On("Create", mock.Anything, &entities.EquippedRole{UserID: "u1", RoleID: "r1"}).Return(nil)
	gateway.On("Grant", mock.Anything, "u1", "r3").Return(errors.New("missing permissions"))

	result, err := svc.Equip(context.Background(), "u1", []string{"r1", "r2", "r3"})

	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, result.Equipped)
	assert.Equal(t, []string{"r2"}, result.AlreadyEquipped)
	assert.Equal(t, []string{"r3"}, result.Failed)
	// An already-equipped role is a no-op on the gateway
	gateway.AssertNotCalled(t, "Grant", mock.Anything, "u1", "r2")
	equippedRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestEquipService_Equip_RecordFailureRevokesGrant(t *testing.T) {
	t.Parallel()

	purchaseRepo, equippedRepo, gateway, svc := newEquipFixture()

	purchaseRepo.On("GetByUser", mock.Anything, "u1").Return(ownedRoles("u1", "r1"), nil)
	equippedRepo.On("GetByUser", mock.Anything, "u1").Return([]*entities.EquippedRole{}, nil)
	gateway.On("Grant", mock.Anything, "u1", "r1").Return(nil)
	equippedRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("append failed"))
	gateway.On("Revoke", mock.Anything, "u1", "r1").Return(nil)

	result, err := svc.Equip(context.Background(), "u1", []string{"r1"})

	require.NoError(t, err)
	assert.Empty(t, result.Equipped)
	assert.Equal(t, []string{"r1"}, result.Failed)
	gateway.AssertCalled(t, "Revoke", mock.Anything, "u1", "r1")
}

func TestEquipService_Equip_UnownedRoleFails(t *testing.T) {
	t.Parallel()

	purchaseRepo, equippedRepo, gateway, svc := newEquipFixture()

	purchaseRepo.On("GetByUser", mock.Anything, "u1").Return([]*entities.Purchase{}, nil)
	equippedRepo.On("GetByUser", mock.Anything, "u1").Return([]*entities.EquippedRole{}, nil)

	result, err := svc.Equip(context.Background(), "u1", []string{"r9"})

	require.NoError(t, err)
	assert.Equal(t, []string{"r9"}, result.Failed)
	gateway.AssertNotCalled(t, "Grant", mock.Anything, mock.Anything, mock.Anything)
}

func TestEquipService_Unequip_DeleteFailureRestoresGrant(t *testing.T) {
	t.Parallel()

	_, equippedRepo, gateway, svc := newEquipFixture()

	equippedRepo.On("GetByUser", mock.Anything, "u1").Return(equippedRoles("u1", "r1"), nil)
	gateway.On("Revoke", mock.Anything, "u1", "r1").Return(nil)
	equippedRepo.On("Delete", mock.Anything, "u1", "r1").Return(errors.New("delete failed"))
	gateway.On("Grant", mock.Anything, "u1", "r1").Return(nil)

	result, err := svc.Unequip(context.Background(), "u1", []string{"r1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, result.Failed)
	// User keeps the role rather than losing it silently
	gateway.AssertCalled(t, "Grant", mock.Anything, "u1", "r1")
}

func TestEquipService_Unequip_NotEquipped(t *testing.T) {
	t.Parallel()

	_, equippedRepo, gateway, svc := newEquipFixture()

	equippedRepo.On("GetByUser", mock.Anything, "u1").Return([]*entities.EquippedRole{}, nil)

	result, err := svc.Unequip(context.Background(), "u1", []string{"r1"})

	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, result.NotEquipped)
	gateway.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestEquipService_UnequipAll_RevokeFailureAbortsRegistry(t *testing.T) {
	t.Parallel()

	_, equippedRepo, gateway, svc := newEquipFixture()

	equippedRepo.On("GetByUser", mock.Anything, "u1").Return(equippedRoles("u1", "r1", "r2"), nil)
	gateway.On("Revoke", mock.Anything, "u1", "r1").Return(nil)
	gateway.On("Revoke", mock.Anything, "u1", "r2").Return(errors.New("missing permissions"))

	removed, err := svc.UnequipAll(context.Background(), "u1")

	assert.ErrorIs(t, err, ErrRevokeRefused)
	assert.Zero(t, removed)
	// All-or-nothing: zero equipped-set rows may be deleted
	equippedRepo.AssertNotCalled(t, "DeleteAllForUser", mock.Anything, mock.Anything)
}

func TestEquipService_UnequipAll_Success(t *testing.T) {
	t.Parallel()

	_, equippedRepo, gateway, svc := newEquipFixture()

	equippedRepo.On("GetByUser", mock.Anything, "u1").Return(equippedRoles("u1", "r1", "r2"), nil)
	gateway.On("Revoke", mock.Anything, "u1", "r1").Return(nil)
	gateway.On("Revoke", mock.Anything, "u1", "r2").Return(nil)
	equippedRepo.On("DeleteAllForUser", mock.Anything, "u1").Return(nil)

	removed, err := svc.UnequipAll(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	equippedRepo.AssertExpectations(t)
}

func TestEquipService_UnequipAll_NothingEquipped(t *testing.T) {
	t.Parallel()

	_, equippedRepo, gateway, svc := newEquipFixture()

	equippedRepo.On("GetByUser", mock.Anything, "u1").Return([]*entities.EquippedRole{}, nil)

	removed, err := svc.UnequipAll(context.Background(), "u1")

	require.NoError(t, err)
	assert.Zero(t, removed)
	gateway.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}
