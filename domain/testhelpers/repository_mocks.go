package testhelpers

import (
	"context"
	"time"

	"shopkeeper/domain/entities"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(ctx context.Context, userID string) (*entities.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateBalance(ctx context.Context, userID string, newBalance int64) error {
	args := m.Called(ctx, userID, newBalance)
	return args.Error(0)
}

// MockShopItemRepository is a mock implementation of ShopItemRepository
type MockShopItemRepository struct {
	mock.Mock
}

func (m *MockShopItemRepository) ListItems(ctx context.Context) ([]*entities.ShopItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ShopItem), args.Error(1)
}

func (m *MockShopItemRepository) GetByRoleID(ctx context.Context, roleID string) (*entities.ShopItem, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ShopItem), args.Error(1)
}

// MockPurchaseRepository is a mock implementation of PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *entities.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Exists(ctx context.Context, userID, roleID string) (bool, error) {
	args := m.Called(ctx, userID, roleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPurchaseRepository) GetByUser(ctx context.Context, userID string) ([]*entities.Purchase, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Purchase), args.Error(1)
}

// MockEquippedRoleRepository is a mock implementation of EquippedRoleRepository
type MockEquippedRoleRepository struct {
	mock.Mock
}

func (m *MockEquippedRoleRepository) GetByUser(ctx context.Context, userID string) ([]*entities.EquippedRole, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EquippedRole), args.Error(1)
}

func (m *MockEquippedRoleRepository) Create(ctx context.Context, equipped *entities.EquippedRole) error {
	args := m.Called(ctx, equipped)
	return args.Error(0)
}

func (m *MockEquippedRoleRepository) Delete(ctx context.Context, userID, roleID string) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

func (m *MockEquippedRoleRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockActionUsageRepository is a mock implementation of ActionUsageRepository
type MockActionUsageRepository struct {
	mock.Mock
}

func (m *MockActionUsageRepository) GetByUser(ctx context.Context, userID string) (*entities.ActionUsage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ActionUsage), args.Error(1)
}

func (m *MockActionUsageRepository) Upsert(ctx context.Context, userID string, usedAt time.Time) error {
	args := m.Called(ctx, userID, usedAt)
	return args.Error(0)
}

// MockLeaderboardRepository is a mock implementation of LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) GetByUser(ctx context.Context, userID string) (*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) Upsert(ctx context.Context, entry *entities.LeaderboardEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) GetTop(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Error(1)
}

// MockGiveawayRepository is a mock implementation of GiveawayRepository
type MockGiveawayRepository struct {
	mock.Mock
}

func (m *MockGiveawayRepository) Create(ctx context.Context, giveaway *entities.Giveaway) error {
	args := m.Called(ctx, giveaway)
	return args.Error(0)
}

func (m *MockGiveawayRepository) GetByID(ctx context.Context, id string) (*entities.Giveaway, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Giveaway), args.Error(1)
}

func (m *MockGiveawayRepository) Update(ctx context.Context, giveaway *entities.Giveaway) error {
	args := m.Called(ctx, giveaway)
	return args.Error(0)
}

// MockGiveawayParticipantRepository is a mock implementation of GiveawayParticipantRepository
type MockGiveawayParticipantRepository struct {
	mock.Mock
}

func (m *MockGiveawayParticipantRepository) Create(ctx context.Context, participant *entities.GiveawayParticipant) error {
	args := m.Called(ctx, participant)
	return args.Error(0)
}

func (m *MockGiveawayParticipantRepository) Exists(ctx context.Context, giveawayID, userID string) (bool, error) {
	args := m.Called(ctx, giveawayID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGiveawayParticipantRepository) GetByGiveaway(ctx context.Context, giveawayID string) ([]*entities.GiveawayParticipant, error) {
	args := m.Called(ctx, giveawayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GiveawayParticipant), args.Error(1)
}

// MockGiveawayWinnerRepository is a mock implementation of GiveawayWinnerRepository
type MockGiveawayWinnerRepository struct {
	mock.Mock
}

func (m *MockGiveawayWinnerRepository) Create(ctx context.Context, winner *entities.GiveawayWinner) error {
	args := m.Called(ctx, winner)
	return args.Error(0)
}

func (m *MockGiveawayWinnerRepository) GetWinnersSince(ctx context.Context, since time.Time) ([]*entities.GiveawayWinner, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GiveawayWinner), args.Error(1)
}

// MockRoleGateway is a mock implementation of RoleGateway
type MockRoleGateway struct {
	mock.Mock
}

func (m *MockRoleGateway) Grant(ctx context.Context, userID, roleID string) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

func (m *MockRoleGateway) Revoke(ctx context.Context, userID, roleID string) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

// MockBalanceService is a mock implementation of BalanceService
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetBalance(ctx context.Context, userID string) int64 {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64)
}

func (m *MockBalanceService) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBalanceService) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

// MockCooldownService is a mock implementation of CooldownService
type MockCooldownService struct {
	mock.Mock
}

func (m *MockCooldownService) CanAct(ctx context.Context, userID string) bool {
	args := m.Called(ctx, userID)
	return args.Bool(0)
}

func (m *MockCooldownService) NextEligibleTime(ctx context.Context, userID string) time.Time {
	args := m.Called(ctx, userID)
	return args.Get(0).(time.Time)
}

func (m *MockCooldownService) RecordUse(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockLeaderboardService is a mock implementation of LeaderboardService
type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) RecordClaim(ctx context.Context, userID string, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockLeaderboardService) Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Error(1)
}
