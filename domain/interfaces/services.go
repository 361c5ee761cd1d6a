package interfaces

import (
	"context"
	"time"

	"shopkeeper/domain/entities"
)

// BalanceService owns reads and writes of user balances
type BalanceService interface {
	// GetBalance returns the user's stored balance, creating a zero row on
	// first read. Backing-store errors are swallowed and reported as 0.
	GetBalance(ctx context.Context, userID string) int64

	// Credit adds amount to the user's balance and returns the new balance
	Credit(ctx context.Context, userID string, amount int64) (int64, error)

	// Debit subtracts amount from the user's balance and returns the new
	// balance. The caller is responsible for the affordability check.
	Debit(ctx context.Context, userID string, amount int64) (int64, error)
}

// PurchaseResult describes a completed role purchase
type PurchaseResult struct {
	ItemName   string
	Price      int64
	NewBalance int64
}

// PurchaseService orchestrates the buy transaction
type PurchaseService interface {
	Purchase(ctx context.Context, userID, roleID string) (*PurchaseResult, error)
}

// EquipResult partitions the requested roles into three disjoint buckets
type EquipResult struct {
	Equipped        []string
	AlreadyEquipped []string
	Failed          []string
}

// UnequipResult partitions a selective unequip request
type UnequipResult struct {
	Unequipped  []string
	NotEquipped []string
	Failed      []string
}

// EquipService orchestrates role grant/revoke against the gateway together
// with the equipped-set registry
type EquipService interface {
	// Equip applies each requested role the user owns but has not equipped
	Equip(ctx context.Context, userID string, roleIDs []string) (*EquipResult, error)

	// Unequip removes the selected roles
	Unequip(ctx context.Context, userID string, roleIDs []string) (*UnequipResult, error)

	// UnequipAll removes every equipped role, all-or-nothing at the
	// registry. Returns the number of roles removed.
	UnequipAll(ctx context.Context, userID string) (int, error)

	// OwnedRoleIDs returns the role IDs the user has purchased
	OwnedRoleIDs(ctx context.Context, userID string) ([]string, error)

	// EquippedRoleIDs returns the role IDs currently equipped
	EquippedRoleIDs(ctx context.Context, userID string) ([]string, error)
}

// CooldownService enforces a once-per-rolling-window policy per user
type CooldownService interface {
	// CanAct reports whether the window has elapsed since last use.
	// Read errors fail open: availability over strict enforcement.
	CanAct(ctx context.Context, userID string) bool

	// NextEligibleTime returns when the user may act again, or now if the
	// user has never acted
	NextEligibleTime(ctx context.Context, userID string) time.Time

	// RecordUse upserts the current timestamp for the user
	RecordUse(ctx context.Context, userID string) error
}

// ClaimResult describes a successful daily reward claim
type ClaimResult struct {
	Amount       int64
	NewBalance   int64
	NextEligible time.Time
}

// DailyService hands out the time-gated daily reward
type DailyService interface {
	Claim(ctx context.Context, userID string) (*ClaimResult, error)
}

// FlipResult describes a resolved coinflip
type FlipResult struct {
	Won        bool
	BetAmount  int64
	NewBalance int64
}

// GamblingService resolves the daily coinflip gamble
type GamblingService interface {
	Coinflip(ctx context.Context, userID string, betAmount int64) (*FlipResult, error)
}

// CreateGiveawayParams carries the inputs of /giveaway create
type CreateGiveawayParams struct {
	CreatorID    string
	Title        string
	Description  string
	Prize        string
	WinnersCount int
	Duration     time.Duration
}

// GiveawayDrawResult describes the outcome of ending or rerolling a giveaway
type GiveawayDrawResult struct {
	Giveaway  *entities.Giveaway
	WinnerIDs []string
}

// GiveawayService manages giveaway lifecycle and winner selection
type GiveawayService interface {
	Create(ctx context.Context, params CreateGiveawayParams) (*entities.Giveaway, error)

	// SetMessage records where the giveaway embed was posted
	SetMessage(ctx context.Context, giveawayID, channelID, messageID string) error

	// Join enters a user into an active giveaway
	Join(ctx context.Context, giveawayID, userID string) error

	// End draws winners and transitions the giveaway to ended
	End(ctx context.Context, giveawayID string) (*GiveawayDrawResult, error)

	// Reroll re-draws winners of an already-ended giveaway
	Reroll(ctx context.Context, giveawayID string) (*GiveawayDrawResult, error)
}

// LeaderboardService tracks cumulative earnings
type LeaderboardService interface {
	// RecordClaim additively updates the user's accumulator after a reward
	// claim: totalEarned grows by amount, dailyClaims by one
	RecordClaim(ctx context.Context, userID string, amount int64) error

	// Top returns the highest earners
	Top(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
}
