package interfaces

import (
	"context"
	"time"

	"shopkeeper/domain/entities"
)

// UserRepository defines the interface for balance row data access
type UserRepository interface {
	// GetOrCreate retrieves a user's balance row, creating a zero-balance
	// row if the user has none yet
	GetOrCreate(ctx context.Context, userID string) (*entities.User, error)

	// UpdateBalance overwrites a user's stored balance. It fails if the
	// user has no existing row: a set is not a create.
	UpdateBalance(ctx context.Context, userID string, newBalance int64) error
}

// ShopItemRepository defines the interface for shop listing data access
type ShopItemRepository interface {
	// ListItems returns all well-formed shop items in listing order
	ListItems(ctx context.Context) ([]*entities.ShopItem, error)

	// GetByRoleID retrieves an item by its role ID, or nil if not listed
	GetByRoleID(ctx context.Context, roleID string) (*entities.ShopItem, error)
}

// PurchaseRepository defines the interface for the append-only purchase log
type PurchaseRepository interface {
	// Create appends a new purchase record
	Create(ctx context.Context, purchase *entities.Purchase) error

	// Exists reports whether the user already owns the role
	Exists(ctx context.Context, userID, roleID string) (bool, error)

	// GetByUser returns all purchases made by a user
	GetByUser(ctx context.Context, userID string) ([]*entities.Purchase, error)
}

// EquippedRoleRepository defines the interface for the mutable equipped-set
type EquippedRoleRepository interface {
	// GetByUser returns the user's currently equipped roles
	GetByUser(ctx context.Context, userID string) ([]*entities.EquippedRole, error)

	// Create appends an equipped-set row
	Create(ctx context.Context, equipped *entities.EquippedRole) error

	// Delete removes a single equipped-set row
	Delete(ctx context.Context, userID, roleID string) error

	// DeleteAllForUser removes every equipped-set row for the user
	DeleteAllForUser(ctx context.Context, userID string) error
}

// ActionUsageRepository defines the interface for rate-limit timestamp rows.
// Each rate-limited action type is backed by its own table, so each action
// gets its own repository instance.
type ActionUsageRepository interface {
	// GetByUser retrieves the user's last-used record, or nil if never used
	GetByUser(ctx context.Context, userID string) (*entities.ActionUsage, error)

	// Upsert updates the user's last-used timestamp, inserting if absent
	Upsert(ctx context.Context, userID string, usedAt time.Time) error
}

// LeaderboardRepository defines the interface for the earnings accumulator
type LeaderboardRepository interface {
	// GetByUser retrieves a user's leaderboard entry, or nil if absent
	GetByUser(ctx context.Context, userID string) (*entities.LeaderboardEntry, error)

	// Upsert writes a user's leaderboard entry, inserting if absent
	Upsert(ctx context.Context, entry *entities.LeaderboardEntry) error

	// GetTop returns up to limit entries ordered by total earned descending
	GetTop(ctx context.Context, limit int) ([]*entities.LeaderboardEntry, error)
}

// GiveawayRepository defines the interface for giveaway data access
type GiveawayRepository interface {
	// Create stores a new giveaway
	Create(ctx context.Context, giveaway *entities.Giveaway) error

	// GetByID retrieves a giveaway, or nil if unknown
	GetByID(ctx context.Context, id string) (*entities.Giveaway, error)

	// Update overwrites a giveaway's mutable fields (status, message IDs)
	Update(ctx context.Context, giveaway *entities.Giveaway) error
}

// GiveawayParticipantRepository defines the interface for the entry log
type GiveawayParticipantRepository interface {
	// Create appends a participant record
	Create(ctx context.Context, participant *entities.GiveawayParticipant) error

	// Exists reports whether the user already entered the giveaway
	Exists(ctx context.Context, giveawayID, userID string) (bool, error)

	// GetByGiveaway returns all participants of a giveaway
	GetByGiveaway(ctx context.Context, giveawayID string) ([]*entities.GiveawayParticipant, error)
}

// GiveawayWinnerRepository defines the interface for the winner audit log
type GiveawayWinnerRepository interface {
	// Create appends a winner record
	Create(ctx context.Context, winner *entities.GiveawayWinner) error

	// GetWinnersSince returns all winner records with a win date at or
	// after the given time, across all giveaways
	GetWinnersSince(ctx context.Context, since time.Time) ([]*entities.GiveawayWinner, error)
}
