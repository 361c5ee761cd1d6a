package entities

import "time"

// Purchase is an append-only ownership record: once a (user, role) pair
// exists the user owns the role forever. There is no deletion path.
type Purchase struct {
	UserID      string
	RoleID      string
	PurchasedAt time.Time
}

// EquippedRole marks a role currently applied to the user's profile.
// Equipped implies purchased; purchased does not imply equipped.
type EquippedRole struct {
	UserID string
	RoleID string
}
