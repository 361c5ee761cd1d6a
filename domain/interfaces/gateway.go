package interfaces

import "context"

// RoleGateway is the external role-assignment API of the chat platform.
// Both operations are idempotent: granting an already-held role, or revoking
// an unheld one, is success, not error. Calls may fail transiently.
type RoleGateway interface {
	// Grant assigns the role to the user
	Grant(ctx context.Context, userID, roleID string) error

	// Revoke removes the role from the user
	Revoke(ctx context.Context, userID, roleID string) error
}
