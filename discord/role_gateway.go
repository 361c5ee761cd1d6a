// Package discord implements domain gateways over the discordgo REST API.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// RoleGateway grants and revokes guild roles. Discord treats both
// operations as idempotent, which the equip compensation logic relies on.
type RoleGateway struct {
	session *discordgo.Session
	guildID string
}

// NewRoleGateway creates a role gateway bound to one guild
func NewRoleGateway(session *discordgo.Session, guildID string) *RoleGateway {
	return &RoleGateway{session: session, guildID: guildID}
}

// Grant adds the role to the guild member
func (g *RoleGateway) Grant(ctx context.Context, userID, roleID string) error {
	if err := g.session.GuildMemberRoleAdd(g.guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to grant role %s to user %s: %w", roleID, userID, err)
	}
	return nil
}

// Revoke removes the role from the guild member
func (g *RoleGateway) Revoke(ctx context.Context, userID, roleID string) error {
	if err := g.session.GuildMemberRoleRemove(g.guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to revoke role %s from user %s: %w", roleID, userID, err)
	}
	return nil
}
