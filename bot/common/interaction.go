package common

import "github.com/bwmarrin/discordgo"

// InteractionUserID returns the invoking user's ID. Guild interactions
// carry the user inside Member, DM interactions carry it directly.
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
