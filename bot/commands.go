package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// RegisterCommands overwrites the guild's slash commands with this bot's set
func (b *Bot) RegisterCommands() error {
	_, err := b.session.ApplicationCommandBulkOverwrite(b.config.AppID, b.config.GuildID, commands())
	if err != nil {
		return fmt.Errorf("error registering commands: %w", err)
	}
	return nil
}

func commands() []*discordgo.ApplicationCommand {
	minBet := float64(1)
	minWinners := float64(1)
	minHours := float64(1)
	manageServer := int64(discordgo.PermissionManageServer)

	return []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your current coin balance",
		},
		{
			Name:        "shop",
			Description: "Browse the role shop",
		},
		{
			Name:        "equip",
			Description: "Equip roles you have purchased",
		},
		{
			Name:        "unequip",
			Description: "Remove equipped roles",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "all",
					Description: "Remove every equipped role at once",
				},
			},
		},
		{
			Name:        "daily",
			Description: "Claim your daily coin reward",
		},
		{
			Name:        "coinflip",
			Description: "Bet coins on a coin flip, once a day",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of coins to bet",
					Required:    true,
					MinValue:    &minBet,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "See the top earners",
		},
		{
			Name:                     "giveaway",
			Description:              "Manage giveaways",
			DefaultMemberPermissions: &manageServer,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create and announce a giveaway",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "title",
							Description: "Giveaway title",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "prize",
							Description: "What the winners get",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "winners",
							Description: "Number of winners to draw",
							Required:    true,
							MinValue:    &minWinners,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "hours",
							Description: "How long the giveaway runs, in hours",
							Required:    true,
							MinValue:    &minHours,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "description",
							Description: "Extra details shown on the announcement",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End a giveaway and draw the winners",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Giveaway ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reroll",
					Description: "Draw new winners for an ended giveaway",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Giveaway ID",
							Required:    true,
						},
					},
				},
			},
		},
	}
}
