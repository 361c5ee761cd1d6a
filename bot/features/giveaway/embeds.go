package giveaway

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"shopkeeper/bot/common"
	"shopkeeper/domain/entities"
)

const giveawayColor = 0xE91E63

// BuildGiveawayEmbed renders the public giveaway announcement
func BuildGiveawayEmbed(g *entities.Giveaway) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🎉 " + g.Title,
		Color: giveawayColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Prize", Value: g.Prize, Inline: true},
			{Name: "Winners", Value: fmt.Sprintf("%d", g.WinnersCount), Inline: true},
			{Name: "Ends", Value: common.FormatDiscordTimestamp(g.EndTime, "R"), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Press Enter below to join!",
		},
	}
	if g.Description != "" {
		embed.Description = g.Description
	}
	return embed
}

// BuildGiveawayComponents creates the entry button
func BuildGiveawayComponents(g *entities.Giveaway) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🎉 Enter",
					Style:    discordgo.PrimaryButton,
					CustomID: common.GiveawayEnter{GiveawayID: g.ID}.CustomID(),
				},
			},
		},
	}
}

// FormatWinners announces a draw result
func FormatWinners(g *entities.Giveaway, winnerIDs []string) string {
	if len(winnerIDs) == 0 {
		return fmt.Sprintf("The giveaway **%s** ended with no entries, so there is no winner this time.", g.Title)
	}

	mentions := make([]string, 0, len(winnerIDs))
	for _, id := range winnerIDs {
		mentions = append(mentions, fmt.Sprintf("<@%s>", id))
	}
	return fmt.Sprintf("🎉 Congratulations %s! You won **%s**!", strings.Join(mentions, ", "), g.Prize)
}
