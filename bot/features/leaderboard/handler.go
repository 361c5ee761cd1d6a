package leaderboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"shopkeeper/bot/common"
	"shopkeeper/domain/entities"
)

const leaderboardColor = 0x5865F2

var medals = []string{"🥇", "🥈", "🥉"}

// HandleCommand answers /leaderboard with the top earners
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		entries, err := f.leaderboardService.Top(ctx, TopSize)
		if err != nil {
			common.EditError(f.session, i, common.NewBotError("The leaderboard is unavailable right now. Please try again.",
				fmt.Errorf("loading leaderboard: %w", err)))
			return
		}

		common.EditResponseEmbed(f.session, i, BuildLeaderboardEmbed(entries), nil)
	}()

	return common.DeferredResponse(false)
}

// BuildLeaderboardEmbed renders the top earners embed
func BuildLeaderboardEmbed(entries []*entities.LeaderboardEntry) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🏆 Top Earners",
		Color: leaderboardColor,
	}

	if len(entries) == 0 {
		embed.Description = "Nobody has earned anything yet. Be the first with /daily!"
		return embed
	}

	var lines []string
	for rank, entry := range entries {
		prefix := fmt.Sprintf("**%d.**", rank+1)
		if rank < len(medals) {
			prefix = medals[rank]
		}
		lines = append(lines, fmt.Sprintf("%s <@%s> • %s coins (%d daily claims)",
			prefix, entry.UserID, common.FormatBalance(entry.TotalEarned), entry.DailyClaims))
	}
	embed.Description = strings.Join(lines, "\n")

	return embed
}
