package daily

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"shopkeeper/bot/common"
	"shopkeeper/domain/services"
)

// HandleCommand runs /daily. The claim acknowledges immediately and the
// outcome lands as an edit.
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	userID := common.InteractionUserID(i)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		result, err := f.dailyService.Claim(ctx, userID)
		if err != nil {
			var cooldownErr *services.CooldownError
			if errors.As(err, &cooldownErr) {
				common.EditResponse(f.session, i, fmt.Sprintf(
					"⏳ You already claimed your daily reward. Come back %s.",
					common.FormatDiscordTimestamp(cooldownErr.NextEligible, "R"),
				))
				return
			}
			common.EditError(f.session, i, common.NewBotError(
				"Something went wrong claiming your reward. Please try again.",
				fmt.Errorf("claiming daily reward for %s: %w", userID, err)))
			return
		}

		common.EditResponse(f.session, i, fmt.Sprintf(
			"🪙 You claimed %s! New balance: %s. Next claim %s.",
			common.FormatCoins(result.Amount),
			common.FormatCoins(result.NewBalance),
			common.FormatDiscordTimestamp(result.NextEligible, "R"),
		))
	}()

	return common.DeferredResponse(true)
}
