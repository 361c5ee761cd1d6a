package coinflip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"shopkeeper/bot/common"
	"shopkeeper/domain/services"
)

// HandleCommand runs /coinflip <amount>. Results post publicly; rejected
// bets come back as an ephemeral error before anything is acknowledged.
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	userID := common.InteractionUserID(i)

	amount := betAmount(i)
	if amount <= 0 {
		return common.ErrorResponse("The bet must be a positive amount.")
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		result, err := f.gamblingService.Coinflip(ctx, userID, amount)
		if err != nil {
			common.EditError(f.session, i, flipError(userID, err))
			return
		}

		common.EditResponse(f.session, i, formatFlipResult(userID, result.Won, result.BetAmount, result.NewBalance))
	}()

	return common.DeferredResponse(false)
}

func formatFlipResult(userID string, won bool, betAmount, newBalance int64) string {
	if won {
		return fmt.Sprintf("🎉 <@%s> flipped a coin and **won** %s! New balance: %s",
			userID, common.FormatCoins(betAmount), common.FormatCoins(newBalance))
	}
	return fmt.Sprintf("😔 <@%s> flipped a coin and **lost** %s. New balance: %s",
		userID, common.FormatCoins(betAmount), common.FormatCoins(newBalance))
}

func flipError(userID string, err error) *common.BotError {
	var cooldownErr *services.CooldownError
	switch {
	case errors.As(err, &cooldownErr):
		return &common.BotError{UserMessage: fmt.Sprintf("You already flipped today. Come back %s.",
			common.FormatDiscordTimestamp(cooldownErr.NextEligible, "R"))}
	case errors.Is(err, services.ErrInvalidBet):
		return &common.BotError{UserMessage: "The bet must be a positive amount."}
	case errors.Is(err, services.ErrInsufficientFunds):
		return &common.BotError{UserMessage: "You can't bet more than you have."}
	default:
		return common.NewBotError("Something went wrong resolving your flip. Please try again.",
			fmt.Errorf("resolving coinflip for %s: %w", userID, err))
	}
}

func betAmount(i *discordgo.InteractionCreate) int64 {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "amount" {
			return opt.IntValue()
		}
	}
	return 0
}
