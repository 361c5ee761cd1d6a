package balance

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"shopkeeper/bot/common"
)

// HandleCommand answers /balance with the stored balance. A backing-store
// failure reads as 0, so this never errors at the user.
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	userID := common.InteractionUserID(i)
	balance := f.balanceService.GetBalance(ctx, userID)

	message := fmt.Sprintf("💰 Your current balance: %s", common.FormatCoins(balance))
	return common.MessageResponse(message, true)
}
