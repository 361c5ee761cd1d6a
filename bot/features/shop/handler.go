package shop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"shopkeeper/bot/common"
	"shopkeeper/domain/services"
)

// HandleCommand answers /shop with the first page of the listing
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	return f.renderPage(ctx, i, 0, false)
}

// HandlePrevPage flips the shop message one page back
func (f *Feature) HandlePrevPage(ctx context.Context, i *discordgo.InteractionCreate, action common.ShopPrevPage) *discordgo.InteractionResponse {
	return f.renderPage(ctx, i, action.Page-1, true)
}

// HandleNextPage flips the shop message one page forward
func (f *Feature) HandleNextPage(ctx context.Context, i *discordgo.InteractionCreate, action common.ShopNextPage) *discordgo.InteractionResponse {
	return f.renderPage(ctx, i, action.Page+1, true)
}

func (f *Feature) renderPage(ctx context.Context, i *discordgo.InteractionCreate, page int, update bool) *discordgo.InteractionResponse {
	items, err := f.shopItems.ListItems(ctx)
	if err != nil {
		log.Errorf("Error listing shop items: %v", err)
		return common.ErrorResponse("The shop is unavailable right now. Please try again.")
	}
	if len(items) == 0 {
		return common.MessageResponse("The shop is empty right now. Check back later!", true)
	}

	pageItems, page, totalPages := pageOf(items, page)
	balance := f.balanceService.GetBalance(ctx, common.InteractionUserID(i))

	embed := BuildShopEmbed(pageItems, page, totalPages, balance)
	components := BuildShopComponents(pageItems, page, totalPages)
	if update {
		return common.UpdateResponse(embed, components)
	}
	return common.EmbedResponse(embed, components, true)
}

// HandleBuy runs the purchase transaction. The buy acknowledges
// immediately and the outcome lands as an edit, since a purchase is
// several backing-store round trips.
func (f *Feature) HandleBuy(ctx context.Context, i *discordgo.InteractionCreate, action common.BuyRole) *discordgo.InteractionResponse {
	userID := common.InteractionUserID(i)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		result, err := f.purchaseService.Purchase(ctx, userID, action.RoleID)
		if err != nil {
			common.EditError(f.session, i, purchaseError(err))
			return
		}

		common.EditResponse(f.session, i, fmt.Sprintf(
			"✅ You bought **%s** for %s! New balance: %s",
			result.ItemName,
			common.FormatCoins(result.Price),
			common.FormatCoins(result.NewBalance),
		))
	}()

	return common.DeferredResponse(true)
}

func purchaseError(err error) *common.BotError {
	switch {
	case errors.Is(err, services.ErrItemUnavailable):
		return &common.BotError{UserMessage: "That item is no longer in the shop."}
	case errors.Is(err, services.ErrAlreadyOwned):
		return &common.BotError{UserMessage: "You already own that role."}
	case errors.Is(err, services.ErrInsufficientFunds):
		return &common.BotError{UserMessage: "You can't afford that role yet. Claim your daily reward and come back!"}
	default:
		return common.NewBotError("Something went wrong completing your purchase. Please try again.", err)
	}
}
