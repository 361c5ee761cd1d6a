package shop

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"shopkeeper/bot/common"
	"shopkeeper/domain/entities"
)

const shopColor = 0xFFD700

// pageOf slices the listing down to one page. Pages past the end clamp to
// the last page, so a stale button on an old message still renders.
func pageOf(items []*entities.ShopItem, page int) ([]*entities.ShopItem, int, int) {
	totalPages := (len(items) + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page >= totalPages {
		page = totalPages - 1
	}
	if page < 0 {
		page = 0
	}

	start := page * PageSize
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page, totalPages
}

// BuildShopEmbed renders one page of the role shop
func BuildShopEmbed(pageItems []*entities.ShopItem, page, totalPages int, balance int64) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🛒 Role Shop",
		Description: fmt.Sprintf("Your balance: %s", common.FormatCoins(balance)),
		Color:       shopColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d of %d", page+1, totalPages),
		},
	}

	for _, item := range pageItems {
		description := item.Description
		if description == "" {
			description = "No description"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s • %s coins", item.Name, common.FormatBalance(item.Price)),
			Value: description,
		})
	}

	if len(pageItems) > 0 && pageItems[0].ImageRef != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: pageItems[0].ImageRef}
	}

	return embed
}

// BuildShopComponents creates the buy buttons for the page plus the
// navigation row. Navigation disables at either end of the listing.
func BuildShopComponents(pageItems []*entities.ShopItem, page, totalPages int) []discordgo.MessageComponent {
	buyRow := discordgo.ActionsRow{}
	for _, item := range pageItems {
		buyRow.Components = append(buyRow.Components, discordgo.Button{
			Label:    fmt.Sprintf("Buy %s", item.Name),
			Style:    discordgo.SuccessButton,
			CustomID: common.BuyRole{RoleID: item.RoleID}.CustomID(),
		})
	}

	navRow := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "◀ Back",
				Style:    discordgo.SecondaryButton,
				CustomID: common.ShopPrevPage{Page: page}.CustomID(),
				Disabled: page == 0,
			},
			discordgo.Button{
				Label:    "Next ▶",
				Style:    discordgo.SecondaryButton,
				CustomID: common.ShopNextPage{Page: page}.CustomID(),
				Disabled: page >= totalPages-1,
			},
		},
	}

	components := []discordgo.MessageComponent{}
	if len(buyRow.Components) > 0 {
		components = append(components, buyRow)
	}
	return append(components, navRow)
}
