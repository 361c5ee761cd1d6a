package shop

import (
	"github.com/bwmarrin/discordgo"

	"shopkeeper/domain/interfaces"
)

// PageSize is the number of items shown per shop page
const PageSize = 3

type Feature struct {
	session         *discordgo.Session
	shopItems       interfaces.ShopItemRepository
	purchaseService interfaces.PurchaseService
	balanceService  interfaces.BalanceService
}

func New(session *discordgo.Session, shopItems interfaces.ShopItemRepository, purchaseService interfaces.PurchaseService, balanceService interfaces.BalanceService) *Feature {
	return &Feature{
		session:         session,
		shopItems:       shopItems,
		purchaseService: purchaseService,
		balanceService:  balanceService,
	}
}
