package equip

import (
	"github.com/bwmarrin/discordgo"

	"shopkeeper/domain/interfaces"
)

type Feature struct {
	session      *discordgo.Session
	equipService interfaces.EquipService
	shopItems    interfaces.ShopItemRepository
}

func New(session *discordgo.Session, equipService interfaces.EquipService, shopItems interfaces.ShopItemRepository) *Feature {
	return &Feature{
		session:      session,
		equipService: equipService,
		shopItems:    shopItems,
	}
}
