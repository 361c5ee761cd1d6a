package giveaway

import (
	"github.com/bwmarrin/discordgo"

	"shopkeeper/domain/interfaces"
)

type Feature struct {
	session         *discordgo.Session
	giveawayService interfaces.GiveawayService
}

func New(session *discordgo.Session, giveawayService interfaces.GiveawayService) *Feature {
	return &Feature{
		session:         session,
		giveawayService: giveawayService,
	}
}
