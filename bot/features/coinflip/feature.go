package coinflip

import (
	"github.com/bwmarrin/discordgo"

	"shopkeeper/domain/interfaces"
)

type Feature struct {
	session         *discordgo.Session
	gamblingService interfaces.GamblingService
}

func New(session *discordgo.Session, gamblingService interfaces.GamblingService) *Feature {
	return &Feature{
		session:         session,
		gamblingService: gamblingService,
	}
}
