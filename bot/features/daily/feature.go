package daily

import (
	"github.com/bwmarrin/discordgo"

	"shopkeeper/domain/interfaces"
)

type Feature struct {
	session      *discordgo.Session
	dailyService interfaces.DailyService
}

func New(session *discordgo.Session, dailyService interfaces.DailyService) *Feature {
	return &Feature{
		session:      session,
		dailyService: dailyService,
	}
}
