package leaderboard

import (
	"github.com/bwmarrin/discordgo"

	"shopkeeper/domain/interfaces"
)

// TopSize is how many entries the leaderboard shows
const TopSize = 10

type Feature struct {
	session            *discordgo.Session
	leaderboardService interfaces.LeaderboardService
}

func New(session *discordgo.Session, leaderboardService interfaces.LeaderboardService) *Feature {
	return &Feature{
		session:            session,
		leaderboardService: leaderboardService,
	}
}
