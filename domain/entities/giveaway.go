package entities

import "time"

// GiveawayStatus represents the lifecycle state of a giveaway
type GiveawayStatus string

const (
	GiveawayStatusActive GiveawayStatus = "active"
	GiveawayStatusEnded  GiveawayStatus = "ended"
)

// Giveaway represents a prize giveaway posted to a channel.
// Created active, transitioned to ended exactly once, never deleted.
type Giveaway struct {
	ID           string
	Title        string
	Description  string
	Prize        string
	WinnersCount int
	EndTime      time.Time
	ChannelID    string
	MessageID    string
	CreatorID    string
	CreatedAt    time.Time
	Status       GiveawayStatus
}

// IsActive reports whether entries are still being accepted
func (g *Giveaway) IsActive() bool {
	return g.Status == GiveawayStatusActive
}

// IsEnded reports whether the giveaway has been drawn
func (g *Giveaway) IsEnded() bool {
	return g.Status == GiveawayStatusEnded
}

// End transitions the giveaway to the ended state
func (g *Giveaway) End() {
	g.Status = GiveawayStatusEnded
}

// SetMessage records the Discord channel/message the giveaway was posted to
func (g *Giveaway) SetMessage(channelID, messageID string) {
	g.ChannelID = channelID
	g.MessageID = messageID
}

// GiveawayParticipant is an append-only entry record. Uniqueness of
// (giveaway, user) is enforced by a check before append.
type GiveawayParticipant struct {
	GiveawayID string
	UserID     string
	JoinedAt   time.Time
}

// GiveawayWinner is an append-only audit record used to exclude recent
// winners from future draws.
type GiveawayWinner struct {
	GiveawayID string
	UserID     string
	WonAt      time.Time
}
