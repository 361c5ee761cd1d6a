package common

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// BotError carries a message safe to show the invoking user alongside the
// underlying cause. Expected outcomes leave Err nil and only the user sees
// them; anything with a cause is also logged.
type BotError struct {
	UserMessage string
	Err         error
}

func (e *BotError) Error() string {
	if e.Err != nil {
		return e.UserMessage + ": " + e.Err.Error()
	}
	return e.UserMessage
}

func (e *BotError) Unwrap() error {
	return e.Err
}

// NewBotError creates a BotError wrapping an underlying cause
func NewBotError(userMessage string, err error) *BotError {
	return &BotError{UserMessage: userMessage, Err: err}
}

// EditError fills in a deferred response with the user-facing side of err.
// Anything that is not a BotError surfaces as a generic apology.
func EditError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	var botErr *BotError
	if !errors.As(err, &botErr) {
		botErr = NewBotError("Something went wrong. Please try again.", err)
	}
	if botErr.Err != nil {
		log.Errorf("Interaction failed: %v", botErr)
	}
	EditResponse(s, i, "❌ "+botErr.UserMessage)
}
