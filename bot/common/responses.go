package common

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Handlers build an InteractionResponse that the webhook server writes
// straight back to Discord in the HTTP response body. Anything slower than
// the interaction deadline returns a deferred response and finishes through
// an interaction-response edit.

// MessageResponse builds a plain text response
func MessageResponse(content string, ephemeral bool) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{Content: content}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// EmbedResponse builds an embed response with optional components
func EmbedResponse(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent, ephemeral bool) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	if len(components) > 0 {
		data.Components = components
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// UpdateResponse builds a response that edits the message the component
// lives on, used for shop page flips
func UpdateResponse(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	}
}

// DeferredResponse acknowledges the interaction so the handler can finish
// asynchronously and deliver the result with EditResponse
func DeferredResponse(ephemeral bool) *discordgo.InteractionResponse {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: flags},
	}
}

// ErrorResponse builds an ephemeral error message
func ErrorResponse(message string) *discordgo.InteractionResponse {
	return MessageResponse("❌ "+message, true)
}

// EditResponse fills in a deferred response with text content
func EditResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	if err != nil {
		log.Errorf("Error editing interaction response: %v", err)
	}
}

// EditResponseEmbed fills in a deferred response with an embed
func EditResponseEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	edit := &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}
	if components != nil {
		edit.Components = &components
	}
	_, err := s.InteractionResponseEdit(i.Interaction, edit)
	if err != nil {
		log.Errorf("Error editing interaction response: %v", err)
	}
}
