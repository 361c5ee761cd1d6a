package giveaway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"shopkeeper/bot/common"
	"shopkeeper/domain/interfaces"
	"shopkeeper/domain/services"
)

// HandleCommand routes /giveaway subcommands
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return common.ErrorResponse("Missing subcommand.")
	}

	sub := data.Options[0]
	switch sub.Name {
	case "create":
		return f.handleCreate(ctx, i, sub)
	case "end":
		return f.handleDraw(i, sub, false)
	case "reroll":
		return f.handleDraw(i, sub, true)
	default:
		return common.ErrorResponse("Unknown subcommand.")
	}
}

// handleCreate stores the giveaway, posts the announcement as the command
// response, then records where the announcement landed
func (f *Feature) handleCreate(ctx context.Context, i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionResponse {
	params := interfaces.CreateGiveawayParams{
		CreatorID: common.InteractionUserID(i),
	}
	for _, opt := range sub.Options {
		switch opt.Name {
		case "title":
			params.Title = opt.StringValue()
		case "description":
			params.Description = opt.StringValue()
		case "prize":
			params.Prize = opt.StringValue()
		case "winners":
			params.WinnersCount = int(opt.IntValue())
		case "hours":
			params.Duration = time.Duration(opt.IntValue()) * time.Hour
		}
	}

	giveaway, err := f.giveawayService.Create(ctx, params)
	if err != nil {
		log.Errorf("Error creating giveaway: %v", err)
		return common.ErrorResponse("Could not create the giveaway. Check the title, prize, winner count and duration.")
	}

	// The announcement message does not exist until Discord processes the
	// response, so its ID is recorded after the fact.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		msg, err := f.session.InteractionResponse(i.Interaction, discordgo.WithContext(ctx))
		if err != nil {
			log.Errorf("Error fetching giveaway announcement for %s: %v", giveaway.ID, err)
			return
		}
		if err := f.giveawayService.SetMessage(ctx, giveaway.ID, msg.ChannelID, msg.ID); err != nil {
			log.Errorf("Error recording announcement for giveaway %s: %v", giveaway.ID, err)
		}
	}()

	return common.EmbedResponse(BuildGiveawayEmbed(giveaway), BuildGiveawayComponents(giveaway), false)
}

// handleDraw ends or rerolls a giveaway and announces the winners
func (f *Feature) handleDraw(i *discordgo.InteractionCreate, sub *discordgo.ApplicationCommandInteractionDataOption, reroll bool) *discordgo.InteractionResponse {
	var giveawayID string
	for _, opt := range sub.Options {
		if opt.Name == "id" {
			giveawayID = opt.StringValue()
		}
	}
	if giveawayID == "" {
		return common.ErrorResponse("Missing giveaway ID.")
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		var result *interfaces.GiveawayDrawResult
		var err error
		if reroll {
			result, err = f.giveawayService.Reroll(ctx, giveawayID)
		} else {
			result, err = f.giveawayService.End(ctx, giveawayID)
		}
		if err != nil {
			common.EditError(f.session, i, drawError(giveawayID, err))
			return
		}

		common.EditResponse(f.session, i, FormatWinners(result.Giveaway, result.WinnerIDs))
	}()

	return common.DeferredResponse(false)
}

// HandleEnter records a giveaway entry from the announcement button. The
// join is acknowledged immediately and the outcome lands as an edit, since
// it is several backing-store round trips.
func (f *Feature) HandleEnter(ctx context.Context, i *discordgo.InteractionCreate, action common.GiveawayEnter) *discordgo.InteractionResponse {
	userID := common.InteractionUserID(i)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		err := f.giveawayService.Join(ctx, action.GiveawayID, userID)
		switch {
		case err == nil:
			common.EditResponse(f.session, i, "🎉 You're in! Good luck!")
		case errors.Is(err, services.ErrAlreadyJoined):
			common.EditResponse(f.session, i, "You already entered this giveaway.")
		default:
			common.EditError(f.session, i, joinError(action.GiveawayID, err))
		}
	}()

	return common.DeferredResponse(true)
}

func joinError(giveawayID string, err error) *common.BotError {
	switch {
	case errors.Is(err, services.ErrGiveawayEnded):
		return &common.BotError{UserMessage: "This giveaway has already ended."}
	case errors.Is(err, services.ErrGiveawayNotFound):
		return &common.BotError{UserMessage: "This giveaway no longer exists."}
	default:
		return common.NewBotError("Something went wrong entering the giveaway. Please try again.",
			fmt.Errorf("joining giveaway %s: %w", giveawayID, err))
	}
}

func drawError(giveawayID string, err error) *common.BotError {
	switch {
	case errors.Is(err, services.ErrGiveawayNotFound):
		return &common.BotError{UserMessage: fmt.Sprintf("No giveaway with ID `%s`.", giveawayID)}
	case errors.Is(err, services.ErrGiveawayEnded):
		return &common.BotError{UserMessage: "That giveaway has already ended. Use reroll to draw again."}
	case errors.Is(err, services.ErrGiveawayNotEnded):
		return &common.BotError{UserMessage: "That giveaway is still running. End it before rerolling."}
	default:
		return common.NewBotError("Something went wrong drawing the winners. Please try again.",
			fmt.Errorf("drawing giveaway %s: %w", giveawayID, err))
	}
}
