package equip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"shopkeeper/bot/common"
	"shopkeeper/domain/services"
)

// HandleEquipCommand answers /equip with a menu of the user's owned roles
func (f *Feature) HandleEquipCommand(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	userID := common.InteractionUserID(i)

	owned, err := f.equipService.OwnedRoleIDs(ctx, userID)
	if err != nil {
		log.Errorf("Error getting owned roles for %s: %v", userID, err)
		return common.ErrorResponse("Unable to load your roles. Please try again.")
	}
	if len(owned) == 0 {
		return common.MessageResponse("You don't own any roles yet. Browse /shop to get one!", true)
	}

	menu, err := f.buildRoleMenu(ctx, common.EquipSelect{}.CustomID(), "Choose roles to equip", owned)
	if err != nil {
		log.Errorf("Error building equip menu: %v", err)
		return common.ErrorResponse("Unable to load your roles. Please try again.")
	}
	return menuResponse("Which of your roles should be equipped?", menu)
}

// HandleUnequipCommand answers /unequip with a menu of equipped roles, or
// removes everything at once when invoked with all:true
func (f *Feature) HandleUnequipCommand(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	userID := common.InteractionUserID(i)

	if unequipAllRequested(i) {
		return f.handleUnequipAll(i, userID)
	}

	equipped, err := f.equipService.EquippedRoleIDs(ctx, userID)
	if err != nil {
		log.Errorf("Error getting equipped roles for %s: %v", userID, err)
		return common.ErrorResponse("Unable to load your roles. Please try again.")
	}
	if len(equipped) == 0 {
		return common.MessageResponse("You have nothing equipped.", true)
	}

	menu, err := f.buildRoleMenu(ctx, common.UnequipSelect{}.CustomID(), "Choose roles to unequip", equipped)
	if err != nil {
		log.Errorf("Error building unequip menu: %v", err)
		return common.ErrorResponse("Unable to load your roles. Please try again.")
	}
	return menuResponse("Which equipped roles should be removed?", menu)
}

func (f *Feature) handleUnequipAll(i *discordgo.InteractionCreate, userID string) *discordgo.InteractionResponse {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		count, err := f.equipService.UnequipAll(ctx, userID)
		if err != nil {
			if errors.Is(err, services.ErrRevokeRefused) {
				common.EditError(f.session, i, &common.BotError{UserMessage: "Some roles could not be removed from your profile, so nothing was changed. Please try again."})
				return
			}
			common.EditError(f.session, i, common.NewBotError("Something went wrong. Please try again.",
				fmt.Errorf("unequipping all roles for %s: %w", userID, err)))
			return
		}
		if count == 0 {
			common.EditResponse(f.session, i, "You had nothing equipped.")
			return
		}
		common.EditResponse(f.session, i, fmt.Sprintf("✅ Unequipped %d role(s).", count))
	}()

	return common.DeferredResponse(true)
}

// HandleEquipSelect applies the roles chosen in the equip menu
func (f *Feature) HandleEquipSelect(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	userID := common.InteractionUserID(i)
	roleIDs := i.MessageComponentData().Values
	if len(roleIDs) == 0 {
		return common.MessageResponse("Nothing selected, nothing changed.", true)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		result, err := f.equipService.Equip(ctx, userID, roleIDs)
		if err != nil {
			common.EditError(f.session, i, common.NewBotError("Something went wrong equipping your roles. Please try again.",
				fmt.Errorf("equipping roles for %s: %w", userID, err)))
			return
		}

		var lines []string
		if len(result.Equipped) > 0 {
			lines = append(lines, fmt.Sprintf("✅ Equipped: %s", mentionRoles(result.Equipped)))
		}
		if len(result.AlreadyEquipped) > 0 {
			lines = append(lines, fmt.Sprintf("ℹ️ Already equipped: %s", mentionRoles(result.AlreadyEquipped)))
		}
		if len(result.Failed) > 0 {
			lines = append(lines, fmt.Sprintf("⚠️ Could not equip: %s", mentionRoles(result.Failed)))
		}
		common.EditResponse(f.session, i, strings.Join(lines, "\n"))
	}()

	return common.DeferredResponse(true)
}

// HandleUnequipSelect removes the roles chosen in the unequip menu
func (f *Feature) HandleUnequipSelect(ctx context.Context, i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	userID := common.InteractionUserID(i)
	roleIDs := i.MessageComponentData().Values
	if len(roleIDs) == 0 {
		return common.MessageResponse("Nothing selected, nothing changed.", true)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		result, err := f.equipService.Unequip(ctx, userID, roleIDs)
		if err != nil {
			common.EditError(f.session, i, common.NewBotError("Something went wrong removing your roles. Please try again.",
				fmt.Errorf("unequipping roles for %s: %w", userID, err)))
			return
		}

		var lines []string
		if len(result.Unequipped) > 0 {
			lines = append(lines, fmt.Sprintf("✅ Unequipped: %s", mentionRoles(result.Unequipped)))
		}
		if len(result.NotEquipped) > 0 {
			lines = append(lines, fmt.Sprintf("ℹ️ Was not equipped: %s", mentionRoles(result.NotEquipped)))
		}
		if len(result.Failed) > 0 {
			lines = append(lines, fmt.Sprintf("⚠️ Could not unequip: %s", mentionRoles(result.Failed)))
		}
		common.EditResponse(f.session, i, strings.Join(lines, "\n"))
	}()

	return common.DeferredResponse(true)
}

// buildRoleMenu labels each role with its shop item name where one is
// still listed, falling back to the raw role mention
func (f *Feature) buildRoleMenu(ctx context.Context, customID, placeholder string, roleIDs []string) (discordgo.SelectMenu, error) {
	items, err := f.shopItems.ListItems(ctx)
	if err != nil {
		return discordgo.SelectMenu{}, err
	}
	names := make(map[string]string, len(items))
	for _, item := range items {
		names[item.RoleID] = item.Name
	}

	options := make([]discordgo.SelectMenuOption, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		label := names[roleID]
		if label == "" {
			label = "Role " + roleID
		}
		options = append(options, discordgo.SelectMenuOption{
			Label: label,
			Value: roleID,
		})
	}

	return discordgo.SelectMenu{
		CustomID:    customID,
		Placeholder: placeholder,
		MaxValues:   len(options),
		Options:     options,
	}, nil
}

func menuResponse(content string, menu discordgo.SelectMenu) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{menu},
				},
			},
		},
	}
}

func mentionRoles(roleIDs []string) string {
	mentions := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
	}
	return strings.Join(mentions, ", ")
}

func unequipAllRequested(i *discordgo.InteractionCreate) bool {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "all" && opt.BoolValue() {
			return true
		}
	}
	return false
}
