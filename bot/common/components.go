package common

import (
	"fmt"
	"strconv"
	"strings"
)

// ComponentAction is a parsed message-component custom ID. The set of
// actions is closed: routing happens with a type switch, and an ID that
// parses to no action is rejected before any handler runs.
type ComponentAction interface {
	// CustomID renders the action back to its wire custom ID
	CustomID() string
}

// BuyRole is a shop buy button press
type BuyRole struct {
	RoleID string
}

func (a BuyRole) CustomID() string { return "buy_" + a.RoleID }

// ShopPrevPage is a shop back button press. Page is the page that was
// showing when the button was pressed.
type ShopPrevPage struct {
	Page int
}

func (a ShopPrevPage) CustomID() string { return "prev_page_" + strconv.Itoa(a.Page) }

// ShopNextPage is a shop forward button press
type ShopNextPage struct {
	Page int
}

func (a ShopNextPage) CustomID() string { return "next_page_" + strconv.Itoa(a.Page) }

// GiveawayEnter is a giveaway entry button press
type GiveawayEnter struct {
	GiveawayID string
}

func (a GiveawayEnter) CustomID() string { return "giveaway_enter_" + a.GiveawayID }

// EquipSelect is a submission of the equip role menu
type EquipSelect struct{}

func (a EquipSelect) CustomID() string { return "equip_select" }

// UnequipSelect is a submission of the unequip role menu
type UnequipSelect struct{}

func (a UnequipSelect) CustomID() string { return "unequip_select" }

// ParseComponentAction decodes a custom ID into its action, or fails for
// IDs this bot never issued
func ParseComponentAction(customID string) (ComponentAction, error) {
	switch {
	case customID == "equip_select":
		return EquipSelect{}, nil
	case customID == "unequip_select":
		return UnequipSelect{}, nil
	case strings.HasPrefix(customID, "buy_"):
		roleID := strings.TrimPrefix(customID, "buy_")
		if roleID == "" {
			return nil, fmt.Errorf("buy action with empty role ID")
		}
		return BuyRole{RoleID: roleID}, nil
	case strings.HasPrefix(customID, "prev_page_"):
		page, err := parsePage(strings.TrimPrefix(customID, "prev_page_"))
		if err != nil {
			return nil, err
		}
		return ShopPrevPage{Page: page}, nil
	case strings.HasPrefix(customID, "next_page_"):
		page, err := parsePage(strings.TrimPrefix(customID, "next_page_"))
		if err != nil {
			return nil, err
		}
		return ShopNextPage{Page: page}, nil
	case strings.HasPrefix(customID, "giveaway_enter_"):
		id := strings.TrimPrefix(customID, "giveaway_enter_")
		if id == "" {
			return nil, fmt.Errorf("giveaway entry action with empty ID")
		}
		return GiveawayEnter{GiveawayID: id}, nil
	default:
		return nil, fmt.Errorf("unknown component custom ID: %s", customID)
	}
}

func parsePage(s string) (int, error) {
	page, err := strconv.Atoi(s)
	if err != nil || page < 0 {
		return 0, fmt.Errorf("malformed page number %q", s)
	}
	return page, nil
}
