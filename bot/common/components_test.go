package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponentAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		customID string
		want     ComponentAction
	}{
		{name: "buy button", customID: "buy_123456", want: BuyRole{RoleID: "123456"}},
		{name: "previous page", customID: "prev_page_2", want: ShopPrevPage{Page: 2}},
		{name: "next page", customID: "next_page_0", want: ShopNextPage{Page: 0}},
		{name: "giveaway entry", customID: "giveaway_enter_abc-123", want: GiveawayEnter{GiveawayID: "abc-123"}},
		{name: "equip menu", customID: "equip_select", want: EquipSelect{}},
		{name: "unequip menu", customID: "unequip_select", want: UnequipSelect{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			action, err := ParseComponentAction(tt.customID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, action)
			assert.Equal(t, tt.customID, action.CustomID(), "action must render back to its wire ID")
		})
	}
}

func TestParseComponentAction_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		customID string
	}{
		{name: "unknown prefix", customID: "wager_accept_1"},
		{name: "empty", customID: ""},
		{name: "buy without role", customID: "buy_"},
		{name: "non-numeric page", customID: "next_page_abc"},
		{name: "negative page", customID: "prev_page_-1"},
		{name: "giveaway without ID", customID: "giveaway_enter_"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			action, err := ParseComponentAction(tt.customID)

			assert.Error(t, err)
			assert.Nil(t, action)
		})
	}
}
