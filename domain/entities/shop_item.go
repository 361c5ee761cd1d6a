package entities

const (
	// SentinelPrice is the price assigned to a malformed Items row
	SentinelPrice int64 = 999999
	// SentinelRoleID is the role ID assigned to a malformed Items row
	SentinelRoleID = "0"
)

// ShopItem is a purchasable cosmetic role listed in the Items table.
// Items are read-only reference data keyed by role ID.
type ShopItem struct {
	Name        string
	Price       int64
	RoleID      string
	ImageRef    string
	Description string
}

// Valid reports whether the item parsed cleanly from its backing row.
// Rows that fall back to sentinel values are filtered out of the shop.
func (i *ShopItem) Valid() bool {
	return i.RoleID != SentinelRoleID && i.Price != SentinelPrice
}
