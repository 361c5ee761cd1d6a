package repository

import (
	"context"
	"fmt"
	"time"

	"shopkeeper/domain/entities"

	"github.com/hashicorp/golang-lru/v2/expirable"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	// itemsCacheTTL bounds how stale the shop listing can get. Items are
	// edited by hand in the sheet, so a short TTL is enough.
	itemsCacheTTL = 5 * time.Minute

	itemsCacheKey = "items"
)

// ShopItemRepository implements the ShopItemRepository interface over the
// Items table. Rows are [name, price, roleID, imageRef, description].
// The table is read-only reference data, cached with a TTL and reloaded
// through a singleflight group so concurrent cache misses cost one read.
type ShopItemRepository struct {
	store RowStore
	cache *expirable.LRU[string, []*entities.ShopItem]
	group singleflight.Group
}

// NewShopItemRepository creates a new shop item repository
func NewShopItemRepository(store RowStore) *ShopItemRepository {
	return &ShopItemRepository{
		store: store,
		cache: expirable.NewLRU[string, []*entities.ShopItem](1, nil, itemsCacheTTL),
	}
}

// ListItems returns all well-formed shop items in sheet order. Rows that
// fail to parse are listed with sentinel values and filtered out here, so
// one bad row never hides the rest of the shop.
func (r *ShopItemRepository) ListItems(ctx context.Context) ([]*entities.ShopItem, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*entities.ShopItem, 0, len(all))
	for _, item := range all {
		if item.Valid() {
			items = append(items, item)
		}
	}
	return items, nil
}

// GetByRoleID retrieves an item by its role ID, or nil if not listed.
// Malformed rows are not purchasable.
func (r *ShopItemRepository) GetByRoleID(ctx context.Context, roleID string) (*entities.ShopItem, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range all {
		if item.Valid() && item.RoleID == roleID {
			return item, nil
		}
	}
	return nil, nil
}

func (r *ShopItemRepository) load(ctx context.Context) ([]*entities.ShopItem, error) {
	if items, ok := r.cache.Get(itemsCacheKey); ok {
		return items, nil
	}

	result, err, _ := r.group.Do(itemsCacheKey, func() (interface{}, error) {
		rows, err := r.store.Rows(ctx, TableItems)
		if err != nil {
			return nil, fmt.Errorf("failed to read items table: %w", err)
		}

		items := make([]*entities.ShopItem, 0, len(rows))
		for _, row := range rows {
			items = append(items, parseShopItem(row))
		}
		r.cache.Add(itemsCacheKey, items)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*entities.ShopItem), nil
}

// parseShopItem maps an Items row to an item. A row missing its price or
// role ID parses to sentinel values instead of failing the whole read.
func parseShopItem(row Row) *entities.ShopItem {
	item := &entities.ShopItem{
		Name:        row.Cell(0),
		RoleID:      row.Cell(2),
		ImageRef:    row.Cell(3),
		Description: row.Cell(4),
	}

	price, err := parseInt64(row.Cell(1))
	if err != nil {
		log.WithFields(log.Fields{
			"row":  row.Index,
			"name": item.Name,
		}).Warn("malformed items row, assigning sentinel values")
		item.Price = entities.SentinelPrice
		item.RoleID = entities.SentinelRoleID
		return item
	}
	item.Price = price

	if item.RoleID == "" {
		item.RoleID = entities.SentinelRoleID
		item.Price = entities.SentinelPrice
	}
	return item
}
