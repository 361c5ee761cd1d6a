package repository

import (
	"context"
	"fmt"

	"shopkeeper/domain/entities"
)

// GiveawayRepository implements the GiveawayRepository interface over the
// Giveaways table. Rows are [id, title, description, prize, winnersCount,
// endTime, channelID, messageID, creatorID, createdAt, status].
type GiveawayRepository struct {
	store RowStore
}

// NewGiveawayRepository creates a new giveaway repository
func NewGiveawayRepository(store RowStore) *GiveawayRepository {
	return &GiveawayRepository{store: store}
}

// Create stores a new giveaway
func (r *GiveawayRepository) Create(ctx context.Context, giveaway *entities.Giveaway) error {
	if err := r.store.Append(ctx, TableGiveaways, giveawayValues(giveaway)); err != nil {
		return fmt.Errorf("failed to append giveaway: %w", err)
	}
	return nil
}

// GetByID retrieves a giveaway, or nil if unknown
func (r *GiveawayRepository) GetByID(ctx context.Context, id string) (*entities.Giveaway, error) {
	rows, err := r.store.Rows(ctx, TableGiveaways)
	if err != nil {
		return nil, fmt.Errorf("failed to read giveaways table: %w", err)
	}

	for _, row := range rows {
		if row.Cell(0) == id {
			return parseGiveawayRow(row), nil
		}
	}
	return nil, nil
}

// Update overwrites a giveaway's row
func (r *GiveawayRepository) Update(ctx context.Context, giveaway *entities.Giveaway) error {
	rows, err := r.store.Rows(ctx, TableGiveaways)
	if err != nil {
		return fmt.Errorf("failed to read giveaways table: %w", err)
	}

	for _, row := range rows {
		if row.Cell(0) == giveaway.ID {
			if err := r.store.Update(ctx, TableGiveaways, row.Index, giveawayValues(giveaway)); err != nil {
				return fmt.Errorf("failed to update giveaway %s: %w", giveaway.ID, err)
			}
			return nil
		}
	}
	return fmt.Errorf("no row for giveaway %s", giveaway.ID)
}

func giveawayValues(g *entities.Giveaway) []string {
	return []string{
		g.ID,
		g.Title,
		g.Description,
		g.Prize,
		formatInt64(int64(g.WinnersCount)),
		formatTime(g.EndTime),
		g.ChannelID,
		g.MessageID,
		g.CreatorID,
		formatTime(g.CreatedAt),
		string(g.Status),
	}
}

func parseGiveawayRow(row Row) *entities.Giveaway {
	winnersCount, _ := parseInt64(row.Cell(4))
	return &entities.Giveaway{
		ID:           row.Cell(0),
		Title:        row.Cell(1),
		Description:  row.Cell(2),
		Prize:        row.Cell(3),
		WinnersCount: int(winnersCount),
		EndTime:      parseTime(row.Cell(5)),
		ChannelID:    row.Cell(6),
		MessageID:    row.Cell(7),
		CreatorID:    row.Cell(8),
		CreatedAt:    parseTime(row.Cell(9)),
		Status:       entities.GiveawayStatus(row.Cell(10)),
	}
}
