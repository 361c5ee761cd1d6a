package repository

import (
	"context"
	"fmt"
	"time"

	"shopkeeper/domain/entities"
)

// GiveawayParticipantRepository implements the GiveawayParticipantRepository
// interface over the GiveawayParticipants table. Rows are
// [giveawayID, userID, joinedAt]; the table is append-only.
type GiveawayParticipantRepository struct {
	store RowStore
}

// NewGiveawayParticipantRepository creates a new participant repository
func NewGiveawayParticipantRepository(store RowStore) *GiveawayParticipantRepository {
	return &GiveawayParticipantRepository{store: store}
}

// Create appends a participant record
func (r *GiveawayParticipantRepository) Create(ctx context.Context, participant *entities.GiveawayParticipant) error {
	values := []string{participant.GiveawayID, participant.UserID, formatTime(participant.JoinedAt)}
	if err := r.store.Append(ctx, TableGiveawayParticipants, values); err != nil {
		return fmt.Errorf("failed to append participant: %w", err)
	}
	return nil
}

// Exists reports whether the user already entered the giveaway
func (r *GiveawayParticipantRepository) Exists(ctx context.Context, giveawayID, userID string) (bool, error) {
	rows, err := r.store.Rows(ctx, TableGiveawayParticipants)
	if err != nil {
		return false, fmt.Errorf("failed to read participants table: %w", err)
	}

	for _, row := range rows {
		if row.Cell(0) == giveawayID && row.Cell(1) == userID {
			return true, nil
		}
	}
	return false, nil
}

// GetByGiveaway returns all participants of a giveaway in entry order
func (r *GiveawayParticipantRepository) GetByGiveaway(ctx context.Context, giveawayID string) ([]*entities.GiveawayParticipant, error) {
	rows, err := r.store.Rows(ctx, TableGiveawayParticipants)
	if err != nil {
		return nil, fmt.Errorf("failed to read participants table: %w", err)
	}

	var participants []*entities.GiveawayParticipant
	for _, row := range rows {
		if row.Cell(0) != giveawayID {
			continue
		}
		participants = append(participants, &entities.GiveawayParticipant{
			GiveawayID: giveawayID,
			UserID:     row.Cell(1),
			JoinedAt:   parseTime(row.Cell(2)),
		})
	}
	return participants, nil
}

// GiveawayWinnerRepository implements the GiveawayWinnerRepository interface
// over the GiveawayWinners table. Rows are [giveawayID, userID, wonAt].
type GiveawayWinnerRepository struct {
	store RowStore
}

// NewGiveawayWinnerRepository creates a new winner repository
func NewGiveawayWinnerRepository(store RowStore) *GiveawayWinnerRepository {
	return &GiveawayWinnerRepository{store: store}
}

// Create appends a winner record
func (r *GiveawayWinnerRepository) Create(ctx context.Context, winner *entities.GiveawayWinner) error {
	values := []string{winner.GiveawayID, winner.UserID, formatTime(winner.WonAt)}
	if err := r.store.Append(ctx, TableGiveawayWinners, values); err != nil {
		return fmt.Errorf("failed to append winner: %w", err)
	}
	return nil
}

// GetWinnersSince returns all winner records won at or after since,
// across every giveaway
func (r *GiveawayWinnerRepository) GetWinnersSince(ctx context.Context, since time.Time) ([]*entities.GiveawayWinner, error) {
	rows, err := r.store.Rows(ctx, TableGiveawayWinners)
	if err != nil {
		return nil, fmt.Errorf("failed to read winners table: %w", err)
	}

	var winners []*entities.GiveawayWinner
	for _, row := range rows {
		wonAt := parseTime(row.Cell(2))
		if wonAt.Before(since) {
			continue
		}
		winners = append(winners, &entities.GiveawayWinner{
			GiveawayID: row.Cell(0),
			UserID:     row.Cell(1),
			WonAt:      wonAt,
		})
	}
	return winners, nil
}
