package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"shopkeeper/domain/entities"
	"shopkeeper/domain/interfaces"

	"github.com/google/uuid"
)

// RecentWinnerCooldown is how long a win anywhere excludes a participant
// from future draws
const RecentWinnerCooldown = 60 * 24 * time.Hour

// giveawayService implements giveaway lifecycle and winner selection
type giveawayService struct {
	giveawayRepo    interfaces.GiveawayRepository
	participantRepo interfaces.GiveawayParticipantRepository
	winnerRepo      interfaces.GiveawayWinnerRepository
	now             func() time.Time
}

// NewGiveawayService creates a new giveaway service
func NewGiveawayService(
	giveawayRepo interfaces.GiveawayRepository,
	participantRepo interfaces.GiveawayParticipantRepository,
	winnerRepo interfaces.GiveawayWinnerRepository,
) interfaces.GiveawayService {
	return &giveawayService{
		giveawayRepo:    giveawayRepo,
		participantRepo: participantRepo,
		winnerRepo:      winnerRepo,
		now:             time.Now,
	}
}

// Create stores a new active giveaway
func (s *giveawayService) Create(ctx context.Context, params interfaces.CreateGiveawayParams) (*entities.Giveaway, error) {
	if params.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if params.Prize == "" {
		return nil, fmt.Errorf("prize is required")
	}
	if params.WinnersCount <= 0 {
		return nil, fmt.Errorf("winners count must be positive, got %d", params.WinnersCount)
	}
	if params.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	now := s.now().UTC()
	giveaway := &entities.Giveaway{
		ID:           uuid.NewString(),
		Title:        params.Title,
		Description:  params.Description,
		Prize:        params.Prize,
		WinnersCount: params.WinnersCount,
		EndTime:      now.Add(params.Duration),
		CreatorID:    params.CreatorID,
		CreatedAt:    now,
		Status:       entities.GiveawayStatusActive,
	}

	if err := s.giveawayRepo.Create(ctx, giveaway); err != nil {
		return nil, fmt.Errorf("failed to create giveaway: %w", err)
	}
	return giveaway, nil
}

// SetMessage records the posted embed's channel and message IDs
func (s *giveawayService) SetMessage(ctx context.Context, giveawayID, channelID, messageID string) error {
	giveaway, err := s.giveawayRepo.GetByID(ctx, giveawayID)
	if err != nil {
		return fmt.Errorf("failed to get giveaway: %w", err)
	}
	if giveaway == nil {
		return ErrGiveawayNotFound
	}

	giveaway.SetMessage(channelID, messageID)
	if err := s.giveawayRepo.Update(ctx, giveaway); err != nil {
		return fmt.Errorf("failed to update giveaway message: %w", err)
	}
	return nil
}

// Join enters a user into an active giveaway. Duplicate entries are
// rejected after a check against the participant log.
func (s *giveawayService) Join(ctx context.Context, giveawayID, userID string) error {
	giveaway, err := s.giveawayRepo.GetByID(ctx, giveawayID)
	if err != nil {
		return fmt.Errorf("failed to get giveaway: %w", err)
	}
	if giveaway == nil {
		return ErrGiveawayNotFound
	}
	if giveaway.IsEnded() {
		return ErrGiveawayEnded
	}

	joined, err := s.participantRepo.Exists(ctx, giveawayID, userID)
	if err != nil {
		return fmt.Errorf("failed to check participation: %w", err)
	}
	if joined {
		return ErrAlreadyJoined
	}

	participant := &entities.GiveawayParticipant{
		GiveawayID: giveawayID,
		UserID:     userID,
		JoinedAt:   s.now().UTC(),
	}
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return fmt.Errorf("failed to record participant: %w", err)
	}
	return nil
}

// End draws winners and transitions the giveaway to ended. Ending an
// already-ended giveaway is an error, not a no-op.
func (s *giveawayService) End(ctx context.Context, giveawayID string) (*interfaces.GiveawayDrawResult, error) {
	giveaway, err := s.giveawayRepo.GetByID(ctx, giveawayID)
	if err != nil {
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}
	if giveaway == nil {
		return nil, ErrGiveawayNotFound
	}
	if giveaway.IsEnded() {
		return nil, ErrGiveawayEnded
	}

	winners, err := s.selectWinners(ctx, giveawayID, giveaway.WinnersCount)
	if err != nil {
		return nil, err
	}

	giveaway.End()
	if err := s.giveawayRepo.Update(ctx, giveaway); err != nil {
		return nil, fmt.Errorf("failed to mark giveaway ended: %w", err)
	}

	return &interfaces.GiveawayDrawResult{Giveaway: giveaway, WinnerIDs: winners}, nil
}

// Reroll re-draws winners of an ended giveaway. Only the cross-giveaway
// recent-winner exclusion applies, so previous winners of this giveaway can
// recur.
func (s *giveawayService) Reroll(ctx context.Context, giveawayID string) (*interfaces.GiveawayDrawResult, error) {
	giveaway, err := s.giveawayRepo.GetByID(ctx, giveawayID)
	if err != nil {
		return nil, fmt.Errorf("failed to get giveaway: %w", err)
	}
	if giveaway == nil {
		return nil, ErrGiveawayNotFound
	}
	if !giveaway.IsEnded() {
		return nil, ErrGiveawayNotEnded
	}

	winners, err := s.selectWinners(ctx, giveawayID, giveaway.WinnersCount)
	if err != nil {
		return nil, err
	}

	return &interfaces.GiveawayDrawResult{Giveaway: giveaway, WinnerIDs: winners}, nil
}

// selectWinners samples desiredCount winners uniformly from the participant
// list, excluding anyone who won any giveaway recently. If the exclusion
// empties the pool entirely, the unfiltered list is used instead so a
// giveaway never fails to award a prize. Winners are recorded in the audit
// log before they are returned.
func (s *giveawayService) selectWinners(ctx context.Context, giveawayID string, desiredCount int) ([]string, error) {
	participants, err := s.participantRepo.GetByGiveaway(ctx, giveawayID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	if len(participants) == 0 {
		return nil, nil
	}

	recent, err := s.winnerRepo.GetWinnersSince(ctx, s.now().Add(-RecentWinnerCooldown))
	if err != nil {
		return nil, fmt.Errorf("failed to get recent winners: %w", err)
	}
	recentSet := make(map[string]bool, len(recent))
	for _, w := range recent {
		recentSet[w.UserID] = true
	}

	pool := make([]string, 0, len(participants))
	for _, p := range participants {
		if !recentSet[p.UserID] {
			pool = append(pool, p.UserID)
		}
	}
	if len(pool) == 0 {
		pool = make([]string, 0, len(participants))
		for _, p := range participants {
			pool = append(pool, p.UserID)
		}
	}

	count := desiredCount
	if count > len(pool) {
		count = len(pool)
	}

	winners, err := drawUniform(pool, count)
	if err != nil {
		return nil, err
	}

	wonAt := s.now().UTC()
	for _, userID := range winners {
		record := &entities.GiveawayWinner{
			GiveawayID: giveawayID,
			UserID:     userID,
			WonAt:      wonAt,
		}
		if err := s.winnerRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to record winner: %w", err)
		}
	}

	return winners, nil
}

// drawUniform takes the first count entries of a uniform random permutation
// of pool. Partial Fisher-Yates: only the prefix is shuffled.
func drawUniform(pool []string, count int) ([]string, error) {
	for i := 0; i < count; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool)-i)))
		if err != nil {
			return nil, fmt.Errorf("random generation failed: %w", err)
		}
		j := i + int(n.Int64())
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}
