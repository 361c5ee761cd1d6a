package services

import (
	"context"
	"time"

	"shopkeeper/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// cooldownService enforces a once-per-rolling-window policy over a per-user
// last-used timestamp row. One instance per action type; each is backed by
// its own table.
type cooldownService struct {
	usageRepo interfaces.ActionUsageRepository
	window    time.Duration
	now       func() time.Time
}

// NewCooldownService creates a cooldown service with the given window
func NewCooldownService(usageRepo interfaces.ActionUsageRepository, window time.Duration) interfaces.CooldownService {
	return &cooldownService{
		usageRepo: usageRepo,
		window:    window,
		now:       time.Now,
	}
}

// CanAct reports whether the window has fully elapsed since last use.
// A read error fails open: the action is allowed rather than blocked.
func (s *cooldownService) CanAct(ctx context.Context, userID string) bool {
	usage, err := s.usageRepo.GetByUser(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("userID", userID).
			Warn("cooldown read failed, allowing action")
		return true
	}
	if usage == nil {
		return true
	}
	return s.now().Sub(usage.LastUsed) >= s.window
}

// NextEligibleTime returns lastUsed + window, or now if the user has never
// used the action or the record cannot be read
func (s *cooldownService) NextEligibleTime(ctx context.Context, userID string) time.Time {
	usage, err := s.usageRepo.GetByUser(ctx, userID)
	if err != nil || usage == nil {
		return s.now()
	}
	return usage.EligibleAt(s.window)
}

// RecordUse upserts the current timestamp for the user
func (s *cooldownService) RecordUse(ctx context.Context, userID string) error {
	return s.usageRepo.Upsert(ctx, userID, s.now())
}
