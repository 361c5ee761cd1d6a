package entities

import "time"

// ActionUsage records the last time a user performed a rate-limited action
// (daily reward claim, coinflip). One row per user per action table.
type ActionUsage struct {
	UserID   string
	LastUsed time.Time
}

// EligibleAt returns the end of the cooldown window started by this usage.
func (a *ActionUsage) EligibleAt(window time.Duration) time.Time {
	return a.LastUsed.Add(window)
}

// LeaderboardEntry is a derived accumulator updated whenever a reward is
// earned. It never decreases.
type LeaderboardEntry struct {
	UserID      string
	TotalEarned int64
	DailyClaims int64
}
