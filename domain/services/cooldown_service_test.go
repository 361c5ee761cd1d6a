package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopkeeper/domain/entities"
	"shopkeeper/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCooldownService_CanAct_Boundary(t *testing.T) {
	t.Parallel()

	window := 24 * time.Hour
	lastUsed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "one millisecond before the window elapses",
			now:  lastUsed.Add(window - time.Millisecond),
			want: false,
		},
		{
			name: "exactly at the window boundary",
			now:  lastUsed.Add(window),
			want: true,
		},
		{
			name: "well past the window",
			now:  lastUsed.Add(48 * time.Hour),
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			usageRepo := new(testhelpers.MockActionUsageRepository)
			usageRepo.On("GetByUser", mock.Anything, "u1").
				Return(&entities.ActionUsage{UserID: "u1", LastUsed: lastUsed}, nil)

			svc := NewCooldownService(usageRepo, window).(*cooldownService)
			svc.now = func() time.Time { return tt.now }

			assert.Equal(t, tt.want, svc.CanAct(context.Background(), "u1"))
		})
	}
}

func TestCooldownService_CanAct_NeverUsed(t *testing.T) {
	t.Parallel()

	usageRepo := new(testhelpers.MockActionUsageRepository)
	usageRepo.On("GetByUser", mock.Anything, "u1").Return(nil, nil)

	svc := NewCooldownService(usageRepo, 24*time.Hour)
	assert.True(t, svc.CanAct(context.Background(), "u1"))
}

func TestCooldownService_CanAct_ReadErrorFailsOpen(t *testing.T) {
	t.Parallel()

	usageRepo := new(testhelpers.MockActionUsageRepository)
	usageRepo.On("GetByUser", mock.Anything, "u1").Return(nil, errors.New("store unavailable"))

	svc := NewCooldownService(usageRepo, 24*time.Hour)
	assert.True(t, svc.CanAct(context.Background(), "u1"))
}

func TestCooldownService_NextEligibleTime(t *testing.T) {
	t.Parallel()

	window := 24 * time.Hour
	lastUsed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	usageRepo := new(testhelpers.MockActionUsageRepository)
	usageRepo.On("GetByUser", mock.Anything, "u1").
		Return(&entities.ActionUsage{UserID: "u1", LastUsed: lastUsed}, nil)
	usageRepo.On("GetByUser", mock.Anything, "u2").Return(nil, nil)

	now := lastUsed.Add(time.Hour)
	svc := NewCooldownService(usageRepo, window).(*cooldownService)
	svc.now = func() time.Time { return now }

	assert.Equal(t, lastUsed.Add(window), svc.NextEligibleTime(context.Background(), "u1"))
	// Never used means eligible now
	assert.Equal(t, now, svc.NextEligibleTime(context.Background(), "u2"))
}

func TestCooldownService_RecordUse(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	usageRepo := new(testhelpers.MockActionUsageRepository)
	usageRepo.On("Upsert", mock.Anything, "u1", now).Return(nil)

	svc := NewCooldownService(usageRepo, 24*time.Hour).(*cooldownService)
	svc.now = func() time.Time { return now }

	assert.NoError(t, svc.RecordUse(context.Background(), "u1"))
	usageRepo.AssertExpectations(t)
}
