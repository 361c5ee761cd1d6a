package services

import (
	"context"
	"errors"
	"testing"

	"shopkeeper/domain/entities"
	"shopkeeper/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBalanceService_GetBalance(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored balance", func(t *testing.T) {
		t.Parallel()

		userRepo := new(testhelpers.MockUserRepository)
		userRepo.On("GetOrCreate", mock.Anything, "u1").Return(&entities.User{UserID: "u1", Balance: 250}, nil)
		svc := NewBalanceService(userRepo)

		assert.Equal(t, int64(250), svc.GetBalance(context.Background(), "u1"))
	})

	t.Run("defaults to zero when the store is unavailable", func(t *testing.T) {
		t.Parallel()

		userRepo := new(testhelpers.MockUserRepository)
		userRepo.On("GetOrCreate", mock.Anything, "u1").Return(nil, errors.New("store unavailable"))
		svc := NewBalanceService(userRepo)

		assert.Equal(t, int64(0), svc.GetBalance(context.Background(), "u1"))
	})
}

func TestBalanceService_Credit(t *testing.T) {
	t.Parallel()

	t.Run("adds to the current balance", func(t *testing.T) {
		t.Parallel()

		userRepo := new(testhelpers.MockUserRepository)
		userRepo.On("GetOrCreate", mock.Anything, "u1").Return(&entities.User{UserID: "u1", Balance: 100}, nil)
		userRepo.On("UpdateBalance", mock.Anything, "u1", int64(130)).Return(nil)
		svc := NewBalanceService(userRepo)

		newBalance, err := svc.Credit(context.Background(), "u1", 30)

		require.NoError(t, err)
		assert.Equal(t, int64(130), newBalance)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		t.Parallel()

		userRepo := new(testhelpers.MockUserRepository)
		svc := NewBalanceService(userRepo)

		_, err := svc.Credit(context.Background(), "u1", 0)

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBalanceService_Debit(t *testing.T) {
	t.Parallel()

	t.Run("subtracts from the current balance", func(t *testing.T) {
		t.Parallel()

		userRepo := new(testhelpers.MockUserRepository)
		userRepo.On("GetOrCreate", mock.Anything, "u1").Return(&entities.User{UserID: "u1", Balance: 100}, nil)
		userRepo.On("UpdateBalance", mock.Anything, "u1", int64(70)).Return(nil)
		svc := NewBalanceService(userRepo)

		newBalance, err := svc.Debit(context.Background(), "u1", 30)

		require.NoError(t, err)
		assert.Equal(t, int64(70), newBalance)
	})

	t.Run("refuses to take the balance below zero", func(t *testing.T) {
		t.Parallel()

		userRepo := new(testhelpers.MockUserRepository)
		userRepo.On("GetOrCreate", mock.Anything, "u1").Return(&entities.User{UserID: "u1", Balance: 20}, nil)
		svc := NewBalanceService(userRepo)

		_, err := svc.Debit(context.Background(), "u1", 30)

		assert.ErrorIs(t, err, ErrInsufficientFunds)
		userRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	})
}
