package services_test

import (
	"net/http"
	"testing"

	"github.com/greencity/wastetrack/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRewardBalance_NewUserHasZero(t *testing.T) {
	repo := new(MockUserDataRepository)
	svc := services.NewUserDataService(repo)

	repo.On("GetRewardBalance", uint(5)).Return(0, nil)

	balance, err := svc.GetRewardBalance(5)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestUpdateAddress(t *testing.T) {
	repo := new(MockUserDataRepository)
	svc := services.NewUserDataService(repo)

	repo.On("UpsertAddress", uint(5), "12 Main St").Return(nil)

	require.NoError(t, svc.UpdateAddress(5, "12 Main St"))
	repo.AssertExpectations(t)
}

func TestRequestMissedPickup_RequiresAddress(t *testing.T) {
	t.Run("no row", func(t *testing.T) {
		repo := new(MockUserDataRepository)
		svc := services.NewUserDataService(repo)

		repo.On("GetAddress", uint(5)).Return(nil, nil)

		err := svc.RequestMissedPickup(5)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apiStatus(t, err))
	})

	t.Run("empty address", func(t *testing.T) {
		repo := new(MockUserDataRepository)
		svc := services.NewUserDataService(repo)

		empty := ""
		repo.On("GetAddress", uint(5)).Return(&empty, nil)

		err := svc.RequestMissedPickup(5)
		require.Error(t, err)
	})

	t.Run("saved address", func(t *testing.T) {
		repo := new(MockUserDataRepository)
		svc := services.NewUserDataService(repo)

		address := "12 Main St"
		repo.On("GetAddress", uint(5)).Return(&address, nil)

		require.NoError(t, svc.RequestMissedPickup(5))
	})
}
