package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentcar-bot/internal/domain"
)

func TestCatalogService_EnsureSeeded(t *testing.T) {
	t.Run("empty catalog gets the starter fleet", func(t *testing.T) {
		cars := new(MockCarRepository)
		cars.On("Count", mock.Anything).Return(int64(0), nil).Once()
		cars.On("Seed", mock.Anything, mock.AnythingOfType("[]domain.Car")).Return(nil).Once()

		svc := NewCatalogService(cars)
		assert.NoError(t, svc.EnsureSeeded(context.Background()))
		cars.AssertExpectations(t)

		seeded := cars.Calls[1].Arguments.Get(1).([]domain.Car)
		assert.Len(t, seeded, 13)
	})

	t.Run("populated catalog is left alone", func(t *testing.T) {
		cars := new(MockCarRepository)
		cars.On("Count", mock.Anything).Return(int64(13), nil).Once()

		svc := NewCatalogService(cars)
		assert.NoError(t, svc.EnsureSeeded(context.Background()))
		cars.AssertNotCalled(t, "Seed", mock.Anything, mock.Anything)
	})

	t.Run("count failure propagates", func(t *testing.T) {
		cars := new(MockCarRepository)
		cars.On("Count", mock.Anything).Return(int64(0), errors.New("no database")).Once()

		svc := NewCatalogService(cars)
		assert.Error(t, svc.EnsureSeeded(context.Background()))
	})
}

func TestStarterFleetShape(t *testing.T) {
	fleet := starterFleet()

	byCategory := map[domain.CarCategory]int{}
	for _, car := range fleet {
		byCategory[car.Category]++
		assert.True(t, car.Available)
		assert.Greater(t, car.DayRateCLP, int64(0))
	}
	assert.Equal(t, 6, byCategory[domain.CarCategoryEconomy])
	assert.Equal(t, 4, byCategory[domain.CarCategorySUV])
	assert.Equal(t, 3, byCategory[domain.CarCategoryPremium])
}
