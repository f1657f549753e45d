package service_test

import (
	"context"
	"testing"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/mocks"
	"github.com/chauffeurlux/rental-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockVehicleCache struct {
	mock.Mock
}

func (m *mockVehicleCache) GetVehicle(ctx context.Context, carID uuid.UUID) (*models.Vehicle, bool) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*models.Vehicle), args.Bool(1)
}

func (m *mockVehicleCache) SetVehicle(ctx context.Context, v *models.Vehicle) {
	m.Called(ctx, v)
}

func (m *mockVehicleCache) GetImages(ctx context.Context, carID uuid.UUID) ([]string, bool) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]string), args.Bool(1)
}

func (m *mockVehicleCache) SetImages(ctx context.Context, carID uuid.UUID, urls []string) {
	m.Called(ctx, carID, urls)
}

func TestVehicleByID(t *testing.T) {
	carID := uuid.New()
	vehicle := &models.Vehicle{ID: carID, Brand: "BMW", ModelName: "X5", RentalPricePerDay: 500}

	t.Run("nil cache goes straight to the store", func(t *testing.T) {
		store := new(mocks.MockVehicleStore)
		svc := service.NewVehicleService(store, nil)

		store.On("VehicleByID", mock.Anything, carID).Return(vehicle, nil)

		got, err := svc.VehicleByID(context.Background(), carID)
		require.NoError(t, err)
		assert.Equal(t, vehicle, got)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		store := new(mocks.MockVehicleStore)
		cache := new(mockVehicleCache)
		svc := service.NewVehicleService(store, cache)

		cache.On("GetVehicle", mock.Anything, carID).Return(vehicle, true)

		got, err := svc.VehicleByID(context.Background(), carID)
		require.NoError(t, err)
		assert.Equal(t, vehicle, got)
		store.AssertNotCalled(t, "VehicleByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss fetches and backfills", func(t *testing.T) {
		store := new(mocks.MockVehicleStore)
		cache := new(mockVehicleCache)
		svc := service.NewVehicleService(store, cache)

		cache.On("GetVehicle", mock.Anything, carID).Return(nil, false)
		store.On("VehicleByID", mock.Anything, carID).Return(vehicle, nil)
		cache.On("SetVehicle", mock.Anything, vehicle).Return()

		got, err := svc.VehicleByID(context.Background(), carID)
		require.NoError(t, err)
		assert.Equal(t, vehicle, got)
		cache.AssertExpectations(t)
	})

	t.Run("store miss is not cached", func(t *testing.T) {
		store := new(mocks.MockVehicleStore)
		cache := new(mockVehicleCache)
		svc := service.NewVehicleService(store, cache)

		cache.On("GetVehicle", mock.Anything, carID).Return(nil, false)
		store.On("VehicleByID", mock.Anything, carID).Return(nil, models.ErrVehicleNotFound)

		got, err := svc.VehicleByID(context.Background(), carID)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, models.ErrVehicleNotFound)
		cache.AssertNotCalled(t, "SetVehicle", mock.Anything, mock.Anything)
	})
}

func TestImagesByCar(t *testing.T) {
	carID := uuid.New()
	urls := []string{"/images/x5-front.jpg", "/images/x5-side.jpg"}

	t.Run("cache hit", func(t *testing.T) {
		store := new(mocks.MockVehicleStore)
		cache := new(mockVehicleCache)
		svc := service.NewVehicleService(store, cache)

		cache.On("GetImages", mock.Anything, carID).Return(urls, true)

		got, err := svc.ImagesByCar(context.Background(), carID)
		require.NoError(t, err)
		assert.Equal(t, urls, got)
		store.AssertNotCalled(t, "ImagesByCar", mock.Anything, mock.Anything)
	})

	t.Run("cache miss backfills", func(t *testing.T) {
		store := new(mocks.MockVehicleStore)
		cache := new(mockVehicleCache)
		svc := service.NewVehicleService(store, cache)

		cache.On("GetImages", mock.Anything, carID).Return(nil, false)
		store.On("ImagesByCar", mock.Anything, carID).Return(urls, nil)
		cache.On("SetImages", mock.Anything, carID, urls).Return()

		got, err := svc.ImagesByCar(context.Background(), carID)
		require.NoError(t, err)
		assert.Equal(t, urls, got)
		cache.AssertExpectations(t)
	})
}
