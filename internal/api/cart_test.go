package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/api"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCartService struct {
	mock.Mock
}

func (m *mockCartService) CartForUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func TestCartHandler(t *testing.T) {
	userID := uuid.New()

	t.Run("renders the aggregated cart", func(t *testing.T) {
		svc := new(mockCartService)
		tripID := uuid.New()
		svc.On("CartForUser", mock.Anything, userID).Return([]models.CartItem{
			{
				ID:        tripID.String(),
				BookingID: uuid.New(),
				TripID:    &tripID,
				UserID:    userID,
				Brand:     "BMW",
				Model:     "X5",
				DailyRate: 500,
				Days:      4,
				Status:    models.StatusConfirmed,
			},
			{
				ID:              "temp-" + uuid.NewString(),
				BookingID:       uuid.New(),
				UserID:          userID,
				Brand:           "Unknown",
				Model:           "Unknown Model",
				TripFallback:    true,
				VehicleFallback: true,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/cart/"+userID.String(), nil)
		req.SetPathValue("user_id", userID.String())
		rec := httptest.NewRecorder()

		api.CartHandler(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var items []models.CartItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
		require.Len(t, items, 2)
		assert.False(t, items[0].TripFallback)
		assert.True(t, items[1].TripFallback)
		assert.True(t, items[1].VehicleFallback)
	})

	t.Run("no bookings answers 404", func(t *testing.T) {
		svc := new(mockCartService)
		svc.On("CartForUser", mock.Anything, userID).Return(nil, models.ErrNoBookingsForUser)

		req := httptest.NewRequest(http.MethodGet, "/api/cart/"+userID.String(), nil)
		req.SetPathValue("user_id", userID.String())
		rec := httptest.NewRecorder()

		api.CartHandler(svc)(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed user id answers 400", func(t *testing.T) {
		svc := new(mockCartService)

		req := httptest.NewRequest(http.MethodGet, "/api/cart/abc", nil)
		req.SetPathValue("user_id", "abc")
		rec := httptest.NewRecorder()

		api.CartHandler(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CartForUser", mock.Anything, mock.Anything)
	})
}
