package models_test

import (
	"testing"
	"time"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   models.BookingStatus
		wantOk bool
	}{
		{"pending", models.StatusPending, true},
		{"confirmed", models.StatusConfirmed, true},
		{"CONFIRMED", models.StatusConfirmed, true},
		{"accepted", models.StatusConfirmed, true},
		{"Accepted", models.StatusConfirmed, true},
		{"cancelled", models.StatusCancelled, true},
		{"rejected", models.StatusCancelled, true},
		{"REJECTED", models.StatusCancelled, true},
		{"completed", models.StatusCompleted, true},
		{"  confirmed  ", models.StatusConfirmed, true},
		{"unknown", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := models.NormalizeStatus(tt.in)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPassengerFactor(t *testing.T) {
	assert.InDelta(t, 1.0, models.PassengerFactor(1), 1e-9)
	assert.InDelta(t, 1.1, models.PassengerFactor(2), 1e-9)
	assert.InDelta(t, 1.4, models.PassengerFactor(5), 1e-9)
	// counts below one clamp to a single passenger
	assert.InDelta(t, 1.0, models.PassengerFactor(0), 1e-9)
}

func TestRentalDays(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	// no explicit return date means pickup + 1 day upstream
	assert.Equal(t, 1, models.RentalDays(day("2025-01-01"), day("2025-01-02")))
	assert.Equal(t, 4, models.RentalDays(day("2025-01-01"), day("2025-01-05")))
	// same-day and inverted ranges floor at one day
	assert.Equal(t, 1, models.RentalDays(day("2025-01-01"), day("2025-01-01")))
	assert.Equal(t, 1, models.RentalDays(day("2025-01-05"), day("2025-01-01")))
	// partial days round up
	assert.Equal(t, 2, models.RentalDays(day("2025-01-01"), day("2025-01-02").Add(6*time.Hour)))
}

func TestCreateTripRequestMissingFields(t *testing.T) {
	req := models.CreateTripRequest{}
	assert.Equal(t,
		[]string{"user_id", "car_id", "pickup_date", "pickup_time", "pickup_location", "dropoff_location"},
		req.MissingFields())

	req.PickupDate = "2025-06-01"
	req.PickupTime = "10:00"
	assert.Equal(t,
		[]string{"user_id", "car_id", "pickup_location", "dropoff_location"},
		req.MissingFields())
}
