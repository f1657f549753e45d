package validator_test

import (
	"testing"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/validator"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateCreateTripRequest(t *testing.T) {
	v := validator.NewCustomValidator()

	base := func() models.CreateTripRequest {
		return models.CreateTripRequest{
			UserID:          uuid.New(),
			CarID:           uuid.New(),
			ServiceType:     "one-way",
			Passengers:      2,
			PickupDate:      "2025-06-01",
			PickupTime:      "10:00",
			PickupLocation:  "Airport",
			DropoffLocation: "Hotel",
		}
	}

	t.Run("valid request", func(t *testing.T) {
		assert.NoError(t, v.Validate(base()))
	})

	t.Run("unknown service type", func(t *testing.T) {
		req := base()
		req.ServiceType = "teleport"
		assert.Error(t, v.Validate(req))
	})

	t.Run("passenger count over the limit", func(t *testing.T) {
		req := base()
		req.Passengers = 15
		assert.Error(t, v.Validate(req))
	})

	t.Run("malformed pickup date", func(t *testing.T) {
		req := base()
		req.PickupDate = "01-06-2025"
		assert.Error(t, v.Validate(req))
	})
}

func TestBookingStatusTag(t *testing.T) {
	v := validator.NewCustomValidator()

	type payload struct {
		Status string `validate:"booking_status"`
	}

	assert.NoError(t, v.Validate(payload{Status: "confirmed"}))
	assert.NoError(t, v.Validate(payload{Status: "ACCEPTED"}))
	assert.Error(t, v.Validate(payload{Status: "archived"}))
}

func TestValidateCreateReviewRequest(t *testing.T) {
	v := validator.NewCustomValidator()

	req := models.CreateReviewRequest{
		UserID: uuid.New(),
		CarID:  uuid.New(),
		Rating: 5,
	}
	assert.NoError(t, v.Validate(req))

	req.Rating = 0
	assert.Error(t, v.Validate(req))
}
