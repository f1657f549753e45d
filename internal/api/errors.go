package api

import (
	"errors"
	"net/http"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/utils"
	"github.com/google/uuid"
)

func getApiError(err error) utils.ApiError {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		return utils.NewBadRequest(ve.Error())
	case errors.Is(err, models.ErrInvalidUUID):
		return utils.NewBadRequest(err.Error())
	case errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrTripNotFound),
		errors.Is(err, models.ErrVehicleNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrNoBookingsForUser):
		return utils.NewNotFound(err.Error())
	default:
		// Persistence failures stay generic; no internal detail leaves
		// the boundary.
		return utils.NewInternalServerError("internal server error")
	}
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, models.ErrInvalidUUID
	}
	return id, nil
}
