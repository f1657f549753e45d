package validator

import (
	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("booking_status", validateBookingStatus)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	_, ok := models.NormalizeStatus(fl.Field().String())
	return ok
}
