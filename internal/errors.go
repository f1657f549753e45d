package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrTripNotFound      = errors.New("trip not found")
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrNoBookingsForUser = errors.New("no bookings found for this user")
	ErrInvalidUUID       = errors.New("invalid uuid")
)

// ValidationError is a caller error naming the missing or invalid fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}
