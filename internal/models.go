package models

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// NormalizeStatus maps client-supplied status strings onto the booking
// status enum. Matching is case-insensitive; "accepted" and "rejected"
// are legacy synonyms for CONFIRMED and CANCELLED.
func NormalizeStatus(s string) (BookingStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "PENDING":
		return StatusPending, true
	case "CONFIRMED", "ACCEPTED":
		return StatusConfirmed, true
	case "CANCELLED", "REJECTED":
		return StatusCancelled, true
	case "COMPLETED":
		return StatusCompleted, true
	}
	return "", false
}

// PassengerFactor is the linear price multiplier applied per passenger
// beyond the first.
func PassengerFactor(passengers int) float64 {
	if passengers < 1 {
		passengers = 1
	}
	return 1 + float64(passengers-1)*0.1
}

// RentalDays returns max(1, ceil((ret - pickup) / 24h)).
func RentalDays(pickup, ret time.Time) int {
	days := int(math.Ceil(ret.Sub(pickup).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

type Booking struct {
	ID        uuid.UUID     `json:"booking_id"`
	UserID    uuid.UUID     `json:"user_id"`
	CarID     uuid.UUID     `json:"car_id"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type Trip struct {
	ID              uuid.UUID  `json:"trip_id"`
	BookingID       uuid.UUID  `json:"booking_id"`
	ServiceType     string     `json:"service_type"`
	Passengers      int        `json:"passengers"`
	PickupDate      time.Time  `json:"pickup_date"`
	PickupTime      string     `json:"pickup_time"`
	ReturnDate      *time.Time `json:"return_date,omitempty"`
	PickupLocation  string     `json:"pickup_location"`
	DropoffLocation string     `json:"dropoff_location"`
	SpecialRequests string     `json:"special_requests,omitempty"`
	BasePrice       float64    `json:"base_price"`
	PassengerFactor float64    `json:"passenger_factor"`
	TotalPrice      float64    `json:"total_price"`
}

// TripDetail joins a trip with its booking status, the booking owner's
// profile and the booked vehicle.
type TripDetail struct {
	Trip
	UserID        uuid.UUID     `json:"user_id"`
	BookingStatus BookingStatus `json:"booking_status"`
	FullName      string        `json:"full_name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Brand         string        `json:"brand"`
	ModelName     string        `json:"model_name"`
}

type Vehicle struct {
	ID                uuid.UUID `json:"car_id"`
	Brand             string    `json:"brand"`
	ModelName         string    `json:"model_name"`
	Year              int       `json:"year"`
	Color             string    `json:"color"`
	RentalPricePerDay float64   `json:"rental_price_per_day"`
	ImageURL          string    `json:"image_url,omitempty"`
}

type Review struct {
	ID         uuid.UUID `json:"review_id"`
	UserID     uuid.UUID `json:"user_id"`
	CarID      uuid.UUID `json:"car_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	ReviewDate time.Time `json:"review_date"`
	UserName   string    `json:"user_name,omitempty"`
}

type CreateTripRequest struct {
	UserID          uuid.UUID `json:"user_id"`
	CarID           uuid.UUID `json:"car_id"`
	ServiceType     string    `json:"service_type" validate:"omitempty,oneof=one-way round-trip hourly"`
	Passengers      int       `json:"passengers" validate:"omitempty,min=1,max=14"`
	PickupDate      string    `json:"pickup_date" validate:"omitempty,datetime=2006-01-02"`
	PickupTime      string    `json:"pickup_time"`
	ReturnDate      string    `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
	PickupLocation  string    `json:"pickup_location" validate:"omitempty,max=255"`
	DropoffLocation string    `json:"dropoff_location" validate:"omitempty,max=255"`
	SpecialRequests string    `json:"special_requests" validate:"max=1000"`
}

// MissingFields lists the required fields absent from the request.
func (r *CreateTripRequest) MissingFields() []string {
	var missing []string
	if r.UserID == uuid.Nil {
		missing = append(missing, "user_id")
	}
	if r.CarID == uuid.Nil {
		missing = append(missing, "car_id")
	}
	if r.PickupDate == "" {
		missing = append(missing, "pickup_date")
	}
	if r.PickupTime == "" {
		missing = append(missing, "pickup_time")
	}
	if r.PickupLocation == "" {
		missing = append(missing, "pickup_location")
	}
	if r.DropoffLocation == "" {
		missing = append(missing, "dropoff_location")
	}
	return missing
}

type CreateTripResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	TripID    uuid.UUID `json:"trip_id"`
	Message   string    `json:"message"`
}

type UpdateTripRequest struct {
	Status          *string  `json:"status,omitempty"`
	ServiceType     *string  `json:"service_type,omitempty" validate:"omitempty,oneof=one-way round-trip hourly"`
	Passengers      *int     `json:"passengers,omitempty" validate:"omitempty,min=1,max=14"`
	PickupDate      *string  `json:"pickup_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PickupTime      *string  `json:"pickup_time,omitempty"`
	ReturnDate      *string  `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PickupLocation  *string  `json:"pickup_location,omitempty" validate:"omitempty,max=255"`
	DropoffLocation *string  `json:"dropoff_location,omitempty" validate:"omitempty,max=255"`
	SpecialRequests *string  `json:"special_requests,omitempty" validate:"omitempty,max=1000"`
	BasePrice       *float64 `json:"base_price,omitempty" validate:"omitempty,gte=0"`
}

// HasTripFields reports whether the request carries anything beyond a
// status change.
func (r *UpdateTripRequest) HasTripFields() bool {
	return r.ServiceType != nil || r.Passengers != nil || r.PickupDate != nil ||
		r.PickupTime != nil || r.ReturnDate != nil || r.PickupLocation != nil ||
		r.DropoffLocation != nil || r.SpecialRequests != nil || r.BasePrice != nil
}

type UpdateBookingRequest struct {
	UserID uuid.UUID `json:"user_id"`
	CarID  uuid.UUID `json:"car_id"`
	Status string    `json:"status"`
}

type CreateReviewRequest struct {
	UserID  uuid.UUID `json:"user_id"`
	CarID   uuid.UUID `json:"car_id"`
	Rating  int       `json:"rating" validate:"required,min=1,max=5"`
	Comment string    `json:"comment" validate:"max=1000"`
}

type UpdateResult struct {
	Message string `json:"message"`
}

// CartItem is the derived, non-persisted record the rental cart renders
// for each booking of a user. TripFallback and VehicleFallback flag
// sub-fetches that failed and were replaced with defaults.
type CartItem struct {
	ID              string        `json:"id"`
	BookingID       uuid.UUID     `json:"booking_id"`
	TripID          *uuid.UUID    `json:"trip_id,omitempty"`
	UserID          uuid.UUID     `json:"user_id"`
	CarID           uuid.UUID     `json:"car_id"`
	Brand           string        `json:"brand"`
	Model           string        `json:"model"`
	Year            int           `json:"year"`
	Color           string        `json:"color"`
	Image           string        `json:"image"`
	DailyRate       float64       `json:"daily_rate"`
	Days            int           `json:"days"`
	PickupDate      string        `json:"pickup_date"`
	ReturnDate      string        `json:"return_date"`
	PickupLocation  string        `json:"pickup_location"`
	DropoffLocation string        `json:"dropoff_location"`
	Passengers      int           `json:"passengers"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	TripFallback    bool          `json:"trip_fallback"`
	VehicleFallback bool          `json:"vehicle_fallback"`
}
