package service

import (
	"context"
	"fmt"
	"time"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/ports"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type tripService struct {
	trips    ports.TripRepository
	bookings ports.BookingRepository
}

func NewTripService(trips ports.TripRepository, bookings ports.BookingRepository) *tripService {
	return &tripService{trips: trips, bookings: bookings}
}

// CreateTrip validates the payload and creates the booking and trip
// detail as one unit. Price derivation happens in the repository, inside
// the transaction that reads the vehicle's day-rate.
func (s *tripService) CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.CreateTripResponse, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, models.NewValidationError(missing...)
	}

	pickupDate, err := time.Parse(dateLayout, req.PickupDate)
	if err != nil {
		return nil, models.NewValidationError("pickup_date")
	}

	var returnDate *time.Time
	if req.ReturnDate != "" {
		rd, err := time.Parse(dateLayout, req.ReturnDate)
		if err != nil {
			return nil, models.NewValidationError("return_date")
		}
		returnDate = &rd
	}

	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = "one-way"
	}
	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}

	trip := &models.Trip{
		ServiceType:     serviceType,
		Passengers:      passengers,
		PickupDate:      pickupDate,
		PickupTime:      req.PickupTime,
		ReturnDate:      returnDate,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		SpecialRequests: req.SpecialRequests,
	}

	created, err := s.trips.CreateTrip(ctx, trip, req.UserID, req.CarID)
	if err != nil {
		return nil, fmt.Errorf("error creating trip: %w", err)
	}

	return &models.CreateTripResponse{
		BookingID: created.BookingID,
		TripID:    created.ID,
		Message:   "Booking and trip created successfully",
	}, nil
}

func (s *tripService) AllTrips(ctx context.Context) ([]models.TripDetail, error) {
	trips, err := s.trips.AllTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching trips: %w", err)
	}
	return trips, nil
}

func (s *tripService) TripByID(ctx context.Context, tripID uuid.UUID) (*models.TripDetail, error) {
	return s.trips.TripByID(ctx, tripID)
}

func (s *tripService) TripByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Trip, error) {
	return s.trips.TripByBookingID(ctx, bookingID)
}

// UpdateTrip mirrors a trip-scoped status change onto the parent booking
// before touching any trip fields. A status-only payload acknowledges
// without a trip write.
func (s *tripService) UpdateTrip(ctx context.Context, tripID uuid.UUID, req *models.UpdateTripRequest) (*models.UpdateResult, error) {
	if req.Status == nil && !req.HasTripFields() {
		return nil, models.NewValidationError("status")
	}

	var detail *models.TripDetail

	if req.Status != nil {
		status, ok := models.NormalizeStatus(*req.Status)
		if !ok {
			return nil, models.NewValidationError("status")
		}
		var err error
		detail, err = s.trips.TripByID(ctx, tripID)
		if err != nil {
			return nil, err
		}
		if _, err := s.bookings.UpdateBookingStatus(ctx, detail.BookingID, status); err != nil {
			return nil, fmt.Errorf("error updating booking status: %w", err)
		}
	}

	if !req.HasTripFields() {
		return &models.UpdateResult{Message: "Status updated successfully"}, nil
	}

	if detail == nil {
		var err error
		detail, err = s.trips.TripByID(ctx, tripID)
		if err != nil {
			return nil, err
		}
	}

	trip, err := mergeTripUpdate(&detail.Trip, req)
	if err != nil {
		return nil, err
	}

	updated, err := s.trips.UpdateTrip(ctx, tripID, trip)
	if err != nil {
		return nil, fmt.Errorf("error updating trip: %w", err)
	}
	if !updated {
		return &models.UpdateResult{Message: "No trip details found or no changes made"}, nil
	}
	return &models.UpdateResult{Message: "Trip details updated successfully"}, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, tripID uuid.UUID) (*models.UpdateResult, error) {
	deleted, err := s.trips.DeleteTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("error deleting trip: %w", err)
	}
	if !deleted {
		return &models.UpdateResult{Message: "No trip details found"}, nil
	}
	return &models.UpdateResult{Message: "Trip details deleted successfully"}, nil
}

// mergeTripUpdate lays the non-nil request fields over the stored row so
// the repository can write a full replacement. Changing the passenger
// count re-derives the factor and total from the captured base price.
func mergeTripUpdate(current *models.Trip, req *models.UpdateTripRequest) (*models.Trip, error) {
	trip := *current

	if req.ServiceType != nil {
		trip.ServiceType = *req.ServiceType
	}
	if req.Passengers != nil {
		trip.Passengers = *req.Passengers
	}
	if req.PickupDate != nil {
		d, err := time.Parse(dateLayout, *req.PickupDate)
		if err != nil {
			return nil, models.NewValidationError("pickup_date")
		}
		trip.PickupDate = d
	}
	if req.PickupTime != nil {
		trip.PickupTime = *req.PickupTime
	}
	if req.ReturnDate != nil {
		if *req.ReturnDate == "" {
			trip.ReturnDate = nil
		} else {
			d, err := time.Parse(dateLayout, *req.ReturnDate)
			if err != nil {
				return nil, models.NewValidationError("return_date")
			}
			trip.ReturnDate = &d
		}
	}
	if req.PickupLocation != nil {
		trip.PickupLocation = *req.PickupLocation
	}
	if req.DropoffLocation != nil {
		trip.DropoffLocation = *req.DropoffLocation
	}
	if req.SpecialRequests != nil {
		trip.SpecialRequests = *req.SpecialRequests
	}
	if req.BasePrice != nil {
		trip.BasePrice = *req.BasePrice
	}
	if req.Passengers != nil || req.BasePrice != nil {
		trip.PassengerFactor = models.PassengerFactor(trip.Passengers)
		trip.TotalPrice = trip.BasePrice * trip.PassengerFactor
	}
	return &trip, nil
}
