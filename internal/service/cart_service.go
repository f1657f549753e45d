package service

import (
	"context"
	"fmt"
	"time"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Placeholder values substituted when a cart sub-fetch fails. The cart
// never fails as a whole because one booking's trip or vehicle cannot be
// resolved.
const (
	fallbackBrand    = "Unknown"
	fallbackModel    = "Unknown Model"
	fallbackColor    = "Unknown"
	fallbackImage    = "/default-vehicle.jpg"
	fallbackLocation = "Not specified"

	cartFanoutLimit = 8
)

type cartService struct {
	bookings ports.BookingRepository
	trips    ports.TripRepository
	vehicles ports.VehicleService
}

func NewCartService(bookings ports.BookingRepository, trips ports.TripRepository, vehicles ports.VehicleService) *cartService {
	return &cartService{bookings: bookings, trips: trips, vehicles: vehicles}
}

// CartForUser builds one display record per booking of the user,
// preserving the booking fetch order. The trip and vehicle sub-fetches of
// each booking run concurrently; a failed sub-fetch yields fallback data
// and sets the matching fallback marker instead of failing the call.
func (s *cartService) CartForUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	bookings, err := s.bookings.BookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	if len(bookings) == 0 {
		return nil, models.ErrNoBookingsForUser
	}

	items := make([]models.CartItem, len(bookings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cartFanoutLimit)
	for i, booking := range bookings {
		i, booking := i, booking
		g.Go(func() error {
			items[i] = s.buildItem(gctx, booking)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

type tripLookup struct {
	trip     *models.Trip
	fallback bool
}

type vehicleLookup struct {
	vehicle  *models.Vehicle
	images   []string
	fallback bool
}

func (s *cartService) buildItem(ctx context.Context, booking models.Booking) models.CartItem {
	var tl tripLookup
	var vl vehicleLookup

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		tl = s.lookupTrip(gctx, booking.ID)
		return nil
	})
	g.Go(func() error {
		vl = s.lookupVehicle(gctx, booking.CarID)
		return nil
	})
	g.Wait()

	item := models.CartItem{
		BookingID:       booking.ID,
		UserID:          booking.UserID,
		CarID:           booking.CarID,
		Status:          booking.Status,
		TripFallback:    tl.fallback,
		VehicleFallback: vl.fallback,
	}

	if vl.fallback {
		item.Brand = fallbackBrand
		item.Model = fallbackModel
		item.Year = time.Now().Year()
		item.Color = fallbackColor
		item.Image = fallbackImage
	} else {
		item.Brand = vl.vehicle.Brand
		item.Model = vl.vehicle.ModelName
		item.Year = vl.vehicle.Year
		item.Color = vl.vehicle.Color
		if len(vl.images) > 0 {
			item.Image = vl.images[0]
		} else {
			item.Image = fallbackImage
		}
	}

	pickupDate := time.Now().UTC().Truncate(24 * time.Hour)
	if !tl.fallback {
		trip := tl.trip
		tripID := trip.ID
		item.ID = tripID.String()
		item.TripID = &tripID
		item.Passengers = trip.Passengers
		item.PickupLocation = trip.PickupLocation
		item.DropoffLocation = trip.DropoffLocation
		item.SpecialRequests = trip.SpecialRequests
		item.DailyRate = trip.BasePrice
		pickupDate = trip.PickupDate
	} else {
		item.ID = "temp-" + booking.ID.String()
		item.Passengers = 1
		item.PickupLocation = fallbackLocation
		item.DropoffLocation = fallbackLocation
		if !vl.fallback {
			item.DailyRate = vl.vehicle.RentalPricePerDay
		}
	}
	if item.DailyRate == 0 && !vl.fallback {
		item.DailyRate = vl.vehicle.RentalPricePerDay
	}

	// Return date defaults to pickup + 1 day when the trip carries none.
	returnDate := pickupDate.AddDate(0, 0, 1)
	if !tl.fallback && tl.trip.ReturnDate != nil {
		returnDate = *tl.trip.ReturnDate
	}

	item.Days = models.RentalDays(pickupDate, returnDate)
	item.PickupDate = pickupDate.Format(dateLayout)
	item.ReturnDate = returnDate.Format(dateLayout)
	return item
}

func (s *cartService) lookupTrip(ctx context.Context, bookingID uuid.UUID) tripLookup {
	trip, err := s.trips.TripByBookingID(ctx, bookingID)
	if err != nil {
		return tripLookup{fallback: true}
	}
	return tripLookup{trip: trip}
}

func (s *cartService) lookupVehicle(ctx context.Context, carID uuid.UUID) vehicleLookup {
	vehicle, err := s.vehicles.VehicleByID(ctx, carID)
	if err != nil {
		return vehicleLookup{fallback: true}
	}
	// Image failures degrade to the placeholder image, not a fallback item.
	images, err := s.vehicles.ImagesByCar(ctx, carID)
	if err != nil {
		images = nil
	}
	return vehicleLookup{vehicle: vehicle, images: images}
}
