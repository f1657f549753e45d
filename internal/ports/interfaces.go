package ports

import (
	"context"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/google/uuid"
)

type BookingRepository interface {
	AllBookings(ctx context.Context) ([]models.Booking, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	BookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	CreateBooking(ctx context.Context, userID, carID uuid.UUID) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id, userID, carID uuid.UUID, status models.BookingStatus) (bool, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (bool, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type TripRepository interface {
	AllTrips(ctx context.Context) ([]models.TripDetail, error)
	TripByID(ctx context.Context, tripID uuid.UUID) (*models.TripDetail, error)
	TripByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Trip, error)
	CreateTrip(ctx context.Context, trip *models.Trip, userID, carID uuid.UUID) (*models.Trip, error)
	UpdateTrip(ctx context.Context, tripID uuid.UUID, trip *models.Trip) (bool, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID) (bool, error)
}

type VehicleStore interface {
	AllVehicles(ctx context.Context) ([]models.Vehicle, error)
	VehicleByID(ctx context.Context, carID uuid.UUID) (*models.Vehicle, error)
	ImagesByCar(ctx context.Context, carID uuid.UUID) ([]string, error)
}

type ReviewRepository interface {
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
	VehicleExists(ctx context.Context, carID uuid.UUID) (bool, error)
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
	AllReviews(ctx context.Context) ([]models.Review, error)
	ReviewsByCar(ctx context.Context, carID uuid.UUID) ([]models.Review, error)
}

type BookingService interface {
	AllBookings(ctx context.Context) ([]models.Booking, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	BookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.UpdateResult, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) (*models.UpdateResult, error)
}

type TripService interface {
	CreateTrip(ctx context.Context, req *models.CreateTripRequest) (*models.CreateTripResponse, error)
	AllTrips(ctx context.Context) ([]models.TripDetail, error)
	TripByID(ctx context.Context, tripID uuid.UUID) (*models.TripDetail, error)
	TripByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Trip, error)
	UpdateTrip(ctx context.Context, tripID uuid.UUID, req *models.UpdateTripRequest) (*models.UpdateResult, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID) (*models.UpdateResult, error)
}

type VehicleService interface {
	AllVehicles(ctx context.Context) ([]models.Vehicle, error)
	VehicleByID(ctx context.Context, carID uuid.UUID) (*models.Vehicle, error)
	ImagesByCar(ctx context.Context, carID uuid.UUID) ([]string, error)
}

type CartService interface {
	CartForUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error)
	AllReviews(ctx context.Context) ([]models.Review, error)
	ReviewsByCar(ctx context.Context, carID uuid.UUID) ([]models.Review, error)
}

// VehicleCache is an optional read-through cache in front of the vehicle
// store. Implementations must treat every failure as a miss.
type VehicleCache interface {
	GetVehicle(ctx context.Context, carID uuid.UUID) (*models.Vehicle, bool)
	SetVehicle(ctx context.Context, vehicle *models.Vehicle)
	GetImages(ctx context.Context, carID uuid.UUID) ([]string, bool)
	SetImages(ctx context.Context, carID uuid.UUID, urls []string)
}
