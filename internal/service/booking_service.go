package service

import (
	"context"
	"fmt"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/ports"
	"github.com/google/uuid"
)

type bookingService struct {
	repo ports.BookingRepository
}

func NewBookingService(repo ports.BookingRepository) *bookingService {
	return &bookingService{repo: repo}
}

func (s *bookingService) AllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.repo.AllBookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	return bookings, nil
}

func (s *bookingService) BookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.repo.BookingByID(ctx, id)
}

// BookingsByUser surfaces an empty result as ErrNoBookingsForUser so the
// boundary can answer 404, matching the cart contract.
func (s *bookingService) BookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	bookings, err := s.repo.BookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	if len(bookings) == 0 {
		return nil, models.ErrNoBookingsForUser
	}
	return bookings, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.UpdateResult, error) {
	var missing []string
	if req.UserID == uuid.Nil {
		missing = append(missing, "user_id")
	}
	if req.CarID == uuid.Nil {
		missing = append(missing, "car_id")
	}
	if req.Status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return nil, models.NewValidationError(missing...)
	}

	status, ok := models.NormalizeStatus(req.Status)
	if !ok {
		return nil, models.NewValidationError("status")
	}

	updated, err := s.repo.UpdateBooking(ctx, id, req.UserID, req.CarID, status)
	if err != nil {
		return nil, fmt.Errorf("error updating booking: %w", err)
	}
	if !updated {
		return &models.UpdateResult{Message: "No booking record found or no changes made"}, nil
	}
	return &models.UpdateResult{Message: "Booking updated successfully"}, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, id uuid.UUID) (*models.UpdateResult, error) {
	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return nil, fmt.Errorf("error deleting booking: %w", err)
	}
	return &models.UpdateResult{Message: "Booking deleted successfully"}, nil
}
