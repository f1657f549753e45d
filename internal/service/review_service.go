package service

import (
	"context"
	"fmt"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/ports"
	"github.com/google/uuid"
)

type reviewService struct {
	repo ports.ReviewRepository
}

func NewReviewService(repo ports.ReviewRepository) *reviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	var missing []string
	if req.UserID == uuid.Nil {
		missing = append(missing, "user_id")
	}
	if req.CarID == uuid.Nil {
		missing = append(missing, "car_id")
	}
	if req.Rating < 1 || req.Rating > 5 {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return nil, models.NewValidationError(missing...)
	}

	ok, err := s.repo.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("error checking user: %w", err)
	}
	if !ok {
		return nil, models.ErrUserNotFound
	}

	ok, err = s.repo.VehicleExists(ctx, req.CarID)
	if err != nil {
		return nil, fmt.Errorf("error checking vehicle: %w", err)
	}
	if !ok {
		return nil, models.ErrVehicleNotFound
	}

	review := &models.Review{
		UserID:  req.UserID,
		CarID:   req.CarID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	created, err := s.repo.CreateReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("error creating review: %w", err)
	}
	return created, nil
}

func (s *reviewService) AllReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.repo.AllReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) ReviewsByCar(ctx context.Context, carID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.repo.ReviewsByCar(ctx, carID)
	if err != nil {
		return nil, fmt.Errorf("error fetching reviews: %w", err)
	}
	return reviews, nil
}
