package service_test

import (
	"context"
	"testing"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/mocks"
	"github.com/chauffeurlux/rental-api/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	userID := uuid.New()
	carID := uuid.New()

	validRequest := func() *models.CreateReviewRequest {
		return &models.CreateReviewRequest{
			UserID:  userID,
			CarID:   carID,
			Rating:  4,
			Comment: "Smooth pickup, clean car",
		}
	}

	t.Run("creates after both existence checks pass", func(t *testing.T) {
		repo := new(mocks.MockReviewRepository)
		svc := service.NewReviewService(repo)

		repo.On("UserExists", mock.Anything, userID).Return(true, nil)
		repo.On("VehicleExists", mock.Anything, carID).Return(true, nil)
		repo.On("CreateReview", mock.Anything, mock.MatchedBy(func(r *models.Review) bool {
			return r.UserID == userID && r.CarID == carID && r.Rating == 4
		})).Return(&models.Review{ID: uuid.New(), UserID: userID, CarID: carID, Rating: 4}, nil)

		review, err := svc.CreateReview(context.Background(), validRequest())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, review.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rating outside 1..5 is a validation error", func(t *testing.T) {
		svc := service.NewReviewService(new(mocks.MockReviewRepository))

		req := validRequest()
		req.Rating = 6

		review, err := svc.CreateReview(context.Background(), req)
		assert.Nil(t, review)

		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"rating"}, verr.Fields)
	})

	t.Run("unknown user blocks the review", func(t *testing.T) {
		repo := new(mocks.MockReviewRepository)
		svc := service.NewReviewService(repo)

		repo.On("UserExists", mock.Anything, userID).Return(false, nil)

		review, err := svc.CreateReview(context.Background(), validRequest())
		assert.Nil(t, review)
		assert.ErrorIs(t, err, models.ErrUserNotFound)
		repo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})

	t.Run("unknown vehicle blocks the review", func(t *testing.T) {
		repo := new(mocks.MockReviewRepository)
		svc := service.NewReviewService(repo)

		repo.On("UserExists", mock.Anything, userID).Return(true, nil)
		repo.On("VehicleExists", mock.Anything, carID).Return(false, nil)

		review, err := svc.CreateReview(context.Background(), validRequest())
		assert.Nil(t, review)
		assert.ErrorIs(t, err, models.ErrVehicleNotFound)
		repo.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})
}

func TestReviewsByCar(t *testing.T) {
	repo := new(mocks.MockReviewRepository)
	svc := service.NewReviewService(repo)

	carID := uuid.New()
	expected := []models.Review{
		{ID: uuid.New(), CarID: carID, Rating: 5, UserName: "Jordan Lee"},
	}
	repo.On("ReviewsByCar", mock.Anything, carID).Return(expected, nil)

	reviews, err := svc.ReviewsByCar(context.Background(), carID)
	require.NoError(t, err)
	assert.Equal(t, expected, reviews)
}
