package repository

import (
	"context"
	"errors"
	"time"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewRepository struct {
	db DBConn
}

func NewReviewRepository(db DBConn) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM users WHERE user_id = $1`, userID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ReviewRepository) VehicleExists(ctx context.Context, carID uuid.UUID) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM vehicles WHERE car_id = $1`, carID).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.ReviewDate = time.Now().UTC()
	query := `
        INSERT INTO reviews (review_id, user_id, car_id, rating, comment, review_date)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.db.Exec(ctx, query,
		review.ID, review.UserID, review.CarID, review.Rating, review.Comment, review.ReviewDate)
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (r *ReviewRepository) AllReviews(ctx context.Context) ([]models.Review, error) {
	query := `
        SELECT review_id, user_id, car_id, rating, comment, review_date
        FROM reviews ORDER BY review_date DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		err := rows.Scan(&rv.ID, &rv.UserID, &rv.CarID, &rv.Rating, &rv.Comment, &rv.ReviewDate)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) ReviewsByCar(ctx context.Context, carID uuid.UUID) ([]models.Review, error) {
	query := `
        SELECT r.review_id, r.user_id, r.car_id, r.rating, r.comment, r.review_date, u.full_name
        FROM reviews r
        LEFT JOIN users u ON u.user_id = r.user_id
        WHERE r.car_id = $1
        ORDER BY r.review_date DESC
    `
	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var rv models.Review
		var userName *string
		err := rows.Scan(&rv.ID, &rv.UserID, &rv.CarID, &rv.Rating, &rv.Comment, &rv.ReviewDate, &userName)
		if err != nil {
			return nil, err
		}
		if userName != nil {
			rv.UserName = *userName
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
