package repository

import (
	"context"
	"errors"
	"time"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBConn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

type BookingRepository struct {
	db DBConn
}

func NewBookingRepository(db DBConn) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = "booking_id, user_id, car_id, status, created_at"

func (r *BookingRepository) AllBookings(ctx context.Context) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at, booking_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *BookingRepository) BookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1`
	var b models.Booking
	err := r.db.QueryRow(ctx, query, id).
		Scan(&b.ID, &b.UserID, &b.CarID, &b.Status, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) BookingsByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at, booking_id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *BookingRepository) CreateBooking(ctx context.Context, userID, carID uuid.UUID) (*models.Booking, error) {
	b := &models.Booking{
		ID:        uuid.New(),
		UserID:    userID,
		CarID:     carID,
		Status:    models.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	query := `
        INSERT INTO bookings (booking_id, user_id, car_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, b.ID, b.UserID, b.CarID, b.Status, b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBooking replaces the mutable columns of a booking. A zero-row
// outcome is reported via the bool, not as an error.
func (r *BookingRepository) UpdateBooking(ctx context.Context, id, userID, carID uuid.UUID, status models.BookingStatus) (bool, error) {
	query := `
        UPDATE bookings
        SET user_id = $1, car_id = $2, status = $3
        WHERE booking_id = $4
    `
	tag, err := r.db.Exec(ctx, query, userID, carID, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) (bool, error) {
	query := `UPDATE bookings SET status = $1 WHERE booking_id = $2`
	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteBooking is unconditional; deleting an id that does not exist is a
// silent no-op. The trip_details row, if any, goes with the booking via
// the schema's ON DELETE CASCADE.
func (r *BookingRepository) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1`, id)
	return err
}

func scanBookings(rows pgx.Rows) ([]models.Booking, error) {
	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.CarID, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bookings, nil
}
