package repository

import (
	"context"
	"errors"
	"time"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TripRepository struct {
	db DBConn
}

func NewTripRepository(db DBConn) *TripRepository {
	return &TripRepository{db: db}
}

const tripDetailSelect = `
        SELECT
            td.trip_id, td.booking_id, td.service_type, td.passengers,
            td.pickup_date, td.pickup_time, td.return_date,
            td.pickup_location, td.dropoff_location, td.special_requests,
            td.base_price, td.passenger_factor, td.total_price,
            b.user_id, b.status,
            u.full_name, u.email, u.phone_number,
            v.brand, v.model_name
        FROM trip_details td
        JOIN bookings b ON b.booking_id = td.booking_id
        JOIN users u ON u.user_id = b.user_id
        JOIN vehicles v ON v.car_id = b.car_id
    `

func (r *TripRepository) AllTrips(ctx context.Context) ([]models.TripDetail, error) {
	query := tripDetailSelect + ` ORDER BY td.pickup_date DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []models.TripDetail
	for rows.Next() {
		td, err := scanTripDetail(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *td)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *TripRepository) TripByID(ctx context.Context, tripID uuid.UUID) (*models.TripDetail, error) {
	query := tripDetailSelect + ` WHERE td.trip_id = $1`
	rows, err := r.db.Query(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, models.ErrTripNotFound
	}
	return scanTripDetail(rows)
}

func (r *TripRepository) TripByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Trip, error) {
	query := `
        SELECT trip_id, booking_id, service_type, passengers,
            pickup_date, pickup_time, return_date,
            pickup_location, dropoff_location, special_requests,
            base_price, passenger_factor, total_price
        FROM trip_details WHERE booking_id = $1
    `
	var t models.Trip
	err := r.db.QueryRow(ctx, query, bookingID).Scan(
		&t.ID, &t.BookingID, &t.ServiceType, &t.Passengers,
		&t.PickupDate, &t.PickupTime, &t.ReturnDate,
		&t.PickupLocation, &t.DropoffLocation, &t.SpecialRequests,
		&t.BasePrice, &t.PassengerFactor, &t.TotalPrice,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrTripNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTrip inserts the booking and its trip detail as one transaction.
// The vehicle's day-rate is read inside the transaction and fixed on the
// trip; it is not recomputed if the vehicle's price later changes.
func (r *TripRepository) CreateTrip(ctx context.Context, trip *models.Trip, userID, carID uuid.UUID) (*models.Trip, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	bookingID := uuid.New()
	bookingQuery := `
        INSERT INTO bookings (booking_id, user_id, car_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err = tx.Exec(ctx, bookingQuery, bookingID, userID, carID, models.StatusPending, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	var basePrice float64
	err = tx.QueryRow(ctx, `SELECT rental_price_per_day FROM vehicles WHERE car_id = $1`, carID).
		Scan(&basePrice)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrVehicleNotFound
	}
	if err != nil {
		return nil, err
	}

	trip.ID = uuid.New()
	trip.BookingID = bookingID
	trip.BasePrice = basePrice
	trip.PassengerFactor = models.PassengerFactor(trip.Passengers)
	trip.TotalPrice = basePrice * trip.PassengerFactor

	tripQuery := `
        INSERT INTO trip_details
            (trip_id, booking_id, service_type, passengers, pickup_date, pickup_time,
             return_date, pickup_location, dropoff_location, special_requests,
             base_price, passenger_factor, total_price)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `
	_, err = tx.Exec(ctx, tripQuery,
		trip.ID, trip.BookingID, trip.ServiceType, trip.Passengers,
		trip.PickupDate, trip.PickupTime, trip.ReturnDate,
		trip.PickupLocation, trip.DropoffLocation, trip.SpecialRequests,
		trip.BasePrice, trip.PassengerFactor, trip.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return trip, nil
}

// UpdateTrip writes a full replacement of the mutable trip columns.
// Zero rows affected is reported via the bool.
func (r *TripRepository) UpdateTrip(ctx context.Context, tripID uuid.UUID, trip *models.Trip) (bool, error) {
	query := `
        UPDATE trip_details
        SET service_type = $1, passengers = $2, pickup_date = $3, pickup_time = $4,
            return_date = $5, pickup_location = $6, dropoff_location = $7,
            special_requests = $8, base_price = $9, passenger_factor = $10, total_price = $11
        WHERE trip_id = $12
    `
	tag, err := r.db.Exec(ctx, query,
		trip.ServiceType, trip.Passengers, trip.PickupDate, trip.PickupTime,
		trip.ReturnDate, trip.PickupLocation, trip.DropoffLocation,
		trip.SpecialRequests, trip.BasePrice, trip.PassengerFactor, trip.TotalPrice,
		tripID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteTrip removes the parent booking of the trip; the trip row goes
// with it through the booking-owns-trip cascade.
func (r *TripRepository) DeleteTrip(ctx context.Context, tripID uuid.UUID) (bool, error) {
	query := `
        DELETE FROM bookings
        WHERE booking_id = (SELECT booking_id FROM trip_details WHERE trip_id = $1)
    `
	tag, err := r.db.Exec(ctx, query, tripID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanTripDetail(rows pgx.Rows) (*models.TripDetail, error) {
	var td models.TripDetail
	err := rows.Scan(
		&td.Trip.ID, &td.Trip.BookingID, &td.ServiceType, &td.Passengers,
		&td.PickupDate, &td.PickupTime, &td.ReturnDate,
		&td.PickupLocation, &td.DropoffLocation, &td.SpecialRequests,
		&td.BasePrice, &td.PassengerFactor, &td.TotalPrice,
		&td.UserID, &td.BookingStatus,
		&td.FullName, &td.Email, &td.Phone,
		&td.Brand, &td.ModelName,
	)
	if err != nil {
		return nil, err
	}
	return &td, nil
}
