package repository_test

import (
	"context"
	"testing"
	"time"

	models "github.com/chauffeurlux/rental-api/internal"
	"github.com/chauffeurlux/rental-api/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBookingRepo(t *testing.T) (pgxmock.PgxPoolIface, *repository.BookingRepository) {
	mockDb, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mockDb, repository.NewBookingRepository(mockDb)
}

func TestCreateBooking(t *testing.T) {
	mockDb, repo := setupBookingRepo(t)
	defer mockDb.Close()

	userID := uuid.New()
	carID := uuid.New()

	query := formatQueryForRegex(`
        INSERT INTO bookings (booking_id, user_id, car_id, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `)
	mockDb.ExpectExec(query).
		WithArgs(pgxmock.AnyArg(), userID, carID, models.StatusPending, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	booking, err := repo.CreateBooking(context.Background(), userID, carID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, carID, booking.CarID)
	assert.Equal(t, models.StatusPending, booking.Status)

	assert.NoError(t, mockDb.ExpectationsWereMet())
}

func TestBookingByID(t *testing.T) {
	query := formatQueryForRegex(`SELECT booking_id, user_id, car_id, status, created_at FROM bookings WHERE booking_id = $1`)

	t.Run("found", func(t *testing.T) {
		mockDb, repo := setupBookingRepo(t)
		defer mockDb.Close()

		id := uuid.New()
		userID := uuid.New()
		carID := uuid.New()
		created := time.Now().UTC()

		rows := pgxmock.NewRows([]string{"booking_id", "user_id", "car_id", "status", "created_at"}).
			AddRow(id, userID, carID, models.StatusConfirmed, created)
		mockDb.ExpectQuery(query).WithArgs(id).WillReturnRows(rows)

		booking, err := repo.BookingByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, booking.ID)
		assert.Equal(t, models.StatusConfirmed, booking.Status)
	})

	t.Run("no rows maps to ErrBookingNotFound", func(t *testing.T) {
		mockDb, repo := setupBookingRepo(t)
		defer mockDb.Close()

		id := uuid.New()
		mockDb.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)

		booking, err := repo.BookingByID(context.Background(), id)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})
}

func TestBookingsByUser(t *testing.T) {
	query := formatQueryForRegex(`SELECT booking_id, user_id, car_id, status, created_at FROM bookings WHERE user_id = $1 ORDER BY created_at, booking_id`)

	t.Run("returns rows in creation order", func(t *testing.T) {
		mockDb, repo := setupBookingRepo(t)
		defer mockDb.Close()

		userID := uuid.New()
		first := uuid.New()
		second := uuid.New()
		now := time.Now().UTC()

		rows := pgxmock.NewRows([]string{"booking_id", "user_id", "car_id", "status", "created_at"}).
			AddRow(first, userID, uuid.New(), models.StatusPending, now.Add(-time.Hour)).
			AddRow(second, userID, uuid.New(), models.StatusConfirmed, now)
		mockDb.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)

		bookings, err := repo.BookingsByUser(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, first, bookings[0].ID)
		assert.Equal(t, second, bookings[1].ID)
	})

	t.Run("no bookings yields an empty slice, not an error", func(t *testing.T) {
		mockDb, repo := setupBookingRepo(t)
		defer mockDb.Close()

		userID := uuid.New()
		rows := pgxmock.NewRows([]string{"booking_id", "user_id", "car_id", "status", "created_at"})
		mockDb.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)

		bookings, err := repo.BookingsByUser(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, bookings)
	})
}

func TestUpdateBooking(t *testing.T) {
	query := formatQueryForRegex(`
        UPDATE bookings
        SET user_id = $1, car_id = $2, status = $3
        WHERE booking_id = $4
    `)

	t.Run("reports whether a row changed", func(t *testing.T) {
		mockDb, repo := setupBookingRepo(t)
		defer mockDb.Close()

		id := uuid.New()
		userID := uuid.New()
		carID := uuid.New()

		mockDb.ExpectExec(query).
			WithArgs(userID, carID, models.StatusCancelled, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		updated, err := repo.UpdateBooking(context.Background(), id, userID, carID, models.StatusCancelled)
		require.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("zero rows is a no-op", func(t *testing.T) {
		mockDb, repo := setupBookingRepo(t)
		defer mockDb.Close()

		id := uuid.New()
		userID := uuid.New()
		carID := uuid.New()

		mockDb.ExpectExec(query).
			WithArgs(userID, carID, models.StatusCancelled, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		updated, err := repo.UpdateBooking(context.Background(), id, userID, carID, models.StatusCancelled)
		require.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	mockDb, repo := setupBookingRepo(t)
	defer mockDb.Close()

	id := uuid.New()
	query := formatQueryForRegex(`UPDATE bookings SET status = $1 WHERE booking_id = $2`)
	mockDb.ExpectExec(query).
		WithArgs(models.StatusConfirmed, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.UpdateBookingStatus(context.Background(), id, models.StatusConfirmed)
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestDeleteBooking(t *testing.T) {
	t.Run("deleting an unknown id is silent", func(t *testing.T) {
		mockDb, repo := setupBookingRepo(t)
		defer mockDb.Close()

		id := uuid.New()
		query := formatQueryForRegex(`DELETE FROM bookings WHERE booking_id = $1`)
		mockDb.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.DeleteBooking(context.Background(), id)
		assert.NoError(t, err)
	})
}
