package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*BookingRepo, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewBookingRepository(&models.Config{}, sqlx.NewDb(mockDB, "pgx")), mock
}

func bookingRows(id uuid.UUID, status models.BookingStatus, driverID, vehicleID *uuid.UUID) *sqlmock.Rows {
	now := time.Now()

	// uuid columns scan from their string form
	var driverVal, vehicleVal interface{}
	if driverID != nil {
		driverVal = driverID.String()
	}
	if vehicleID != nil {
		vehicleVal = vehicleID.String()
	}

	return sqlmock.NewRows([]string{
		"id", "student_registration_id", "student_name", "phone", "place", "place_details",
		"user_latitude", "user_longitude", "status", "driver_id", "vehicle_id",
		"vehicle_number", "otp", "eta_minutes", "created_at", "updated_at",
	}).AddRow(id.String(), "REG-1001", "Asha Verma", "+911234567890", "3", "",
		12.9716, 77.5946, string(status), driverVal, vehicleVal,
		"CF-AMB-1", "123456", nil, now, now)
}

func TestAcceptBooking_ClaimsPendingRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	bookingID := uuid.New()
	driverID := uuid.New()
	vehicleID := uuid.New()

	mock.ExpectQuery("UPDATE bookings").
		WillReturnRows(bookingRows(bookingID, models.BookingStatusAccepted, &driverID, &vehicleID))

	booking, err := repo.AcceptBooking(context.Background(), bookingID, driverID, vehicleID, "CF-AMB-1", "123456", nil)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, booking.Status)
	require.NotNil(t, booking.DriverID)
	assert.Equal(t, driverID, *booking.DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptBooking_LostClaim(t *testing.T) {
	repo, mock := newMockRepo(t)
	bookingID := uuid.New()
	winnerID := uuid.New()
	vehicleID := uuid.New()

	// status guard matches no row, the follow-up read shows another
	// driver already holds the booking
	mock.ExpectQuery("UPDATE bookings").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WillReturnRows(bookingRows(bookingID, models.BookingStatusAccepted, &winnerID, &vehicleID))

	_, err := repo.AcceptBooking(context.Background(), bookingID, uuid.New(), uuid.New(), "CF-AMB-2", "654321", nil)
	assert.ErrorIs(t, err, apperrors.ErrBookingAlreadyAccepted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptBooking_UnknownBooking(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("UPDATE bookings").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT (.+) FROM bookings").WillReturnError(sql.ErrNoRows)

	_, err := repo.AcceptBooking(context.Background(), uuid.New(), uuid.New(), uuid.New(), "CF-AMB-1", "123456", nil)
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransitionStatus(t *testing.T) {
	t.Run("moves booking when status matches", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		bookingID := uuid.New()
		driverID := uuid.New()
		vehicleID := uuid.New()

		mock.ExpectQuery("UPDATE bookings").
			WillReturnRows(bookingRows(bookingID, models.BookingStatusInProgress, &driverID, &vehicleID))

		booking, err := repo.TransitionStatus(context.Background(), bookingID,
			models.BookingStatusAccepted, models.BookingStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusInProgress, booking.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects stale transition", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		bookingID := uuid.New()

		mock.ExpectQuery("UPDATE bookings").WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("SELECT (.+) FROM bookings").
			WillReturnRows(bookingRows(bookingID, models.BookingStatusCancelled, nil, nil))

		_, err := repo.TransitionStatus(context.Background(), bookingID,
			models.BookingStatusAccepted, models.BookingStatusInProgress)
		assert.Equal(t, apperrors.KindPrecondition, apperrors.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateETA(t *testing.T) {
	t.Run("stores new estimate", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE bookings SET eta_minutes").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateETA(context.Background(), uuid.New(), 3)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports missing booking", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE bookings SET eta_minutes").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateETA(context.Background(), uuid.New(), 3)
		assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
