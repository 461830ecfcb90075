package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const bookingColumns = `
	id, student_registration_id, student_name, phone, place, place_details,
	user_latitude, user_longitude, status, driver_id, vehicle_id,
	vehicle_number, otp, eta_minutes, created_at, updated_at
`

type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewBookingRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateBooking inserts a new pending booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	booking.ID = uuid.New()
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	query := `
		INSERT INTO bookings (
			id, student_registration_id, student_name, phone, place, place_details,
			user_latitude, user_longitude, status, created_at, updated_at
		) VALUES (
			:id, :student_registration_id, :student_name, :phone, :place, :place_details,
			:user_latitude, :user_longitude, :status, :created_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

// GetBooking retrieves a booking by ID
func (r *BookingRepo) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// ListByStatus retrieves bookings in the given status, oldest first so
// drivers see the longest-waiting request on top
func (r *BookingRepo) ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY created_at`

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, status); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// ListByPhone retrieves the booking history for a phone number
func (r *BookingRepo) ListByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE phone = $1 ORDER BY created_at DESC`

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, phone); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// AcceptBooking claims a pending booking. The status = pending guard is
// the whole race story: concurrent accepts all run this update, the row
// matches for exactly one of them.
func (r *BookingRepo) AcceptBooking(ctx context.Context, bookingID, driverID, vehicleID uuid.UUID, vehicleNumber, otp string, etaMinutes *int) (*models.Booking, error) {
	query := `
		UPDATE bookings
		SET status = $1, driver_id = $2, vehicle_id = $3, vehicle_number = $4,
			otp = $5, eta_minutes = $6, updated_at = $7
		WHERE id = $8 AND status = $9
		RETURNING ` + bookingColumns

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query,
		models.BookingStatusAccepted, driverID, vehicleID, vehicleNumber,
		otp, etaMinutes, time.Now(), bookingID, models.BookingStatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// the booking is gone or someone else won the claim
			if _, getErr := r.GetBooking(ctx, bookingID); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.ErrBookingAlreadyAccepted
		}
		return nil, fmt.Errorf("failed to accept booking: %w", err)
	}

	return &booking, nil
}

// TransitionStatus moves a booking between statuses with a
// compare-and-set guard on the expected current status
func (r *BookingRepo) TransitionStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) (*models.Booking, error) {
	query := `
		UPDATE bookings SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + bookingColumns

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, to, time.Now(), bookingID, from)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := r.GetBooking(ctx, bookingID); getErr != nil {
				return nil, getErr
			}
			return nil, apperrors.New(apperrors.KindPrecondition, "BOOKING_STATUS_CHANGED",
				fmt.Sprintf("booking is no longer %s", from))
		}
		return nil, fmt.Errorf("failed to transition booking: %w", err)
	}

	return &booking, nil
}

// UpdateETA stores a recomputed arrival estimate
func (r *BookingRepo) UpdateETA(ctx context.Context, bookingID uuid.UUID, etaMinutes int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET eta_minutes = $1, updated_at = $2 WHERE id = $3`,
		etaMinutes, time.Now(), bookingID)
	if err != nil {
		return fmt.Errorf("failed to update ETA: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// GetActiveBookingByVehicle retrieves the non-terminal booking bound to
// the vehicle, if any
func (r *BookingRepo) GetActiveBookingByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE vehicle_id = $1 AND status IN ($2, $3)
	`

	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, query, vehicleID,
		models.BookingStatusAccepted, models.BookingStatusInProgress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get active booking: %w", err)
	}

	return &booking, nil
}
