package dispatch

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// BookingRepo defines the interface for booking data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gceits/campusfleet/services/dispatch BookingRepo
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListByStatus(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	ListByPhone(ctx context.Context, phone string) ([]models.Booking, error)

	// AcceptBooking claims a pending booking for the driver. The update is
	// guarded on status = pending, so of N concurrent accepts exactly one
	// succeeds; the rest observe the conflict.
	AcceptBooking(ctx context.Context, bookingID, driverID, vehicleID uuid.UUID, vehicleNumber, otp string, etaMinutes *int) (*models.Booking, error)

	// TransitionStatus moves a booking from one status to another with the
	// same compare-and-set guard.
	TransitionStatus(ctx context.Context, bookingID uuid.UUID, from, to models.BookingStatus) (*models.Booking, error)

	UpdateETA(ctx context.Context, bookingID uuid.UUID, etaMinutes int) error
	GetActiveBookingByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Booking, error)
}
