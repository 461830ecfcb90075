package dispatch

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// DispatchUC defines the interface for ambulance dispatch business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gceits/campusfleet/services/dispatch DispatchUC
type DispatchUC interface {
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListPendingBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsByPhone(ctx context.Context, phone string) ([]models.Booking, error)

	AcceptBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)
	VerifyOTP(ctx context.Context, bookingID, driverID uuid.UUID, otp string) (*models.Booking, error)
	AbortBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)
	CompleteBooking(ctx context.Context, bookingID, driverID uuid.UUID) (*models.Booking, error)

	// Telemetry drives these as ambulance positions stream in.
	RefreshETA(ctx context.Context, vehicleID uuid.UUID, location models.Location) error
	GetActiveBookingByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Booking, error)
}
