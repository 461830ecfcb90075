package dispatch

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// DispatchGW defines the interface for booking event publishing and the
// active-booking cache
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/gceits/campusfleet/services/dispatch DispatchGW
type DispatchGW interface {
	PublishBookingEvent(ctx context.Context, event models.BookingEvent) error

	CacheActiveBooking(ctx context.Context, vehicleID, bookingID uuid.UUID) error
	GetActiveBookingID(ctx context.Context, vehicleID uuid.UUID) (uuid.UUID, error)
	ClearActiveBooking(ctx context.Context, vehicleID uuid.UUID) error
}
