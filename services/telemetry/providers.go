package telemetry

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// FleetProvider is the slice of the fleet service telemetry depends on
// go:generate mockgen -destination=mocks/mock_providers.go -package=mocks github.com/gceits/campusfleet/services/telemetry FleetProvider,DispatchProvider
type FleetProvider interface {
	GetVehicleByDeviceID(ctx context.Context, deviceID string) (*models.Vehicle, error)
	GetActiveTripByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Trip, error)
	StoreVehicleLocation(ctx context.Context, vehicleID uuid.UUID, location models.Location) error
}

// DispatchProvider is the slice of the dispatch service telemetry depends on
type DispatchProvider interface {
	GetActiveBookingByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Booking, error)
	RefreshETA(ctx context.Context, vehicleID uuid.UUID, location models.Location) error
}
