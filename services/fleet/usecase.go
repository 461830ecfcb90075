package fleet

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// FleetUC defines the interface for fleet business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gceits/campusfleet/services/fleet FleetUC
type FleetUC interface {
	RegisterVehicle(ctx context.Context, req models.VehicleRegisterRequest) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, vehicleType models.VehicleType, unassignedOnly bool) ([]models.Vehicle, error)
	SetOutOfStation(ctx context.Context, vehicleID uuid.UUID, outOfStation bool) (*models.Vehicle, error)

	AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) (*models.Vehicle, error)
	ReleaseDriver(ctx context.Context, vehicleID, driverID uuid.UUID) (*models.Vehicle, error)

	StartTrip(ctx context.Context, vehicleID, driverID uuid.UUID) (*models.Trip, error)
	EndTrip(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error)
	ListActiveBuses(ctx context.Context) ([]models.ActiveBus, error)

	// Telemetry and dispatch collaborators resolve vehicles and live
	// positions through these.
	GetVehicleByDeviceID(ctx context.Context, deviceID string) (*models.Vehicle, error)
	GetActiveTripByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Trip, error)
	GetDriverVehicle(ctx context.Context, driverID uuid.UUID) (*models.Vehicle, error)
	StoreVehicleLocation(ctx context.Context, vehicleID uuid.UUID, location models.Location) error
	GetVehicleLocation(ctx context.Context, vehicleID uuid.UUID) (*models.Location, error)
}
