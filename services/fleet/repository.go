package fleet

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// FleetRepo defines the interface for vehicle and trip data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gceits/campusfleet/services/fleet FleetRepo,LocationRepo
type FleetRepo interface {
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	GetVehicleByDeviceID(ctx context.Context, deviceID string) (*models.Vehicle, error)
	GetVehicleByDriver(ctx context.Context, driverID uuid.UUID) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, vehicleType models.VehicleType, unassignedOnly bool) ([]models.Vehicle, error)
	SetOutOfStation(ctx context.Context, vehicleID uuid.UUID, outOfStation bool) error

	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.User, error)

	// AssignDriver atomically binds the driver to the vehicle; it fails
	// when either side already holds a different assignment.
	AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error
	// ReleaseDriver atomically clears the assignment and force-closes any
	// active trip on the vehicle in the same transaction.
	ReleaseDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error

	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	GetActiveTripByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Trip, error)
	EndTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListActiveBuses(ctx context.Context) ([]models.ActiveBus, error)
}

// LocationRepo defines the interface for live vehicle position storage
type LocationRepo interface {
	StoreLocation(ctx context.Context, vehicleID uuid.UUID, location models.Location) error
	GetLocation(ctx context.Context, vehicleID uuid.UUID) (*models.Location, error)
	RemoveLocation(ctx context.Context, vehicleID uuid.UUID) error
}
