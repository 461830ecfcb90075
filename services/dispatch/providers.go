package dispatch

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// FleetProvider is the slice of the fleet service dispatch depends on
// go:generate mockgen -destination=mocks/mock_providers.go -package=mocks github.com/gceits/campusfleet/services/dispatch FleetProvider
type FleetProvider interface {
	GetDriverVehicle(ctx context.Context, driverID uuid.UUID) (*models.Vehicle, error)
	GetVehicleLocation(ctx context.Context, vehicleID uuid.UUID) (*models.Location, error)
}
