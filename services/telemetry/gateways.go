package telemetry

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
)

// TelemetryGW defines the interface for telemetry event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/gceits/campusfleet/services/telemetry TelemetryGW
type TelemetryGW interface {
	PublishOffence(ctx context.Context, offence models.Offence) error
	PublishVehicleLocation(ctx context.Context, event models.VehicleLocationEvent) error
}
