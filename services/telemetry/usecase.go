package telemetry

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// TelemetryUC defines the interface for telemetry business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gceits/campusfleet/services/telemetry TelemetryUC
type TelemetryUC interface {
	IngestGPS(ctx context.Context, ping models.GPSPing) error
	IngestRFIDScan(ctx context.Context, scan models.RFIDScan) error

	RegisterRFIDDevice(ctx context.Context, req models.RFIDDeviceRegisterRequest) (*models.RFIDDevice, error)
	ListRFIDDevices(ctx context.Context) ([]models.RFIDDevice, error)

	// RecordOffence persists a detected offence; it is driven by the
	// offence stream consumer, not by HTTP callers.
	RecordOffence(ctx context.Context, offence *models.Offence) error
	ListOffences(ctx context.Context, filter models.OffenceFilter) ([]models.Offence, error)
	MarkOffencePaid(ctx context.Context, id uuid.UUID) error
}
