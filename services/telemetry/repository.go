package telemetry

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// TelemetryRepo defines the interface for offence and scanner data access
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gceits/campusfleet/services/telemetry TelemetryRepo
type TelemetryRepo interface {
	CreateOffence(ctx context.Context, offence *models.Offence) error
	ListOffences(ctx context.Context, filter models.OffenceFilter) ([]models.Offence, error)
	MarkOffencePaid(ctx context.Context, id uuid.UUID) error

	CreateRFIDDevice(ctx context.Context, device *models.RFIDDevice) error
	GetRFIDDevice(ctx context.Context, rfidID string) (*models.RFIDDevice, error)
	ListRFIDDevices(ctx context.Context) ([]models.RFIDDevice, error)

	GetStudentByRegistrationID(ctx context.Context, registrationID string) (*models.User, error)
}
