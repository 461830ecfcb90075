package gateway

import (
	"context"
	"fmt"

	"github.com/gceits/campusfleet/internal/pkg/constants"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/pkg/nsq"
)

type TelemetryGW struct {
	producer *nsq.Producer
}

func NewTelemetryGW(producer *nsq.Producer) *TelemetryGW {
	return &TelemetryGW{
		producer: producer,
	}
}

// PublishOffence hands a detected offence to the recording pipeline
func (g *TelemetryGW) PublishOffence(ctx context.Context, offence models.Offence) error {
	if err := g.producer.Publish(constants.TopicOffenceDetected, offence); err != nil {
		return fmt.Errorf("failed to publish offence: %w", err)
	}
	return nil
}

// PublishVehicleLocation broadcasts an attributable position update
func (g *TelemetryGW) PublishVehicleLocation(ctx context.Context, event models.VehicleLocationEvent) error {
	if err := g.producer.Publish(constants.TopicVehicleLocation, event); err != nil {
		return fmt.Errorf("failed to publish vehicle location: %w", err)
	}
	return nil
}
