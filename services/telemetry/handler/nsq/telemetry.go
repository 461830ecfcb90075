package nsq

import (
	"context"
	"fmt"

	"github.com/gceits/campusfleet/internal/pkg/constants"
	pkgcontext "github.com/gceits/campusfleet/internal/pkg/context"
	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/models"
	nsqpkg "github.com/gceits/campusfleet/internal/pkg/nsq"
	"github.com/gceits/campusfleet/services/telemetry"
)

// TelemetryHandler consumes the offence stream and drives persistence
type TelemetryHandler struct {
	telemetryUC telemetry.TelemetryUC
	cfg         *models.Config
	consumer    *nsqpkg.Consumer
}

// NewTelemetryHandler creates a new telemetry stream handler
func NewTelemetryHandler(telemetryUC telemetry.TelemetryUC, cfg *models.Config) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryUC: telemetryUC,
		cfg:         cfg,
	}
}

// InitConsumers wires the offence recorder to the offence stream
func (h *TelemetryHandler) InitConsumers() error {
	consumer, err := nsqpkg.NewConsumer(
		constants.TopicOffenceDetected,
		h.cfg.NSQ.OffenceChannel,
		h.cfg.NSQ.NSQDAddress,
		h.cfg.NSQ.ConcurrentWorkers,
		h.handleOffence,
	)
	if err != nil {
		return fmt.Errorf("failed to create offence consumer: %w", err)
	}
	h.consumer = consumer

	return nil
}

// Stop shuts down the offence consumer
func (h *TelemetryHandler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

func (h *TelemetryHandler) handleOffence(message []byte) error {
	var offence models.Offence
	if err := nsqpkg.UnmarshalMessage(message, &offence); err != nil {
		// malformed payloads would requeue forever, drop them
		logger.Error("Discarding malformed offence message", logger.Err(err))
		return nil
	}

	// Consumed messages have no inbound request ID, stamp one so the
	// persistence logs for a redelivered offence can be correlated.
	ctx := pkgcontext.WithRequestID(context.Background(), "")

	return h.telemetryUC.RecordOffence(ctx, &offence)
}
