package handler

import (
	"github.com/gceits/campusfleet/internal/pkg/middleware"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/services/telemetry"
	httpHandler "github.com/gceits/campusfleet/services/telemetry/handler/http"
	nsqHandler "github.com/gceits/campusfleet/services/telemetry/handler/nsq"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the telemetry service
type Handler struct {
	telemetryHTTP *httpHandler.TelemetryHandler
	telemetryNSQ  *nsqHandler.TelemetryHandler
	cfg           *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	telemetryUC telemetry.TelemetryUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		telemetryHTTP: httpHandler.NewTelemetryHandler(telemetryUC),
		telemetryNSQ:  nsqHandler.NewTelemetryHandler(telemetryUC, cfg),
		cfg:           cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Device-facing ingest endpoints. Trackers and scanners authenticate
	// at the network edge, not with rider JWTs.
	ingest := e.Group("/telemetry")
	ingest.POST("/gps", h.telemetryHTTP.IngestGPS)
	ingest.POST("/rfid", h.telemetryHTTP.IngestRFIDScan)

	// Admin offence and scanner management
	admin := e.Group("/admin", auth, middleware.RequireRole(models.RoleAdmin))
	admin.POST("/rfid-devices", h.telemetryHTTP.RegisterRFIDDevice)
	admin.GET("/rfid-devices", h.telemetryHTTP.ListRFIDDevices)
	admin.GET("/offences", h.telemetryHTTP.ListOffences)
	admin.PUT("/offences/:offenceID/paid", h.telemetryHTTP.MarkOffencePaid)
}

// InitNSQConsumers initializes all NSQ consumers
func (h *Handler) InitNSQConsumers() error {
	return h.telemetryNSQ.InitConsumers()
}

// Stop shuts down the NSQ consumers
func (h *Handler) Stop() {
	h.telemetryNSQ.Stop()
}
