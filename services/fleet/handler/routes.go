package handler

import (
	"github.com/gceits/campusfleet/internal/pkg/middleware"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/services/fleet"
	httpHandler "github.com/gceits/campusfleet/services/fleet/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the fleet service
type Handler struct {
	fleetHTTP *httpHandler.FleetHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	fleetUC fleet.FleetUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		fleetHTTP: httpHandler.NewFleetHandler(fleetUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Admin fleet management
	admin := e.Group("/admin", auth, middleware.RequireRole(models.RoleAdmin))
	admin.POST("/vehicles", h.fleetHTTP.RegisterVehicle)
	admin.GET("/vehicles", h.fleetHTTP.ListVehicles)
	admin.GET("/vehicles/:vehicleID", h.fleetHTTP.GetVehicle)
	admin.POST("/vehicles/:vehicleID/assign", h.fleetHTTP.AssignDriver)
	admin.POST("/vehicles/:vehicleID/release", h.fleetHTTP.ReleaseDriver)
	admin.PUT("/vehicles/:vehicleID/out-of-station", h.fleetHTTP.SetOutOfStation)

	// Driver trip lifecycle
	driver := e.Group("/driver", auth, middleware.RequireRole(models.RoleDriver))
	driver.POST("/trips/start", h.fleetHTTP.StartTrip)
	driver.GET("/trips/active", h.fleetHTTP.GetActiveTrip)
	driver.POST("/trips/:tripID/end", h.fleetHTTP.EndTrip)

	// Rider-facing live bus view
	riders := e.Group("", auth)
	riders.GET("/buses/active", h.fleetHTTP.ListActiveBuses)
}
