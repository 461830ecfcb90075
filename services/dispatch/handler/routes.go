package handler

import (
	"github.com/gceits/campusfleet/internal/pkg/middleware"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/services/dispatch"
	httpHandler "github.com/gceits/campusfleet/services/dispatch/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
	cfg          *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	dispatchUC dispatch.DispatchUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	// Rider-facing booking endpoints
	bookings := e.Group("/bookings", auth)
	bookings.POST("", h.dispatchHTTP.CreateBooking)
	bookings.GET("/:bookingID", h.dispatchHTTP.GetBooking)
	bookings.GET("", h.dispatchHTTP.ListBookingsByPhone)

	// Ambulance driver workflow
	driver := e.Group("/driver/bookings", auth, middleware.RequireRole(models.RoleDriver))
	driver.GET("/pending", h.dispatchHTTP.ListPendingBookings)
	driver.POST("/:bookingID/accept", h.dispatchHTTP.AcceptBooking)
	driver.POST("/:bookingID/verify-otp", h.dispatchHTTP.VerifyOTP)
	driver.POST("/:bookingID/abort", h.dispatchHTTP.AbortBooking)
	driver.POST("/:bookingID/complete", h.dispatchHTTP.CompleteBooking)
}
