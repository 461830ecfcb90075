package http

import (
	"net/http"

	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/utils"
	"github.com/gceits/campusfleet/services/dispatch"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DispatchHandler handles HTTP requests for ambulance dispatch
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// CreateBooking handles a rider's emergency booking request
func (h *DispatchHandler) CreateBooking(c echo.Context) error {
	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	booking, err := h.dispatchUC.CreateBooking(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to create booking",
			logger.String("registration_id", req.StudentRegistrationID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// GetBooking handles booking status lookup
func (h *DispatchHandler) GetBooking(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.dispatchUC.GetBooking(c.Request().Context(), bookingID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// ListPendingBookings handles the driver-facing pending queue
func (h *DispatchHandler) ListPendingBookings(c echo.Context) error {
	bookings, err := h.dispatchUC.ListPendingBookings(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pending bookings retrieved successfully", bookings)
}

// ListBookingsByPhone handles booking history lookup
func (h *DispatchHandler) ListBookingsByPhone(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	bookings, err := h.dispatchUC.ListBookingsByPhone(c.Request().Context(), phone)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", bookings)
}

// AcceptBooking handles a driver claiming a pending booking
func (h *DispatchHandler) AcceptBooking(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.dispatchUC.AcceptBooking(c.Request().Context(), bookingID, driverID)
	if err != nil {
		logger.Error("Failed to accept booking",
			logger.String("booking_id", bookingID.String()),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking accepted successfully", booking)
}

// VerifyOTP handles the driver's pickup confirmation
func (h *DispatchHandler) VerifyOTP(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.OTPVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.OTP == "" {
		return utils.BadRequestResponse(c, "OTP is required")
	}

	booking, err := h.dispatchUC.VerifyOTP(c.Request().Context(), bookingID, driverID, req.OTP)
	if err != nil {
		logger.Error("Failed to verify OTP",
			logger.String("booking_id", bookingID.String()),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pickup confirmed", booking)
}

// AbortBooking handles a driver aborting a booking
func (h *DispatchHandler) AbortBooking(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.dispatchUC.AbortBooking(c.Request().Context(), bookingID, driverID)
	if err != nil {
		logger.Error("Failed to abort booking",
			logger.String("booking_id", bookingID.String()),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking aborted", booking)
}

// CompleteBooking handles a driver closing a booking after drop-off
func (h *DispatchHandler) CompleteBooking(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.dispatchUC.CompleteBooking(c.Request().Context(), bookingID, driverID)
	if err != nil {
		logger.Error("Failed to complete booking",
			logger.String("booking_id", bookingID.String()),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking completed", booking)
}
