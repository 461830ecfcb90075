package http

import (
	"net/http"
	"strconv"

	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/utils"
	"github.com/gceits/campusfleet/services/telemetry"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TelemetryHandler handles HTTP requests for telemetry ingest and
// offence administration
type TelemetryHandler struct {
	telemetryUC telemetry.TelemetryUC
}

// NewTelemetryHandler creates a new telemetry HTTP handler
func NewTelemetryHandler(telemetryUC telemetry.TelemetryUC) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryUC: telemetryUC,
	}
}

// IngestGPS handles a position report from a vehicle tracking device
func (h *TelemetryHandler) IngestGPS(c echo.Context) error {
	var ping models.GPSPing
	if err := c.Bind(&ping); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if ping.DeviceID == "" {
		return utils.BadRequestResponse(c, "Device ID is required")
	}

	if err := h.telemetryUC.IngestGPS(c.Request().Context(), ping); err != nil {
		logger.Error("Failed to ingest GPS ping",
			logger.String("device_id", ping.DeviceID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Ping accepted", nil)
}

// IngestRFIDScan handles a speed report from a campus RFID scanner
func (h *TelemetryHandler) IngestRFIDScan(c echo.Context) error {
	var scan models.RFIDScan
	if err := c.Bind(&scan); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if scan.RFIDID == "" || scan.StudentRegistrationID == "" {
		return utils.BadRequestResponse(c, "RFID ID and student registration ID are required")
	}

	if err := h.telemetryUC.IngestRFIDScan(c.Request().Context(), scan); err != nil {
		logger.Error("Failed to ingest RFID scan",
			logger.String("rfid_id", scan.RFIDID),
			logger.String("registration_id", scan.StudentRegistrationID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Scan accepted", nil)
}

// RegisterRFIDDevice handles admin scanner registration
func (h *TelemetryHandler) RegisterRFIDDevice(c echo.Context) error {
	var req models.RFIDDeviceRegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	device, err := h.telemetryUC.RegisterRFIDDevice(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "RFID device registered successfully", device)
}

// ListRFIDDevices handles admin scanner listing
func (h *TelemetryHandler) ListRFIDDevices(c echo.Context) error {
	devices, err := h.telemetryUC.ListRFIDDevices(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "RFID devices retrieved successfully", devices)
}

// ListOffences handles admin offence review
func (h *TelemetryHandler) ListOffences(c echo.Context) error {
	filter := models.OffenceFilter{
		Kind: models.OffenceKind(c.QueryParam("kind")),
	}
	if paidParam := c.QueryParam("paid"); paidParam != "" {
		paid, err := strconv.ParseBool(paidParam)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid paid filter")
		}
		filter.Paid = &paid
	}

	offences, err := h.telemetryUC.ListOffences(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Offences retrieved successfully", offences)
}

// MarkOffencePaid handles fine settlement
func (h *TelemetryHandler) MarkOffencePaid(c echo.Context) error {
	offenceID, err := uuid.Parse(c.Param("offenceID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid offence ID")
	}

	if err := h.telemetryUC.MarkOffencePaid(c.Request().Context(), offenceID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Offence marked as paid", nil)
}
