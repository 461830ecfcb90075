package http

import (
	"net/http"
	"strconv"

	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/utils"
	"github.com/gceits/campusfleet/services/fleet"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FleetHandler handles HTTP requests for fleet operations
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet HTTP handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

// RegisterVehicle handles admin vehicle registration
func (h *FleetHandler) RegisterVehicle(c echo.Context) error {
	var req models.VehicleRegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	vehicle, err := h.fleetUC.RegisterVehicle(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to register vehicle",
			logger.String("vehicle_number", req.VehicleNumber),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered successfully", vehicle)
}

// GetVehicle handles vehicle detail lookup
func (h *FleetHandler) GetVehicle(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	vehicle, err := h.fleetUC.GetVehicle(c.Request().Context(), vehicleID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

// ListVehicles handles vehicle listing with optional filters
func (h *FleetHandler) ListVehicles(c echo.Context) error {
	vehicleType := models.VehicleType(c.QueryParam("type"))
	unassignedOnly, _ := strconv.ParseBool(c.QueryParam("unassigned"))

	vehicles, err := h.fleetUC.ListVehicles(c.Request().Context(), vehicleType, unassignedOnly)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

// AssignDriver handles admin driver-to-vehicle assignment
func (h *FleetHandler) AssignDriver(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var req struct {
		DriverID uuid.UUID `json:"driver_id"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	vehicle, err := h.fleetUC.AssignDriver(c.Request().Context(), vehicleID, req.DriverID)
	if err != nil {
		logger.Error("Failed to assign driver",
			logger.String("vehicle_id", vehicleID.String()),
			logger.String("driver_id", req.DriverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned successfully", vehicle)
}

// ReleaseDriver handles admin driver-from-vehicle release
func (h *FleetHandler) ReleaseDriver(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var req struct {
		DriverID uuid.UUID `json:"driver_id"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == uuid.Nil {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	vehicle, err := h.fleetUC.ReleaseDriver(c.Request().Context(), vehicleID, req.DriverID)
	if err != nil {
		logger.Error("Failed to release driver",
			logger.String("vehicle_id", vehicleID.String()),
			logger.String("driver_id", req.DriverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver released successfully", vehicle)
}

// SetOutOfStation handles admin out-of-station toggling
func (h *FleetHandler) SetOutOfStation(c echo.Context) error {
	vehicleID, err := uuid.Parse(c.Param("vehicleID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid vehicle ID")
	}

	var req models.OutOfStationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	vehicle, err := h.fleetUC.SetOutOfStation(c.Request().Context(), vehicleID, req.OutOfStation)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", vehicle)
}

// StartTrip handles a driver opening a trip on their assigned vehicle
func (h *FleetHandler) StartTrip(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.StartTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.VehicleID == uuid.Nil {
		return utils.BadRequestResponse(c, "Vehicle ID is required")
	}

	trip, err := h.fleetUC.StartTrip(c.Request().Context(), req.VehicleID, driverID)
	if err != nil {
		logger.Error("Failed to start trip",
			logger.String("vehicle_id", req.VehicleID.String()),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip started successfully", trip)
}

// EndTrip handles a driver closing their trip
func (h *FleetHandler) EndTrip(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.fleetUC.EndTrip(c.Request().Context(), tripID, driverID)
	if err != nil {
		logger.Error("Failed to end trip",
			logger.String("trip_id", tripID.String()),
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip ended successfully", trip)
}

// GetActiveTrip handles a driver looking up the open trip on their vehicle
func (h *FleetHandler) GetActiveTrip(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	vehicle, err := h.fleetUC.GetDriverVehicle(c.Request().Context(), driverID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	trip, err := h.fleetUC.GetActiveTripByVehicle(c.Request().Context(), vehicle.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active trip retrieved successfully", trip)
}

// ListActiveBuses handles the rider-facing live bus listing
func (h *FleetHandler) ListActiveBuses(c echo.Context) error {
	buses, err := h.fleetUC.ListActiveBuses(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list active buses", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Active buses retrieved successfully", buses)
}
