package usecase

import (
	"context"
	"errors"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/services/fleet"
	"github.com/google/uuid"
)

type fleetUC struct {
	cfg          *models.Config
	fleetRepo    fleet.FleetRepo
	locationRepo fleet.LocationRepo
}

// NewFleetUC creates a new fleet use case
func NewFleetUC(
	cfg *models.Config,
	fleetRepo fleet.FleetRepo,
	locationRepo fleet.LocationRepo,
) (fleet.FleetUC, error) {
	return &fleetUC{
		cfg:          cfg,
		fleetRepo:    fleetRepo,
		locationRepo: locationRepo,
	}, nil
}

// RegisterVehicle adds a vehicle to the registry
func (uc *fleetUC) RegisterVehicle(ctx context.Context, req models.VehicleRegisterRequest) (*models.Vehicle, error) {
	if !req.Type.Valid() {
		return nil, apperrors.ErrVehicleTypeMismatch
	}
	if req.VehicleNumber == "" || req.GPSDeviceID == "" {
		return nil, apperrors.New(apperrors.KindValidation, "MISSING_FIELDS", "vehicle number and GPS device ID are required")
	}

	vehicle := &models.Vehicle{
		VehicleNumber: req.VehicleNumber,
		GPSDeviceID:   req.GPSDeviceID,
		Barcode:       req.Barcode,
		Type:          req.Type,
	}
	if err := uc.fleetRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.Info("Vehicle registered",
		logger.String("vehicle_id", vehicle.ID.String()),
		logger.String("vehicle_number", vehicle.VehicleNumber),
		logger.String("vehicle_type", string(vehicle.Type)))

	return vehicle, nil
}

// GetVehicle retrieves a vehicle by ID
func (uc *fleetUC) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return uc.fleetRepo.GetVehicle(ctx, id)
}

// ListVehicles retrieves vehicles, optionally narrowed by type or to
// those free for assignment
func (uc *fleetUC) ListVehicles(ctx context.Context, vehicleType models.VehicleType, unassignedOnly bool) ([]models.Vehicle, error) {
	if vehicleType != "" && !vehicleType.Valid() {
		return nil, apperrors.ErrVehicleTypeMismatch
	}
	return uc.fleetRepo.ListVehicles(ctx, vehicleType, unassignedOnly)
}

// SetOutOfStation marks a vehicle as withdrawn from (or returned to) service
func (uc *fleetUC) SetOutOfStation(ctx context.Context, vehicleID uuid.UUID, outOfStation bool) (*models.Vehicle, error) {
	if err := uc.fleetRepo.SetOutOfStation(ctx, vehicleID, outOfStation); err != nil {
		return nil, err
	}
	return uc.fleetRepo.GetVehicle(ctx, vehicleID)
}

// AssignDriver binds a driver to a vehicle. The binding is exclusive both
// ways and the driver's type must match the vehicle's type.
func (uc *fleetUC) AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := uc.fleetRepo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	driver, err := uc.fleetRepo.GetDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.DriverType != string(vehicle.Type) {
		return nil, apperrors.ErrVehicleTypeMismatch
	}

	if err := uc.fleetRepo.AssignDriver(ctx, vehicleID, driverID); err != nil {
		return nil, err
	}

	logger.Info("Driver assigned to vehicle",
		logger.String("vehicle_id", vehicleID.String()),
		logger.String("driver_id", driverID.String()))

	return uc.fleetRepo.GetVehicle(ctx, vehicleID)
}

// ReleaseDriver unbinds a driver from a vehicle. Any trip still open on
// the vehicle is force-closed so the trip invariant survives the unbind.
func (uc *fleetUC) ReleaseDriver(ctx context.Context, vehicleID, driverID uuid.UUID) (*models.Vehicle, error) {
	if err := uc.fleetRepo.ReleaseDriver(ctx, vehicleID, driverID); err != nil {
		return nil, err
	}

	if err := uc.locationRepo.RemoveLocation(ctx, vehicleID); err != nil {
		// live position cleanup is best effort
		logger.Warn("Failed to remove vehicle location on release",
			logger.String("vehicle_id", vehicleID.String()),
			logger.Err(err))
	}

	logger.Info("Driver released from vehicle",
		logger.String("vehicle_id", vehicleID.String()),
		logger.String("driver_id", driverID.String()))

	return uc.fleetRepo.GetVehicle(ctx, vehicleID)
}

// StartTrip opens a trip for the driver's assigned vehicle
func (uc *fleetUC) StartTrip(ctx context.Context, vehicleID, driverID uuid.UUID) (*models.Trip, error) {
	vehicle, err := uc.fleetRepo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.AssignedDriverID == nil || *vehicle.AssignedDriverID != driverID {
		return nil, apperrors.ErrNoAssignment
	}

	if _, err := uc.fleetRepo.GetActiveTripByVehicle(ctx, vehicleID); err == nil {
		return nil, apperrors.ErrTripAlreadyActive
	} else if !errors.Is(err, apperrors.ErrTripNotFound) {
		return nil, err
	}

	trip := &models.Trip{
		VehicleID:   vehicleID,
		DriverID:    driverID,
		VehicleType: vehicle.Type,
	}
	if err := uc.fleetRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	logger.Info("Trip started",
		logger.String("trip_id", trip.ID.String()),
		logger.String("vehicle_id", vehicleID.String()),
		logger.String("driver_id", driverID.String()))

	return trip, nil
}

// EndTrip closes the trip; only the driver who owns it may close it
func (uc *fleetUC) EndTrip(ctx context.Context, tripID, driverID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.fleetRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.DriverID != driverID {
		return nil, apperrors.ErrDriverMismatch
	}
	if !trip.Active() {
		return nil, apperrors.ErrTripNotActive
	}

	ended, err := uc.fleetRepo.EndTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	logger.Info("Trip ended",
		logger.String("trip_id", tripID.String()),
		logger.String("vehicle_id", ended.VehicleID.String()))

	return ended, nil
}

// ListActiveBuses returns buses on an open trip with their latest
// position layered on where the live store has one
func (uc *fleetUC) ListActiveBuses(ctx context.Context) ([]models.ActiveBus, error) {
	buses, err := uc.fleetRepo.ListActiveBuses(ctx)
	if err != nil {
		return nil, err
	}

	for i := range buses {
		location, err := uc.locationRepo.GetLocation(ctx, buses[i].VehicleID)
		if err != nil {
			if errors.Is(err, apperrors.ErrVehicleNotFound) {
				continue
			}
			logger.Warn("Failed to load bus location",
				logger.String("vehicle_id", buses[i].VehicleID.String()),
				logger.Err(err))
			continue
		}
		buses[i].Location = location
	}

	return buses, nil
}

// GetVehicleByDeviceID resolves a GPS device to its vehicle
func (uc *fleetUC) GetVehicleByDeviceID(ctx context.Context, deviceID string) (*models.Vehicle, error) {
	vehicle, err := uc.fleetRepo.GetVehicleByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrVehicleNotFound) {
			return nil, apperrors.ErrUnknownDevice
		}
		return nil, err
	}
	return vehicle, nil
}

// GetActiveTripByVehicle retrieves the open trip for a vehicle, if any
func (uc *fleetUC) GetActiveTripByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Trip, error) {
	return uc.fleetRepo.GetActiveTripByVehicle(ctx, vehicleID)
}

// GetDriverVehicle retrieves the vehicle the driver is assigned to
func (uc *fleetUC) GetDriverVehicle(ctx context.Context, driverID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := uc.fleetRepo.GetVehicleByDriver(ctx, driverID)
	if err != nil {
		if errors.Is(err, apperrors.ErrVehicleNotFound) {
			return nil, apperrors.ErrNoAssignment
		}
		return nil, err
	}
	return vehicle, nil
}

// StoreVehicleLocation records the latest position for a vehicle
func (uc *fleetUC) StoreVehicleLocation(ctx context.Context, vehicleID uuid.UUID, location models.Location) error {
	return uc.locationRepo.StoreLocation(ctx, vehicleID, location)
}

// GetVehicleLocation retrieves the latest known position for a vehicle
func (uc *fleetUC) GetVehicleLocation(ctx context.Context, vehicleID uuid.UUID) (*models.Location, error) {
	return uc.locationRepo.GetLocation(ctx, vehicleID)
}
