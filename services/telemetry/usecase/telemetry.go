package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	pkgcontext "github.com/gceits/campusfleet/internal/pkg/context"
	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/pkg/retry"
	"github.com/gceits/campusfleet/services/telemetry"
	"github.com/google/uuid"
)

type telemetryUC struct {
	cfg           *models.Config
	telemetryRepo telemetry.TelemetryRepo
	telemetryGW   telemetry.TelemetryGW
	fleetProvider telemetry.FleetProvider
	dispatch      telemetry.DispatchProvider
	retrier       *retry.Retrier
}

// NewTelemetryUC creates a new telemetry use case
func NewTelemetryUC(
	cfg *models.Config,
	telemetryRepo telemetry.TelemetryRepo,
	telemetryGW telemetry.TelemetryGW,
	fleetProvider telemetry.FleetProvider,
	dispatch telemetry.DispatchProvider,
) (telemetry.TelemetryUC, error) {
	retryConfig := retry.DefaultConfig()
	if cfg.Telemetry.OffenceMaxRetries > 0 {
		retryConfig.MaxRetries = cfg.Telemetry.OffenceMaxRetries
	}

	return &telemetryUC{
		cfg:           cfg,
		telemetryRepo: telemetryRepo,
		telemetryGW:   telemetryGW,
		fleetProvider: fleetProvider,
		dispatch:      dispatch,
		retrier:       retry.New(retryConfig, logger.GetGlobalLogger()),
	}, nil
}

// IngestGPS processes a position report from a vehicle tracking device.
// The ping updates the vehicle's live position, refreshes the ETA of any
// booking the vehicle is serving, and may flag a speed offence. Ambulances
// are exempt from the speed limit.
func (uc *telemetryUC) IngestGPS(ctx context.Context, ping models.GPSPing) error {
	vehicle, err := uc.fleetProvider.GetVehicleByDeviceID(ctx, ping.DeviceID)
	if err != nil {
		return err
	}

	if ping.Timestamp.IsZero() {
		ping.Timestamp = time.Now()
	}
	location := models.Location{
		Latitude:  ping.Latitude,
		Longitude: ping.Longitude,
		Speed:     ping.Speed,
		Timestamp: ping.Timestamp,
	}

	if err := uc.fleetProvider.StoreVehicleLocation(ctx, vehicle.ID, location); err != nil {
		return err
	}

	if err := uc.telemetryGW.PublishVehicleLocation(ctx, models.VehicleLocationEvent{
		VehicleID:     vehicle.ID,
		VehicleNumber: vehicle.VehicleNumber,
		VehicleType:   vehicle.Type,
		Location:      location,
	}); err != nil {
		// downstream subscribers can tolerate a missed tick
		logger.Warn("Failed to publish vehicle location event",
			logger.String("vehicle_id", vehicle.ID.String()),
			logger.Err(err))
	}

	if vehicle.Type == models.VehicleTypeAmbulance {
		return uc.refreshBookingETA(ctx, vehicle.ID, location)
	}

	return uc.checkBusSpeed(ctx, vehicle, ping)
}

// refreshBookingETA recomputes the rider-facing ETA when the ambulance is
// serving an active booking
func (uc *telemetryUC) refreshBookingETA(ctx context.Context, vehicleID uuid.UUID, location models.Location) error {
	_, err := uc.dispatch.GetActiveBookingByVehicle(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			return nil
		}
		return err
	}

	if err := uc.dispatch.RefreshETA(ctx, vehicleID, location); err != nil {
		logger.Warn("Failed to refresh booking ETA",
			logger.String("vehicle_id", vehicleID.String()),
			logger.Err(err))
	}

	return nil
}

// checkBusSpeed flags an offence when a bus on an active trip exceeds the
// campus speed limit. Pings from buses between trips are positional only,
// and out-of-station buses are off campus where the limit does not apply.
func (uc *telemetryUC) checkBusSpeed(ctx context.Context, vehicle *models.Vehicle, ping models.GPSPing) error {
	if ping.Speed <= uc.cfg.Telemetry.SpeedLimitKmh {
		return nil
	}
	if vehicle.OutOfStation {
		return nil
	}

	trip, err := uc.fleetProvider.GetActiveTripByVehicle(ctx, vehicle.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTripNotFound) {
			return nil
		}
		return err
	}

	offence := models.Offence{
		ID:            uuid.New(),
		Kind:          models.OffenceKindBusOverspeed,
		DriverID:      &trip.DriverID,
		VehicleID:     &vehicle.ID,
		VehicleNumber: vehicle.VehicleNumber,
		Speed:         ping.Speed,
		SpeedLimit:    uc.cfg.Telemetry.SpeedLimitKmh,
		Latitude:      &ping.Latitude,
		Longitude:     &ping.Longitude,
		Timestamp:     ping.Timestamp,
	}

	logger.Info("Bus overspeed detected",
		logger.String("vehicle_number", vehicle.VehicleNumber),
		logger.String("driver_id", trip.DriverID.String()),
		logger.Float64("speed", ping.Speed),
		logger.Float64("speed_limit", uc.cfg.Telemetry.SpeedLimitKmh))

	uc.publishOffence(ctx, offence)

	return nil
}

// IngestRFIDScan processes a speed report from a campus RFID scanner.
// Scans from unregistered scanners are rejected.
func (uc *telemetryUC) IngestRFIDScan(ctx context.Context, scan models.RFIDScan) error {
	device, err := uc.telemetryRepo.GetRFIDDevice(ctx, scan.RFIDID)
	if err != nil {
		return err
	}

	if scan.Speed <= uc.cfg.Telemetry.SpeedLimitKmh {
		return nil
	}

	student, err := uc.telemetryRepo.GetStudentByRegistrationID(ctx, scan.StudentRegistrationID)
	if err != nil {
		return err
	}

	if scan.Timestamp.IsZero() {
		scan.Timestamp = time.Now()
	}
	offence := models.Offence{
		ID:                    uuid.New(),
		Kind:                  models.OffenceKindStudentSpeed,
		StudentID:             &student.ID,
		StudentRegistrationID: student.RegistrationID,
		RFIDID:                device.RFIDID,
		LocationName:          device.LocationName,
		Speed:                 scan.Speed,
		SpeedLimit:            uc.cfg.Telemetry.SpeedLimitKmh,
		Timestamp:             scan.Timestamp,
	}

	logger.Info("Student overspeed detected",
		logger.String("registration_id", student.RegistrationID),
		logger.String("rfid_id", device.RFIDID),
		logger.Float64("speed", scan.Speed))

	uc.publishOffence(ctx, offence)

	return nil
}

// publishOffence hands a detected offence to the recording pipeline.
// Detection must never fail the ingestion call, so a broker outage is
// logged and the ping is still acknowledged.
func (uc *telemetryUC) publishOffence(ctx context.Context, offence models.Offence) {
	if err := uc.telemetryGW.PublishOffence(ctx, offence); err != nil {
		logger.Error("Failed to publish offence event",
			logger.String("offence_id", offence.ID.String()),
			logger.String("kind", string(offence.Kind)),
			logger.Err(err))
	}
}

// RegisterRFIDDevice adds a scanner to the registry
func (uc *telemetryUC) RegisterRFIDDevice(ctx context.Context, req models.RFIDDeviceRegisterRequest) (*models.RFIDDevice, error) {
	if req.RFIDID == "" || req.LocationName == "" {
		return nil, apperrors.New(apperrors.KindValidation, "MISSING_FIELDS", "RFID ID and location name are required")
	}

	device := &models.RFIDDevice{
		RFIDID:       req.RFIDID,
		LocationName: req.LocationName,
	}
	if err := uc.telemetryRepo.CreateRFIDDevice(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

// ListRFIDDevices retrieves all registered scanners
func (uc *telemetryUC) ListRFIDDevices(ctx context.Context) ([]models.RFIDDevice, error) {
	return uc.telemetryRepo.ListRFIDDevices(ctx)
}

// RecordOffence persists an offence from the offence stream. Transient
// store failures are retried with backoff; after the attempts are spent
// the offence is dropped with an error log rather than poisoning the
// consumer channel.
func (uc *telemetryUC) RecordOffence(ctx context.Context, offence *models.Offence) error {
	err := uc.retrier.Execute(ctx, func(ctx context.Context) error {
		return uc.telemetryRepo.CreateOffence(ctx, offence)
	})
	if err != nil {
		logger.Error("Dropping offence after exhausting persistence retries",
			logger.String("offence_id", offence.ID.String()),
			logger.String("kind", string(offence.Kind)),
			logger.String("request_id", pkgcontext.GetRequestID(ctx)),
			logger.Err(err))
		return nil
	}

	return nil
}

// ListOffences retrieves offences for admin review
func (uc *telemetryUC) ListOffences(ctx context.Context, filter models.OffenceFilter) ([]models.Offence, error) {
	return uc.telemetryRepo.ListOffences(ctx, filter)
}

// MarkOffencePaid settles an offence fine
func (uc *telemetryUC) MarkOffencePaid(ctx context.Context, id uuid.UUID) error {
	return uc.telemetryRepo.MarkOffencePaid(ctx, id)
}
