package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/services/telemetry/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	repo     *mocks.MockTelemetryRepo
	gw       *mocks.MockTelemetryGW
	fleet    *mocks.MockFleetProvider
	dispatch *mocks.MockDispatchProvider
}

func newTestUC(t *testing.T) (*telemetryUC, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		repo:     mocks.NewMockTelemetryRepo(ctrl),
		gw:       mocks.NewMockTelemetryGW(ctrl),
		fleet:    mocks.NewMockFleetProvider(ctrl),
		dispatch: mocks.NewMockDispatchProvider(ctrl),
	}

	cfg := &models.Config{
		Telemetry: models.TelemetryConfig{SpeedLimitKmh: 40, OffenceMaxRetries: 2},
	}

	uc, err := NewTelemetryUC(cfg, deps.repo, deps.gw, deps.fleet, deps.dispatch)
	require.NoError(t, err)

	return uc.(*telemetryUC), deps
}

func busVehicle() *models.Vehicle {
	return &models.Vehicle{
		ID:            uuid.New(),
		VehicleNumber: "KA-01-F-1234",
		GPSDeviceID:   "gps-001",
		Type:          models.VehicleTypeBus,
	}
}

func ambulanceVehicle() *models.Vehicle {
	return &models.Vehicle{
		ID:            uuid.New(),
		VehicleNumber: "KA-01-A-9999",
		GPSDeviceID:   "gps-amb",
		Type:          models.VehicleTypeAmbulance,
	}
}

func TestIngestGPS_BusOverspeed(t *testing.T) {
	uc, deps := newTestUC(t)

	vehicle := busVehicle()
	driverID := uuid.New()
	trip := &models.Trip{ID: uuid.New(), VehicleID: vehicle.ID, DriverID: driverID}

	deps.fleet.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-001").Return(vehicle, nil)
	deps.fleet.EXPECT().StoreVehicleLocation(gomock.Any(), vehicle.ID, gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishVehicleLocation(gomock.Any(), gomock.Any()).Return(nil)
	deps.fleet.EXPECT().GetActiveTripByVehicle(gomock.Any(), vehicle.ID).Return(trip, nil)
	deps.gw.EXPECT().PublishOffence(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, offence models.Offence) error {
			assert.Equal(t, models.OffenceKindBusOverspeed, offence.Kind)
			assert.Equal(t, driverID, *offence.DriverID)
			assert.Equal(t, vehicle.ID, *offence.VehicleID)
			assert.InDelta(t, 41.0, offence.Speed, 0.001)
			assert.InDelta(t, 40.0, offence.SpeedLimit, 0.001)
			return nil
		})

	err := uc.IngestGPS(context.Background(), models.GPSPing{
		DeviceID:  "gps-001",
		Latitude:  12.9716,
		Longitude: 77.5946,
		Speed:     41,
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
}

func TestIngestGPS_BusAtLimit(t *testing.T) {
	uc, deps := newTestUC(t)

	vehicle := busVehicle()

	deps.fleet.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-001").Return(vehicle, nil)
	deps.fleet.EXPECT().StoreVehicleLocation(gomock.Any(), vehicle.ID, gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishVehicleLocation(gomock.Any(), gomock.Any()).Return(nil)
	// exactly at the limit is not an offence, no trip lookup needed

	err := uc.IngestGPS(context.Background(), models.GPSPing{
		DeviceID: "gps-001", Speed: 40, Timestamp: time.Now(),
	})
	require.NoError(t, err)
}

func TestIngestGPS_OutOfStationBus(t *testing.T) {
	uc, deps := newTestUC(t)

	vehicle := busVehicle()
	vehicle.OutOfStation = true

	deps.fleet.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-001").Return(vehicle, nil)
	deps.fleet.EXPECT().StoreVehicleLocation(gomock.Any(), vehicle.ID, gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishVehicleLocation(gomock.Any(), gomock.Any()).Return(nil)

	// an out-of-station bus is off campus, overspeed pings are
	// positional only even while a trip is open
	err := uc.IngestGPS(context.Background(), models.GPSPing{
		DeviceID: "gps-001", Speed: 50, Timestamp: time.Now(),
	})
	require.NoError(t, err)
}

func TestIngestGPS_OffencePublishFailure(t *testing.T) {
	uc, deps := newTestUC(t)

	vehicle := busVehicle()
	trip := &models.Trip{ID: uuid.New(), VehicleID: vehicle.ID, DriverID: uuid.New()}

	deps.fleet.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-001").Return(vehicle, nil)
	deps.fleet.EXPECT().StoreVehicleLocation(gomock.Any(), vehicle.ID, gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishVehicleLocation(gomock.Any(), gomock.Any()).Return(nil)
	deps.fleet.EXPECT().GetActiveTripByVehicle(gomock.Any(), vehicle.ID).Return(trip, nil)
	deps.gw.EXPECT().PublishOffence(gomock.Any(), gomock.Any()).Return(apperrors.ErrStoreUnavailable)

	// a broker outage never fails the ingestion call
	err := uc.IngestGPS(context.Background(), models.GPSPing{
		DeviceID: "gps-001", Speed: 55, Timestamp: time.Now(),
	})
	require.NoError(t, err)
}

func TestIngestGPS_BusBetweenTrips(t *testing.T) {
	uc, deps := newTestUC(t)

	vehicle := busVehicle()

	deps.fleet.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-001").Return(vehicle, nil)
	deps.fleet.EXPECT().StoreVehicleLocation(gomock.Any(), vehicle.ID, gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishVehicleLocation(gomock.Any(), gomock.Any()).Return(nil)
	deps.fleet.EXPECT().GetActiveTripByVehicle(gomock.Any(), vehicle.ID).Return(nil, apperrors.ErrTripNotFound)

	// overspeed without an active trip is positional only
	err := uc.IngestGPS(context.Background(), models.GPSPing{
		DeviceID: "gps-001", Speed: 75, Timestamp: time.Now(),
	})
	require.NoError(t, err)
}

func TestIngestGPS_AmbulanceExempt(t *testing.T) {
	uc, deps := newTestUC(t)

	vehicle := ambulanceVehicle()

	deps.fleet.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-amb").Return(vehicle, nil)
	deps.fleet.EXPECT().StoreVehicleLocation(gomock.Any(), vehicle.ID, gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishVehicleLocation(gomock.Any(), gomock.Any()).Return(nil)
	deps.dispatch.EXPECT().GetActiveBookingByVehicle(gomock.Any(), vehicle.ID).Return(nil, apperrors.ErrBookingNotFound)

	// 90 km/h from an ambulance never produces an offence
	err := uc.IngestGPS(context.Background(), models.GPSPing{
		DeviceID: "gps-amb", Speed: 90, Timestamp: time.Now(),
	})
	require.NoError(t, err)
}

func TestIngestGPS_AmbulanceRefreshesBookingETA(t *testing.T) {
	uc, deps := newTestUC(t)

	vehicle := ambulanceVehicle()
	booking := &models.Booking{ID: uuid.New(), Status: models.BookingStatusAccepted, VehicleID: &vehicle.ID}

	deps.fleet.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-amb").Return(vehicle, nil)
	deps.fleet.EXPECT().StoreVehicleLocation(gomock.Any(), vehicle.ID, gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishVehicleLocation(gomock.Any(), gomock.Any()).Return(nil)
	deps.dispatch.EXPECT().GetActiveBookingByVehicle(gomock.Any(), vehicle.ID).Return(booking, nil)
	deps.dispatch.EXPECT().RefreshETA(gomock.Any(), vehicle.ID, gomock.Any()).Return(nil)

	err := uc.IngestGPS(context.Background(), models.GPSPing{
		DeviceID: "gps-amb", Latitude: 12.97, Longitude: 77.59, Speed: 35, Timestamp: time.Now(),
	})
	require.NoError(t, err)
}

func TestIngestGPS_UnknownDevice(t *testing.T) {
	uc, deps := newTestUC(t)

	deps.fleet.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-999").Return(nil, apperrors.ErrUnknownDevice)

	err := uc.IngestGPS(context.Background(), models.GPSPing{DeviceID: "gps-999", Speed: 30})
	assert.ErrorIs(t, err, apperrors.ErrUnknownDevice)
}

func TestIngestRFIDScan(t *testing.T) {
	device := &models.RFIDDevice{ID: uuid.New(), RFIDID: "rfid-01", LocationName: "Main Gate"}
	student := &models.User{ID: uuid.New(), RegistrationID: "REG-1001", Role: models.RoleStudent}

	t.Run("flags student overspeed", func(t *testing.T) {
		uc, deps := newTestUC(t)

		deps.repo.EXPECT().GetRFIDDevice(gomock.Any(), "rfid-01").Return(device, nil)
		deps.repo.EXPECT().GetStudentByRegistrationID(gomock.Any(), "REG-1001").Return(student, nil)
		deps.gw.EXPECT().PublishOffence(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, offence models.Offence) error {
				assert.Equal(t, models.OffenceKindStudentSpeed, offence.Kind)
				assert.Equal(t, student.ID, *offence.StudentID)
				assert.Equal(t, "Main Gate", offence.LocationName)
				return nil
			})

		err := uc.IngestRFIDScan(context.Background(), models.RFIDScan{
			RFIDID: "rfid-01", StudentRegistrationID: "REG-1001", Speed: 55, Timestamp: time.Now(),
		})
		require.NoError(t, err)
	})

	t.Run("ignores scan under the limit", func(t *testing.T) {
		uc, deps := newTestUC(t)

		// no student lookup below the limit, an unknown registration
		// must not fail a clean pass-through
		deps.repo.EXPECT().GetRFIDDevice(gomock.Any(), "rfid-01").Return(device, nil)

		err := uc.IngestRFIDScan(context.Background(), models.RFIDScan{
			RFIDID: "rfid-01", StudentRegistrationID: "REG-9999", Speed: 20,
		})
		require.NoError(t, err)
	})

	t.Run("acknowledges scan when offence publish fails", func(t *testing.T) {
		uc, deps := newTestUC(t)

		deps.repo.EXPECT().GetRFIDDevice(gomock.Any(), "rfid-01").Return(device, nil)
		deps.repo.EXPECT().GetStudentByRegistrationID(gomock.Any(), "REG-1001").Return(student, nil)
		deps.gw.EXPECT().PublishOffence(gomock.Any(), gomock.Any()).Return(apperrors.ErrStoreUnavailable)

		err := uc.IngestRFIDScan(context.Background(), models.RFIDScan{
			RFIDID: "rfid-01", StudentRegistrationID: "REG-1001", Speed: 55, Timestamp: time.Now(),
		})
		require.NoError(t, err)
	})

	t.Run("rejects unregistered scanner", func(t *testing.T) {
		uc, deps := newTestUC(t)

		deps.repo.EXPECT().GetRFIDDevice(gomock.Any(), "rfid-99").Return(nil, apperrors.ErrUnknownDevice)

		err := uc.IngestRFIDScan(context.Background(), models.RFIDScan{
			RFIDID: "rfid-99", StudentRegistrationID: "REG-1001", Speed: 55,
		})
		assert.ErrorIs(t, err, apperrors.ErrUnknownDevice)
	})
}

func TestRecordOffence(t *testing.T) {
	offence := func() *models.Offence {
		return &models.Offence{ID: uuid.New(), Kind: models.OffenceKindBusOverspeed, Speed: 50, SpeedLimit: 40}
	}

	t.Run("persists on first attempt", func(t *testing.T) {
		uc, deps := newTestUC(t)

		deps.repo.EXPECT().CreateOffence(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, uc.RecordOffence(context.Background(), offence()))
	})

	t.Run("retries transient failures", func(t *testing.T) {
		uc, deps := newTestUC(t)

		gomock.InOrder(
			deps.repo.EXPECT().CreateOffence(gomock.Any(), gomock.Any()).Return(apperrors.ErrStoreUnavailable),
			deps.repo.EXPECT().CreateOffence(gomock.Any(), gomock.Any()).Return(nil),
		)

		require.NoError(t, uc.RecordOffence(context.Background(), offence()))
	})

	t.Run("drops offence after exhausting retries", func(t *testing.T) {
		uc, deps := newTestUC(t)

		// OffenceMaxRetries is 2, so three attempts in total
		deps.repo.EXPECT().CreateOffence(gomock.Any(), gomock.Any()).Return(apperrors.ErrStoreUnavailable).Times(3)

		// exhaustion is logged, not surfaced to the consumer
		require.NoError(t, uc.RecordOffence(context.Background(), offence()))
	})
}

func TestRegisterRFIDDevice(t *testing.T) {
	t.Run("registers scanner", func(t *testing.T) {
		uc, deps := newTestUC(t)

		deps.repo.EXPECT().CreateRFIDDevice(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, device *models.RFIDDevice) error {
				device.ID = uuid.New()
				return nil
			})

		device, err := uc.RegisterRFIDDevice(context.Background(), models.RFIDDeviceRegisterRequest{
			RFIDID: "rfid-02", LocationName: "Library",
		})
		require.NoError(t, err)
		assert.Equal(t, "Library", device.LocationName)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		uc, _ := newTestUC(t)

		_, err := uc.RegisterRFIDDevice(context.Background(), models.RFIDDeviceRegisterRequest{RFIDID: "rfid-02"})
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}
