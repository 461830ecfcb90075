package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/services/fleet/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUC(t *testing.T) (*fleetUC, *mocks.MockFleetRepo, *mocks.MockLocationRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockFleetRepo(ctrl)
	locations := mocks.NewMockLocationRepo(ctrl)

	uc, err := NewFleetUC(&models.Config{}, repo, locations)
	require.NoError(t, err)

	return uc.(*fleetUC), repo, locations
}

func TestRegisterVehicle(t *testing.T) {
	t.Run("creates vehicle", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		repo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, vehicle *models.Vehicle) error {
				vehicle.ID = uuid.New()
				return nil
			})

		vehicle, err := uc.RegisterVehicle(context.Background(), models.VehicleRegisterRequest{
			VehicleNumber: "KA-01-F-1234",
			GPSDeviceID:   "gps-001",
			Type:          models.VehicleTypeBus,
		})
		require.NoError(t, err)
		assert.Equal(t, "KA-01-F-1234", vehicle.VehicleNumber)
		assert.Equal(t, models.VehicleTypeBus, vehicle.Type)
	})

	t.Run("rejects unknown vehicle type", func(t *testing.T) {
		uc, _, _ := newTestUC(t)

		_, err := uc.RegisterVehicle(context.Background(), models.VehicleRegisterRequest{
			VehicleNumber: "KA-01-F-1234",
			GPSDeviceID:   "gps-001",
			Type:          "scooter",
		})
		assert.ErrorIs(t, err, apperrors.ErrVehicleTypeMismatch)
	})

	t.Run("rejects missing device ID", func(t *testing.T) {
		uc, _, _ := newTestUC(t)

		_, err := uc.RegisterVehicle(context.Background(), models.VehicleRegisterRequest{
			VehicleNumber: "KA-01-F-1234",
			Type:          models.VehicleTypeBus,
		})
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})
}

func TestAssignDriver(t *testing.T) {
	vehicleID := uuid.New()
	driverID := uuid.New()

	busVehicle := func() *models.Vehicle {
		return &models.Vehicle{ID: vehicleID, VehicleNumber: "KA-01-F-1234", Type: models.VehicleTypeBus}
	}
	busDriver := func() *models.User {
		return &models.User{ID: driverID, Role: models.RoleDriver, DriverType: "bus"}
	}

	t.Run("binds matching driver", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		bound := busVehicle()
		bound.AssignedDriverID = &driverID

		repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(busVehicle(), nil)
		repo.EXPECT().GetDriver(gomock.Any(), driverID).Return(busDriver(), nil)
		repo.EXPECT().AssignDriver(gomock.Any(), vehicleID, driverID).Return(nil)
		repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(bound, nil)

		vehicle, err := uc.AssignDriver(context.Background(), vehicleID, driverID)
		require.NoError(t, err)
		require.NotNil(t, vehicle.AssignedDriverID)
		assert.Equal(t, driverID, *vehicle.AssignedDriverID)
	})

	t.Run("rejects type mismatch", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		ambulanceDriver := busDriver()
		ambulanceDriver.DriverType = "ambulance"

		repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(busVehicle(), nil)
		repo.EXPECT().GetDriver(gomock.Any(), driverID).Return(ambulanceDriver, nil)

		_, err := uc.AssignDriver(context.Background(), vehicleID, driverID)
		assert.ErrorIs(t, err, apperrors.ErrVehicleTypeMismatch)
	})

	t.Run("surfaces exclusivity conflict", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(busVehicle(), nil)
		repo.EXPECT().GetDriver(gomock.Any(), driverID).Return(busDriver(), nil)
		repo.EXPECT().AssignDriver(gomock.Any(), vehicleID, driverID).Return(apperrors.ErrAlreadyAssigned)

		_, err := uc.AssignDriver(context.Background(), vehicleID, driverID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyAssigned)
	})
}

func TestReleaseDriver(t *testing.T) {
	vehicleID := uuid.New()
	driverID := uuid.New()

	t.Run("releases and clears live position", func(t *testing.T) {
		uc, repo, locations := newTestUC(t)

		repo.EXPECT().ReleaseDriver(gomock.Any(), vehicleID, driverID).Return(nil)
		locations.EXPECT().RemoveLocation(gomock.Any(), vehicleID).Return(nil)
		repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{ID: vehicleID}, nil)

		vehicle, err := uc.ReleaseDriver(context.Background(), vehicleID, driverID)
		require.NoError(t, err)
		assert.Nil(t, vehicle.AssignedDriverID)
	})

	t.Run("fails when driver not bound", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		repo.EXPECT().ReleaseDriver(gomock.Any(), vehicleID, driverID).Return(apperrors.ErrNotAssigned)

		_, err := uc.ReleaseDriver(context.Background(), vehicleID, driverID)
		assert.ErrorIs(t, err, apperrors.ErrNotAssigned)
	})
}

func TestStartTrip(t *testing.T) {
	vehicleID := uuid.New()
	driverID := uuid.New()

	assignedVehicle := func() *models.Vehicle {
		return &models.Vehicle{ID: vehicleID, Type: models.VehicleTypeBus, AssignedDriverID: &driverID}
	}

	t.Run("opens trip for assigned driver", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(assignedVehicle(), nil)
		repo.EXPECT().GetActiveTripByVehicle(gomock.Any(), vehicleID).Return(nil, apperrors.ErrTripNotFound)
		repo.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, trip *models.Trip) error {
				trip.ID = uuid.New()
				trip.StartTime = time.Now()
				return nil
			})

		trip, err := uc.StartTrip(context.Background(), vehicleID, driverID)
		require.NoError(t, err)
		assert.Equal(t, vehicleID, trip.VehicleID)
		assert.Equal(t, driverID, trip.DriverID)
		assert.Equal(t, models.VehicleTypeBus, trip.VehicleType)
		assert.True(t, trip.Active())
	})

	t.Run("rejects unassigned driver", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&models.Vehicle{ID: vehicleID, Type: models.VehicleTypeBus}, nil)

		_, err := uc.StartTrip(context.Background(), vehicleID, driverID)
		assert.ErrorIs(t, err, apperrors.ErrNoAssignment)
	})

	t.Run("rejects second active trip", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		repo.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(assignedVehicle(), nil)
		repo.EXPECT().GetActiveTripByVehicle(gomock.Any(), vehicleID).Return(&models.Trip{ID: uuid.New(), VehicleID: vehicleID}, nil)

		_, err := uc.StartTrip(context.Background(), vehicleID, driverID)
		assert.ErrorIs(t, err, apperrors.ErrTripAlreadyActive)
	})
}

func TestEndTrip(t *testing.T) {
	tripID := uuid.New()
	vehicleID := uuid.New()
	driverID := uuid.New()

	activeTrip := func() *models.Trip {
		return &models.Trip{ID: tripID, VehicleID: vehicleID, DriverID: driverID, StartTime: time.Now()}
	}

	t.Run("closes own trip", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		now := time.Now()
		ended := activeTrip()
		ended.EndTime = &now

		repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(activeTrip(), nil)
		repo.EXPECT().EndTrip(gomock.Any(), tripID).Return(ended, nil)

		trip, err := uc.EndTrip(context.Background(), tripID, driverID)
		require.NoError(t, err)
		assert.False(t, trip.Active())
	})

	t.Run("rejects another driver's trip", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(activeTrip(), nil)

		_, err := uc.EndTrip(context.Background(), tripID, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrDriverMismatch)
	})

	t.Run("rejects already closed trip", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		now := time.Now()
		closed := activeTrip()
		closed.EndTime = &now

		repo.EXPECT().GetTrip(gomock.Any(), tripID).Return(closed, nil)

		_, err := uc.EndTrip(context.Background(), tripID, driverID)
		assert.ErrorIs(t, err, apperrors.ErrTripNotActive)
	})
}

func TestListActiveBuses(t *testing.T) {
	uc, repo, locations := newTestUC(t)

	trackedID := uuid.New()
	silentID := uuid.New()

	repo.EXPECT().ListActiveBuses(gomock.Any()).Return([]models.ActiveBus{
		{TripID: uuid.New(), VehicleID: trackedID, VehicleNumber: "KA-01-F-1111"},
		{TripID: uuid.New(), VehicleID: silentID, VehicleNumber: "KA-01-F-2222"},
	}, nil)
	locations.EXPECT().GetLocation(gomock.Any(), trackedID).Return(
		&models.Location{Latitude: 12.9716, Longitude: 77.5946, Timestamp: time.Now()}, nil)
	locations.EXPECT().GetLocation(gomock.Any(), silentID).Return(nil, apperrors.ErrVehicleNotFound)

	buses, err := uc.ListActiveBuses(context.Background())
	require.NoError(t, err)
	require.Len(t, buses, 2)
	require.NotNil(t, buses[0].Location)
	assert.InDelta(t, 12.9716, buses[0].Location.Latitude, 0.0001)
	assert.Nil(t, buses[1].Location)
}

func TestGetVehicleByDeviceID(t *testing.T) {
	t.Run("resolves device", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		repo.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-001").Return(
			&models.Vehicle{ID: uuid.New(), GPSDeviceID: "gps-001"}, nil)

		vehicle, err := uc.GetVehicleByDeviceID(context.Background(), "gps-001")
		require.NoError(t, err)
		assert.Equal(t, "gps-001", vehicle.GPSDeviceID)
	})

	t.Run("maps unknown device", func(t *testing.T) {
		uc, repo, _ := newTestUC(t)

		repo.EXPECT().GetVehicleByDeviceID(gomock.Any(), "gps-999").Return(nil, apperrors.ErrVehicleNotFound)

		_, err := uc.GetVehicleByDeviceID(context.Background(), "gps-999")
		assert.ErrorIs(t, err, apperrors.ErrUnknownDevice)
	})
}

func TestGetDriverVehicle(t *testing.T) {
	uc, repo, _ := newTestUC(t)
	driverID := uuid.New()

	repo.EXPECT().GetVehicleByDriver(gomock.Any(), driverID).Return(nil, apperrors.ErrVehicleNotFound)

	_, err := uc.GetDriverVehicle(context.Background(), driverID)
	assert.ErrorIs(t, err, apperrors.ErrNoAssignment)
}
