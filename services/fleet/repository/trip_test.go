package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockFleetRepo(t *testing.T) (*FleetRepo, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewFleetRepository(&models.Config{}, sqlx.NewDb(mockDB, "pgx")), mock
}

func activeBusRows(buses ...models.ActiveBus) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"trip_id", "vehicle_id", "vehicle_number", "driver_id", "driver_name"})
	for _, b := range buses {
		rows.AddRow(b.TripID.String(), b.VehicleID.String(), b.VehicleNumber, b.DriverID.String(), b.DriverName)
	}
	return rows
}

func TestListActiveBuses(t *testing.T) {
	t.Run("returns on-campus buses with open trips", func(t *testing.T) {
		repo, mock := newMockFleetRepo(t)

		bus := models.ActiveBus{
			TripID:        uuid.New(),
			VehicleID:     uuid.New(),
			VehicleNumber: "CF-BUS-1",
			DriverID:      uuid.New(),
			DriverName:    "Ravi Kumar",
		}

		// the rider map query must exclude out-of-station vehicles
		mock.ExpectQuery(`end_time IS NULL AND t\.vehicle_type = 'bus' AND v\.out_of_station = FALSE`).
			WillReturnRows(activeBusRows(bus))

		buses, err := repo.ListActiveBuses(context.Background())
		require.NoError(t, err)
		require.Len(t, buses, 1)
		assert.Equal(t, bus.TripID, buses[0].TripID)
		assert.Equal(t, "CF-BUS-1", buses[0].VehicleNumber)
		assert.Equal(t, "Ravi Kumar", buses[0].DriverName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty list when nothing is running", func(t *testing.T) {
		repo, mock := newMockFleetRepo(t)

		mock.ExpectQuery(`end_time IS NULL AND t\.vehicle_type = 'bus' AND v\.out_of_station = FALSE`).
			WillReturnRows(activeBusRows())

		buses, err := repo.ListActiveBuses(context.Background())
		require.NoError(t, err)
		assert.Empty(t, buses)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
