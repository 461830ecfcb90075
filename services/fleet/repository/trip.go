package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// CreateTrip opens a new trip for the vehicle. The partial unique index
// on (vehicle_id) WHERE end_time IS NULL guarantees a single active trip
// per vehicle even under concurrent starts.
func (r *FleetRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	trip.ID = uuid.New()
	trip.StartTime = time.Now()

	query := `
		INSERT INTO trips (id, vehicle_id, driver_id, vehicle_type, start_time, end_time)
		VALUES (:id, :vehicle_id, :driver_id, :vehicle_type, :start_time, :end_time)
	`
	_, err := r.db.NamedExecContext(ctx, query, trip)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrTripAlreadyActive
		}
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}

// GetTrip retrieves a trip by ID
func (r *FleetRepo) GetTrip(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, vehicle_id, driver_id, vehicle_type, start_time, end_time
		FROM trips WHERE id = $1
	`

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return &trip, nil
}

// GetActiveTripByVehicle retrieves the open trip for a vehicle, if any
func (r *FleetRepo) GetActiveTripByVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, vehicle_id, driver_id, vehicle_type, start_time, end_time
		FROM trips WHERE vehicle_id = $1 AND end_time IS NULL
	`

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, fmt.Errorf("failed to get active trip: %w", err)
	}

	return &trip, nil
}

// EndTrip closes the trip. The end_time IS NULL guard makes concurrent
// closes race-safe: only one caller observes the transition.
func (r *FleetRepo) EndTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `
		UPDATE trips SET end_time = $1
		WHERE id = $2 AND end_time IS NULL
		RETURNING id, vehicle_id, driver_id, vehicle_type, start_time, end_time
	`

	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, time.Now(), tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTripNotActive
		}
		return nil, fmt.Errorf("failed to end trip: %w", err)
	}

	return &trip, nil
}

// ListActiveBuses retrieves all buses currently on an open trip together
// with their driver's display name. Out-of-station buses are hidden from
// the rider map. Live positions are layered on from the location store by
// the caller.
func (r *FleetRepo) ListActiveBuses(ctx context.Context) ([]models.ActiveBus, error) {
	query := `
		SELECT t.id AS trip_id, t.vehicle_id, v.vehicle_number, t.driver_id, u.name AS driver_name
		FROM trips t
		JOIN vehicles v ON v.id = t.vehicle_id
		JOIN users u ON u.id = t.driver_id
		WHERE t.end_time IS NULL AND t.vehicle_type = 'bus' AND v.out_of_station = FALSE
		ORDER BY v.vehicle_number
	`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active buses: %w", err)
	}
	defer rows.Close()

	buses := []models.ActiveBus{}
	for rows.Next() {
		var bus models.ActiveBus
		if err := rows.Scan(&bus.TripID, &bus.VehicleID, &bus.VehicleNumber, &bus.DriverID, &bus.DriverName); err != nil {
			return nil, fmt.Errorf("failed to scan active bus: %w", err)
		}
		buses = append(buses, bus)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate active buses: %w", err)
	}

	return buses, nil
}

func isUniqueViolation(err error) bool {
	// SQLSTATE 23505 is unique_violation
	return err != nil && strings.Contains(err.Error(), "23505")
}
