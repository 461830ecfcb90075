package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type FleetRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewFleetRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *FleetRepo {
	return &FleetRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateVehicle inserts a new vehicle into the registry
func (r *FleetRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = uuid.New()
	vehicle.CreatedAt = time.Now()

	query := `
		INSERT INTO vehicles (id, vehicle_number, gps_device_id, barcode, vehicle_type, out_of_station, created_at)
		VALUES (:id, :vehicle_number, :gps_device_id, :barcode, :vehicle_type, :out_of_station, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, vehicle)
	if err != nil {
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	return nil
}

// GetVehicle retrieves a vehicle by ID
func (r *FleetRepo) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	return r.getVehicleByField(ctx, "id", id)
}

// GetVehicleByDeviceID retrieves the vehicle carrying the given GPS device
func (r *FleetRepo) GetVehicleByDeviceID(ctx context.Context, deviceID string) (*models.Vehicle, error) {
	return r.getVehicleByField(ctx, "gps_device_id", deviceID)
}

// GetVehicleByDriver retrieves the vehicle currently assigned to the driver
func (r *FleetRepo) GetVehicleByDriver(ctx context.Context, driverID uuid.UUID) (*models.Vehicle, error) {
	return r.getVehicleByField(ctx, "assigned_driver_id", driverID)
}

func (r *FleetRepo) getVehicleByField(ctx context.Context, field string, value interface{}) (*models.Vehicle, error) {
	query := fmt.Sprintf(`
		SELECT id, vehicle_number, gps_device_id, barcode, vehicle_type, assigned_driver_id, out_of_station, created_at
		FROM vehicles WHERE %s = $1
	`, field)

	var vehicle models.Vehicle
	err := r.db.GetContext(ctx, &vehicle, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &vehicle, nil
}

// ListVehicles retrieves vehicles filtered by type and assignment state
func (r *FleetRepo) ListVehicles(ctx context.Context, vehicleType models.VehicleType, unassignedOnly bool) ([]models.Vehicle, error) {
	query := `
		SELECT id, vehicle_number, gps_device_id, barcode, vehicle_type, assigned_driver_id, out_of_station, created_at
		FROM vehicles WHERE 1=1
	`
	args := []interface{}{}
	if vehicleType != "" {
		args = append(args, vehicleType)
		query += fmt.Sprintf(" AND vehicle_type = $%d", len(args))
	}
	if unassignedOnly {
		query += " AND assigned_driver_id IS NULL AND out_of_station = FALSE"
	}
	query += " ORDER BY vehicle_number"

	vehicles := []models.Vehicle{}
	if err := r.db.SelectContext(ctx, &vehicles, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return vehicles, nil
}

// SetOutOfStation toggles the out-of-station flag on a vehicle
func (r *FleetRepo) SetOutOfStation(ctx context.Context, vehicleID uuid.UUID, outOfStation bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET out_of_station = $1 WHERE id = $2`,
		outOfStation, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrVehicleNotFound
	}

	return nil
}

// GetDriver retrieves a driver account by ID
func (r *FleetRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, name, phone, email, password_hash, registration_id, role, driver_type, created_at
		FROM users WHERE id = $1 AND role = 'driver'
	`

	var driver models.User
	err := r.db.GetContext(ctx, &driver, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &driver, nil
}

// AssignDriver binds the driver to the vehicle. Both rows are locked so
// concurrent assignments observe a consistent view; the bind fails when
// either side already holds a different assignment.
func (r *FleetRepo) AssignDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var assignedDriverID uuid.NullUUID
	err = tx.GetContext(ctx, &assignedDriverID,
		`SELECT assigned_driver_id FROM vehicles WHERE id = $1 FOR UPDATE`, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrVehicleNotFound
		}
		return fmt.Errorf("failed to lock vehicle: %w", err)
	}

	if assignedDriverID.Valid {
		if assignedDriverID.UUID == driverID {
			// already bound to this driver, nothing to do
			return nil
		}
		return apperrors.ErrAlreadyAssigned
	}

	var occupied uuid.UUID
	err = tx.GetContext(ctx, &occupied,
		`SELECT id FROM vehicles WHERE assigned_driver_id = $1 FOR UPDATE`, driverID)
	if err == nil {
		return apperrors.ErrAlreadyAssigned
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check driver assignment: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE vehicles SET assigned_driver_id = $1 WHERE id = $2`,
		driverID, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to assign driver: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ReleaseDriver clears the assignment and force-closes any trip still
// open on the vehicle, in one transaction.
func (r *FleetRepo) ReleaseDriver(ctx context.Context, vehicleID, driverID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var assignedDriverID uuid.NullUUID
	err = tx.GetContext(ctx, &assignedDriverID,
		`SELECT assigned_driver_id FROM vehicles WHERE id = $1 FOR UPDATE`, vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrVehicleNotFound
		}
		return fmt.Errorf("failed to lock vehicle: %w", err)
	}

	if !assignedDriverID.Valid || assignedDriverID.UUID != driverID {
		return apperrors.ErrNotAssigned
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE trips SET end_time = $1 WHERE vehicle_id = $2 AND end_time IS NULL`,
		time.Now(), vehicleID)
	if err != nil {
		return fmt.Errorf("failed to close active trip: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE vehicles SET assigned_driver_id = NULL WHERE id = $1`, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to release driver: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
