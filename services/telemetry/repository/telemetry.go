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

type TelemetryRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTelemetryRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *TelemetryRepo {
	return &TelemetryRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateOffence inserts a recorded speed violation. The offence ID is
// assigned at detection time so redelivered stream messages stay
// idempotent via the primary key.
func (r *TelemetryRepo) CreateOffence(ctx context.Context, offence *models.Offence) error {
	if offence.ID == uuid.Nil {
		offence.ID = uuid.New()
	}

	query := `
		INSERT INTO offences (
			id, kind, driver_id, vehicle_id, vehicle_number,
			student_id, student_registration_id, rfid_id,
			speed, speed_limit, latitude, longitude, location_name,
			timestamp, paid
		) VALUES (
			:id, :kind, :driver_id, :vehicle_id, :vehicle_number,
			:student_id, :student_registration_id, :rfid_id,
			:speed, :speed_limit, :latitude, :longitude, :location_name,
			:timestamp, :paid
		) ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.NamedExecContext(ctx, query, offence)
	if err != nil {
		return fmt.Errorf("failed to insert offence: %w", err)
	}

	return nil
}

// ListOffences retrieves offences, optionally narrowed by kind and
// payment state
func (r *TelemetryRepo) ListOffences(ctx context.Context, filter models.OffenceFilter) ([]models.Offence, error) {
	query := `
		SELECT id, kind, driver_id, vehicle_id, vehicle_number,
			student_id, student_registration_id, rfid_id,
			speed, speed_limit, latitude, longitude, location_name,
			timestamp, paid
		FROM offences WHERE 1=1
	`
	args := []interface{}{}
	if filter.Kind != "" {
		args = append(args, filter.Kind)
		query += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if filter.Paid != nil {
		args = append(args, *filter.Paid)
		query += fmt.Sprintf(" AND paid = $%d", len(args))
	}
	query += " ORDER BY timestamp DESC"

	offences := []models.Offence{}
	if err := r.db.SelectContext(ctx, &offences, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list offences: %w", err)
	}

	return offences, nil
}

// MarkOffencePaid settles an offence fine
func (r *TelemetryRepo) MarkOffencePaid(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE offences SET paid = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to update offence: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.New(apperrors.KindNotFound, "OFFENCE_NOT_FOUND", "offence not found")
	}

	return nil
}

// CreateRFIDDevice registers a campus RFID scanner
func (r *TelemetryRepo) CreateRFIDDevice(ctx context.Context, device *models.RFIDDevice) error {
	device.ID = uuid.New()
	device.CreatedAt = time.Now()

	query := `
		INSERT INTO rfid_devices (id, rfid_id, location_name, created_at)
		VALUES (:id, :rfid_id, :location_name, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, device)
	if err != nil {
		return fmt.Errorf("failed to insert RFID device: %w", err)
	}

	return nil
}

// GetRFIDDevice retrieves a registered scanner by its RFID identifier
func (r *TelemetryRepo) GetRFIDDevice(ctx context.Context, rfidID string) (*models.RFIDDevice, error) {
	query := `
		SELECT id, rfid_id, location_name, created_at
		FROM rfid_devices WHERE rfid_id = $1
	`

	var device models.RFIDDevice
	err := r.db.GetContext(ctx, &device, query, rfidID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUnknownDevice
		}
		return nil, fmt.Errorf("failed to get RFID device: %w", err)
	}

	return &device, nil
}

// ListRFIDDevices retrieves all registered scanners
func (r *TelemetryRepo) ListRFIDDevices(ctx context.Context) ([]models.RFIDDevice, error) {
	query := `
		SELECT id, rfid_id, location_name, created_at
		FROM rfid_devices ORDER BY location_name
	`

	devices := []models.RFIDDevice{}
	if err := r.db.SelectContext(ctx, &devices, query); err != nil {
		return nil, fmt.Errorf("failed to list RFID devices: %w", err)
	}

	return devices, nil
}

// GetStudentByRegistrationID retrieves a student account by campus
// registration number
func (r *TelemetryRepo) GetStudentByRegistrationID(ctx context.Context, registrationID string) (*models.User, error) {
	query := `
		SELECT id, name, phone, email, password_hash, registration_id, role, driver_type, created_at
		FROM users WHERE registration_id = $1 AND role = 'student'
	`

	var student models.User
	err := r.db.GetContext(ctx, &student, query, registrationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return &student, nil
}
