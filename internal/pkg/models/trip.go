package models

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a bounded interval of active vehicle operation.
// A trip with a nil EndTime is active; at most one trip per vehicle
// may be active at any instant.
type Trip struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	VehicleID   uuid.UUID   `json:"vehicle_id" db:"vehicle_id"`
	DriverID    uuid.UUID   `json:"driver_id" db:"driver_id"`
	VehicleType VehicleType `json:"vehicle_type" db:"vehicle_type"`
	StartTime   time.Time   `json:"start_time" db:"start_time"`
	EndTime     *time.Time  `json:"end_time,omitempty" db:"end_time"`
}

// Active reports whether the trip is still open.
func (t *Trip) Active() bool {
	return t.EndTime == nil
}

// StartTripRequest represents a driver request to open a trip
type StartTripRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" validate:"required"`
}

// ActiveBus is the rider-facing view of a bus currently on a trip
type ActiveBus struct {
	TripID        uuid.UUID `json:"trip_id"`
	VehicleID     uuid.UUID `json:"vehicle_id"`
	VehicleNumber string    `json:"vehicle_number"`
	DriverID      uuid.UUID `json:"driver_id"`
	DriverName    string    `json:"driver_name"`
	Location      *Location `json:"location,omitempty"`
}
