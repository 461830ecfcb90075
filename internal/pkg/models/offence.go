package models

import (
	"time"

	"github.com/google/uuid"
)

// OffenceKind represents the category of a speed violation
type OffenceKind string

const (
	OffenceKindBusOverspeed OffenceKind = "bus_overspeed"
	OffenceKindStudentSpeed OffenceKind = "student_speed"
)

// Offence represents a recorded speed violation. Bus offences carry the
// driver and vehicle on duty at detection time; student offences carry
// the student and the scanner that caught them.
type Offence struct {
	ID                    uuid.UUID   `json:"id" db:"id"`
	Kind                  OffenceKind `json:"kind" db:"kind"`
	DriverID              *uuid.UUID  `json:"driver_id,omitempty" db:"driver_id"`
	VehicleID             *uuid.UUID  `json:"vehicle_id,omitempty" db:"vehicle_id"`
	VehicleNumber         string      `json:"vehicle_number,omitempty" db:"vehicle_number"`
	StudentID             *uuid.UUID  `json:"student_id,omitempty" db:"student_id"`
	StudentRegistrationID string      `json:"student_registration_id,omitempty" db:"student_registration_id"`
	RFIDID                string      `json:"rfid_id,omitempty" db:"rfid_id"`
	Speed                 float64     `json:"speed" db:"speed"`
	SpeedLimit            float64     `json:"speed_limit" db:"speed_limit"`
	Latitude              *float64    `json:"latitude,omitempty" db:"latitude"`
	Longitude             *float64    `json:"longitude,omitempty" db:"longitude"`
	LocationName          string      `json:"location_name,omitempty" db:"location_name"`
	Timestamp             time.Time   `json:"timestamp" db:"timestamp"`
	Paid                  bool        `json:"paid" db:"paid"`
}

// OffenceFilter narrows admin offence listings
type OffenceFilter struct {
	Kind OffenceKind
	Paid *bool
}
