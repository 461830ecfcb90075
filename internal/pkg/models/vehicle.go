package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleType represents the kind of fleet vehicle
type VehicleType string

const (
	VehicleTypeBus       VehicleType = "bus"
	VehicleTypeAmbulance VehicleType = "ambulance"
)

// Valid reports whether the vehicle type is one the fleet operates.
func (t VehicleType) Valid() bool {
	return t == VehicleTypeBus || t == VehicleTypeAmbulance
}

// Vehicle represents a fleet vehicle owned by the assignment registry
type Vehicle struct {
	ID               uuid.UUID   `json:"id" db:"id"`
	VehicleNumber    string      `json:"vehicle_number" db:"vehicle_number"`
	GPSDeviceID      string      `json:"gps_device_id" db:"gps_device_id"`
	Barcode          string      `json:"barcode,omitempty" db:"barcode"`
	Type             VehicleType `json:"vehicle_type" db:"vehicle_type"`
	AssignedDriverID *uuid.UUID  `json:"assigned_driver_id,omitempty" db:"assigned_driver_id"`
	OutOfStation     bool        `json:"out_of_station" db:"out_of_station"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
}

// VehicleRegisterRequest represents an admin request to add a vehicle
type VehicleRegisterRequest struct {
	VehicleNumber string      `json:"vehicle_number" validate:"required"`
	GPSDeviceID   string      `json:"gps_device_id" validate:"required"`
	Barcode       string      `json:"barcode,omitempty"`
	Type          VehicleType `json:"vehicle_type" validate:"required"`
}

// OutOfStationRequest toggles the out-of-station flag on a vehicle
type OutOfStationRequest struct {
	OutOfStation bool `json:"out_of_station"`
}
