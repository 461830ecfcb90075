package models

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a geographical position report
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Speed     float64   `json:"speed,omitempty" db:"speed"` // km/h
	Geohash   string    `json:"geohash,omitempty" db:"geohash"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// VehicleLocationEvent is broadcast whenever an attributable position
// update is recorded for a vehicle.
type VehicleLocationEvent struct {
	VehicleID     uuid.UUID   `json:"vehicle_id"`
	VehicleNumber string      `json:"vehicle_number"`
	VehicleType   VehicleType `json:"vehicle_type"`
	Location      Location    `json:"location"`
}
