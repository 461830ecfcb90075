package models

import (
	"time"

	"github.com/google/uuid"
)

// GPSPing is a raw position report from a vehicle tracking device.
// Pings are transient input: they update live vehicle state and may
// spawn an offence, but are not persisted as entities themselves.
type GPSPing struct {
	DeviceID  string    `json:"device_id" validate:"required"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Speed     float64   `json:"speed"` // km/h
	Timestamp time.Time `json:"timestamp"`
}

// RFIDScan is a raw scan report from a campus RFID speed scanner
type RFIDScan struct {
	RFIDID                string    `json:"rfid_id" validate:"required"`
	StudentRegistrationID string    `json:"student_registration_id" validate:"required"`
	Speed                 float64   `json:"speed"` // km/h
	Timestamp             time.Time `json:"timestamp"`
}

// RFIDDevice represents a registered campus RFID scanner
type RFIDDevice struct {
	ID           uuid.UUID `json:"id" db:"id"`
	RFIDID       string    `json:"rfid_id" db:"rfid_id"`
	LocationName string    `json:"location_name" db:"location_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RFIDDeviceRegisterRequest represents an admin request to add a scanner
type RFIDDeviceRegisterRequest struct {
	RFIDID       string `json:"rfid_id" validate:"required"`
	LocationName string `json:"location_name" validate:"required"`
}
