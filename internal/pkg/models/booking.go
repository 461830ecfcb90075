package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the current state of an ambulance booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Terminal reports whether no further transition is defined out of the status.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// PlaceOther is the free-text pickup place code; it requires place details.
const PlaceOther = "other"

// PlaceNames maps the fixed campus pickup place codes to their names.
var PlaceNames = map[string]string{
	"1": "Main Gate",
	"2": "Hostel Block",
	"3": "Library",
	"4": "Academic Block",
	"5": "Sports Complex",
	"6": "Canteen",
}

// Booking represents an emergency ambulance booking. The dispatch engine
// owns it for its whole lifetime; records in a terminal state are retained
// as immutable history.
type Booking struct {
	ID                    uuid.UUID     `json:"id" db:"id"`
	StudentRegistrationID string        `json:"student_registration_id" db:"student_registration_id"`
	StudentName           string        `json:"student_name,omitempty" db:"student_name"`
	Phone                 string        `json:"phone" db:"phone"`
	Place                 string        `json:"place" db:"place"`
	PlaceDetails          string        `json:"place_details,omitempty" db:"place_details"`
	UserLatitude          float64       `json:"user_latitude" db:"user_latitude"`
	UserLongitude         float64       `json:"user_longitude" db:"user_longitude"`
	Status                BookingStatus `json:"status" db:"status"`
	DriverID              *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	VehicleID             *uuid.UUID    `json:"vehicle_id,omitempty" db:"vehicle_id"`
	VehicleNumber         string        `json:"vehicle_number,omitempty" db:"vehicle_number"`
	OTP                   string        `json:"otp,omitempty" db:"otp"`
	ETAMinutes            *int          `json:"eta_minutes,omitempty" db:"eta_minutes"`
	CreatedAt             time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingRequest represents a rider request for an ambulance
type BookingRequest struct {
	StudentRegistrationID string  `json:"student_registration_id" validate:"required"`
	Phone                 string  `json:"phone" validate:"required"`
	Place                 string  `json:"place" validate:"required"`
	PlaceDetails          string  `json:"place_details,omitempty"`
	UserLatitude          float64 `json:"user_latitude"`
	UserLongitude         float64 `json:"user_longitude"`
}

// OTPVerifyRequest carries the rider's code for the pickup gate
type OTPVerifyRequest struct {
	OTP string `json:"otp" validate:"required"`
}

// Booking event types published on the booking event stream
const (
	BookingEventCreated   = "booking_created"
	BookingEventAccepted  = "booking_accepted"
	BookingEventCancelled = "booking_cancelled"
	BookingEventCompleted = "booking_completed"
	BookingEventETAUpdate = "booking_eta_update"
)

// BookingEvent is broadcast on booking lifecycle transitions so
// notification collaborators can push updates to clients.
type BookingEvent struct {
	Type      string    `json:"type"`
	BookingID uuid.UUID `json:"booking_id"`
	Booking   *Booking  `json:"booking,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
