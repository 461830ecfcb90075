// Package apperrors defines the error taxonomy shared by the fleet,
// telemetry and dispatch services. Every violated precondition maps to
// a distinct sentinel so callers can react to the specific failure
// rather than a generic invalid-request error.
package apperrors

import "errors"

// Kind classifies an application error
type Kind int

const (
	// KindPrecondition marks a state-machine precondition failure
	// (double-assign, double-accept, wrong OTP state).
	KindPrecondition Kind = iota + 1
	// KindNotFound marks an unknown vehicle/driver/booking/device.
	KindNotFound
	// KindUnauthorized marks an actor mismatch.
	KindUnauthorized
	// KindValidation marks malformed input.
	KindValidation
	// KindTransient marks a persistence failure after retries.
	KindTransient
)

// Error is an application error with a kind and a stable code
type Error struct {
	kind    Kind
	code    string
	message string
}

// New creates an application error
func New(kind Kind, code, message string) *Error {
	return &Error{kind: kind, code: code, message: message}
}

func (e *Error) Error() string { return e.message }

// Kind returns the error classification
func (e *Error) Kind() Kind { return e.kind }

// Code returns the stable machine-readable code
func (e *Error) Code() string { return e.code }

// KindOf extracts the Kind from an error chain; zero if none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return 0
}

// CodeOf extracts the stable code from an error chain; empty if none.
func CodeOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.code
	}
	return ""
}

// Assignment registry errors
var (
	ErrVehicleNotFound     = New(KindNotFound, "VEHICLE_NOT_FOUND", "vehicle not found")
	ErrDriverNotFound      = New(KindNotFound, "DRIVER_NOT_FOUND", "driver not found")
	ErrAlreadyAssigned     = New(KindPrecondition, "ALREADY_ASSIGNED", "vehicle or driver already has a different assignment")
	ErrNotAssigned         = New(KindPrecondition, "NOT_ASSIGNED", "vehicle is not assigned to this driver")
	ErrVehicleTypeMismatch = New(KindPrecondition, "VEHICLE_TYPE_MISMATCH", "driver type does not match vehicle type")
)

// Trip session errors
var (
	ErrTripNotFound      = New(KindNotFound, "TRIP_NOT_FOUND", "trip not found")
	ErrNoAssignment      = New(KindPrecondition, "NO_ASSIGNMENT", "vehicle is not assigned to the requesting driver")
	ErrTripAlreadyActive = New(KindPrecondition, "TRIP_ALREADY_ACTIVE", "vehicle already has an active trip")
	ErrTripNotActive     = New(KindPrecondition, "TRIP_NOT_ACTIVE", "trip is not active")
)

// Telemetry errors
var (
	ErrUnknownDevice   = New(KindNotFound, "UNKNOWN_DEVICE", "device is not registered")
	ErrStudentNotFound = New(KindNotFound, "STUDENT_NOT_FOUND", "student not found")
)

// Dispatch engine errors
var (
	ErrBookingNotFound        = New(KindNotFound, "BOOKING_NOT_FOUND", "booking not found")
	ErrInvalidLocation        = New(KindValidation, "INVALID_LOCATION", "pickup place is not a known code and has no details")
	ErrInvalidPhone           = New(KindValidation, "INVALID_PHONE", "phone number is not valid")
	ErrBookingAlreadyAccepted = New(KindPrecondition, "ALREADY_ACCEPTED", "booking has already been accepted")
	ErrBookingNotAccepted     = New(KindPrecondition, "BOOKING_NOT_ACCEPTED", "booking is not in the accepted state")
	ErrBookingNotInProgress   = New(KindPrecondition, "BOOKING_NOT_IN_PROGRESS", "booking is not in progress")
	ErrInvalidOTP             = New(KindPrecondition, "INVALID_OTP", "OTP does not match")
	ErrDriverMismatch         = New(KindUnauthorized, "DRIVER_MISMATCH", "booking is assigned to a different driver")
	ErrNoAmbulanceAssigned    = New(KindPrecondition, "NO_AMBULANCE_ASSIGNED", "driver has no ambulance assigned")
	ErrVehicleOutOfStation    = New(KindPrecondition, "VEHICLE_OUT_OF_STATION", "vehicle is out of station")
)

// Account errors
var (
	ErrUserNotFound       = New(KindNotFound, "USER_NOT_FOUND", "user not found")
	ErrUserAlreadyExists  = New(KindValidation, "USER_ALREADY_EXISTS", "user already exists with this phone or registration id")
	ErrInvalidCredentials = New(KindUnauthorized, "INVALID_CREDENTIALS", "invalid phone or password")
)

// Store errors
var (
	ErrStoreUnavailable = New(KindTransient, "STORE_UNAVAILABLE", "persistence retries exhausted")
)
