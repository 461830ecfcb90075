package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleStudent = "student"
	RoleDriver  = "driver"
	RoleAdmin   = "admin"
)

// User represents an account in the system (student, driver or admin)
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Phone          string    `json:"phone" db:"phone"`
	Email          string    `json:"email,omitempty" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	RegistrationID string    `json:"registration_id,omitempty" db:"registration_id"`
	Role           string    `json:"role" db:"role"`
	DriverType     string    `json:"driver_type,omitempty" db:"driver_type"` // "bus" or "ambulance", drivers only
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// SignupRequest represents a request to register a new account
type SignupRequest struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email,omitempty"`
	Password       string `json:"password" validate:"required"`
	RegistrationID string `json:"registration_id,omitempty"`
	Role           string `json:"role"`
	DriverType     string `json:"driver_type,omitempty"`
}

// LoginRequest represents a request to authenticate with phone and password
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}
