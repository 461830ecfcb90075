package account

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// AccountUC defines the interface for account business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gceits/campusfleet/services/account AccountUC
type AccountUC interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	ListDrivers(ctx context.Context) ([]models.User, error)
}
