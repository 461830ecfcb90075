package account

import (
	"context"

	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
)

// UserRepo defines the interface for account data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gceits/campusfleet/services/account UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
}
