package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewUserRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateUser inserts a new account
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (id, name, phone, email, password_hash, registration_id, role, driver_type, created_at)
		VALUES (:id, :name, :phone, :email, :password_hash, :registration_id, :role, :driver_type, :created_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves an account by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByPhone retrieves an account by phone number
func (r *UserRepo) GetUserByPhone(ctx context.Context, phone string) (*models.User, error) {
	return r.getUserByField(ctx, "phone", phone)
}

func (r *UserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, phone, email, password_hash, registration_id, role, driver_type, created_at
		FROM users WHERE %s = $1
	`, field)

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ListByRole retrieves all accounts with the given role
func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	query := `
		SELECT id, name, phone, email, password_hash, registration_id, role, driver_type, created_at
		FROM users WHERE role = $1 ORDER BY name
	`

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, role); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
