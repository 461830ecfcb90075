package usecase

import (
	"context"
	"errors"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/jwt"
	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/utils"
	"github.com/gceits/campusfleet/services/account"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type accountUC struct {
	cfg      *models.Config
	userRepo account.UserRepo
}

// NewAccountUC creates a new account use case
func NewAccountUC(
	cfg *models.Config,
	userRepo account.UserRepo,
) (account.AccountUC, error) {
	return &accountUC{
		cfg:      cfg,
		userRepo: userRepo,
	}, nil
}

// Signup registers a new account and returns a signed token
func (uc *accountUC) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	if err := validateSignup(&req); err != nil {
		return nil, err
	}

	if _, err := uc.userRepo.GetUserByPhone(ctx, req.Phone); err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		PasswordHash:   string(hash),
		RegistrationID: req.RegistrationID,
		Role:           req.Role,
		DriverType:     req.DriverType,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("Account created",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role),
		logger.String("phone", utils.MaskPhoneNumber(user.Phone)))

	return uc.issueToken(user)
}

func validateSignup(req *models.SignupRequest) error {
	if req.Name == "" || req.Password == "" {
		return apperrors.New(apperrors.KindValidation, "MISSING_FIELDS", "name and password are required")
	}
	if !utils.IsValidPhoneNumber(req.Phone) {
		return apperrors.ErrInvalidPhone
	}
	if req.Email != "" && !utils.IsValidEmail(req.Email) {
		return apperrors.New(apperrors.KindValidation, "INVALID_EMAIL", "invalid email address")
	}

	switch req.Role {
	case "":
		req.Role = models.RoleStudent
	case models.RoleStudent, models.RoleAdmin:
	case models.RoleDriver:
		if req.DriverType != string(models.VehicleTypeBus) && req.DriverType != string(models.VehicleTypeAmbulance) {
			return apperrors.New(apperrors.KindValidation, "INVALID_DRIVER_TYPE", "driver type must be bus or ambulance")
		}
	default:
		return apperrors.New(apperrors.KindValidation, "INVALID_ROLE", "unknown role")
	}

	if req.Role == models.RoleStudent && req.RegistrationID == "" {
		return apperrors.New(apperrors.KindValidation, "MISSING_REGISTRATION_ID", "students need a registration ID")
	}

	return nil
}

// Login authenticates with phone and password
func (uc *accountUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := uc.userRepo.GetUserByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

func (uc *accountUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Phone, user.Role, uc.cfg)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// GetProfile retrieves the caller's account
func (uc *accountUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// ListDrivers retrieves all driver accounts for admin assignment
func (uc *accountUC) ListDrivers(ctx context.Context) ([]models.User, error) {
	return uc.userRepo.ListByRole(ctx, models.RoleDriver)
}
