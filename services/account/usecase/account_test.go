package usecase

import (
	"context"
	"testing"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/services/account/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUC(t *testing.T) (*accountUC, *mocks.MockUserRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepo(ctrl)

	cfg := &models.Config{
		JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "campusfleet-test"},
	}

	uc, err := NewAccountUC(cfg, repo)
	require.NoError(t, err)

	return uc.(*accountUC), repo
}

func signupRequest() models.SignupRequest {
	return models.SignupRequest{
		Name:           "Asha Verma",
		Phone:          "+911234567890",
		Password:       "s3cret-pass",
		RegistrationID: "REG-1001",
		Role:           models.RoleStudent,
	}
}

func TestSignup(t *testing.T) {
	t.Run("creates student account with token", func(t *testing.T) {
		uc, repo := newTestUC(t)

		repo.EXPECT().GetUserByPhone(gomock.Any(), "+911234567890").Return(nil, apperrors.ErrUserNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, user *models.User) error {
				user.ID = uuid.New()
				assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
				return nil
			})

		auth, err := uc.Signup(context.Background(), signupRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, auth.Token)
		assert.Equal(t, models.RoleStudent, auth.User.Role)
	})

	t.Run("rejects duplicate phone", func(t *testing.T) {
		uc, repo := newTestUC(t)

		repo.EXPECT().GetUserByPhone(gomock.Any(), "+911234567890").Return(&models.User{ID: uuid.New()}, nil)

		_, err := uc.Signup(context.Background(), signupRequest())
		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	})

	t.Run("rejects driver without driver type", func(t *testing.T) {
		uc, _ := newTestUC(t)

		req := signupRequest()
		req.Role = models.RoleDriver
		req.DriverType = ""

		_, err := uc.Signup(context.Background(), req)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("rejects student without registration ID", func(t *testing.T) {
		uc, _ := newTestUC(t)

		req := signupRequest()
		req.RegistrationID = ""

		_, err := uc.Signup(context.Background(), req)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	})

	t.Run("defaults empty role to student", func(t *testing.T) {
		uc, repo := newTestUC(t)

		repo.EXPECT().GetUserByPhone(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, user *models.User) error {
				assert.Equal(t, models.RoleStudent, user.Role)
				user.ID = uuid.New()
				return nil
			})

		req := signupRequest()
		req.Role = ""

		_, err := uc.Signup(context.Background(), req)
		require.NoError(t, err)
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &models.User{
		ID:           uuid.New(),
		Phone:        "+911234567890",
		PasswordHash: string(hash),
		Role:         models.RoleDriver,
	}

	t.Run("authenticates with correct password", func(t *testing.T) {
		uc, repo := newTestUC(t)

		repo.EXPECT().GetUserByPhone(gomock.Any(), "+911234567890").Return(storedUser, nil)

		auth, err := uc.Login(context.Background(), models.LoginRequest{Phone: "+911234567890", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, auth.Token)
		assert.Greater(t, auth.ExpiresAt, int64(0))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		uc, repo := newTestUC(t)

		repo.EXPECT().GetUserByPhone(gomock.Any(), "+911234567890").Return(storedUser, nil)

		_, err := uc.Login(context.Background(), models.LoginRequest{Phone: "+911234567890", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("hides unknown accounts", func(t *testing.T) {
		uc, repo := newTestUC(t)

		repo.EXPECT().GetUserByPhone(gomock.Any(), "+910000000000").Return(nil, apperrors.ErrUserNotFound)

		_, err := uc.Login(context.Background(), models.LoginRequest{Phone: "+910000000000", Password: "whatever"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestGetProfile(t *testing.T) {
	uc, repo := newTestUC(t)
	userID := uuid.New()

	repo.EXPECT().GetUserByID(gomock.Any(), userID).Return(&models.User{ID: userID, Name: "Asha Verma"}, nil)

	user, err := uc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", user.Name)
}

func TestListDrivers(t *testing.T) {
	uc, repo := newTestUC(t)

	repo.EXPECT().ListByRole(gomock.Any(), models.RoleDriver).Return([]models.User{
		{ID: uuid.New(), Role: models.RoleDriver, DriverType: "bus"},
		{ID: uuid.New(), Role: models.RoleDriver, DriverType: "ambulance"},
	}, nil)

	drivers, err := uc.ListDrivers(context.Background())
	require.NoError(t, err)
	assert.Len(t, drivers, 2)
}
