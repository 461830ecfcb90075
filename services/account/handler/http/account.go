package http

import (
	"net/http"

	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/internal/utils"
	"github.com/gceits/campusfleet/services/account"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles HTTP requests for account operations
type AccountHandler struct {
	accountUC account.AccountUC
}

// NewAccountHandler creates a new account HTTP handler
func NewAccountHandler(accountUC account.AccountUC) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
	}
}

// Signup handles account registration
func (h *AccountHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	auth, err := h.accountUC.Signup(c.Request().Context(), req)
	if err != nil {
		logger.Error("Failed to sign up",
			logger.String("phone", utils.MaskPhoneNumber(req.Phone)),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", auth)
}

// Login handles authentication
func (h *AccountHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	auth, err := h.accountUC.Login(c.Request().Context(), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", auth)
}

// GetProfile handles the caller's own profile lookup
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}

// ListDrivers handles the admin driver roster lookup
func (h *AccountHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.accountUC.ListDrivers(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", drivers)
}
