package handler

import (
	"github.com/gceits/campusfleet/internal/pkg/middleware"
	"github.com/gceits/campusfleet/internal/pkg/models"
	"github.com/gceits/campusfleet/services/account"
	httpHandler "github.com/gceits/campusfleet/services/account/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the account service
type Handler struct {
	accountHTTP *httpHandler.AccountHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	accountUC account.AccountUC,
	cfg *models.Config,
) *Handler {
	return &Handler{
		accountHTTP: httpHandler.NewAccountHandler(accountUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	e.POST("/auth/signup", h.accountHTTP.Signup)
	e.POST("/auth/login", h.accountHTTP.Login)

	e.GET("/me", h.accountHTTP.GetProfile, auth)

	admin := e.Group("/admin", auth, middleware.RequireRole(models.RoleAdmin))
	admin.GET("/drivers", h.accountHTTP.ListDrivers)
}
