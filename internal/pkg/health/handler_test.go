package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewPingHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewPingHandler("campusfleet-test")
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, "campusfleet-test", response.ServiceName)
	assert.Equal(t, runtime.Version(), response.GoVersion)
	assert.False(t, response.ServerTime.IsZero())
}

func TestPingRouteRegistered(t *testing.T) {
	e := echo.New()
	zapLogger := &logger.ZapLogger{Logger: zap.NewNop()}
	RegisterEnhancedHealthEndpoints(e, "campusfleet-test", "1.0.0", NewHealthService(zapLogger))

	for _, endpoint := range []string{"/ping", "/health", "/health/live"} {
		req := httptest.NewRequest(http.MethodGet, endpoint, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, endpoint)
	}
}

type staticChecker struct {
	err error
}

func (s staticChecker) CheckHealth(ctx context.Context) error { return s.err }

func TestHealthService_CheckAllHealth(t *testing.T) {
	zapLogger := &logger.ZapLogger{Logger: zap.NewNop()}

	t.Run("all dependencies healthy", func(t *testing.T) {
		svc := NewHealthService(zapLogger)
		svc.AddChecker("postgres", staticChecker{})
		svc.AddChecker("redis", staticChecker{})

		response := svc.CheckAllHealth(context.Background())

		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
		assert.Equal(t, "healthy", response.Dependencies["redis"].Status)
	})

	t.Run("one dependency down marks service unhealthy", func(t *testing.T) {
		svc := NewHealthService(zapLogger)
		svc.AddChecker("postgres", staticChecker{})
		svc.AddChecker("nsq", staticChecker{err: errors.New("connection refused")})

		response := svc.CheckAllHealth(context.Background())

		assert.Equal(t, "unhealthy", response.Status)
		assert.Equal(t, "healthy", response.Dependencies["postgres"].Status)
		assert.Equal(t, "unhealthy", response.Dependencies["nsq"].Status)
		assert.Equal(t, "connection refused", response.Dependencies["nsq"].Error)
	})
}

func TestRegisterEnhancedHealthEndpoints(t *testing.T) {
	zapLogger := &logger.ZapLogger{Logger: zap.NewNop()}

	t.Run("healthy dependencies", func(t *testing.T) {
		e := echo.New()
		svc := NewHealthService(zapLogger)
		svc.AddChecker("postgres", staticChecker{})
		RegisterEnhancedHealthEndpoints(e, "campusfleet-test", "1.0.0", svc)

		req := httptest.NewRequest(http.MethodGet, "/health/detailed", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var response HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "campusfleet-test", response.Service)
		assert.Equal(t, "1.0.0", response.Version)
	})

	t.Run("unhealthy dependency returns 503", func(t *testing.T) {
		e := echo.New()
		svc := NewHealthService(zapLogger)
		svc.AddChecker("redis", staticChecker{err: errors.New("down")})
		RegisterEnhancedHealthEndpoints(e, "campusfleet-test", "1.0.0", svc)

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
