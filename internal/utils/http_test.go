package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gceits/campusfleet/internal/pkg/apperrors"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "Vehicle registered", map[string]interface{}{"id": "v-1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Vehicle registered", response.Message)
	assert.Equal(t, "v-1", response.Data.(map[string]interface{})["id"])
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext()

	err := ErrorResponseHandler(c, http.StatusBadRequest, "invalid payload")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "invalid payload", response.Error)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "precondition maps to conflict", err: apperrors.ErrBookingAlreadyAccepted, wantStatus: http.StatusConflict},
		{name: "validation maps to bad request", err: apperrors.ErrInvalidLocation, wantStatus: http.StatusBadRequest},
		{name: "not found maps to 404", err: apperrors.ErrVehicleNotFound, wantStatus: http.StatusNotFound},
		{name: "unauthorized maps to forbidden", err: apperrors.ErrDriverMismatch, wantStatus: http.StatusForbidden},
		{name: "transient maps to service unavailable", err: apperrors.ErrStoreUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "unclassified maps to internal error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, AppErrorResponse(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestConvenienceResponses(t *testing.T) {
	t.Run("unauthorized default message", func(t *testing.T) {
		c, rec := newTestContext()
		require.NoError(t, UnauthorizedResponse(c, ""))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized")
	})

	t.Run("not found default message", func(t *testing.T) {
		c, rec := newTestContext()
		require.NoError(t, NotFoundResponse(c, ""))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Resource not found")
	})
}
