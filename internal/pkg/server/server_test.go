package server

import (
	"context"
	"errors"
	"testing"

	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func nopLogger() *logger.ZapLogger {
	return &logger.ZapLogger{Logger: zap.NewNop()}
}

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, nopLogger(), 9990)

	assert.NotNil(t, gs)
	assert.Equal(t, 9990, gs.port)
	assert.Equal(t, e, gs.echo)
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, nopLogger(), 0)

	// Shutdown on a server that never started should still succeed
	assert.NoError(t, gs.Shutdown())
}

func TestShutdownManager(t *testing.T) {
	t.Run("runs all registered functions in order", func(t *testing.T) {
		sm := NewShutdownManager(nopLogger())

		var order []string
		sm.Register("consumers", func(ctx context.Context) error {
			order = append(order, "consumers")
			return nil
		})
		sm.Register("stores", func(ctx context.Context) error {
			order = append(order, "stores")
			return nil
		})

		assert.NoError(t, sm.Shutdown(context.Background()))
		assert.Equal(t, []string{"consumers", "stores"}, order)
	})

	t.Run("continues after a component fails", func(t *testing.T) {
		sm := NewShutdownManager(nopLogger())

		var called bool
		sm.Register("broker", func(ctx context.Context) error {
			return errors.New("component failure")
		})
		sm.Register("database", func(ctx context.Context) error {
			called = true
			return nil
		})

		assert.NoError(t, sm.Shutdown(context.Background()))
		assert.True(t, called)
	})
}
