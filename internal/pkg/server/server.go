// Package server runs the Echo HTTP server with signal-driven shutdown
// and drains the broker consumers and data stores behind it in order.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

const drainTimeout = 30 * time.Second

// GracefulServer wraps Echo with signal handling and a bounded drain
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: zapLogger,
		port:   port,
	}
}

// Start serves until SIGINT or SIGTERM arrives, then drains in-flight
// requests and returns. Telemetry devices retry on their own schedule,
// so a clean drain is all that is needed here.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains the HTTP server within the drain timeout
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

type cleanup struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager tears down components after the HTTP server stops.
// Cleanups run in registration order: consumers before the stores they
// write to, so in-flight offences land before connections close.
type ShutdownManager struct {
	logger   *logger.ZapLogger
	cleanups []cleanup
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a named cleanup to run during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.cleanups = append(sm.cleanups, cleanup{name: name, fn: fn})
}

// Shutdown runs every registered cleanup, continuing past failures so a
// stuck broker connection cannot keep the database pool open.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.cleanups)))

	for _, c := range sm.cleanups {
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return nil
}
