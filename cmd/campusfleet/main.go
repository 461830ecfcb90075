package main

import (
	"context"
	"log"
	"time"

	"github.com/gceits/campusfleet/internal/pkg/config"
	"github.com/gceits/campusfleet/internal/pkg/database"
	"github.com/gceits/campusfleet/internal/pkg/health"
	"github.com/gceits/campusfleet/internal/pkg/logger"
	"github.com/gceits/campusfleet/internal/pkg/middleware"
	"github.com/gceits/campusfleet/internal/pkg/nsq"
	"github.com/gceits/campusfleet/internal/pkg/server"
	accountHandler "github.com/gceits/campusfleet/services/account/handler"
	accountRepo "github.com/gceits/campusfleet/services/account/repository"
	accountUsecase "github.com/gceits/campusfleet/services/account/usecase"
	dispatchGateway "github.com/gceits/campusfleet/services/dispatch/gateway"
	dispatchHandler "github.com/gceits/campusfleet/services/dispatch/handler"
	dispatchRepo "github.com/gceits/campusfleet/services/dispatch/repository"
	dispatchUsecase "github.com/gceits/campusfleet/services/dispatch/usecase"
	fleetHandler "github.com/gceits/campusfleet/services/fleet/handler"
	fleetRepo "github.com/gceits/campusfleet/services/fleet/repository"
	fleetUsecase "github.com/gceits/campusfleet/services/fleet/usecase"
	telemetryGateway "github.com/gceits/campusfleet/services/telemetry/gateway"
	telemetryHandler "github.com/gceits/campusfleet/services/telemetry/handler"
	telemetryRepo "github.com/gceits/campusfleet/services/telemetry/repository"
	telemetryUsecase "github.com/gceits/campusfleet/services/telemetry/usecase"
	"github.com/labstack/echo/v4"
)

func main() {
	appName := "campusfleet"
	configPath := "config/campusfleet.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	nsqProducer, err := nsq.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer nsqProducer.Stop()

	// Initialize repositories
	userRepo := accountRepo.NewUserRepository(configs, postgresClient.GetDB())
	vehicleRepo := fleetRepo.NewFleetRepository(configs, postgresClient.GetDB())
	locationRepo := fleetRepo.NewLocationRepository(redisClient)
	bookingRepo := dispatchRepo.NewBookingRepository(configs, postgresClient.GetDB())
	offenceRepo := telemetryRepo.NewTelemetryRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	dispatchGW := dispatchGateway.NewDispatchGW(nsqProducer, redisClient)
	telemetryGW := telemetryGateway.NewTelemetryGW(nsqProducer)

	// Initialize usecases. Fleet comes first: dispatch and telemetry
	// resolve vehicles and positions through it.
	accountUC, err := accountUsecase.NewAccountUC(configs, userRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize account use case", logger.Err(err))
	}

	fleetUC, err := fleetUsecase.NewFleetUC(configs, vehicleRepo, locationRepo)
	if err != nil {
		zapLogger.Fatal("Failed to initialize fleet use case", logger.Err(err))
	}

	dispatchUC, err := dispatchUsecase.NewDispatchUC(configs, bookingRepo, dispatchGW, fleetUC)
	if err != nil {
		zapLogger.Fatal("Failed to initialize dispatch use case", logger.Err(err))
	}

	telemetryUC, err := telemetryUsecase.NewTelemetryUC(configs, offenceRepo, telemetryGW, fleetUC, dispatchUC)
	if err != nil {
		zapLogger.Fatal("Failed to initialize telemetry use case", logger.Err(err))
	}

	// Initialize handlers
	accountH := accountHandler.NewHandler(accountUC, configs)
	fleetH := fleetHandler.NewHandler(fleetUC, configs)
	dispatchH := dispatchHandler.NewHandler(dispatchUC, configs)
	telemetryH := telemetryHandler.NewHandler(telemetryUC, configs)

	// Initialize NSQ consumers
	if err := telemetryH.InitNSQConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumers", logger.Err(err))
	}

	// Initialize Echo server
	e := echo.New()

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Initialize enhanced health service
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	healthService.AddChecker("nsq", health.NewNSQHealthChecker(nsqProducer))

	// Register enhanced health endpoints
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)

	// Register service routes
	accountH.RegisterRoutes(e)
	fleetH.RegisterRoutes(e)
	dispatchH.RegisterRoutes(e)
	telemetryH.RegisterRoutes(e)

	// Register component teardown. Consumers stop first so in-flight
	// offences finish before the database connection closes.
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register("telemetry consumers", func(ctx context.Context) error {
		telemetryH.Stop()
		return nil
	})
	shutdownManager.Register("postgres", func(ctx context.Context) error {
		postgresClient.Close()
		return nil
	})
	shutdownManager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register("nsq producer", func(ctx context.Context) error {
		nsqProducer.Stop()
		return nil
	})

	// Blocks until SIGINT/SIGTERM, then drains the HTTP server
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Error during component shutdown", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
