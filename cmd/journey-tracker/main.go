package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/config"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/database"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/health"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/logger"
	"github.com/AvigateGroup/avigate-tracker/internal/pkg/middleware"
	natspkg "github.com/AvigateGroup/avigate-tracker/internal/pkg/nats"
	"github.com/AvigateGroup/avigate-tracker/services/journey/gateway"
	journeyhandler "github.com/AvigateGroup/avigate-tracker/services/journey/handler"
	journeyrepo "github.com/AvigateGroup/avigate-tracker/services/journey/repository"
	journeyusecase "github.com/AvigateGroup/avigate-tracker/services/journey/usecase"
	locationhandler "github.com/AvigateGroup/avigate-tracker/services/location/handler"
	locationrepo "github.com/AvigateGroup/avigate-tracker/services/location/repository"
	locationusecase "github.com/AvigateGroup/avigate-tracker/services/location/usecase"
)

func main() {
	appName := "journey-tracker"
	configPath := "config/journey-tracker.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// PostgreSQL holds journeys, legs, stops and places
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Redis holds live location fixes
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repositories
	journeyRepository := journeyrepo.NewJourneyRepository(configs, postgresClient.GetDB())
	locationRepository := locationrepo.NewLocationRepository(configs, redisClient, postgresClient.GetDB())

	// Gateways
	notificationGW := gateway.NewNotificationGW(natsClient)

	// Use cases. The location use case doubles as the tracker's location
	// provider and stop resolver.
	locationUC := locationusecase.NewLocationUC(configs, locationRepository)
	journeyUC := journeyusecase.NewJourneyUC(configs, journeyRepository, notificationGW, locationUC, locationUC)

	// Handlers
	journeyHandler := journeyhandler.NewHandler(journeyUC, configs)
	locationHandler := locationhandler.NewHandler(locationUC, configs)

	if err := locationHandler.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	e := echo.New()

	// Panic recovery goes first so every later middleware is covered
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": func(ctx context.Context) error { return postgresClient.Ping() },
		"redis":    redisClient.Ping,
		"nats": func(ctx context.Context) error {
			if !natsClient.IsConnected() {
				return errors.New("NATS connection lost")
			}
			return nil
		},
	})

	journeyHandler.RegisterRoutes(e)
	locationHandler.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	// Stop inbound location updates before cancelling the trackers
	zapLogger.Info("Stopping NATS consumers...")
	locationHandler.StopNATSConsumers()

	zapLogger.Info("Cancelling active journey trackers...")
	journeyUC.Shutdown()

	zapLogger.Info("Closing PostgreSQL connection...")
	postgresClient.Close()

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Closing NATS connection...")
	natsClient.Close()

	zapLogger.Info("Server exiting gracefully")
}
