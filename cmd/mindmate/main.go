package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/mindmatehq/mindmate/internal/api"
	"github.com/mindmatehq/mindmate/internal/config"
	"github.com/mindmatehq/mindmate/internal/db"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	location := mustLoadLocation(cfg.TZ)
	time.Local = location

	appLogger := mustBuildLogger(cfg.LogLevel)
	defer func() { _ = appLogger.Sync() }()

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		appLogger.Fatal("database init failed", zap.Error(err))
	}

	handler := api.NewHandler(database, cfg.JWTSecret, appLogger)

	app := fiber.New(fiber.Config{
		AppName:               "MindMate",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	appLogger.Info("mindmate listening",
		zap.String("port", cfg.Port),
		zap.String("db", cfg.DBPath),
		zap.String("tz", location.String()))

	if err := app.Listen(":" + cfg.Port); err != nil {
		appLogger.Fatal("server exited", zap.Error(err))
	}

	if err := db.Close(database); err != nil {
		appLogger.Error("close database", zap.Error(err))
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func mustBuildLogger(level string) *zap.Logger {
	parsedLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		parsedLevel = zapcore.InfoLevel
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(parsedLevel)
	appLogger, err := loggerConfig.Build()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	return appLogger
}
