package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/mealdiet/internal/api"
	"github.com/terraincognita07/mealdiet/internal/db"
	"github.com/terraincognita07/mealdiet/internal/logging"
)

const shutdownTimeout = 10 * time.Second

type config struct {
	Port         int
	DBPath       string
	DatabaseURL  string
	CookieSecure bool
	LogLevel     string
}

func main() {
	bootLogger := logging.New("info", os.Stderr)

	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		bootLogger.Fatal().Err(err).Msg("env file load failed")
	}

	cfg, err := loadConfig()
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New(cfg.LogLevel, os.Stdout)

	database, err := db.Open(db.Options{Path: cfg.DBPath, URL: cfg.DatabaseURL, Logger: logger})
	if err != nil {
		logger.Fatal().Err(err).Msg("database init failed")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error().Err(err).Msg("database close failed")
		}
	}()

	handler, err := api.NewHandler(database, logger, cfg.CookieSecure)
	if err != nil {
		logger.Fatal().Err(err).Msg("handler init failed")
	}

	app := newApp(handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	logger.Info().
		Int("port", cfg.Port).
		Str("store", database.Dialector.Name()).
		Msg("http server listening")
	if err := app.Listen(":" + strconv.Itoa(cfg.Port)); err != nil {
		logger.Error().Err(err).Msg("server exited")
	}
}

func newApp(handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "mealdiet",
		DisableStartupMessage: true,
		ErrorHandler:          api.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func loadConfig() (config, error) {
	port, err := parsePort(getEnv("PORT", "3333"))
	if err != nil {
		return config{}, err
	}

	return config{
		Port:         port,
		DBPath:       getEnv("DB_PATH", filepath.Join("data", "mealdiet.db")),
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		CookieSecure: parseBoolValue(os.Getenv("COOKIE_SECURE")),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}, nil
}

// loadEnvFile fills unset variables from a dotenv file. A missing file is fine.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("PORT must be an integer: %w", err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("PORT out of range: %d", port)
	}
	return port, nil
}

func parseBoolValue(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true" || normalized == "on" || normalized == "yes"
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
