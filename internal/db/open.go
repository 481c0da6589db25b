package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Options selects the store. A non-empty URL wins over Path.
type Options struct {
	Path   string
	URL    string
	Logger zerolog.Logger
}

var ErrUnsupportedDatabaseURL = errors.New("unsupported database url")

func Open(options Options) (*gorm.DB, error) {
	url := strings.TrimSpace(options.URL)
	if url == "" {
		return OpenSQLite(options.Path, options.Logger)
	}
	if !isPostgresURL(url) {
		return nil, fmt.Errorf("%w: expected postgres:// or postgresql:// scheme", ErrUnsupportedDatabaseURL)
	}
	return OpenPostgres(url, options.Logger)
}

func OpenSQLite(dbPath string, logger zerolog.Logger) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), gormConfig(logger))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return migrate(database)
}

func OpenPostgres(dsn string, logger zerolog.Logger) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), gormConfig(logger))
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return migrate(database)
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func Ping(ctx context.Context, database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func migrate(database *gorm.DB) (*gorm.DB, error) {
	if err := applyEmbeddedMigrations(database); err != nil {
		_ = Close(database)
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}
	return database, nil
}

// gormLogWriter emits gorm's warn, error and slow-query lines at warn level.
// zerolog's own Printf logs at debug and would hide them at the default level.
type gormLogWriter struct {
	sink zerolog.Logger
}

func (writer gormLogWriter) Printf(format string, args ...any) {
	writer.sink.Warn().Msgf(format, args...)
}

func gormConfig(logger zerolog.Logger) *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(
			gormLogWriter{sink: logger.With().Str("component", "gorm").Logger()},
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	}
}

func isPostgresURL(url string) bool {
	lowered := strings.ToLower(url)
	return strings.HasPrefix(lowered, "postgres://") || strings.HasPrefix(lowered, "postgresql://")
}
