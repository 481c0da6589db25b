package api

import (
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, logger zerolog.Logger, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}

	handler := &Handler{
		db:           database,
		logger:       logger.With().Str("component", "api").Logger(),
		cookieSecure: cookieSecure,
		validate:     newValidator(),
	}
	return handler.withDependencies(database), nil
}
