package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// logger fields
const (
	Service = "svc"
	Method  = "method"
	Path    = "path"
	Session = "session"
	MealID  = "meal_id"
)

const serviceName = "mealdiet"

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// New returns a logger writing JSON lines to out, tagged with svc=mealdiet.
// Unknown or empty levels fall back to info.
func New(level string, out io.Writer) zerolog.Logger {
	return zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str(Service, serviceName).
		Logger()
}

func ParseLevel(raw string) zerolog.Level {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(normalized)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
