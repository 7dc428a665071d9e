package loggers

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a wrapper around zerolog.Logger for convenience.
type Logger = zerolog.Logger

// New builds the process logger: JSON lines with UTC timestamps and caller
// info. Output goes to stderr; stdout is reserved for the report.
func New(level string) (Logger, error) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	logger := zerolog.New(os.Stderr).
		Level(parsed).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger, nil
}

// Ctx extracts the logger a middleware or coordinator stored in ctx.
// Returns a no-op logger when none is there.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
