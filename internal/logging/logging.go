// Package logging builds the service's zerolog logger.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/sebasr/greeter-service/internal/config"
)

// New returns a timestamped logger writing to w at the configured level.
// Console format is meant for local development; JSON is the default.
func New(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if cfg.Format == config.LogFormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
