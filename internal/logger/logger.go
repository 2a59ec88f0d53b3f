package logger

import (
	"io"
	"log/slog"

	"github.com/alkime/wavegen/internal/config"
)

// SetupLogger configures structured JSON logging based on environment and
// installs it as the default logger.
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	// Determine log level
	logLevel := slog.LevelInfo
	if cfg.Env == config.EnvDevelopment {
		logLevel = slog.LevelDebug
	}
	if cfg.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)

	slog.SetDefault(logger)

	return logger
}
