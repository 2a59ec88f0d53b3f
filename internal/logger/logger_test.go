package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/alkime/wavegen/internal/config"
	"github.com/alkime/wavegen/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantDebug bool
	}{
		{name: "development is verbose", cfg: config.Config{Env: config.EnvDevelopment, LogLevel: "info"}, wantDebug: true},
		{name: "production is quiet", cfg: config.Config{Env: config.EnvProduction, LogLevel: "info"}, wantDebug: false},
		{name: "explicit debug", cfg: config.Config{Env: config.EnvProduction, LogLevel: "debug"}, wantDebug: true},
	}

	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.SetupLogger(&tt.cfg, &buf)

			assert.Equal(t, tt.wantDebug, log.Enabled(context.Background(), slog.LevelDebug))
			assert.Same(t, log, slog.Default())

			log.Info("hello", "shape", "sine")
			assert.Contains(t, buf.String(), `"msg":"hello"`)
			assert.Contains(t, buf.String(), `"shape":"sine"`)
		})
	}
}
