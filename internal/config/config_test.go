package config_test

import (
	"os"
	"testing"

	"github.com/alkime/wavegen/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"ENV", "PORT", "HSTS_MAX_AGE", "CSP_MODE", "SAMPLE_RATE", "LOG_LEVEL"} {
		// register restore, then unset so envconfig falls back to defaults
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, &config.Config{
		Env:        config.EnvDevelopment,
		Port:       "8080",
		HSTSMaxAge: 31536000,
		CSPMode:    "relaxed",
		SampleRate: 44100,
		LogLevel:   "info",
	}, cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ENV", config.EnvProduction)
	t.Setenv("PORT", "9000")
	t.Setenv("SAMPLE_RATE", "22050")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.FromEnv()
	require.NoError(t, err)

	assert.Equal(t, config.EnvProduction, cfg.Env)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 22050, cfg.SampleRate)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		sampleRate  string
		expectError string
	}{
		{name: "not a number", sampleRate: "fast", expectError: "failed to process environment variables"},
		{name: "negative", sampleRate: "-1", expectError: "SAMPLE_RATE must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SAMPLE_RATE", tt.sampleRate)

			_, err := config.FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestBuildCSP(t *testing.T) {
	t.Parallel()

	assert.Contains(t, config.BuildCSP("strict"), "default-src 'none'")
	assert.Contains(t, config.BuildCSP("relaxed"), "default-src 'self'")
	assert.Equal(t, config.BuildCSP("relaxed"), config.BuildCSP("anything else"))
}
