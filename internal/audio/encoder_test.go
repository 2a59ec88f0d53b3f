package audio_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/alkime/wavegen/internal/audio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      audio.EncoderConfig
		expectError string
	}{
		{
			name: "valid config",
			config: audio.EncoderConfig{
				SampleRate:      44100,
				Channels:        1,
				BufferThreshold: 2048,
			},
			expectError: "",
		},
		{
			name: "zero sample rate",
			config: audio.EncoderConfig{
				SampleRate:      0,
				Channels:        1,
				BufferThreshold: 2048,
			},
			expectError: "sample rate must be positive",
		},
		{
			name: "invalid channels",
			config: audio.EncoderConfig{
				SampleRate:      44100,
				Channels:        2,
				BufferThreshold: 2048,
			},
			expectError: "only mono (1 channel) is supported",
		},
		{
			name: "zero buffer threshold",
			config: audio.EncoderConfig{
				SampleRate:      44100,
				Channels:        1,
				BufferThreshold: 0,
			},
			expectError: "buffer threshold must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEncoderConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    audio.EncoderConfig
		expected audio.EncoderConfig
	}{
		{
			name:  "empty config gets all defaults",
			input: audio.EncoderConfig{},
			expected: audio.EncoderConfig{
				SampleRate:      audio.DefaultSampleRate,
				Channels:        audio.DefaultChannels,
				BufferThreshold: audio.DefaultBufferThreshold,
			},
		},
		{
			name: "partial config preserves custom values",
			input: audio.EncoderConfig{
				SampleRate: 48000,
			},
			expected: audio.EncoderConfig{
				SampleRate:      48000,
				Channels:        audio.DefaultChannels,
				BufferThreshold: audio.DefaultBufferThreshold,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.input.WithDefaults())
		})
	}
}

func TestNewEncoder_ValidatesInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		config      audio.EncoderConfig
		output      io.Writer
		expectError string
	}{
		{
			name:        "valid inputs",
			config:      audio.EncoderConfig{}.WithDefaults(),
			output:      bytes.NewBuffer(nil),
			expectError: "",
		},
		{
			name:        "invalid config",
			config:      audio.EncoderConfig{SampleRate: 0, Channels: 1, BufferThreshold: 10},
			output:      bytes.NewBuffer(nil),
			expectError: "invalid encoder config",
		},
		{
			name:        "nil output writer",
			config:      audio.EncoderConfig{}.WithDefaults(),
			output:      nil,
			expectError: "output writer cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoder, err := audio.NewEncoder(tt.config, tt.output)

			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				assert.Nil(t, encoder)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, encoder)
			}
		})
	}
}

func TestEncodeMP3(t *testing.T) {
	t.Parallel()

	samples := make([]int16, 4410)
	for i := range samples {
		samples[i] = int16((i % 100) * 300)
	}

	output := bytes.NewBuffer(nil)
	config := audio.EncoderConfig{BufferThreshold: 1000}.WithDefaults()

	require.NoError(t, audio.EncodeMP3(config, samples, output))
	assert.Greater(t, output.Len(), 0, "expected MP3 data to be written")
}

func TestEncoder_NothingToFlush(t *testing.T) {
	t.Parallel()

	output := bytes.NewBuffer(nil)

	encoder, err := audio.NewEncoder(audio.EncoderConfig{}.WithDefaults(), output)
	require.NoError(t, err)

	require.NoError(t, encoder.Flush())
	assert.Zero(t, output.Len())
}
