package audio

import "errors"

const (
	// DefaultBufferThreshold is 2048 mono samples, ~46ms @ 44.1kHz.
	DefaultBufferThreshold = 2048
	// DefaultSampleRate is CD quality, 44.1kHz.
	DefaultSampleRate = 44100
	// DefaultChannels is mono (1 channel).
	DefaultChannels = 1
)

// EncoderConfig configures the MP3 encoder.
type EncoderConfig struct {
	// SampleRate is the audio sample rate in Hz (default: 44100).
	SampleRate int

	// Channels is the number of audio channels (default: 1 for mono).
	// Note: Internally converted to stereo for shine-mp3 encoder workaround.
	Channels int

	// BufferThreshold is the number of PCM samples to accumulate before encoding.
	// Default: 2048 samples.
	BufferThreshold int
}

// Validate returns an error if the config is invalid.
func (c EncoderConfig) Validate() error {
	if c.SampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}

	if c.Channels != 1 {
		return errors.New("only mono (1 channel) is supported")
	}

	if c.BufferThreshold <= 0 {
		return errors.New("buffer threshold must be positive")
	}

	return nil
}

// WithDefaults returns a config with default values applied to zero fields.
func (c EncoderConfig) WithDefaults() EncoderConfig {
	if c.SampleRate == 0 {
		c.SampleRate = DefaultSampleRate
	}

	if c.Channels == 0 {
		c.Channels = DefaultChannels
	}

	if c.BufferThreshold == 0 {
		c.BufferThreshold = DefaultBufferThreshold
	}

	return c
}
