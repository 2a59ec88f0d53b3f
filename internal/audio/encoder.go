package audio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	mp3encoder "github.com/braheezy/shine-mp3/pkg/mp3"
)

// Encoder buffers mono PCM samples and encodes them to MP3 in batches of
// BufferThreshold samples, writing frames to an io.Writer.
type Encoder struct {
	config EncoderConfig
	output io.Writer

	encoder *mp3encoder.Encoder
	buffer  []int16
}

// NewEncoder creates a new MP3 encoder.
//
// Returns error if config is invalid or output is nil.
func NewEncoder(config EncoderConfig, output io.Writer) (*Encoder, error) {
	if output == nil {
		return nil, errors.New("output writer cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid encoder config: %w", err)
	}

	return &Encoder{
		config: config,
		output: output,
		// Create shine-mp3 encoder as STEREO (workaround for mono bug)
		encoder: mp3encoder.NewEncoder(config.SampleRate, 2),
		buffer:  make([]int16, 0, config.BufferThreshold),
	}, nil
}

// Encode queues samples, encoding every full batch.
func (e *Encoder) Encode(samples []int16) error {
	for len(samples) > 0 {
		n := min(e.config.BufferThreshold-len(e.buffer), len(samples))
		e.buffer = append(e.buffer, samples[:n]...)
		samples = samples[n:]

		if len(e.buffer) >= e.config.BufferThreshold {
			if err := e.encodeBatch(); err != nil {
				return err
			}
		}
	}

	return nil
}

// Flush encodes whatever is left in the buffer.
func (e *Encoder) Flush() error {
	if err := e.encodeBatch(); err != nil {
		return fmt.Errorf("failed to flush MP3 encoder: %w", err)
	}

	return nil
}

// encodeBatch converts buffered PCM data to MP3 and writes to output.
// Clears the buffer after successful encoding.
func (e *Encoder) encodeBatch() error {
	if len(e.buffer) == 0 {
		return nil
	}

	// WORKAROUND: shine-mp3 Write() has a bug for mono (always increments by samples_per_pass * 2)
	// Convert mono to stereo by duplicating samples (L=R)
	stereoSamples := make([]int16, len(e.buffer)*2)
	for i, sample := range e.buffer {
		stereoSamples[i*2] = sample   // Left channel
		stereoSamples[i*2+1] = sample // Right channel (duplicate)
	}

	slog.Debug("encoding MP3 batch",
		"monoSamples", len(e.buffer),
		"stereoSamples", len(stereoSamples))

	if err := e.encoder.Write(e.output, stereoSamples); err != nil {
		return fmt.Errorf("failed to encode audio to MP3: %w", err)
	}

	e.buffer = e.buffer[:0]

	return nil
}

// EncodeMP3 encodes samples in one go and flushes the result to w.
func EncodeMP3(config EncoderConfig, samples []int16, w io.Writer) error {
	enc, err := NewEncoder(config, w)
	if err != nil {
		return err
	}

	if err := enc.Encode(samples); err != nil {
		return err
	}

	return enc.Flush()
}
