// Package synth holds the pitch table and the helpers that turn a sampled
// wave into something a synthesizer can play.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"strings"
	"time"

	"github.com/alkime/wavegen/internal/sampler"
	"github.com/alkime/wavegen/internal/wave"
	"github.com/mjibson/go-dsp/fft"
)

const (
	// WaveArrayLen is the number of points used to describe one period of a
	// custom tone.
	WaveArrayLen = 50
	// StartOctave is the octave A4Pitch belongs to.
	StartOctave = 4
	// A4Pitch is concert pitch in Hz.
	A4Pitch = 440.0
)

var (
	// ErrUnknownNote is returned for note names outside the scale table.
	ErrUnknownNote = errors.New("unknown note")
	// ErrOctaveOutOfRange is returned when a note's frequency cannot be
	// represented as a finite, positive float64.
	ErrOctaveOutOfRange = errors.New("octave out of range")
	// ErrEmptyWave is returned when a transform is requested for no samples.
	ErrEmptyWave = errors.New("wave is empty")
)

// scale holds equal-temperament ratios relative to A, in the order the
// octave is counted from A.
var scale = map[string]float64{
	"a":  1,
	"a#": 1.0594630943592953,
	"b":  1.122462048309373,
	"c":  1.189207115002721,
	"c#": 1.2599210498948732,
	"d":  1.3348398541700344,
	"d#": 1.4142135623730951,
	"e":  1.4983070768766815,
	"f":  1.5874010519681994,
	"f#": 1.681792830507429,
	"g":  1.7817974362806785,
	"g#": 1.8877486253633868,
}

// NoteToFrequency returns the frequency in Hz of note in the given octave.
// Octaves are counted from A, so "c" in octave 4 sits above A4.
func NoteToFrequency(note string, octave int) (float64, error) {
	ratio, ok := scale[strings.ToLower(strings.TrimSpace(note))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNote, note)
	}

	freq := A4Pitch * math.Pow(2, float64(octave-StartOctave)) * ratio
	if math.IsInf(freq, 0) || freq <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrOctaveOutOfRange, octave)
	}

	return freq, nil
}

// Tone is the frequency-domain description of one wave period: the cosine
// (Real) and sine (Imag) coefficients of its discrete Fourier transform.
type Tone struct {
	Real []float64
	Imag []float64
}

// Magnitudes returns |X[k]| for every coefficient.
func (t Tone) Magnitudes() []float64 {
	out := make([]float64, len(t.Real))
	for i := range t.Real {
		out[i] = cmplx.Abs(complex(t.Real[i], t.Imag[i]))
	}
	return out
}

// PeriodicWave computes the forward DFT of one period of a wave. Any length
// is accepted.
func PeriodicWave(period []float64) (Tone, error) {
	if len(period) == 0 {
		return Tone{}, ErrEmptyWave
	}

	coeffs := fft.FFTReal(period)

	tone := Tone{
		Real: make([]float64, len(coeffs)),
		Imag: make([]float64, len(coeffs)),
	}
	for i, c := range coeffs {
		tone.Real[i] = real(c)
		tone.Imag[i] = imag(c)
	}

	return tone, nil
}

// ToneArray samples one period of shape at WaveArrayLen points, leaving out
// the endpoint that would repeat the first sample.
func ToneArray(shape wave.Shape) ([]float64, error) {
	last := float64(WaveArrayLen-1) / WaveArrayLen
	return sampler.Sample(sampler.Lift[float64, float64](shape), WaveArrayLen, 0, last)
}

// Render produces d worth of samples of osc at sampleRate, starting at t=0.
func Render(osc wave.Oscillator, sampleRate int, d time.Duration) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", sampler.ErrInvalidArgument, sampleRate)
	}

	if d < 0 {
		return nil, fmt.Errorf("%w: duration must be non-negative, got %s", sampler.ErrInvalidArgument, d)
	}

	n := int(d.Seconds() * float64(sampleRate))
	if n == 0 {
		return []float64{}, nil
	}

	return sampler.Sample(osc.Func(), n, 0, float64(n-1)/float64(sampleRate))
}
