// Package wave provides periodic waveform shapes and a simple oscillator
// built on top of them.
package wave

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/alkime/wavegen/internal/sampler"
)

// ErrUnknownShape is returned by Lookup for names that are not registered.
var ErrUnknownShape = errors.New("unknown wave shape")

// Shape describes one period of a wave. Phase is in cycles, [0, 1), and the
// result is in [-1, 1].
type Shape func(phase float64) float64

func sine(p float64) float64 {
	return math.Sin(2 * math.Pi * p)
}

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

// triangle starts at 0, peaks at a quarter period and bottoms out at three
// quarters, so it lines up with sine.
func triangle(p float64) float64 {
	switch {
	case p < 0.25:
		return 4 * p
	case p < 0.75:
		return 2 - 4*p
	default:
		return 4*p - 4
	}
}

func sawtooth(p float64) float64 {
	if p < 0.5 {
		return 2 * p
	}
	return 2*p - 2
}

var shapes = map[string]Shape{
	"sine":     sine,
	"square":   square,
	"triangle": triangle,
	"sawtooth": sawtooth,
}

// Lookup returns the shape registered under name.
func Lookup(name string) (Shape, error) {
	s, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return s, nil
}

// Names returns the registered shape names in sorted order.
func Names() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Oscillator evaluates a Shape at a given frequency, amplitude and phase
// offset. Time is in seconds, Phase in cycles.
type Oscillator struct {
	Shape     Shape
	Frequency float64
	Amplitude float64
	Phase     float64
}

// At returns the oscillator value at time t.
func (o Oscillator) At(t float64) float64 {
	p := o.Frequency*t + o.Phase
	p -= math.Floor(p)
	return o.Amplitude * o.Shape(p)
}

// Func exposes the oscillator as a sampler function.
func (o Oscillator) Func() sampler.Func[float64, float64] {
	return sampler.Lift(o.At)
}
