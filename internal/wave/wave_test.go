package wave_test

import (
	"bytes"
	"testing"

	"github.com/alkime/wavegen/internal/sampler"
	"github.com/alkime/wavegen/internal/wave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range wave.Names() {
		shape, err := wave.Lookup(name)
		require.NoError(t, err, name)
		require.NotNil(t, shape, name)
	}

	_, err := wave.Lookup("noise")
	require.ErrorIs(t, err, wave.ErrUnknownShape)
	assert.Contains(t, err.Error(), `"noise"`)
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"sawtooth", "sine", "square", "triangle"}, wave.Names())
}

func TestShapes_KeyPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		shape    string
		phase    float64
		expected float64
	}{
		{shape: "sine", phase: 0, expected: 0},
		{shape: "sine", phase: 0.25, expected: 1},
		{shape: "sine", phase: 0.75, expected: -1},
		{shape: "square", phase: 0.1, expected: 1},
		{shape: "square", phase: 0.6, expected: -1},
		{shape: "triangle", phase: 0, expected: 0},
		{shape: "triangle", phase: 0.25, expected: 1},
		{shape: "triangle", phase: 0.5, expected: 0},
		{shape: "triangle", phase: 0.75, expected: -1},
		{shape: "sawtooth", phase: 0, expected: 0},
		{shape: "sawtooth", phase: 0.25, expected: 0.5},
		{shape: "sawtooth", phase: 0.75, expected: -0.5},
	}

	for _, tt := range tests {
		shape, err := wave.Lookup(tt.shape)
		require.NoError(t, err)
		assert.InDelta(t, tt.expected, shape(tt.phase), 1e-12, "%s(%v)", tt.shape, tt.phase)
	}
}

func TestShapes_Bounded(t *testing.T) {
	t.Parallel()

	points, err := sampler.Linspace(1001, 0, 0.999)
	require.NoError(t, err)

	for _, name := range wave.Names() {
		shape, err := wave.Lookup(name)
		require.NoError(t, err)

		for _, p := range points {
			v := shape(p)
			require.LessOrEqual(t, v, 1.0, "%s(%v)", name, p)
			require.GreaterOrEqual(t, v, -1.0, "%s(%v)", name, p)
		}
	}
}

func TestOscillator_At(t *testing.T) {
	t.Parallel()

	shape, err := wave.Lookup("square")
	require.NoError(t, err)

	osc := wave.Oscillator{Shape: shape, Frequency: 2, Amplitude: 0.5}

	assert.Equal(t, 0.5, osc.At(0))
	assert.Equal(t, -0.5, osc.At(0.3))
	assert.Equal(t, 0.5, osc.At(0.55), "second period wraps back to the high half")
	assert.Equal(t, -0.5, osc.At(-0.2), "negative time wraps into [0, 1)")

	osc.Phase = 0.5
	assert.Equal(t, -0.5, osc.At(0))
}

func TestOscillator_Func(t *testing.T) {
	t.Parallel()

	shape, err := wave.Lookup("triangle")
	require.NoError(t, err)

	osc := wave.Oscillator{Shape: shape, Frequency: 1, Amplitude: 2}

	var out bytes.Buffer
	text, _, err := sampler.GenerateTo(&out, osc.Func(), sampler.FormatFloat, 5, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "[0.0,2.0,0.0,-2.0,0.0]", text)
}
