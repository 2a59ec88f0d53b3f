package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/alkime/wavegen/internal/sampler"
	"github.com/alkime/wavegen/internal/synth"
	"github.com/alkime/wavegen/internal/wave"
	"github.com/gin-gonic/gin"
)

// maxSteps bounds a single request.
const maxSteps = 1 << 20

// waveQuery holds the sampling parameters of a wave request.
type waveQuery struct {
	steps     int
	start     float64
	end       float64
	frequency float64
	amplitude float64
	phase     float64
}

func parseWaveQuery(c *gin.Context) (waveQuery, error) {
	var (
		q   waveQuery
		err error
	)

	if q.steps, err = strconv.Atoi(c.DefaultQuery("steps", "50")); err != nil {
		return q, fmt.Errorf("invalid steps: %w", err)
	}

	if q.steps > maxSteps {
		return q, fmt.Errorf("steps must be at most %d", maxSteps)
	}

	floats := []struct {
		name string
		def  string
		dst  *float64
	}{
		{"start", "0", &q.start},
		{"end", "1", &q.end},
		{"frequency", "1", &q.frequency},
		{"amplitude", "1", &q.amplitude},
		{"phase", "0", &q.phase},
	}

	for _, f := range floats {
		if *f.dst, err = strconv.ParseFloat(c.DefaultQuery(f.name, f.def), 64); err != nil {
			return q, fmt.Errorf("invalid %s: %w", f.name, err)
		}
	}

	return q, nil
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// handleWave samples a named shape and returns the rendered array literal.
func (s *Server) handleWave(c *gin.Context) {
	name := c.Param("shape")

	shape, err := wave.Lookup(name)
	if err != nil {
		badRequest(c, err)
		return
	}

	q, err := parseWaveQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	osc := wave.Oscillator{Shape: shape, Frequency: q.frequency, Amplitude: q.amplitude, Phase: q.phase}

	samples, err := sampler.Sample(osc.Func(), q.steps, q.start, q.end)
	if err != nil {
		badRequest(c, err)
		return
	}

	s.samplesRendered.WithLabelValues(name).Add(float64(len(samples)))
	s.logger.Debug("rendered wave", "shape", name, "steps", q.steps)

	c.String(http.StatusOK, sampler.Render(samples, sampler.FormatFloat))
}

// handleTone returns the periodic wave coefficients of one period of a shape.
func (s *Server) handleTone(c *gin.Context) {
	shape, err := wave.Lookup(c.Param("shape"))
	if err != nil {
		badRequest(c, err)
		return
	}

	period, err := synth.ToneArray(shape)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	tone, err := synth.PeriodicWave(period)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"real": tone.Real,
		"imag": tone.Imag,
	})
}

// handleNote returns the frequency of a note.
func (s *Server) handleNote(c *gin.Context) {
	octave, err := strconv.Atoi(c.Param("octave"))
	if err != nil {
		badRequest(c, fmt.Errorf("invalid octave: %w", err))
		return
	}

	freq, err := synth.NoteToFrequency(c.Param("note"), octave)
	if err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"note":      c.Param("note"),
		"octave":    octave,
		"frequency": freq,
	})
}
