package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alkime/wavegen/internal/audio"
	"github.com/alkime/wavegen/internal/config"
	"github.com/alkime/wavegen/internal/logger"
	"github.com/alkime/wavegen/internal/plot"
	"github.com/alkime/wavegen/internal/sampler"
	"github.com/alkime/wavegen/internal/server"
	"github.com/alkime/wavegen/internal/synth"
	"github.com/alkime/wavegen/internal/tui/preview"
	"github.com/alkime/wavegen/internal/wave"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/malgo"
	"gonum.org/v1/plot/vg"
)

// ShapeFlags selects and scales a wave shape.
type ShapeFlags struct {
	Shape     string  `arg:"" optional:"" default:"sine" help:"Wave shape: ${shapes}"`
	Amplitude float64 `flag:"" default:"1" help:"Peak amplitude"`
	Phase     float64 `flag:"" default:"0" help:"Phase offset in cycles"`
}

func (f ShapeFlags) oscillator(frequency float64) (wave.Oscillator, error) {
	shape, err := wave.Lookup(f.Shape)
	if err != nil {
		return wave.Oscillator{}, err
	}

	return wave.Oscillator{
		Shape:     shape,
		Frequency: frequency,
		Amplitude: f.Amplitude,
		Phase:     f.Phase,
	}, nil
}

// RangeFlags describes the sample sequence.
type RangeFlags struct {
	Frequency float64 `flag:"" default:"1" help:"Cycles per unit of x"`
	Steps     int     `flag:"" default:"50" help:"Number of evenly spaced samples"`
	Start     float64 `flag:"" default:"0" help:"First sample point (use --start=-1 for negative values)"`
	End       float64 `flag:"" default:"1" help:"Last sample point, inclusive (use --end=-1 for negative values)"`
}

// SampleCmd prints a sampled wave as an array literal.
type SampleCmd struct {
	ShapeFlags `embed:""`
	RangeFlags `embed:""`

	PCM bool `flag:"" help:"Print signed 16-bit PCM values instead of floats"`
}

// Run executes the sample command, writing the array literal to out.
func (c *SampleCmd) Run(out io.Writer) error {
	osc, err := c.oscillator(c.Frequency)
	if err != nil {
		return err
	}

	if c.PCM {
		toPCM := func(x float64) int16 {
			return audio.FloatToInt16([]float64{osc.At(x)})[0]
		}
		_, _, err = sampler.GenerateTo(out, sampler.Lift(toPCM), sampler.FormatInt16, c.Steps, c.Start, c.End)
	} else {
		_, _, err = sampler.GenerateTo(out, osc.Func(), sampler.FormatFloat, c.Steps, c.Start, c.End)
	}

	if err != nil {
		return fmt.Errorf("failed to sample %s wave: %w", c.Shape, err)
	}

	return nil
}

// NoteCmd prints the frequency of a note.
type NoteCmd struct {
	Note   string `arg:"" help:"Note name (a, a#, b, c, ... g#)"`
	Octave int    `arg:"" optional:"" default:"4" help:"Octave, counted from A"`
}

// Run executes the note command.
func (c *NoteCmd) Run() error {
	freq, err := synth.NoteToFrequency(c.Note, c.Octave)
	if err != nil {
		return err
	}

	fmt.Println(sampler.FormatFloat(freq))

	return nil
}

// ToneCmd prints the periodic wave coefficients of a shape.
type ToneCmd struct {
	Shape string `arg:"" optional:"" default:"sine" help:"Wave shape: ${shapes}"`
}

// Run executes the tone command.
func (c *ToneCmd) Run() error {
	shape, err := wave.Lookup(c.Shape)
	if err != nil {
		return err
	}

	period, err := synth.ToneArray(shape)
	if err != nil {
		return fmt.Errorf("failed to sample one period: %w", err)
	}

	tone, err := synth.PeriodicWave(period)
	if err != nil {
		return fmt.Errorf("failed to transform wave: %w", err)
	}

	fmt.Println(sampler.Render(tone.Real, sampler.FormatFloat))
	fmt.Println(sampler.Render(tone.Imag, sampler.FormatFloat))

	return nil
}

// SoundFlags describe an audible rendering of a wave.
type SoundFlags struct {
	ShapeFlags `embed:""`

	Frequency  float64       `flag:"" default:"440" help:"Frequency in Hz (ignored when --note is set)"`
	Note       string        `flag:"" optional:"" help:"Note name, overrides --frequency"`
	Octave     int           `flag:"" default:"4" help:"Octave for --note"`
	Duration   time.Duration `flag:"" default:"1s" help:"Length of the sound"`
	SampleRate int           `flag:"" default:"0" help:"Sample rate in Hz (default: SAMPLE_RATE or 44100)"`
}

// render returns the PCM samples and the sample rate they were rendered at.
func (f SoundFlags) render() ([]int16, int, error) {
	if f.SampleRate == 0 {
		cfg, err := config.LoadConfig()
		if err != nil {
			return nil, 0, fmt.Errorf("failed to load configuration: %w", err)
		}
		f.SampleRate = cfg.SampleRate
	}

	frequency := f.Frequency
	if f.Note != "" {
		freq, err := synth.NoteToFrequency(f.Note, f.Octave)
		if err != nil {
			return nil, 0, err
		}
		frequency = freq
	}

	osc, err := f.oscillator(frequency)
	if err != nil {
		return nil, 0, err
	}

	samples, err := synth.Render(osc, f.SampleRate, f.Duration)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to render %s wave: %w", f.Shape, err)
	}

	slog.Debug("rendered wave",
		"shape", f.Shape,
		"frequency", frequency,
		"samples", len(samples),
		"sampleRate", f.SampleRate)

	return audio.FloatToInt16(samples), f.SampleRate, nil
}

// PlayCmd plays a wave on the default output device.
type PlayCmd struct {
	SoundFlags `embed:""`
}

// Run executes the play command.
func (c *PlayCmd) Run() error {
	pcm, sampleRate, err := c.render()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dev := audio.NewDevice(&audio.DeviceConfig{
		Format:           malgo.FormatS16,
		PlaybackChannels: 1,
		SampleRate:       sampleRate,
	})
	defer dev.Dealloc(ctx)

	if err := dev.Play(ctx, audio.Int16ToBytes(pcm)); err != nil {
		return fmt.Errorf("failed to play wave: %w", err)
	}

	return nil
}

// EncodeCmd writes a wave as MP3 to stdout.
type EncodeCmd struct {
	SoundFlags `embed:""`
}

// Run executes the encode command.
func (c *EncodeCmd) Run() error {
	pcm, sampleRate, err := c.render()
	if err != nil {
		return err
	}

	cfg := audio.EncoderConfig{SampleRate: sampleRate}.WithDefaults()
	if err := audio.EncodeMP3(cfg, pcm, os.Stdout); err != nil {
		return fmt.Errorf("failed to encode wave: %w", err)
	}

	return nil
}

// PlotCmd writes a PNG line plot of a sampled wave to stdout.
type PlotCmd struct {
	ShapeFlags `embed:""`
	RangeFlags `embed:""`

	Width  float64 `flag:"" default:"6" help:"Image width in inches"`
	Height float64 `flag:"" default:"4" help:"Image height in inches"`
}

// Run executes the plot command.
func (c *PlotCmd) Run() error {
	osc, err := c.oscillator(c.Frequency)
	if err != nil {
		return err
	}

	xs, err := sampler.Linspace(c.Steps, c.Start, c.End)
	if err != nil {
		return err
	}

	ys, err := sampler.Sample(osc.Func(), c.Steps, c.Start, c.End)
	if err != nil {
		return fmt.Errorf("failed to sample %s wave: %w", c.Shape, err)
	}

	p, err := plot.Line(c.Shape, xs, ys)
	if err != nil {
		return fmt.Errorf("failed to plot wave: %w", err)
	}

	return plot.WritePNG(os.Stdout, p, vg.Length(c.Width)*vg.Inch, vg.Length(c.Height)*vg.Inch)
}

// PreviewCmd previews a sampled wave in the terminal.
type PreviewCmd struct {
	ShapeFlags `embed:""`
	RangeFlags `embed:""`
}

// Run executes the preview command.
func (c *PreviewCmd) Run() error {
	osc, err := c.oscillator(c.Frequency)
	if err != nil {
		return err
	}

	samples, err := sampler.Sample(osc.Func(), c.Steps, c.Start, c.End)
	if err != nil {
		return fmt.Errorf("failed to sample %s wave: %w", c.Shape, err)
	}

	title := fmt.Sprintf("%s x%s over [%s, %s]", c.Shape,
		sampler.FormatFloat(c.Frequency), sampler.FormatFloat(c.Start), sampler.FormatFloat(c.End))

	if _, err := tea.NewProgram(preview.New(title, samples)).Run(); err != nil {
		return fmt.Errorf("failed to run preview: %w", err)
	}

	return nil
}

// DevicesCmd lists available audio output devices.
type DevicesCmd struct{}

// Run executes the devices command.
func (dcmd *DevicesCmd) Run() error {
	slog.Info("Enumerating audio devices...")

	adev := audio.NewDevice(nil)
	devices, err := adev.EnumerateDevices(context.Background())
	if err != nil {
		return fmt.Errorf("failed to enumerate audio devices: %w", err)
	}

	for _, dev := range devices {
		slog.Info("Audio Device",
			"name", dev.Name,
			"isDefault", dev.IsDefault,
			"formatCount", dev.FormatCount,
			"formats", dev.Formats,
		)
	}

	return nil
}

// ServeCmd serves waves over HTTP.
type ServeCmd struct{}

// Run executes the serve command.
func (c *ServeCmd) Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.SetupLogger(cfg, os.Stderr)
	log.Info("Starting wavegen server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	return server.Run(server.New(cfg, log))
}
