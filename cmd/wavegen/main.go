package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alkime/wavegen/internal/wave"
)

// CLI defines the wavegen command structure.
type CLI struct {
	Debug bool `help:"Enable debug logging"`

	// Default command (runs when no subcommand given)
	Sample SampleCmd `cmd:"" default:"withargs" help:"Print a sampled wave as an array literal"`

	Note    NoteCmd    `cmd:"" help:"Print the frequency of a note"`
	Tone    ToneCmd    `cmd:"" help:"Print the periodic wave coefficients of one period of a shape"`
	Play    PlayCmd    `cmd:"" help:"Play a wave on the default output device"`
	Encode  EncodeCmd  `cmd:"" help:"Write a wave as MP3 to stdout"`
	Plot    PlotCmd    `cmd:"" help:"Write a line plot of a sampled wave as PNG to stdout"`
	Preview PreviewCmd `cmd:"" help:"Preview a sampled wave in the terminal"`
	Devices DevicesCmd `cmd:"" help:"List available audio output devices"`
	Serve   ServeCmd   `cmd:"" help:"Serve waves over HTTP"`
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("wavegen"),
		kong.Description("Sample waveforms into array literals for sound generation experiments."),
		kong.Vars{"shapes": strings.Join(wave.Names(), ", ")},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	)

	// stdout carries data (array literals, MP3, PNG); logs go to stderr
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
