// Package waveform provides a TUI component for drawing a sampled wave.
package waveform

import (
	"math"
	"strings"
	"time"

	"github.com/alkime/wavegen/internal/tui/style"
	"github.com/alkime/wavegen/pkg/uictl"
	tea "github.com/charmbracelet/bubbletea"
)

// Block characters for level visualization (8 levels, bottom to top).
// Index 0 = empty (space), 1-8 = increasing fill levels.
const blockChars = " ▁▂▃▄▅▆▇█"

// TickMsg triggers a waveform redraw.
type TickMsg struct{}

// Model draws samples in [-1, 1] as a filled area chart: -1 is an empty
// column, 1 a full one. Samples are read from a Levels control so the source
// may change between frames.
type Model struct {
	levels uictl.Levels[float64] // Data source for samples
	width  int                   // Display width in characters
	height int                   // Display height in rows
}

// New creates a new waveform model.
// Samples are averaged into width columns; height is at least one row.
func New(levels uictl.Levels[float64], width, height int) Model {
	if height < 1 {
		height = 1
	}

	return Model{
		levels: levels,
		width:  max(width, 0),
		height: height,
	}
}

// Init returns the initial tick command.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles tick messages for animation.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, m.tick()
	}

	return m, nil
}

// View renders the waveform.
func (m Model) View() string {
	if m.levels == nil {
		return m.renderEmpty()
	}

	samples := m.levels.Read()
	if len(samples) == 0 {
		return m.renderEmpty()
	}

	return m.renderWaveform(samples)
}

// tick schedules the next waveform update at ~20 FPS.
func (m Model) tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

func (m Model) renderWaveform(samples []float64) string {
	levels := m.calculateLevels(samples)
	runes := []rune(blockChars)

	var sb strings.Builder

	// top to bottom
	for row := 0; row < m.height; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}

		var rowSB strings.Builder

		for col := 0; col < m.width; col++ {
			rowSB.WriteRune(runes[m.blockIndexForRow(levels[col], row)])
		}

		sb.WriteString(style.Progress.Render(rowSB.String()))
	}

	return sb.String()
}

// calculateLevels maps each column to a fill level in 0..height*8. Samples
// are split across the columns proportionally so every sample lands in one;
// with fewer samples than columns the trailing columns stay empty.
func (m Model) calculateLevels(samples []float64) []int {
	levels := make([]int, m.width)
	maxLevel := m.height * 8
	n := len(samples)

	for col := 0; col < m.width; col++ {
		start, end := col*n/m.width, (col+1)*n/m.width
		if n < m.width {
			start, end = col, col+1
		}
		if start >= n {
			continue
		}

		end = min(max(end, start+1), n)
		levels[col] = sampleToLevel(mean(samples[start:end]), maxLevel)
	}

	return levels
}

// blockIndexForRow returns the block character index (0-8) for a given column level at a row.
// Row 0 is the top, row (height-1) is the bottom.
func (m Model) blockIndexForRow(level, row int) int {
	baseLevel := (m.height - 1 - row) * 8
	fillAmount := level - baseLevel

	if fillAmount <= 0 {
		return 0
	}

	if fillAmount >= 8 {
		return 8
	}

	return fillAmount
}

// renderEmpty renders a baseline for when there are no samples.
func (m Model) renderEmpty() string {
	var sb strings.Builder

	for row := 0; row < m.height; row++ {
		if row > 0 {
			sb.WriteString("\n")
		}

		fill := " "
		if row == m.height-1 {
			fill = "▁"
		}

		sb.WriteString(style.Muted.Render(strings.Repeat(fill, m.width)))
	}

	return sb.String()
}

func mean(samples []float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}

// sampleToLevel maps a sample in [-1, 1] to 0..maxLevel. Out of range and
// NaN samples are clamped.
func sampleToLevel(s float64, maxLevel int) int {
	if math.IsNaN(s) {
		s = 0
	}

	s = min(max(s, -1), 1)

	return int(math.Round((s + 1) / 2 * float64(maxLevel)))
}
