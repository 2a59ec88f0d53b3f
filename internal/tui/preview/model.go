// Package preview provides a terminal preview of a sampled wave.
package preview

import (
	"fmt"
	"strings"

	"github.com/alkime/wavegen/internal/tui/components/waveform"
	"github.com/alkime/wavegen/internal/tui/style"
	"github.com/alkime/wavegen/pkg/collections"
	"github.com/alkime/wavegen/pkg/uictl"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	waveRows      = 8
	minVisible    = 8
	chromeColumns = 2
)

// Model shows the first Visible() samples of a wave and lets the user zoom.
type Model struct {
	keys    KeyMap
	title   string
	samples []float64
	visible int
	width   int
	wave    waveform.Model
}

// New creates a preview of samples.
func New(title string, samples []float64) Model {
	m := Model{
		keys:    DefaultKeyMap(),
		title:   title,
		samples: samples,
		visible: len(samples),
		width:   defaultWidth,
	}

	return m.rebuild()
}

// Init returns nil: the samples are fixed, so the waveform is only redrawn
// on resize and zoom.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m.rebuild(), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ZoomIn):
			m.visible = max(m.visible/2, min(minVisible, len(m.samples)))
			return m.rebuild(), nil
		case key.Matches(msg, m.keys.ZoomOut):
			m.visible = min(m.visible*2, len(m.samples))
			return m.rebuild(), nil
		}
	}

	var cmd tea.Cmd
	m.wave, cmd = m.wave.Update(msg)

	return m, cmd
}

// View renders the preview.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(style.Title.Render(m.title))
	sb.WriteString("\n")
	sb.WriteString(style.Subtitle.Render(fmt.Sprintf("%d of %d samples", m.visible, len(m.samples))))
	sb.WriteString("\n\n")
	sb.WriteString(m.wave.View())
	sb.WriteString("\n\n")

	for i, b := range m.keys.ShortHelp() {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(style.Help.Render("["))
		sb.WriteString(style.Key.Render(b.Help().Key))
		sb.WriteString(style.Help.Render("] " + b.Help().Desc))
	}

	return sb.String()
}

// Visible returns how many samples are currently drawn.
func (m Model) Visible() int {
	return m.visible
}

func (m Model) rebuild() Model {
	levels := uictl.Static[float64](collections.Take(m.samples, m.visible))
	m.wave = waveform.New(levels, max(m.width-chromeColumns, 1), waveRows)
	return m
}
