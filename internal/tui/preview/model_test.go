package preview_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/alkime/wavegen/internal/tui/preview"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func samples(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i%2)*2 - 1
	}
	return out
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	m := preview.New("sine @ 440Hz", samples(64))

	view := m.View()
	assert.Contains(t, view, "sine @ 440Hz")
	assert.Contains(t, view, "64 of 64 samples")
	assert.Contains(t, view, "zoom in")
	assert.Contains(t, view, "quit")
}

func TestModel_Zoom(t *testing.T) {
	t.Parallel()

	var m tea.Model = preview.New("zoom", samples(64))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	require.Equal(t, 32, m.(preview.Model).Visible())

	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	}
	require.Equal(t, 8, m.(preview.Model).Visible(), "zoom in stops at the minimum")

	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	}
	require.Equal(t, 64, m.(preview.Model).Visible(), "zoom out stops at all samples")
}

func TestModel_StaticPreviewDoesNotTick(t *testing.T) {
	t.Parallel()

	m := preview.New("static", samples(16))
	assert.Nil(t, m.Init())

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Nil(t, cmd)
}

func TestModel_ZoomFewSamples(t *testing.T) {
	t.Parallel()

	var m tea.Model = preview.New("few", samples(3))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	assert.Equal(t, 3, m.(preview.Model).Visible())
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	tm := teatest.NewTestModel(t, preview.New("quit me", samples(16)), teatest.WithInitialTermSize(40, 20))

	teatest.WaitFor(t, tm.Output(), func(buf []byte) bool {
		return bytes.Contains(buf, []byte("quit me"))
	}, teatest.WithCheckInterval(50*time.Millisecond), teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
