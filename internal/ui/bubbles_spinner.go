package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames defines the custom animation frames (◐ ◓ ◑ ◒) for Bubble Tea programs.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}

// RefreshSpinner is the glyph on the refresh button. It spins while a
// refresh is pending and shows a static refresh arrow otherwise.
type RefreshSpinner struct {
	spinner spinner.Model
	active  bool
}

// NewRefreshSpinner creates an idle refresh spinner.
func NewRefreshSpinner() RefreshSpinner {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorInfo)
	return RefreshSpinner{spinner: sp}
}

// Start begins animating and returns the first tick command.
func (s *RefreshSpinner) Start() tea.Cmd {
	if s.active {
		return nil
	}
	s.active = true
	return s.spinner.Tick
}

// Stop freezes the spinner on the idle glyph. Pending ticks are dropped in Update.
func (s *RefreshSpinner) Stop() {
	s.active = false
}

// Active reports whether the spinner is animating.
func (s RefreshSpinner) Active() bool {
	return s.active
}

// Update advances the animation on spinner ticks while active.
func (s RefreshSpinner) Update(msg tea.Msg) (RefreshSpinner, tea.Cmd) {
	if !s.active {
		return s, nil
	}
	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(tickMsg)
		return s, cmd
	}
	return s, nil
}

// View renders the current frame, or the refresh arrow when idle.
func (s RefreshSpinner) View() string {
	if s.active {
		return s.spinner.View()
	}
	return Icon("RefreshCw")
}
