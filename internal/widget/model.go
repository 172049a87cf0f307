package widget

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/workcheck/internal/logger"
	"github.com/rileyhilliard/workcheck/internal/refresh"
	"github.com/rileyhilliard/workcheck/internal/ui"
)

// Options configure the widget.
type Options struct {
	// Subject is the person named in the card title.
	Subject string
	Logger  logger.Logger
}

// Model is the Bubble Tea model for the status card.
type Model struct {
	ctrl    *refresh.Controller
	state   refresh.State
	subject string
	log     logger.Logger

	spinner ui.RefreshSpinner
	help    help.Model

	width    int
	height   int
	quitting bool
}

// refreshDoneMsg fires when a ticket's simulated query delay has elapsed.
type refreshDoneMsg struct {
	ticket refresh.Ticket
}

// NewModel initializes the controller so the very first View already shows a
// sampled status.
func NewModel(ctrl *refresh.Controller, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.NewEnvLogger("[widget]")
	}
	subject := opts.Subject
	if subject == "" {
		subject = "Ben"
	}

	return Model{
		ctrl:    ctrl,
		state:   ctrl.Initialize(),
		subject: subject,
		log:     log,
		spinner: ui.NewRefreshSpinner(),
		help:    help.New(),
	}
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(ui.Title(m.subject))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg); handled {
			return m, cmd
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			return m, m.refresh()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case refreshDoneMsg:
		if m.ctrl.CompleteRefresh(msg.ticket) {
			m.state = m.ctrl.State()
			m.spinner.Stop()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// refresh sets loading now and schedules completion after the controller delay.
func (m *Model) refresh() tea.Cmd {
	if m.quitting {
		return nil
	}
	ticket, ok := m.ctrl.BeginRefresh()
	if !ok {
		return nil
	}
	m.state = m.ctrl.State()
	m.log.Debug("refresh requested (ticket %d)", ticket)

	return tea.Batch(
		m.spinner.Start(),
		tea.Tick(m.ctrl.Delay(), func(time.Time) tea.Msg {
			return refreshDoneMsg{ticket: ticket}
		}),
	)
}

// quit closes the controller so a tick still in flight cannot mutate state.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.ctrl.Close()
	return tea.Quit
}

// View renders the card.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderScreen()
}

// State returns the state the next View will draw.
func (m Model) State() refresh.State {
	return m.state
}

// Subject returns the person named in the title.
func (m Model) Subject() string {
	return m.subject
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}
