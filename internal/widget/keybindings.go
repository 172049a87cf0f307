package widget

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap defines the widget's key bindings.
type keyMap struct {
	Refresh    key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Refresh: key.NewBinding(
		key.WithKeys("enter", " ", "r"),
		key.WithHelp("enter/r", "check again"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.ToggleHelp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh},
		{k.ToggleHelp, k.Quit},
	}
}

// HandleKeyMsg processes keyboard input. Returns true if the key was handled.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return true, m.quit()

	case key.Matches(msg, keys.ToggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil

	case key.Matches(msg, keys.Refresh):
		return true, m.refresh()
	}

	return false, nil
}
