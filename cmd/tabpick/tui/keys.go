package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// intent records what the list asked the host to do while handling a key.
// The shell acts on it afterwards so that focusing can run as a command.
type intent struct {
	focus     bool
	position  int
	dismissed bool
}

func (i *intent) Focus(position int) {
	i.focus = true
	i.position = position
}

func (i *intent) Dismiss() { i.dismissed = true }

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modified characters (Alt+x) belong to the terminal, not the query.
	if msg.Alt {
		return m, nil
	}
	m.err = nil

	switch msg.String() {
	case "up", "ctrl+p", "ctrl+k":
		m.list.MoveSelectionUp()
	case "down", "ctrl+n", "ctrl+j":
		m.list.MoveSelectionDown()
	case "backspace":
		m.list.PopCharacter()
	case "enter":
		var in intent
		if m.list.CommitSelection(&in) && in.focus {
			return m, focusItem(m.host, in.position)
		}
	case "esc", "ctrl+g", "ctrl+c":
		var in intent
		m.list.Dismiss(&in)
		if in.dismissed {
			m.Quitting = true
			return m, tea.Quit
		}
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			for _, r := range msg.Runes {
				m.list.PushCharacter(r)
			}
		}
	}
	m.syncInput()
	return m, nil
}
