package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/keys"
)

// handleKeyPress routes a key press when no modal is open. Registered
// shortcuts win; what is left goes to the active tab.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keys.CtrlC {
		m.Close()
		return m, tea.Quit
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	switch m.tab {
	case TabChat:
		return m.handleChatKey(msg)
	case TabTeam:
		m.handleTeamKey(key)
	case TabCalendar:
		m.handleCalendarKey(key)
	}
	return m, nil
}

func (m *Model) handleChatKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.chat.ClearSelection()

	// Backspace on an empty draft peels staged images off, newest first
	// unless one is selected
	if msg.String() == keys.Backspace && m.chat.Input() == "" && len(m.composer.Attachments()) > 0 {
		return shortcutRemoveSelected(m)
	}

	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	m.composer.SetDraft(m.chat.Input())
	return m, cmd
}

func (m *Model) handleTeamKey(key string) {
	switch key {
	case keys.Up, "k":
		m.team.Roster.Move(-1)
	case keys.Down, "j":
		m.team.Roster.Move(1)
	}
}

func (m *Model) handleCalendarKey(key string) {
	c := m.calendar.Calendar
	if m.calendar.SlotsFocused() {
		switch key {
		case keys.Up, keys.Left, "k", "h":
			c.MoveSlotCursor(-1)
		case keys.Down, keys.Right, "j", "l":
			c.MoveSlotCursor(1)
		}
		return
	}
	switch key {
	case keys.Left, "h":
		c.MoveCursor(-1)
	case keys.Right, "l":
		c.MoveCursor(1)
	case keys.Up, "k":
		c.MoveCursor(-7)
	case keys.Down, "j":
		c.MoveCursor(7)
	}
}
