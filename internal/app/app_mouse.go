package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/logger"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// handleMouse routes mouse input. Clicks on the header switch tabs; the
// rest goes to the active tab.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	mouse := msg.Mouse()

	switch msg.(type) {
	case tea.MouseWheelMsg:
		if m.tab != TabChat {
			return nil
		}
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		return cmd

	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			return nil
		}
		if mouse.Y < ui.HeaderHeight {
			if i, ok := m.header.TabAt(mouse.X); ok {
				m.setTab(Tab(i))
			}
			return nil
		}
		return m.handleClick(mouse.X, mouse.Y)

	case tea.MouseMotionMsg:
		if mouse.Button != tea.MouseLeft {
			return nil
		}
		if m.chat.IsSelecting() {
			m.chat.SelectionDrag(mouse.X, mouse.Y)
			return nil
		}
		if m.dragging {
			m.trackDrag(mouse.X, mouse.Y)
		}

	case tea.MouseReleaseMsg:
		if m.chat.IsSelecting() {
			if text := m.chat.SelectionRelease(mouse.X, mouse.Y); text != "" {
				return m.copyText(text)
			}
			return nil
		}
		if !m.dragging {
			return nil
		}
		m.dragging = false
		if m.composer.State().DragActive && m.chat.DropZone().Has(mouse.X, mouse.Y) {
			m.composer.Drop()
		} else {
			m.composer.DragLeave(ui.Point(mouse.X, mouse.Y))
		}
	}
	return nil
}

func (m *Model) handleClick(x, y int) tea.Cmd {
	switch m.tab {
	case TabChat:
		if i, onRemove, ok := m.chat.TileAt(x, y); ok {
			if onRemove {
				m.composer.Remove(m.composer.Attachments()[i].ID)
			} else {
				m.chat.Select(i)
			}
			return nil
		}
		if m.chat.DropZone().Has(x, y) {
			m.chat.ClearSelection()
			m.dragging = true
			return nil
		}
		if !m.chat.TimelineRect().Has(x, y) {
			m.chat.ClearSelection()
			return nil
		}
		if text := m.chat.SelectionPress(x, y); text != "" {
			return m.copyText(text)
		}

	case TabButton:
		if m.buttons.ButtonRect().Has(x, y) {
			return m.buttons.Fire()
		}

	case TabTeam:
		if i, ok := m.team.GroupAt(x, y); ok {
			return m.team.ToggleAt(i)
		}

	case TabCalendar:
		c := m.calendar.Calendar
		switch hit, i := m.calendar.HitTest(x, y); hit {
		case ui.HitPrevMonth:
			c.PrevMonth()
		case ui.HitNextMonth:
			c.NextMonth()
		case ui.HitSlot:
			c.SelectSlot(c.Slots()[i])
		}
	}
	return nil
}

// trackDrag feeds pointer movement to the composer's drag tracker. Moving
// between regions inside the drop zone keeps the drag alive.
func (m *Model) trackDrag(x, y int) {
	p := ui.Point(x, y)
	if m.chat.DropZone().Has(x, y) {
		m.composer.DragEnter(p)
		return
	}
	m.composer.DragLeave(p)
}

// copyText puts text selected in the chat on both the terminal clipboard
// (OSC 52) and the system one.
func (m *Model) copyText(text string) tea.Cmd {
	if err := m.clipboard.WriteText(text); err != nil {
		logger.Warn("App: failed to write clipboard: %v", err)
	}
	m.log.Debug("copied selection", "chars", len([]rune(text)))
	return tea.Batch(
		tea.SetClipboard(text),
		m.chat.FlashSelection(),
		m.ShowFlashSuccess("Copied to clipboard"),
	)
}
