package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/ui"
)

// footerBindings are the key hints shown for each tab.
var footerBindings = map[Tab][]ui.KeyBinding{
	TabChat: {
		{Key: "enter", Desc: "send"},
		{Key: "shift+enter", Desc: "newline"},
		{Key: "ctrl+v", Desc: "paste image"},
		{Key: "ctrl+o", Desc: "attach"},
		{Key: "ctrl+x", Desc: "remove"},
		{Key: "tab", Desc: "next tab"},
	},
	TabButton: {
		{Key: "enter", Desc: "click"},
		{Key: "e", Desc: "edit"},
		{Key: "v", Desc: "variant"},
		{Key: "s", Desc: "size"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	},
	TabTeam: {
		{Key: "↑/↓", Desc: "move"},
		{Key: "enter", Desc: "expand"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	},
	TabCalendar: {
		{Key: "arrows", Desc: "move"},
		{Key: "enter", Desc: "select"},
		{Key: "pgup/pgdn", Desc: "month"},
		{Key: "s", Desc: "times"},
		{Key: "?", Desc: "help"},
		{Key: "q", Desc: "quit"},
	},
}

func (m *Model) updateFooterBindings() {
	m.footer.SetBindings(footerBindings[m.tab])
}

// footerStatus summarises the active component on the right of the footer.
func (m *Model) footerStatus() string {
	switch m.tab {
	case TabChat:
		if m.composer.State().DragActive {
			return "drop to attach"
		}
		return ""
	case TabButton:
		return fmt.Sprintf("%d clicks", m.buttons.Button.Clicks())
	case TabTeam:
		return fmt.Sprintf("%d open", m.team.Roster.OpenCount())
	case TabCalendar:
		if slot, ok := m.calendar.Calendar.SelectedSlot(); ok {
			return slot
		}
	}
	return ""
}

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)

	top := ctx.ContentTop()
	m.chat.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	m.chat.SetOrigin(0, top)
	m.buttons.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	m.buttons.SetOrigin(0, top)
	m.team.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	m.team.SetOrigin(0, top)
	m.calendar.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	m.calendar.SetOrigin(0, top)

	m.modal.SetScreenSize(ctx.TerminalWidth, ctx.TerminalHeight)
	m.composer.SetDropZone(m.chat.DropZone())
	ctx.Log("layout updated", "width", ctx.TerminalWidth, "height", ctx.TerminalHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay modal if visible
	if m.modal.IsVisible() {
		return m.modal.View(m.width, m.height)
	}

	m.footer.SetStatus(m.footerStatus())

	var content string
	switch m.tab {
	case TabChat:
		content = m.chat.View()
	case TabButton:
		content = m.buttons.View()
	case TabTeam:
		content = m.team.View()
	case TabCalendar:
		content = m.calendar.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		content,
		m.footer.View(),
	)
}
