package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const helpKeyColumn = 16

// sectionRow is a category header. Enter on it does nothing and it never
// matches a filter.
type sectionRow struct {
	title string
	count int
}

func (sectionRow) FilterValue() string { return "" }

type shortcutRow struct {
	HelpShortcut
}

func (r shortcutRow) FilterValue() string { return r.Key + " " + r.Desc }

type helpRows struct{}

func (helpRows) Height() int                             { return 1 }
func (helpRows) Spacing() int                            { return 0 }
func (helpRows) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (helpRows) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch row := item.(type) {
	case sectionRow:
		title := lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(row.title)
		count := lipgloss.NewStyle().Foreground(ColorTextMuted).Render(fmt.Sprintf(" (%d)", row.count))
		fmt.Fprint(w, title+count)
	case shortcutRow:
		fmt.Fprint(w, renderShortcutRow(row.HelpShortcut, index == m.Index()))
	}
}

// renderShortcutRow draws "  key  description". Gesture rows are muted so
// it is clear Enter will not run them.
func renderShortcutRow(s HelpShortcut, selected bool) string {
	key := lipgloss.NewStyle().Width(helpKeyColumn).Bold(true).Foreground(ColorPrimary)
	desc := lipgloss.NewStyle().Foreground(ColorText)
	if !s.Runnable {
		key = key.Foreground(ColorTextMuted)
		desc = desc.Foreground(ColorTextMuted)
	}

	cursor := "  "
	if selected {
		cursor = "> "
		bg := ColorPrimary
		if !s.Runnable {
			bg = ColorTextMuted
		}
		key = key.Foreground(ColorTextInverse).Background(bg)
		desc = desc.Foreground(ColorTextInverse).Background(bg)
	}
	return cursor + key.Render(s.Key) + desc.Render(s.Desc)
}

// HelpState lists the shortcuts that apply to the current tab.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	if sel := s.GetSelectedShortcut(); sel != nil && sel.Runnable {
		return "/: filter  ↑/↓: move  Enter: run  Esc: close"
	}
	return "/: filter  ↑/↓: move  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize gives the list whatever the title and help lines leave over.
func (s *HelpState) SetSize(width, height int) {
	const chrome = 4
	s.list.SetSize(width, max(1, height-chrome))
}

// GetSelectedShortcut returns the row under the cursor, or nil when the
// cursor is on a section header or the list is empty.
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	if row, ok := s.list.SelectedItem().(shortcutRow); ok {
		return &row.HelpShortcut
	}
	return nil
}

// IsFiltering reports whether the filter prompt has focus.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections builds the dialog with the cursor on the first
// shortcut.
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var rows []list.Item
	first := -1
	for _, section := range sections {
		rows = append(rows, sectionRow{title: section.Title, count: len(section.Shortcuts)})
		for _, sc := range section.Shortcuts {
			if first < 0 {
				first = len(rows)
			}
			rows = append(rows, shortcutRow{sc})
		}
	}

	l := list.New(rows, helpRows{}, ModalWidth, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)
	if first >= 0 {
		l.Select(first)
	}
	return &HelpState{list: l}
}
