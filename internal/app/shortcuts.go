package app

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/button"
	"github.com/Sefyu24/Componentcn/internal/keys"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key             string                              // The key binding (e.g., "e", "ctrl+o")
	DisplayKey      string                              // Display name in help (e.g., "ctrl-o"); defaults to Key
	Description     string                              // Human-readable description
	Category        string                              // Section for help modal grouping
	Tabs            []Tab                               // Tabs the shortcut works on; nil means all
	RequiresOffChat bool                                // Plain keys that would otherwise be typed into the draft
	Handler         func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition       func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryChat       = "Chat"
	CategorySlash      = "Slash Commands"
	CategoryButton     = "Button"
	CategoryTeam       = "Team"
	CategoryCalendar   = "Calendar"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryChat,
	CategorySlash,
	CategoryButton,
	CategoryTeam,
	CategoryCalendar,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{
		Key:         keys.Tab,
		DisplayKey:  "Tab",
		Description: "Next tab",
		Category:    CategoryNavigation,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.cycleTab(1); return m, nil },
	},
	{
		Key:         keys.ShiftTab,
		DisplayKey:  "Shift+Tab",
		Description: "Previous tab",
		Category:    CategoryNavigation,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.cycleTab(-1); return m, nil },
	},
	{Key: "1", Description: "Chat tab", Category: CategoryNavigation, RequiresOffChat: true, Handler: gotoTab(TabChat)},
	{Key: "2", Description: "Button tab", Category: CategoryNavigation, RequiresOffChat: true, Handler: gotoTab(TabButton)},
	{Key: "3", Description: "Team tab", Category: CategoryNavigation, RequiresOffChat: true, Handler: gotoTab(TabTeam)},
	{Key: "4", Description: "Calendar tab", Category: CategoryNavigation, RequiresOffChat: true, Handler: gotoTab(TabCalendar)},

	// Chat
	{
		Key:         keys.Enter,
		DisplayKey:  "Enter",
		Description: "Send message",
		Category:    CategoryChat,
		Tabs:        []Tab{TabChat},
		Handler:     shortcutSend,
	},
	{
		Key:         keys.ShiftEnter,
		DisplayKey:  "Shift+Enter",
		Description: "New line",
		Category:    CategoryChat,
		Tabs:        []Tab{TabChat},
		Handler:     shortcutNewline,
	},
	{
		Key:         keys.CtrlV,
		DisplayKey:  "ctrl-v",
		Description: "Paste image from clipboard",
		Category:    CategoryChat,
		Tabs:        []Tab{TabChat},
		Handler:     shortcutPasteImage,
	},
	{
		Key:         keys.CtrlO,
		DisplayKey:  "ctrl-o",
		Description: "Attach image from disk",
		Category:    CategoryChat,
		Tabs:        []Tab{TabChat},
		Handler:     shortcutFilePicker,
	},
	{
		Key:         keys.CtrlX,
		DisplayKey:  "ctrl-x",
		Description: "Remove selected image",
		Category:    CategoryChat,
		Tabs:        []Tab{TabChat},
		Handler:     shortcutRemoveSelected,
		Condition:   func(m *Model) bool { return len(m.composer.Attachments()) > 0 },
	},
	{
		Key:         keys.CtrlL,
		DisplayKey:  "ctrl-l",
		Description: "Clear draft and staged images",
		Category:    CategoryChat,
		Tabs:        []Tab{TabChat},
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.composer.Reset(); return m, nil },
	},
	{
		Key:         keys.Escape,
		DisplayKey:  "Esc",
		Description: "Stop waiting for the reply",
		Category:    CategoryChat,
		Tabs:        []Tab{TabChat},
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.cancelReply(); return m, nil },
		Condition:   func(m *Model) bool { return m.composer.State().Submitting },
	},

	// Button
	{Key: keys.Enter, DisplayKey: "Enter", Description: "Click the button", Category: CategoryButton, Tabs: []Tab{TabButton}, Handler: shortcutClick},
	{Key: keys.Space, DisplayKey: "Space", Description: "Click the button", Category: CategoryButton, Tabs: []Tab{TabButton}, Handler: shortcutClick},
	{Key: "e", Description: "Edit button props", Category: CategoryButton, Tabs: []Tab{TabButton}, Handler: shortcutButtonOptions},
	{Key: "v", Description: "Next variant", Category: CategoryButton, Tabs: []Tab{TabButton}, Handler: shortcutNextVariant},
	{Key: "s", Description: "Next size", Category: CategoryButton, Tabs: []Tab{TabButton}, Handler: shortcutNextSize},
	{Key: "d", Description: "Toggle disabled", Category: CategoryButton, Tabs: []Tab{TabButton}, Handler: shortcutToggleDisabled},
	{Key: "c", Description: "Toggle confetti", Category: CategoryButton, Tabs: []Tab{TabButton}, Handler: shortcutToggleConfetti},

	// Team
	{Key: keys.Enter, DisplayKey: "Enter", Description: "Expand or collapse group", Category: CategoryTeam, Tabs: []Tab{TabTeam}, Handler: shortcutToggleGroup},
	{Key: keys.Space, DisplayKey: "Space", Description: "Expand or collapse group", Category: CategoryTeam, Tabs: []Tab{TabTeam}, Handler: shortcutToggleGroup},

	// Calendar
	{Key: keys.Enter, DisplayKey: "Enter", Description: "Select day or time", Category: CategoryCalendar, Tabs: []Tab{TabCalendar}, Handler: shortcutCalendarSelect},
	{Key: keys.PgUp, DisplayKey: "PgUp", Description: "Previous month", Category: CategoryCalendar, Tabs: []Tab{TabCalendar}, Handler: shortcutPrevMonth},
	{Key: keys.PgDown, DisplayKey: "PgDn", Description: "Next month", Category: CategoryCalendar, Tabs: []Tab{TabCalendar}, Handler: shortcutNextMonth},
	{Key: "t", Description: "Select today", Category: CategoryCalendar, Tabs: []Tab{TabCalendar}, Handler: shortcutToday},
	{
		Key:         "s",
		Description: "Switch between days and times",
		Category:    CategoryCalendar,
		Tabs:        []Tab{TabCalendar},
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { m.calendar.ToggleFocus(); return m, nil },
		Condition:   func(m *Model) bool { return len(m.calendar.Calendar.Slots()) > 0 },
	},

	// General
	{
		Key:         keys.CtrlT,
		DisplayKey:  "ctrl-t",
		Description: "Settings",
		Category:    CategoryGeneral,
		Handler:     shortcutSettings,
	},
	{
		Key:             "q",
		Description:     "Quit",
		Category:        CategoryGeneral,
		RequiresOffChat: true,
		Handler:         shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:             "?",
	Description:     "Show this help",
	Category:        CategoryGeneral,
	RequiresOffChat: true,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "Mouse", Description: "Click tabs to switch", Category: CategoryNavigation},
	{DisplayKey: "PgUp/PgDn", Description: "Scroll the conversation", Category: CategoryChat, Tabs: []Tab{TabChat}},
	{DisplayKey: "Shift+←/→", Description: "Select staged image", Category: CategoryChat, Tabs: []Tab{TabChat}},
	{DisplayKey: "Drop files", Description: "Attach images", Category: CategoryChat, Tabs: []Tab{TabChat}},
	{DisplayKey: "Drag text", Description: "Copy from the conversation (double-click: word)", Category: CategoryChat, Tabs: []Tab{TabChat}},
	{DisplayKey: "↑/↓ or j/k", Description: "Move between groups", Category: CategoryTeam, Tabs: []Tab{TabTeam}},
	{DisplayKey: "Arrows", Description: "Move day or time cursor", Category: CategoryCalendar, Tabs: []Tab{TabCalendar}},
}

func gotoTab(t Tab) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		m.setTab(t)
		return m, nil
	}
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.Tabs != nil && !slices.Contains(s.Tabs, m.tab) {
		return false
	}
	if s.RequiresOffChat && m.tab == TabChat {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key. Several shortcuts may
// share a key on different tabs; the first applicable one runs.
// Returns (model, cmd, true) if a shortcut was found and executed.
// Returns (model, nil, false) if none was found or every guard failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false // Let the key reach the draft
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key || !m.isShortcutApplicable(s) {
			continue
		}
		m.log.Debug("executing shortcut", "key", key, "tab", m.tab)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []ui.HelpSection {
	categories := make(map[string][]ui.HelpShortcut)
	seen := make(map[string]bool)

	add := func(s Shortcut, runnable bool) {
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		id := s.Category + "\x00" + displayKey
		if seen[id] {
			return
		}
		seen[id] = true
		categories[s.Category] = append(categories[s.Category], ui.HelpShortcut{
			Key:      displayKey,
			Desc:     s.Description,
			Runnable: runnable,
		})
	}

	for _, s := range registry {
		if m.isShortcutApplicable(s) {
			add(s, true)
		}
	}
	for _, s := range displayOnly {
		if s.Tabs != nil && !slices.Contains(s.Tabs, m.tab) {
			continue
		}
		add(s, false)
	}

	var sections []ui.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, ui.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutSend(m *Model) (tea.Model, tea.Cmd) {
	if m.composer.State().Submitting {
		// A reply is already on its way; keep the draft for later
		return m, nil
	}
	if res := m.handleSlashCommand(m.composer.Draft()); res.Handled {
		return m, res.Cmd
	}
	return m, m.submit()
}

func shortcutNewline(m *Model) (tea.Model, tea.Cmd) {
	m.chat.InsertNewline()
	m.composer.SetDraft(m.chat.Input())
	return m, nil
}

func shortcutPasteImage(m *Model) (tea.Model, tea.Cmd) {
	ok, cmd := m.pasteClipboardImage(true)
	if ok || cmd != nil {
		return m, cmd
	}
	return m, m.ShowFlashInfo("No image on the clipboard")
}

func shortcutFilePicker(m *Model) (tea.Model, tea.Cmd) {
	state := ui.NewFilePickerState("")
	m.modal.Show(state)
	return m, state.Init()
}

func shortcutRemoveSelected(m *Model) (tea.Model, tea.Cmd) {
	att, ok := m.chat.SelectedAttachment()
	if !ok {
		atts := m.composer.Attachments()
		att = atts[len(atts)-1]
	}
	m.composer.Remove(att.ID)
	return m, nil
}

func shortcutClick(m *Model) (tea.Model, tea.Cmd) {
	return m, m.buttons.Fire()
}

func shortcutButtonOptions(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(ui.NewButtonOptionsState(m.buttons.Button))
	return m, nil
}

func shortcutNextVariant(m *Model) (tea.Model, tea.Cmd) {
	b := m.buttons.Button
	b.Variant = nextOf(button.Variants(), b.Variant)
	return m, nil
}

func shortcutNextSize(m *Model) (tea.Model, tea.Cmd) {
	b := m.buttons.Button
	b.Size = nextOf(button.Sizes(), b.Size)
	return m, nil
}

func nextOf[T comparable](all []T, cur T) T {
	i := slices.Index(all, cur)
	return all[(i+1)%len(all)]
}

func shortcutToggleDisabled(m *Model) (tea.Model, tea.Cmd) {
	m.buttons.Button.Disabled = !m.buttons.Button.Disabled
	return m, nil
}

func shortcutToggleConfetti(m *Model) (tea.Model, tea.Cmd) {
	m.buttons.Button.Confetti = !m.buttons.Button.Confetti
	return m, nil
}

func shortcutToggleGroup(m *Model) (tea.Model, tea.Cmd) {
	return m, m.team.Toggle()
}

func shortcutCalendarSelect(m *Model) (tea.Model, tea.Cmd) {
	if m.calendar.SlotsFocused() {
		m.calendar.Calendar.SelectSlotCursor()
	} else {
		m.calendar.Calendar.SelectCursor()
	}
	return m, nil
}

func shortcutPrevMonth(m *Model) (tea.Model, tea.Cmd) {
	m.calendar.Calendar.PrevMonth()
	return m, nil
}

func shortcutNextMonth(m *Model) (tea.Model, tea.Cmd) {
	m.calendar.Calendar.NextMonth()
	return m, nil
}

func shortcutToday(m *Model) (tea.Model, tea.Cmd) {
	c := m.calendar.Calendar
	c.SelectDate(c.Today())
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themes := make([]string, len(names))
	display := make([]string, len(names))
	for i, n := range names {
		themes[i] = string(n)
		display[i] = ui.GetTheme(n).Name
	}
	m.modal.Show(ui.NewSettingsState(themes, display, ui.SettingsValues{
		Theme:                string(ui.CurrentThemeName()),
		AssistantName:        m.config.GetAssistantName(),
		ReplyDelay:           m.config.GetReplyDelay(),
		NotificationsEnabled: m.config.GetNotificationsEnabled(),
		ConfettiEnabled:      m.buttons.Button.Confetti,
	}))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	// Include help shortcut in the registry for display purposes
	allShortcuts := append(ShortcutRegistry, helpShortcut)
	displayOnly := slices.Clone(DisplayOnlyShortcuts)
	for _, c := range getSlashCommands() {
		displayOnly = append(displayOnly, Shortcut{
			DisplayKey:  c.usage,
			Description: c.description,
			Category:    CategorySlash,
			Tabs:        []Tab{TabChat},
		})
	}
	sections := m.getApplicableHelpSections(allShortcuts, displayOnly)
	m.modal.Show(ui.NewHelpStateFromSections(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}
