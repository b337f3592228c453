package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/keys"
	"github.com/Sefyu24/Componentcn/internal/logger"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// handleModalKey dispatches a key press to the handler of the visible modal.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keys.CtrlC {
		m.Close()
		return m, tea.Quit
	}

	switch s := m.modal.State.(type) {
	case *ui.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *ui.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *ui.ButtonOptionsState:
		return m.handleButtonOptionsModal(key, msg, s)
	case *ui.FilePickerState:
		return m.handleFilePickerModal(key, msg, s)
	}
	return m, nil
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *ui.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		return m, m.forwardToModal(msg)
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil && shortcut.Runnable {
			m.modal.Hide()
			return m, func() tea.Msg {
				return ui.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	return m, m.forwardToModal(msg)
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
// It normalizes display keys and delegates to the shortcut registry.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	normalizedKey := normalizeHelpDisplayKey(key)
	if normalizedKey == "" {
		return m, nil // Display-only shortcut, no action
	}
	result, cmd, _ := m.ExecuteShortcut(normalizedKey)
	return result, cmd
}

// normalizeHelpDisplayKey converts help modal display keys to actual key values.
// Returns empty string for display-only shortcuts that shouldn't be executed.
func normalizeHelpDisplayKey(displayKey string) string {
	if strings.HasPrefix(displayKey, "/") {
		return "" // Slash commands are typed, not triggered
	}
	switch displayKey {
	case "Mouse", "PgUp/PgDn", "Shift+←/→", "Drop files", "↑/↓ or j/k", "Arrows":
		return ""
	// Reopening help or stopping a reply from the help list is never intended
	case "?", "Esc":
		return ""
	case "Tab":
		return keys.Tab
	case "Shift+Tab":
		return keys.ShiftTab
	case "Enter":
		return keys.Enter
	case "Shift+Enter":
		return keys.ShiftEnter
	case "Space":
		return keys.Space
	case "PgUp":
		return keys.PgUp
	case "PgDn":
		return keys.PgDown
	default:
		return strings.ToLower(strings.ReplaceAll(displayKey, "ctrl-", "ctrl+"))
	}
}

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *ui.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		values, err := state.Values()
		if err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		if state.ThemeChanged() {
			ui.SetThemeByName(values.Theme)
			m.config.SetTheme(values.Theme)
			m.composerDirty = true // Re-render the timeline in the new palette
		}
		if values.AssistantName != "" {
			m.config.SetAssistantName(values.AssistantName)
			m.chat.SetAssistantName(values.AssistantName)
		}
		m.config.SetReplyDelay(values.ReplyDelay)
		m.config.SetNotificationsEnabled(values.NotificationsEnabled)
		m.config.SetConfettiEnabled(values.ConfettiEnabled)
		m.buttons.Button.Confetti = values.ConfettiEnabled

		if m.config.Path() != "" {
			if err := m.config.Save(); err != nil {
				logger.Error("App: failed to save settings: %v", err)
				m.modal.SetError("Failed to save: " + err.Error())
				return m, nil
			}
		}
		m.modal.Hide()
		return m, m.ShowFlashSuccess("Settings saved")
	}
	return m, m.forwardToModal(msg)
}

// handleButtonOptionsModal handles key events for the button props modal.
func (m *Model) handleButtonOptionsModal(key string, msg tea.KeyPressMsg, state *ui.ButtonOptionsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if err := state.Apply(m.buttons.Button); err != nil {
			m.modal.SetError(err.Error())
			return m, nil
		}
		m.modal.Hide()
		return m, nil
	}
	return m, m.forwardToModal(msg)
}

// handleFilePickerModal handles key events for the file picker. The picker
// owns Enter for both opening directories and choosing files.
func (m *Model) handleFilePickerModal(key string, msg tea.KeyPressMsg, state *ui.FilePickerState) (tea.Model, tea.Cmd) {
	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}
	cmd := m.forwardToModal(msg)
	if path := state.Selected(); path != "" {
		m.modal.Hide()
		return m, tea.Batch(cmd, m.attachFile(path))
	}
	return m, cmd
}

func (m *Model) forwardToModal(msg tea.Msg) tea.Cmd {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return cmd
}
