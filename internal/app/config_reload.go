package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/config"
	"github.com/Sefyu24/Componentcn/internal/logger"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// ConfigReloadedMsg carries a config file that was edited while the app ran.
type ConfigReloadedMsg struct {
	Config *config.Config
}

func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return ConfigReloadedMsg{Config: cfg}
	}
}

// applyReloadedConfig takes over the live settings from next: theme,
// assistant name, reply delay, notifications and confetti. Startup-only
// fields (default tab, time slots) wait for the next launch.
func (m *Model) applyReloadedConfig(next *config.Config) tea.Cmd {
	wait := waitForConfig(m.configUpdates)

	theme := next.GetTheme()
	if theme != "" && !ui.IsThemeName(theme) {
		logger.Warn("App: reloaded config names unknown theme %q", theme)
		return tea.Batch(m.ShowFlashWarning("Config reloaded, unknown theme "+theme), wait)
	}
	if theme != "" {
		if theme != string(ui.CurrentThemeName()) {
			ui.SetThemeByName(theme)
			m.composerDirty = true
		}
		m.config.SetTheme(theme)
	}

	name := next.GetAssistantName()
	m.config.SetAssistantName(name)
	m.chat.SetAssistantName(name)
	m.config.SetReplyDelay(next.GetReplyDelay())
	m.config.SetNotificationsEnabled(next.GetNotificationsEnabled())
	m.config.SetConfettiEnabled(next.ConfettiEnabled())
	m.buttons.Button.Confetti = next.ConfettiEnabled()

	logger.Info("App: config reloaded from %s", next.Path())
	return tea.Batch(m.ShowFlashInfo("Config reloaded"), wait)
}
