package app

import (
	"strings"
	"testing"
	"time"

	"github.com/Sefyu24/Componentcn/internal/config"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

func reloadedConfig(theme, assistant string, delay time.Duration) *config.Config {
	cfg := config.Default()
	cfg.SetTheme(theme)
	cfg.SetAssistantName(assistant)
	cfg.SetReplyDelay(delay)
	cfg.SetConfettiEnabled(false)
	return cfg
}

func TestInit_NoConfigUpdates(t *testing.T) {
	m := testModel(testConfig())
	if m.Init() != nil {
		t.Error("Init() without a config source should return nil")
	}
}

func TestConfigReload_AppliesLiveSettings(t *testing.T) {
	defer ui.SetTheme(ui.DefaultTheme)

	ch := make(chan *config.Config, 1)
	m := testModelWithSize(testConfig(), 100, 30, WithConfigUpdates(ch))
	wait := m.Init()
	if wait == nil {
		t.Fatal("Init() should wait for config updates")
	}

	ch <- reloadedConfig("nord", "Helper", 3*time.Second)
	msg, ok := wait().(ConfigReloadedMsg)
	if !ok {
		t.Fatalf("wait produced %T, want ConfigReloadedMsg", msg)
	}
	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Error("reload should keep listening and flash")
	}

	if ui.CurrentThemeName() != ui.ThemeNord {
		t.Errorf("theme = %q, want nord", ui.CurrentThemeName())
	}
	if m.config.GetAssistantName() != "Helper" {
		t.Errorf("assistant = %q, want Helper", m.config.GetAssistantName())
	}
	if m.config.GetReplyDelay() != 3*time.Second {
		t.Errorf("reply delay = %v, want 3s", m.config.GetReplyDelay())
	}
	if m.buttons.Button.Confetti {
		t.Error("confetti should follow the reloaded config")
	}
	if !strings.Contains(m.RenderToString(), "Config reloaded") {
		t.Error("reload should flash in the footer")
	}
}

func TestConfigReload_UnknownThemeKeepsCurrent(t *testing.T) {
	defer ui.SetTheme(ui.DefaultTheme)

	ch := make(chan *config.Config, 1)
	m := testModelWithSize(testConfig(), 100, 30, WithConfigUpdates(ch))
	ui.SetTheme(ui.ThemeDracula)
	m.Update(ConfigReloadedMsg{Config: reloadedConfig("sepia", "Other", time.Second)})

	if ui.CurrentThemeName() != ui.ThemeDracula {
		t.Errorf("theme = %q, want dracula kept", ui.CurrentThemeName())
	}
	if m.config.GetAssistantName() == "Other" {
		t.Error("a rejected reload should not apply other fields")
	}
}

func TestWaitForConfig_ClosedChannel(t *testing.T) {
	ch := make(chan *config.Config)
	close(ch)
	if msg := waitForConfig(ch)(); msg != nil {
		t.Errorf("closed channel produced %T, want nil", msg)
	}
}
