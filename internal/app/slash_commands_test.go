package app

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sefyu24/Componentcn/internal/keys"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// runSlash types a command and presses Enter.
func runSlash(m *Model, input string) *Model {
	m.Composer().SetDraft(input)
	return sendKey(m, keys.Enter)
}

func TestSlashCommand_NotACommand(t *testing.T) {
	m := testModel(testConfig())
	if res := m.handleSlashCommand("hello /attach"); res.Handled {
		t.Error("text that doesn't start with / is not a command")
	}
}

func TestSlashCommand_UnknownIsSentAsMessage(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m = runSlash(m, "/shrug")

	msgs := m.Composer().Messages()
	if len(msgs) != 1 || msgs[0].Content != "/shrug" {
		t.Errorf("messages = %+v, want the unknown command sent as text", msgs)
	}
}

func TestSlashCommand_Attach(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "one.png")
	writeImage(t, dir, "two.png")

	m := testModelWithSize(testConfig(), 100, 30)
	m = runSlash(m, "/attach "+filepath.Join(dir, "*.png"))

	if got := attachmentNames(m); len(got) != 2 || got[0] != "one.png" || got[1] != "two.png" {
		t.Fatalf("attachments = %v", got)
	}
	if m.Composer().Draft() != "" {
		t.Errorf("draft = %q, want the command consumed", m.Composer().Draft())
	}
	if len(m.Composer().Messages()) != 0 {
		t.Error("a handled command must not be sent")
	}
	if !strings.Contains(footerText(m), "2 images attached") {
		t.Errorf("footer = %q", footerText(m))
	}
}

func TestSlashCommand_AttachErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"no match", filepath.Join(dir, "*.gif"), "No files match"},
		{"bad pattern", filepath.Join(dir, "[.png"), "Invalid pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testModelWithSize(testConfig(), 100, 30)
			res := m.handleSlashCommand("/attach " + tt.pattern)
			if !res.Handled || !res.IsError || !strings.HasPrefix(res.Response, tt.want) {
				t.Errorf("result = %+v, want error starting %q", res, tt.want)
			}
		})
	}
}

func TestSlashCommand_AttachWithoutPatternOpensPicker(t *testing.T) {
	t.Chdir(t.TempDir())
	m := testModelWithSize(testConfig(), 100, 30)
	m = runSlash(m, "/attach")
	if _, ok := m.ModalState().(*ui.FilePickerState); !ok {
		t.Errorf("modal = %T, want file picker", m.ModalState())
	}
}

func TestSlashCommand_Clear(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30, WithClipboard(clipboardImage("a.png")))
	m = sendKey(m, keys.CtrlV)
	m = runSlash(m, "/clear")

	if len(m.Composer().Attachments()) != 0 {
		t.Error("/clear should drop staged images")
	}
	if m.Composer().Handles().Outstanding() != 0 {
		t.Error("/clear should revoke staged previews")
	}
}

func TestSlashCommand_Help(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m.Composer().SetDraft("/help")
	cmd := sendKeyCmd(m, keys.Enter)
	if cmd == nil {
		t.Fatal("/help should return a command")
	}
	m.Update(cmd())
	if _, ok := m.ModalState().(*ui.HelpState); !ok {
		t.Fatalf("modal = %T, want help", m.ModalState())
	}
	if !strings.Contains(m.RenderToString(), "Slash Commands") {
		t.Error("help on the chat tab should list slash commands")
	}
}

func TestSlashCommand_Theme(t *testing.T) {
	t.Cleanup(func() { ui.SetTheme(ui.DefaultTheme) })
	cfg := testConfig()
	m := testModelWithSize(cfg, 100, 30)

	res := m.handleSlashCommand("/theme")
	if !strings.Contains(res.Response, string(ui.ThemeNord)) {
		t.Errorf("theme list = %q", res.Response)
	}

	res = m.handleSlashCommand("/theme nord")
	if res.IsError || ui.CurrentThemeName() != ui.ThemeNord || cfg.GetTheme() != "nord" {
		t.Errorf("result %+v, current %q, config %q", res, ui.CurrentThemeName(), cfg.GetTheme())
	}

	res = m.handleSlashCommand("/theme neon")
	if !res.IsError || ui.CurrentThemeName() != ui.ThemeNord {
		t.Errorf("unknown theme: %+v", res)
	}
}
