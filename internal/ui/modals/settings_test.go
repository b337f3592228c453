package modals

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/go-cmp/cmp"

	perrors "github.com/Sefyu24/Componentcn/internal/errors"
)

func testSettings() SettingsValues {
	return SettingsValues{
		Theme:                "nord",
		AssistantName:        "Assistant",
		ReplyDelay:           1200 * time.Millisecond,
		NotificationsEnabled: true,
		ConfettiEnabled:      false,
	}
}

func TestNewSettingsState_RoundTripsValues(t *testing.T) {
	want := testSettings()
	s := NewSettingsState([]string{"zinc", "nord"}, []string{"Zinc", "Nord"}, want)

	got, err := s.Values()
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
	if s.ThemeChanged() {
		t.Error("ThemeChanged() = true before any edit")
	}
}

func TestSettingsState_ThemeChanged(t *testing.T) {
	s := NewSettingsState([]string{"zinc", "nord"}, []string{"Zinc", "Nord"}, testSettings())
	s.selectedTheme = "zinc"

	if !s.ThemeChanged() {
		t.Error("ThemeChanged() = false after switching theme")
	}
	if s.GetSelectedTheme() != "zinc" {
		t.Errorf("GetSelectedTheme() = %q, want zinc", s.GetSelectedTheme())
	}
}

func TestSettingsState_ReplyDelayValidation(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"2s", 2 * time.Second, false},
		{" 750ms ", 750 * time.Millisecond, false},
		{"0s", 0, false},
		{"soon", 0, true},
		{"-1s", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s := NewSettingsState(nil, nil, testSettings())
			s.replyDelay = tt.in
			got, err := s.Values()
			if tt.wantErr {
				if perrors.GetKind(err) != perrors.KindInvalid {
					t.Errorf("Values() error kind = %v, want invalid", perrors.GetKind(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Values() error = %v", err)
			}
			if got.ReplyDelay != tt.want {
				t.Errorf("ReplyDelay = %v, want %v", got.ReplyDelay, tt.want)
			}
		})
	}
}

func TestSettingsState_TrimsAssistantName(t *testing.T) {
	s := NewSettingsState(nil, nil, testSettings())
	s.assistantName = "  Bot  "
	got, err := s.Values()
	if err != nil {
		t.Fatalf("Values() error = %v", err)
	}
	if got.AssistantName != "Bot" {
		t.Errorf("AssistantName = %q, want Bot", got.AssistantName)
	}
}

func TestSettingsState_EnterAndEscapeAreLeftToApp(t *testing.T) {
	s := NewSettingsState([]string{"zinc"}, []string{"Zinc"}, testSettings())
	for _, msg := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		_, cmd := s.Update(msg)
		if cmd != nil {
			t.Errorf("Update(%q) returned a command, want nil", msg.String())
		}
	}
	if s.Title() != "Settings" {
		t.Errorf("Title() = %q", s.Title())
	}
}
