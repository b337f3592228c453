package notification

import (
	"bytes"
	"errors"
	"testing"
)

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    any
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    any
	}{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:    "successful notification",
			title:   "Test Title",
			message: "Test Message",
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     errors.New("notification failed"),
			expectError: true,
		},
		{
			name:    "empty title",
			title:   "",
			message: "Message with empty title",
		},
		{
			name:    "unicode content",
			title:   "通知",
			message: "🎉 Notification with emoji",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}

			call := mock.calls[0]
			if call.title != tt.title {
				t.Errorf("title = %q, want %q", call.title, tt.title)
			}
			if call.message != tt.message {
				t.Errorf("message = %q, want %q", call.message, tt.message)
			}
			iconBytes, ok := call.icon.([]byte)
			if !ok {
				t.Fatalf("icon type = %T, want []byte", call.icon)
			}
			if !bytes.HasPrefix(iconBytes, []byte("\x89PNG")) {
				t.Error("icon is not a PNG")
			}
		})
	}
}

func TestReplyReady(t *testing.T) {
	tests := []struct {
		name            string
		assistant       string
		expectedMessage string
	}{
		{"named assistant", "Componentcn", "Componentcn replied"},
		{"empty name falls back", "", "Assistant replied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := ReplyReady(tt.assistant); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != AppName {
				t.Errorf("title = %q, want %q", mock.calls[0].title, AppName)
			}
			if mock.calls[0].message != tt.expectedMessage {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.expectedMessage)
			}
		})
	}
}

func TestCornerCut(t *testing.T) {
	if !cornerCut(0, 0, 64, 10) {
		t.Error("top-left pixel should be cut")
	}
	if cornerCut(32, 32, 64, 10) {
		t.Error("center pixel should not be cut")
	}
	if cornerCut(10, 0, 64, 10) {
		t.Error("pixel on the arc apex should not be cut")
	}
}
