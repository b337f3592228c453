package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindNotFound, "not found"},
		{KindInvalid, "invalid"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindUnsupported, "unsupported"},
		{Kind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "bare error",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestE_ContextOnlyBecomesError(t *testing.T) {
	err := E(Op("x.Y"), KindInvalid, "bad input")
	if got := err.Error(); got != "x.Y: bad input" {
		t.Errorf("Error() = %q", got)
	}
	if !Is(err, KindInvalid) {
		t.Error("Is(err, KindInvalid) = false")
	}
}

func TestUnwrapAndKind(t *testing.T) {
	err := FileReadFailed("/tmp/cat.png", fs.ErrNotExist)

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see the wrapped fs.ErrNotExist")
	}
	if GetKind(err) != KindIO {
		t.Errorf("GetKind = %v, want KindIO", GetKind(err))
	}
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Error("plain errors should report KindUnknown")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind Kind
	}{
		{"config load", ConfigLoadFailed("/c.yaml", errors.New("boom")), KindConfig},
		{"config save", ConfigSaveFailed("/c.yaml", errors.New("boom")), KindConfig},
		{"config invalid", ConfigInvalid("reply_delay must be positive"), KindInvalid},
		{"not a file", NotAFile("/tmp"), KindInvalid},
		{"decode", ImageDecodeFailed("image/png", errors.New("short")), KindUnsupported},
		{"clipboard", ClipboardUnavailable(errors.New("no display")), KindUnsupported},
		{"option", UnknownOption("variant", "fancy"), KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !Is(tt.err, tt.kind) {
				t.Errorf("kind = %v, want %v", GetKind(tt.err), tt.kind)
			}
		})
	}
}
