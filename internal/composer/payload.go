package composer

import "strings"

// Source identifies where an attachment came from.
type Source int

const (
	// SourcePicker is bulk file selection (file picker or /attach).
	SourcePicker Source = iota
	// SourceDrop is a drag-and-drop of files onto the composer.
	SourceDrop
	// SourcePaste is a clipboard paste.
	SourcePaste
)

func (s Source) String() string {
	switch s {
	case SourcePicker:
		return "picker"
	case SourceDrop:
		return "drop"
	case SourcePaste:
		return "paste"
	default:
		return "unknown"
	}
}

// Payload is a raw file-like input handed to the composer.
type Payload struct {
	Name      string // Display name, usually the file's base name
	MediaType string // MIME type, e.g. "image/png"
	Data      []byte
}

// IsImage reports whether the media type names an image.
func (p Payload) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(p.MediaType)), "image/")
}

// SizeKB returns the payload size in kilobytes.
func (p Payload) SizeKB() int {
	return len(p.Data) / 1024
}
