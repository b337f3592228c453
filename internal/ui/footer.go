package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// DefaultFlashDuration is how long a flash message stays in the footer.
const DefaultFlashDuration = 4 * time.Second

// flashTickInterval is how often expired flashes are checked.
const flashTickInterval = 500 * time.Millisecond

// FlashType selects the icon and colour of a flash message.
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// FlashMessage is a transient notice that replaces the key hints.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (m *FlashMessage) IsExpired() bool {
	return time.Since(m.CreatedAt) > m.Duration
}

// FlashTickMsg drives flash expiry.
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	status       string
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "1-4", Desc: "tabs"},
			{Key: "?", Desc: "help"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// Bindings returns the current key hints.
func (f *Footer) Bindings() []KeyBinding {
	return f.bindings
}

// SetStatus sets the right-aligned status text.
func (f *Footer) SetStatus(status string) {
	f.status = status
}

// SetFlash shows text for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows text for d.
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash. Returns true if one was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) renderFlash() string {
	var icon string
	color := ColorText
	switch f.flashMessage.Type {
	case FlashError:
		icon, color = "✕", ColorError
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashInfo:
		icon, color = "ℹ", ColorPrimary
	case FlashSuccess:
		icon, color = "✓", ColorSuccess
	}
	return lipgloss.NewStyle().Foreground(color).Render(icon + " " + f.flashMessage.Text)
}

// View renders the footer
func (f *Footer) View() string {
	var left string
	if f.flashMessage != nil {
		left = f.renderFlash()
	} else {
		parts := make([]string, 0, len(f.bindings))
		for _, b := range f.bindings {
			key := FooterKeyStyle.Render(b.Key)
			desc := FooterDescStyle.Render(": " + b.Desc)
			parts = append(parts, key+desc)
		}
		left = strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	}

	// FooterStyle pads one cell each side
	inner := f.width - 2
	right := ""
	if f.status != "" {
		right = FooterStatusStyle.Render(f.status)
	}
	if inner > 0 {
		room := inner - lipgloss.Width(right)
		if right != "" {
			room--
		}
		if room < 0 {
			right, room = "", inner
		}
		if lipgloss.Width(left) > room {
			left = ansi.Truncate(left, room, "…")
		}
		if right != "" {
			left += strings.Repeat(" ", inner-lipgloss.Width(left)-lipgloss.Width(right)) + right
		}
	}

	return FooterStyle.Width(f.width).Render(left)
}
