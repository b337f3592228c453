package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// headerTitle is the gradient wordmark at the left of the header.
const headerTitle = " componentcn "

// Header is the top bar: wordmark, tab strip and a status badge.
type Header struct {
	width  int
	tabs   []string
	active int
	badge  string
}

// NewHeader creates a header showing the given tab labels.
func NewHeader(tabs ...string) *Header {
	return &Header{tabs: tabs}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetActive highlights tab i.
func (h *Header) SetActive(i int) {
	if i >= 0 && i < len(h.tabs) {
		h.active = i
	}
}

// Active returns the highlighted tab.
func (h *Header) Active() int {
	return h.active
}

// SetBadge sets the right-aligned status text ("" hides it).
func (h *Header) SetBadge(badge string) {
	h.badge = badge
}

// TabAt maps a header column to a tab index.
func (h *Header) TabAt(x int) (int, bool) {
	pos := len(headerTitle) + 1
	for i, tab := range h.tabs {
		w := lipgloss.Width(h.renderTab(i, tab))
		if x >= pos && x < pos+w {
			return i, true
		}
		pos += w
	}
	return 0, false
}

func (h *Header) renderTab(i int, label string) string {
	text := fmt.Sprintf("%d %s", i+1, label)
	if i == h.active {
		return TabActiveStyle.Render(text)
	}
	return TabStyle.Render(text)
}

// View renders the header
func (h *Header) View() string {
	var sb strings.Builder
	sb.WriteString(renderGradient(headerTitle))
	sb.WriteString(" ")
	for i, tab := range h.tabs {
		sb.WriteString(h.renderTab(i, tab))
	}
	left := sb.String()

	right := ""
	if h.badge != "" {
		right = HeaderBadgeStyle.Render(h.badge + " ")
	}

	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Badge gives way to the tabs on narrow terminals
		return ansi.Truncate(left, h.width, "…")
	}
	return left + strings.Repeat(" ", gap) + right
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient draws text over a background fading from the theme's
// primary colour to its background.
func renderGradient(content string) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.GetPrimaryText())

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		// Past the midpoint the background is dark enough for the body text colour
		fg := textColor
		if t > 0.5 {
			fg = lipgloss.Color(theme.Text)
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(fg).
			Bold(true)
		result.WriteString(style.Render(string(r)))
	}
	return result.String()
}
