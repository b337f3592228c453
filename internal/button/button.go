// Package button implements the playground's style-variant button: a
// variant/size style table, a click counter and a confetti burst.
package button

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	perrors "github.com/Sefyu24/Componentcn/internal/errors"
)

// Variant selects the button's colour treatment.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantSecondary   Variant = "secondary"
	VariantGhost       Variant = "ghost"
	VariantLink        Variant = "link"
)

// Size selects the button's padding.
type Size string

const (
	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeLg      Size = "lg"
	SizeIcon    Size = "icon"
)

// Variants lists every variant in display order.
func Variants() []Variant {
	return []Variant{VariantDefault, VariantDestructive, VariantOutline, VariantSecondary, VariantGhost, VariantLink}
}

// Sizes lists every size in display order.
func Sizes() []Size {
	return []Size{SizeDefault, SizeSm, SizeLg, SizeIcon}
}

// ParseVariant validates a variant name. Empty means default.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return VariantDefault, nil
	}
	for _, v := range Variants() {
		if string(v) == s {
			return v, nil
		}
	}
	return "", perrors.UnknownOption("variant", s)
}

// ParseSize validates a size name. Empty means default.
func ParseSize(s string) (Size, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SizeDefault, nil
	}
	for _, sz := range Sizes() {
		if string(sz) == s {
			return sz, nil
		}
	}
	return "", perrors.UnknownOption("size", s)
}

// Palette is the set of semantic colours the style table draws from.
type Palette struct {
	Primary             color.Color
	PrimaryForeground   color.Color
	Destructive         color.Color
	Secondary           color.Color
	SecondaryForeground color.Color
	Accent              color.Color
	AccentForeground    color.Color
	Border              color.Color
	Background          color.Color
	Foreground          color.Color
	Muted               color.Color
}

// DefaultPalette matches the playground's neutral light theme.
func DefaultPalette() Palette {
	return Palette{
		Primary:             lipgloss.Color("#171717"),
		PrimaryForeground:   lipgloss.Color("#FAFAFA"),
		Destructive:         lipgloss.Color("#DC2626"),
		Secondary:           lipgloss.Color("#F5F5F5"),
		SecondaryForeground: lipgloss.Color("#171717"),
		Accent:              lipgloss.Color("#E5E5E5"),
		AccentForeground:    lipgloss.Color("#171717"),
		Border:              lipgloss.Color("#A3A3A3"),
		Background:          lipgloss.Color("#FFFFFF"),
		Foreground:          lipgloss.Color("#0A0A0A"),
		Muted:               lipgloss.Color("#737373"),
	}
}

// Style maps a variant and size to a lipgloss style. Unknown values fall
// back to the defaults.
func Style(p Palette, v Variant, sz Size) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)

	switch v {
	case VariantDestructive:
		s = s.Background(p.Destructive).Foreground(lipgloss.Color("#FFFFFF"))
	case VariantOutline:
		s = s.Foreground(p.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border)
	case VariantSecondary:
		s = s.Background(p.Secondary).Foreground(p.SecondaryForeground)
	case VariantGhost:
		s = s.Foreground(p.Foreground)
	case VariantLink:
		s = s.Foreground(p.Primary).Underline(true).Bold(false)
	default:
		s = s.Background(p.Primary).Foreground(p.PrimaryForeground)
	}

	if v == VariantLink {
		return s
	}
	switch sz {
	case SizeSm:
		s = s.Padding(0, 1)
	case SizeLg:
		s = s.Padding(1, 4)
	case SizeIcon:
		s = s.Padding(0, 1).Width(5).Align(lipgloss.Center)
	default:
		s = s.Padding(0, 2)
	}
	return s
}

// Button is a clickable label with a click counter.
type Button struct {
	Label    string
	Variant  Variant
	Size     Size
	Disabled bool
	Confetti bool // Burst on click

	clicks int
}

// New creates an enabled default button with confetti on.
func New(label string) *Button {
	return &Button{
		Label:    label,
		Variant:  VariantDefault,
		Size:     SizeDefault,
		Confetti: true,
	}
}

// Click registers a press. It returns true when a confetti burst should
// start. Disabled buttons ignore clicks entirely.
func (b *Button) Click() bool {
	if b.Disabled {
		return false
	}
	b.clicks++
	return b.Confetti
}

// Clicks returns the number of accepted clicks.
func (b *Button) Clicks() int {
	return b.clicks
}

// Render draws the button. A focused button gets a leading marker; a
// disabled one is faint.
func (b *Button) Render(p Palette, focused bool) string {
	s := Style(p, b.Variant, b.Size)
	if b.Disabled {
		s = s.Faint(true)
	}
	label := b.Label
	if b.Size == SizeIcon {
		label = firstRune(label)
	}
	out := s.Render(label)
	if focused {
		marker := lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Render("▶ ")
		out = lipgloss.JoinHorizontal(lipgloss.Center, marker, out)
	}
	return out
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return " "
}
