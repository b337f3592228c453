// Package ui provides theme management for the playground.
// A theme is the palette every view draws from, including the semantic
// colours handed to the button style table.
package ui

import (
	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/button"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	Primary     string // Focus, active tab, default button
	PrimaryText string // Text drawn on Primary (defaults to Text)
	Secondary   string // Key hints, assistant accents

	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)
	Surface    string // Secondary button and chip background

	Text        string
	TextMuted   string
	TextInverse string // Text on light backgrounds

	User      string // User message labels
	Assistant string // Assistant message labels
	Warning   string
	Error     string // Also the destructive button
	Success   string

	Border      string
	BorderFocus string // Defaults to Primary if empty

	// Markdown colors
	MarkdownH1       string
	MarkdownH2       string
	MarkdownCode     string
	MarkdownCodeBg   string
	MarkdownLink     string
	MarkdownListItem string

	// CodeStyle is the chroma style used for highlighted code
	CodeStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// GetPrimaryText returns the colour for text on a Primary background.
func (t Theme) GetPrimaryText() string {
	if t.PrimaryText != "" {
		return t.PrimaryText
	}
	return t.Text
}

// GetCodeStyle returns the chroma style name, defaulting to monokai.
func (t Theme) GetCodeStyle() string {
	if t.CodeStyle != "" {
		return t.CodeStyle
	}
	return "monokai"
}

// ButtonPalette maps the theme onto the button variant palette.
func (t Theme) ButtonPalette() button.Palette {
	return button.Palette{
		Primary:             lipgloss.Color(t.Primary),
		PrimaryForeground:   lipgloss.Color(t.GetPrimaryText()),
		Destructive:         lipgloss.Color(t.Error),
		Secondary:           lipgloss.Color(t.Surface),
		SecondaryForeground: lipgloss.Color(t.Text),
		Accent:              lipgloss.Color(t.GetBgSelected()),
		AccentForeground:    lipgloss.Color(t.Text),
		Border:              lipgloss.Color(t.Border),
		Background:          lipgloss.Color(t.Bg),
		Foreground:          lipgloss.Color(t.Text),
		Muted:               lipgloss.Color(t.TextMuted),
	}
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeZinc       ThemeName = "zinc"
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeTokyoNight ThemeName = "tokyo-night"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeZinc

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeZinc: {
		Name:             "Zinc",
		Primary:          "#FAFAFA",
		PrimaryText:      "#18181B",
		Secondary:        "#A1A1AA",
		Bg:               "#09090B",
		BgSelected:       "#27272A",
		Surface:          "#27272A",
		Text:             "#FAFAFA",
		TextMuted:        "#A1A1AA",
		TextInverse:      "#18181B",
		User:             "#E4E4E7",
		Assistant:        "#38BDF8",
		Warning:          "#F59E0B",
		Error:            "#EF4444",
		Success:          "#22C55E",
		Border:           "#3F3F46",
		BorderFocus:      "#D4D4D8",
		MarkdownH1:       "#FAFAFA",
		MarkdownH2:       "#E4E4E7",
		MarkdownCode:     "#F4F4F5",
		MarkdownCodeBg:   "#18181B",
		MarkdownLink:     "#38BDF8",
		MarkdownListItem: "#A1A1AA",
		CodeStyle:        "github-dark",
	},
	ThemeDarkPurple: {
		Name:             "Dark Purple",
		Primary:          "#7C3AED",
		Secondary:        "#06B6D4",
		Bg:               "#1F2937",
		Surface:          "#374151",
		Text:             "#F9FAFB",
		TextMuted:        "#9CA3AF",
		TextInverse:      "#1F2937",
		User:             "#A78BFA",
		Assistant:        "#22D3EE",
		Warning:          "#F59E0B",
		Error:            "#EF4444",
		Success:          "#10B981",
		Border:           "#374151",
		MarkdownH1:       "#A78BFA",
		MarkdownH2:       "#C4B5FD",
		MarkdownCode:     "#67E8F9",
		MarkdownCodeBg:   "#1E1E2E",
		MarkdownLink:     "#67E8F9",
		MarkdownListItem: "#06B6D4",
	},
	ThemeNord: {
		Name:             "Nord",
		Primary:          "#88C0D0",
		PrimaryText:      "#2E3440",
		Secondary:        "#81A1C1",
		Bg:               "#2E3440",
		Surface:          "#3B4252",
		Text:             "#ECEFF4",
		TextMuted:        "#D8DEE9",
		TextInverse:      "#2E3440",
		User:             "#A3BE8C",
		Assistant:        "#88C0D0",
		Warning:          "#EBCB8B",
		Error:            "#BF616A",
		Success:          "#A3BE8C",
		Border:           "#4C566A",
		MarkdownH1:       "#88C0D0",
		MarkdownH2:       "#81A1C1",
		MarkdownCode:     "#A3BE8C",
		MarkdownCodeBg:   "#242933",
		MarkdownLink:     "#88C0D0",
		MarkdownListItem: "#81A1C1",
		CodeStyle:        "nord",
	},
	ThemeDracula: {
		Name:             "Dracula",
		Primary:          "#BD93F9",
		PrimaryText:      "#282A36",
		Secondary:        "#8BE9FD",
		Bg:               "#282A36",
		Surface:          "#44475A",
		Text:             "#F8F8F2",
		TextMuted:        "#6272A4",
		TextInverse:      "#282A36",
		User:             "#FF79C6",
		Assistant:        "#8BE9FD",
		Warning:          "#FFB86C",
		Error:            "#FF5555",
		Success:          "#50FA7B",
		Border:           "#44475A",
		MarkdownH1:       "#BD93F9",
		MarkdownH2:       "#FF79C6",
		MarkdownCode:     "#50FA7B",
		MarkdownCodeBg:   "#21222C",
		MarkdownLink:     "#8BE9FD",
		MarkdownListItem: "#BD93F9",
		CodeStyle:        "dracula",
	},
	ThemeTokyoNight: {
		Name:             "Tokyo Night",
		Primary:          "#7AA2F7",
		PrimaryText:      "#1A1B26",
		Secondary:        "#BB9AF7",
		Bg:               "#1A1B26",
		Surface:          "#292E42",
		Text:             "#C0CAF5",
		TextMuted:        "#565F89",
		TextInverse:      "#1A1B26",
		User:             "#9ECE6A",
		Assistant:        "#7AA2F7",
		Warning:          "#E0AF68",
		Error:            "#F7768E",
		Success:          "#9ECE6A",
		Border:           "#3B4261",
		MarkdownH1:       "#7AA2F7",
		MarkdownH2:       "#BB9AF7",
		MarkdownCode:     "#9ECE6A",
		MarkdownCodeBg:   "#16161E",
		MarkdownLink:     "#7DCFFF",
		MarkdownListItem: "#7AA2F7",
		CodeStyle:        "tokyonight-night",
	},
	ThemeLight: {
		Name:             "Light",
		Primary:          "#18181B",
		PrimaryText:      "#FAFAFA",
		Secondary:        "#0891B2",
		Bg:               "#FFFFFF",
		BgSelected:       "#F4F4F5",
		Surface:          "#F4F4F5",
		Text:             "#09090B",
		TextMuted:        "#71717A",
		TextInverse:      "#FFFFFF",
		User:             "#7C3AED",
		Assistant:        "#0891B2",
		Warning:          "#D97706",
		Error:            "#DC2626",
		Success:          "#16A34A",
		Border:           "#D4D4D8",
		BorderFocus:      "#71717A",
		MarkdownH1:       "#18181B",
		MarkdownH2:       "#3F3F46",
		MarkdownCode:     "#BE185D",
		MarkdownCodeBg:   "#F4F4F5",
		MarkdownLink:     "#2563EB",
		MarkdownListItem: "#71717A",
		CodeStyle:        "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeZinc,
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeTokyoNight,
		ThemeLight,
	}
}

// IsThemeName reports whether name is a built-in theme.
func IsThemeName(name string) bool {
	_, ok := BuiltinThemes[ThemeName(name)]
	return ok
}

// GetTheme returns a theme by name, defaulting to Zinc if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles. Unknown names
// select the default theme.
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}
