package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/ui/modals"
)

// Colors of the active theme. Reassigned by SetTheme.
var (
	ColorPrimary     color.Color
	ColorPrimaryText color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorSurface     color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorWarning     color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header and tab styles
var (
	HeaderTitleStyle lipgloss.Style
	TabStyle         lipgloss.Style
	TabActiveStyle   lipgloss.Style
	HeaderBadgeStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle       lipgloss.Style
	FooterKeyStyle    lipgloss.Style
	FooterDescStyle   lipgloss.Style
	FooterStatusStyle lipgloss.Style
)

// Panel styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style
	MutedStyle        lipgloss.Style
	KeyHintStyle      lipgloss.Style

	// TextSelectionStyle highlights dragged text in the chat timeline;
	// TextSelectionFlashStyle replaces it for a moment after a copy.
	TextSelectionStyle      lipgloss.Style
	TextSelectionFlashStyle lipgloss.Style
)

// List styles, shared with the modals package
var (
	ListItemStyle     lipgloss.Style
	ListSelectedStyle lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatTimeStyle         lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
	ChatInputDragStyle    lipgloss.Style
	DropHintStyle         lipgloss.Style
	AttachmentTileStyle   lipgloss.Style
	AttachmentActiveStyle lipgloss.Style
	AttachmentNameStyle   lipgloss.Style
)

// Modal and status styles
var (
	ModalStyle         lipgloss.Style
	ModalTitleStyle    lipgloss.Style
	ModalHelpStyle     lipgloss.Style
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

// Playground component styles
var (
	StageStyle           lipgloss.Style
	SourcePanelStyle     lipgloss.Style
	AvatarStyle          lipgloss.Style
	AvatarChipStyle      lipgloss.Style
	GroupTitleStyle      lipgloss.Style
	GroupCursorStyle     lipgloss.Style
	CalendarDayStyle     lipgloss.Style
	CalendarOutsideStyle lipgloss.Style
	CalendarTodayStyle   lipgloss.Style
	CalendarSelectStyle  lipgloss.Style
	CalendarCursorStyle  lipgloss.Style
	SlotStyle            lipgloss.Style
	SlotSelectedStyle    lipgloss.Style
)

// Markdown styles
var (
	MarkdownH1Style         lipgloss.Style
	MarkdownH2Style         lipgloss.Style
	MarkdownH3Style         lipgloss.Style
	MarkdownBoldStyle       lipgloss.Style
	MarkdownItalicStyle     lipgloss.Style
	MarkdownInlineCodeStyle lipgloss.Style
	MarkdownListBulletStyle lipgloss.Style
	MarkdownBlockquoteStyle lipgloss.Style
	MarkdownHRStyle         lipgloss.Style
	MarkdownLinkStyle       lipgloss.Style
)

func init() {
	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorPrimaryText = lipgloss.Color(t.GetPrimaryText())
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorSurface = lipgloss.Color(t.Surface)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	TabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)
	TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimaryText).
		Background(ColorPrimary).
		Padding(0, 1)
	HeaderBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	FooterStatusStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Italic(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)
	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	KeyHintStyle = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true)

	ListItemStyle = lipgloss.NewStyle().Padding(0, 1)
	ListSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	TextSelectionStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.GetPrimaryText()))
	TextSelectionFlashStyle = lipgloss.NewStyle().
		Background(ColorSuccess).
		Foreground(ColorTextInverse)

	ChatUserStyle = lipgloss.NewStyle().Foreground(ColorUser).Bold(true)
	ChatAssistantStyle = lipgloss.NewStyle().Foreground(ColorAssistant).Bold(true)
	ChatTimeStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Faint(true)
	ChatMessageStyle = lipgloss.NewStyle().Foreground(ColorText)
	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)
	ChatInputDragStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorSecondary).
		Padding(0, 1)
	DropHintStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	AttachmentTileStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	AttachmentActiveStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorError)
	AttachmentNameStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StageStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)
	SourcePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	AvatarStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorSurface).
		Padding(0, 1)
	AvatarChipStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorBorder).
		Padding(0, 1)
	GroupTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	GroupCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	CalendarDayStyle = lipgloss.NewStyle().Foreground(ColorText).Width(4).Align(lipgloss.Center)
	CalendarOutsideStyle = CalendarDayStyle.Foreground(ColorTextMuted).Faint(true)
	CalendarTodayStyle = CalendarDayStyle.Bold(true).Underline(true).Foreground(ColorSecondary)
	CalendarSelectStyle = CalendarDayStyle.Bold(true).
		Foreground(ColorPrimaryText).
		Background(ColorPrimary)
	CalendarCursorStyle = CalendarDayStyle.Reverse(true)
	SlotStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)
	SlotSelectedStyle = SlotStyle.
		Bold(true).
		Foreground(ColorPrimaryText).
		Background(ColorPrimary)

	MarkdownH1Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH1))
	MarkdownH2Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.MarkdownH2))
	MarkdownH3Style = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextMuted)
	MarkdownBoldStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)
	MarkdownItalicStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorText)
	MarkdownInlineCodeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownCode)).
		Background(lipgloss.Color(t.MarkdownCodeBg))
	MarkdownListBulletStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownListItem))
	MarkdownBlockquoteStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(ColorBorder).
		PaddingLeft(1)
	MarkdownHRStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)
	MarkdownLinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.MarkdownLink)).
		Underline(true)

	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, ListItemStyle, ListSelectedStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		ModalInputWidth, ModalInputCharLimit, ModalWidth,
	)
}
