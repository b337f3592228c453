package modals

import (
	"slices"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	perrors "github.com/Sefyu24/Componentcn/internal/errors"
)

// =============================================================================
// SettingsState - State for the Settings modal
// =============================================================================

// AssistantNameCharLimit caps the label shown on assistant turns.
const AssistantNameCharLimit = 32

const (
	optionNotifications = "notifications"
	optionConfetti      = "confetti"
)

// SettingsValues is what the settings modal edits.
type SettingsValues struct {
	Theme                string
	AssistantName        string
	ReplyDelay           time.Duration
	NotificationsEnabled bool
	ConfettiEnabled      bool
}

type SettingsState struct {
	// Bound form values
	selectedTheme string
	OriginalTheme string // To detect if theme changed
	assistantName string
	replyDelay    string

	// MultiSelect bindings
	generalOptions []string

	form *huh.Form

	// Size tracking
	availableWidth int
}

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidthWide }

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 10
	}
	return ModalWidthWide - 10
}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// GetSelectedTheme returns the selected theme key.
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// Values returns the edited settings. The reply delay must parse as a
// non-negative duration.
func (s *SettingsState) Values() (SettingsValues, error) {
	delay, err := parseReplyDelay(s.replyDelay)
	if err != nil {
		return SettingsValues{}, err
	}
	return SettingsValues{
		Theme:                s.selectedTheme,
		AssistantName:        strings.TrimSpace(s.assistantName),
		ReplyDelay:           delay,
		NotificationsEnabled: slices.Contains(s.generalOptions, optionNotifications),
		ConfettiEnabled:      slices.Contains(s.generalOptions, optionConfetti),
	}, nil
}

func parseReplyDelay(v string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return 0, perrors.E(perrors.Op("settings.replyDelay"), perrors.KindInvalid, "reply delay must be a duration like 1.2s")
	}
	if d < 0 {
		return 0, perrors.E(perrors.Op("settings.replyDelay"), perrors.KindInvalid, "reply delay cannot be negative")
	}
	return d, nil
}

// NewSettingsState creates the settings form. themes and themeDisplayNames
// are parallel slices.
func NewSettingsState(themes, themeDisplayNames []string, current SettingsValues) *SettingsState {
	s := &SettingsState{
		selectedTheme:  current.Theme,
		OriginalTheme:  current.Theme,
		assistantName:  current.AssistantName,
		replyDelay:     current.ReplyDelay.String(),
		availableWidth: ModalWidthWide,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notification when a reply lands", optionNotifications).
			Selected(current.NotificationsEnabled),
		huh.NewOption("Confetti on button clicks", optionConfetti).
			Selected(current.ConfettiEnabled),
	}
	if current.NotificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}
	if current.ConfettiEnabled {
		s.generalOptions = append(s.generalOptions, optionConfetti)
	}

	s.form = newForm(s.contentWidth(),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOptions...).
				Value(&s.selectedTheme),
			huh.NewInput().
				Title("Assistant name").
				Description("Label shown on assistant replies").
				Placeholder("Assistant").
				CharLimit(AssistantNameCharLimit).
				Value(&s.assistantName),
			huh.NewInput().
				Title("Reply delay").
				Description("Simulated assistant latency").
				Placeholder("1.2s").
				CharLimit(16).
				Validate(func(v string) error {
					_, err := parseReplyDelay(v)
					return err
				}).
				Value(&s.replyDelay),
			huh.NewMultiSelect[string]().
				Title("Options").
				Options(generalOpts...).
				Height(len(generalOpts)).
				Value(&s.generalOptions),
		),
	)
	return s
}
