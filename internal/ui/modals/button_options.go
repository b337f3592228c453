package modals

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/button"
	perrors "github.com/Sefyu24/Componentcn/internal/errors"
)

// =============================================================================
// ButtonOptionsState - State for editing the demo button's props
// =============================================================================

// ButtonLabelCharLimit caps the button label.
const ButtonLabelCharLimit = 24

const (
	optionDisabled = "disabled"
	optionBurst    = "confetti"
)

type ButtonOptionsState struct {
	label   string
	variant string
	size    string
	flags   []string

	form *huh.Form
}

func (*ButtonOptionsState) modalState() {}

func (s *ButtonOptionsState) Title() string { return "Button Props" }

func (s *ButtonOptionsState) Help() string {
	return "Tab: next field  Enter: apply  Esc: cancel"
}

func (s *ButtonOptionsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ButtonOptionsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = updateForm(s.form, msg)
	return s, cmd
}

// Apply copies the edited props onto b. The click counter is untouched.
func (s *ButtonOptionsState) Apply(b *button.Button) error {
	label := strings.TrimSpace(s.label)
	if label == "" {
		return perrors.E(perrors.Op("button.Apply"), perrors.KindInvalid, "label cannot be empty")
	}
	v, err := button.ParseVariant(s.variant)
	if err != nil {
		return err
	}
	sz, err := button.ParseSize(s.size)
	if err != nil {
		return err
	}
	b.Label = label
	b.Variant = v
	b.Size = sz
	b.Disabled = slices.Contains(s.flags, optionDisabled)
	b.Confetti = slices.Contains(s.flags, optionBurst)
	return nil
}

// NewButtonOptionsState creates the props form pre-filled from b.
func NewButtonOptionsState(b *button.Button) *ButtonOptionsState {
	s := &ButtonOptionsState{
		label:   b.Label,
		variant: string(b.Variant),
		size:    string(b.Size),
	}
	if b.Disabled {
		s.flags = append(s.flags, optionDisabled)
	}
	if b.Confetti {
		s.flags = append(s.flags, optionBurst)
	}

	variants := make([]huh.Option[string], 0, len(button.Variants()))
	for _, v := range button.Variants() {
		variants = append(variants, huh.NewOption(string(v), string(v)))
	}
	sizes := make([]huh.Option[string], 0, len(button.Sizes()))
	for _, sz := range button.Sizes() {
		sizes = append(sizes, huh.NewOption(string(sz), string(sz)))
	}
	flagOpts := []huh.Option[string]{
		huh.NewOption("Disabled", optionDisabled).Selected(b.Disabled),
		huh.NewOption("Confetti on click", optionBurst).Selected(b.Confetti),
	}

	s.form = newForm(ModalWidth-10,
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				CharLimit(ButtonLabelCharLimit).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return perrors.E(perrors.Op("button.Label"), perrors.KindInvalid, "label cannot be empty")
					}
					return nil
				}).
				Value(&s.label),
			huh.NewSelect[string]().
				Title("Variant").
				Options(variants...).
				Value(&s.variant),
			huh.NewSelect[string]().
				Title("Size").
				Options(sizes...).
				Value(&s.size),
			huh.NewMultiSelect[string]().
				Title("Flags").
				Options(flagOpts...).
				Height(len(flagOpts)).
				Value(&s.flags),
		),
	)
	return s
}
