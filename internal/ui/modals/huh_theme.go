package modals

import (
	"image/color"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/keys"
)

// newForm builds a stacked huh form in the modal palette. The form is
// initialised immediately so the first Render already shows its fields.
func newForm(width int, groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(width).
		WithLayout(huh.LayoutStack)
	form.Init()
	return form
}

// updateForm forwards msg to the form. Enter and Esc belong to the modal
// handlers (submit and cancel), so the form never sees them.
func updateForm(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}
	m, cmd := form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

func fg(c color.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

// ModalTheme maps the active colour theme onto huh. It reads the palette
// when called, so forms built after a theme switch pick up the new colours.
func ModalTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)
		f := &t.Focused

		f.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		f.Card = f.Base
		f.Title = fg(ColorText).Bold(true)
		f.Description = fg(ColorTextMuted).Italic(true)
		f.ErrorIndicator = fg(ColorWarning).SetString(" *")
		f.ErrorMessage = fg(ColorWarning)

		// selects (variant, size, theme)
		f.SelectSelector = fg(ColorPrimary).SetString("> ")
		f.NextIndicator = fg(ColorPrimary).MarginLeft(1).SetString("→")
		f.PrevIndicator = fg(ColorPrimary).MarginRight(1).SetString("←")
		f.Option = fg(ColorText)

		// flag lists
		f.MultiSelectSelector = f.SelectSelector
		f.SelectedOption = fg(ColorSecondary)
		f.SelectedPrefix = fg(ColorSecondary).SetString("[x] ")
		f.UnselectedOption = fg(ColorText)
		f.UnselectedPrefix = fg(ColorTextMuted).SetString("[ ] ")

		button := lipgloss.NewStyle().Padding(0, 2).MarginRight(1)
		f.FocusedButton = button.Foreground(ColorTextInverse).Background(ColorPrimary)
		f.BlurredButton = button.Foreground(ColorTextMuted)

		f.TextInput.Cursor = fg(ColorPrimary)
		f.TextInput.Placeholder = fg(ColorTextMuted)
		f.TextInput.Prompt = fg(ColorPrimary)
		f.TextInput.Text = fg(ColorText)

		// Blurred fields drop the border but keep its width so nothing shifts.
		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base
		t.Blurred.NextIndicator = lipgloss.NewStyle()
		t.Blurred.PrevIndicator = lipgloss.NewStyle()

		t.Group.Title = fg(ColorSecondary).Bold(true)
		t.Group.Description = fg(ColorTextMuted)
		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles
		return t
	})
}
