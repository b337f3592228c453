package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/ui/modals"
)

// Modal state types live in the modals package; these aliases keep call
// sites in the app layer short.
type (
	ModalState         = modals.ModalState
	HelpState          = modals.HelpState
	HelpSection        = modals.HelpSection
	HelpShortcut       = modals.HelpShortcut
	SettingsState      = modals.SettingsState
	SettingsValues     = modals.SettingsValues
	ButtonOptionsState = modals.ButtonOptionsState
	FilePickerState    = modals.FilePickerState

	HelpShortcutTriggeredMsg = modals.HelpShortcutTriggeredMsg
)

var (
	NewHelpStateFromSections = modals.NewHelpStateFromSections
	NewSettingsState         = modals.NewSettingsState
	NewButtonOptionsState    = modals.NewButtonOptionsState
	NewFilePickerState       = modals.NewFilePickerState
)

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string

	screenWidth, screenHeight int
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
	m.resize()
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// SetScreenSize records the terminal size so sized modals can fit it.
func (m *Modal) SetScreenSize(width, height int) {
	m.screenWidth, m.screenHeight = width, height
	m.resize()
}

func (m *Modal) resize() {
	sized, ok := m.State.(modals.ModalWithSize)
	if !ok || m.screenWidth == 0 {
		return
	}
	w := m.width()
	if w > m.screenWidth-4 {
		w = m.screenWidth - 4
	}
	sized.SetSize(w, m.screenHeight-4)
}

func (m *Modal) width() int {
	if p, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		return p.PreferredWidth()
	}
	return ModalWidth
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	w := m.width()
	if w > screenWidth-2 {
		w = screenWidth - 2
	}
	modal := ModalStyle.Width(w).Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}
