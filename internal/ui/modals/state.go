// Package modals holds the overlay dialogs of the playground: help,
// settings, button options and the image picker. Each dialog is its own
// state type behind ModalState, so handlers switch on the concrete type
// rather than poking at shared fields.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is implemented by every dialog.
type ModalState interface {
	modalState() // restricts implementations to this package
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// ModalWithPreferredWidth lets a dialog ask for something other than
// ModalWidth.
type ModalWithPreferredWidth interface {
	ModalState
	PreferredWidth() int
}

// ModalWithSize is implemented by dialogs that lay out to the space the
// container can give them.
type ModalWithSize interface {
	ModalState
	SetSize(width, height int)
}

// HelpShortcut is one row of the help dialog. Runnable rows map to a
// registered key binding and can be triggered from the dialog; the rest
// only describe a gesture (mouse, drag and drop, typed commands).
type HelpShortcut struct {
	Key      string
	Desc     string
	Runnable bool
}

// HelpShortcutTriggeredMsg asks the app to run the binding behind Key.
type HelpShortcutTriggeredMsg struct {
	Key string
}

// HelpSection groups the rows of one category.
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}
