package app

import (
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/composer"
	perrors "github.com/Sefyu24/Componentcn/internal/errors"
	"github.com/Sefyu24/Componentcn/internal/logger"
)

// handlePasteStart checks the clipboard for an image when a bracketed paste
// begins. Terminals paste an image as empty or garbage text, so the text
// that follows is dropped when an image was staged.
func (m *Model) handlePasteStart() (tea.Model, tea.Cmd) {
	m.swallowPaste = false
	if m.modal.IsVisible() || m.tab != TabChat {
		return m, nil
	}
	ok, cmd := m.pasteClipboardImage(false)
	m.swallowPaste = ok
	return m, cmd
}

// handlePaste treats a paste that names only existing files as a drop of
// those files. Anything else is text for the focused input.
func (m *Model) handlePaste(msg tea.PasteMsg) (tea.Model, tea.Cmd) {
	if m.swallowPaste {
		m.swallowPaste = false
		return m, nil
	}
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	if m.tab != TabChat {
		return m, nil
	}

	if paths, ok := composer.ParseDroppedPaths(msg.Content); ok {
		return m, m.dropFiles(paths)
	}

	m.chat.InsertText(msg.Content)
	m.composer.SetDraft(m.chat.Input())
	return m, nil
}

// dropFiles runs a terminal file drop through the drag lifecycle: the drag
// enters the input and ends in a drop, so the drag flag is cleared whatever
// was accepted.
func (m *Model) dropFiles(paths []string) tea.Cmd {
	m.log.Debug("files dropped", "count", len(paths))
	m.composer.DragEnter(m.chat.InputRect())
	added := m.composer.Drop(composer.LoadFiles(paths)...)
	if len(added) == 0 {
		return m.ShowFlashWarning("Only images can be attached")
	}
	if skipped := len(paths) - len(added); skipped > 0 {
		return m.ShowFlashInfo(pluralImages(len(added)) + " attached, other files skipped")
	}
	return nil
}

// pasteClipboardImage stages the clipboard image, if there is one. An
// unavailable clipboard only matters when the user asked for it (explicit):
// ordinary text pastes go on without it and log the failure once.
func (m *Model) pasteClipboardImage(explicit bool) (bool, tea.Cmd) {
	p, err := m.clipboard.ReadImage()
	if err != nil {
		if !explicit && perrors.Is(err, perrors.KindUnsupported) {
			if !m.clipboardWarned {
				m.clipboardWarned = true
				logger.Warn("App: clipboard unavailable, image paste disabled: %v", err)
			}
			return false, nil
		}
		logger.Warn("App: clipboard read failed: %v", err)
		return false, m.ShowFlashError("Could not read the clipboard")
	}
	if p == nil {
		return false, nil
	}
	if added := m.composer.Ingest(composer.SourcePaste, *p); len(added) == 0 {
		return false, nil
	}
	return true, nil
}

// attachFile stages one file chosen in the file picker.
func (m *Model) attachFile(path string) tea.Cmd {
	p, err := composer.LoadFile(path)
	if err != nil {
		logger.Warn("App: attach %s: %v", path, err)
		return m.ShowFlashError("Could not read " + filepath.Base(path))
	}
	if added := m.composer.Ingest(composer.SourcePicker, p); len(added) == 0 {
		return m.ShowFlashWarning(p.Name + " is not an image")
	}
	return nil
}
