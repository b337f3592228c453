package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/logger"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// ShowFlash puts text in the footer and starts the expiry ticker. Errors and
// warnings also go to the debug log so headless runs leave a trace of them.
func (m *Model) ShowFlash(text string, flashType ui.FlashType) tea.Cmd {
	switch flashType {
	case ui.FlashError:
		logger.Warn("flash (%s tab): %s", m.tab, text)
	case ui.FlashWarning:
		logger.Info("flash (%s tab): %s", m.tab, text)
	}
	m.footer.SetFlash(text, flashType)
	return ui.FlashTick()
}

func (m *Model) ShowFlashError(text string) tea.Cmd   { return m.ShowFlash(text, ui.FlashError) }
func (m *Model) ShowFlashWarning(text string) tea.Cmd { return m.ShowFlash(text, ui.FlashWarning) }
func (m *Model) ShowFlashInfo(text string) tea.Cmd    { return m.ShowFlash(text, ui.FlashInfo) }
func (m *Model) ShowFlashSuccess(text string) tea.Cmd { return m.ShowFlash(text, ui.FlashSuccess) }
