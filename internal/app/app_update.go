package app

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/composer"
	"github.com/Sefyu24/Componentcn/internal/logger"
	"github.com/Sefyu24/Componentcn/internal/notification"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// ReplyMsg carries a finished assistant reply back to the event loop.
type ReplyMsg struct {
	Reply composer.Reply
}

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	return model, tea.Batch(cmd, m.flushComposer())
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ConfigReloadedMsg:
		return m, m.applyReloadedConfig(msg.Config)

	case tea.FocusMsg:
		m.windowFocused = true
		m.log.Debug("window focused")
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		m.log.Debug("window blurred")
		return m, nil

	case tea.PasteStartMsg:
		return m.handlePasteStart()

	case tea.PasteMsg:
		return m.handlePaste(msg)

	case tea.KeyPressMsg:
		if m.modal.IsVisible() {
			return m.handleModalKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.modal.IsVisible() {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case ReplyMsg:
		return m.handleReply(msg)

	case openHelpMsg:
		return shortcutHelp(m)

	case ui.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()

	case ui.ConfettiTickMsg:
		return m, m.buttons.Tick()

	case ui.RosterTickMsg:
		return m, m.team.Tick()
	}

	var cmds []tea.Cmd
	// Modals that load asynchronously (the file picker reads directories
	// through commands) need every message while open
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
	}

	// Spinner ticks and everything else belong to the chat
	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit commits the draft and starts waiting for the reply.
func (m *Model) submit() tea.Cmd {
	p := m.composer.Submit()
	if p == nil {
		return nil
	}
	m.pending = p
	return awaitReply(p)
}

func awaitReply(p *composer.Pending) tea.Cmd {
	return func() tea.Msg {
		return ReplyMsg{Reply: p.Await()}
	}
}

// AwaitReply blocks until the in-flight reply lands and applies it. It is
// for headless drivers that don't run the command loop; it returns false
// when nothing is pending.
func (m *Model) AwaitReply() bool {
	p := m.pending
	if p == nil {
		return false
	}
	m.Update(ReplyMsg{Reply: p.Await()})
	return true
}

// cancelReply abandons the in-flight reply. The user message stays.
func (m *Model) cancelReply() bool {
	if !m.composer.CancelPending() {
		return false
	}
	m.pending = nil
	m.log.Debug("reply cancelled by user")
	return true
}

func (m *Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	current := m.pending != nil && m.pending.Seq == msg.Reply.Seq
	if current {
		m.pending = nil
	}
	appended := m.composer.Complete(msg.Reply)
	if err := msg.Reply.Err; current && err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("App: reply %d failed: %v", msg.Reply.Seq, err)
		return m, m.ShowFlashError("The assistant could not reply")
	}
	if appended && !m.windowFocused && m.config.GetNotificationsEnabled() {
		go notification.ReplyReady(m.config.GetAssistantName())
	}
	return m, nil
}
