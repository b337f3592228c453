// Package app is the root Bubble Tea model of the playground. It owns the
// chat composer and the component state behind every tab and routes
// terminal input to them.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/button"
	"github.com/Sefyu24/Componentcn/internal/calendar"
	"github.com/Sefyu24/Componentcn/internal/clipboard"
	"github.com/Sefyu24/Componentcn/internal/composer"
	"github.com/Sefyu24/Componentcn/internal/config"
	"github.com/Sefyu24/Componentcn/internal/logger"
	"github.com/Sefyu24/Componentcn/internal/roster"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// Tab identifies one of the playground tabs.
type Tab int

const (
	TabChat Tab = iota
	TabButton
	TabTeam
	TabCalendar
)

var tabTitles = []string{"Chat", "Button", "Team", "Calendar"}

// String returns the config name of the tab.
func (t Tab) String() string {
	if int(t) < 0 || int(t) >= len(config.Tabs) {
		return "unknown"
	}
	return config.Tabs[t]
}

// ParseTab maps a config tab name to a Tab. Unknown names select the chat.
func ParseTab(name string) Tab {
	if i := slices.Index(config.Tabs, name); i >= 0 {
		return Tab(i)
	}
	return TabChat
}

// DefaultButtonLabel is the label of the demo button.
const DefaultButtonLabel = "Click me"

// Option configures a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard, mainly for tests.
func WithClipboard(r clipboard.Reader) Option {
	return func(m *Model) { m.clipboard = r }
}

// WithReplier replaces the simulated assistant.
func WithReplier(r composer.Replier) Option {
	return func(m *Model) { m.replier = r }
}

// WithClock sets the time source for messages and the calendar.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithConfigUpdates applies configs received on ch while the app runs,
// typically from a config.Watcher.
func WithConfigUpdates(ch <-chan *config.Config) Option {
	return func(m *Model) { m.configUpdates = ch }
}

// WithRand seeds the confetti.
func WithRand(rng *rand.Rand) Option {
	return func(m *Model) { m.rng = rng }
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	header   *ui.Header
	footer   *ui.Footer
	chat     *ui.Chat
	buttons  *ui.ButtonView
	team     *ui.RosterView
	calendar *ui.CalendarView
	modal    *ui.Modal

	composer      *composer.Composer
	composerDirty bool
	pending       *composer.Pending

	clipboard       clipboard.Reader
	replier         composer.Replier
	now             func() time.Time
	rng             *rand.Rand
	configUpdates   <-chan *config.Config
	swallowPaste    bool // Clipboard image already handled this paste
	clipboardWarned bool // Unavailable clipboard already logged
	dragging        bool // Left button held since a press inside the drop zone

	width         int
	height        int
	tab           Tab
	windowFocused bool

	log *slog.Logger
}

// New creates the app model.
func New(cfg *config.Config, version string, opts ...Option) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:        cfg,
		version:       version,
		now:           time.Now,
		windowFocused: true,
		log:           logger.ComponentLogger("App"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.NewSystem()
	}
	if m.replier == nil {
		// Read the delay per reply so the settings modal takes effect at once
		m.replier = composer.ReplierFunc(func(ctx context.Context, text string) (string, error) {
			return composer.SimulatedReplier{Delay: cfg.GetReplyDelay()}.Reply(ctx, text)
		})
	}
	if m.rng == nil {
		seed := uint64(m.now().UnixNano())
		m.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	handles := composer.NewHandleArena()
	m.composer = composer.New(
		composer.WithReplier(m.replier),
		composer.WithClock(m.now),
		composer.WithHandles(handles),
	)
	m.composer.Subscribe(m.onComposerEvent)

	m.header = ui.NewHeader(tabTitles...)
	m.footer = ui.NewFooter()
	m.modal = ui.NewModal()

	m.chat = ui.NewChat(handles)
	m.chat.SetAssistantName(cfg.GetAssistantName())

	b := button.New(DefaultButtonLabel)
	b.Confetti = cfg.ConfettiEnabled()
	m.buttons = ui.NewButtonView(b, m.rng)

	m.team = ui.NewRosterView(roster.New(roster.SampleGroups()))

	m.calendar = ui.NewCalendarView(calendar.New(calendar.Options{
		Today:     m.now(),
		TimeSlots: cfg.GetTimeSlots(),
		Heading:   cfg.GetTimeSlotHeading(),
		OnSlotSelect: func(slot string) {
			m.log.Debug("time slot selected", "slot", slot)
		},
	}))

	m.setTab(ParseTab(cfg.GetDefaultTab()))
	m.updateHeaderBadge()
	return m
}

// Init starts listening for config edits, if a source was given.
func (m *Model) Init() tea.Cmd {
	return waitForConfig(m.configUpdates)
}

// Close releases the composer. Pending replies are cancelled and every
// preview handle is revoked.
func (m *Model) Close() {
	m.pending = nil
	m.composer.Close()
}

// Composer exposes the chat composer.
func (m *Model) Composer() *composer.Composer {
	return m.composer
}

// ActiveTab returns the visible tab.
func (m *Model) ActiveTab() Tab {
	return m.tab
}

// Button returns the demo button.
func (m *Model) Button() *button.Button {
	return m.buttons.Button
}

// Roster returns the team roster.
func (m *Model) Roster() *roster.Roster {
	return m.team.Roster
}

// Calendar returns the calendar.
func (m *Model) Calendar() *calendar.Calendar {
	return m.calendar.Calendar
}

// ModalState returns the visible modal, or nil.
func (m *Model) ModalState() ui.ModalState {
	return m.modal.State
}

// setTab switches tabs and moves keyboard focus with it.
func (m *Model) setTab(t Tab) {
	if t < TabChat || t > TabCalendar {
		return
	}
	if t != m.tab {
		m.log.Debug("tab changed", "from", m.tab, "to", t)
	}
	m.tab = t
	m.header.SetActive(int(t))
	m.chat.SetFocused(t == TabChat)
	m.buttons.SetFocused(t == TabButton)
	m.updateFooterBindings()
}

func (m *Model) cycleTab(delta int) {
	n := len(tabTitles)
	m.setTab(Tab(((int(m.tab)+delta)%n + n) % n))
}

// onComposerEvent marks the chat stale. The re-render happens once per
// Update, after every mutation the message caused.
func (m *Model) onComposerEvent(ev composer.Event) {
	m.composerDirty = true
	if ev.Kind == composer.EventLogAppended && ev.Message != nil {
		m.log.Debug("message appended", "role", ev.Message.Role, "images", len(ev.Message.Images))
	}
}

// flushComposer pushes a fresh snapshot into the chat view.
func (m *Model) flushComposer() tea.Cmd {
	if !m.composerDirty {
		return nil
	}
	m.composerDirty = false
	cmd := m.chat.Sync(m.composer.Snapshot())
	m.composer.SetDropZone(m.chat.DropZone())
	m.updateHeaderBadge()
	return cmd
}

func (m *Model) updateHeaderBadge() {
	switch n := len(m.composer.Attachments()); {
	case m.composer.State().Submitting:
		m.header.SetBadge("replying…")
	case n == 1:
		m.header.SetBadge("1 image staged")
	case n > 1:
		m.header.SetBadge(fmt.Sprintf("%d images staged", n))
	default:
		m.header.SetBadge(m.version)
	}
}

// saveConfigOrFlash persists the config. Configs without a backing file
// (tests, demos) are left in memory.
func (m *Model) saveConfigOrFlash() tea.Cmd {
	if m.config.Path() == "" {
		return nil
	}
	if err := m.config.Save(); err != nil {
		logger.Warn("App: failed to save config: %v", err)
		return m.ShowFlashError("Failed to save settings")
	}
	return nil
}
