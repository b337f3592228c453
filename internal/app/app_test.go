package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Sefyu24/Componentcn/internal/composer"
	"github.com/Sefyu24/Componentcn/internal/config"
	"github.com/Sefyu24/Componentcn/internal/keys"
	"github.com/Sefyu24/Componentcn/internal/notification"
)

// isQuit reports whether cmd, or any command batched inside it, quits.
// Only call it on commands that don't sleep.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

func footerText(m *Model) string {
	return ansi.Strip(m.footer.View())
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		name string
		want Tab
	}{
		{config.TabChat, TabChat},
		{config.TabButton, TabButton},
		{config.TabTeam, TabTeam},
		{config.TabCalendar, TabCalendar},
		{"", TabChat},
		{"settings", TabChat},
	}
	for _, tt := range tests {
		if got := ParseTab(tt.name); got != tt.want {
			t.Errorf("ParseTab(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if got := TabCalendar.String(); got != "calendar" {
		t.Errorf("TabCalendar.String() = %q", got)
	}
	if got := Tab(9).String(); got != "unknown" {
		t.Errorf("Tab(9).String() = %q", got)
	}
}

func TestNew_StartsOnConfiguredTab(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultTab = config.TabCalendar
	m := testModel(cfg)

	if m.ActiveTab() != TabCalendar {
		t.Errorf("ActiveTab() = %v, want calendar", m.ActiveTab())
	}
	if m.chat.IsFocused() {
		t.Error("chat should not be focused on the calendar tab")
	}
	if got := m.Calendar().Today(); !got.Equal(time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("calendar today = %v, want the injected clock's date", got)
	}
	if m.Button().Label != DefaultButtonLabel {
		t.Errorf("button label = %q", m.Button().Label)
	}
}

func TestView_LoadingUntilSized(t *testing.T) {
	m := testModel(testConfig())
	if got := m.RenderToString(); got != "Loading..." {
		t.Errorf("RenderToString() = %q before a size arrives", got)
	}

	m = setSize(m, 100, 30)
	v := m.View()
	if !v.AltScreen || !v.ReportFocus || v.MouseMode != tea.MouseModeCellMotion {
		t.Errorf("View() flags = alt %v focus %v mouse %v", v.AltScreen, v.ReportFocus, v.MouseMode)
	}
	out := ansi.Strip(m.RenderToString())
	for _, want := range []string{"Chat", "Button", "Team", "Calendar", "send"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered view missing %q", want)
		}
	}
}

func TestSubmit_AppendsUserThenAssistant(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m = typeText(m, "hello there")

	if got := m.Composer().Draft(); got != "hello there" {
		t.Fatalf("draft = %q, want typed text", got)
	}

	m = sendKey(m, keys.Enter)
	c := m.Composer()
	if !c.State().Submitting {
		t.Fatal("composer should be submitting after Enter")
	}
	if c.Draft() != "" {
		t.Errorf("draft = %q, want cleared after submit", c.Draft())
	}
	if m.chat.Input() != "" {
		t.Errorf("chat input = %q, want cleared after submit", m.chat.Input())
	}

	if !m.AwaitReply() {
		t.Fatal("AwaitReply() = false, want a pending reply")
	}
	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if msgs[0].Role != composer.RoleUser || msgs[0].Content != "hello there" {
		t.Errorf("first message = %+v", msgs[0])
	}
	if msgs[1].Role != composer.RoleAssistant || msgs[1].Content != "echo: hello there" {
		t.Errorf("second message = %+v", msgs[1])
	}
	if c.State().Submitting {
		t.Error("composer should be idle after the reply")
	}
	if m.AwaitReply() {
		t.Error("AwaitReply() = true with nothing pending")
	}
}

func TestSubmit_EmptyDraftIsIgnored(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m = typeText(m, "   ")
	m = sendKey(m, keys.Enter)

	if m.Composer().State().Submitting || len(m.Composer().Messages()) != 0 {
		t.Error("whitespace-only draft should not submit")
	}
}

func TestSubmit_IgnoredWhileReplying(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30, WithReplier(blockingReplier))
	m = typeText(m, "first")
	m = sendKey(m, keys.Enter)
	m = typeText(m, "second")
	m = sendKey(m, keys.Enter)

	c := m.Composer()
	if len(c.Messages()) != 1 {
		t.Errorf("messages = %d, want only the first submission", len(c.Messages()))
	}
	if c.Draft() != "second" {
		t.Errorf("draft = %q, want the unsent text kept", c.Draft())
	}

	// Esc stops waiting; the user message stays
	m = sendKey(m, keys.Escape)
	if c.State().Submitting {
		t.Error("Esc should cancel the pending reply")
	}
	if len(c.Messages()) != 1 {
		t.Errorf("messages = %d after cancel, want 1", len(c.Messages()))
	}
	if m.AwaitReply() {
		t.Error("AwaitReply() = true after cancel")
	}

	m = sendKey(m, keys.Enter)
	if !c.State().Submitting || len(c.Messages()) != 2 {
		t.Error("the kept draft should submit once idle again")
	}
}

func TestReply_FailureFlashesAndReturnsToIdle(t *testing.T) {
	failing := composer.ReplierFunc(func(context.Context, string) (string, error) {
		return "", errors.New("backend down")
	})
	m := testModelWithSize(testConfig(), 100, 30, WithReplier(failing))
	m = typeText(m, "hi")
	m = sendKey(m, keys.Enter)
	m.AwaitReply()

	c := m.Composer()
	if c.State().Submitting {
		t.Error("composer should be idle after a failed reply")
	}
	if len(c.Messages()) != 1 {
		t.Errorf("messages = %d, want only the user message", len(c.Messages()))
	}
	if !strings.Contains(footerText(m), "could not reply") {
		t.Errorf("footer = %q, want failure flash", footerText(m))
	}
}

func TestReply_StaleReplyIsDropped(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30, WithReplier(blockingReplier))
	m = typeText(m, "hi")
	m = sendKey(m, keys.Enter)
	seq := m.pending.Seq
	m = sendKey(m, keys.Escape)

	m.Update(ReplyMsg{Reply: composer.Reply{Seq: seq, Err: context.Canceled}})
	m.Update(ReplyMsg{Reply: composer.Reply{Seq: seq, Content: "late"}})

	if n := len(m.Composer().Messages()); n != 1 {
		t.Errorf("messages = %d, want stale replies ignored", n)
	}
	if m.footer.HasFlash() {
		t.Errorf("stale reply should not flash, footer = %q", footerText(m))
	}
}

func TestReply_NotifiesWhenBlurred(t *testing.T) {
	sent := make(chan string, 1)
	notification.SetNotifier(func(title, message string, _ any) error {
		sent <- message
		return nil
	})
	t.Cleanup(notification.ResetNotifier)

	cfg := testConfig()
	cfg.SetNotificationsEnabled(true)
	cfg.SetAssistantName("Ada")
	m := testModelWithSize(cfg, 100, 30)

	m.Update(tea.BlurMsg{})
	m = typeText(m, "ping")
	m = sendKey(m, keys.Enter)
	m.AwaitReply()

	select {
	case got := <-sent:
		if got != "Ada replied" {
			t.Errorf("notification = %q, want %q", got, "Ada replied")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no notification sent while the window was blurred")
	}
}

func TestReply_NoNotificationWhenFocused(t *testing.T) {
	sent := make(chan string, 1)
	notification.SetNotifier(func(_, message string, _ any) error {
		sent <- message
		return nil
	})
	t.Cleanup(notification.ResetNotifier)

	cfg := testConfig()
	cfg.SetNotificationsEnabled(true)
	m := testModelWithSize(cfg, 100, 30)

	m.Update(tea.BlurMsg{})
	m.Update(tea.FocusMsg{})
	m = typeText(m, "ping")
	m = sendKey(m, keys.Enter)
	m.AwaitReply()

	select {
	case got := <-sent:
		t.Errorf("unexpected notification %q", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTabs_Cycle(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)

	m = sendKey(m, keys.Tab)
	if m.ActiveTab() != TabButton {
		t.Errorf("after tab: %v, want button", m.ActiveTab())
	}
	m = sendKey(m, keys.ShiftTab)
	m = sendKey(m, keys.ShiftTab)
	if m.ActiveTab() != TabCalendar {
		t.Errorf("after two shift+tab: %v, want calendar (wraps)", m.ActiveTab())
	}
	m = sendKey(m, "3")
	if m.ActiveTab() != TabTeam {
		t.Errorf("after 3: %v, want team", m.ActiveTab())
	}
	m = sendKey(m, "1")
	if m.ActiveTab() != TabChat {
		t.Errorf("after 1: %v, want chat", m.ActiveTab())
	}

	// Digits are text on the chat tab
	m = sendKey(m, "2")
	if m.ActiveTab() != TabChat || m.Composer().Draft() != "2" {
		t.Errorf("typing 2 in chat: tab %v draft %q", m.ActiveTab(), m.Composer().Draft())
	}
}

func TestQuit(t *testing.T) {
	t.Run("q quits off the chat tab", func(t *testing.T) {
		m := testModelWithSize(testConfig(), 100, 30)
		m = sendKey(m, keys.Tab)
		if !isQuit(sendKeyCmd(m, "q")) {
			t.Error("q on the button tab should quit")
		}
		if !m.Composer().Closed() {
			t.Error("quitting should close the composer")
		}
	})

	t.Run("q is text in the chat", func(t *testing.T) {
		m := testModelWithSize(testConfig(), 100, 30)
		if isQuit(sendKeyCmd(m, "q")) {
			t.Error("q in the chat should not quit")
		}
		if m.Composer().Draft() != "q" {
			t.Errorf("draft = %q, want q", m.Composer().Draft())
		}
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := testModelWithSize(testConfig(), 100, 30)
		m = sendKey(m, keys.CtrlT)
		if !isQuit(sendKeyCmd(m, keys.CtrlC)) {
			t.Error("ctrl+c with a modal open should quit")
		}
	})
}

func TestClose_RevokesHandles(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30, WithClipboard(clipboardImage("a.png")))
	m = sendKey(m, keys.CtrlV)
	m = typeText(m, "see")
	m = sendKey(m, keys.Enter)
	m.AwaitReply()
	m = sendKey(m, keys.CtrlV)

	if m.Composer().Handles().Outstanding() == 0 {
		t.Fatal("expected live preview handles before Close")
	}
	m.Close()
	if n := m.Composer().Handles().Outstanding(); n != 0 {
		t.Errorf("live handles after Close = %d, want 0", n)
	}
}

func TestButtonTab_Keys(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m.setTab(TabButton)

	m = sendKey(m, keys.Enter)
	m = sendKey(m, keys.Space)
	if got := m.Button().Clicks(); got != 2 {
		t.Errorf("clicks = %d, want 2", got)
	}

	before := m.Button().Variant
	m = sendKey(m, "v")
	if m.Button().Variant == before {
		t.Error("v should change the variant")
	}
	beforeSize := m.Button().Size
	m = sendKey(m, "s")
	if m.Button().Size == beforeSize {
		t.Error("s should change the size")
	}

	m = sendKey(m, "d")
	if !m.Button().Disabled {
		t.Fatal("d should disable the button")
	}
	m = sendKey(m, keys.Enter)
	if got := m.Button().Clicks(); got != 2 {
		t.Errorf("clicks = %d, disabled button should not count", got)
	}

	wantConfetti := !m.Button().Confetti
	m = sendKey(m, "c")
	if m.Button().Confetti != wantConfetti {
		t.Error("c should toggle confetti")
	}
}

func TestTeamTab_Keys(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m.setTab(TabTeam)
	r := m.Roster()

	open := r.OpenCount()
	m = sendKey(m, keys.Down)
	if r.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", r.Cursor())
	}
	m = sendKey(m, "k")
	if r.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", r.Cursor())
	}
	m = sendKey(m, keys.Enter)
	if r.OpenCount() == open {
		t.Error("enter should toggle the group under the cursor")
	}
}

func TestCalendarTab_Keys(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m.setTab(TabCalendar)
	c := m.Calendar()
	start := c.Cursor()

	m = sendKey(m, keys.Right)
	m = sendKey(m, keys.Down)
	if got := c.Cursor(); !got.Equal(start.AddDate(0, 0, 8)) {
		t.Errorf("cursor = %v, want 8 days later", got)
	}
	m = sendKey(m, keys.Enter)
	if d, ok := c.SelectedDate(); !ok || !d.Equal(c.Cursor()) {
		t.Errorf("selected = %v %v, want the cursor date", d, ok)
	}

	m = sendKey(m, keys.PgDown)
	if c.Month().Month() != time.April {
		t.Errorf("month = %v, want April after pgdown", c.Month().Month())
	}
	m = sendKey(m, "t")
	if d, _ := c.SelectedDate(); !d.Equal(c.Today()) {
		t.Errorf("t selected %v, want today", d)
	}

	m = sendKey(m, "s")
	if !m.calendar.SlotsFocused() {
		t.Fatal("s should focus the time slots")
	}
	m = sendKey(m, keys.Down)
	m = sendKey(m, keys.Enter)
	if slot, ok := c.SelectedSlot(); !ok || slot != config.DefaultTimeSlots[1] {
		t.Errorf("slot = %q %v, want %q", slot, ok, config.DefaultTimeSlots[1])
	}
}
