package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Sefyu24/Componentcn/internal/keys"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

func sendMouse(m *Model, msg tea.Msg) *Model {
	result, _ := m.Update(msg)
	return result.(*Model)
}

func TestMouse_HeaderSwitchesTabs(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)

	x := -1
	for col := range 100 {
		if i, ok := m.header.TabAt(col); ok && i == int(TabCalendar) {
			x = col
			break
		}
	}
	if x < 0 {
		t.Fatal("no header column maps to the calendar tab")
	}
	m = sendMouse(m, mouseClick(x, 0))
	if m.ActiveTab() != TabCalendar {
		t.Errorf("ActiveTab() = %v, want calendar", m.ActiveTab())
	}
}

func TestMouse_DragLifecycle(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	zone := m.chat.DropZone()
	in := zone.Y + 1
	c := m.Composer()

	m = sendMouse(m, mouseClick(10, in))
	m = sendMouse(m, mouseMotion(12, in))
	if !c.State().DragActive {
		t.Fatal("moving inside the drop zone with the button held should start a drag")
	}

	m = sendMouse(m, mouseMotion(12, zone.Y-5))
	if c.State().DragActive {
		t.Error("leaving the drop zone should end the drag")
	}

	m = sendMouse(m, mouseMotion(12, in))
	if !c.State().DragActive {
		t.Error("re-entering the drop zone should restart the drag")
	}

	m = sendMouse(m, mouseRelease(12, in))
	if c.State().DragActive {
		t.Error("releasing inside the zone should drop and clear the drag")
	}
	if len(c.Attachments()) != 0 {
		t.Error("an empty drop should stage nothing")
	}
}

func TestMouse_DragBetweenNestedRegionsStaysActive(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30, WithClipboard(clipboardImage("a.png")))
	m = sendKey(m, keys.CtrlV)

	zone := m.chat.DropZone()
	input := m.chat.InputRect()
	if input.Y <= zone.Y {
		t.Fatalf("input %+v should sit below the strip inside zone %+v", input, zone)
	}
	c := m.Composer()

	// Press below the tiles so the click doesn't select one
	m = sendMouse(m, mouseClick(90, input.Y+1))
	m = sendMouse(m, mouseMotion(90, input.Y+2))
	m = sendMouse(m, mouseMotion(90, zone.Y+1)) // into the strip
	if !c.State().DragActive {
		t.Error("moving from the input to the strip should keep the drag active")
	}

	m = sendMouse(m, mouseRelease(90, 3))
	if c.State().DragActive {
		t.Error("releasing outside the zone should end the drag")
	}
	if len(c.Attachments()) != 1 {
		t.Error("releasing outside the zone must not drop")
	}
}

func TestMouse_MotionWithoutPressIsIgnored(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	zone := m.chat.DropZone()
	m = sendMouse(m, mouseMotion(10, zone.Y+1))
	if m.Composer().State().DragActive {
		t.Error("hovering should not start a drag")
	}
}

func TestMouse_StagingTiles(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30, WithClipboard(clipboardImage("a.png")))
	m = sendKey(m, keys.CtrlV)
	m = sendKey(m, keys.CtrlV)
	zone := m.chat.DropZone()

	// Second tile body selects it
	tileX := 14 + 1 + 3
	m = sendMouse(m, mouseClick(tileX, zone.Y+2))
	att, ok := m.chat.SelectedAttachment()
	if !ok || att.ID != m.Composer().Attachments()[1].ID {
		t.Fatalf("selected = %v %v, want the second tile", att, ok)
	}
	if m.Composer().State().DragActive || m.dragging {
		t.Error("clicking a tile should not start a drag")
	}

	// The first tile's remove marker removes it
	first := m.Composer().Attachments()[0].ID
	idx, onRemove, ok := m.chat.TileAt(12, zone.Y+5)
	if !ok || idx != 0 || !onRemove {
		t.Fatalf("TileAt(remove marker) = %d %v %v", idx, onRemove, ok)
	}
	m = sendMouse(m, mouseClick(12, zone.Y+5))
	for _, a := range m.Composer().Attachments() {
		if a.ID == first {
			t.Fatal("remove marker click did not remove the tile")
		}
	}
	if len(m.Composer().Attachments()) != 1 {
		t.Errorf("staged = %d, want 1", len(m.Composer().Attachments()))
	}
}

func TestMouse_ButtonClick(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m.setTab(TabButton)
	r := m.buttons.ButtonRect()

	m = sendMouse(m, mouseClick(r.X, r.Y))
	if m.Button().Clicks() != 1 {
		t.Errorf("clicks = %d, want 1", m.Button().Clicks())
	}
	m = sendMouse(m, mouseClick(0, 2))
	if m.Button().Clicks() != 1 {
		t.Error("clicking beside the button should not count")
	}
	m = sendMouse(m, tea.MouseClickMsg{X: r.X, Y: r.Y, Button: tea.MouseRight})
	if m.Button().Clicks() != 1 {
		t.Error("right clicks should be ignored")
	}
}

func TestMouse_RosterHeaderToggles(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m.setTab(TabTeam)
	g := m.Roster().Groups()[0]
	was := m.Roster().IsOpen(g.ID)

	m = sendMouse(m, mouseClick(2, 2))
	if m.Roster().IsOpen(g.ID) == was {
		t.Error("clicking the first group header should toggle it")
	}
}

func TestMouse_IgnoredUnderModal(t *testing.T) {
	m := testModelWithSize(testConfig(), 100, 30)
	m.setTab(TabButton)
	m = sendKey(m, keys.CtrlT)
	r := m.buttons.ButtonRect()

	m = sendMouse(m, mouseClick(r.X, r.Y))
	if m.Button().Clicks() != 0 {
		t.Error("mouse input should not reach the tabs while a modal is open")
	}
}

func TestMouse_SelectTextCopies(t *testing.T) {
	fc := &fakeClipboard{}
	m := testModelWithSize(testConfig(), 100, 30, WithClipboard(fc))
	m = typeText(m, "hello world")
	m = sendKey(m, keys.Enter)
	if !m.AwaitReply() {
		t.Fatal("expected a pending reply")
	}

	// Find the reply on screen
	x, y := -1, -1
	for i, line := range strings.Split(ansi.Strip(m.chat.View()), "\n") {
		if j := strings.Index(line, "echo: hello"); j >= 0 {
			x, y = ansi.StringWidth(line[:j]), ui.HeaderHeight+i
			break
		}
	}
	if x < 0 {
		t.Fatal("reply not visible")
	}

	m = sendMouse(m, mouseClick(x, y))
	m = sendMouse(m, mouseMotion(x+4, y))
	result, cmd := m.Update(mouseRelease(x+len("echo: hello"), y))
	m = result.(*Model)

	if cmd == nil {
		t.Error("copying should return commands for the terminal clipboard and the flash")
	}
	if len(fc.written) != 1 || fc.written[0] != "echo: hello" {
		t.Errorf("clipboard writes = %q, want [\"echo: hello\"]", fc.written)
	}
	if !strings.Contains(footerText(m), "Copied") {
		t.Errorf("footer = %q, want a copy confirmation", footerText(m))
	}

	// Typing clears the highlight
	m = sendKey(m, "x")
	if m.chat.HasTextSelection() {
		t.Error("typing should clear the selection")
	}
}

func TestMouse_ClickInTimelineWithoutDragCopiesNothing(t *testing.T) {
	fc := &fakeClipboard{}
	m := testModelWithSize(testConfig(), 100, 30, WithClipboard(fc))
	r := m.chat.TimelineRect()

	m = sendMouse(m, mouseClick(r.X+2, r.Y+1))
	m = sendMouse(m, mouseRelease(r.X+2, r.Y+1))
	if len(fc.written) != 0 {
		t.Errorf("clipboard writes = %q, want none", fc.written)
	}
	if m.Composer().State().DragActive {
		t.Error("a timeline press should not start a file drag")
	}
}
