package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/calendar"
)

// gridWidth is seven CalendarDayStyle cells.
const gridWidth = 7 * 4

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// CalendarView is the calendar tab: month grid on the left, time slots on
// the right.
type CalendarView struct {
	Calendar *calendar.Calendar

	slotsFocused     bool
	width, height    int
	originX, originY int
}

// NewCalendarView wraps c.
func NewCalendarView(c *calendar.Calendar) *CalendarView {
	return &CalendarView{Calendar: c}
}

// SetSize sets the tab dimensions.
func (v *CalendarView) SetSize(width, height int) {
	v.width, v.height = width, height
}

// SetOrigin records the tab's top-left screen cell for hit-testing.
func (v *CalendarView) SetOrigin(x, y int) {
	v.originX, v.originY = x, y
}

// ToggleFocus switches keyboard focus between the grid and the slot list.
// The slot list can't take focus when it is hidden.
func (v *CalendarView) ToggleFocus() {
	if len(v.Calendar.Slots()) == 0 {
		v.slotsFocused = false
		return
	}
	v.slotsFocused = !v.slotsFocused
}

// SlotsFocused reports whether the slot list has keyboard focus.
func (v *CalendarView) SlotsFocused() bool {
	return v.slotsFocused
}

// Hit is what a mouse click on the calendar landed on.
type Hit int

const (
	HitNone Hit = iota
	HitPrevMonth
	HitNextMonth
	HitDay
	HitSlot
)

// HitTest resolves a screen cell. A HitDay click selects that day; for
// HitSlot the index of the slot is returned.
func (v *CalendarView) HitTest(x, y int) (Hit, int) {
	relX := x - v.originX - 1
	relY := y - v.originY - 1
	if relX < 0 || relY < 0 {
		return HitNone, 0
	}

	if relX < gridWidth {
		weeks := v.Calendar.Weeks()
		switch {
		case relY == 0 && relX == 0:
			return HitPrevMonth, 0
		case relY == 0 && relX == gridWidth-1:
			return HitNextMonth, 0
		case relY >= 2 && relY-2 < len(weeks):
			day := weeks[relY-2][relX/4]
			if day.Date.IsZero() {
				return HitNone, 0
			}
			v.Calendar.SelectDate(day.Date)
			return HitDay, 0
		}
		return HitNone, 0
	}

	// Slot panel starts after the grid panel and a one-cell gap
	slotX := relX - (gridWidth + BorderSize + 1)
	slot := relY - 2
	if slotX >= 0 && slot >= 0 && slot < len(v.Calendar.Slots()) {
		return HitSlot, slot
	}
	return HitNone, 0
}

func (v *CalendarView) renderGrid() string {
	var sb strings.Builder

	label := lipgloss.PlaceHorizontal(gridWidth-2, lipgloss.Center, GroupTitleStyle.Render(v.Calendar.MonthLabel()))
	sb.WriteString(KeyHintStyle.Render("‹") + label + KeyHintStyle.Render("›"))
	sb.WriteString("\n")

	for _, wd := range weekdays {
		sb.WriteString(CalendarOutsideStyle.Render(wd))
	}

	for _, week := range v.Calendar.Weeks() {
		sb.WriteString("\n")
		for _, d := range week {
			sb.WriteString(renderDay(d, !v.slotsFocused))
		}
	}

	sb.WriteString("\n\n")
	sb.WriteString(v.summary())
	return sb.String()
}

func renderDay(d calendar.Day, showCursor bool) string {
	if d.Date.IsZero() {
		return CalendarDayStyle.Render("")
	}
	text := d.Date.Format("2")
	var style lipgloss.Style
	switch {
	case d.Selected:
		style = CalendarSelectStyle
	case d.Today:
		style = CalendarTodayStyle
	case d.Outside:
		style = CalendarOutsideStyle
	default:
		style = CalendarDayStyle
	}
	if d.Cursor && showCursor {
		style = style.Reverse(true)
	}
	return style.Render(text)
}

func (v *CalendarView) summary() string {
	date, ok := v.Calendar.SelectedDate()
	if !ok {
		return MutedStyle.Render("No date selected")
	}
	s := date.Format("Mon, Jan 2")
	if slot, ok := v.Calendar.SelectedSlot(); ok {
		s += " at " + slot
	}
	return ChatMessageStyle.Render(s)
}

func (v *CalendarView) renderSlots() string {
	slots := v.Calendar.Slots()
	selected, _ := v.Calendar.SelectedSlot()

	lines := []string{GroupTitleStyle.Render(v.Calendar.Heading()), ""}
	for i, slot := range slots {
		style := SlotStyle
		if slot == selected {
			style = SlotSelectedStyle
		}
		marker := "  "
		if v.slotsFocused && i == v.Calendar.SlotCursor() {
			marker = GroupCursorStyle.Render("› ")
		}
		lines = append(lines, marker+style.Render(slot))
	}
	return strings.Join(lines, "\n")
}

// View renders the calendar tab.
func (v *CalendarView) View() string {
	gridStyle, slotStyle := PanelFocusedStyle, PanelStyle
	if v.slotsFocused {
		gridStyle, slotStyle = PanelStyle, PanelFocusedStyle
	}
	grid := gridStyle.Width(gridWidth + BorderSize).Render(v.renderGrid())

	parts := []string{grid}
	if len(v.Calendar.Slots()) > 0 {
		slotWidth := max(v.width-lipgloss.Width(grid)-1, 14)
		slots := slotStyle.Width(slotWidth).Height(lipgloss.Height(grid)).Render(v.renderSlots())
		parts = append(parts, " ", slots)
	}

	help := MutedStyle.Render("arrows move · enter select · pgup/pgdn month · t times")
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.JoinHorizontal(lipgloss.Top, parts...), help)
}
