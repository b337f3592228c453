// Package calendar implements a month grid with a day cursor and a time-slot
// picker beside it.
package calendar

import (
	"slices"
	"time"
)

// DefaultHeading titles the slot list.
const DefaultHeading = "Available Times"

// DefaultSlots are offered when no slot list is configured.
var DefaultSlots = []string{
	"09:00 AM",
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"01:00 PM",
	"01:30 PM",
	"02:00 PM",
	"02:30 PM",
	"03:00 PM",
}

// Day is one cell of the month grid.
type Day struct {
	Date     time.Time
	Outside  bool // Belongs to the previous or next month
	Today    bool
	Selected bool
	Cursor   bool
}

// Options configure a Calendar.
type Options struct {
	// Today anchors the initial month and the today marker. Zero means now.
	Today time.Time
	// TimeSlots offered beside the grid. Nil means DefaultSlots; an empty
	// non-nil slice hides the picker.
	TimeSlots []string
	// InitialSlot seeds an uncontrolled selection.
	InitialSlot string
	// SelectedSlot makes the selection controlled: the calendar always
	// reports this value and SelectSlot only notifies OnSlotSelect.
	SelectedSlot *string
	// OnSlotSelect is called whenever the user picks a slot.
	OnSlotSelect func(slot string)
	// Heading titles the slot list. Empty means DefaultHeading.
	Heading string
	// HideOutsideDays blanks cells from adjacent months.
	HideOutsideDays bool
}

// Calendar is the month grid and slot picker state.
type Calendar struct {
	today    time.Time
	month    time.Time // First day of the visible month
	cursor   time.Time
	selected time.Time // Zero when no day is selected

	slots        []string
	initialSlot  string
	controlled   *string
	internalSlot string // "" means none
	slotCursor   int
	onSlotSelect func(string)
	heading      string
	hideOutside  bool
}

// New creates a calendar showing the month of opts.Today.
func New(opts Options) *Calendar {
	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}
	today = dateOnly(today)

	slots := opts.TimeSlots
	if slots == nil {
		slots = DefaultSlots
	}
	heading := opts.Heading
	if heading == "" {
		heading = DefaultHeading
	}

	c := &Calendar{
		today:        today,
		month:        firstOfMonth(today),
		cursor:       today,
		slots:        slices.Clone(slots),
		initialSlot:  opts.InitialSlot,
		controlled:   opts.SelectedSlot,
		onSlotSelect: opts.OnSlotSelect,
		heading:      heading,
		hideOutside:  opts.HideOutsideDays,
	}

	if c.controlled != nil {
		c.internalSlot = *c.controlled
	} else {
		c.internalSlot = c.initialSlot
		c.reconcileSlot()
	}
	c.syncSlotCursor()
	return c
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Today returns the date marked as today.
func (c *Calendar) Today() time.Time { return c.today }

// Month returns the first day of the visible month.
func (c *Calendar) Month() time.Time { return c.month }

// MonthLabel returns e.g. "March 2025".
func (c *Calendar) MonthLabel() string {
	return c.month.Format("January 2006")
}

// Heading returns the slot list title.
func (c *Calendar) Heading() string { return c.heading }

// PrevMonth shows the previous month and moves the cursor into it.
func (c *Calendar) PrevMonth() { c.shiftMonth(-1) }

// NextMonth shows the next month and moves the cursor into it.
func (c *Calendar) NextMonth() { c.shiftMonth(1) }

func (c *Calendar) shiftMonth(delta int) {
	c.month = c.month.AddDate(0, delta, 0)
	// Keep the cursor's day number, clamped to the new month's length.
	day := min(c.cursor.Day(), daysIn(c.month))
	c.cursor = time.Date(c.month.Year(), c.month.Month(), day, 0, 0, 0, 0, c.month.Location())
}

func daysIn(month time.Time) int {
	return firstOfMonth(month).AddDate(0, 1, -1).Day()
}

// Cursor returns the highlighted date.
func (c *Calendar) Cursor() time.Time { return c.cursor }

// MoveCursor moves the highlight by days, following it into adjacent months.
func (c *Calendar) MoveCursor(days int) {
	c.cursor = c.cursor.AddDate(0, 0, days)
	c.month = firstOfMonth(c.cursor)
}

// SelectCursor selects the highlighted date.
func (c *Calendar) SelectCursor() {
	c.SelectDate(c.cursor)
}

// SelectDate selects d and moves the cursor and view to it.
func (c *Calendar) SelectDate(d time.Time) {
	d = dateOnly(d)
	c.selected = d
	c.cursor = d
	c.month = firstOfMonth(d)
}

// SelectedDate returns the selected date, if any.
func (c *Calendar) SelectedDate() (time.Time, bool) {
	return c.selected, !c.selected.IsZero()
}

// Weeks returns the visible month as Sunday-first weeks. Cells outside the
// month are flagged Outside; with HideOutsideDays they have a zero Date.
func (c *Calendar) Weeks() [][]Day {
	start := c.month.AddDate(0, 0, -int(c.month.Weekday()))
	end := c.month.AddDate(0, 1, 0) // exclusive

	var weeks [][]Day
	for d := start; d.Before(end); {
		week := make([]Day, 7)
		for i := range week {
			outside := d.Month() != c.month.Month() || d.Year() != c.month.Year()
			day := Day{
				Date:     d,
				Outside:  outside,
				Today:    d.Equal(c.today),
				Selected: !c.selected.IsZero() && d.Equal(c.selected),
				Cursor:   d.Equal(c.cursor),
			}
			if outside && c.hideOutside {
				day = Day{Outside: true}
			}
			week[i] = day
			d = d.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// Slots returns the offered time slots.
func (c *Calendar) Slots() []string {
	return slices.Clone(c.slots)
}

// SelectedSlot returns the current slot selection. In controlled mode this
// is always the externally supplied value.
func (c *Calendar) SelectedSlot() (string, bool) {
	if c.controlled != nil {
		return *c.controlled, *c.controlled != ""
	}
	return c.internalSlot, c.internalSlot != ""
}

// Controlled reports whether the slot selection is owned by the caller.
func (c *Calendar) Controlled() bool {
	return c.controlled != nil
}

// SetControlledSlot switches to controlled mode with slot, or back to
// uncontrolled mode when slot is nil.
func (c *Calendar) SetControlledSlot(slot *string) {
	c.controlled = slot
	if slot != nil {
		c.internalSlot = *slot
	} else {
		c.reconcileSlot()
	}
	c.syncSlotCursor()
}

// SelectSlot picks slot. Uncontrolled calendars store it; controlled ones
// leave the selection to the caller. OnSlotSelect is notified either way.
// Slots not in the list are ignored.
func (c *Calendar) SelectSlot(slot string) bool {
	if !slices.Contains(c.slots, slot) {
		return false
	}
	if c.controlled == nil {
		c.internalSlot = slot
	}
	c.slotCursor = slices.Index(c.slots, slot)
	if c.onSlotSelect != nil {
		c.onSlotSelect(slot)
	}
	return true
}

// SetSlots replaces the slot list. An uncontrolled selection survives if the
// slot is still offered; otherwise it falls back to the initial slot, then
// the first slot, then none.
func (c *Calendar) SetSlots(slots []string) {
	c.slots = slices.Clone(slots)
	if c.controlled == nil {
		c.reconcileSlot()
	}
	c.syncSlotCursor()
}

func (c *Calendar) reconcileSlot() {
	switch {
	case len(c.slots) == 0:
		c.internalSlot = ""
	case c.internalSlot != "" && slices.Contains(c.slots, c.internalSlot):
	case c.initialSlot != "" && slices.Contains(c.slots, c.initialSlot):
		c.internalSlot = c.initialSlot
	default:
		c.internalSlot = c.slots[0]
	}
}

// SlotCursor returns the index of the highlighted slot.
func (c *Calendar) SlotCursor() int { return c.slotCursor }

// MoveSlotCursor moves the slot highlight, clamped to the list.
func (c *Calendar) MoveSlotCursor(delta int) {
	if len(c.slots) == 0 {
		c.slotCursor = 0
		return
	}
	c.slotCursor = max(0, min(len(c.slots)-1, c.slotCursor+delta))
}

// SelectSlotCursor picks the highlighted slot.
func (c *Calendar) SelectSlotCursor() bool {
	if c.slotCursor >= len(c.slots) {
		return false
	}
	return c.SelectSlot(c.slots[c.slotCursor])
}

func (c *Calendar) syncSlotCursor() {
	sel, _ := c.SelectedSlot()
	if i := slices.Index(c.slots, sel); i >= 0 {
		c.slotCursor = i
		return
	}
	c.slotCursor = max(0, min(c.slotCursor, len(c.slots)-1))
}
