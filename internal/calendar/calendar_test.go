package calendar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var march14 = time.Date(2025, time.March, 14, 15, 30, 0, 0, time.UTC)

func ptr(s string) *string { return &s }

func TestWeeks_SundayFirstWithOutsideDays(t *testing.T) {
	c := New(Options{Today: march14})
	weeks := c.Weeks()

	// March 2025 starts on a Saturday and ends on a Monday: six rows.
	if len(weeks) != 6 {
		t.Fatalf("len(Weeks()) = %d, want 6", len(weeks))
	}
	first := weeks[0][0]
	if !first.Outside || first.Date.Day() != 23 || first.Date.Month() != time.February {
		t.Errorf("first cell = %v outside=%v, want Feb 23 outside", first.Date, first.Outside)
	}
	if d := weeks[0][6]; d.Outside || d.Date.Day() != 1 {
		t.Errorf("first Saturday = %v outside=%v, want Mar 1", d.Date, d.Outside)
	}
	last := weeks[5][6]
	if !last.Outside || last.Date.Month() != time.April || last.Date.Day() != 5 {
		t.Errorf("last cell = %v, want Apr 5 outside", last.Date)
	}

	var todays, cursors int
	for _, w := range weeks {
		for _, d := range w {
			if d.Today {
				todays++
				if d.Date.Day() != 14 {
					t.Errorf("today marker on %v", d.Date)
				}
			}
			if d.Cursor {
				cursors++
			}
		}
	}
	if todays != 1 || cursors != 1 {
		t.Errorf("today markers = %d, cursors = %d; want 1 each", todays, cursors)
	}
}

func TestWeeks_HideOutsideDays(t *testing.T) {
	c := New(Options{Today: march14, HideOutsideDays: true})
	first := c.Weeks()[0][0]
	if !first.Outside || !first.Date.IsZero() {
		t.Errorf("hidden outside day = %+v, want zero date", first)
	}
}

func TestWeeks_FourRowMonth(t *testing.T) {
	// February 2015 starts on Sunday and has 28 days.
	c := New(Options{Today: time.Date(2015, time.February, 10, 0, 0, 0, 0, time.UTC)})
	if got := len(c.Weeks()); got != 4 {
		t.Errorf("len(Weeks()) = %d, want 4", got)
	}
}

func TestNavigation(t *testing.T) {
	c := New(Options{Today: time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)})

	c.NextMonth()
	if c.MonthLabel() != "February 2025" {
		t.Errorf("MonthLabel() = %q", c.MonthLabel())
	}
	if got := c.Cursor().Day(); got != 28 {
		t.Errorf("cursor day = %d, want clamped 28", got)
	}

	c.PrevMonth()
	c.PrevMonth()
	if c.MonthLabel() != "December 2024" {
		t.Errorf("MonthLabel() = %q", c.MonthLabel())
	}

	c.MoveCursor(7)
	if c.MonthLabel() != "January 2025" || c.Cursor().Day() != 4 {
		t.Errorf("after +7: %s cursor %v", c.MonthLabel(), c.Cursor())
	}
}

func TestSelectDate(t *testing.T) {
	c := New(Options{Today: march14})
	if _, ok := c.SelectedDate(); ok {
		t.Error("a date is selected initially")
	}
	c.MoveCursor(3)
	c.SelectCursor()
	got, ok := c.SelectedDate()
	if !ok || got.Day() != 17 {
		t.Errorf("SelectedDate() = %v, %v; want Mar 17", got, ok)
	}
	selected := 0
	for _, w := range c.Weeks() {
		for _, d := range w {
			if d.Selected {
				selected++
			}
		}
	}
	if selected != 1 {
		t.Errorf("selected cells = %d, want 1", selected)
	}
}

func TestSlots_Uncontrolled(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"defaults to first", Options{}, "09:00 AM"},
		{"initial slot", Options{InitialSlot: "02:00 PM"}, "02:00 PM"},
		{"initial slot not offered", Options{InitialSlot: "11:45 PM"}, "09:00 AM"},
		{"no slots", Options{TimeSlots: []string{}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Today = march14
			c := New(tt.opts)
			got, ok := c.SelectedSlot()
			if got != tt.want || ok != (tt.want != "") {
				t.Errorf("SelectedSlot() = %q, %v; want %q", got, ok, tt.want)
			}
		})
	}
}

func TestSlots_SelectNotifies(t *testing.T) {
	var picked []string
	c := New(Options{Today: march14, OnSlotSelect: func(s string) { picked = append(picked, s) }})

	if !c.SelectSlot("10:30 AM") {
		t.Fatal("SelectSlot(offered) = false")
	}
	if c.SelectSlot("04:00 PM") {
		t.Error("SelectSlot(unknown) = true")
	}
	if got, _ := c.SelectedSlot(); got != "10:30 AM" {
		t.Errorf("SelectedSlot() = %q", got)
	}
	if c.SlotCursor() != 3 {
		t.Errorf("SlotCursor() = %d, want 3", c.SlotCursor())
	}
	if diff := cmp.Diff([]string{"10:30 AM"}, picked); diff != "" {
		t.Errorf("notifications (-want +got):\n%s", diff)
	}
}

func TestSlots_Controlled(t *testing.T) {
	var picked string
	c := New(Options{
		Today:        march14,
		SelectedSlot: ptr("01:00 PM"),
		OnSlotSelect: func(s string) { picked = s },
	})
	if !c.Controlled() {
		t.Fatal("Controlled() = false")
	}

	c.SelectSlot("09:30 AM")
	if picked != "09:30 AM" {
		t.Errorf("callback got %q", picked)
	}
	if got, _ := c.SelectedSlot(); got != "01:00 PM" {
		t.Errorf("controlled SelectedSlot() = %q, want caller's 01:00 PM", got)
	}

	c.SetControlledSlot(ptr(picked))
	if got, _ := c.SelectedSlot(); got != "09:30 AM" {
		t.Errorf("after caller update SelectedSlot() = %q", got)
	}

	// Back to uncontrolled keeps the last value if still offered.
	c.SetControlledSlot(nil)
	if got, _ := c.SelectedSlot(); got != "09:30 AM" || c.Controlled() {
		t.Errorf("uncontrolled SelectedSlot() = %q", got)
	}
}

func TestSetSlots_Fallbacks(t *testing.T) {
	c := New(Options{Today: march14, TimeSlots: []string{"a", "b", "c"}, InitialSlot: "b"})
	c.SelectSlot("c")

	steps := []struct {
		slots []string
		want  string
	}{
		{[]string{"c", "d"}, "c"}, // previous kept
		{[]string{"b", "d"}, "b"}, // previous gone, initial used
		{[]string{"x", "y"}, "x"}, // neither, first
		{[]string{}, ""},          // none
		{[]string{"b", "z"}, "b"}, // initial again
	}
	for i, s := range steps {
		c.SetSlots(s.slots)
		if got, _ := c.SelectedSlot(); got != s.want {
			t.Errorf("step %d: SelectedSlot() = %q, want %q", i, got, s.want)
		}
	}
}

func TestSlotCursor(t *testing.T) {
	c := New(Options{Today: march14})
	c.MoveSlotCursor(-5)
	if c.SlotCursor() != 0 {
		t.Errorf("SlotCursor() = %d", c.SlotCursor())
	}
	c.MoveSlotCursor(100)
	if c.SlotCursor() != len(DefaultSlots)-1 {
		t.Errorf("SlotCursor() = %d", c.SlotCursor())
	}
	c.SelectSlotCursor()
	if got, _ := c.SelectedSlot(); got != "03:00 PM" {
		t.Errorf("SelectedSlot() = %q", got)
	}
}
