package roster

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Damian Edward", "DE"},
		{"susy", "S"},
		{"Mary-Jane Watson Parker", "MP"},
		{"  ", "?"},
		{"émile zola", "ÉZ"},
	}
	for _, tt := range tests {
		if got := Initials(tt.name); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestMember_Label(t *testing.T) {
	if got := (Member{Name: "Alex Johnson"}).Label(); got != "AJ" {
		t.Errorf("derived label = %q, want AJ", got)
	}
	if got := (Member{Name: "Alex Johnson", Initials: "XX"}).Label(); got != "XX" {
		t.Errorf("explicit label = %q, want XX", got)
	}
	if got := (Member{JoinedYear: "23"}).Joined(); got != "Joined '23" {
		t.Errorf("Joined() = %q", got)
	}
}

func TestGroup_Stack(t *testing.T) {
	groups := SampleGroups()
	tests := []struct {
		group     Group
		visible   int
		remaining int
	}{
		{groups[0], 4, 1},
		{groups[1], 3, 0},
		{groups[2], 2, 0},
		{Group{}, 0, 0},
	}
	for _, tt := range tests {
		visible, remaining := tt.group.Stack()
		if len(visible) != tt.visible || remaining != tt.remaining {
			t.Errorf("%s: Stack() = %d visible, %d remaining; want %d, %d",
				tt.group.ID, len(visible), remaining, tt.visible, tt.remaining)
		}
	}
}

func TestRoster_DefaultOpenAndToggle(t *testing.T) {
	r := New(SampleGroups())

	if !r.IsOpen("design-engineer") || r.IsOpen("software-engineer") {
		t.Fatal("default open set not seeded from DefaultOpen")
	}

	if !r.Toggle("software-engineer") {
		t.Error("Toggle(closed) = false, want open")
	}
	if r.Toggle("design-engineer") {
		t.Error("Toggle(open) = true, want closed")
	}
	if r.OpenCount() != 1 {
		t.Errorf("OpenCount() = %d, want 1", r.OpenCount())
	}
	if r.Toggle("nobody") || r.OpenCount() != 1 {
		t.Error("unknown id changed the open set")
	}
}

func TestRoster_Cursor(t *testing.T) {
	r := New(SampleGroups())
	r.Move(-3)
	if r.Cursor() != 0 {
		t.Errorf("Cursor() = %d after moving up past start", r.Cursor())
	}
	r.Move(10)
	if r.Cursor() != 2 {
		t.Errorf("Cursor() = %d after moving past end, want 2", r.Cursor())
	}
	if !r.ToggleCursor() || !r.IsOpen("product-owner") {
		t.Error("ToggleCursor did not open the highlighted group")
	}
}

func TestRoster_StackAnimationSettles(t *testing.T) {
	r := New(SampleGroups())

	// Open groups start fanned out, closed ones overlapped, without animating.
	if r.Animating() {
		t.Fatal("roster animating before any toggle")
	}
	if diff := cmp.Diff([]int{0, 5, 10, 15, 20}, r.Offsets("design-engineer")); diff != "" {
		t.Errorf("open offsets (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2, 4}, r.Offsets("software-engineer")); diff != "" {
		t.Errorf("closed offsets (-want +got):\n%s", diff)
	}

	r.Toggle("software-engineer")
	if !r.Animating() {
		t.Fatal("toggle did not start an animation")
	}
	r.Step()
	mid := r.Offsets("software-engineer")
	if mid[2] >= 10 {
		t.Errorf("last avatar reached %d after one frame", mid[2])
	}

	frames := 0
	for r.Step() {
		frames++
		if frames > 10*FPS {
			t.Fatal("animation did not settle within 10s of frames")
		}
	}
	if diff := cmp.Diff([]int{0, 5, 10}, r.Offsets("software-engineer")); diff != "" {
		t.Errorf("settled offsets (-want +got):\n%s", diff)
	}
	if r.Animating() {
		t.Error("Animating() = true after Step returned false")
	}
	if r.Offsets("nobody") != nil {
		t.Error("Offsets(unknown) != nil")
	}
}
