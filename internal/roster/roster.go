// Package roster implements the collapsible team roster: groups of members,
// each with an avatar stack that fans out when the group is opened.
package roster

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// MaxAvatars is how many avatars a stack shows before the "N+" chip.
const MaxAvatars = 4

// Member is one person in a group.
type Member struct {
	ID         string
	Name       string
	JoinedYear string // Two-digit year, rendered as 'YY
	Initials   string // Derived from Name when empty
}

// Label returns the member's initials, deriving them from the name if unset.
func (m Member) Label() string {
	if m.Initials != "" {
		return m.Initials
	}
	return Initials(m.Name)
}

// Joined formats the join year for display.
func (m Member) Joined() string {
	if m.JoinedYear == "" {
		return ""
	}
	return fmt.Sprintf("Joined '%s", m.JoinedYear)
}

// Initials returns the upper-cased first grapheme of the first and last
// words of name.
func Initials(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '_'
	})
	switch len(words) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(firstGrapheme(words[0]))
	default:
		return strings.ToUpper(firstGrapheme(words[0]) + firstGrapheme(words[len(words)-1]))
	}
}

func firstGrapheme(s string) string {
	g := uniseg.NewGraphemes(s)
	if g.Next() {
		return g.Str()
	}
	return ""
}

// Group is a titled set of members.
type Group struct {
	ID          string
	Title       string
	Members     []Member
	DefaultOpen bool
}

// Stack returns the avatars shown in the group's header and how many members
// are hidden behind the chip.
func (g Group) Stack() (visible []Member, remaining int) {
	if len(g.Members) <= MaxAvatars {
		return g.Members, 0
	}
	return g.Members[:MaxAvatars], len(g.Members) - MaxAvatars
}

// Roster tracks which groups are open and animates their avatar stacks.
type Roster struct {
	groups []Group
	open   map[string]bool
	cursor int
	stacks map[string]*stackAnim
}

// New creates a roster with every DefaultOpen group expanded.
func New(groups []Group) *Roster {
	r := &Roster{
		groups: groups,
		open:   make(map[string]bool),
		stacks: make(map[string]*stackAnim),
	}
	for _, g := range groups {
		visible, remaining := g.Stack()
		n := len(visible)
		if remaining > 0 {
			n++
		}
		r.stacks[g.ID] = newStackAnim(n, g.DefaultOpen)
		if g.DefaultOpen {
			r.open[g.ID] = true
		}
	}
	return r
}

// Groups returns the roster's groups in display order.
func (r *Roster) Groups() []Group {
	return r.groups
}

// IsOpen reports whether the group is expanded.
func (r *Roster) IsOpen(id string) bool {
	return r.open[id]
}

// OpenCount returns the number of expanded groups.
func (r *Roster) OpenCount() int {
	return len(r.open)
}

// Toggle flips a group between open and closed and starts its avatar
// animation. Unknown ids are ignored. Returns the new open state.
func (r *Roster) Toggle(id string) bool {
	stack, ok := r.stacks[id]
	if !ok {
		return false
	}
	if r.open[id] {
		delete(r.open, id)
	} else {
		r.open[id] = true
	}
	stack.setExpanded(r.open[id])
	return r.open[id]
}

// Cursor returns the index of the highlighted group.
func (r *Roster) Cursor() int {
	return r.cursor
}

// Move shifts the cursor by delta, clamped to the group list.
func (r *Roster) Move(delta int) {
	if len(r.groups) == 0 {
		return
	}
	r.cursor = max(0, min(len(r.groups)-1, r.cursor+delta))
}

// ToggleCursor toggles the highlighted group.
func (r *Roster) ToggleCursor() bool {
	if r.cursor >= len(r.groups) {
		return false
	}
	return r.Toggle(r.groups[r.cursor].ID)
}

// Step advances every stack animation by one frame. Returns true while any
// stack is still moving.
func (r *Roster) Step() bool {
	moving := false
	for _, s := range r.stacks {
		if s.step() {
			moving = true
		}
	}
	return moving
}

// Animating reports whether any stack is still moving.
func (r *Roster) Animating() bool {
	for _, s := range r.stacks {
		if !s.settled() {
			return true
		}
	}
	return false
}

// Offsets returns the current column offset of each avatar in a group's
// stack, chip last.
func (r *Roster) Offsets(id string) []int {
	s, ok := r.stacks[id]
	if !ok {
		return nil
	}
	return s.offsets()
}
