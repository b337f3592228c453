package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/roster"
)

// RosterTickMsg advances the avatar stack springs by one frame.
type RosterTickMsg time.Time

// RosterTick schedules the next roster frame.
func RosterTick() tea.Cmd {
	return tea.Tick(time.Second/roster.FPS, func(t time.Time) tea.Msg {
		return RosterTickMsg(t)
	})
}

// RosterView is the team tab: collapsible groups with animated avatar stacks.
type RosterView struct {
	Roster *roster.Roster

	animating        bool
	width, height    int
	originX, originY int
}

// NewRosterView wraps r.
func NewRosterView(r *roster.Roster) *RosterView {
	return &RosterView{Roster: r}
}

// SetSize sets the tab dimensions.
func (v *RosterView) SetSize(width, height int) {
	v.width, v.height = width, height
}

// SetOrigin records the tab's top-left screen cell for hit-testing.
func (v *RosterView) SetOrigin(x, y int) {
	v.originX, v.originY = x, y
}

// Toggle opens or closes the group under the cursor.
func (v *RosterView) Toggle() tea.Cmd {
	v.Roster.ToggleCursor()
	return v.startAnimation()
}

// ToggleAt moves the cursor to group i and toggles it.
func (v *RosterView) ToggleAt(i int) tea.Cmd {
	v.Roster.Move(i - v.Roster.Cursor())
	return v.Toggle()
}

func (v *RosterView) startAnimation() tea.Cmd {
	if v.animating || !v.Roster.Animating() {
		return nil
	}
	v.animating = true
	return RosterTick()
}

// Tick steps every stack spring.
func (v *RosterView) Tick() tea.Cmd {
	if !v.animating {
		return nil
	}
	if !v.Roster.Step() {
		v.animating = false
		return nil
	}
	return RosterTick()
}

// Animating reports whether a stack is still moving.
func (v *RosterView) Animating() bool {
	return v.animating
}

type rosterLine struct {
	group  int // -1 for spacer and member rows
	render string
}

// GroupAt maps a screen cell to the group whose header is on that row.
func (v *RosterView) GroupAt(x, y int) (int, bool) {
	row := y - v.originY - 1
	lines := v.lines()
	if x < v.originX || row < 0 || row >= len(lines) || lines[row].group < 0 {
		return 0, false
	}
	return lines[row].group, true
}

func (v *RosterView) lines() []rosterLine {
	var out []rosterLine
	for i, g := range v.Roster.Groups() {
		if i > 0 {
			out = append(out, rosterLine{group: -1})
		}
		out = append(out, rosterLine{group: i, render: v.renderHeader(i, g)})
		if !v.Roster.IsOpen(g.ID) {
			continue
		}
		for _, m := range g.Members {
			line := "      " + AvatarStyle.Render(m.Label()) + " " + ChatMessageStyle.Render(m.Name)
			if joined := m.Joined(); joined != "" {
				line += "  " + MutedStyle.Render(joined)
			}
			out = append(out, rosterLine{group: -1, render: line})
		}
	}
	return out
}

func (v *RosterView) renderHeader(i int, g roster.Group) string {
	cursor := "  "
	title := GroupTitleStyle
	if i == v.Roster.Cursor() {
		cursor = GroupCursorStyle.Render("› ")
		title = GroupCursorStyle
	}
	chevron := "▸"
	if v.Roster.IsOpen(g.ID) {
		chevron = "▾"
	}
	head := cursor + MutedStyle.Render(chevron) + " " +
		title.Render(g.Title) + " " + MutedStyle.Render(fmt.Sprintf("(%d)", len(g.Members)))
	return head + "  " + v.renderStack(g)
}

// renderStack draws the avatars at their current spring offsets. Later
// avatars are drawn over earlier ones, so collapsed stacks overlap.
func (v *RosterView) renderStack(g roster.Group) string {
	visible, remaining := g.Stack()
	tiles := make([]string, 0, len(visible)+1)
	for _, m := range visible {
		tiles = append(tiles, AvatarStyle.Render(m.Label()))
	}
	if remaining > 0 {
		tiles = append(tiles, AvatarChipStyle.Render(fmt.Sprintf("%d+", remaining)))
	}
	offsets := v.Roster.Offsets(g.ID)
	if len(tiles) == 0 || len(offsets) != len(tiles) {
		return ""
	}

	width := 0
	for i, t := range tiles {
		width = max(width, offsets[i]+lipgloss.Width(t))
	}
	line := strings.Repeat(" ", width)
	for i, t := range tiles {
		line = overlay(line, t, offsets[i], 0)
	}
	return line
}

// View renders the roster panel.
func (v *RosterView) View() string {
	lines := v.lines()
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = l.render
	}
	help := MutedStyle.Render("↑/↓ move · enter/space toggle · click a group")
	body := strings.Join(rendered, "\n") + "\n\n" + help
	return PanelStyle.Width(v.width).Height(v.height).Render(body)
}
