package ui

import (
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// Text selection works in viewport coordinates: (0,0) is the first visible
// cell inside the timeline border. Screen coordinates from mouse events are
// translated with TimelineRect.

// SelectionFlashMsg ends the highlight flash that follows a copy.
type SelectionFlashMsg struct{}

const (
	doubleClickThreshold   = 500 * time.Millisecond
	clickTolerance         = 2 // cells
	selectionFlashDuration = 300 * time.Millisecond
)

// textSelection is a mouse selection over the visible timeline.
type textSelection struct {
	startCol, startLine int
	endCol, endLine     int
	dragging            bool
	flashing            bool
}

func noSelection() textSelection {
	return textSelection{startCol: -1, startLine: -1, endCol: -1, endLine: -1}
}

// clickTracker turns presses into single, double and triple clicks.
type clickTracker struct {
	at    time.Time
	x, y  int
	count int
}

// TimelineRect is the visible message area, inside the panel border.
func (c *Chat) TimelineRect() Rect {
	return Rect{
		X: c.originX + 1,
		Y: c.originY + 1,
		W: c.viewport.Width(),
		H: c.viewport.Height(),
	}
}

// SelectionPress handles a left press at a screen cell inside the timeline.
// A single click starts a drag; a double click selects the word under the
// pointer and a triple click its paragraph. The text to copy is returned for
// double and triple clicks, "" otherwise.
func (c *Chat) SelectionPress(x, y int) string {
	r := c.TimelineRect()
	if !r.Has(x, y) {
		return ""
	}
	col, line := x-r.X, y-r.Y

	now := c.now()
	if now.Sub(c.clicks.at) <= doubleClickThreshold &&
		abs(x-c.clicks.x) <= clickTolerance && abs(y-c.clicks.y) <= clickTolerance {
		c.clicks.count++
	} else {
		c.clicks.count = 1
	}
	c.clicks.at, c.clicks.x, c.clicks.y = now, x, y

	switch c.clicks.count {
	case 1:
		c.textSel = textSelection{startCol: col, startLine: line, endCol: col, endLine: line, dragging: true}
		return ""
	case 2:
		c.selectWord(col, line)
	default:
		c.selectParagraph(line)
		c.clicks.count = 0
	}
	return c.SelectedText()
}

// SelectionDrag extends an in-progress selection to a screen cell, clamped
// to the timeline.
func (c *Chat) SelectionDrag(x, y int) {
	if !c.textSel.dragging {
		return
	}
	r := c.TimelineRect()
	c.textSel.endCol = max(0, min(r.W, x-r.X))
	c.textSel.endLine = max(0, min(r.H-1, y-r.Y))
}

// SelectionRelease ends the drag and returns the selected text, if any.
func (c *Chat) SelectionRelease(x, y int) string {
	if !c.textSel.dragging {
		return ""
	}
	c.SelectionDrag(x, y)
	c.textSel.dragging = false
	return c.SelectedText()
}

// IsSelecting reports whether a selection drag is in progress.
func (c *Chat) IsSelecting() bool {
	return c.textSel.dragging
}

// ClearSelection drops any selection.
func (c *Chat) ClearSelection() {
	c.textSel = noSelection()
}

// HasTextSelection reports whether a non-empty selection exists.
func (c *Chat) HasTextSelection() bool {
	s := c.textSel
	return s.startCol >= 0 && s.startLine >= 0 &&
		(s.endCol != s.startCol || s.endLine != s.startLine)
}

// FlashSelection briefly recolours the selection to confirm a copy.
func (c *Chat) FlashSelection() tea.Cmd {
	if !c.HasTextSelection() {
		return nil
	}
	c.textSel.flashing = true
	return tea.Tick(selectionFlashDuration, func(time.Time) tea.Msg {
		return SelectionFlashMsg{}
	})
}

func (c *Chat) visibleLines() []string {
	return strings.Split(c.viewport.View(), "\n")
}

// selectWord selects the uniseg word under (col, line). Whitespace selects
// nothing.
func (c *Chat) selectWord(col, line int) {
	c.ClearSelection()
	lines := c.visibleLines()
	if line < 0 || line >= len(lines) {
		return
	}
	if start, end, ok := wordBounds(ansi.Strip(lines[line]), col); ok {
		c.textSel = textSelection{startCol: start, startLine: line, endCol: end, endLine: line}
	}
}

// wordBounds returns the cell span of the word covering col.
func wordBounds(line string, col int) (start, end int, ok bool) {
	pos, state := 0, -1
	for rest := line; rest != ""; {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		w := uniseg.StringWidth(word)
		if col >= pos && col < pos+w {
			if strings.TrimSpace(word) == "" {
				return 0, 0, false
			}
			return pos, pos + w, true
		}
		pos += w
	}
	return 0, 0, false
}

// selectParagraph selects the run of non-blank lines around line.
func (c *Chat) selectParagraph(line int) {
	c.ClearSelection()
	lines := c.visibleLines()
	if line < 0 || line >= len(lines) || blank(lines[line]) {
		return
	}
	start, end := line, line
	for start > 0 && !blank(lines[start-1]) {
		start--
	}
	for end < len(lines)-1 && !blank(lines[end+1]) {
		end++
	}
	c.textSel = textSelection{
		startCol:  0,
		startLine: start,
		endCol:    ansi.StringWidth(lines[end]),
		endLine:   end,
	}
}

func blank(line string) bool {
	return strings.TrimSpace(ansi.Strip(line)) == ""
}

// selectionArea returns the selection in reading order.
func (c *Chat) selectionArea() (startCol, startLine, endCol, endLine int) {
	s := c.textSel
	startCol, startLine, endCol, endLine = s.startCol, s.startLine, s.endCol, s.endLine
	if startLine > endLine || (startLine == endLine && startCol > endCol) {
		startCol, endCol = endCol, startCol
		startLine, endLine = endLine, startLine
	}
	return
}

// SelectedText returns the selected cells as plain text. Trailing padding
// on each line is dropped.
func (c *Chat) SelectedText() string {
	if !c.HasTextSelection() {
		return ""
	}
	lines := c.visibleLines()
	startCol, startLine, endCol, endLine := c.selectionArea()

	var out []string
	for y := startLine; y <= endLine && y < len(lines); y++ {
		from, to := 0, ansi.StringWidth(lines[y])
		if y == startLine {
			from = startCol
		}
		if y == endLine {
			to = min(to, endCol)
		}
		if from >= to {
			out = append(out, "")
			continue
		}
		out = append(out, strings.TrimRight(ansi.Strip(ansi.Cut(lines[y], from, to)), " "))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// selectionView paints the selection over the rendered viewport.
func (c *Chat) selectionView(view string) string {
	if !c.HasTextSelection() {
		return view
	}
	width, height := c.viewport.Width(), c.viewport.Height()
	if width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	var bg, fg color.Color
	if c.textSel.flashing {
		bg, fg = TextSelectionFlashStyle.GetBackground(), TextSelectionFlashStyle.GetForeground()
	} else {
		bg, fg = TextSelectionStyle.GetBackground(), TextSelectionStyle.GetForeground()
	}

	startCol, startLine, endCol, endLine := c.selectionArea()
	for y := startLine; y <= endLine && y < height; y++ {
		from, to := 0, width
		if y == startLine {
			from = startCol
		}
		if y == endLine {
			to = endCol
		}
		for x := from; x < to && x < width; x++ {
			if cell := scr.CellAt(x, y); cell != nil {
				cell = cell.Clone()
				cell.Style.Bg = bg
				cell.Style.Fg = fg
				scr.SetCell(x, y, cell)
			}
		}
	}
	return scr.Render()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
