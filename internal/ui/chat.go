package ui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/Sefyu24/Componentcn/internal/composer"
	"github.com/Sefyu24/Componentcn/internal/keys"
	"github.com/Sefyu24/Componentcn/internal/preview"
)

// thinkingVerbs are playful status messages shown while a reply is pending
var thinkingVerbs = []string{
	"Thinking",
	"Reasoning",
	"Pondering",
	"Sketching",
	"Tweaking",
	"Restyling",
	"Noodling",
	"Percolating",
	"Brewing",
	"Marinating",
}

// randomThinkingVerb returns a random verb from the list
func randomThinkingVerb() string {
	return thinkingVerbs[rand.IntN(len(thinkingVerbs))]
}

// spinnerFrames are the characters used for the shimmering spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// dropHint replaces the input while a drag hovers the composer.
const dropHint = "Drop images to attach"

// pasteHint follows the message count in the timeline border.
const pasteHint = "Drag & drop or paste images"

// Chat is the chat tab: message timeline, staged attachment strip and input.
// It renders composer snapshots and never mutates the composer itself.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model
	previews *preview.Renderer
	handles  composer.HandleStore

	width, height    int
	originX, originY int
	focused          bool
	assistant        string

	snap     composer.Snapshot
	selected int // Index into snap.Attachments, -1 when nothing is selected

	textSel textSelection
	clicks  clickTracker

	waiting   bool
	waitStart time.Time
	verb      string
	now       func() time.Time
}

// NewChat creates a chat panel that resolves previews through handles.
func NewChat(handles composer.HandleStore) *Chat {
	ti := textarea.New()
	ti.Placeholder = "Describe the change, or paste / drop an image..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	sp := spinner.New(
		spinner.WithSpinner(spinner.Spinner{Frames: spinnerFrames, FPS: time.Second / 8}),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorUser).Bold(true)),
	)

	c := &Chat{
		viewport:  vp,
		input:     ti,
		spinner:   sp,
		previews:  preview.NewRenderer(handles),
		handles:   handles,
		assistant: "Assistant",
		selected:  -1,
		textSel:   noSelection(),
		now:       time.Now,
	}
	c.updateContent()
	return c
}

// SetAssistantName sets the label shown on assistant messages.
func (c *Chat) SetAssistantName(name string) {
	if name != "" {
		c.assistant = name
		c.updateContent()
	}
}

// SetOrigin records the panel's top-left screen cell for hit-testing.
func (c *Chat) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.layout()
}

// layout resizes the viewport around the input and the attachment strip.
func (c *Chat) layout() {
	ctx := GetViewContext()

	innerWidth := ctx.InnerWidth(c.width)
	viewportHeight := ctx.InnerHeight(c.timelineHeight())
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	// Input width accounts for its own border AND padding
	c.input.SetWidth(innerWidth - InputPaddingWidth)

	ctx.Log("Chat.layout", "outer_w", c.width, "outer_h", c.height, "strip", c.stripHeight(), "viewport_h", viewportHeight)
	c.updateContent()
}

func (c *Chat) stripHeight() int {
	if len(c.snap.Attachments) == 0 {
		return 0
	}
	return AttachmentStripHeight
}

func (c *Chat) timelineHeight() int {
	return c.height - InputTotalHeight - c.stripHeight()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// Input returns the textarea contents.
func (c *Chat) Input() string {
	return c.input.Value()
}

// InsertNewline adds a line break at the cursor.
func (c *Chat) InsertNewline() {
	c.input.InsertString("\n")
}

// InsertText adds pasted text at the cursor.
func (c *Chat) InsertText(s string) {
	c.input.InsertString(s)
}

// Sync re-renders from a composer snapshot. The returned command starts the
// spinner when a submission has just begun.
func (c *Chat) Sync(snap composer.Snapshot) tea.Cmd {
	grew := len(snap.Messages) != len(c.snap.Messages)
	stripChanged := (len(snap.Attachments) == 0) != (len(c.snap.Attachments) == 0)
	c.snap = snap

	if c.input.Value() != snap.State.Draft {
		c.input.SetValue(snap.State.Draft)
	}
	c.clampSelection()

	var cmd tea.Cmd
	if snap.State.Submitting != c.waiting {
		cmd = c.SetWaiting(snap.State.Submitting)
	}
	if stripChanged {
		c.layout()
	} else {
		c.updateContent()
	}
	if grew || stripChanged {
		// Selections are screen positions; they go stale when content moves
		c.ClearSelection()
	}
	if grew {
		c.viewport.GotoBottom()
	}
	c.previews.Prune()
	return cmd
}

// Snapshot returns the last synced composer snapshot.
func (c *Chat) Snapshot() composer.Snapshot {
	return c.snap
}

// SetWaiting toggles the pending-reply indicator.
func (c *Chat) SetWaiting(waiting bool) tea.Cmd {
	c.waiting = waiting
	if !waiting {
		c.updateContent()
		return nil
	}
	c.verb = randomThinkingVerb()
	c.waitStart = c.now()
	c.updateContent()
	c.viewport.GotoBottom()
	return c.spinner.Tick
}

// IsWaiting returns whether we're waiting for a response
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

// formatElapsed formats a duration for display (e.g., "12s", "1m30s")
func formatElapsed(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%ds", secs/60, secs%60)
}

// SelectedAttachment returns the staged attachment under the strip cursor.
func (c *Chat) SelectedAttachment() (composer.Attachment, bool) {
	if c.selected < 0 || c.selected >= len(c.snap.Attachments) {
		return composer.Attachment{}, false
	}
	return c.snap.Attachments[c.selected], true
}

// MoveSelection moves the strip cursor by delta, wrapping at both ends.
func (c *Chat) MoveSelection(delta int) {
	n := len(c.snap.Attachments)
	if n == 0 {
		c.selected = -1
		return
	}
	if c.selected < 0 {
		if delta < 0 {
			c.selected = n - 1
		} else {
			c.selected = 0
		}
	} else {
		c.selected = ((c.selected+delta)%n + n) % n
	}
	c.updateContent()
}

// Select puts the strip cursor on attachment i.
func (c *Chat) Select(i int) {
	if i >= 0 && i < len(c.snap.Attachments) {
		c.selected = i
	}
}

func (c *Chat) clampSelection() {
	n := len(c.snap.Attachments)
	switch {
	case n == 0:
		c.selected = -1
	case c.selected >= n:
		c.selected = n - 1
	}
}

// DropZone is the composer form: attachment strip plus input. Drag leave
// events only clear the drag when the pointer exits this region.
func (c *Chat) DropZone() Rect {
	return Rect{
		X: c.originX,
		Y: c.originY + c.timelineHeight(),
		W: c.width,
		H: c.stripHeight() + InputTotalHeight,
	}
}

// InputRect is the bordered textarea.
func (c *Chat) InputRect() Rect {
	return Rect{
		X: c.originX,
		Y: c.originY + c.timelineHeight() + c.stripHeight(),
		W: c.width,
		H: InputTotalHeight,
	}
}

func tileWidth() int {
	return StagedThumbCols + BorderSize
}

// visibleTiles returns the first staged index shown and how many fit.
func (c *Chat) visibleTiles() (first, count int) {
	n := len(c.snap.Attachments)
	fit := (c.width + 1) / (tileWidth() + 1)
	if n > fit {
		// Leave room for the overflow counter
		fit--
	}
	if fit < 1 {
		fit = 1
	}
	if n <= fit {
		return 0, n
	}
	if c.selected >= fit {
		first = c.selected - fit + 1
	}
	return first, fit
}

// TileAt maps a screen cell to a staged attachment. onRemove is true when the
// cell is the tile's ✕ marker.
func (c *Chat) TileAt(x, y int) (index int, onRemove bool, ok bool) {
	if c.stripHeight() == 0 {
		return 0, false, false
	}
	top := c.originY + c.timelineHeight()
	if y < top || y >= top+AttachmentStripHeight {
		return 0, false, false
	}
	first, count := c.visibleTiles()
	rel := x - c.originX
	if rel < 0 {
		return 0, false, false
	}
	slot := rel / (tileWidth() + 1)
	col := rel % (tileWidth() + 1)
	if slot >= count || col >= tileWidth() {
		return 0, false, false
	}
	// The ✕ sits on the name row, in the last inner column
	nameRow := top + 1 + StagedThumbRows
	onRemove = y == nameRow && col == tileWidth()-2
	return first + slot, onRemove, true
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case SelectionFlashMsg:
		c.textSel.flashing = false
		return c, nil

	case tea.MouseWheelMsg:
		c.ClearSelection()
		var cmd tea.Cmd
		c.viewport, cmd = c.viewport.Update(msg)
		return c, cmd

	case spinner.TickMsg:
		if !c.waiting {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		atBottom := c.viewport.AtBottom()
		c.updateContent()
		if atBottom {
			c.viewport.GotoBottom()
		}
		return c, cmd

	case tea.KeyPressMsg:
		if !c.focused {
			return c, nil
		}
		switch msg.String() {
		case keys.PgUp, keys.PgDown, keys.CtrlUp, keys.CtrlDown, keys.CtrlU, keys.CtrlD:
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		case keys.ShiftLeft:
			c.MoveSelection(-1)
			return c, nil
		case keys.ShiftRight:
			c.MoveSelection(1)
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	if c.focused {
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	if len(c.snap.Messages) == 0 && !c.waiting {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render(wrapText("Ask for a component change. Attach screenshots with ctrl+v, ctrl+o or by dropping files.", wrapWidth)))
	}

	for i, msg := range c.snap.Messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(c.renderMessage(msg, wrapWidth))
	}

	if c.waiting {
		if len(c.snap.Messages) > 0 {
			sb.WriteString("\n\n")
		}
		elapsed := c.now().Sub(c.waitStart)
		stopwatchStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
		sb.WriteString(ChatAssistantStyle.Render(c.assistant + ":"))
		sb.WriteString("\n")
		sb.WriteString(c.spinner.View() + " ")
		sb.WriteString(StatusLoadingStyle.Render(c.verb + "... "))
		sb.WriteString(stopwatchStyle.Render(formatElapsed(elapsed)))
		sb.WriteString(MutedStyle.Render("  (esc to cancel)"))
	}

	c.viewport.SetContent(sb.String())
}

func (c *Chat) renderMessage(msg composer.Message, wrapWidth int) string {
	var sb strings.Builder

	roleStyle, roleName := ChatUserStyle, "You"
	if msg.Role == composer.RoleAssistant {
		roleStyle, roleName = ChatAssistantStyle, c.assistant
	}
	sb.WriteString(roleStyle.Render(roleName + ":"))
	sb.WriteString(" ")
	sb.WriteString(ChatTimeStyle.Render(msg.CreatedAt.Format("15:04")))

	if content := strings.TrimSpace(msg.Content); content != "" {
		sb.WriteString("\n")
		sb.WriteString(RenderMarkdown(content, wrapWidth))
	}
	if msg.HasImages() {
		sb.WriteString("\n")
		sb.WriteString(c.renderMessageImages(msg.Images, wrapWidth))
	}
	return sb.String()
}

// renderMessageImages lays thumbnails out left to right, wrapping rows.
func (c *Chat) renderMessageImages(images []composer.ImageRef, wrapWidth int) string {
	var rows []string
	var row []string
	used := 0
	for _, img := range images {
		caption := img.Name
		if blob, ok := c.handles.Resolve(img.Handle); ok {
			caption = preview.Caption(img.Name, len(blob.Data))
		}
		cell := lipgloss.JoinVertical(lipgloss.Left,
			c.previews.Thumbnail(img.Handle, MessageThumbCols, MessageThumbRows),
			AttachmentNameStyle.Render(runewidth.Truncate(caption, MessageThumbCols, "…")),
		)
		w := lipgloss.Width(cell) + 1
		if used > 0 && used+w > wrapWidth {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, cell, " ")
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func (c *Chat) renderStrip() string {
	atts := c.snap.Attachments
	first, count := c.visibleTiles()

	tiles := make([]string, 0, count*2+1)
	for i := first; i < first+count; i++ {
		att := atts[i]
		style := AttachmentTileStyle
		if i == c.selected {
			style = AttachmentActiveStyle
		}
		name := runewidth.FillRight(runewidth.Truncate(att.Blob.Name, StagedThumbCols-2, "…"), StagedThumbCols-2)
		body := lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Width(StagedThumbCols).Height(StagedThumbRows).
				Render(c.previews.Thumbnail(att.Handle, StagedThumbCols, StagedThumbRows)),
			AttachmentNameStyle.Render(name)+" "+StatusErrorStyle.Render("✕"),
		)
		tiles = append(tiles, style.Width(tileWidth()).Render(body), " ")
	}
	if hidden := len(atts) - count; hidden > 0 {
		tiles = append(tiles, MutedStyle.Render(fmt.Sprintf("+%d", hidden)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tiles...)
}

// borderLabel is the "N messages" line shown in the timeline's top border.
func (c *Chat) borderLabel() string {
	n := len(c.snap.Messages)
	count := fmt.Sprintf("%d messages", n)
	if n == 1 {
		count = "1 message"
	}
	return count + " · " + pasteHint
}

// withBorderLabel writes label over the top border of a rendered panel,
// two cells in from the corner. The label is cut to fit.
func withBorderLabel(panel, label string) string {
	top, rest, ok := strings.Cut(panel, "\n")
	if !ok {
		return panel
	}
	width := ansi.StringWidth(top)
	room := width - 6 // corners, one rule cell and a space on each side
	if room < 1 {
		return panel
	}
	label = " " + ansi.Truncate(label, room, "…") + " "
	end := 2 + ansi.StringWidth(label)
	return ansi.Cut(top, 0, 2) + PanelTitleStyle.UnsetPadding().Render(label) + ansi.Cut(top, end, width) + "\n" + rest
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}
	timeline := panelStyle.Width(c.width).Height(c.timelineHeight()).Render(c.selectionView(c.viewport.View()))
	timeline = withBorderLabel(timeline, c.borderLabel())

	parts := []string{timeline}
	if c.stripHeight() > 0 {
		parts = append(parts, lipgloss.NewStyle().Height(AttachmentStripHeight).Render(c.renderStrip()))
	}

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	body := c.input.View()
	if c.snap.State.DragActive {
		inputStyle = ChatInputDragStyle
		hint := DropHintStyle.Render(dropHint)
		body = lipgloss.Place(c.input.Width(), TextareaHeight, lipgloss.Center, lipgloss.Center, hint)
	}
	parts = append(parts, inputStyle.Width(c.width).Render(body))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
