package ui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/button"
)

// sourcePanelHeight is the highlighted JSX snippet under the stage.
const sourcePanelHeight = 3 + BorderSize

// ConfettiTickMsg advances the confetti animation by one frame.
type ConfettiTickMsg time.Time

// ConfettiTick schedules the next confetti frame.
func ConfettiTick() tea.Cmd {
	return tea.Tick(time.Second/button.ConfettiFPS, func(t time.Time) tea.Msg {
		return ConfettiTickMsg(t)
	})
}

// ButtonView is the button tab: a stage with the live button and its
// confetti, and the equivalent JSX below.
type ButtonView struct {
	Button *button.Button

	confetti  *button.Confetti
	animating bool

	width, height    int
	originX, originY int
	focused          bool
}

// NewButtonView wraps b. A nil rng seeds one from the runtime.
func NewButtonView(b *button.Button, rng *rand.Rand) *ButtonView {
	return &ButtonView{
		Button:   b,
		confetti: button.NewConfetti(rng),
	}
}

// SetSize sets the tab dimensions.
func (v *ButtonView) SetSize(width, height int) {
	v.width, v.height = width, height
}

// SetOrigin records the tab's top-left screen cell for hit-testing.
func (v *ButtonView) SetOrigin(x, y int) {
	v.originX, v.originY = x, y
}

// SetFocused marks the button as keyboard focused.
func (v *ButtonView) SetFocused(focused bool) {
	v.focused = focused
}

func (v *ButtonView) stageSize() (w, h int) {
	w = v.width - BorderSize
	h = v.height - sourcePanelHeight - BorderSize
	return max(w, 1), max(h, 1)
}

func (v *ButtonView) renderButton() string {
	return v.Button.Render(CurrentTheme().ButtonPalette(), v.focused)
}

// buttonOffset is where the button sits inside the stage.
func (v *ButtonView) buttonOffset() (x, y int) {
	sw, sh := v.stageSize()
	b := v.renderButton()
	return max((sw-lipgloss.Width(b))/2, 0), max((sh-lipgloss.Height(b))/2, 0)
}

// ButtonRect is the button's screen area.
func (v *ButtonView) ButtonRect() Rect {
	b := v.renderButton()
	x, y := v.buttonOffset()
	return Rect{
		X: v.originX + 1 + x,
		Y: v.originY + 1 + y,
		W: lipgloss.Width(b),
		H: lipgloss.Height(b),
	}
}

// Fire clicks the button. The returned command drives the confetti when a
// burst starts.
func (v *ButtonView) Fire() tea.Cmd {
	if !v.Button.Click() {
		return nil
	}
	sw, sh := v.stageSize()
	v.confetti.Emit(float64(sw)/2, float64(sh)/2, button.DefaultBursts()...)
	if v.animating {
		return nil
	}
	v.animating = true
	return ConfettiTick()
}

// Tick advances the confetti one frame.
func (v *ButtonView) Tick() tea.Cmd {
	if !v.animating {
		return nil
	}
	v.confetti.Step()
	if v.confetti.Done() {
		v.animating = false
		return nil
	}
	return ConfettiTick()
}

// Animating reports whether confetti is in flight.
func (v *ButtonView) Animating() bool {
	return v.animating
}

// Source returns the JSX equivalent of the current button.
func (v *ButtonView) Source() string {
	b := v.Button
	attrs := []string{"<Button"}
	if b.Variant != button.VariantDefault {
		attrs = append(attrs, fmt.Sprintf("variant=%q", b.Variant))
	}
	if b.Size != button.SizeDefault {
		attrs = append(attrs, fmt.Sprintf("size=%q", b.Size))
	}
	if b.Disabled {
		attrs = append(attrs, "disabled")
	}
	if !b.Confetti {
		attrs = append(attrs, "confetti={false}")
	}
	return strings.Join(attrs, " ") + ">" + b.Label + "</Button>"
}

// View renders the button tab.
func (v *ButtonView) View() string {
	sw, sh := v.stageSize()
	stage := v.confetti.Render(sw, sh)
	x, y := v.buttonOffset()
	stage = overlay(stage, v.renderButton(), x, y)

	clicks := MutedStyle.Render(fmt.Sprintf("clicked %d×", v.Button.Clicks()))
	stagePanel := StageStyle.Width(v.width).Height(sh + BorderSize).Render(stage)
	stagePanel = overlay(stagePanel, clicks, 2, sh+BorderSize-1)

	src := HighlightCode(v.Source(), "tsx")
	sourcePanel := SourcePanelStyle.Width(v.width).Height(sourcePanelHeight).Render(src)

	return lipgloss.JoinVertical(lipgloss.Left, stagePanel, sourcePanel)
}
