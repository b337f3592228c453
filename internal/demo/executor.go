package demo

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/app"
	"github.com/Sefyu24/Componentcn/internal/composer"
	"github.com/Sefyu24/Componentcn/internal/config"
	"github.com/Sefyu24/Componentcn/internal/keys"
	"github.com/Sefyu24/Componentcn/internal/logger"
)

// DemoTime is the clock every demo runs at, so calendars and message
// timestamps render the same on every run.
var DemoTime = time.Date(2026, time.March, 18, 9, 41, 0, 0, time.UTC)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key, character and paste
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// ReplyDelay is the pause shown after a reply lands (default: 200ms)
	ReplyDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		ReplyDelay:       200 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config    ExecutorConfig
	model     *app.Model
	clipboard *fixtureClipboard
	replies   *scriptedReplier
	dir       string // Fixture files live here for the length of a run
	frames    []Frame

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Cleanup closes the model and removes the fixture directory.
func (e *Executor) Cleanup() {
	if e.model != nil {
		e.model.Close()
	}
	if e.dir != "" {
		if err := os.RemoveAll(e.dir); err != nil {
			logger.Warn("Demo: failed to remove fixtures in %s: %v", e.dir, err)
		}
		e.dir = ""
	}
}

// Model returns the model of the last run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		e.Cleanup()
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.Cleanup()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	dir, err := os.MkdirTemp("", "componentcn-demo-")
	if err != nil {
		return err
	}
	e.dir = dir
	e.frames = []Frame{}
	e.currentAnnotation = ""

	cfg := config.Default()
	cfg.DefaultTab = scenario.Setup.Tab
	if scenario.Setup.AssistantName != "" {
		cfg.SetAssistantName(scenario.Setup.AssistantName)
	}
	if scenario.Setup.Theme != "" {
		cfg.SetTheme(scenario.Setup.Theme)
	}

	e.clipboard = &fixtureClipboard{}
	e.replies = &scriptedReplier{replies: scenario.Setup.Replies}

	e.model = app.New(cfg, "demo",
		app.WithClipboard(e.clipboard),
		app.WithReplier(e.replies),
		app.WithClock(func() time.Time { return DemoTime }),
		app.WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	e.update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
	return nil
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			if ch == ' ' {
				e.sendKey(keys.Space)
			} else {
				e.sendKey(string(ch))
			}
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepPaste:
		e.paste(step.Text)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepPasteImage:
		data, err := fixtureImage(step.Files[0])
		if err != nil {
			return err
		}
		e.clipboard.set(&composer.Payload{Name: step.Files[0], MediaType: "image/png", Data: data})
		e.sendKey(keys.CtrlV)
		e.clipboard.set(nil)
		e.captureFrame(index, 200*time.Millisecond)

	case StepDrop:
		quoted := make([]string, 0, len(step.Files))
		for _, name := range step.Files {
			path, err := e.writeFixture(name)
			if err != nil {
				return err
			}
			quoted = append(quoted, strconv.Quote(path))
		}
		e.paste(strings.Join(quoted, " "))
		e.captureFrame(index, 200*time.Millisecond)

	case StepReply:
		if !e.model.AwaitReply() {
			return fmt.Errorf("no reply pending")
		}
		e.captureFrame(index, e.config.ReplyDelay)

	case StepClick:
		e.update(tea.MouseClickMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.update(tea.MouseReleaseMsg{X: step.X, Y: step.Y, Button: tea.MouseLeft})
		e.captureFrame(index, 100*time.Millisecond)

	case StepFlash:
		// The expiry tick is a timer; demos never run commands, so the
		// flash stays up until something replaces it
		e.model.ShowFlash(step.FlashText, step.FlashType)
		e.captureFrame(index, 100*time.Millisecond)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

// paste sends a complete bracketed paste.
func (e *Executor) paste(content string) {
	e.update(tea.PasteStartMsg{})
	e.update(tea.PasteMsg{Content: content})
	e.update(tea.PasteEndMsg{})
}

// writeFixture writes the named fixture image into the run directory.
func (e *Executor) writeFixture(name string) (string, error) {
	data, err := fixtureImage(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(e.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write fixture %s: %w", name, err)
	}
	return path, nil
}

// fixtureImage renders a small two-colour gradient whose colours derive from
// the name, so each fixture gets a recognisable thumbnail.
func fixtureImage(name string) ([]byte, error) {
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	from := color.RGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 0xff}
	to := color.RGBA{R: ^from.R, G: ^from.G, B: ^from.B, A: 0xff}

	const w, ht = 48, 32
	img := image.NewRGBA(image.Rect(0, 0, w, ht))
	for y := range ht {
		for x := range w {
			t := float64(x+y) / float64(w+ht-2)
			img.Set(x, y, color.RGBA{
				R: lerp(from.R, to.R, t),
				G: lerp(from.G, to.G, t),
				B: lerp(from.B, to.B, t),
				A: 0xff,
			})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode fixture %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// fixtureClipboard holds whatever image the current step put on it.
type fixtureClipboard struct {
	mu    sync.Mutex
	image *composer.Payload
}

func (c *fixtureClipboard) set(p *composer.Payload) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = p
}

func (c *fixtureClipboard) ReadImage() (*composer.Payload, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image, nil
}

func (c *fixtureClipboard) WriteText(string) error { return nil }

// scriptedReplier answers instantly from a fixed list, then falls back to
// the canned replies.
type scriptedReplier struct {
	mu      sync.Mutex
	replies []string
}

func (r *scriptedReplier) Reply(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.replies) == 0 {
		return composer.ReplyFor(strings.TrimSpace(text)), nil
	}
	reply := r.replies[0]
	r.replies = r.replies[1:]
	return reply, nil
}

// keyPress converts a key string to a tea.KeyPressMsg.
// Duplicated from the app tests, which can't be imported.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.ShiftLeft:
		return tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModShift}
	case keys.ShiftRight:
		return tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModShift}
	case keys.PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case keys.PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlV:
		return tea.KeyPressMsg{Code: 'v', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlX:
		return tea.KeyPressMsg{Code: 'x', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
