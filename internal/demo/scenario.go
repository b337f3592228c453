// Package demo drives the playground headlessly from scripted scenarios. It
// uses the same fakes as the tests (a scripted assistant, an in-memory
// clipboard, a fixed clock) so runs are deterministic and need no terminal.
package demo

import (
	"strconv"
	"time"

	"github.com/Sefyu24/Componentcn/internal/config"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepPaste sends a bracketed paste of plain text.
	StepPaste
	// StepPasteImage puts a fixture image on the clipboard and presses ctrl+v.
	StepPasteImage
	// StepDrop drops fixture files onto the composer the way a terminal
	// reports a drag: as a paste of their paths.
	StepDrop
	// StepReply blocks until the assistant reply lands.
	StepReply
	// StepClick clicks the left mouse button at a cell.
	StepClick
	// StepFlash shows a footer flash message.
	StepFlash
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepPaste
	Text string

	// For StepWait
	Duration time.Duration

	// For StepPasteImage and StepDrop: fixture file names
	Files []string

	// For StepClick
	X, Y int

	// For StepFlash
	FlashText string
	FlashType ui.FlashType

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Tab shown first (a config tab name)
	Tab string

	// AssistantName labels assistant turns
	AssistantName string

	// Replies are handed out in order, one per submission. Once exhausted
	// the built-in canned replies take over.
	Replies []string

	// Theme to render with; empty keeps the current theme
	Theme string
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Tab:           config.TabChat,
		AssistantName: "Assistant",
	}
}

// Validate checks that the scenario is valid.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Theme != "" && !ui.IsThemeName(s.Setup.Theme) {
		return &ValidationError{Field: "Setup.Theme", Message: "unknown theme " + s.Setup.Theme}
	}
	for i, step := range s.Steps {
		if (step.Type == StepPasteImage || step.Type == StepDrop) && len(step.Files) == 0 {
			return &ValidationError{Field: "Steps", Message: "step " + strconv.Itoa(i) + " names no files"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// Paste creates a plain text paste step.
func Paste(text string) Step {
	return Step{
		Type: StepPaste,
		Text: text,
	}
}

// PasteImage creates a clipboard image paste step.
func PasteImage(name string) Step {
	return Step{
		Type:  StepPasteImage,
		Files: []string{name},
	}
}

// Drop creates a drag-and-drop step for one or more fixture files.
func Drop(names ...string) Step {
	return Step{
		Type:  StepDrop,
		Files: names,
	}
}

// Reply waits for the assistant to answer the last submission.
func Reply() Step {
	return Step{Type: StepReply}
}

// Click creates a left click step.
func Click(x, y int) Step {
	return Step{
		Type: StepClick,
		X:    x,
		Y:    y,
	}
}

// Flash creates a footer flash step.
func Flash(text string, flashType ui.FlashType) Step {
	return Step{
		Type:      StepFlash,
		FlashText: text,
		FlashType: flashType,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
