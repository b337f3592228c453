package demo

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/Sefyu24/Componentcn/internal/config"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name      string
		scenario  *Scenario
		wantErr   bool
		errField  string
		wantWidth int
	}{
		{
			name: "valid scenario",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
				Width:       100,
				Height:      30,
				Setup:       DefaultSetup(),
			},
			wantErr:   false,
			wantWidth: 100,
		},
		{
			name: "missing name",
			scenario: &Scenario{
				Description: "Test scenario",
			},
			wantErr:  true,
			errField: "Name",
		},
		{
			name: "default width and height",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
			},
			wantErr:   false,
			wantWidth: 120, // Default
		},
		{
			name: "unknown theme",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{Theme: "sepia"},
			},
			wantErr:  true,
			errField: "Setup.Theme",
		},
		{
			name: "drop without files",
			scenario: &Scenario{
				Name:  "test",
				Steps: []Step{{Type: StepDrop}},
			},
			wantErr:  true,
			errField: "Steps",
		},
		{
			name: "default setup",
			scenario: &Scenario{
				Name: "test",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil {
				if ve, ok := err.(*ValidationError); ok {
					if ve.Field != tt.errField {
						t.Errorf("Validate() error field = %v, want %v", ve.Field, tt.errField)
					}
				}
			}
			if !tt.wantErr && tt.wantWidth > 0 {
				if tt.scenario.Width != tt.wantWidth {
					t.Errorf("Width = %v, want %v", tt.scenario.Width, tt.wantWidth)
				}
			}
		})
	}
}

func TestStepBuilders(t *testing.T) {
	t.Run("Wait", func(t *testing.T) {
		step := Wait(500 * time.Millisecond)
		if step.Type != StepWait {
			t.Errorf("Type = %v, want StepWait", step.Type)
		}
		if step.Duration != 500*time.Millisecond {
			t.Errorf("Duration = %v, want 500ms", step.Duration)
		}
	})

	t.Run("Key", func(t *testing.T) {
		step := Key("enter")
		if step.Type != StepKey {
			t.Errorf("Type = %v, want StepKey", step.Type)
		}
		if step.Key != "enter" {
			t.Errorf("Key = %v, want enter", step.Key)
		}
	})

	t.Run("KeyWithDesc", func(t *testing.T) {
		step := KeyWithDesc("enter", "Submit the form")
		if step.Type != StepKey {
			t.Errorf("Type = %v, want StepKey", step.Type)
		}
		if step.Description != "Submit the form" {
			t.Errorf("Description = %v, want 'Submit the form'", step.Description)
		}
	})

	t.Run("Type", func(t *testing.T) {
		step := Type("hello world")
		if step.Type != StepTypeText {
			t.Errorf("Type = %v, want StepTypeText", step.Type)
		}
		if step.Text != "hello world" {
			t.Errorf("Text = %v, want 'hello world'", step.Text)
		}
	})

	t.Run("Paste", func(t *testing.T) {
		step := Paste("some text")
		if step.Type != StepPaste || step.Text != "some text" {
			t.Errorf("Paste() = %+v", step)
		}
	})

	t.Run("PasteImage", func(t *testing.T) {
		step := PasteImage("shot.png")
		if step.Type != StepPasteImage {
			t.Errorf("Type = %v, want StepPasteImage", step.Type)
		}
		if diff := cmp.Diff([]string{"shot.png"}, step.Files); diff != "" {
			t.Errorf("Files mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Drop", func(t *testing.T) {
		step := Drop("a.png", "b.png")
		if step.Type != StepDrop {
			t.Errorf("Type = %v, want StepDrop", step.Type)
		}
		if diff := cmp.Diff([]string{"a.png", "b.png"}, step.Files); diff != "" {
			t.Errorf("Files mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Click", func(t *testing.T) {
		step := Click(4, 7)
		if step.Type != StepClick || step.X != 4 || step.Y != 7 {
			t.Errorf("Click() = %+v", step)
		}
	})

	t.Run("Flash", func(t *testing.T) {
		step := Flash("saved", ui.FlashSuccess)
		if step.Type != StepFlash || step.FlashText != "saved" || step.FlashType != ui.FlashSuccess {
			t.Errorf("Flash() = %+v", step)
		}
	})
}

func TestDefaultSetup(t *testing.T) {
	setup := DefaultSetup()

	if setup.Tab != config.TabChat {
		t.Errorf("Tab = %q, want %q", setup.Tab, config.TabChat)
	}
	if setup.AssistantName == "" {
		t.Error("AssistantName should have a default")
	}
	if len(setup.Replies) != 0 {
		t.Errorf("Replies = %v, want none", setup.Replies)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "Name",
		Message: "is required",
	}

	expected := "validation error: Name: is required"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}
