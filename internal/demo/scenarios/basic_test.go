package scenarios

import (
	"os"
	"testing"

	"github.com/Sefyu24/Componentcn/internal/app"
	"github.com/Sefyu24/Componentcn/internal/composer"
	"github.com/Sefyu24/Componentcn/internal/demo"
	"github.com/Sefyu24/Componentcn/internal/logger"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Discard()
	code := m.Run()
	ui.SetTheme(ui.DefaultTheme)
	logger.Reset()
	os.Exit(code)
}

func TestAll(t *testing.T) {
	scenarios := All()

	if len(scenarios) != 2 {
		t.Errorf("All() should return 2 scenarios, got %d", len(scenarios))
	}

	seen := map[string]bool{}
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
		if seen[s.Name] {
			t.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"compose", true},
		{"tour", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := Get(tt.name) != nil
			if found != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
		})
	}
}

func TestComposeScenario(t *testing.T) {
	executor := demo.NewExecutor(demo.DefaultExecutorConfig())
	frames, err := executor.Run(Compose)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(frames) == 0 {
		t.Fatal("no frames captured")
	}

	msgs := executor.Model().Composer().Messages()
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want 4", len(msgs))
	}
	// The dropped desktop screenshot was removed before sending
	var names []string
	for _, img := range msgs[0].Images {
		names = append(names, img.Name)
	}
	if len(names) != 2 || names[0] != "screenshot.png" || names[1] != "login-mobile.png" {
		t.Errorf("sent images = %v, want [screenshot.png login-mobile.png]", names)
	}
	if msgs[1].Role != composer.RoleAssistant {
		t.Errorf("second message role = %v, want assistant", msgs[1].Role)
	}
	if msgs[2].HasImages() {
		t.Error("the follow-up should carry no images")
	}
}

func TestTourScenario(t *testing.T) {
	executor := demo.NewExecutor(demo.DefaultExecutorConfig())
	if _, err := executor.Run(Tour); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	m := executor.Model()
	if m.ActiveTab() != app.TabCalendar {
		t.Errorf("tour should end on the calendar, got %v", m.ActiveTab())
	}
	if m.Button().Clicks() == 0 {
		t.Error("the button should have been clicked")
	}
	if slot, _ := m.Calendar().SelectedSlot(); slot != "09:30 AM" {
		t.Errorf("booked slot = %q, want %q", slot, "09:30 AM")
	}
	want := demo.DemoTime.AddDate(0, 0, 2)
	if got, ok := m.Calendar().SelectedDate(); !ok || got.Day() != want.Day() {
		t.Errorf("booked date = %v, want %v", got, want)
	}
}
