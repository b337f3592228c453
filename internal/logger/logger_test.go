package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(data)
}

func TestInit_WritesHeader(t *testing.T) {
	path := setupTestLogger(t)

	if got := Path(); got != path {
		t.Errorf("Path() = %q, want %q", got, path)
	}
	if !strings.Contains(readLog(t, path), "Logger initialized") {
		t.Error("expected init line in log file")
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	path := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if got := Path(); got != path {
		t.Errorf("Path() changed to %q after second Init", got)
	}
}

func TestLevels(t *testing.T) {
	path := setupTestLogger(t)

	Debug("hidden %d", 1)
	Info("visible %s", "info")
	Warn("visible warn")
	Error("visible error")

	content := readLog(t, path)
	if strings.Contains(content, "hidden 1") {
		t.Error("debug message written at info level")
	}
	for _, want := range []string{"visible info", "visible warn", "visible error"} {
		if !strings.Contains(content, want) {
			t.Errorf("log missing %q", want)
		}
	}

	SetDebug(true)
	Debug("now shown")
	if !strings.Contains(readLog(t, path), "now shown") {
		t.Error("debug message missing after SetDebug(true)")
	}
}

func TestComponentLogger(t *testing.T) {
	path := setupTestLogger(t)

	log := ComponentLogger("Composer")
	log.Info("staged", "id", "abc")

	content := readLog(t, path)
	if !strings.Contains(content, "component=Composer") {
		t.Errorf("component attribute missing: %s", content)
	}
	if !strings.Contains(content, "id=abc") {
		t.Errorf("structured attribute missing: %s", content)
	}
}

func TestDiscard(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Discard()
	Info("goes nowhere")
	if got := Path(); got != "" {
		t.Errorf("Path() = %q, want empty when discarding", got)
	}
	if ComponentLogger("x") == nil {
		t.Error("ComponentLogger returned nil while discarding")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "log"))
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
