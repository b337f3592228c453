package modals

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

// loadPicker runs the picker's directory read so it has entries to show.
func loadPicker(t *testing.T, s *FilePickerState) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init() returned nil command")
	}
	s.Update(cmd())
}

func TestFilePickerState_SelectsImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "shot.png"), []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFilePickerState(dir)
	loadPicker(t, s)

	if !strings.Contains(s.Render(), "shot.png") {
		t.Error("Render() does not list shot.png")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if got, want := s.Selected(), filepath.Join(dir, "shot.png"); got != want {
		t.Errorf("Selected() = %q, want %q", got, want)
	}
}

func TestFilePickerState_RejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewFilePickerState(dir)
	loadPicker(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.Selected() != "" {
		t.Errorf("Selected() = %q, want empty for a text file", s.Selected())
	}
	if !strings.Contains(s.Render(), "is not an image") {
		t.Error("Render() should explain the rejected selection")
	}
}

func TestFilePickerState_EscapeIsLeftToApp(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	s := NewFilePickerState(sub)
	loadPicker(t, s)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("escape should not reach the picker")
	}
	if s.picker.CurrentDirectory != sub {
		t.Errorf("CurrentDirectory = %q, want unchanged %q", s.picker.CurrentDirectory, sub)
	}
}

func TestNewFilePickerState_DefaultsToWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Skip("no working directory")
	}
	s := NewFilePickerState("")
	if s.picker.CurrentDirectory != wd {
		t.Errorf("CurrentDirectory = %q, want %q", s.picker.CurrentDirectory, wd)
	}
}
