package modals

import (
	"os"
	"strings"

	"charm.land/bubbles/v2/filepicker"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/keys"
)

// =============================================================================
// FilePickerState - Browse the filesystem for an image to attach
// =============================================================================

// ImageExtensions are the files the picker lets the user select.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp"}

const filePickerChrome = 6 // title, path, help and margins

type FilePickerState struct {
	picker   filepicker.Model
	selected string
	rejected string
}

func (*FilePickerState) modalState() {}

func (s *FilePickerState) PreferredWidth() int { return ModalWidthWide }

// SetSize fits the listing into the space the container offers.
func (s *FilePickerState) SetSize(width, height int) {
	h := height - filePickerChrome
	if h < 3 {
		h = 3
	}
	s.picker.SetHeight(h)
}

func (s *FilePickerState) Title() string { return "Attach Image" }

func (s *FilePickerState) Help() string {
	return "↑/↓: navigate  →/Enter: open  ←: up  Enter: attach  Esc: cancel"
}

func (s *FilePickerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	dir := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render(TruncatePath(s.picker.CurrentDirectory, ModalWidthWide-6))
	parts := []string{title, dir, s.picker.View()}
	if s.rejected != "" {
		parts = append(parts, StatusErrorStyle.Render(s.rejected+" is not an image"))
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Update forwards navigation to the picker. Escape is left to the app so it
// closes the modal instead of walking up a directory.
func (s *FilePickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == keys.Escape {
		return s, nil
	}
	var cmd tea.Cmd
	s.picker, cmd = s.picker.Update(msg)
	if ok, path := s.picker.DidSelectFile(msg); ok {
		s.selected = path
		s.rejected = ""
	} else if ok, path := s.picker.DidSelectDisabledFile(msg); ok {
		s.rejected = path
	}
	return s, cmd
}

// Init returns the command that reads the starting directory.
func (s *FilePickerState) Init() tea.Cmd {
	return s.picker.Init()
}

// Selected returns the chosen file, or "" until the user picks one.
func (s *FilePickerState) Selected() string {
	return s.selected
}

// NewFilePickerState opens the picker in dir, or the working directory when
// dir is empty.
func NewFilePickerState(dir string) *FilePickerState {
	if strings.TrimSpace(dir) == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		} else {
			dir = "."
		}
	}
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = ImageExtensions
	fp.ShowPermissions = false
	fp.ShowSize = true
	fp.AutoHeight = false
	fp.SetHeight(HelpModalMaxVisible)
	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(ColorPrimary)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(ColorSecondary)
	fp.Styles.File = lipgloss.NewStyle().Foreground(ColorText)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	fp.Styles.DisabledFile = lipgloss.NewStyle().Foreground(ColorTextMuted)
	return &FilePickerState{picker: fp}
}
