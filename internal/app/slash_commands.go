package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Sefyu24/Componentcn/internal/composer"
	perrors "github.com/Sefyu24/Componentcn/internal/errors"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// SlashCommandAction represents a UI action to perform after handling a slash command.
type SlashCommandAction int

const (
	ActionNone           SlashCommandAction = iota
	ActionOpenHelp                          // Open the help modal
	ActionOpenFilePicker                    // Open the file picker modal
)

// SlashCommandResult represents the result of handling a slash command.
type SlashCommandResult struct {
	Handled  bool               // Whether the command was recognized and handled
	Response string             // Flashed in the footer
	IsError  bool               // Flash the response as an error
	Action   SlashCommandAction // Optional UI action to trigger
	Cmd      tea.Cmd            // Set by handleSlashCommand once the result is applied
}

// openHelpMsg asks the event loop to open the help modal.
type openHelpMsg struct{}

// slashCommandDef defines a slash command with its handler and help text.
type slashCommandDef struct {
	name        string
	usage       string
	description string
}

// getSlashCommands returns the registry of available slash commands.
// Using a function instead of a var avoids initialization cycles.
func getSlashCommands() []slashCommandDef {
	return []slashCommandDef{
		{
			name:        "attach",
			usage:       "/attach [glob]",
			description: "Stage images matching a glob, or browse for one",
		},
		{
			name:        "clear",
			usage:       "/clear",
			description: "Drop the draft and staged images",
		},
		{
			name:        "help",
			usage:       "/help",
			description: "Show keyboard shortcuts",
		},
		{
			name:        "theme",
			usage:       "/theme [name]",
			description: "List themes or switch to one",
		},
	}
}

// handleSlashCommand checks if the input is a slash command and handles it.
// Handled commands consume the draft; unknown commands are sent as ordinary
// messages.
func (m *Model) handleSlashCommand(input string) SlashCommandResult {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return SlashCommandResult{Handled: false}
	}

	// Parse command and arguments
	parts := strings.SplitN(strings.TrimPrefix(input, "/"), " ", 2)
	cmdName := strings.ToLower(parts[0])
	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	m.log.Debug("slash command detected", "command", cmdName, "args", args)

	var res SlashCommandResult
	switch cmdName {
	case "attach":
		res = handleAttachCommand(m, args)
	case "clear":
		res = handleClearCommand(m, args)
	case "help", "?":
		res = SlashCommandResult{Handled: true, Action: ActionOpenHelp}
	case "theme":
		res = handleThemeCommand(m, args)
	default:
		m.log.Debug("unknown slash command, sending as message", "command", cmdName)
		return SlashCommandResult{Handled: false}
	}

	m.composer.SetDraft("")
	res.Cmd = m.applySlashResult(res)
	return res
}

func (m *Model) applySlashResult(res SlashCommandResult) tea.Cmd {
	var cmds []tea.Cmd
	switch res.Action {
	case ActionOpenHelp:
		// Opened from Update; calling shortcutHelp here would make the
		// shortcut registry refer to itself
		cmds = append(cmds, func() tea.Msg { return openHelpMsg{} })
	case ActionOpenFilePicker:
		_, cmd := shortcutFilePicker(m)
		cmds = append(cmds, cmd)
	}
	if res.Response != "" {
		if res.IsError {
			cmds = append(cmds, m.ShowFlashError(res.Response))
		} else {
			cmds = append(cmds, m.ShowFlashInfo(res.Response))
		}
	}
	return tea.Batch(cmds...)
}

// handleAttachCommand stages every image a glob matches. Without a pattern
// it opens the file picker.
func handleAttachCommand(m *Model, pattern string) SlashCommandResult {
	if pattern == "" {
		return SlashCommandResult{Handled: true, Action: ActionOpenFilePicker}
	}
	paths, err := composer.ExpandGlob(pattern)
	if err != nil {
		msg := "Invalid pattern: " + pattern
		if perrors.GetKind(err) == perrors.KindNotFound {
			msg = "No files match " + pattern
		}
		return SlashCommandResult{Handled: true, Response: msg, IsError: true}
	}
	added := m.composer.Ingest(composer.SourcePicker, composer.LoadFiles(paths)...)
	if len(added) == 0 {
		return SlashCommandResult{Handled: true, Response: "None of the matching files are images", IsError: true}
	}
	return SlashCommandResult{Handled: true, Response: pluralImages(len(added)) + " attached"}
}

// handleClearCommand drops the draft and every staged attachment.
func handleClearCommand(m *Model, _ string) SlashCommandResult {
	n := len(m.composer.Attachments())
	m.composer.Reset()
	if n == 0 {
		return SlashCommandResult{Handled: true}
	}
	return SlashCommandResult{Handled: true, Response: pluralImages(n) + " removed"}
}

// handleThemeCommand lists the themes or switches to one.
func handleThemeCommand(m *Model, name string) SlashCommandResult {
	if name == "" {
		names := ui.ThemeNames()
		list := make([]string, len(names))
		for i, n := range names {
			list[i] = string(n)
		}
		return SlashCommandResult{
			Handled:  true,
			Response: fmt.Sprintf("Themes: %s (current: %s)", strings.Join(list, ", "), ui.CurrentThemeName()),
		}
	}
	if !ui.IsThemeName(name) {
		return SlashCommandResult{Handled: true, Response: "Unknown theme: " + name, IsError: true}
	}
	ui.SetThemeByName(name)
	m.config.SetTheme(name)
	if cmd := m.saveConfigOrFlash(); cmd != nil {
		return SlashCommandResult{Handled: true, Response: "Failed to save settings", IsError: true}
	}
	return SlashCommandResult{Handled: true, Response: "Theme set to " + ui.GetTheme(ui.ThemeName(name)).Name}
}

func pluralImages(n int) string {
	if n == 1 {
		return "1 image"
	}
	return fmt.Sprintf("%d images", n)
}
