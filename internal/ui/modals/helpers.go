package modals

import "github.com/charmbracelet/x/ansi"

// TruncatePath shortens path from the left so the end, which carries the
// directory name, stays visible.
func TruncatePath(path string, maxWidth int) string {
	w := ansi.StringWidth(path)
	if w <= maxWidth {
		return path
	}
	if maxWidth <= 1 {
		return "…"
	}
	return "…" + ansi.TruncateLeft(path, w-maxWidth+1, "")
}
