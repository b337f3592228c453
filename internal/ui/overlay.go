package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay draws top over base with its top-left corner at cell (x, y). Rows
// of top that fall outside base are dropped.
func overlay(base, top string, x, y int) string {
	if x < 0 {
		x = 0
	}
	rows := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		r := y + i
		if r < 0 || r >= len(rows) {
			continue
		}
		left := ansi.Truncate(rows[r], x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(rows[r], x+ansi.StringWidth(line), "")
		rows[r] = left + line + right
	}
	return strings.Join(rows, "\n")
}
