package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/Sefyu24/Componentcn/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Discard()

	plain := lipgloss.NewStyle()
	SetStyles(plain, plain, plain, plain, plain,
		lipgloss.Color("#A78BFA"), lipgloss.Color("#60A5FA"), lipgloss.Color("#FAFAFA"),
		lipgloss.Color("#A1A1AA"), lipgloss.Color("#18181B"), lipgloss.Color("#FBBF24"),
		50, 256, 60)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
