package ui

import (
	"log/slog"
	"sync"

	"github.com/Sefyu24/Componentcn/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	ContentWidth  int

	log *slog.Logger
	mu  sync.Mutex
}

var (
	ctx     *ViewContext
	ctxOnce sync.Once
)

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
			log:          logger.ComponentLogger("ui"),
		}
		ctx.log.Debug("ViewContext initialized")
	})
	return ctx
}

// Log writes a structured debug line tagged with the ui component.
func (v *ViewContext) Log(msg string, args ...any) {
	v.log.Debug(msg, args...)
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// Called from the event loop on every resize.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight
	v.ContentWidth = width

	v.log.Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"contentWidth", v.ContentWidth,
	)
}

// ContentTop returns the screen row where the content area starts.
func (v *ViewContext) ContentTop() int {
	return v.HeaderHeight
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
