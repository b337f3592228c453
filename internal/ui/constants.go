// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// TextareaHeight is the number of lines for the composer textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 60
	MinTerminalHeight = 20
)

// Thumbnail geometry, in terminal cells
const (
	// StagedThumbCols and StagedThumbRows size the tiles in the staging strip
	StagedThumbCols = 12
	StagedThumbRows = 4

	// AttachmentStripHeight is a tile: thumbnail + caption + border
	AttachmentStripHeight = StagedThumbRows + 1 + BorderSize

	// MessageThumbCols and MessageThumbRows size images inside the timeline
	MessageThumbCols = 20
	MessageThumbRows = 6
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// HelpModalMaxVisible is the number of help rows shown before scrolling
	HelpModalMaxVisible = 18
)
