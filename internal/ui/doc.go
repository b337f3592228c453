// Package ui provides the user interface components for the componentcn
// playground.
//
// # Overview
//
// The ui package implements the visual components of the playground using
// the Bubble Tea framework and Lipgloss styling library. Views hold no
// domain state of their own: the chat view renders composer snapshots, and
// the button, roster and calendar views wrap their component packages.
//
// # Layout System
//
// The layout is organized as follows:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header: title and tabs (1 line)                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Active tab: Chat | Button | Team | Calendar       │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer: key hints or flash message (1 line)         │
//	└─────────────────────────────────────────────────────┘
//
// The chat tab stacks a scrollable timeline, an attachment strip (only while
// images are staged) and the input box. The strip and input together form
// the drop zone used for drag tracking.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Gradient title plus numbered tabs. TabAt maps mouse columns to
// tabs.
//
// Footer: Context-aware key hints, replaced by a flash message when one is
// active.
//
// Chat: Timeline viewport, attachment strip and textarea. TileAt and
// DropZone expose the hit geometry the app needs for mouse handling.
//
// ButtonView, RosterView, CalendarView: Stage views for the other tabs.
// Each exposes Origin/HitTest helpers for clicks and a tick message for
// animation.
//
// Modal: Popup container for help, settings, button props and the image
// file picker. The modal states live in the modals subpackage.
//
// # Styles
//
// All styles are defined in styles.go and regenerated from the active theme
// (theme.go) whenever the theme changes.
package ui
