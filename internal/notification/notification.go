// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/Sefyu24/Componentcn/internal/logger"
)

// AppName is the notification title.
const AppName = "componentcn"

var (
	mu       sync.Mutex
	notifier = beeep.Notify

	iconOnce  sync.Once
	iconBytes []byte
)

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notifier = fn
}

// ResetNotifier restores beeep.Notify.
func ResetNotifier() {
	mu.Lock()
	defer mu.Unlock()
	notifier = beeep.Notify
}

// icon renders the app badge: a violet rounded tile. Generated once.
func icon() []byte {
	iconOnce.Do(func() {
		const size = 64
		img := image.NewNRGBA(image.Rect(0, 0, size, size))
		fill := color.NRGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 0xFF}
		for y := range size {
			for x := range size {
				if cornerCut(x, y, size, 10) {
					continue
				}
				img.SetNRGBA(x, y, fill)
			}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			logger.Warn("Notification: encoding icon: %v", err)
			return
		}
		iconBytes = buf.Bytes()
	})
	return iconBytes
}

// cornerCut reports whether (x, y) falls outside a rounded corner of radius r.
func cornerCut(x, y, size, r int) bool {
	cx, cy := -1, -1
	switch {
	case x < r && y < r:
		cx, cy = r, r
	case x >= size-r && y < r:
		cx, cy = size-r-1, r
	case x < r && y >= size-r:
		cx, cy = r, size-r-1
	case x >= size-r && y >= size-r:
		cx, cy = size-r-1, size-r-1
	default:
		return false
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy > r*r
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	mu.Lock()
	fn := notifier
	mu.Unlock()

	logger.Debug("Notification: sending title=%q, message=%q", title, message)
	err := fn(title, message, icon())
	if err != nil {
		logger.Warn("Notification: failed to send: %v", err)
	}
	return err
}

// ReplyReady tells the user the assistant answered while the terminal was in
// the background.
func ReplyReady(assistant string) error {
	if assistant == "" {
		assistant = "Assistant"
	}
	return Send(AppName, assistant+" replied")
}
