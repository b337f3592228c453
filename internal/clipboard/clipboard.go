// Package clipboard reads images from the system clipboard for the composer's
// paste source.
package clipboard

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"sync"
	"time"

	"golang.design/x/clipboard"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/Sefyu24/Componentcn/internal/composer"
	perrors "github.com/Sefyu24/Componentcn/internal/errors"
	"github.com/Sefyu24/Componentcn/internal/logger"
)

// MaxImageSize is the largest clipboard image accepted, in bytes after PNG
// re-encoding.
const MaxImageSize = 8 << 20

// MaxImageDimension is the maximum allowed width or height.
const MaxImageDimension = 8000

// Reader is the clipboard surface the app needs.
type Reader interface {
	// ReadImage returns the clipboard image, or nil when the clipboard holds
	// no image.
	ReadImage() (*composer.Payload, error)
	WriteText(text string) error
}

// System reads the OS clipboard through golang.design/x/clipboard.
type System struct {
	once sync.Once
	err  error
	now  func() time.Time
}

// NewSystem creates a System reader. The clipboard is initialised lazily on
// first use.
func NewSystem() *System {
	return &System{now: time.Now}
}

func (s *System) init() error {
	s.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			logger.Warn("Clipboard: Failed to initialize: %v", err)
			s.err = perrors.ClipboardUnavailable(err)
			return
		}
		logger.Debug("Clipboard: Initialized successfully")
	})
	return s.err
}

// ReadImage reads image bytes from the clipboard and normalises them to PNG.
func (s *System) ReadImage() (*composer.Payload, error) {
	if err := s.init(); err != nil {
		return nil, err
	}

	data := clipboard.Read(clipboard.FmtImage)
	if len(data) == 0 {
		logger.Debug("Clipboard: No image data found")
		return nil, nil
	}
	logger.Debug("Clipboard: Read %d bytes of image data", len(data))

	p, err := Normalize(data, PasteName(s.now()))
	if err != nil {
		logger.Warn("Clipboard: %v", err)
		return nil, err
	}
	return &p, nil
}

// WriteText puts text on the clipboard.
func (s *System) WriteText(text string) error {
	if err := s.init(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: Wrote %d bytes of text", len(text))
	return nil
}

// PasteName is the display name given to a pasted image.
func PasteName(t time.Time) string {
	return fmt.Sprintf("pasted-%s.png", t.Format("20060102-150405"))
}

// Normalize decodes any supported image format and re-encodes it as PNG so
// every pasted image reaches the composer in one format.
func Normalize(data []byte, name string) (composer.Payload, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return composer.Payload{}, perrors.ImageDecodeFailed("clipboard image", err)
	}

	b := img.Bounds()
	if b.Dx() > MaxImageDimension || b.Dy() > MaxImageDimension {
		return composer.Payload{}, perrors.E(perrors.Op("clipboard.Normalize"), perrors.KindInvalid,
			fmt.Sprintf("image dimensions too large: %dx%d (max %d)", b.Dx(), b.Dy(), MaxImageDimension))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return composer.Payload{}, perrors.E(perrors.Op("clipboard.Normalize"), perrors.KindIO, "encode png", err)
	}
	if buf.Len() > MaxImageSize {
		return composer.Payload{}, perrors.E(perrors.Op("clipboard.Normalize"), perrors.KindInvalid,
			fmt.Sprintf("image too large: %d bytes (max %d)", buf.Len(), MaxImageSize))
	}

	logger.Debug("Clipboard: Normalized %s %dx%d to %d bytes of PNG", format, b.Dx(), b.Dy(), buf.Len())
	return composer.Payload{
		Name:      name,
		MediaType: "image/png",
		Data:      buf.Bytes(),
	}, nil
}
