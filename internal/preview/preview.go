// Package preview renders staged and committed images as terminal thumbnails.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/Sefyu24/Componentcn/internal/composer"
	perrors "github.com/Sefyu24/Componentcn/internal/errors"
	"github.com/Sefyu24/Componentcn/internal/logger"
)

// Unavailable is shown in place of an image whose handle was revoked or whose
// bytes can't be decoded.
const Unavailable = "[image unavailable]"

// halfBlock paints the top pixel with the foreground and the bottom pixel
// with the background, giving two pixels per cell vertically.
const halfBlock = "▀"

var unavailableStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#6B7280")).
	Italic(true)

type cacheKey struct {
	handle     composer.Handle
	cols, rows int
}

// Renderer resolves handles against a store and caches rendered thumbnails.
type Renderer struct {
	store composer.HandleStore

	mu    sync.Mutex
	cache map[cacheKey]string
}

// NewRenderer creates a renderer over store.
func NewRenderer(store composer.HandleStore) *Renderer {
	return &Renderer{
		store: store,
		cache: make(map[cacheKey]string),
	}
}

// Thumbnail renders the image behind h in at most cols x rows cells.
// Revoked handles render as Unavailable.
func (r *Renderer) Thumbnail(h composer.Handle, cols, rows int) string {
	blob, ok := r.store.Resolve(h)
	if !ok {
		return r.unavailable(cols)
	}

	key := cacheKey{h, cols, rows}
	r.mu.Lock()
	if s, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return s
	}
	r.mu.Unlock()

	img, err := Decode(blob)
	if err != nil {
		logger.Warn("Preview: %s: %v", blob.Name, err)
		return r.unavailable(cols)
	}
	s := Render(img, cols, rows)

	r.mu.Lock()
	r.cache[key] = s
	r.mu.Unlock()
	return s
}

// Prune drops cached thumbnails whose handles are no longer live.
func (r *Renderer) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for k := range r.cache {
		if _, ok := r.store.Resolve(k.handle); !ok {
			delete(r.cache, k)
			n++
		}
	}
	return n
}

// Cached returns the number of cached thumbnails.
func (r *Renderer) Cached() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

func (r *Renderer) unavailable(cols int) string {
	s := Unavailable
	if cols > 0 && cols < len(s) {
		s = s[:cols]
	}
	return unavailableStyle.Render(s)
}

// Decode decodes a payload's bytes into an image.
func Decode(p composer.Payload) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		return nil, perrors.ImageDecodeFailed(p.MediaType, err)
	}
	return img, nil
}

// Render scales img to fit cols x rows cells, keeping its aspect ratio, and
// draws it with half-block characters.
func Render(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	thumb := resize.Thumbnail(uint(cols), uint(rows*2), img, resize.Bilinear)
	b := thumb.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := opaque(thumb.At(x, y))
			style := lipgloss.NewStyle().Foreground(top)
			if y+1 < b.Max.Y {
				style = style.Background(opaque(thumb.At(x, y+1)))
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}

// Size reports the cell dimensions Render would produce.
func Size(img image.Image, cols, rows int) (w, h int) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	b := resize.Thumbnail(uint(cols), uint(rows*2), img, resize.Bilinear).Bounds()
	return b.Dx(), (b.Dy() + 1) / 2
}

// opaque flattens a pixel onto black so terminals get a solid colour.
func opaque(c color.Color) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := uint32(n.A)
	return color.RGBA{
		R: uint8(uint32(n.R) * a / 255),
		G: uint8(uint32(n.G) * a / 255),
		B: uint8(uint32(n.B) * a / 255),
		A: 255,
	}
}

// Caption formats the label shown under a thumbnail.
func Caption(name string, sizeBytes int) string {
	switch {
	case sizeBytes >= 1<<20:
		return fmt.Sprintf("%s (%.1f MB)", name, float64(sizeBytes)/(1<<20))
	case sizeBytes >= 1<<10:
		return fmt.Sprintf("%s (%d KB)", name, sizeBytes>>10)
	default:
		return fmt.Sprintf("%s (%d B)", name, sizeBytes)
	}
}
