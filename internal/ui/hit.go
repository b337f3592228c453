package ui

import "github.com/Sefyu24/Componentcn/internal/composer"

// Rect is a screen-cell rectangle. It implements composer.Region so mouse
// hit-testing can feed the composer's drag tracker directly.
type Rect struct {
	X, Y, W, H int
}

// Point returns the 1x1 rect under a mouse cell.
func Point(x, y int) Rect {
	return Rect{X: x, Y: y, W: 1, H: 1}
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Has reports whether cell (x, y) lies inside r.
func (r Rect) Has(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Contains reports whether other lies entirely inside r. Only Rects can be
// contained; a nil or foreign region never is.
func (r Rect) Contains(other composer.Region) bool {
	o, ok := other.(Rect)
	if !ok || r.Empty() || o.Empty() {
		return false
	}
	return o.X >= r.X && o.Y >= r.Y && o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

var _ composer.Region = Rect{}
