package button

import (
	"image/color"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
)

// ConfettiFPS is the frame rate the app ticks a burst at.
const ConfettiFPS = 30

// ConfettiCompleteAfter is when the app reports a burst as finished, even
// though particles may still be falling.
const ConfettiCompleteAfter = 800 * time.Millisecond

// ConfettiColors are the particle colours.
var ConfettiColors = []color.Color{
	lipgloss.Color("#22c55e"),
	lipgloss.Color("#0ea5e9"),
	lipgloss.Color("#f97316"),
	lipgloss.Color("#facc15"),
}

// BurstOptions shape one emitter. Velocities are in cells per frame; angles
// in degrees with 90 pointing up.
type BurstOptions struct {
	ParticleCount int
	Angle         float64
	Spread        float64
	StartVelocity float64
	Decay         float64
	Gravity       float64
	Scalar        float64
	Ticks         int
}

// velocityScale converts the browser's pixel velocities to cells per frame.
const velocityScale = 0.05

// DefaultBursts are the three emitters fired on every click.
func DefaultBursts() []BurstOptions {
	base := BurstOptions{
		Angle:         90,
		StartVelocity: 45,
		Decay:         0.9,
		Gravity:       1.1,
		Scalar:        0.9,
		Ticks:         500,
	}

	a := base
	a.ParticleCount = 60
	a.Spread = 70

	b := base
	b.ParticleCount = 40
	b.Spread = 120
	b.Decay = 0.92
	b.Scalar = 0.8

	c := base
	c.ParticleCount = 25
	c.Spread = 100
	c.Scalar = 1.1
	c.StartVelocity = 35
	c.Decay = 0.88

	return []BurstOptions{a, b, c}
}

type particle struct {
	x, y     float64
	angle    float64 // radians, screen coordinates (y grows downward)
	velocity float64
	decay    float64
	gravity  float64
	ttl      int
	glyph    string
	color    color.Color
}

// Confetti is a running set of particles.
type Confetti struct {
	particles []particle
	rng       *rand.Rand
	frames    int
}

// NewConfetti creates an empty system. A nil rng uses a random seed.
func NewConfetti(rng *rand.Rand) *Confetti {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Confetti{rng: rng}
}

// Emit fires every burst from the origin cell.
func (c *Confetti) Emit(originX, originY float64, bursts ...BurstOptions) {
	for _, o := range bursts {
		base := o.Angle * math.Pi / 180
		spread := o.Spread * math.Pi / 180
		// Terminal frames run slower than browser frames.
		ttl := o.Ticks * ConfettiFPS / 60 / 2
		for range o.ParticleCount {
			c.particles = append(c.particles, particle{
				x:        originX,
				y:        originY,
				angle:    -base + (0.5*spread - c.rng.Float64()*spread),
				velocity: (o.StartVelocity*0.5 + c.rng.Float64()*o.StartVelocity) * velocityScale,
				decay:    o.Decay,
				gravity:  o.Gravity * velocityScale * 3,
				ttl:      ttl,
				glyph:    glyphFor(o.Scalar),
				color:    ConfettiColors[c.rng.IntN(len(ConfettiColors))],
			})
		}
	}
}

func glyphFor(scalar float64) string {
	switch {
	case scalar >= 1:
		return "■"
	case scalar >= 0.9:
		return "▪"
	default:
		return "•"
	}
}

// frameDelta is the integration step; particle velocities are expressed per
// browser frame, so positions are scaled by how many browser frames one
// terminal frame spans.
var frameDelta = harmonica.FPS(ConfettiFPS) / harmonica.FPS(60)

// Step advances one frame and drops expired particles.
func (c *Confetti) Step() {
	c.frames++
	alive := c.particles[:0]
	for _, p := range c.particles {
		p.x += math.Cos(p.angle) * p.velocity * frameDelta * 2 // cells are twice as tall as wide
		p.y += (math.Sin(p.angle)*p.velocity + p.gravity) * frameDelta
		p.velocity *= p.decay
		p.ttl--
		if p.ttl > 0 {
			alive = append(alive, p)
		}
	}
	c.particles = alive
}

// Active returns the number of live particles.
func (c *Confetti) Active() int {
	return len(c.particles)
}

// Done reports whether every particle has expired.
func (c *Confetti) Done() bool {
	return len(c.particles) == 0
}

// Frames returns how many frames have been stepped.
func (c *Confetti) Frames() int {
	return c.frames
}

// Visible counts particles inside a width x height area.
func (c *Confetti) Visible(width, height int) int {
	n := 0
	for _, p := range c.particles {
		if _, _, ok := cell(p, width, height); ok {
			n++
		}
	}
	return n
}

// Render draws the live particles into a width x height grid.
func (c *Confetti) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range c.particles {
		x, y, ok := cell(p, width, height)
		if !ok {
			continue
		}
		grid[y][x] = lipgloss.NewStyle().Foreground(p.color).Render(p.glyph)
	}
	lines := make([]string, height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func cell(p particle, width, height int) (int, int, bool) {
	x, y := int(math.Round(p.x)), int(math.Round(p.y))
	if x < 0 || y < 0 || x >= width || y >= height {
		return 0, 0, false
	}
	return x, y, true
}
