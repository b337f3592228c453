package roster

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate stacks are stepped at.
const FPS = 60

// Column spacing between avatar starts. Collapsed avatars overlap.
const (
	CollapsedSpacing = 2
	ExpandedSpacing  = 5
)

// Spring tuned to a stiffness of 260 and damping of 20 at unit mass.
var (
	springFrequency = math.Sqrt(260)
	springDamping   = 20 / (2 * math.Sqrt(260))
)

const settleEpsilon = 0.01

type stackAnim struct {
	spring   harmonica.Spring
	pos      []float64
	vel      []float64
	target   []float64
	delay    []int // Frames each avatar waits before moving
	expanded bool
}

func newStackAnim(n int, expanded bool) *stackAnim {
	s := &stackAnim{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), springFrequency, springDamping),
		pos:    make([]float64, n),
		vel:    make([]float64, n),
		target: make([]float64, n),
		delay:  make([]int, n),
	}
	s.expanded = expanded
	s.retarget()
	copy(s.pos, s.target)
	return s
}

func (s *stackAnim) retarget() {
	spacing := float64(CollapsedSpacing)
	if s.expanded {
		spacing = ExpandedSpacing
	}
	for i := range s.target {
		s.target[i] = float64(i) * spacing
	}
}

// setExpanded retargets every avatar, staggering their start like a cascade:
// collapsing staggers more than expanding.
func (s *stackAnim) setExpanded(expanded bool) {
	if s.expanded == expanded {
		return
	}
	s.expanded = expanded
	s.retarget()
	stagger := 1 // frames per index at 60fps (~0.02s)
	if !expanded {
		stagger = 2 // ~0.04s
	}
	for i := range s.delay {
		s.delay[i] = i * stagger
	}
}

func (s *stackAnim) step() bool {
	moving := false
	for i := range s.pos {
		if s.delay[i] > 0 {
			s.delay[i]--
			moving = true
			continue
		}
		if s.settledAt(i) {
			s.pos[i], s.vel[i] = s.target[i], 0
			continue
		}
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], s.target[i])
		moving = true
	}
	return moving
}

func (s *stackAnim) settledAt(i int) bool {
	return math.Abs(s.pos[i]-s.target[i]) < settleEpsilon && math.Abs(s.vel[i]) < settleEpsilon
}

func (s *stackAnim) settled() bool {
	for i := range s.pos {
		if s.delay[i] > 0 || !s.settledAt(i) {
			return false
		}
	}
	return true
}

func (s *stackAnim) offsets() []int {
	out := make([]int, len(s.pos))
	for i, p := range s.pos {
		out[i] = max(0, int(math.Round(p)))
	}
	return out
}
