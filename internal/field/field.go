// Package field animates the decorative particle backdrop: a fixed pool of
// drifting points, weakly pulled toward the pointer, bouncing off the surface
// edges and joined by faint lines when close to each other.
package field

import (
	"math"
	"math/rand"
)

// Field owns the particle pool and the surface dimensions it bounces in.
type Field struct {
	width, height float64
	particles     []Particle
	pointer       *PointerState
	finder        PairFinder
	conns         []Connection
}

// Option customizes a Field at construction.
type Option func(*Field)

// WithFinder replaces the brute-force pair search.
func WithFinder(f PairFinder) Option {
	return func(fd *Field) {
		if f != nil {
			fd.finder = f
		}
	}
}

// WithPointer shares an existing pointer state with the field.
func WithPointer(p *PointerState) Option {
	return func(fd *Field) {
		if p != nil {
			fd.pointer = p
		}
	}
}

// New creates a field of count particles spread over a width x height
// surface. A count below one falls back to DefaultCount.
func New(width, height float64, count int, rng *rand.Rand, opts ...Option) *Field {
	if count < 1 {
		count = DefaultCount
	}
	f := newField(width, height, opts...)
	f.particles = make([]Particle, count)
	for i := range f.particles {
		f.particles[i] = newParticle(rng, width, height)
	}
	return f
}

// FromParticles creates a field around a caller-supplied pool. The slice is
// copied.
func FromParticles(width, height float64, particles []Particle, opts ...Option) *Field {
	f := newField(width, height, opts...)
	f.particles = append([]Particle(nil), particles...)
	return f
}

func newField(width, height float64, opts ...Option) *Field {
	f := &Field{
		width:   width,
		height:  height,
		pointer: &PointerState{},
		finder:  BruteForce{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Resize changes the surface bounds. Particles keep their positions and may
// sit outside the new bounds until they drift or bounce back.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
}

// Size reports the current surface bounds.
func (f *Field) Size() (float64, float64) { return f.width, f.height }

// Pointer returns the pointer state read by Step.
func (f *Field) Pointer() *PointerState { return f.pointer }

// Len returns the particle count.
func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the pool.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Step advances every particle by one frame.
func (f *Field) Step() {
	ptr := f.pointer.Load()
	for i := range f.particles {
		p := &f.particles[i]
		dx := ptr.X - p.X
		dy := ptr.Y - p.Y
		if math.Sqrt(dx*dx+dy*dy) < InteractionRadius {
			p.VX += dx * AttractionGain
			p.VY += dy * AttractionGain
		}

		p.X += p.VX
		p.Y += p.VY

		// Checked after the move: a particle may overshoot by one step.
		if p.X < 0 || p.X > f.width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > f.height {
			p.VY = -p.VY
		}
	}
}

// Connections returns the pairs currently closer than ConnectionRadius. The
// returned slice is reused by the next call.
func (f *Field) Connections() []Connection {
	f.conns = f.finder.Pairs(f.particles, ConnectionRadius, f.conns[:0])
	return f.conns
}

// ConnectionCount returns how many pairs the last Render or Connections call
// found, without searching again.
func (f *Field) ConnectionCount() int { return len(f.conns) }

// Render clears s and draws particles followed by their connections.
func (f *Field) Render(s Surface) {
	s.Clear()
	for _, p := range f.particles {
		s.FillCircle(p.X, p.Y, p.Radius, Tint, p.Opacity)
	}
	for _, c := range f.Connections() {
		a, b := f.particles[c.A], f.particles[c.B]
		s.StrokeLine(a.X, a.Y, b.X, b.Y, LineWidth, Tint, c.Alpha())
	}
}

// Frame steps the field and renders the result.
func (f *Field) Frame(s Surface) {
	f.Step()
	f.Render(s)
}
