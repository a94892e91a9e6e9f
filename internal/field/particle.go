package field

import "math/rand"

// Particle is a single drifting point. Radius and Opacity are fixed at
// creation; only position and velocity change between frames.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

// newParticle draws a particle uniformly inside a width x height surface.
func newParticle(rng *rand.Rand, width, height float64) Particle {
	return Particle{
		X:       rng.Float64() * width,
		Y:       rng.Float64() * height,
		VX:      (rng.Float64() - 0.5) * 2 * maxInitialSpeed,
		VY:      (rng.Float64() - 0.5) * 2 * maxInitialSpeed,
		Radius:  minRadius + rng.Float64()*(maxRadius-minRadius),
		Opacity: minOpacity + rng.Float64()*(maxOpacity-minOpacity),
	}
}

// Connection links two particles closer than the connection radius.
// A is always lower than B.
type Connection struct {
	A, B     int
	Distance float64
}

// Alpha returns the stroke opacity for the connection. Closer pairs are more
// visible, peaking at MaxConnectionAlpha for coincident particles.
func (c Connection) Alpha() float64 {
	return ConnectionAlpha(c.Distance)
}

// ConnectionAlpha maps a pair distance to a stroke opacity. Distances at or
// beyond ConnectionRadius yield zero.
func ConnectionAlpha(d float64) float64 {
	if d >= ConnectionRadius {
		return 0
	}
	return (ConnectionRadius - d) / ConnectionRadius * MaxConnectionAlpha
}
