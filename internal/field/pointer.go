package field

import "sync/atomic"

// Pointer is an immutable pointer position in surface pixels.
type Pointer struct {
	X, Y float64
}

// PointerState publishes pointer positions from an input source to the frame
// step. Writers swap in a fresh snapshot; the frame step loads it once.
type PointerState struct {
	v atomic.Pointer[Pointer]
}

// Set publishes a new pointer position. Safe for concurrent use.
func (s *PointerState) Set(x, y float64) {
	s.v.Store(&Pointer{X: x, Y: y})
}

// Load returns the latest published position, or the origin if none.
func (s *PointerState) Load() Pointer {
	if p := s.v.Load(); p != nil {
		return *p
	}
	return Pointer{}
}
