// Package loading sequences the boot screen shown before the portfolio
// content appears.
package loading

import "time"

// DefaultResources are the stages named on the boot screen, in order.
var DefaultResources = []string{"particles", "terminal", "github", "skills", "animations"}

const (
	DefaultStep   = 600 * time.Millisecond
	DefaultSettle = 500 * time.Millisecond
)

// Sequencer walks through resources one Step at a time, then waits Settle
// before reporting Done.
type Sequencer struct {
	resources []string
	step      time.Duration
	settle    time.Duration
	elapsed   time.Duration
}

// New returns a sequencer over resources.
func New(resources []string, step, settle time.Duration) *Sequencer {
	return &Sequencer{resources: resources, step: step, settle: settle}
}

// Default returns the portfolio boot sequence.
func Default() *Sequencer {
	return New(DefaultResources, DefaultStep, DefaultSettle)
}

// Advance moves the sequence forward by dt.
func (s *Sequencer) Advance(dt time.Duration) {
	if dt > 0 && !s.Done() {
		s.elapsed += dt
	}
}

func (s *Sequencer) loaded() int {
	if s.step <= 0 {
		return len(s.resources)
	}
	n := int(s.elapsed / s.step)
	if n > len(s.resources) {
		n = len(s.resources)
	}
	return n
}

// Progress returns the completed share in percent.
func (s *Sequencer) Progress() float64 {
	if len(s.resources) == 0 {
		return 100
	}
	return float64(s.loaded()*100) / float64(len(s.resources))
}

// Current names the resource being loaded, or "" once all are loaded.
func (s *Sequencer) Current() string {
	n := s.loaded()
	if n >= len(s.resources) {
		return ""
	}
	return s.resources[n]
}

// Done reports whether the boot screen should be hidden.
func (s *Sequencer) Done() bool {
	total := s.step*time.Duration(len(s.resources)) + s.settle
	if s.step <= 0 {
		total = s.settle
	}
	return s.elapsed >= total
}
