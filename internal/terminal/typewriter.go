package terminal

import "time"

// Typewriter reveals a text one rune per Speed after an initial Delay.
type Typewriter struct {
	text    []rune
	delay   time.Duration
	speed   time.Duration
	elapsed time.Duration
}

// NewTypewriter returns a typewriter for text. A non-positive speed reveals
// the text all at once after delay.
func NewTypewriter(text string, delay, speed time.Duration) *Typewriter {
	return &Typewriter{text: []rune(text), delay: delay, speed: speed}
}

// Advance moves the typewriter forward by dt.
func (t *Typewriter) Advance(dt time.Duration) {
	if dt > 0 && !t.Done() {
		t.elapsed += dt
	}
}

// Visible returns the revealed prefix.
func (t *Typewriter) Visible() string {
	return string(t.text[:t.count()])
}

// Done reports whether the whole text is visible.
func (t *Typewriter) Done() bool {
	return t.count() == len(t.text)
}

func (t *Typewriter) count() int {
	if t.elapsed < t.delay {
		return 0
	}
	if t.speed <= 0 {
		return len(t.text)
	}
	// The first rune appears as soon as the delay ends.
	n := int((t.elapsed-t.delay)/t.speed) + 1
	if n > len(t.text) {
		n = len(t.text)
	}
	return n
}
