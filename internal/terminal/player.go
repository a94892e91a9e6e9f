// Package terminal plays a scripted fake shell session and types text one
// rune at a time. Both are driven by explicit elapsed time so that hosts can
// advance them from a frame loop.
package terminal

import (
	"strings"
	"time"
)

// Command is one scripted prompt entry and the lines it prints.
type Command struct {
	Input  string
	Output []string
}

// LineKind selects how an output line is styled.
type LineKind int

const (
	Plain LineKind = iota
	Success
	Highlight
)

// Line is a printed output line.
type Line struct {
	Text string
	Kind LineKind
}

// Timing controls the pace of a Player.
type Timing struct {
	InitialDelay time.Duration
	CharDelay    time.Duration
	LineDelay    time.Duration
	CommandPause time.Duration
}

// DefaultTiming matches the portfolio page.
var DefaultTiming = Timing{
	InitialDelay: 2000 * time.Millisecond,
	CharDelay:    100 * time.Millisecond,
	LineDelay:    500 * time.Millisecond,
	CommandPause: 3000 * time.Millisecond,
}

const successMark = "✓"

var highlightMarkers = []string{"github.com", "linkedin.com", "@gmail.com"}

// Classify picks the style of an output line.
func Classify(text string) LineKind {
	if strings.Contains(text, successMark) {
		return Success
	}
	for _, m := range highlightMarkers {
		if strings.Contains(text, m) {
			return Highlight
		}
	}
	return Plain
}

type phase int

const (
	phaseWaiting phase = iota
	phaseTyping
	phaseOutput
	phasePause
)

// Player replays a script forever: it waits, types each command, prints its
// output line by line, pauses, and after the last command clears the output
// and starts over.
type Player struct {
	script []Command
	timing Timing

	phase phase
	wait  time.Duration
	cmd   int
	chars int
	line  int

	prompt []rune
	output []Line
	cycles int
}

// minEventDelay is the shortest gap between two events. Shorter or zero
// timings are raised to it.
const minEventDelay = time.Millisecond

func (t Timing) normalized() Timing {
	for _, d := range []*time.Duration{&t.InitialDelay, &t.CharDelay, &t.LineDelay, &t.CommandPause} {
		if *d < minEventDelay {
			*d = minEventDelay
		}
	}
	return t
}

// NewPlayer returns a player at the start of its initial delay. Delays below
// one millisecond are raised to one millisecond.
func NewPlayer(script []Command, timing Timing) *Player {
	timing = timing.normalized()
	return &Player{
		script: script,
		timing: timing,
		phase:  phaseWaiting,
		wait:   timing.InitialDelay,
	}
}

// Prompt returns the part of the current command typed so far.
func (p *Player) Prompt() string { return string(p.prompt) }

// Output returns the lines printed in the current cycle.
func (p *Player) Output() []Line { return p.output }

// Cycles returns how many times the whole script has completed.
func (p *Player) Cycles() int { return p.cycles }

// Typing reports whether a command is being typed.
func (p *Player) Typing() bool { return p.phase == phaseTyping }

// Advance moves the session forward by dt, firing every event that falls
// inside it.
func (p *Player) Advance(dt time.Duration) {
	if len(p.script) == 0 {
		return
	}
	for dt > 0 {
		if dt < p.wait {
			p.wait -= dt
			return
		}
		dt -= p.wait
		p.wait = 0
		p.fire()
	}
}

func (p *Player) fire() {
	switch p.phase {
	case phaseWaiting:
		p.startCommand(0)
	case phaseTyping:
		input := []rune(p.script[p.cmd].Input)
		if p.chars < len(input) {
			p.chars++
			p.prompt = input[:p.chars]
			p.wait = p.timing.CharDelay
			return
		}
		p.phase = phaseOutput
		p.line = 0
		p.printNext()
	case phaseOutput:
		p.printNext()
	case phasePause:
		if p.cmd+1 < len(p.script) {
			p.startCommand(p.cmd + 1)
			return
		}
		p.cycles++
		p.output = nil
		p.phase = phaseWaiting
		p.wait = p.timing.InitialDelay
	}
}

func (p *Player) startCommand(i int) {
	p.cmd = i
	p.chars = 0
	p.prompt = nil
	p.phase = phaseTyping
	p.wait = p.timing.CharDelay
}

func (p *Player) printNext() {
	lines := p.script[p.cmd].Output
	if p.line >= len(lines) {
		p.phase = phasePause
		p.wait = p.timing.CommandPause
		return
	}
	text := lines[p.line]
	p.output = append(p.output, Line{Text: text, Kind: Classify(text)})
	p.line++
	p.wait = p.timing.LineDelay
}
