package main

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"portfoliofx/internal/field"
	"portfoliofx/internal/github"
	"portfoliofx/internal/loading"
	"portfoliofx/internal/terminal"
)

// Game hosts the particle field in an Ebitengine window and layers the boot
// screen, hero subtitle, terminal and GitHub widget on top of it.
type Game struct {
	ctx   context.Context
	loop  *field.Loop
	field *field.Field

	boot     *loading.Sequencer
	booted   bool
	term     *terminal.Player
	subtitle *terminal.Typewriter

	gh    *github.Client
	stats atomic.Pointer[github.Stats]

	width, height int
	showDebug     bool
	lastStep      time.Duration
}

// newGame wires the overlays around loop. A nil gh keeps the widget on
// sample data.
func newGame(ctx context.Context, loop *field.Loop, gh *github.Client, skipIntro bool) *Game {
	w, h := loop.Field().Size()
	g := &Game{
		ctx:       ctx,
		loop:      loop,
		field:     loop.Field(),
		boot:      loading.Default(),
		term:      terminal.NewPlayer(terminal.DefaultScript, terminal.DefaultTiming),
		subtitle:  terminal.NewTypewriter(heroSubtitle, subtitleDelay, subtitleSpeed),
		gh:        gh,
		width:     int(w),
		height:    int(h),
		showDebug: *debugFlag,
	}
	if skipIntro {
		g.boot = loading.New(nil, 0, 0)
	}
	return g
}

// frameDuration is the simulated time covered by one Update call.
func frameDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	return time.Second / time.Duration(tps)
}

// Update advances the field and the overlays by one tick. It ends the game
// once the loop is stopped or has run its frame budget.
func (g *Game) Update() error {
	if g.handleControls() {
		g.loop.Stop()
	}

	x, y := ebiten.CursorPosition()
	g.field.Pointer().Set(float64(x), float64(y))

	start := time.Now()
	if !g.loop.Advance() {
		log.Printf("Animation stopped after %d frames", g.loop.Frames())
		return ebiten.Termination
	}
	g.lastStep = time.Since(start)

	dt := frameDuration()
	g.boot.Advance(dt)
	if !g.boot.Done() {
		return nil
	}
	if !g.booted {
		g.booted = true
		g.startOverlays()
	}
	g.subtitle.Advance(dt)
	g.term.Advance(dt)
	return nil
}

// startOverlays begins the GitHub fetch once the boot screen is gone.
func (g *Game) startOverlays() {
	sample := github.SampleStats
	g.stats.Store(&sample)
	if g.gh == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(g.ctx, githubFetchTimeout)
		defer cancel()
		stats := g.gh.Load(ctx)
		g.stats.Store(&stats)
		if !stats.Sample {
			log.Printf("GitHub stats loaded for %s", g.gh.User)
		}
	}()
}

// Layout follows the window size and resizes the field when it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = fitLayout(g.field, g.width, g.height, outsideWidth, outsideHeight)
	return g.width, g.height
}

// fitLayout returns the new surface size for a window of outW x outH and
// resizes f when it changes. Non-positive sizes keep the current one.
func fitLayout(f *field.Field, curW, curH, outW, outH int) (int, int) {
	if outW <= 0 || outH <= 0 {
		return curW, curH
	}
	if outW != curW || outH != curH {
		f.Resize(float64(outW), float64(outH))
	}
	return outW, outH
}
