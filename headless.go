package main

import (
	"context"
	"image/color"
	"log"
	"time"

	"portfoliofx/internal/field"
)

// tallySurface counts draw calls instead of rasterizing them.
type tallySurface struct {
	frames  uint64
	circles int
	lines   int
}

func (s *tallySurface) Clear() {
	s.frames++
	s.circles, s.lines = 0, 0
}

func (s *tallySurface) FillCircle(_, _, _ float64, _ color.RGBA, _ float64) { s.circles++ }

func (s *tallySurface) StrokeLine(_, _, _, _, _ float64, _ color.RGBA, _ float64) { s.lines++ }

// logTally wraps a tallySurface and reports every headlessLogEvery frames.
type logTally struct {
	*tallySurface
	started time.Time
}

func (s logTally) Clear() {
	if s.frames > 0 && s.frames%headlessLogEvery == 0 {
		elapsed := time.Since(s.started).Seconds()
		log.Printf("Frame %d: %d particles, %d connections (%.1f frames/s)",
			s.frames, s.circles, s.lines, float64(s.frames)/elapsed)
	}
	s.tallySurface.Clear()
}

// runHeadless animates loop at defaultTPS without a window until it stops or
// ctx ends.
func runHeadless(ctx context.Context, loop *field.Loop) error {
	ticker := time.NewTicker(time.Second / defaultTPS)
	defer ticker.Stop()
	surface := logTally{tallySurface: &tallySurface{}, started: time.Now()}
	log.Printf("Running headless with %d particles", loop.Field().Len())
	err := loop.Run(ctx, ticker.C, surface)
	log.Printf("Headless run finished after %d frames", loop.Frames())
	return err
}
