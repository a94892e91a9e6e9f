package main

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"portfoliofx/internal/field"
)

func TestFitLayout(t *testing.T) {
	tests := []struct {
		name       string
		outW, outH int
		wantW      int
		wantH      int
	}{
		{"unchanged", 800, 600, 800, 600},
		{"grow", 1280, 720, 1280, 720},
		{"shrink", 320, 240, 320, 240},
		{"zero width", 0, 720, 800, 600},
		{"zero height", 1280, 0, 800, 600},
		{"negative", -1, -1, 800, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := field.New(800, 600, 10, rand.New(rand.NewSource(1)))
			w, h := fitLayout(f, 800, 600, tt.outW, tt.outH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("fitLayout returned %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			fw, fh := f.Size()
			if fw != float64(tt.wantW) || fh != float64(tt.wantH) {
				t.Errorf("field size %vx%v, want %dx%d", fw, fh, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFitLayoutKeepsParticles(t *testing.T) {
	f := field.New(800, 600, 10, rand.New(rand.NewSource(2)))
	before := f.Particles()
	fitLayout(f, 800, 600, 200, 100)
	after := f.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d changed on resize: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestRunHeadlessStopsAtFrameBudget(t *testing.T) {
	f := field.New(400, 300, 20, rand.New(rand.NewSource(3)))
	loop := field.NewLoop(f, field.UntilFrame(3))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := runHeadless(ctx, loop); err != nil {
		t.Fatalf("runHeadless returned %v", err)
	}
	if loop.Frames() != 3 {
		t.Errorf("Expected 3 frames, got %d", loop.Frames())
	}
	if !loop.Stopped() {
		t.Error("loop should be stopped after its frame budget")
	}
}

func TestRunHeadlessCancelled(t *testing.T) {
	f := field.New(400, 300, 20, rand.New(rand.NewSource(4)))
	loop := field.NewLoop(f, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runHeadless(ctx, loop); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestTallySurfaceCountsFrame(t *testing.T) {
	f := field.FromParticles(500, 500, []field.Particle{
		{X: 10, Y: 10, Radius: 1, Opacity: 0.5},
		{X: 20, Y: 20, Radius: 1, Opacity: 0.5},
		{X: 400, Y: 400, Radius: 1, Opacity: 0.5},
	})
	s := &tallySurface{}
	f.Render(s)
	if s.frames != 1 || s.circles != 3 || s.lines != 1 {
		t.Errorf("tally = frames %d circles %d lines %d, want 1/3/1", s.frames, s.circles, s.lines)
	}
}
