package field

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"
)

func TestPointerStateDefaultsToOrigin(t *testing.T) {
	var s PointerState
	if p := s.Load(); p != (Pointer{}) {
		t.Errorf("expected origin, got %+v", p)
	}
	s.Set(12, 34)
	if p := s.Load(); p.X != 12 || p.Y != 34 {
		t.Errorf("expected (12, 34), got %+v", p)
	}
}

func TestPointerStateConcurrentPublish(t *testing.T) {
	f := New(800, 600, DefaultCount, rand.New(rand.NewSource(5)))
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			f.Pointer().Set(float64(i%800), float64(i%600))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			f.Step()
		}
	}()
	wg.Wait()
	if f.Len() != DefaultCount {
		t.Errorf("count changed under concurrent pointer updates: %d", f.Len())
	}
}

func TestLoopPredicateHalts(t *testing.T) {
	l := NewLoop(New(100, 100, 10, rand.New(rand.NewSource(1))), UntilFrame(3))
	steps := 0
	for l.Advance() {
		steps++
		if steps > 10 {
			t.Fatal("predicate did not stop the loop")
		}
	}
	if steps != 3 || l.Frames() != 3 {
		t.Errorf("expected 3 frames, stepped %d, counted %d", steps, l.Frames())
	}
	if !l.Stopped() {
		t.Error("loop should report stopped after predicate declined")
	}
	if l.Advance() {
		t.Error("stopped loop advanced")
	}
}

func TestLoopStop(t *testing.T) {
	l := NewLoop(New(100, 100, 10, rand.New(rand.NewSource(1))), nil)
	if !l.Advance() {
		t.Fatal("fresh loop refused to advance")
	}
	l.Stop()
	l.Stop()
	if l.Advance() {
		t.Error("loop advanced after Stop")
	}
	if l.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", l.Frames())
	}
}

func TestLoopRunRendersEachTick(t *testing.T) {
	l := NewLoop(New(200, 200, 20, rand.New(rand.NewSource(2))), UntilFrame(5))
	ticks := make(chan time.Time, 10)
	for i := 0; i < 10; i++ {
		ticks <- time.Time{}
	}
	rec := &recorder{}
	if err := l.Run(context.Background(), ticks, rec); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if rec.clears != 5 {
		t.Errorf("expected 5 rendered frames, got %d", rec.clears)
	}
	if len(rec.circles) != 20 {
		t.Errorf("expected last frame to draw 20 circles, got %d", len(rec.circles))
	}
}

func TestLoopRunStopUnblocks(t *testing.T) {
	l := NewLoop(New(200, 200, 20, rand.New(rand.NewSource(3))), nil)
	errc := make(chan error, 1)
	go func() {
		errc <- l.Run(context.Background(), make(chan time.Time), &recorder{})
	}()
	l.Stop()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("expected nil after Stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}

func TestLoopRunContextCancel(t *testing.T) {
	l := NewLoop(New(200, 200, 20, rand.New(rand.NewSource(4))), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Run(ctx, make(chan time.Time), &recorder{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
