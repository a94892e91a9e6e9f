package loading

import (
	"testing"
	"time"
)

func TestSequencerProgress(t *testing.T) {
	s := Default()
	tests := []struct {
		advance  time.Duration
		progress float64
		current  string
		done     bool
	}{
		{0, 0, "particles", false},
		{599 * time.Millisecond, 0, "particles", false},
		{1 * time.Millisecond, 20, "terminal", false},
		{600 * time.Millisecond, 40, "github", false},
		{1800 * time.Millisecond, 100, "", false},
		{499 * time.Millisecond, 100, "", false},
		{1 * time.Millisecond, 100, "", true},
	}
	for i, tt := range tests {
		s.Advance(tt.advance)
		if got := s.Progress(); got != tt.progress {
			t.Errorf("step %d: progress %v, want %v", i, got, tt.progress)
		}
		if got := s.Current(); got != tt.current {
			t.Errorf("step %d: current %q, want %q", i, got, tt.current)
		}
		if got := s.Done(); got != tt.done {
			t.Errorf("step %d: done %v, want %v", i, got, tt.done)
		}
	}
}

func TestSequencerEmpty(t *testing.T) {
	s := New(nil, DefaultStep, 0)
	if !s.Done() || s.Progress() != 100 || s.Current() != "" {
		t.Errorf("empty sequence should be complete immediately")
	}
}

func TestSequencerStopsAccumulating(t *testing.T) {
	s := Default()
	s.Advance(time.Hour)
	if !s.Done() || s.Progress() != 100 {
		t.Fatal("expected completion")
	}
	s.Advance(-time.Second)
	if !s.Done() {
		t.Error("negative advance must not rewind")
	}
}
