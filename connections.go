package main

import (
	"fmt"
	"log"

	"portfoliofx/internal/field"
)

// newPairFinder builds the connection search named by kind. The returned
// close function releases device resources and is never nil.
func newPairFinder(kind string, capacity int) (field.PairFinder, func(), error) {
	noop := func() {}
	switch kind {
	case "", "brute":
		return field.BruteForce{}, noop, nil
	case "grid":
		return field.NewGrid(), noop, nil
	case "opencl":
		if err := checkOpenCLCapacity(capacity); err != nil {
			return nil, noop, err
		}
		finder, err := newOpenCLPairFinder(capacity)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("OpenCL connection search enabled (device: %s)", finder.DeviceName())
		return finder, finder.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown connection search %q", kind)
}

// checkOpenCLCapacity rejects pools the OpenCL flag matrix cannot hold.
func checkOpenCLCapacity(capacity int) error {
	if capacity < 2 {
		return fmt.Errorf("OpenCL pair search needs at least 2 particles, got %d", capacity)
	}
	if capacity > maxOpenCLParticles {
		return fmt.Errorf("OpenCL pair search supports at most %d particles, got %d", maxOpenCLParticles, capacity)
	}
	return nil
}

// selectPairFinder is newPairFinder with a grid fallback for hosts that lack
// the requested backend.
func selectPairFinder(kind string, capacity int) (field.PairFinder, func()) {
	finder, closeFn, err := newPairFinder(kind, capacity)
	if err != nil {
		log.Printf("Connection search %q unavailable, using grid: %v", kind, err)
		return field.NewGrid(), func() {}
	}
	return finder, closeFn
}
