//go:build !opencl

package main

import (
	"errors"

	"portfoliofx/internal/field"
)

type openCLPairFinder struct{}

func newOpenCLPairFinder(capacity int) (*openCLPairFinder, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLPairFinder) Pairs(ps []field.Particle, radius float64, dst []field.Connection) []field.Connection {
	return field.BruteForce{}.Pairs(ps, radius, dst)
}

func (s *openCLPairFinder) Close() {}

func (s *openCLPairFinder) DeviceName() string { return "" }
