//go:build opencl

package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"portfoliofx/internal/field"
)

// openCLPairFinder runs the pairwise proximity test on an OpenCL device. The
// kernel flags candidate pairs with a padded radius in float32; the host then
// confirms each candidate in float64 so results match field.BruteForce.
type openCLPairFinder struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	posBuf     *cl.MemObject
	flagBuf    *cl.MemObject
	capacity   int
	deviceName string
	positions  []float32
	flags      []float32
	failed     bool
}

// candidatePadding widens the device-side radius to absorb float32 rounding.
const candidatePadding = 1.0

const pairKernelSource = `__kernel void flag_pairs(
    const int count,
    const float radius,
    __global const float* pos,
    __global float* flags)
{
    int i = get_global_id(0);
    if (i >= count) {
        return;
    }
    float xi = pos[2 * i];
    float yi = pos[2 * i + 1];
    float r2 = radius * radius;
    for (int j = i + 1; j < count; j++) {
        float dx = xi - pos[2 * j];
        float dy = yi - pos[2 * j + 1];
        flags[i * count + j] = (dx * dx + dy * dy < r2) ? 1.0f : 0.0f;
    }
}`

func newOpenCLPairFinder(capacity int) (*openCLPairFinder, error) {
	if err := checkOpenCLCapacity(capacity); err != nil {
		return nil, err
	}
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &openCLPairFinder{
		capacity:   capacity,
		deviceName: device.Name(),
		positions:  make([]float32, 2*capacity),
		flags:      make([]float32, capacity*capacity),
	}
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{pairKernelSource}); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		s.Close()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.kernel, err = s.program.CreateKernel("flag_pairs"); err != nil {
		s.Close()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}
	floatSize := int(unsafe.Sizeof(float32(0)))
	if s.posBuf, err = s.context.CreateEmptyBuffer(cl.MemReadOnly, 2*capacity*floatSize); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating position buffer: %w", err)
	}
	if s.flagBuf, err = s.context.CreateEmptyBuffer(cl.MemWriteOnly, capacity*capacity*floatSize); err != nil {
		s.Close()
		return nil, fmt.Errorf("allocating flag buffer: %w", err)
	}
	if err := s.kernel.SetArgs(
		int32(capacity),
		float32(field.ConnectionRadius+candidatePadding),
		s.posBuf,
		s.flagBuf,
	); err != nil {
		s.Close()
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

// Pairs implements field.PairFinder. Pools larger than the allocated
// capacity, and every call after a device error, use the CPU search.
func (s *openCLPairFinder) Pairs(ps []field.Particle, radius float64, dst []field.Connection) []field.Connection {
	if s.failed || len(ps) > s.capacity || radius > field.ConnectionRadius {
		return field.BruteForce{}.Pairs(ps, radius, dst)
	}
	out, err := s.pairs(ps, radius, dst)
	if err != nil {
		log.Printf("OpenCL pair search failed, switching to CPU: %v", err)
		s.failed = true
		return field.BruteForce{}.Pairs(ps, radius, dst)
	}
	return out
}

func (s *openCLPairFinder) pairs(ps []field.Particle, radius float64, dst []field.Connection) ([]field.Connection, error) {
	n := len(ps)
	if n < 2 {
		return dst, nil
	}
	for i, p := range ps {
		s.positions[2*i] = float32(p.X)
		s.positions[2*i+1] = float32(p.Y)
	}
	if _, err := s.queue.EnqueueWriteBufferFloat32(s.posBuf, false, 0, s.positions[:2*n], nil); err != nil {
		return dst, fmt.Errorf("writing positions: %w", err)
	}
	if err := s.kernel.SetArgInt32(0, int32(n)); err != nil {
		return dst, fmt.Errorf("setting particle count: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{n}, nil, nil); err != nil {
		return dst, fmt.Errorf("enqueueing kernel: %w", err)
	}
	flags := s.flags[:n*n]
	if _, err := s.queue.EnqueueReadBufferFloat32(s.flagBuf, true, 0, flags, nil); err != nil {
		return dst, fmt.Errorf("reading flags: %w", err)
	}
	for i := 0; i < n; i++ {
		row := flags[i*n : (i+1)*n]
		for j := i + 1; j < n; j++ {
			if row[j] == 0 {
				continue
			}
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			if d := math.Sqrt(dx*dx + dy*dy); d < radius {
				dst = append(dst, field.Connection{A: i, B: j, Distance: d})
			}
		}
	}
	return dst, nil
}

func (s *openCLPairFinder) Close() {
	if s.flagBuf != nil {
		s.flagBuf.Release()
		s.flagBuf = nil
	}
	if s.posBuf != nil {
		s.posBuf.Release()
		s.posBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLPairFinder) DeviceName() string {
	return s.deviceName
}
