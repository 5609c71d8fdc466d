package mandelbrot

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gogpu/mandelbrot/internal/escape"
	"golang.org/x/sys/cpu"
)

// Kernel selects the escape-time implementation.
// Every kernel produces the same count for every pixel; they differ only in
// speed.
type Kernel int

const (
	// KernelAuto picks the kernel that measures fastest on this CPU.
	// See DetectKernel.
	KernelAuto Kernel = iota

	// KernelScalar computes one pixel at a time. It is the reference.
	KernelScalar

	// KernelGrouped runs eight lanes with an explicit bitmask and plain
	// float32 lanes.
	KernelGrouped

	// KernelBatched runs eight lanes in lockstep on wide lane types with
	// branchless mask arithmetic.
	KernelBatched
)

// String returns the kernel name.
func (k Kernel) String() string {
	switch k {
	case KernelAuto:
		return "auto"
	case KernelScalar:
		return "scalar"
	case KernelGrouped:
		return "grouped"
	case KernelBatched:
		return "batched"
	default:
		return "unknown"
	}
}

func (k Kernel) valid() bool {
	return k >= KernelAuto && k <= KernelBatched
}

// kernelTiming is one calibration measurement.
type kernelTiming struct {
	kernel  Kernel
	elapsed time.Duration
}

// fastest returns the kernel with the shortest time. Ties keep the earlier
// entry. timings must not be empty.
func fastest(timings []kernelTiming) Kernel {
	best := timings[0]
	for _, t := range timings[1:] {
		if t.elapsed < best.elapsed {
			best = t
		}
	}
	return best.kernel
}

// Calibration workload: one row through the boundary of the set, where
// escape counts vary the most between neighbouring lanes.
const (
	calibrationWidth  = 256
	calibrationRounds = 3
)

// calibrationRow times one pass of fn over the calibration row.
func calibrationRow(fn escape.Func) time.Duration {
	// Row 1 of 4 is Im = -0.75 in the default view.
	m := NewMapper(DefaultView(), calibrationWidth, 4)
	y := m.Y(1)

	var g escape.PointGroup
	start := time.Now()
	for px := 0; px < calibrationWidth; px += Lanes {
		g.Reset(Lanes)
		for lane := 0; lane < Lanes; lane++ {
			g.Set(lane, m.X(px+lane), y)
		}
		fn(&g, DefaultMaxIter, DefaultEscapeRadius)
	}
	return time.Since(start)
}

// calibrate times every candidate and keeps the best of several rounds.
func calibrate(candidates []Kernel) []kernelTiming {
	timings := make([]kernelTiming, len(candidates))
	for i, k := range candidates {
		timings[i] = kernelTiming{kernel: k, elapsed: time.Duration(1<<63 - 1)}
	}
	for round := 0; round < calibrationRounds; round++ {
		for i := range timings {
			if d := calibrationRow(timings[i].kernel.groupFunc()); d < timings[i].elapsed {
				timings[i].elapsed = d
			}
		}
	}
	return timings
}

var detect struct {
	once   sync.Once
	kernel Kernel
	reason string
}

// DetectKernel reports the kernel KernelAuto resolves to on this CPU, and
// why.
//
// The scalar and grouped kernels are always candidates. The batched kernel
// joins them when the CPU has a vector unit (AVX2 or ASIMD). Each candidate
// is timed on a short row through the set boundary and the fastest wins.
// The measurement runs once per process.
func DetectKernel() (Kernel, string) {
	detect.once.Do(func() {
		candidates := []Kernel{KernelGrouped, KernelScalar}
		feature := "no SIMD support"
		switch {
		case cpu.X86.HasAVX2:
			feature = "AVX2"
			candidates = append(candidates, KernelBatched)
		case cpu.ARM64.HasASIMD:
			feature = "ASIMD"
			candidates = append(candidates, KernelBatched)
		}

		timings := calibrate(candidates)
		detect.kernel = fastest(timings)
		detect.reason = feature + ": " + describeTimings(timings)
	})
	return detect.kernel, detect.reason
}

func describeTimings(timings []kernelTiming) string {
	parts := make([]string, len(timings))
	for i, t := range timings {
		parts[i] = fmt.Sprintf("%v=%v", t.kernel, t.elapsed)
	}
	return strings.Join(parts, " ")
}

// resolve maps KernelAuto to a concrete kernel.
func (k Kernel) resolve() Kernel {
	if k != KernelAuto {
		return k
	}
	resolved, reason := DetectKernel()
	Logger().Info("mandelbrot: kernel selected", "kernel", resolved, "reason", reason)
	return resolved
}

// groupFunc returns the group kernel for a concrete Kernel.
func (k Kernel) groupFunc() escape.Func {
	switch k {
	case KernelScalar:
		return escape.ScalarGroup
	case KernelGrouped:
		return escape.Grouped
	default:
		return escape.Batched
	}
}
