// Package mandelbrot renders escape-time images of the Mandelbrot set.
//
// # Overview
//
// For every pixel of a frame the renderer maps the pixel to a point c of the
// complex plane, iterates z ← z² + c from z = 0, and records the first step
// at which |z|² reaches the escape radius. The count is mapped to a color by
// a periodic palette; points that never escape within the cap are black.
//
// # Quick Start
//
//	r, err := mandelbrot.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frame, err := mandelbrot.NewFrame(r.Width(), r.Height())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := r.Render(frame, mandelbrot.DefaultView()); err != nil {
//	    log.Fatal(err)
//	}
//	img := frame.ToImage()
//
// # Kernels
//
// Pixels are processed in groups of eight consecutive columns. Three kernels
// are available and produce identical counts:
//
//   - KernelBatched: eight lanes in lockstep with branchless mask arithmetic
//     on wide lane types; the group stops as soon as every lane escaped.
//   - KernelGrouped: the same algorithm over plain float32 lanes driven by an
//     explicit bitmask.
//   - KernelScalar: one pixel at a time; the reference.
//
// KernelAuto (default) times the candidate kernels once per process and uses
// the fastest. The batched kernel is a candidate only on CPUs with AVX2 or
// ASIMD.
//
// # Architecture
//
// The module is organized into:
//   - Public API: Renderer, View, Mapper, Palette, Frame, FramePool
//   - Internal: wide (8-lane types), escape (kernels), overlay (bounds text),
//     report (benchmark output), viewer (interactive window)
//
// Rendering is single-threaded and synchronous. A frame is never presented
// partially: Render validates its target and view before writing.
package mandelbrot
