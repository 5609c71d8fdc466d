// Command mandelbrot renders the Mandelbrot set.
//
// With no flags it renders one 800x600 frame and prints the render time.
// With -v it also logs the kernel choice and frame statistics to stderr.
// With -graphics (or --graphics) it opens a window:
//
//	arrows    pan
//	+ / -     zoom in / out
//	space     reset the view
//	escape    quit
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/mandelbrot"
	"github.com/gogpu/mandelbrot/internal/report"
	"github.com/gogpu/mandelbrot/internal/viewer"
)

func main() {
	graphics := flag.Bool("graphics", false, "open an interactive window instead of timing one render")
	verbose := flag.Bool("v", false, "log kernel selection and frame statistics")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	mandelbrot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	r, err := mandelbrot.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	if *graphics {
		v, err := viewer.New(r)
		if err != nil {
			log.Fatalf("Failed to open viewer: %v", err)
		}
		if err := v.Run(); err != nil {
			log.Fatalf("Viewer: %v", err)
		}
		return
	}

	if err := benchmark(r); err != nil {
		log.Fatalf("Benchmark: %v", err)
	}
}

// benchmark renders the default view once and reports the elapsed time.
func benchmark(r *mandelbrot.Renderer) error {
	frame, err := mandelbrot.NewFrame(r.Width(), r.Height())
	if err != nil {
		return err
	}

	var stats mandelbrot.Stats
	elapsed, err := report.Time(func() error {
		var rerr error
		stats, rerr = r.Render(frame, mandelbrot.DefaultView())
		return rerr
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	mandelbrot.Logger().Info("benchmark: frame timed",
		"kernel", r.Kernel(),
		"elapsed", elapsed,
		"groups", stats.Groups,
		"in_set", stats.InSet)
	return report.WriteRenderTime(os.Stdout, elapsed)
}
