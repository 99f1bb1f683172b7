// Command bezeddemo drives the bezed editor core through a scripted
// editing session and writes each resulting frame as a PNG. It stands
// in for an interactive shell: same event vocabulary, headless output.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/bezed"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 450, "image height")
		outDir  = flag.String("out", ".", "output directory for frame PNGs")
		samples = flag.Int("samples", 64, "polyline samples per segment")
		verbose = flag.Bool("v", false, "log editor activity to stderr")
	)
	flag.Parse()

	if *verbose {
		bezed.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ed := bezed.NewEditor(bezed.WithSampleCount(*samples))

	// A scripted session: place an S-curve, chain a second segment,
	// inspect the boxes, drag a handle, and flip the algorithm.
	steps := []struct {
		name   string
		cursor bezed.Point
		events []bezed.EventKind
	}{
		{"place-p0", bezed.Pt(150, 300), press()},
		{"place-p1", bezed.Pt(150, 100), press()},
		{"place-p2", bezed.Pt(350, 100), press()},
		{"place-p3", bezed.Pt(350, 300), press()},
		{"chain-p4", bezed.Pt(500, 400), press()},
		{"chain-p5", bezed.Pt(650, 350), press()},
		{"chain-p6", bezed.Pt(650, 150), press()},
		{"show-boxes", bezed.Pt(650, 150), []bezed.EventKind{bezed.ToggleBoxes, bezed.ToggleGrid}},
		{"grab-handle", bezed.Pt(350, 100), []bezed.EventKind{bezed.PrimaryPressed}},
		{"drag-handle", bezed.Pt(450, 60), nil},
		{"drop-handle", bezed.Pt(450, 60), []bezed.EventKind{bezed.PrimaryReleased}},
		{"bernstein", bezed.Pt(450, 60), []bezed.EventKind{bezed.ToggleAlgorithm}},
	}

	for i, s := range steps {
		frame := ed.Step(s.cursor, s.events...)
		img := bezed.RenderFrame(frame, *width, *height)

		path := filepath.Join(*outDir, fmt.Sprintf("frame-%02d-%s.png", i, s.name))
		if err := bezed.WritePNG(img, path); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
		log.Printf("%s: %d points, %d segments, mode %s",
			path, ed.Spline().Len(), ed.Spline().NumSegments(), frame.Mode)
	}
}

// press is a click: primary down then up at the same cursor position.
func press() []bezed.EventKind {
	return []bezed.EventKind{bezed.PrimaryPressed, bezed.PrimaryReleased}
}
