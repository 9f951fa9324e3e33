// Command vesselgen generates bifurcation geometries with a swept stenosis
// and saves them as a sequence of grayscale PNG images, plus a probe table
// for downstream flow instrumentation.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hemodyn/vessel"
	"github.com/hemodyn/vessel/anatomy"
	"github.com/hemodyn/vessel/annotate"
)

const splitAngle = 20 // degrees between the inlet direction and each branch

func main() {
	var (
		width   = flag.Int("width", 400, "image width")
		height  = flag.Int("height", 160, "image height")
		num     = flag.Int("num", 10, "number of geometries generated")
		minW    = flag.Float64("min", 0.0, "min narrowing scale of the stenosed branch")
		maxW    = flag.Float64("max", 0.9, "max narrowing scale of the stenosed branch")
		out     = flag.String("out", "out", "output folder")
		clear   = flag.Bool("clear", false, "clear the output folder first")
		draw    = flag.Bool("draw", false, "save an annotated probe overlay")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		vessel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *out == "" {
		log.Fatal("No out path")
	}
	if *clear {
		if err := os.RemoveAll(*out); err != nil {
			log.Fatalf("Failed to clear output folder: %v", err)
		}
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("Failed to create output folder: %v", err)
	}

	splitX := float64(*width) / 5

	// Sweep the narrowing scale and save one geometry per step.
	for i := 0; i < *num; i++ {
		scale := *minW
		if *num > 1 {
			scale = *minW + (*maxW-*minW)*float64(i)/float64(*num-1)
		}

		b, err := anatomy.BuildBifurcation(*width, *height, splitX, splitAngle)
		if err != nil {
			log.Fatalf("Failed to build geometry: %v", err)
		}
		if err := b.Lower.AddNarrowing(0.5, 0.4, scale); err != nil {
			log.Fatalf("Failed to add narrowing: %v", err)
		}

		filename := filepath.Join(*out, fmt.Sprintf("bifurcation_%.4f.png", scale))
		if err := b.Canvas.Image().SavePNG(filename); err != nil {
			log.Fatalf("Failed to save %s: %v", filename, err)
		}
	}

	// Probe coordinates come from an unnarrowed model: narrowing never moves
	// the centerline, so they hold for every generated image.
	b, err := anatomy.BuildBifurcation(*width, *height, splitX, splitAngle)
	if err != nil {
		log.Fatalf("Failed to build geometry: %v", err)
	}
	probes, err := probePoints(b)
	if err != nil {
		log.Fatalf("Failed to sample probes: %v", err)
	}

	if err := writeProbes(filepath.Join(*out, "probe.txt"), probes); err != nil {
		log.Fatalf("Failed to write probe table: %v", err)
	}

	if *draw {
		overlay, err := annotate.Probes(b.Canvas.Image(), probes)
		if err != nil {
			log.Fatalf("Failed to annotate probes: %v", err)
		}
		if err := savePNG(filepath.Join(*out, "probes.png"), overlay); err != nil {
			log.Fatalf("Failed to save probe overlay: %v", err)
		}
	}

	log.Printf("Generated %d geometries in %s (%dx%d)\n", *num, *out, *width, *height)
}

// probePoints samples the instrumentation points used by the flow solver:
// one in the inlet, one in the healthy branch, and one on either side of
// the stenosis in the narrowed branch.
func probePoints(b *anatomy.Bifurcation) ([]annotate.Probe, error) {
	spots := []struct {
		label string
		seg   *vessel.Segment
		t     float64
	}{
		{"inlet", b.Inlet, 0.3},
		{"normal vein", b.Upper, 0.8},
		{"start narrow vein", b.Lower, 0.2},
		{"end narrow vein", b.Lower, 0.8},
	}

	probes := make([]annotate.Probe, 0, len(spots))
	for _, s := range spots {
		at, err := s.seg.ProbePoint(s.t)
		if err != nil {
			return nil, err
		}
		probes = append(probes, annotate.Probe{Label: s.label, At: at})
	}
	return probes, nil
}

// writeProbes saves the probe table as "label,x,y" lines.
func writeProbes(path string, probes []annotate.Probe) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	for _, p := range probes {
		if _, err := fmt.Fprintf(f, "%s,%g,%g\n", p.Label, p.At.X, p.At.Y); err != nil {
			return err
		}
	}
	return nil
}

// savePNG writes an image as a PNG file.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}
