// Package annotate overlays probe markers on rendered vessel images for
// human inspection. It is purely presentational: the geometry engine never
// depends on it.
package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hemodyn/vessel"
)

// Probe is one labeled instrumentation point in pixel space.
type Probe struct {
	Label string
	At    vessel.Point
}

// Marker and label color, chosen to stand out on the grayscale renders.
var markerColor = color.RGBA{R: 230, G: 81, B: 0, A: 255}

const (
	markerRadius = 3
	labelSize    = 11
	labelOffsetX = 6
	labelOffsetY = -4
)

// Probes returns an RGBA copy of src with a dot and text label drawn at
// every probe position. src is typically the Bitmap returned by
// vessel.Canvas.Image; it is not modified.
func Probes(src image.Image, probes []Probe) (*image.RGBA, error) {
	bounds := src.Bounds()
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, src, bounds.Min, draw.Src)

	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("annotate: parsing embedded font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    labelSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("annotate: creating font face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(markerColor),
		Face: face,
	}

	for _, p := range probes {
		drawMarker(out, p.At)
		drawer.Dot = fixed.P(int(p.At.X)+labelOffsetX, int(p.At.Y)+labelOffsetY)
		drawer.DrawString(p.Label)
	}

	return out, nil
}

// drawMarker draws a small filled dot centered on the probe position.
func drawMarker(img *image.RGBA, at vessel.Point) {
	cx, cy := int(at.X), int(at.Y)
	for dy := -markerRadius; dy <= markerRadius; dy++ {
		for dx := -markerRadius; dx <= markerRadius; dx++ {
			if dx*dx+dy*dy > markerRadius*markerRadius {
				continue
			}
			pt := image.Pt(cx+dx, cy+dy)
			if pt.In(img.Bounds()) {
				img.SetRGBA(pt.X, pt.Y, markerColor)
			}
		}
	}
}
