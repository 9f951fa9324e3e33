package vessel

import (
	"math"
	"runtime"
	"sync"
)

// renderChordLength is the target chord length in pixels when flattening a
// centerline for rendering. Two-pixel chords keep the polyline within a
// small fraction of the anti-alias width of the true curve.
const renderChordLength = 2.0

// flatTube is one segment flattened into a chain of tapered capsules:
// polyline points with a lumen half-width at each point.
type flatTube struct {
	pts   []Point
	radii []float64
	bbox  Rect // inflated by the local radius and the anti-alias width
}

// flatten samples the segment's arc-length table at roughly
// renderChordLength spacing.
func (s *Segment) flatten() flatTube {
	step := 1
	if s.arc.total > renderChordLength {
		step = int(math.Max(1, math.Floor(renderChordLength/(s.arc.total/arcSamples))))
	}

	ft := flatTube{}
	for i := 0; i <= arcSamples; i += step {
		ft.addSample(s, i)
	}
	if (arcSamples % step) != 0 {
		ft.addSample(s, arcSamples)
	}

	ft.bbox = NewRect(ft.pts[0], ft.pts[0]).Inset(ft.radii[0])
	for i := 1; i < len(ft.pts); i++ {
		ft.bbox = ft.bbox.Union(NewRect(ft.pts[i], ft.pts[i]).Inset(ft.radii[i]))
	}
	ft.bbox = ft.bbox.Inset(sdfAntialiasWidth)
	return ft
}

func (ft *flatTube) addSample(s *Segment, i int) {
	frac := 0.0
	if s.arc.total > 0 {
		frac = s.arc.cum[i] / s.arc.total
	}
	ft.pts = append(ft.pts, s.arc.pts[i])
	ft.radii = append(ft.radii, s.profile.Eval(frac)/2)
}

// sdf returns the signed distance from p to the tube surface: the minimum
// over all capsule chords. Iteration stops early once p is known to be
// deep inside, where coverage saturates anyway.
func (ft *flatTube) sdf(p Point) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(ft.pts); i++ {
		d := sdfTaperedCapsule(p, ft.pts[i], ft.pts[i+1], ft.radii[i], ft.radii[i+1])
		if d < best {
			best = d
			if best <= -sdfAntialiasWidth {
				break
			}
		}
	}
	return best
}

// Image rasterizes the whole vessel tree into a fresh grayscale buffer.
//
// Every pixel's intensity encodes anti-aliased membership in the union of
// all segments' swept tube regions: 255 inside the lumen, 0 in the
// background, a smoothstep ramp along the boundary. Overlapping segments
// (bifurcation joins) take the maximum coverage, so unions render seamlessly
// without double intensity.
//
// Image is a pure query over the current tree: it recomputes the buffer from
// geometry on every call and returns byte-identical results for an unchanged
// tree, regardless of how many scanline bands are rendered in parallel.
func (c *Canvas) Image() *Bitmap {
	bm := NewBitmap(c.width, c.height)

	tubes := make([]flatTube, len(c.segments))
	for i, s := range c.segments {
		tubes[i] = s.flatten()
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > c.height {
		workers = c.height
	}
	band := (c.height + workers - 1) / workers

	Logger().Debug("vessel: render",
		"width", c.width, "height", c.height,
		"segments", len(c.segments), "bands", workers)

	var wg sync.WaitGroup
	for y0 := 0; y0 < c.height; y0 += band {
		y1 := y0 + band
		if y1 > c.height {
			y1 = c.height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			c.renderBand(bm, tubes, y0, y1)
		}(y0, y1)
	}
	wg.Wait()

	return bm
}

// renderBand fills scanlines [y0, y1). Bands cover disjoint rows, so
// concurrent bands never write the same pixel.
func (c *Canvas) renderBand(bm *Bitmap, tubes []flatTube, y0, y1 int) {
	for y := y0; y < y1; y++ {
		py := float64(y) + 0.5
		for x := 0; x < c.width; x++ {
			p := Pt(float64(x)+0.5, py)

			cov := 0.0
			for i := range tubes {
				if !tubes[i].bbox.Contains(p) {
					continue
				}
				if v := smoothstepCoverage(tubes[i].sdf(p)); v > cov {
					cov = v
					if cov >= 1 {
						break
					}
				}
			}
			if cov > 0 {
				bm.SetIntensity(x, y, uint8(math.Round(cov*255)))
			}
		}
	}
}
