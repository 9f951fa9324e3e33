package vessel

// Centerline curves for segment geometry.
// Based on kurbo patterns, adapted for Go idioms.

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// NewHermite builds the cubic Hermite interpolant between p0 and p1 with
// boundary tangent directions given in degrees, expressed in Bezier form.
//
// The control handles have length |p1-p0|/3 along the tangent directions,
// which guarantees:
//   - the curve passes exactly through both endpoints
//   - the tangent at the start points at startDeg
//   - the tangent at the end points at endDeg
//
// Endpoint tangency is what child segments attached at an End rely on for
// C1-continuous branching; no consumer depends on the interior shape.
func NewHermite(p0, p1 Point, startDeg, endDeg float64) CubicBez {
	d := p0.Distance(p1)
	return CubicBez{
		P0: p0,
		P1: p0.Add(Unit(startDeg).Mul(d / 3)),
		P2: p1.Add(Unit(endDeg).Mul(-d / 3)),
		P3: p1,
	}
}

// Eval evaluates the curve at parameter u (0 to 1).
func (c CubicBez) Eval(u float64) Point {
	mu := 1.0 - u
	mu2 := mu * mu
	mu3 := mu2 * mu
	u2 := u * u
	u3 := u2 * u

	// (1-u)^3 * P0 + 3(1-u)^2*u * P1 + 3(1-u)*u^2 * P2 + u^3 * P3
	return Point{
		X: mu3*c.P0.X + 3*mu2*u*c.P1.X + 3*mu*u2*c.P2.X + u3*c.P3.X,
		Y: mu3*c.P0.Y + 3*mu2*u*c.P1.Y + 3*mu*u2*c.P2.Y + u3*c.P3.Y,
	}
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Point {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Point {
	return c.P3
}

// Deriv evaluates the derivative (velocity) vector at parameter u.
func (c CubicBez) Deriv(u float64) Vec2 {
	mu := 1.0 - u
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return Vec2{
		X: 3 * (d0.X*mu*mu + 2*d1.X*mu*u + d2.X*u*u),
		Y: 3 * (d0.Y*mu*mu + 2*d1.Y*mu*u + d2.Y*u*u),
	}
}

// Tangent returns the unit tangent vector at parameter u.
// Falls back to the chord direction if the derivative degenerates.
func (c CubicBez) Tangent(u float64) Vec2 {
	d := c.Deriv(u)
	if d.IsZero() {
		return c.P3.Sub(c.P0).Normalize()
	}
	return d.Normalize()
}

// arcSamples is the number of subdivisions used for the arc-length table.
// 256 keeps the chord-length error well below a tenth of a pixel for
// centerlines at the scales this package renders.
const arcSamples = 256

// arcTable maps fractions of arc length to points on a flattened curve.
//
// Probe sampling, width-profile evaluation and the rasterizer all go through
// the same table, so probe coordinates are guaranteed to land on the rendered
// centerline.
type arcTable struct {
	pts   [arcSamples + 1]Point
	cum   [arcSamples + 1]float64 // cumulative chord length up to pts[i]
	total float64
}

// newArcTable flattens the curve into arcSamples chords and accumulates
// their lengths.
func newArcTable(c CubicBez) *arcTable {
	t := &arcTable{}
	t.pts[0] = c.Eval(0)
	for i := 1; i <= arcSamples; i++ {
		t.pts[i] = c.Eval(float64(i) / arcSamples)
		t.cum[i] = t.cum[i-1] + t.pts[i].Distance(t.pts[i-1])
	}
	t.total = t.cum[arcSamples]
	return t
}

// Length returns the total arc length of the flattened curve.
func (t *arcTable) Length() float64 {
	return t.total
}

// PointAt returns the point at arc-length fraction s in [0, 1].
func (t *arcTable) PointAt(s float64) Point {
	target := s * t.total
	i := t.search(target)
	seg := t.cum[i+1] - t.cum[i]
	if seg == 0 {
		return t.pts[i]
	}
	return t.pts[i].Lerp(t.pts[i+1], (target-t.cum[i])/seg)
}

// search returns the index i such that cum[i] <= target <= cum[i+1].
func (t *arcTable) search(target float64) int {
	lo, hi := 0, arcSamples-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.cum[mid] <= target {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
