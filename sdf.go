package vessel

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// sdfTaperedCapsule computes the signed distance from p to a capsule with
// axis a-b whose radius interpolates linearly from ra at a to rb at b.
// Negative values are inside, positive values are outside.
//
// The linear-radius approximation differs from the exact cone-capsule
// distance only when ra and rb differ strongly over a single chord; the
// flattened centerlines rendered here change radius by a tiny amount per
// chord, keeping the error far below the anti-alias width.
func sdfTaperedCapsule(p, a, b Point, ra, rb float64) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	lenSq := ab.LengthSq()
	h := 0.0
	if lenSq > 0 {
		h = ap.Dot(ab) / lenSq
		h = math.Max(0, math.Min(1, h))
	}
	return ap.Sub(ab.Mul(h)).Length() - (ra + (rb-ra)*h)
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}
