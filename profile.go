package vessel

import (
	"fmt"
	"math"
)

// Narrowing is a localized multiplicative width reduction (a stenosis).
//
// Loc is the center of the affected region and Length its extent, both as
// fractions of arc length in [0, 1]; the support [Loc-Length/2, Loc+Length/2]
// is clamped to the segment. Scale in [0, 1] is the minimum width factor,
// reached at the center.
type Narrowing struct {
	Loc    float64
	Length float64
	Scale  float64
}

// factor returns the multiplicative width factor at arc-length fraction t.
//
// A raised-cosine bump: 1 at and outside the support boundary, Scale at the
// center, continuous with continuous derivative everywhere so the rendered
// lumen edge shows no seams.
func (n Narrowing) factor(t float64) float64 {
	if n.Length <= 0 {
		return 1
	}
	lo := math.Max(n.Loc-n.Length/2, 0)
	hi := math.Min(n.Loc+n.Length/2, 1)
	if t <= lo || t >= hi || hi <= lo {
		return 1
	}
	u := (t - lo) / (hi - lo)
	bump := 0.5 - 0.5*math.Cos(2*math.Pi*u)
	return 1 - (1-n.Scale)*bump
}

// widthProfile is the width of a segment along its arc length: a linear
// baseline from startWidth to endWidth, multiplied by every narrowing.
// Modifiers compose multiplicatively, so the order they were added in
// does not affect the result.
type widthProfile struct {
	startWidth float64
	endWidth   float64
	narrowings []Narrowing
}

// Eval returns the width at arc-length fraction t in [0, 1].
func (p *widthProfile) Eval(t float64) float64 {
	w := p.startWidth + (p.endWidth-p.startWidth)*t
	for _, n := range p.narrowings {
		w *= n.factor(t)
	}
	return w
}

// addNarrowing validates and appends a modifier. The profile is unchanged
// when an error is returned.
func (p *widthProfile) addNarrowing(loc, length, scale float64) error {
	if loc < 0 || loc > 1 {
		return fmt.Errorf("%w: narrowing loc %g outside [0, 1]", ErrOutOfRange, loc)
	}
	if length < 0 || length > 1 {
		return fmt.Errorf("%w: narrowing length %g outside [0, 1]", ErrOutOfRange, length)
	}
	if scale < 0 || scale > 1 {
		return fmt.Errorf("%w: narrowing scale %g outside [0, 1]", ErrOutOfRange, scale)
	}
	p.narrowings = append(p.narrowings, Narrowing{Loc: loc, Length: length, Scale: scale})
	return nil
}
