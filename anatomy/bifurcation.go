package anatomy

import "github.com/hemodyn/vessel"

// branchWidthRatio is the width of each branch relative to the inlet.
const branchWidthRatio = 0.75

// Bifurcation is an inlet vessel splitting symmetrically into two branches
// that level off and exit at the right edge of the canvas.
//
// The segments are exposed so callers can shape them further; the usual use
// is adding a narrowing to one branch and probing all three.
type Bifurcation struct {
	Canvas *vessel.Canvas

	// Inlet runs horizontally from the left edge to the split point.
	Inlet *vessel.Segment

	// Upper leaves the split at -angle (toward -Y) and exits at the right
	// edge a quarter height from the top.
	Upper *vessel.Segment

	// Lower leaves the split at +angle and exits a quarter height from the
	// bottom.
	Lower *vessel.Segment
}

// BuildBifurcation constructs a symmetric bifurcation on a width x height
// canvas. The inlet runs from (0, height/2) to (splitX, height/2) with a
// lumen width of height/10; the branches fan out at plus and minus angleDeg
// from the inlet direction and exit horizontally at the right edge.
func BuildBifurcation(width, height int, splitX, angleDeg float64) (*Bifurcation, error) {
	w := float64(width)
	h := float64(height)
	inletWidth := h / 10

	c, err := vessel.New(width, height)
	if err != nil {
		return nil, err
	}

	inlet, err := c.AddVessel(vessel.Pt(0, h/2), vessel.Pt(splitX, h/2), inletWidth)
	if err != nil {
		return nil, err
	}
	endUpper := inlet.AddEnd(-angleDeg)
	endLower := inlet.AddEnd(angleDeg)

	branchWidth := inletWidth * branchWidthRatio
	upper, err := inlet.AppendVessel(endUpper, vessel.Pt(w, h/4), branchWidth,
		vessel.WithEndAngle(0))
	if err != nil {
		return nil, err
	}
	lower, err := inlet.AppendVessel(endLower, vessel.Pt(w, 3*h/4), branchWidth,
		vessel.WithEndAngle(0))
	if err != nil {
		return nil, err
	}

	return &Bifurcation{
		Canvas: c,
		Inlet:  inlet,
		Upper:  upper,
		Lower:  lower,
	}, nil
}
