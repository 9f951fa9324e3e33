// Package anatomy assembles named vascular models from the vessel geometry
// engine: an idealized bifurcation and a flattened abdominal aorta built
// from realistic measurement tables.
package anatomy

import (
	"math"

	"github.com/hemodyn/vessel"
)

// Artery names returned by Abdominal.
const (
	SupraceliacAorta   = "supraceliac_aorta"
	Aorta              = "aorta"
	Celiac             = "celiac"
	SuperiorMesenteric = "superior_mesenteric"
	InferiorMesenteric = "inferior_mesenteric"
	LeftRenal          = "left_renal"
	RightRenal         = "right_renal"
	LeftIliac          = "left_iliac"
	RightIliac         = "right_iliac"
)

// Abdominal builds the idealized flattened abdominal aorta at the given
// scale (pixels per centimeter) using the default measurement table.
func Abdominal(scale float64) (*vessel.Canvas, map[string]*vessel.Segment, error) {
	return AbdominalWith(DefaultAortaParams(scale))
}

// AbdominalWith builds the idealized flattened abdominal aorta from an
// explicit measurement table.
//
// The model contains the aorta from the supraceliac section down to the
// iliac bifurcation, the celiac artery, both renal arteries, both mesenteric
// arteries and both iliac arteries. The aorta is split at the celiac branch
// point because the abdominal aorta narrows slightly from there on.
//
// It returns the canvas holding all vessels and the individual arteries
// keyed by the name constants above, so callers can taper, narrow or probe
// them individually.
func AbdominalWith(p AortaParams) (*vessel.Canvas, map[string]*vessel.Segment, error) {
	s := p.Scale
	widthPx := int(math.Round(15 * s))
	heightPx := int(math.Round(6 * s))
	w := float64(widthPx)
	h := float64(heightPx)

	// Upper edge of the aorta, used to socket the unattached front branches
	// just inside the lumen.
	aortaTop := h/2 - math.Min(p.AortaStartWidth, p.AortaEndWidth)*s/2 + 0.3*s

	c, err := vessel.New(widthPx, heightPx)
	if err != nil {
		return nil, nil, err
	}

	supraceliac, err := c.AddVessel(
		vessel.Pt(0, h/2),
		vessel.Pt(p.RenalPos*s, h/2),
		p.SupraceliacWidth*s,
	)
	if err != nil {
		return nil, nil, err
	}
	endLeft := supraceliac.AddEnd(30)
	endCenter := supraceliac.AddEnd(0)
	endRight := supraceliac.AddEnd(-30)

	aorta, err := supraceliac.AppendVessel(endCenter,
		vessel.Pt(p.BifurcationPos*s, h/2), p.AortaStartWidth*s)
	if err != nil {
		return nil, nil, err
	}
	if err := aorta.TaperTo(p.AortaEndWidth * s); err != nil {
		return nil, nil, err
	}
	iliacLeft := aorta.AddEnd(30)
	iliacRight := aorta.AddEnd(-30)

	leftIliac, err := aorta.AppendVessel(iliacLeft, vessel.Pt(w, 5*s), p.IliacWidth*s)
	if err != nil {
		return nil, nil, err
	}
	rightIliac, err := aorta.AppendVessel(iliacRight, vessel.Pt(w, 1*s), p.IliacWidth*s)
	if err != nil {
		return nil, nil, err
	}

	celiac, err := c.AddVessel(
		vessel.Pt(p.CeliacPos*s, aortaTop-0.3*s),
		vessel.Pt(p.CeliacPos*s+1*s, 0),
		p.CeliacWidth*s,
		vessel.WithStartAngle(-50),
		vessel.WithEndAngle(-90),
	)
	if err != nil {
		return nil, nil, err
	}

	leftRenal, err := supraceliac.AppendVessel(endLeft,
		vessel.Pt(p.RenalPos*s+2.5*s, h), p.RenalWidth*s,
		vessel.WithEndAngle(90))
	if err != nil {
		return nil, nil, err
	}
	rightRenal, err := supraceliac.AppendVessel(endRight,
		vessel.Pt(p.RenalPos*s+2.5*s, 0), p.RenalWidth*s,
		vessel.WithEndAngle(-90))
	if err != nil {
		return nil, nil, err
	}

	superiorMesenteric, err := c.AddVessel(
		vessel.Pt(p.SuperiorMesentericPos*s, aortaTop-0.3*s),
		vessel.Pt(p.SuperiorMesentericPos*s+0.9*s, 0),
		p.SuperiorMesentericWidth*s,
		vessel.WithStartAngle(-40),
		vessel.WithEndAngle(-90),
	)
	if err != nil {
		return nil, nil, err
	}
	inferiorMesenteric, err := c.AddVessel(
		vessel.Pt(p.InferiorMesentericPos*s, aortaTop),
		vessel.Pt(p.InferiorMesentericPos*s+1*s, 0),
		p.InferiorMesentericWidth*s,
		vessel.WithStartAngle(-60),
		vessel.WithEndAngle(-90),
	)
	if err != nil {
		return nil, nil, err
	}

	arteries := map[string]*vessel.Segment{
		SupraceliacAorta:   supraceliac,
		Aorta:              aorta,
		Celiac:             celiac,
		SuperiorMesenteric: superiorMesenteric,
		InferiorMesenteric: inferiorMesenteric,
		LeftRenal:          leftRenal,
		RightRenal:         rightRenal,
		LeftIliac:          leftIliac,
		RightIliac:         rightIliac,
	}
	return c, arteries, nil
}
