package anatomy

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// AortaParams holds the measurements used to assemble the idealized
// abdominal aorta model. All distances and diameters are in centimeters;
// Scale converts them to pixels.
//
// The defaults follow published measurements (Taylor, Hughes & Zarins 1998;
// Horejs et al. 1988; Boston Scientific peripheral vasculature tables), with
// a few inter-branch distances measured from a 3D scan of an actual aorta.
type AortaParams struct {
	// Scale is the number of pixels per centimeter.
	Scale float64 `toml:"scale"`

	SupraceliacWidth float64 `toml:"supraceliac_width"`
	AortaStartWidth  float64 `toml:"aorta_start_width"`
	AortaEndWidth    float64 `toml:"aorta_end_width"`

	CeliacPos   float64 `toml:"celiac_pos"`
	CeliacWidth float64 `toml:"celiac_width"`

	RenalPos   float64 `toml:"renal_pos"`
	RenalWidth float64 `toml:"renal_width"`

	SuperiorMesentericPos   float64 `toml:"superior_mesenteric_pos"`
	SuperiorMesentericWidth float64 `toml:"superior_mesenteric_width"`
	InferiorMesentericPos   float64 `toml:"inferior_mesenteric_pos"`
	InferiorMesentericWidth float64 `toml:"inferior_mesenteric_width"`

	BifurcationPos float64 `toml:"bifurcation_pos"`
	IliacWidth     float64 `toml:"iliac_width"`
}

// DefaultAortaParams returns the literature-based measurement table at the
// given scale (pixels per centimeter).
func DefaultAortaParams(scale float64) AortaParams {
	return AortaParams{
		Scale:                   scale,
		SupraceliacWidth:        2.07,
		AortaStartWidth:         1.75,
		AortaEndWidth:           1.6,
		CeliacPos:               1,
		CeliacWidth:             0.78,
		RenalPos:                4,
		RenalWidth:              0.5,
		SuperiorMesentericPos:   3,
		SuperiorMesentericWidth: 0.7,
		InferiorMesentericPos:   8,
		InferiorMesentericWidth: 0.4,
		BifurcationPos:          11,
		IliacWidth:              1.04,
	}
}

// LoadAortaParams reads a TOML measurement table from path, applied on top
// of the defaults at the given scale: fields absent from the file keep their
// default value.
func LoadAortaParams(path string, scale float64) (AortaParams, error) {
	p := DefaultAortaParams(scale)
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return AortaParams{}, fmt.Errorf("anatomy: reading params: %w", err)
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return AortaParams{}, fmt.Errorf("anatomy: parsing params: %w", err)
	}
	return p, nil
}
