package anatomy

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hemodyn/vessel"
)

const epsilon = 1e-6

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func pointsNear(a, b vessel.Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestBuildBifurcation(t *testing.T) {
	b, err := BuildBifurcation(400, 160, 80, 20)
	if err != nil {
		t.Fatalf("BuildBifurcation: %v", err)
	}

	if b.Canvas.Width() != 400 || b.Canvas.Height() != 160 {
		t.Errorf("canvas %dx%d, want 400x160", b.Canvas.Width(), b.Canvas.Height())
	}
	if b.Canvas.NumSegments() != 3 {
		t.Errorf("NumSegments() = %d, want 3", b.Canvas.NumSegments())
	}

	// Inlet runs along the horizontal midline.
	start, err := b.Inlet.ProbePoint(0)
	if err != nil {
		t.Fatalf("ProbePoint: %v", err)
	}
	if !pointsNear(start, vessel.Pt(0, 80)) {
		t.Errorf("inlet start = %v, want (0, 80)", start)
	}

	// Branches exit at the right edge, symmetric about the midline.
	upEnd, _ := b.Upper.ProbePoint(1)
	downEnd, _ := b.Lower.ProbePoint(1)
	if !pointsNear(upEnd, vessel.Pt(400, 40)) {
		t.Errorf("upper branch exit = %v, want (400, 40)", upEnd)
	}
	if !pointsNear(downEnd, vessel.Pt(400, 120)) {
		t.Errorf("lower branch exit = %v, want (400, 120)", downEnd)
	}

	// Branch width is continuous with the inlet at the split.
	if got := b.Upper.StartWidth(); !near(got, 16) {
		t.Errorf("Upper.StartWidth() = %v, want 16", got)
	}
}

func TestBuildBifurcation_RendersContinuousLumen(t *testing.T) {
	b, err := BuildBifurcation(400, 160, 80, 20)
	if err != nil {
		t.Fatalf("BuildBifurcation: %v", err)
	}
	bm := b.Canvas.Image()

	// Every column from the inlet to the outlets intersects the lumen.
	for x := 0; x < 400; x++ {
		found := false
		for y := 0; y < 160 && !found; y++ {
			found = bm.Intensity(x, y) >= 128
		}
		if !found {
			t.Fatalf("no lumen in column x=%d", x)
		}
	}
}

func TestAbdominal(t *testing.T) {
	c, arteries, err := Abdominal(10)
	if err != nil {
		t.Fatalf("Abdominal: %v", err)
	}

	if c.Width() != 150 || c.Height() != 60 {
		t.Errorf("canvas %dx%d, want 150x60 at scale 10", c.Width(), c.Height())
	}

	want := []string{
		SupraceliacAorta, Aorta, Celiac,
		SuperiorMesenteric, InferiorMesenteric,
		LeftRenal, RightRenal, LeftIliac, RightIliac,
	}
	if len(arteries) != len(want) {
		t.Errorf("got %d arteries, want %d", len(arteries), len(want))
	}
	for _, name := range want {
		if arteries[name] == nil {
			t.Errorf("missing artery %q", name)
		}
	}
	if c.NumSegments() != len(want) {
		t.Errorf("NumSegments() = %d, want %d", c.NumSegments(), len(want))
	}
}

func TestAbdominal_AortaTaper(t *testing.T) {
	_, arteries, err := Abdominal(10)
	if err != nil {
		t.Fatalf("Abdominal: %v", err)
	}

	// The abdominal aorta starts at the supraceliac width (continuity at
	// the join) and tapers down to the end width.
	aorta := arteries[Aorta]
	if got := aorta.StartWidth(); !near(got, 20.7) {
		t.Errorf("aorta StartWidth() = %v, want 20.7", got)
	}
	if got := aorta.EndWidth(); !near(got, 16) {
		t.Errorf("aorta EndWidth() = %v, want 16", got)
	}

	// The abdominal aorta continues straight out of the supraceliac section.
	start, _ := aorta.ProbePoint(0)
	supraEnd, _ := arteries[SupraceliacAorta].ProbePoint(1)
	if !pointsNear(start, supraEnd) {
		t.Errorf("aorta starts at %v, want supraceliac end %v", start, supraEnd)
	}
}

func TestDefaultAortaParams(t *testing.T) {
	p := DefaultAortaParams(10)
	if p.Scale != 10 {
		t.Errorf("Scale = %v, want 10", p.Scale)
	}
	if p.SupraceliacWidth != 2.07 || p.IliacWidth != 1.04 {
		t.Errorf("unexpected default widths: %+v", p)
	}
}

func TestLoadAortaParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aorta.toml")
	content := "aorta_start_width = 2.0\nrenal_width = 0.6\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := LoadAortaParams(path, 10)
	if err != nil {
		t.Fatalf("LoadAortaParams: %v", err)
	}
	if p.AortaStartWidth != 2.0 {
		t.Errorf("AortaStartWidth = %v, want 2.0 from file", p.AortaStartWidth)
	}
	if p.RenalWidth != 0.6 {
		t.Errorf("RenalWidth = %v, want 0.6 from file", p.RenalWidth)
	}
	// Fields absent from the file keep their defaults.
	if p.CeliacWidth != 0.78 {
		t.Errorf("CeliacWidth = %v, want default 0.78", p.CeliacWidth)
	}
	if p.Scale != 10 {
		t.Errorf("Scale = %v, want 10", p.Scale)
	}
}

func TestLoadAortaParams_MissingFile(t *testing.T) {
	if _, err := LoadAortaParams(filepath.Join(t.TempDir(), "nope.toml"), 10); err == nil {
		t.Error("LoadAortaParams on a missing file should fail")
	}
}
