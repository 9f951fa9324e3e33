package vessel

import (
	"math"
	"testing"
)

func TestNewHermite_Endpoints(t *testing.T) {
	tests := []struct {
		name     string
		p0, p1   Point
		a0, a1   float64
	}{
		{"straight", Pt(0, 80), Pt(80, 80), 0, 0},
		{"turning", Pt(10, 0), Pt(20, 0), -50, -90},
		{"diagonal", Pt(0, 0), Pt(100, 50), 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewHermite(tt.p0, tt.p1, tt.a0, tt.a1)
			if !pointsEqual(c.Eval(0), tt.p0, epsilon) {
				t.Errorf("Eval(0) = %v, want %v", c.Eval(0), tt.p0)
			}
			if !pointsEqual(c.Eval(1), tt.p1, epsilon) {
				t.Errorf("Eval(1) = %v, want %v", c.Eval(1), tt.p1)
			}
		})
	}
}

func TestNewHermite_BoundaryTangents(t *testing.T) {
	c := NewHermite(Pt(0, 0), Pt(100, 50), 30, -90)

	start := c.Tangent(0)
	if math.Abs(start.Atan2()-30) > 1e-9 {
		t.Errorf("start tangent angle = %v, want 30", start.Atan2())
	}

	end := c.Tangent(1)
	if math.Abs(end.Atan2()-(-90)) > 1e-9 {
		t.Errorf("end tangent angle = %v, want -90", end.Atan2())
	}
}

func TestNewHermite_StraightLineIsLinear(t *testing.T) {
	c := NewHermite(Pt(0, 80), Pt(320, 80), 0, 0)
	for _, u := range []float64{0.1, 0.25, 0.5, 0.9} {
		got := c.Eval(u)
		want := Pt(320*u, 80)
		if !pointsEqual(got, want, 1e-6) {
			t.Errorf("Eval(%v) = %v, want %v", u, got, want)
		}
	}
}

func TestArcTable_Length(t *testing.T) {
	c := NewHermite(Pt(0, 0), Pt(100, 0), 0, 0)
	at := newArcTable(c)
	if math.Abs(at.Length()-100) > 1e-6 {
		t.Errorf("Length() = %v, want 100", at.Length())
	}
}

func TestArcTable_PointAt(t *testing.T) {
	c := NewHermite(Pt(0, 0), Pt(100, 0), 0, 0)
	at := newArcTable(c)

	tests := []struct {
		name string
		s    float64
		want Point
	}{
		{"start", 0, Pt(0, 0)},
		{"end", 1, Pt(100, 0)},
		{"middle", 0.5, Pt(50, 0)},
		{"quarter", 0.25, Pt(25, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := at.PointAt(tt.s)
			if !pointsEqual(got, tt.want, 1e-6) {
				t.Errorf("PointAt(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestArcTable_UniformSpeed(t *testing.T) {
	// A curved Hermite has non-uniform Bezier parameterization, but
	// arc-length sampling must advance by equal distances.
	c := NewHermite(Pt(0, 0), Pt(100, 60), 60, -20)
	at := newArcTable(c)

	const n = 20
	prev := at.PointAt(0)
	step := at.Length() / n
	for i := 1; i <= n; i++ {
		cur := at.PointAt(float64(i) / n)
		d := prev.Distance(cur)
		if math.Abs(d-step) > step*0.05 {
			t.Errorf("step %d: distance %v, want %v within 5%%", i, d, step)
		}
		prev = cur
	}
}
