package vessel

import (
	"errors"
	"math"
	"testing"
)

func TestWidthProfile_Baseline(t *testing.T) {
	p := widthProfile{startWidth: 10, endWidth: 20}
	for _, tc := range []struct {
		t    float64
		want float64
	}{
		{0, 10},
		{0.5, 15},
		{1, 20},
		{0.25, 12.5},
	} {
		if got := p.Eval(tc.t); math.Abs(got-tc.want) > epsilon {
			t.Errorf("Eval(%v) = %v, want %v", tc.t, got, tc.want)
		}
	}
}

func TestNarrowing_Factor(t *testing.T) {
	n := Narrowing{Loc: 0.5, Length: 0.4, Scale: 0.3}

	if got := n.factor(0.5); math.Abs(got-0.3) > epsilon {
		t.Errorf("factor at center = %v, want 0.3", got)
	}
	for _, tc := range []float64{0, 0.29, 0.71, 1} {
		if got := n.factor(tc); got != 1 {
			t.Errorf("factor(%v) = %v, want 1 outside support", tc, got)
		}
	}
	// Smooth approach to 1 at the support boundary, no discontinuity.
	if got := n.factor(0.31); got < 0.99 {
		t.Errorf("factor(0.31) = %v, want near 1 close to support edge", got)
	}
}

func TestNarrowing_SupportClamped(t *testing.T) {
	// Support would extend past t=1; the clamp keeps the bump in-domain
	// without rejecting the modifier.
	n := Narrowing{Loc: 0.9, Length: 0.4, Scale: 0.5}
	if got := n.factor(0.5); got != 1 {
		t.Errorf("factor(0.5) = %v, want 1 before clamped support", got)
	}
	if got := n.factor(0.95); got >= 1 {
		t.Errorf("factor(0.95) = %v, want < 1 inside clamped support", got)
	}
}

func TestWidthProfile_NarrowingReducesMidpoint(t *testing.T) {
	for _, scale := range []float64{0, 0.3, 0.7, 0.99} {
		p := widthProfile{startWidth: 16, endWidth: 16}
		if err := p.addNarrowing(0.5, 0.4, scale); err != nil {
			t.Fatalf("addNarrowing: %v", err)
		}
		if p.Eval(0.5) > p.Eval(0) || p.Eval(0.5) > p.Eval(1) {
			t.Errorf("scale %v: midpoint width %v exceeds end widths", scale, p.Eval(0.5))
		}
	}
}

func TestWidthProfile_NarrowingContinuousInScale(t *testing.T) {
	// As scale approaches 1 the narrowed profile converges to the baseline.
	base := widthProfile{startWidth: 16, endWidth: 16}
	for _, scale := range []float64{0.9, 0.99, 0.999} {
		p := widthProfile{startWidth: 16, endWidth: 16}
		if err := p.addNarrowing(0.5, 0.4, scale); err != nil {
			t.Fatalf("addNarrowing: %v", err)
		}
		maxDiff := 0.0
		for i := 0; i <= 100; i++ {
			tt := float64(i) / 100
			if d := math.Abs(p.Eval(tt) - base.Eval(tt)); d > maxDiff {
				maxDiff = d
			}
		}
		if maxDiff > 16*(1-scale)+epsilon {
			t.Errorf("scale %v: max deviation %v exceeds bound %v", scale, maxDiff, 16*(1-scale))
		}
	}
}

func TestWidthProfile_NarrowingsCommute(t *testing.T) {
	a := Narrowing{Loc: 0.3, Length: 0.3, Scale: 0.5}
	b := Narrowing{Loc: 0.45, Length: 0.4, Scale: 0.7}

	p1 := widthProfile{startWidth: 10, endWidth: 20}
	p1.narrowings = []Narrowing{a, b}
	p2 := widthProfile{startWidth: 10, endWidth: 20}
	p2.narrowings = []Narrowing{b, a}

	for i := 0; i <= 50; i++ {
		tt := float64(i) / 50
		if math.Abs(p1.Eval(tt)-p2.Eval(tt)) > epsilon {
			t.Errorf("Eval(%v): order-dependent result %v vs %v", tt, p1.Eval(tt), p2.Eval(tt))
		}
	}
}

func TestWidthProfile_AddNarrowingValidation(t *testing.T) {
	tests := []struct {
		name               string
		loc, length, scale float64
	}{
		{"negative loc", -0.1, 0.4, 0.5},
		{"loc above one", 1.1, 0.4, 0.5},
		{"negative length", 0.5, -0.1, 0.5},
		{"length above one", 0.5, 1.5, 0.5},
		{"negative scale", 0.5, 0.4, -0.2},
		{"scale above one", 0.5, 0.4, 1.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := widthProfile{startWidth: 10, endWidth: 10}
			err := p.addNarrowing(tt.loc, tt.length, tt.scale)
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("addNarrowing(%v, %v, %v) = %v, want ErrOutOfRange",
					tt.loc, tt.length, tt.scale, err)
			}
			if len(p.narrowings) != 0 {
				t.Error("failed addNarrowing must not mutate the profile")
			}
		})
	}
}
