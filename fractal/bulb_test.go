package fractal_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/fractal"
)

func bulbSamples() []r3.Vec {
	var pts []r3.Vec
	for _, x := range []float64{-2, -1.1, -0.5, 0, 0.3, 0.9, 1.7} {
		for _, y := range []float64{-1.3, 0, 0.6} {
			for _, z := range []float64{-0.8, 0.1, 1.9} {
				pts = append(pts, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return pts
}

func TestBulbFiniteAndPositive(t *testing.T) {
	s := fractal.Bulb(8, 12, 2)
	for _, p := range bulbSamples() {
		d := s.Evaluate(p)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Fatalf("bulb at %v = %g", p, d)
		}
		if d <= 0 {
			t.Errorf("bulb at %v = %g, want > 0", p, d)
		}
	}
}

func TestBulbEstimateIsLowerBound(t *testing.T) {
	// Outside the bounding radius there is no set point, so the true
	// distance is at least |p| - boundRadius. The estimate must not
	// exceed the trivial upper bound |p| + boundRadius either.
	s := fractal.Bulb(8, 12, 2)
	for _, p := range []r3.Vec{{X: 3}, {Y: -4, Z: 1}, {X: 2, Y: 2, Z: 2}} {
		d := s.Evaluate(p)
		if d <= 0 || d > r3.Norm(p)+1.5 {
			t.Errorf("bulb estimate at %v = %g, want in (0, %g]", p, d, r3.Norm(p)+1.5)
		}
	}
}

func TestBulbClampNearSet(t *testing.T) {
	s := fractal.Bulb(8, 12, 2)
	// The origin never escapes. The estimator's singularity there must
	// be clamped to a small positive value, not NaN or zero.
	d := s.Evaluate(r3.Vec{})
	if !(d > 0) || d > 1e-6 {
		t.Errorf("bulb at origin = %g, want tiny positive clamp", d)
	}
}

func TestBulbDeterministic(t *testing.T) {
	a := fractal.Bulb(8, 10, 2)
	b := fractal.Bulb(8, 10, 2)
	for _, p := range bulbSamples() {
		if da, db := a.Evaluate(p), b.Evaluate(p); da != db {
			t.Fatalf("bulb at %v: %g != %g across instances", p, da, db)
		}
	}
}

func TestJuliabulbFiniteAndDeterministic(t *testing.T) {
	c := r3.Vec{X: 0.35, Y: 0.35, Z: 0.4}
	a := fractal.Juliabulb(8, c, 10, 2)
	b := fractal.Juliabulb(8, c, 10, 2)
	for _, p := range bulbSamples() {
		da := a.Evaluate(p)
		if math.IsNaN(da) || math.IsInf(da, 0) || da <= 0 {
			t.Fatalf("juliabulb at %v = %g", p, da)
		}
		if db := b.Evaluate(p); da != db {
			t.Fatalf("juliabulb at %v: %g != %g across instances", p, da, db)
		}
	}
}

func TestJuliabulbDiffersFromBulb(t *testing.T) {
	bulb := fractal.Bulb(8, 10, 2)
	julia := fractal.Juliabulb(8, r3.Vec{X: 0.35, Y: 0.35, Z: 0.4}, 10, 2)
	differs := false
	for _, p := range bulbSamples() {
		if bulb.Evaluate(p) != julia.Evaluate(p) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("julia variant is identical to the mandelbulb on all samples")
	}
}

func TestBulbParamPanics(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func()
	}{
		{"power < 2", func() { fractal.Bulb(1.5, 10, 2) }},
		{"maxIter zero", func() { fractal.Bulb(8, 0, 2) }},
		{"maxIter over cap", func() { fractal.Bulb(8, 65, 2) }},
		{"escape <= 1", func() { fractal.Bulb(8, 10, 1) }},
		{"julia bad power", func() { fractal.Juliabulb(0, r3.Vec{}, 10, 2) }},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("constructor did not panic")
				}
			}()
			tc.fn()
		})
	}
}
