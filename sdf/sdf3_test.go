package sdf_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/form3"
	"sdfview/sdf"
)

const tol = 1e-9

func TestUnionTwoSpheres(t *testing.T) {
	a := form3.Sphere(1)
	b := sdf.Transform3D(form3.Sphere(1), sdf.Translate3D(r3.Vec{X: 3}))
	u := sdf.Union3D(a, b)

	// Inside A the union must report A's distance.
	if d := u.Evaluate(r3.Vec{}); math.Abs(d-(-1)) > tol {
		t.Errorf("union at origin = %g, want -1", d)
	}
	// At the midpoint the union is the minimum of both (equal here).
	mid := r3.Vec{X: 1.5}
	want := math.Min(a.Evaluate(mid), b.Evaluate(mid))
	if d := u.Evaluate(mid); math.Abs(d-want) > tol {
		t.Errorf("union at midpoint = %g, want %g", d, want)
	}
}

func TestIntersectTwoSpheres(t *testing.T) {
	a := form3.Sphere(1)
	b := sdf.Transform3D(form3.Sphere(1), sdf.Translate3D(r3.Vec{X: 3}))
	in := sdf.Intersect3D(a, b)
	for _, p := range []r3.Vec{{}, {X: 1.5}, {X: 3}, {Y: 2}} {
		want := math.Max(a.Evaluate(p), b.Evaluate(p))
		if d := in.Evaluate(p); math.Abs(d-want) > tol {
			t.Errorf("intersection at %v = %g, want %g", p, d, want)
		}
	}
}

func TestDifference(t *testing.T) {
	box := form3.Box(r3.Vec{X: 2, Y: 2, Z: 2}, 0)
	hole := form3.Sphere(0.5)
	d := sdf.Difference3D(box, hole)
	// The carved center is outside the solid by the hole radius.
	if got := d.Evaluate(r3.Vec{}); math.Abs(got-0.5) > tol {
		t.Errorf("difference at center = %g, want 0.5", got)
	}
	// Far from the hole the difference equals the box.
	p := r3.Vec{X: 3}
	if got, want := d.Evaluate(p), box.Evaluate(p); math.Abs(got-want) > tol {
		t.Errorf("difference at %v = %g, want %g", p, got, want)
	}
}

func TestPolyMinHardFallback(t *testing.T) {
	min0 := sdf.PolyMin(0)
	for _, tc := range [][2]float64{{0, 0}, {1, -1}, {-3, 2}, {1e9, -1e9}, {0.5, 0.5}} {
		if got, want := min0(tc[0], tc[1]), math.Min(tc[0], tc[1]); got != want {
			t.Errorf("PolyMin(0)(%g, %g) = %g, want %g", tc[0], tc[1], got, want)
		}
	}
}

func TestPolyMinBlend(t *testing.T) {
	const k = 0.1
	smooth := sdf.PolyMin(k)
	// Far from equality the smooth minimum is exactly the hard minimum.
	if got := smooth(5, -5); got != -5 {
		t.Errorf("smooth(5,-5) = %g, want -5", got)
	}
	// Near equality it dips below the hard minimum but never by more than k/4.
	got := smooth(0.2, 0.2)
	if got > 0.2 || got < 0.2-k/4-tol {
		t.Errorf("smooth(0.2,0.2) = %g, want in [%g, 0.2]", got, 0.2-k/4)
	}
}

func TestPolyMaxHardFallback(t *testing.T) {
	max0 := sdf.PolyMax(0)
	if got := max0(1, -1); got != 1 {
		t.Errorf("PolyMax(0)(1,-1) = %g, want 1", got)
	}
}

func TestSmoothUnionNoSignFlip(t *testing.T) {
	// A smooth union must not report inside where both children are
	// far outside.
	u := sdf.Union3D(
		form3.Sphere(0.2),
		sdf.Transform3D(form3.Sphere(0.2), sdf.Translate3D(r3.Vec{X: 5})),
	)
	u.SetMin(sdf.PolyMin(0.05))
	if d := u.Evaluate(r3.Vec{Y: 3}); d <= 0 {
		t.Errorf("smooth union outside both children = %g, want > 0", d)
	}
}

func TestTransformRigidPreservesDistance(t *testing.T) {
	s := form3.Sphere(1)
	offset := r3.Vec{X: 0.4, Y: -0.7, Z: 1.1}
	m := sdf.Translate3D(offset).Mul(sdf.RotateZ(0.8)).Mul(sdf.RotateX(-0.3))
	ts := sdf.Transform3D(s, m)
	for _, p := range []r3.Vec{{}, {X: 2}, {X: -1, Y: 1, Z: 0.5}, {Z: -3}} {
		want := r3.Norm(p.Sub(offset)) - 1
		if d := ts.Evaluate(p); math.Abs(d-want) > 1e-9 {
			t.Errorf("rigid transformed sphere at %v = %g, want %g", p, d, want)
		}
	}
}

func TestScaleUniformDistanceExact(t *testing.T) {
	s := sdf.ScaleUniform3D(form3.Sphere(1), 2)
	// A doubled unit sphere is a radius 2 sphere with exact distances.
	for _, tc := range []struct {
		p    r3.Vec
		want float64
	}{
		{r3.Vec{}, -2},
		{r3.Vec{X: 1}, -1},
		{r3.Vec{X: 2}, 0},
		{r3.Vec{X: 5}, 3},
	} {
		if d := s.Evaluate(tc.p); math.Abs(d-tc.want) > tol {
			t.Errorf("scaled sphere at %v = %g, want %g", tc.p, d, tc.want)
		}
	}
}

func TestElongate(t *testing.T) {
	// Elongating a sphere along z makes a capsule of the same radius.
	e := sdf.Elongate3D(form3.Sphere(0.5), r3.Vec{Z: 2})
	want := form3.Capsule(3, 0.5)
	for _, p := range []r3.Vec{{}, {Z: 1}, {Z: 2}, {X: 1, Z: -1.5}, {X: 0.2, Y: 0.3, Z: 0.7}} {
		if d, w := e.Evaluate(p), want.Evaluate(p); math.Abs(d-w) > tol {
			t.Errorf("elongated sphere at %v = %g, capsule gives %g", p, d, w)
		}
	}
}

func TestOffsetAndShell(t *testing.T) {
	s := form3.Sphere(1)
	grown := sdf.Offset3D(s, 0.25)
	if d := grown.Evaluate(r3.Vec{X: 1.25}); math.Abs(d) > tol {
		t.Errorf("offset sphere surface at 1.25 = %g, want 0", d)
	}
	shell := sdf.Shell3D(s, 0.2)
	if d := shell.Evaluate(r3.Vec{X: 1}); math.Abs(d-(-0.1)) > tol {
		t.Errorf("shell at parent surface = %g, want -0.1", d)
	}
	if d := shell.Evaluate(r3.Vec{}); math.Abs(d-0.9) > tol {
		t.Errorf("shell at center = %g, want 0.9", d)
	}
}

func TestNormal3(t *testing.T) {
	s := form3.Sphere(1)
	n := sdf.Normal3(s, r3.Vec{X: 2}, 1e-6)
	if !vecEqual(n, r3.Vec{X: 1}, 1e-5) {
		t.Errorf("sphere normal at +x = %v, want {1 0 0}", n)
	}
}

func TestRaycast3(t *testing.T) {
	s := form3.Sphere(1)
	hit, dist, _ := sdf.Raycast3(s, r3.Vec{X: 3}, r3.Vec{X: -1}, 1, 1e-6, 10, 100)
	if dist < 0 {
		t.Fatal("ray toward sphere missed")
	}
	if math.Abs(hit.X-1) > 1e-4 || math.Abs(hit.Y) > tol || math.Abs(hit.Z) > tol {
		t.Errorf("ray hit at %v, want near {1 0 0}", hit)
	}
	if _, dist, _ = sdf.Raycast3(s, r3.Vec{X: 3}, r3.Vec{X: 1}, 1, 1e-6, 10, 100); dist >= 0 {
		t.Error("ray away from sphere reported a hit")
	}
}

func TestSawTooth(t *testing.T) {
	for _, tc := range []struct{ x, period, want float64 }{
		{0, 2, 0},
		{0.5, 2, 0.5},
		{2.5, 2, 0.5},
		{-0.75, 2, -0.75},
	} {
		if got := sdf.SawTooth(tc.x, tc.period); math.Abs(got-tc.want) > tol {
			t.Errorf("SawTooth(%g, %g) = %g, want %g", tc.x, tc.period, got, tc.want)
		}
	}
}

func vecEqual(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
