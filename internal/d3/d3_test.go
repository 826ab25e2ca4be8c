package d3

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestElemAndExtremes(t *testing.T) {
	v := Elem(2)
	if v != (r3.Vec{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Elem(2) = %v", v)
	}
	w := r3.Vec{X: -1, Y: 3, Z: 0.5}
	if got := Max(w); got != 3 {
		t.Errorf("Max(%v) = %g, want 3", w, got)
	}
	if got := Min(w); got != -1 {
		t.Errorf("Min(%v) = %g, want -1", w, got)
	}
	if got := MinElem(v, w); got != (r3.Vec{X: -1, Y: 2, Z: 0.5}) {
		t.Errorf("MinElem = %v", got)
	}
	if got := MaxElem(v, w); got != (r3.Vec{X: 2, Y: 3, Z: 2}) {
		t.Errorf("MaxElem = %v", got)
	}
	if got := AbsElem(w); got != (r3.Vec{X: 1, Y: 3, Z: 0.5}) {
		t.Errorf("AbsElem = %v", got)
	}
}

func TestClampVec(t *testing.T) {
	lo, hi := Elem(-1), Elem(1)
	got := Clamp(r3.Vec{X: -3, Y: 0.2, Z: 5}, lo, hi)
	if got != (r3.Vec{X: -1, Y: 0.2, Z: 1}) {
		t.Errorf("Clamp = %v", got)
	}
}

func TestLTEZero(t *testing.T) {
	if LTEZero(r3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Error("all-positive vector reported non-positive")
	}
	if !LTEZero(r3.Vec{X: 1, Y: 0, Z: 3}) {
		t.Error("zero component not reported")
	}
}

func TestBoxOps(t *testing.T) {
	b := NewBox(r3.Vec{X: 1, Y: 1, Z: 1}, Elem(2))
	want := Box{Min: r3.Vec{}, Max: Elem(2)}
	if !b.Equals(want, 1e-12) {
		t.Fatalf("NewBox = %+v, want %+v", b, want)
	}
	if got := b.Center(); !EqualWithin(got, Elem(1), 1e-12) {
		t.Errorf("Center = %v", got)
	}
	if got := b.Size(); !EqualWithin(got, Elem(2), 1e-12) {
		t.Errorf("Size = %v", got)
	}
	if got := b.Translate(Elem(1)); !got.Equals(Box{Min: Elem(1), Max: Elem(3)}, 1e-12) {
		t.Errorf("Translate = %+v", got)
	}
	if got := b.ScaleAboutCenter(2); !got.Equals(Box{Min: Elem(-1), Max: Elem(3)}, 1e-12) {
		t.Errorf("ScaleAboutCenter = %+v", got)
	}
	if got := b.Enlarge(Elem(2)); !got.Equals(Box{Min: Elem(-1), Max: Elem(3)}, 1e-12) {
		t.Errorf("Enlarge = %+v", got)
	}
	other := Box{Min: r3.Vec{X: -5}, Max: r3.Vec{X: 5, Y: 1, Z: 1}}
	ext := b.Extend(other)
	if !ext.Equals(Box{Min: r3.Vec{X: -5}, Max: r3.Vec{X: 5, Y: 2, Z: 2}}, 1e-12) {
		t.Errorf("Extend = %+v", ext)
	}
}
