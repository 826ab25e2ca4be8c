package grid_test

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/grid"
	"sdfview/sdf"
)

func TestCubeNodeCountAndCorners(t *testing.T) {
	pts := grid.Cube(4)
	if len(pts) != 64 {
		t.Fatalf("Cube(4) has %d nodes, want 64", len(pts))
	}
	if first := pts[0]; first != (r3.Vec{X: -1, Y: -1, Z: -1}) {
		t.Errorf("first node = %v, want {-1 -1 -1}", first)
	}
	if last := pts[len(pts)-1]; last != (r3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Errorf("last node = %v, want {1 1 1}", last)
	}
}

func TestUniformOrderingXFastest(t *testing.T) {
	bounds := r3.Box{Min: r3.Vec{X: 0, Y: 10, Z: 100}, Max: r3.Vec{X: 1, Y: 11, Z: 101}}
	pts := grid.Uniform(bounds, sdf.V3i{3, 2, 2})
	if len(pts) != 12 {
		t.Fatalf("got %d nodes, want 12", len(pts))
	}
	// Between consecutive nodes only x advances, until it wraps and y
	// steps, then z.
	if pts[1].X <= pts[0].X || pts[1].Y != pts[0].Y || pts[1].Z != pts[0].Z {
		t.Errorf("node 1 = %v after %v, x must vary first", pts[1], pts[0])
	}
	if pts[3].Y <= pts[0].Y || pts[3].Z != pts[0].Z {
		t.Errorf("node 3 = %v, y must step after x wraps", pts[3])
	}
	if pts[6].Z <= pts[0].Z {
		t.Errorf("node 6 = %v, z must step last", pts[6])
	}
}

func TestUniformIncludesBounds(t *testing.T) {
	bounds := r3.Box{Min: r3.Vec{X: -2, Y: -3, Z: 0.5}, Max: r3.Vec{X: 2, Y: 3, Z: 1.5}}
	pts := grid.Uniform(bounds, sdf.V3i{5, 3, 2})
	if pts[0] != bounds.Min {
		t.Errorf("first node = %v, want %v", pts[0], bounds.Min)
	}
	if pts[len(pts)-1] != bounds.Max {
		t.Errorf("last node = %v, want %v", pts[len(pts)-1], bounds.Max)
	}
	for _, p := range pts {
		if p.X < bounds.Min.X || p.X > bounds.Max.X ||
			p.Y < bounds.Min.Y || p.Y > bounds.Max.Y ||
			p.Z < bounds.Min.Z || p.Z > bounds.Max.Z {
			t.Fatalf("node %v escapes bounds", p)
		}
	}
}

func TestUniformSingleNodeAxis(t *testing.T) {
	bounds := r3.Box{Min: r3.Vec{X: -1, Y: 2, Z: 3}, Max: r3.Vec{X: 1, Y: 5, Z: 9}}
	pts := grid.Uniform(bounds, sdf.V3i{2, 1, 1})
	if len(pts) != 2 {
		t.Fatalf("got %d nodes, want 2", len(pts))
	}
	for _, p := range pts {
		if p.Y != 2 || p.Z != 3 {
			t.Errorf("degenerate axis node %v, want y=2 z=3", p)
		}
	}
}

func TestUniformPanicsOnBadDims(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Uniform did not panic on zero dimension")
		}
	}()
	grid.Uniform(r3.Box{Max: r3.Vec{X: 1, Y: 1, Z: 1}}, sdf.V3i{0, 2, 2})
}
