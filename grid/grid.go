// Package grid generates regular point lattices for batch field
// evaluation. The lattice ordering contract consumed by visualization
// layers: x varies fastest, then y, then z.
package grid

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/internal/d3"
	"sdfview/sdf"
)

// Uniform returns the nodes of a regular lattice spanning bounds with
// n[0]xn[1]xn[2] nodes. Lattice nodes include the bounds themselves; a
// single node along an axis sits at the axis lower bound.
func Uniform(bounds r3.Box, n sdf.V3i) []r3.Vec {
	if n[0] <= 0 || n[1] <= 0 || n[2] <= 0 {
		panic("grid dimension <= 0")
	}
	xs := axis(bounds.Min.X, bounds.Max.X, n[0])
	ys := axis(bounds.Min.Y, bounds.Max.Y, n[1])
	zs := axis(bounds.Min.Z, bounds.Max.Z, n[2])
	pts := make([]r3.Vec, 0, n[0]*n[1]*n[2])
	for _, z := range zs {
		for _, y := range ys {
			for _, x := range xs {
				pts = append(pts, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return pts
}

// Cube returns the nodes of a lattice with resolution nodes per side
// spanning [-1, 1]^3, the conventional normalized SDF domain.
func Cube(resolution int) []r3.Vec {
	return Uniform(
		r3.Box{Min: d3.Elem(-1), Max: d3.Elem(1)},
		sdf.V3i{resolution, resolution, resolution},
	)
}

// axis returns n evenly spaced coordinates over [lo, hi].
func axis(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
