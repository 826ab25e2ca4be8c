package render

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"sdfview/internal/d3"
	"sdfview/sdf"
)

// sliceGrid adapts a z-slice of distance samples to plotter.GridXYZ.
// Values are stored x fastest, matching the engine's lattice ordering.
type sliceGrid struct {
	xs, ys []float64
	vals   []float64
}

func (g sliceGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g sliceGrid) Z(c, r int) float64 { return g.vals[r*len(g.xs)+c] }
func (g sliceGrid) X(c int) float64    { return g.xs[c] }
func (g sliceGrid) Y(r int) float64    { return g.ys[r] }

// SliceContour saves a contour plot of the field sampled on the plane
// z = z0, with isoline levels symmetric about zero so the zero level
// (the surface cut) is always drawn.
func SliceContour(s sdf.SDF3, z0 float64, resolution int, path string) error {
	if resolution < 2 {
		panic("resolution < 2")
	}
	bb := d3.Box(s.Bounds()).ScaleAboutCenter(1.1)
	g := sliceGrid{
		xs:   floats.Span(make([]float64, resolution), bb.Min.X, bb.Max.X),
		ys:   floats.Span(make([]float64, resolution), bb.Min.Y, bb.Max.Y),
		vals: make([]float64, 0, resolution*resolution),
	}
	lim := 0.0
	for _, y := range g.ys {
		for _, x := range g.xs {
			d := s.Evaluate(r3.Vec{X: x, Y: y, Z: z0})
			g.vals = append(g.vals, d)
			lim = math.Max(lim, math.Abs(d))
		}
	}
	// Odd level count keeps zero as the middle level.
	levels := floats.Span(make([]float64, 11), -lim, lim)
	ct := plotter.NewContour(g, levels, palette.Heat(len(levels), 1))

	p := plot.New()
	p.Title.Text = "signed distance, z = " + formatFloat(z0)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(ct)
	return p.Save(14*vg.Centimeter, 14*vg.Centimeter, path)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
