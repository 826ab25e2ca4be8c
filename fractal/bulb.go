// Package fractal provides escape-time distance estimated fields.
//
// The fields here are not true Euclidean distances. They are provably
// valid lower-bound estimates computed with the standard escape-time
// distance estimator: iterate the map up to a hard cap, track the
// running derivative magnitude, and derive the estimate from the log
// of the final magnitude. Evaluation is a pure function of the point
// and the fixed fractal parameters.
package fractal

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/internal/d3"
)

const (
	// minDist is the smallest distance estimate returned. It clamps
	// the estimator's singularity at and inside the set.
	minDist = 1e-9
	// boundRadius is a radius bound of the power-n bulb sets for the
	// supported powers, used for the reported bounding box.
	boundRadius = 1.5
)

// bulb is the power-n mandelbulb set: z <- z^n + c iterated in
// triplex coordinates with c the query point.
type bulb struct {
	power   float64
	maxIter int
	escape  float64
	bb      r3.Box
}

// Bulb returns the distance estimated field of the power-n mandelbulb.
// maxIter caps the per-point cost and must be in [1, 64]. escape is the
// magnitude at which iteration stops early, conventionally 2.
func Bulb(power float64, maxIter int, escape float64) *bulb {
	checkBulbParams(power, maxIter, escape)
	return &bulb{
		power:   power,
		maxIter: maxIter,
		escape:  escape,
		bb:      r3.Box{Min: d3.Elem(-boundRadius), Max: d3.Elem(boundRadius)},
	}
}

// Evaluate returns a lower bound estimate of the distance to the bulb surface.
// The estimate is clamped to a small positive minimum at and inside the set.
func (s *bulb) Evaluate(p r3.Vec) float64 {
	z := p
	dr := 1.0
	r := r3.Norm(z)
	for i := 0; i < s.maxIter && r < s.escape; i++ {
		if r == 0 {
			// The origin is a fixed point of z^n, no escape.
			break
		}
		dr = s.power*math.Pow(r, s.power-1)*dr + 1
		z = r3.Add(triplexPow(z, r, s.power), p)
		r = r3.Norm(z)
	}
	d := 0.5 * math.Log(r) * r / dr
	if !(d > minDist) { // also catches NaN from r == 0
		d = minDist
	}
	return d
}

// Bounds returns the bounding box of the bulb.
func (s *bulb) Bounds() r3.Box {
	return s.bb
}

// juliabulb is the power-n julia set variant: z starts at the query
// point and the added constant c is fixed.
type juliabulb struct {
	power   float64
	c       r3.Vec
	maxIter int
	escape  float64
	bb      r3.Box
}

// Juliabulb returns the distance estimated field of the power-n julia
// bulb with constant c. Parameter constraints are those of Bulb.
func Juliabulb(power float64, c r3.Vec, maxIter int, escape float64) *juliabulb {
	checkBulbParams(power, maxIter, escape)
	return &juliabulb{
		power:   power,
		c:       c,
		maxIter: maxIter,
		escape:  escape,
		bb:      r3.Box{Min: d3.Elem(-boundRadius), Max: d3.Elem(boundRadius)},
	}
}

// Evaluate returns a lower bound estimate of the distance to the julia bulb surface.
func (s *juliabulb) Evaluate(p r3.Vec) float64 {
	z := p
	dr := 1.0
	r := r3.Norm(z)
	for i := 0; i < s.maxIter && r < s.escape; i++ {
		if r == 0 {
			break
		}
		dr = s.power * math.Pow(r, s.power-1) * dr
		z = r3.Add(triplexPow(z, r, s.power), s.c)
		r = r3.Norm(z)
	}
	d := 0.5 * math.Log(r) * r / dr
	if !(d > minDist) {
		d = minDist
	}
	return d
}

// Bounds returns the bounding box of the julia bulb.
func (s *juliabulb) Bounds() r3.Box {
	return s.bb
}

// triplexPow raises z (with |z| = r, r > 0) to the n-th power in
// spherical triplex coordinates.
func triplexPow(z r3.Vec, r, n float64) r3.Vec {
	theta := n * math.Acos(z.Z/r)
	phi := n * math.Atan2(z.Y, z.X)
	rn := math.Pow(r, n)
	st := math.Sin(theta)
	return r3.Vec{
		X: rn * st * math.Cos(phi),
		Y: rn * st * math.Sin(phi),
		Z: rn * math.Cos(theta),
	}
}

func checkBulbParams(power float64, maxIter int, escape float64) {
	if power < 2 {
		panic("power < 2")
	}
	if maxIter < 1 || maxIter > 64 {
		panic("maxIter outside [1, 64]")
	}
	if escape <= 1 {
		panic("escape <= 1")
	}
}
