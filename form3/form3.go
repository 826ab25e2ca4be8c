// Package form3 provides closed-form 3D distance primitives.
//
// Constructors panic on invalid parameters: fields are built once at
// catalog construction time and a bad parameter is a programmer error.
// Every primitive returns the true signed Euclidean distance (negative
// inside, positive outside) unless its doc comment says otherwise.
package form3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/internal/d3"
)

// Sphere (exact distance field)

// sphere is a sphere centered at the origin.
type sphere struct {
	radius float64
	bb     r3.Box
}

// Sphere return an SDF3 for a sphere.
func Sphere(radius float64) *sphere {
	if radius <= 0 {
		panic("radius <= 0")
	}
	d := r3.Vec{X: radius, Y: radius, Z: radius}
	s := sphere{
		radius: radius,
		bb:     r3.Box{Min: r3.Scale(-1, d), Max: d},
	}
	return &s
}

// Evaluate returns the minimum distance to a sphere.
func (s *sphere) Evaluate(p r3.Vec) float64 {
	return r3.Norm(p) - s.radius
}

// Bounds returns the bounding box for a sphere.
func (s *sphere) Bounds() r3.Box {
	return s.bb
}

// Box (exact distance field)

// box is a 3d box centered at the origin.
type box struct {
	size  r3.Vec // half size, reduced by rounding
	round float64
	bb    r3.Box
}

// Box return an SDF3 for a 3d box (rounded corners with round > 0).
// size is the total length of each box side.
func Box(size r3.Vec, round float64) *box {
	if d3.LTEZero(size) {
		panic("size <= 0")
	}
	if round < 0 {
		panic("round < 0")
	}
	size = r3.Scale(0.5, size)
	s := box{
		size:  r3.Sub(size, d3.Elem(round)),
		round: round,
		bb:    r3.Box{Min: r3.Scale(-1, size), Max: size},
	}
	return &s
}

// Evaluate returns the minimum distance to a 3d box.
func (s *box) Evaluate(p r3.Vec) float64 {
	return sdfBox3d(p, s.size) - s.round
}

// Bounds returns the bounding box for a 3d box.
func (s *box) Bounds() r3.Box {
	return s.bb
}

// sdfBox3d is the exact distance to a box of half dimensions s,
// accounting for the corner regions.
func sdfBox3d(p, s r3.Vec) float64 {
	d := r3.Sub(d3.AbsElem(p), s)
	q := d3.MaxElem(d, r3.Vec{})
	return r3.Norm(q) + math.Min(d3.Max(d), 0)
}

// Torus (exact distance field)

// torus is a torus centered at the origin with the ring in the XY plane.
type torus struct {
	major float64 // ring center radius
	minor float64 // tube radius
	bb    r3.Box
}

// Torus return an SDF3 for a torus. major is the radius of the ring
// center circle, minor the radius of the tube around it.
func Torus(major, minor float64) *torus {
	if major <= 0 || minor <= 0 {
		panic("radius <= 0")
	}
	if minor >= major {
		panic("minor >= major")
	}
	l := major + minor
	s := torus{
		major: major,
		minor: minor,
		bb:    r3.Box{Min: r3.Vec{X: -l, Y: -l, Z: -minor}, Max: r3.Vec{X: l, Y: l, Z: minor}},
	}
	return &s
}

// Evaluate returns the minimum distance to a torus.
func (s *torus) Evaluate(p r3.Vec) float64 {
	q := r2.Vec{X: math.Hypot(p.X, p.Y) - s.major, Y: p.Z}
	return r2.Norm(q) - s.minor
}

// Bounds returns the bounding box for a torus.
func (s *torus) Bounds() r3.Box {
	return s.bb
}

// Plane (exact distance field, unbounded)

// plane is a half-space below the plane with the given normal.
type plane struct {
	n      r3.Vec // unit normal, points away from the solid
	offset float64
	bb     r3.Box
}

// Plane returns an SDF3 for the half-space of all points p with
// dot(p, normal) <= offset. The solid is unbounded, the reported
// bounding box is a large finite region for the benefit of grid and
// visualization consumers.
func Plane(normal r3.Vec, offset float64) *plane {
	if r3.Norm(normal) == 0 {
		panic("zero length normal")
	}
	const planeExtent = 1e6
	s := plane{
		n:      r3.Unit(normal),
		offset: offset,
		bb:     r3.Box{Min: d3.Elem(-planeExtent), Max: d3.Elem(planeExtent)},
	}
	return &s
}

// Evaluate returns the minimum distance to the plane boundary.
func (s *plane) Evaluate(p r3.Vec) float64 {
	return p.Dot(s.n) - s.offset
}

// Bounds returns a large finite bounding box for the half-space.
func (s *plane) Bounds() r3.Box {
	return s.bb
}

// Cylinder (exact distance field)

// cylinder is a z-axis aligned cylinder centered at the origin.
type cylinder struct {
	height float64 // half height, reduced by rounding
	radius float64 // radius, reduced by rounding
	round  float64
	bb     r3.Box
}

// Cylinder return an SDF3 for a cylinder (rounded edges with round > 0).
// height is the total height.
func Cylinder(height, radius, round float64) *cylinder {
	if radius <= 0 {
		panic("radius <= 0")
	}
	if round < 0 {
		panic("round < 0")
	}
	if round > radius {
		panic("round > radius")
	}
	if height < 2.0*round {
		panic("height < 2*round")
	}
	s := cylinder{
		height: height/2 - round,
		radius: radius - round,
		round:  round,
		bb: r3.Box{
			Min: r3.Vec{X: -radius, Y: -radius, Z: -height / 2},
			Max: r3.Vec{X: radius, Y: radius, Z: height / 2},
		},
	}
	return &s
}

// Evaluate returns the minimum distance to a cylinder.
func (s *cylinder) Evaluate(p r3.Vec) float64 {
	d := r2.Vec{
		X: math.Hypot(p.X, p.Y) - s.radius,
		Y: math.Abs(p.Z) - s.height,
	}
	q := r2.Vec{X: math.Max(d.X, 0), Y: math.Max(d.Y, 0)}
	return math.Min(math.Max(d.X, d.Y), 0) + r2.Norm(q) - s.round
}

// Bounds returns the bounding box for a cylinder.
func (s *cylinder) Bounds() r3.Box {
	return s.bb
}

// Capsule (exact distance field)

// capsule is a z-axis aligned capsule centered at the origin.
type capsule struct {
	half   float64 // half length of the core segment
	radius float64
	bb     r3.Box
}

// Capsule return an SDF3 for a capsule. height is the total height
// including the end caps, so height >= 2*radius.
func Capsule(height, radius float64) *capsule {
	if radius <= 0 {
		panic("radius <= 0")
	}
	if height < 2*radius {
		panic("height < 2*radius")
	}
	s := capsule{
		half:   height/2 - radius,
		radius: radius,
		bb: r3.Box{
			Min: r3.Vec{X: -radius, Y: -radius, Z: -height / 2},
			Max: r3.Vec{X: radius, Y: radius, Z: height / 2},
		},
	}
	return &s
}

// Evaluate returns the minimum distance to a capsule.
func (s *capsule) Evaluate(p r3.Vec) float64 {
	p.Z -= clamp(p.Z, -s.half, s.half)
	return r3.Norm(p) - s.radius
}

// Bounds returns the bounding box for a capsule.
func (s *capsule) Bounds() r3.Box {
	return s.bb
}

// Cone (exact distance field)

// cone is a z-axis aligned truncated cone centered at the origin.
type cone struct {
	height float64 // half height
	r0     float64 // radius at the bottom
	r1     float64 // radius at the top
	bb     r3.Box
}

// Cone returns the SDF3 for a truncated cone with bottom radius r0
// and top radius r1. height is the total height.
func Cone(height, r0, r1 float64) *cone {
	if height <= 0 {
		panic("height <= 0")
	}
	if r0 <= 0 || r1 <= 0 {
		panic("radius <= 0")
	}
	rmax := math.Max(r0, r1)
	s := cone{
		height: height / 2,
		r0:     r0,
		r1:     r1,
		bb: r3.Box{
			Min: r3.Vec{X: -rmax, Y: -rmax, Z: -height / 2},
			Max: r3.Vec{X: rmax, Y: rmax, Z: height / 2},
		},
	}
	return &s
}

// Evaluate returns the minimum distance to a truncated cone.
func (s *cone) Evaluate(p r3.Vec) float64 {
	q := r2.Vec{X: math.Hypot(p.X, p.Y), Y: p.Z}
	h := 2 * s.height
	k1 := r2.Vec{X: s.r1, Y: s.height}
	k2 := r2.Vec{X: s.r1 - s.r0, Y: h}
	var rq float64
	if q.Y < 0 {
		rq = s.r0
	} else {
		rq = s.r1
	}
	ca := r2.Vec{X: q.X - math.Min(q.X, rq), Y: math.Abs(q.Y) - s.height}
	t := clamp(r2.Sub(k1, q).Dot(k2)/r2.Norm2(k2), 0, 1)
	cb := r2.Add(r2.Sub(q, k1), r2.Scale(t, k2))
	sign := 1.0
	if cb.X < 0 && ca.Y < 0 {
		sign = -1.0
	}
	return sign * math.Sqrt(math.Min(r2.Norm2(ca), r2.Norm2(cb)))
}

// Bounds returns the bounding box for a truncated cone.
func (s *cone) Bounds() r3.Box {
	return s.bb
}

// clamp x between a and b, assume a <= b.
func clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
