package sdf

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/internal/d3"
)

// 3D signed distance composition nodes. A composed field is an immutable
// tree built once at construction; evaluating it never mutates it.

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns
	// the minimum distance of the SDF3 to the point. The distance
	// is negative if the point is contained within the SDF3.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains
	// the SDF3.
	Bounds() r3.Box
}

// SDF3Union is a union of SDF3s with a settable blend function.
type SDF3Union interface {
	SDF3
	SetMin(MinFunc)
}

// SDF3Diff is a difference or intersection of SDF3s with a settable blend function.
type SDF3Diff interface {
	SDF3
	SetMax(MaxFunc)
}

// Transform SDF3 (rotation, translation - distance preserving)

// transform3 is an SDF3 transformed with a 4x4 transformation matrix.
type transform3 struct {
	sdf     SDF3
	matrix  m44
	inverse m44
	bb      r3.Box
}

// Transform3D applies a transformation matrix to an SDF3.
func Transform3D(sdf SDF3, matrix m44) SDF3 {
	if sdf == nil {
		panic("nil SDF3 argument")
	}
	s := transform3{}
	s.sdf = sdf
	s.matrix = matrix
	s.inverse = matrix.Inverse()
	s.bb = matrix.MulBox(sdf.Bounds())
	return &s
}

// Evaluate returns the minimum distance to a transformed SDF3.
// Distance is *not* preserved with scaling.
func (s *transform3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(s.inverse.MulPosition(p))
}

// Bounds returns the bounding box of a transformed SDF3.
func (s *transform3) Bounds() r3.Box {
	return s.bb
}

// Uniform XYZ Scaling of SDF3s (we can work out the distance)

// scaleUniform3 is an SDF3 scaled uniformly in XYZ directions.
type scaleUniform3 struct {
	sdf     SDF3
	k, invK float64
	bb      r3.Box
}

// ScaleUniform3D uniformly scales an SDF3 on all axes.
func ScaleUniform3D(sdf SDF3, k float64) SDF3 {
	if k <= 0 {
		panic("scale factor <= 0")
	}
	m := Scale3d(r3.Vec{X: k, Y: k, Z: k})
	return &scaleUniform3{
		sdf:  sdf,
		k:    k,
		invK: 1.0 / k,
		bb:   m.MulBox(sdf.Bounds()),
	}
}

// Evaluate returns the minimum distance to a uniformly scaled SDF3.
// The distance is correct with scaling.
func (s *scaleUniform3) Evaluate(p r3.Vec) float64 {
	q := r3.Scale(s.invK, p)
	return s.sdf.Evaluate(q) * s.k
}

// Bounds returns the bounding box of a uniformly scaled SDF3.
func (s *scaleUniform3) Bounds() r3.Box {
	return s.bb
}

// union3 is a union of SDF3s.
type union3 struct {
	sdf []SDF3
	min MinFunc
	bb  r3.Box
}

// Union3D returns the union of multiple SDF3 objects.
// Union3D will panic if arguments list is empty or if
// an argument SDF3 is nil.
func Union3D(sdf ...SDF3) SDF3Union {
	if len(sdf) < 2 {
		panic("union require at least 2 sdfs")
	}
	s := union3{
		sdf: sdf,
	}
	for i, x := range s.sdf {
		if x == nil {
			panic("nil sdf argument (" + strconv.Itoa(i) + ") to Union3D")
		}
	}
	// work out the bounding box
	bb := d3.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf {
		bb = bb.Extend(d3.Box(x.Bounds()))
	}
	s.bb = r3.Box(bb)
	s.min = math.Min
	return &s
}

// Evaluate returns the minimum distance to an SDF3 union.
func (s *union3) Evaluate(p r3.Vec) float64 {
	var d float64
	for i, x := range s.sdf {
		if i == 0 {
			d = x.Evaluate(p)
		} else {
			d = s.min(d, x.Evaluate(p))
		}
	}
	return d
}

// SetMin sets the minimum function to control blending.
func (s *union3) SetMin(min MinFunc) {
	s.min = min
}

// Bounds returns the bounding box of an SDF3 union.
func (s *union3) Bounds() r3.Box {
	return s.bb
}

// intersection3 is the intersection of multiple SDF3s.
type intersection3 struct {
	sdf []SDF3
	max MaxFunc
	bb  r3.Box
}

// Intersect3D returns the intersection of multiple SDF3s.
// Intersect3D will panic if the argument list has fewer than
// two elements or if an argument SDF3 is nil.
func Intersect3D(sdf ...SDF3) SDF3Diff {
	if len(sdf) < 2 {
		panic("intersection require at least 2 sdfs")
	}
	s := intersection3{
		sdf: sdf,
	}
	for i, x := range s.sdf {
		if x == nil {
			panic("nil sdf argument (" + strconv.Itoa(i) + ") to Intersect3D")
		}
	}
	s.max = math.Max
	// The intersection is contained in each argument's bounding box.
	// Use the first argument, it is the smallest conservative answer
	// available without evaluating the fields.
	s.bb = s.sdf[0].Bounds()
	return &s
}

// Evaluate returns the minimum distance to the SDF3 intersection.
func (s *intersection3) Evaluate(p r3.Vec) float64 {
	var d float64
	for i, x := range s.sdf {
		if i == 0 {
			d = x.Evaluate(p)
		} else {
			d = s.max(d, x.Evaluate(p))
		}
	}
	return d
}

// SetMax sets the maximum function to control blending.
func (s *intersection3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of an SDF3 intersection.
func (s *intersection3) Bounds() r3.Box {
	return s.bb
}

// diff3 is the difference of two SDF3s, s0 - s1.
type diff3 struct {
	s0  SDF3
	s1  SDF3
	max MaxFunc
	bb  r3.Box
}

// Difference3D returns the difference of two SDF3s, s0 - s1.
// Difference3D will panic if any of the arguments is nil.
func Difference3D(s0, s1 SDF3) SDF3Diff {
	if s1 == nil || s0 == nil {
		panic("nil argument to Difference3D")
	}
	s := diff3{}
	s.s0 = s0
	s.s1 = s1
	s.max = math.Max
	s.bb = s0.Bounds()
	return &s
}

// Evaluate returns the minimum distance to the SDF3 difference.
func (s *diff3) Evaluate(p r3.Vec) float64 {
	return s.max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// SetMax sets the maximum function to control blending.
func (s *diff3) SetMax(max MaxFunc) {
	s.max = max
}

// Bounds returns the bounding box of the SDF3 difference.
func (s *diff3) Bounds() r3.Box {
	return s.bb
}

// elongate3 is the elongation of an SDF3.
type elongate3 struct {
	sdf    SDF3   // the sdf being elongated
	hp, hn r3.Vec // positive/negative elongation vector
	bb     r3.Box // bounding box
}

// Elongate3D returns the elongation of an SDF3.
func Elongate3D(sdf SDF3, h r3.Vec) SDF3 {
	h = d3.AbsElem(h)
	s := elongate3{
		sdf: sdf,
		hp:  r3.Scale(0.5, h),
		hn:  r3.Scale(-0.5, h),
	}
	// bounding box
	bb := d3.Box(sdf.Bounds())
	bb0 := bb.Translate(s.hp)
	bb1 := bb.Translate(s.hn)
	s.bb = r3.Box(bb0.Extend(bb1))
	return &s
}

// Evaluate returns the minimum distance to an elongated SDF3.
func (s *elongate3) Evaluate(p r3.Vec) float64 {
	q := p.Sub(d3.Clamp(p, s.hn, s.hp))
	return s.sdf.Evaluate(q)
}

// Bounds returns the bounding box of an elongated SDF3.
func (s *elongate3) Bounds() r3.Box {
	return s.bb
}

// offset3 offsets the distance function of an existing SDF3.
type offset3 struct {
	sdf      SDF3    // the underlying SDF
	distance float64 // the distance the SDF is offset by
	bb       r3.Box  // bounding box
}

// Offset3D returns an SDF3 that offsets the distance function of another SDF3.
func Offset3D(sdf SDF3, offset float64) SDF3 {
	s := offset3{
		sdf:      sdf,
		distance: offset,
	}
	// bounding box
	bb := d3.Box(sdf.Bounds())
	s.bb = r3.Box(d3.NewBox(bb.Center(), r3.Add(bb.Size(), d3.Elem(2*offset))))
	return &s
}

// Evaluate returns the minimum distance to an offset SDF3.
func (s *offset3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(p) - s.distance
}

// Bounds returns the bounding box of an offset SDF3.
func (s *offset3) Bounds() r3.Box {
	return s.bb
}

// shell3 shells the surface of an existing SDF3.
type shell3 struct {
	sdf   SDF3    // parent sdf3
	delta float64 // half shell thickness
	bb    r3.Box  // bounding box
}

// Shell3D returns an SDF3 that shells the surface of an existing SDF3.
func Shell3D(sdf SDF3, thickness float64) SDF3 {
	if thickness <= 0 {
		panic("thickness <= 0")
	}
	bb := d3.Box(sdf.Bounds())
	return &shell3{
		sdf:   sdf,
		delta: 0.5 * thickness,
		bb:    r3.Box(bb.Enlarge(r3.Vec{X: thickness, Y: thickness, Z: thickness})),
	}
}

// Evaluate returns the minimum distance to a shelled SDF3.
func (s *shell3) Evaluate(p r3.Vec) float64 {
	return math.Abs(s.sdf.Evaluate(p)) - s.delta
}

// Bounds returns the bounding box of a shelled SDF3.
func (s *shell3) Bounds() r3.Box {
	return s.bb
}
