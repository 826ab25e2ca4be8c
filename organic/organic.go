// Package organic provides procedurally generated and animated fields.
//
// Shape parameters are derived once at construction from an explicit
// seeded generator (math/rand with rand.NewSource, never wall-clock
// state): the same seed always yields bit-identical fields. Time enters
// as continuous phase terms so evaluating at nearby times yields nearby
// distances everywhere.
package organic

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/form3"
	"sdfview/internal/d3"
	"sdfview/sdf"
)

const (
	pi  = math.Pi
	tau = 2 * pi

	// breathRate is the body pulse frequency of creatures in Hz.
	breathRate = 0.4
	// swimRate is the tail swing frequency of fish in Hz.
	swimRate = 0.8
)

// Creature returns a seeded organism: a smooth-blended union of an
// elongated body, a head and a seeded number of limbs. The body scale
// pulses with time ("breathing"). The body and limbs use non-uniform
// scaling, so the result is a lower bound estimate rather than an
// exact distance.
func Creature(time float64, seed uint32) sdf.SDF3 {
	rng := rand.New(rand.NewSource(int64(seed)))
	bodyLen := 0.45 + 0.2*rng.Float64()
	bodyR := 0.22 + 0.1*rng.Float64()
	headR := 0.12 + 0.08*rng.Float64()
	limbs := 3 + rng.Intn(4)
	limbLen := 0.3 + 0.15*rng.Float64()
	limbR := 0.05 + 0.03*rng.Float64()
	phase := tau * rng.Float64()

	breath := 1 + 0.04*math.Sin(tau*breathRate*time+phase)

	body := sdf.Transform3D(form3.Sphere(1),
		sdf.Scale3d(r3.Vec{X: bodyLen * breath, Y: bodyR * breath, Z: bodyR * breath}))
	head := sdf.Transform3D(form3.Sphere(headR),
		sdf.Translate3D(r3.Vec{X: bodyLen + 0.5*headR}))
	parts := []sdf.SDF3{body, head}
	for i := 0; i < limbs; i++ {
		azimuth := tau*float64(i)/float64(limbs) + 0.3*(rng.Float64()-0.5)
		tilt := 0.4 + 0.5*rng.Float64() // outward lean from straight down
		limb := sdf.Transform3D(form3.Capsule(2*limbLen, limbR),
			sdf.RotateZ(azimuth).Mul(sdf.RotateY(pi-tilt)).Mul(sdf.Translate3D(r3.Vec{Z: limbLen})))
		parts = append(parts, limb)
	}
	u := sdf.Union3D(parts...)
	u.SetMin(sdf.PolyMin(0.08))
	return u
}

// tailSwing warps the query point with a z-dependent x shear before
// evaluating the child, swinging the tail of a fish. The phase is fixed
// at construction so the warped field stays a pure function of the point.
type tailSwing struct {
	sdf   sdf.SDF3
	amp   float64
	phase float64
	waveK float64
	lip   float64 // Lipschitz bound of the warp, divides the child distance
	bb    r3.Box
}

func newTailSwing(s sdf.SDF3, amp, phase, waveK float64) *tailSwing {
	bb := d3.Box(s.Bounds()).Enlarge(r3.Vec{X: 2 * amp})
	return &tailSwing{
		sdf:   s,
		amp:   amp,
		phase: phase,
		waveK: waveK,
		lip:   1 + amp*waveK,
		bb:    r3.Box(bb),
	}
}

// Evaluate returns a lower bound of the distance to the swung shape.
func (s *tailSwing) Evaluate(p r3.Vec) float64 {
	q := p
	q.X -= s.amp * math.Sin(s.phase+s.waveK*p.Z)
	return s.sdf.Evaluate(q) / s.lip
}

// Bounds returns the bounding box of the swung shape.
func (s *tailSwing) Bounds() r3.Box {
	return s.bb
}

// Fish returns a time-animated fish: a laterally flattened body with
// tail and dorsal fins, the whole shape swung by a continuous
// z-dependent shear with phase driven by time. The fish axis is z with
// the tail at negative z.
func Fish(time float64) sdf.SDF3 {
	body := sdf.Transform3D(
		sdf.Elongate3D(form3.Sphere(0.22), r3.Vec{Z: 0.7}),
		sdf.Scale3d(r3.Vec{X: 0.45, Y: 1, Z: 1}))
	tail := sdf.Transform3D(form3.Sphere(1),
		sdf.Translate3D(r3.Vec{Z: -0.75}).Mul(sdf.Scale3d(r3.Vec{X: 0.05, Y: 0.24, Z: 0.2})))
	dorsal := sdf.Transform3D(form3.Sphere(1),
		sdf.Translate3D(r3.Vec{Y: 0.24, Z: 0.1}).Mul(sdf.Scale3d(r3.Vec{X: 0.04, Y: 0.2, Z: 0.3})))
	u := sdf.Union3D(body, tail, dorsal)
	u.SetMin(sdf.PolyMin(0.06))
	return newTailSwing(u, 0.1, tau*swimRate*time, 3)
}

// blob is a sphere with seeded sinusoidal surface displacement.
type blob struct {
	radius float64
	amp    [3]float64
	freq   [3]float64
	dir    [3]r3.Vec // unit directions
	phase  [3]float64
	lip    float64 // 1 + sum of displacement gradient bounds
	bb     r3.Box
}

// Blob returns a seeded, time-animated blob: a sphere displaced by
// three directional harmonics. Amplitudes, frequencies, directions and
// phases are derived from the seed; time advances the phases
// continuously. The displaced field is kept a valid lower bound by
// dividing by the Lipschitz bound of the displacement.
func Blob(time float64, seed uint32) *blob {
	rng := rand.New(rand.NewSource(int64(seed)))
	s := blob{
		radius: 0.5 + 0.1*rng.Float64(),
		lip:    1,
	}
	ampSum := 0.0
	for i := range s.amp {
		s.amp[i] = 0.04 + 0.06*rng.Float64()
		s.freq[i] = 2 + 4*rng.Float64()
		s.dir[i] = r3.Unit(r3.Vec{
			X: rng.NormFloat64(),
			Y: rng.NormFloat64(),
			Z: rng.NormFloat64(),
		})
		rate := 0.3 + 0.4*rng.Float64()
		s.phase[i] = tau*rng.Float64() + tau*rate*time
		s.lip += s.amp[i] * s.freq[i]
		ampSum += s.amp[i]
	}
	l := s.radius + ampSum
	s.bb = r3.Box{Min: d3.Elem(-l), Max: d3.Elem(l)}
	return &s
}

// Evaluate returns a lower bound of the distance to the blob surface.
func (s *blob) Evaluate(p r3.Vec) float64 {
	d := r3.Norm(p) - s.radius
	for i := range s.amp {
		d += s.amp[i] * math.Sin(s.freq[i]*p.Dot(s.dir[i])+s.phase[i])
	}
	return d / s.lip
}

// Bounds returns the bounding box of the blob.
func (s *blob) Bounds() r3.Box {
	return s.bb
}
