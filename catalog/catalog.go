// Package catalog maps stable shape names to signed distance field
// builders and evaluates them over point batches.
//
// A Catalog is immutable once handed out: the built-in catalog from New
// is fully populated before use and Register is only meant for start-up
// or test construction. There is no package-level catalog on purpose,
// callers pass the Catalog to whatever needs it.
package catalog

import (
	"sort"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/form3"
	"sdfview/fractal"
	"sdfview/internal/d3"
	"sdfview/organic"
	"sdfview/sdf"
)

// DefaultSeed is the seed used by callers that do not care about
// procedural variation.
const DefaultSeed uint32 = 12345

// Params are the per-request scalars shared by a whole evaluation batch.
type Params struct {
	// Time is the animation time in seconds for animated fields.
	Time float64
	// Seed selects the procedural variation of seeded fields.
	Seed uint32
}

// Builder constructs the distance field for one catalog name. Time and
// seed bind at construction so the returned SDF3 is a pure function of
// the evaluation point.
type Builder func(Params) sdf.SDF3

// UnknownNameError is returned when a requested name is not in the catalog.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return "catalog: unknown SDF name " + strconv.Quote(e.Name)
}

// Catalog is a mapping of stable names to field builders.
type Catalog struct {
	builders map[string]Builder
	names    []string // sorted
}

// NewEmpty returns a Catalog with no registered names.
func NewEmpty() *Catalog {
	return &Catalog{builders: make(map[string]Builder)}
}

// Register adds a named builder to the catalog. It panics on an empty
// name, a nil builder or a duplicate registration: catalogs are built
// once at start-up and these are programmer errors.
func (c *Catalog) Register(name string, b Builder) {
	if name == "" {
		panic("empty SDF name")
	}
	if b == nil {
		panic("nil builder for SDF " + strconv.Quote(name))
	}
	if _, exists := c.builders[name]; exists {
		panic("duplicate SDF name " + strconv.Quote(name))
	}
	c.builders[name] = b
	i := sort.SearchStrings(c.names, name)
	c.names = append(c.names, "")
	copy(c.names[i+1:], c.names[i:])
	c.names[i] = name
}

// Names returns the registered names in lexicographic order.
// The order is identical across calls and across processes.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Build looks up name and constructs its field with the given
// parameters. It returns an *UnknownNameError if the name is not
// registered; it never substitutes a default shape.
func (c *Catalog) Build(name string, p Params) (sdf.SDF3, error) {
	b, ok := c.builders[name]
	if !ok {
		return nil, &UnknownNameError{Name: name}
	}
	return b(p), nil
}

// New returns the built-in catalog.
func New() *Catalog {
	c := NewEmpty()
	c.Register("Sphere", func(Params) sdf.SDF3 {
		return form3.Sphere(0.8)
	})
	c.Register("Box", func(Params) sdf.SDF3 {
		return form3.Box(d3.Elem(1.2), 0)
	})
	c.Register("RoundBox", func(Params) sdf.SDF3 {
		return form3.Box(d3.Elem(1.2), 0.15)
	})
	c.Register("Torus", func(Params) sdf.SDF3 {
		return form3.Torus(0.6, 0.25)
	})
	c.Register("Plane", func(Params) sdf.SDF3 {
		return form3.Plane(r3.Vec{Z: 1}, -0.2)
	})
	c.Register("Capsule", func(Params) sdf.SDF3 {
		return form3.Capsule(1.4, 0.3)
	})
	c.Register("SphereBox", func(Params) sdf.SDF3 {
		u := sdf.Union3D(
			form3.Box(d3.Elem(1), 0),
			sdf.Transform3D(form3.Sphere(0.45), sdf.Translate3D(r3.Vec{X: 0.55, Z: 0.55})),
		)
		u.SetMin(sdf.PolyMin(0.2))
		return u
	})
	c.Register("BoxMinusSphere", func(Params) sdf.SDF3 {
		return sdf.Difference3D(form3.Box(d3.Elem(1.2), 0), form3.Sphere(0.75))
	})
	c.Register("Mandelbulb", func(Params) sdf.SDF3 {
		return fractal.Bulb(8, 10, 2)
	})
	c.Register("Juliabulb", func(Params) sdf.SDF3 {
		return fractal.Juliabulb(8, r3.Vec{X: 0.35, Y: 0.35, Z: 0.4}, 10, 2)
	})
	c.Register("Creature", func(p Params) sdf.SDF3 {
		return organic.Creature(p.Time, p.Seed)
	})
	c.Register("Fish", func(p Params) sdf.SDF3 {
		return organic.Fish(p.Time)
	})
	c.Register("Blob", func(p Params) sdf.SDF3 {
		return organic.Blob(p.Time, p.Seed)
	})
	return c
}
