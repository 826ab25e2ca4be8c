// Package render turns distance fields into images. It consumes the
// evaluation side of the engine and never influences field values.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/chewxy/math32"
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"

	"sdfview/internal/d3"
	"sdfview/sdf"
)

// superSample is the raymarch oversampling factor. The image is traced
// at superSample times the requested size and downscaled.
const superSample = 2

// RaymarchConfig controls the raymarched preview. The zero value
// renders a 512x512 view from an isometric-ish eye position.
type RaymarchConfig struct {
	Width, Height int
	// Eye is the camera position, LookAt the view target.
	Eye, LookAt r3.Vec
	// Up is the camera up direction.
	Up r3.Vec
	// FOV is the vertical field of view in degrees.
	FOV float64
	// StepScale scales the sphere tracing step. Use values below 1
	// for fields that are lower bound estimates rather than true
	// distances (fractals, warped shapes).
	StepScale float64
	MaxSteps  int
	// Light is the directional light direction.
	Light r3.Vec
}

func (c *RaymarchConfig) defaults() {
	if c.Width == 0 {
		c.Width = 512
	}
	if c.Height == 0 {
		c.Height = 512
	}
	if c.Eye == (r3.Vec{}) {
		c.Eye = d3.Elem(2.4)
	}
	if c.Up == (r3.Vec{}) {
		c.Up = r3.Vec{Z: 1}
	}
	if c.FOV == 0 {
		c.FOV = 45
	}
	if c.StepScale == 0 {
		c.StepScale = 0.8
	}
	if c.MaxSteps == 0 {
		c.MaxSteps = 256
	}
	if c.Light == (r3.Vec{}) {
		c.Light = r3.Vec{X: -0.75, Y: 1, Z: 0.25}
	}
}

// Raymarch renders a shaded preview of the field by sphere tracing one
// ray per pixel. Purely a consumer of Evaluate: the same field always
// renders the same image.
func Raymarch(s sdf.SDF3, cfg RaymarchConfig) image.Image {
	cfg.defaults()
	w := cfg.Width * superSample
	h := cfg.Height * superSample

	// Camera basis.
	eye := fauxgl.V(cfg.Eye.X, cfg.Eye.Y, cfg.Eye.Z)
	center := fauxgl.V(cfg.LookAt.X, cfg.LookAt.Y, cfg.LookAt.Z)
	up := fauxgl.V(cfg.Up.X, cfg.Up.Y, cfg.Up.Z)
	forward := center.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	trueUp := right.Cross(forward).Normalize()

	light := r3.Unit(cfg.Light)
	tanF := math.Tan(sdf.DtoR(cfg.FOV) / 2)
	aspect := float64(w) / float64(h)

	// Far enough to cross the whole bounding box from the eye.
	bb := d3.Box(s.Bounds())
	maxDist := r3.Norm(r3.Sub(bb.Center(), cfg.Eye)) + r3.Norm(bb.Size())

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx := (2*(float64(x)+0.5)/float64(w) - 1) * tanF * aspect
			sy := (1 - 2*(float64(y)+0.5)/float64(h)) * tanF
			dirF := forward.Add(right.MulScalar(sx)).Add(trueUp.MulScalar(sy))
			dir := r3.Unit(r3.Vec{X: dirF.X, Y: dirF.Y, Z: dirF.Z})

			pos, t, _ := sdf.Raycast3(s, cfg.Eye, dir, cfg.StepScale, 1e-4, maxDist, cfg.MaxSteps)
			if t < 0 {
				img.SetRGBA(x, y, background(y, h))
				continue
			}
			n := sdf.Normal3(s, pos, 1e-5)
			img.SetRGBA(x, y, shade(n, dir, light))
		}
	}
	return resize.Resize(uint(cfg.Width), uint(cfg.Height), img, resize.MitchellNetravali)
}

// shade computes lambert plus rim lighting for a surface hit.
func shade(n, dir, light r3.Vec) color.RGBA {
	lambert := math32.Max(0, float32(n.Dot(light)))
	facing := math32.Max(0, float32(-n.Dot(dir)))
	rim := math32.Pow(1-facing, 3)
	v := 0.18 + 0.67*lambert + 0.25*rim
	v = math32.Min(v, 1)
	v = math32.Sqrt(v) // gamma 2
	return color.RGBA{
		R: uint8(255 * v * 0.45),
		G: uint8(255 * v * 0.85),
		B: uint8(255 * v * 0.6),
		A: 255,
	}
}

// background is a dark vertical gradient for rays that miss.
func background(y, h int) color.RGBA {
	v := 0.1 + 0.1*float32(y)/float32(h)
	g := uint8(255 * v)
	return color.RGBA{R: g, G: g, B: g + 10, A: 255}
}
