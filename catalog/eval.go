package catalog

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// minChunk is the smallest per-goroutine work unit. Points below this
// count are evaluated on the calling goroutine.
const minChunk = 512

var errMismatchBufferLength = errors.New("catalog: position and distance buffer length mismatch")

// EvaluateBatch builds the named field with the given time and seed and
// evaluates it at every point. The result is position-aligned: result[i]
// is the distance at pts[i]. An empty batch yields an empty result. The
// only expected failure is *UnknownNameError.
func (c *Catalog) EvaluateBatch(name string, pts []r3.Vec, time float64, seed uint32) ([]float64, error) {
	dst := make([]float64, len(pts))
	if err := c.EvaluateBatchInto(dst, name, pts, time, seed); err != nil {
		return nil, err
	}
	return dst, nil
}

// EvaluateBatchInto is EvaluateBatch with a caller-owned destination
// buffer. dst and pts must be of equal length.
//
// Field evaluation is pure per point, so the batch is partitioned
// across goroutines with each worker writing only its own index range.
func (c *Catalog) EvaluateBatchInto(dst []float64, name string, pts []r3.Vec, time float64, seed uint32) error {
	if len(dst) != len(pts) {
		return errMismatchBufferLength
	}
	s, err := c.Build(name, Params{Time: time, Seed: seed})
	if err != nil {
		return err
	}
	if len(pts) <= minChunk {
		for i, p := range pts {
			dst[i] = s.Evaluate(p)
		}
		return nil
	}
	workers := runtime.GOMAXPROCS(0)
	chunk := (len(pts) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	var g errgroup.Group
	for start := 0; start < len(pts); start += chunk {
		end := min(start+chunk, len(pts))
		start := start
		g.Go(func() error {
			for i := start; i < end; i++ {
				dst[i] = s.Evaluate(pts[i])
			}
			return nil
		})
	}
	return g.Wait()
}
