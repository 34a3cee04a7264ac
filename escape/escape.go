// Package escape computes Mandelbrot escape times over a grid of complex points.
//
// For every point c the orbit f(0) = 0, f(n) = f(n-1)² + c is followed for at most
// maxIter steps. The escape time of c is the first n with |f(n)| > divLimit, or 0 when
// the orbit stays within the limit for the whole budget. A 0 therefore means
// "in or near the set" and is indistinguishable from "not yet diverged".
package escape

import (
	"context"
	"math/cmplx"

	"github.com/marben/mandelplane/coords"
)

const (
	DefaultMaxIter  = 50
	DefaultDivLimit = 2.0
)

// Map holds escape times, row-major, with the shape of the grid it was computed from.
type Map struct {
	Rows, Cols int
	Counts     []int
}

// NewMap returns an all-zero map of the given shape.
func NewMap(rows, cols int) Map {
	return Map{Rows: rows, Cols: cols, Counts: make([]int, rows*cols)}
}

// At returns the escape time at row r, column c.
func (m Map) At(r, c int) int {
	return m.Counts[r*m.Cols+c]
}

// Shape returns (rows, cols).
func (m Map) Shape() (rows, cols int) {
	return m.Rows, m.Cols
}

// Evaluate returns the escape time of every point of g.
//
// All cells are iterated in lockstep. A cell settles in the pass in which it first
// exceeds divLimit; settled cells keep their recorded count and their orbit is no
// longer advanced. With maxIter <= 0 no pass runs and the result is all zeros.
// Non-finite points follow IEEE comparison rules: NaN never escapes, Inf escapes at 1.
func Evaluate(g coords.Grid, maxIter int, divLimit float64) Map {
	out := NewMap(g.Rows, g.Cols)
	f := make([]complex128, len(g.Points))
	settled := make([]bool, len(g.Points))

	for n := 1; n <= maxIter; n++ {
		for i, c := range g.Points {
			if settled[i] {
				continue
			}
			f[i] = Step(f[i], c)
			if cmplx.Abs(f[i]) > divLimit {
				out.Counts[i] = n
				settled[i] = true
			}
		}
	}
	return out
}

// Step returns the next orbit value f² + c.
func Step(f, c complex128) complex128 {
	return f*f + c
}

// Params is a reusable evaluator configuration.
type Params struct {
	MaxIter  int
	DivLimit float64
}

// DefaultParams returns Params with DefaultMaxIter and DefaultDivLimit.
func DefaultParams() Params {
	return Params{MaxIter: DefaultMaxIter, DivLimit: DefaultDivLimit}
}

// Evaluate is Evaluate(g, p.MaxIter, p.DivLimit).
func (p Params) Evaluate(g coords.Grid) Map {
	return Evaluate(g, p.MaxIter, p.DivLimit)
}

// EvaluateTile evaluates g in the calling goroutine. ctx is only checked before the
// work starts; a single tile is never interrupted.
func (p Params) EvaluateTile(ctx context.Context, g coords.Grid) (Map, error) {
	if err := ctx.Err(); err != nil {
		return Map{}, err
	}
	return p.Evaluate(g), nil
}
