package mandel

import (
	"context"
	"fmt"

	"github.com/marben/mandelplane/coords"
	"github.com/marben/mandelplane/escape"
)

// TileEvaluator computes the escape-time map of one tile of a larger grid.
// Implementations may run locally or forward the work to a remote worker.
type TileEvaluator interface {
	EvaluateTile(ctx context.Context, g coords.Grid) (escape.Map, error)
}

var (
	_ TileEvaluator = escape.Params{}
	_ TileEvaluator = RemoteEvaluator{}
	_ Renderer      = RendererImpl{}
)

// NewTileJob packs the points of g into a job.
func NewTileJob(g coords.Grid, p escape.Params) TileJob {
	j := TileJob{
		Rows:     g.Rows,
		Cols:     g.Cols,
		Re:       make([]float64, len(g.Points)),
		Im:       make([]float64, len(g.Points)),
		MaxIter:  p.MaxIter,
		DivLimit: p.DivLimit,
	}
	for i, c := range g.Points {
		j.Re[i], j.Im[i] = real(c), imag(c)
	}
	return j
}

// Grid rebuilds the job's sample points.
func (j TileJob) Grid() (coords.Grid, error) {
	if j.Rows < 0 || j.Cols < 0 || len(j.Re) != j.Rows*j.Cols || len(j.Im) != len(j.Re) {
		return coords.Grid{}, fmt.Errorf("%d+%d points for a %dx%d tile", len(j.Re), len(j.Im), j.Cols, j.Rows)
	}
	pts := make([]complex128, len(j.Re))
	for i := range pts {
		pts[i] = complex(j.Re[i], j.Im[i])
	}
	return coords.FromPoints(j.Rows, j.Cols, pts), nil
}

// Params returns the job's evaluator parameters.
func (j TileJob) Params() escape.Params {
	return escape.Params{MaxIter: j.MaxIter, DivLimit: j.DivLimit}
}

// RendererImpl renders tiles on this machine's CPU.
type RendererImpl struct {
	// OnTileRender, if set, is called with the size of every tile before it is evaluated.
	OnTileRender func(rows, cols int)
}

func (r RendererImpl) RenderTile(ctx context.Context, job TileJob) (escape.Map, error) {
	if err := ctx.Err(); err != nil {
		return escape.Map{}, err
	}
	g, err := job.Grid()
	if err != nil {
		return escape.Map{}, fmt.Errorf("render tile: %w", err)
	}
	if r.OnTileRender != nil {
		r.OnTileRender(job.Rows, job.Cols)
	}
	return job.Params().Evaluate(g), nil
}

// RemoteEvaluator evaluates tiles on a Renderer, usually an irpc client of a
// connected worker.
type RemoteEvaluator struct {
	Renderer Renderer
	Params   escape.Params
}

func (e RemoteEvaluator) EvaluateTile(ctx context.Context, g coords.Grid) (escape.Map, error) {
	return e.Renderer.RenderTile(ctx, NewTileJob(g, e.Params))
}
