package mandel

import (
	"context"

	"github.com/marben/mandelplane/escape"
)

//go:generate go run github.com/marben/irpc/cmd/irpc

// TileJob asks a worker to evaluate one tile. Samples are split into real and
// imaginary parts, row-major.
type TileJob struct {
	Rows     int
	Cols     int
	Re       []float64
	Im       []float64
	MaxIter  int
	DivLimit float64
}

// Renderer is provided by every worker. The server calls it for each tile it hands out.
type Renderer interface {
	RenderTile(ctx context.Context, job TileJob) (escape.Map, error)
}

// MapProvider is provided by the server.
type MapProvider interface {
	// GetMap blocks until every tile is finished and returns the whole map.
	GetMap(ctx context.Context) (escape.Map, error)
}
