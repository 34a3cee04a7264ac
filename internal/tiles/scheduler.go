// Package tiles splits a grid into rectangular tiles and evaluates them on any
// number of concurrently attached evaluators.
package tiles

import (
	"context"
	"fmt"
	"image"
	"log"
	"sort"
	"sync"

	mandel "github.com/marben/mandelplane"
	"github.com/marben/mandelplane/coords"
	"github.com/marben/mandelplane/escape"
)

var _ mandel.MapProvider = (*Scheduler)(nil)

// DefaultTileSize is the edge length of a tile in samples.
const DefaultTileSize = 64

// Scheduler hands out tiles of one grid and assembles their escape times.
//
// When every tile has been handed out, idle evaluators get copies of tiles still in
// process; the first result for a tile wins and later ones are ignored.
type Scheduler struct {
	grid coords.Grid
	out  escape.Map

	ctx       context.Context
	ctxCancel context.CancelFunc

	totalPixels    int
	finishedPixels int
	totalTiles     int
	workers        int

	unstarted map[image.Rectangle]struct{}
	inProcess map[image.Rectangle]struct{}
	finished  map[image.Rectangle]escape.Map
	m         sync.Mutex
}

// NewScheduler splits g into tileSize × tileSize tiles. tileSize <= 0 selects
// DefaultTileSize.
func NewScheduler(g coords.Grid, tileSize int) *Scheduler {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	allTilesSlice := SplitRect(g.Bounds(), tileSize, tileSize)
	allTiles := make(map[image.Rectangle]struct{}, len(allTilesSlice))
	for _, t := range allTilesSlice {
		allTiles[t] = struct{}{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		grid:        g,
		out:         escape.NewMap(g.Rows, g.Cols),
		unstarted:   allTiles,
		inProcess:   make(map[image.Rectangle]struct{}),
		finished:    make(map[image.Rectangle]escape.Map, len(allTiles)),
		totalPixels: g.Rows * g.Cols,
		totalTiles:  len(allTiles),
		ctx:         ctx,
		ctxCancel:   cancel,
	}
	if len(allTiles) == 0 {
		cancel()
	}
	return s
}

// Dims returns the grid size as (width, height).
func (s *Scheduler) Dims() (w, h int) {
	return s.grid.Cols, s.grid.Rows
}

// TotalTiles returns the number of tiles the grid was split into.
func (s *Scheduler) TotalTiles() int {
	return s.totalTiles
}

func (s *Scheduler) popTile() (tile image.Rectangle, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	// Get unstarted tile
	if len(s.unstarted) > 0 {
		tile = firstTile(s.unstarted)
		delete(s.unstarted, tile)

		// Move popped tile to currently processed tiles
		s.inProcess[tile] = struct{}{}
		return tile, true
	}

	// If there is no unstarted tile, we work again on a started one
	if len(s.inProcess) > 0 {
		return firstTile(s.inProcess), true
	}

	return image.Rectangle{}, false
}

// firstTile picks the top-most, then left-most tile so that the image fills in
// reading order.
func firstTile(set map[image.Rectangle]struct{}) image.Rectangle {
	var best image.Rectangle
	first := true
	for t := range set {
		if first || t.Min.Y < best.Min.Y || (t.Min.Y == best.Min.Y && t.Min.X < best.Min.X) {
			best, first = t, false
		}
	}
	return best
}

// Wait blocks until every tile is finished or ctx is done, and returns the
// assembled map.
func (s *Scheduler) Wait(ctx context.Context) (escape.Map, error) {
	select {
	case <-s.ctx.Done():
		return s.out, nil
	case <-ctx.Done():
		return escape.Map{}, ctx.Err()
	}
}

// GetMap is Wait. It lets the scheduler be served as a MapProvider.
func (s *Scheduler) GetMap(ctx context.Context) (escape.Map, error) {
	return s.Wait(ctx)
}

// Done is closed once every tile is finished.
func (s *Scheduler) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Progress returns the finished fraction of samples in [0, 1].
func (s *Scheduler) Progress() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	if s.totalPixels == 0 {
		return 1
	}
	return float32(s.finishedPixels) / float32(s.totalPixels)
}

// Workers returns the number of evaluators currently attached.
func (s *Scheduler) Workers() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.workers
}

// FinishedTiles returns the finished tiles in reading order.
func (s *Scheduler) FinishedTiles() []image.Rectangle {
	s.m.Lock()
	tiles := make([]image.Rectangle, 0, len(s.finished))
	for t := range s.finished {
		tiles = append(tiles, t)
	}
	s.m.Unlock()

	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Min.Y != tiles[j].Min.Y {
			return tiles[i].Min.Y < tiles[j].Min.Y
		}
		return tiles[i].Min.X < tiles[j].Min.X
	})
	return tiles
}

// Tile returns the escape times of a finished tile.
func (s *Scheduler) Tile(r image.Rectangle) (escape.Map, bool) {
	s.m.Lock()
	defer s.m.Unlock()
	m, ok := s.finished[r]
	return m, ok
}

func (s *Scheduler) tileFinished(tile image.Rectangle, m escape.Map) error {
	if m.Rows != tile.Dy() || m.Cols != tile.Dx() || len(m.Counts) != m.Rows*m.Cols {
		return fmt.Errorf("tile %s: result shape (%d,%d) does not match", tile, m.Rows, m.Cols)
	}

	s.m.Lock()
	defer s.m.Unlock()

	if _, found := s.inProcess[tile]; !found {
		// another evaluator got there first
		return nil
	}
	delete(s.inProcess, tile)

	for r := 0; r < m.Rows; r++ {
		dst := s.out.Counts[(tile.Min.Y+r)*s.out.Cols+tile.Min.X:]
		copy(dst[:m.Cols], m.Counts[r*m.Cols:(r+1)*m.Cols])
	}
	s.finished[tile] = m
	s.finishedPixels += tile.Dx() * tile.Dy()

	if len(s.unstarted) == 0 && len(s.inProcess) == 0 {
		s.ctxCancel()
	}
	return nil
}

func (s *Scheduler) incActiveWorker() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

func (s *Scheduler) decActiveWorkers() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

// Evaluate pulls tiles and evaluates them on ev until none are left, ctx is done,
// or ev fails. A failed tile stays available to other evaluators.
// It can be called from multiple goroutines in parallel.
func (s *Scheduler) Evaluate(ctx context.Context, ev mandel.TileEvaluator) error {
	s.incActiveWorker()
	defer s.decActiveWorkers()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tile, found := s.popTile()
		if !found {
			return nil
		}
		m, err := ev.EvaluateTile(ctx, s.grid.Sub(tile))
		if err != nil {
			s.requeue(tile)
			return fmt.Errorf("tile %s: %w", tile, err)
		}
		if err := s.tileFinished(tile, m); err != nil {
			s.requeue(tile)
			return err
		}
		log.Printf("finished: %f", s.Progress())
	}
}

// requeue puts an unfinished tile back at the front of the queue.
func (s *Scheduler) requeue(tile image.Rectangle) {
	s.m.Lock()
	defer s.m.Unlock()
	if _, ok := s.inProcess[tile]; ok {
		delete(s.inProcess, tile)
		s.unstarted[tile] = struct{}{}
	}
}

// Run evaluates the whole grid on n local evaluators and returns the result.
func (s *Scheduler) Run(ctx context.Context, n int, p escape.Params) (escape.Map, error) {
	if n < 1 {
		n = 1
	}
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			errs <- s.Evaluate(ctx, p)
		}()
	}
	var firstErr error
	for i := 0; i < n; i++ {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return escape.Map{}, firstErr
	}
	return s.Wait(ctx)
}

// SplitRect splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func SplitRect(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := tileH
		if oy+th > h {
			th = h - oy
		}

		for ox := 0; ox < w; ox += tileW {
			tw := tileW
			if ox+tw > w {
				tw = w - ox
			}

			tile := image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			)
			tiles = append(tiles, tile)
		}
	}

	return tiles
}
