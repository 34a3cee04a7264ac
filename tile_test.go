package mandel

import (
	"context"
	"math"
	"math/cmplx"
	"net"
	"testing"

	"github.com/marben/irpc"

	"github.com/marben/mandelplane/coords"
	"github.com/marben/mandelplane/escape"
)

func TestTileJobRoundTrip(t *testing.T) {
	g := coords.Plane(-2, 1, 5, -1, 1, 3)
	p := escape.Params{MaxIter: 17, DivLimit: 3}
	job := NewTileJob(g, p)

	got, err := job.Grid()
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if got.Rows != 3 || got.Cols != 5 {
		t.Fatalf("shape (%d,%d)", got.Rows, got.Cols)
	}
	for i := range g.Points {
		if got.Points[i] != g.Points[i] {
			t.Fatalf("point %d: %v, want %v", i, got.Points[i], g.Points[i])
		}
	}
	if job.Params() != p {
		t.Fatalf("params %+v", job.Params())
	}
}

func TestTileJobRejectsTruncatedPoints(t *testing.T) {
	job := NewTileJob(coords.Plane(-1, 1, 4, -1, 1, 4), escape.DefaultParams())
	job.Im = job.Im[:3]
	if _, err := job.Grid(); err == nil {
		t.Fatalf("want error for %d+%d points", len(job.Re), len(job.Im))
	}
	if _, err := (RendererImpl{}).RenderTile(context.Background(), job); err == nil {
		t.Fatalf("RenderTile accepted a truncated job")
	}
}

func TestRendererImpl(t *testing.T) {
	g := coords.Plane(-2, 1, 6, -1, 1, 4)
	p := escape.DefaultParams()
	var rows, cols int
	r := RendererImpl{OnTileRender: func(r, c int) { rows, cols = r, c }}

	m, err := r.RenderTile(context.Background(), NewTileJob(g, p))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if rows != 4 || cols != 6 {
		t.Fatalf("callback got (%d,%d)", rows, cols)
	}
	want := p.Evaluate(g)
	for i := range want.Counts {
		if m.Counts[i] != want.Counts[i] {
			t.Fatalf("cell %d: %d, want %d", i, m.Counts[i], want.Counts[i])
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.RenderTile(ctx, NewTileJob(g, p)); err == nil {
		t.Fatalf("want error on cancelled context")
	}
}

// pipeRenderer connects a RendererImpl and an irpc client over an in-memory pipe.
func pipeRenderer(t *testing.T) Renderer {
	t.Helper()
	c1, c2 := net.Pipe()
	worker := irpc.NewEndpoint(c1, irpc.WithEndpointServices(NewRendererIrpcService(RendererImpl{})))
	server := irpc.NewEndpoint(c2)
	t.Cleanup(func() {
		server.Close()
		worker.Close()
	})
	client, err := NewRendererIrpcClient(server)
	if err != nil {
		t.Fatalf("new renderer client: %v", err)
	}
	return client
}

func TestRemoteEvaluatorOverIrpc(t *testing.T) {
	p := escape.DefaultParams()
	ev := RemoteEvaluator{Renderer: pipeRenderer(t), Params: p}

	g := coords.FromPoints(2, 3, []complex128{
		cmplx.Inf(), complex(math.NaN(), 0), 0,
		1, complex(math.Inf(-1), math.NaN()), -1,
	})
	m, err := ev.EvaluateTile(context.Background(), g)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	want := p.Evaluate(g)
	if m.Rows != want.Rows || m.Cols != want.Cols {
		t.Fatalf("shape (%d,%d)", m.Rows, m.Cols)
	}
	for i := range want.Counts {
		if m.Counts[i] != want.Counts[i] {
			t.Fatalf("cell %d: %d, want %d", i, m.Counts[i], want.Counts[i])
		}
	}
	if m.Counts[0] != 1 || m.Counts[1] != 0 || m.Counts[3] != 3 {
		t.Fatalf("non-finite cells %v", m.Counts)
	}
}
