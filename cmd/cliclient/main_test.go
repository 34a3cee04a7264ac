package main

import (
	"errors"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/marben/mandelplane/coords"
	"github.com/marben/mandelplane/escape"
	"github.com/marben/mandelplane/internal/tiles"
	"github.com/marben/mandelplane/internal/tileserver"
	"github.com/marben/mandelplane/render"
)

func TestMapImageRejectsEmptyMap(t *testing.T) {
	for _, m := range []escape.Map{
		{},
		{Rows: 2, Cols: 0},
		{Rows: 2, Cols: 2, Counts: []int{1}},
	} {
		if _, err := mapImage(m, render.GistHeat); !errors.Is(err, errEmptyMap) {
			t.Errorf("%dx%d with %d counts: want errEmptyMap, got %v", m.Cols, m.Rows, len(m.Counts), err)
		}
	}

	img, err := mapImage(escape.Map{Rows: 2, Cols: 3, Counts: []int{0, 1, 2, 3, 4, 5}}, render.GistHeat)
	if err != nil {
		t.Fatalf("mapImage: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds %v", b)
	}
}

func TestRunRendersAndSaves(t *testing.T) {
	g := coords.Plane(-2, 1, 24, -1, 1, 16)
	srv := tileserver.New(tiles.NewScheduler(g, 8), escape.DefaultParams())
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go srv.Serve(l)
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "mandel.png")
	if err := run([]string{"-server", l.Addr().String(), "-o", out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if fi.Size() == 0 {
		t.Fatalf("empty image file")
	}
}
