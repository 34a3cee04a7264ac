package coords

import (
	"image"
	"testing"
)

func TestPlaneShape(t *testing.T) {
	cases := []struct{ xres, yres int }{
		{1, 1}, {4, 4}, {3, 7}, {16, 2},
	}
	for _, tc := range cases {
		g := Plane(-1.5, 1.5, tc.xres, -1.5, 1.5, tc.yres)
		rows, cols := g.Shape()
		if rows != tc.yres || cols != tc.xres {
			t.Fatalf("Plane(%d,%d): shape (%d,%d), want (%d,%d)", tc.xres, tc.yres, rows, cols, tc.yres, tc.xres)
		}
		if len(g.Points) != tc.xres*tc.yres {
			t.Fatalf("Plane(%d,%d): %d points", tc.xres, tc.yres, len(g.Points))
		}
	}
}

func TestPlaneValues(t *testing.T) {
	g := Plane(-2, 2, 4, -1, 1, 3)
	if got := g.At(0, 0); got != complex(-2, -1) {
		t.Fatalf("At(0,0) = %v", got)
	}
	if got := g.At(2, 3); got != complex(2, 1) {
		t.Fatalf("At(2,3) = %v", got)
	}
	if got := g.At(1, 0); got != complex(-2, 0) {
		t.Fatalf("At(1,0) = %v", got)
	}
}

func TestDefaultPlane(t *testing.T) {
	g := DefaultPlane()
	if g.Rows != 1024 || g.Cols != 1024 {
		t.Fatalf("default shape (%d,%d)", g.Rows, g.Cols)
	}
	if g.At(0, 0) != complex(-1.5, -1.5) || g.At(1023, 1023) != complex(1.5, 1.5) {
		t.Fatalf("default corners %v %v", g.At(0, 0), g.At(1023, 1023))
	}
}

func TestLinspace(t *testing.T) {
	if got := Linspace(0, 1, 0); len(got) != 0 {
		t.Fatalf("n=0: %v", got)
	}
	if got := Linspace(3, 5, 1); len(got) != 1 || got[0] != 3 {
		t.Fatalf("n=1: %v", got)
	}
	got := Linspace(-2, 2, 5)
	want := []float64{-2, -1, 0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Linspace(-2,2,5) = %v", got)
		}
	}
}

func TestSub(t *testing.T) {
	g := Plane(0, 3, 4, 0, 2, 3)
	s := g.Sub(image.Rect(1, 1, 3, 3))
	if s.Rows != 2 || s.Cols != 2 {
		t.Fatalf("sub shape (%d,%d)", s.Rows, s.Cols)
	}
	if s.At(0, 0) != g.At(1, 1) || s.At(1, 1) != g.At(2, 2) {
		t.Fatalf("sub points %v", s.Points)
	}

	clipped := g.Sub(image.Rect(2, 2, 10, 10))
	if clipped.Rows != 1 || clipped.Cols != 2 {
		t.Fatalf("clipped shape (%d,%d)", clipped.Rows, clipped.Cols)
	}
}

func TestFromPointsPanicsOnMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	FromPoints(2, 2, make([]complex128, 3))
}
