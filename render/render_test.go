package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/marben/mandelplane/coords"
	"github.com/marben/mandelplane/escape"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"gist_heat", "gray", "hot", "hsv"} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	if _, err := Lookup("viridis"); !errors.Is(err, ErrUnknownColorMap) {
		t.Fatalf("want ErrUnknownColorMap, got %v", err)
	}
}

func TestGistHeatEnds(t *testing.T) {
	if got := GistHeat(0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("GistHeat(0) = %v", got)
	}
	if got := GistHeat(1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("GistHeat(1) = %v", got)
	}
	// red saturates first, blue last
	mid := GistHeat(0.7)
	if !(mid.R == 255 && mid.G > 0 && mid.B == 0) {
		t.Fatalf("GistHeat(0.7) = %v", mid)
	}
}

func TestImageNormalises(t *testing.T) {
	m := escape.Map{Rows: 1, Cols: 3, Counts: []int{2, 4, 6}}
	img := Image(m, Gray)
	if img.Bounds() != image.Rect(0, 0, 3, 1) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got.R != 0 {
		t.Fatalf("min pixel %v", got)
	}
	if got := img.RGBAAt(1, 0); got.R != 128 {
		t.Fatalf("mid pixel %v", got)
	}
	if got := img.RGBAAt(2, 0); got.R != 255 {
		t.Fatalf("max pixel %v", got)
	}
}

func TestImageConstantMap(t *testing.T) {
	m := escape.NewMap(2, 2)
	img := Image(m, Gray)
	for _, p := range []image.Point{{0, 0}, {1, 1}} {
		if got := img.RGBAAt(p.X, p.Y); got.R != 0 {
			t.Fatalf("pixel %v = %v", p, got)
		}
	}
}

func TestTileUsesGlobalCoordinates(t *testing.T) {
	m := escape.Map{Rows: 2, Cols: 2, Counts: []int{0, 10, 5, 10}}
	img := Tile(m, image.Pt(64, 128), 10, Gray)
	if img.Bounds() != image.Rect(64, 128, 66, 130) {
		t.Fatalf("bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(65, 128); got.R != 255 {
		t.Fatalf("pixel %v", got)
	}
	if got := img.RGBAAt(64, 129); got.R != 128 {
		t.Fatalf("pixel %v", got)
	}
}

func TestPlotFrameAndSize(t *testing.T) {
	g := coords.Plane(-2, 1, 40, -1, 1, 30)
	m := escape.Evaluate(g, 20, 2)

	extent := [4]float64{-2, 1, -1, 1}
	img, err := Plot(m, Options{Extent: &extent})
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	want := image.Rect(0, 0, marginLeft+40+marginRight, marginTop+30+marginBottom)
	if img.Bounds() != want {
		t.Fatalf("bounds %v, want %v", img.Bounds(), want)
	}
	// frame just outside the data area
	if got := img.RGBAAt(marginLeft-1, marginTop+5); got != foreground {
		t.Fatalf("left frame pixel %v", got)
	}
	if got := img.RGBAAt(img.Bounds().Dx()-1, 0); got != background {
		t.Fatalf("corner pixel %v", got)
	}

	if _, err := Plot(m, Options{ColorMap: "nope"}); !errors.Is(err, ErrUnknownColorMap) {
		t.Fatalf("want ErrUnknownColorMap, got %v", err)
	}
}

func TestPlotDrawsLabels(t *testing.T) {
	m := escape.NewMap(20, 20)
	img, err := Plot(m, Options{})
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	// the area below the frame holds tick and axis labels
	dark := 0
	for y := marginTop + 20 + tickLen + 2; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) == foreground {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatalf("no label pixels drawn")
	}
}

func TestTickLabel(t *testing.T) {
	cases := map[float64]string{0: "0", -1.5: "-1.5", 0.125: "0.125", 1023: "1023"}
	for v, want := range cases {
		if got := tickLabel(v); got != want {
			t.Errorf("tickLabel(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestSaveAndOutput(t *testing.T) {
	dir := t.TempDir()
	img := Image(escape.Map{Rows: 1, Cols: 2, Counts: []int{0, 1}}, GistHeat)

	path := filepath.Join(dir, "out.png")
	if err := Output(img, Options{Path: path}, nil); err != nil {
		t.Fatalf("Output: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds %v", decoded.Bounds())
	}

	for _, name := range []string{"out.jpg", "out.gif"} {
		if err := Save(filepath.Join(dir, name), img); err != nil {
			t.Fatalf("Save %s: %v", name, err)
		}
	}

	if err := Save(filepath.Join(dir, "missing", "out.png"), img); err == nil {
		t.Fatalf("expected error for missing directory")
	}

	shown := false
	if err := Output(img, Options{}, func(*image.RGBA) error { shown = true; return nil }); err != nil || !shown {
		t.Fatalf("show path not taken: %v", err)
	}
	if err := Output(img, Options{}, nil); err == nil {
		t.Fatalf("expected error without path or display")
	}
}
