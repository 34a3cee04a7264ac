package cli

import (
	"errors"
	"testing"

	mandel "github.com/marben/mandelplane"
	"github.com/marben/mandelplane/render"
)

func mustParse(t *testing.T, args ...string) mandel.Config {
	t.Helper()
	cfg, err := ParseConfig(NewFlagSet("test"), mandel.DefaultConfig(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return cfg
}

func TestDefaultsSurviveEmptyArgs(t *testing.T) {
	if cfg := mustParse(t); cfg != mandel.DefaultConfig() {
		t.Fatalf("got %+v", cfg)
	}
}

func TestFlagsOverride(t *testing.T) {
	cfg := mustParse(t,
		"-xres", "320", "-yres", "200",
		"-max-iter", "200", "-div-limit", "4",
		"-cmap", "hot",
	)
	if cfg.XRes != 320 || cfg.YRes != 200 || cfg.MaxIter != 200 || cfg.DivLimit != 4 || cfg.ColorMap != "hot" {
		t.Fatalf("got %+v", cfg)
	}
}

func TestNamedRegion(t *testing.T) {
	cfg := mustParse(t, "-region", "elephant-valley")
	if cfg.Region != mandel.ElephantValley {
		t.Fatalf("region %v", cfg.Region)
	}
}

func TestBoundsOverrideRegion(t *testing.T) {
	cfg := mustParse(t, "-region", "elephant-valley", "-bounds", "-2, 1, -1.5, 1.5")
	want := mandel.Region{Xmin: -2, Xmax: 1, Ymin: -1.5, Ymax: 1.5}
	if cfg.Region != want {
		t.Fatalf("region %v", cfg.Region)
	}
}

func TestErrors(t *testing.T) {
	cases := [][]string{
		{"-region", "atlantis"},
		{"-bounds", "1,2,3"},
		{"-bounds", "a,b,c,d"},
		{"-xres", "0"},
		{"-div-limit", "-1"},
		{"-max-iter", "nope"},
	}
	for _, args := range cases {
		if _, err := ParseConfig(NewFlagSet("test"), mandel.DefaultConfig(), args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}

	_, err := ParseConfig(NewFlagSet("test"), mandel.DefaultConfig(), []string{"-cmap", "viridis"})
	if !errors.Is(err, render.ErrUnknownColorMap) {
		t.Fatalf("want ErrUnknownColorMap, got %v", err)
	}
	_, err = ParseConfig(NewFlagSet("test"), mandel.DefaultConfig(), []string{"-yres", "-3"})
	if !errors.Is(err, mandel.ErrInvalidConfig) {
		t.Fatalf("want ErrInvalidConfig, got %v", err)
	}
}

func TestParsedConfigGrid(t *testing.T) {
	cfg := mustParse(t, "-xres", "8", "-yres", "4", "-bounds", "-2,2,-1,1")
	g := cfg.Grid()
	if g.Rows != 4 || g.Cols != 8 {
		t.Fatalf("shape (%d,%d)", g.Rows, g.Cols)
	}
	if g.At(0, 0) != complex(-2, -1) || g.At(3, 7) != complex(2, 1) {
		t.Fatalf("corners %v %v", g.At(0, 0), g.At(3, 7))
	}
}
