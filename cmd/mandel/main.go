// mandel computes the Mandelbrot escape-time map of a region and plots it.
// With -o the plot is written to a file, otherwise it is shown in a window.

package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	mandel "github.com/marben/mandelplane"
	"github.com/marben/mandelplane/escape"
	"github.com/marben/mandelplane/internal/cli"
	"github.com/marben/mandelplane/internal/tiles"
	"github.com/marben/mandelplane/internal/viewer"
	"github.com/marben/mandelplane/render"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(args []string) error {
	fs := cli.NewFlagSet("mandel")
	cfg := mandel.DefaultConfig()
	cf := cli.BindConfig(fs, &cfg)
	output := fs.String("o", "", "output image (.png, .jpg, .gif); empty shows a window")
	workers := fs.Int("workers", 1, "evaluate tiles on this many goroutines")
	noExtent := fs.Bool("pixel-axes", false, "label axes with pixel indices instead of plane coordinates")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := cf.Resolve(); err != nil {
		return err
	}

	log.Printf("evaluating %dx%d samples of %s, %d iterations", cfg.XRes, cfg.YRes, cfg.Region, cfg.MaxIter)
	start := time.Now()
	m, err := evaluate(cfg, *workers)
	if err != nil {
		return err
	}
	log.Printf("evaluation took %s", time.Since(start))

	opts := render.Options{Path: *output, ColorMap: cfg.ColorMap}
	if !*noExtent {
		extent := cfg.Extent()
		opts.Extent = &extent
	}
	img, err := render.Plot(m, opts)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	show := func(img *image.RGBA) error {
		return viewer.Show("mandel "+cfg.Region.String(), img)
	}
	if err := render.Output(img, opts, show); err != nil {
		return err
	}
	if *output != "" {
		log.Printf("plot saved to %q", *output)
	}
	return nil
}

func evaluate(cfg mandel.Config, workers int) (escape.Map, error) {
	if workers <= 1 {
		return cfg.Evaluate(), nil
	}
	return tiles.NewScheduler(cfg.Grid(), tiles.DefaultTileSize).Run(context.Background(), workers, cfg.Params())
}
