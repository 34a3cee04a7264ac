// Package cli binds mandel.Config to command-line flags.
package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	mandel "github.com/marben/mandelplane"
	"github.com/marben/mandelplane/render"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// ConfigFlags holds the raw flag values behind a Config.
type ConfigFlags struct {
	cfg    *mandel.Config
	region string
	bounds string
}

// BindConfig registers the config flags on fs with cfg's current values as
// defaults. Call Resolve after fs.Parse.
func BindConfig(fs *flag.FlagSet, cfg *mandel.Config) *ConfigFlags {
	cf := &ConfigFlags{cfg: cfg}
	fs.IntVar(&cfg.XRes, "xres", cfg.XRes, "samples along the real axis (image width)")
	fs.IntVar(&cfg.YRes, "yres", cfg.YRes, "samples along the imaginary axis (image height)")
	fs.IntVar(&cfg.MaxIter, "max-iter", cfg.MaxIter, "iteration budget per point")
	fs.Float64Var(&cfg.DivLimit, "div-limit", cfg.DivLimit, "magnitude beyond which an orbit diverges")
	fs.StringVar(&cfg.ColorMap, "cmap", cfg.ColorMap, "colour map: "+strings.Join(render.ColorMapNames(), ", "))
	fs.StringVar(&cf.region, "region", "", "named region: "+strings.Join(mandel.RegionNames(), ", "))
	fs.StringVar(&cf.bounds, "bounds", "", "explicit region as xmin,xmax,ymin,ymax (overrides -region)")
	return cf
}

// Resolve applies -region and -bounds to the config and validates it.
func (cf *ConfigFlags) Resolve() error {
	if cf.region != "" {
		r, ok := mandel.LookupRegion(cf.region)
		if !ok {
			return fmt.Errorf("unknown region %q (have %s)", cf.region, strings.Join(mandel.RegionNames(), ", "))
		}
		cf.cfg.Region = r
	}
	if cf.bounds != "" {
		r, err := ParseRegion(cf.bounds)
		if err != nil {
			return err
		}
		cf.cfg.Region = r
	}
	if _, err := render.Lookup(cf.cfg.ColorMap); err != nil {
		return err
	}
	return cf.cfg.Validate()
}

// ParseRegion parses "xmin,xmax,ymin,ymax".
func ParseRegion(s string) (mandel.Region, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return mandel.Region{}, fmt.Errorf("region %q: want xmin,xmax,ymin,ymax", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return mandel.Region{}, fmt.Errorf("region %q: %w", s, err)
		}
		v[i] = f
	}
	return mandel.Region{Xmin: v[0], Xmax: v[1], Ymin: v[2], Ymax: v[3]}, nil
}

// ParseConfig parses args into a copy of base.
func ParseConfig(fs *flag.FlagSet, base mandel.Config, args []string) (mandel.Config, error) {
	cfg := base
	cf := BindConfig(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return mandel.Config{}, err
	}
	if err := cf.Resolve(); err != nil {
		return mandel.Config{}, err
	}
	return cfg, nil
}
