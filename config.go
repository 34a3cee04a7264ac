package mandel

import (
	"errors"
	"fmt"
	"math"

	"github.com/marben/mandelplane/coords"
	"github.com/marben/mandelplane/escape"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultColorMap names the palette used when none is given.
const DefaultColorMap = "gist_heat"

// Config describes one evaluation: which part of the plane to sample, at which
// resolution, with which iteration budget, and how to colour the result.
type Config struct {
	Region   Region
	XRes     int // samples along the real axis (image width)
	YRes     int // samples along the imaginary axis (image height)
	MaxIter  int
	DivLimit float64
	ColorMap string
}

// DefaultConfig returns the default 1024x1024 view of [-1.5, 1.5]², 50 iterations,
// divergence limit 2, gist_heat palette.
func DefaultConfig() Config {
	return Config{
		Region:   DefaultRegion,
		XRes:     coords.DefaultXRes,
		YRes:     coords.DefaultYRes,
		MaxIter:  escape.DefaultMaxIter,
		DivLimit: escape.DefaultDivLimit,
		ColorMap: DefaultColorMap,
	}
}

// Validate reports the first problem found in c, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.XRes < 1 || c.YRes < 1:
		return fmt.Errorf("%w: resolution %dx%d must be at least 1x1", ErrInvalidConfig, c.XRes, c.YRes)
	case c.MaxIter < 0:
		return fmt.Errorf("%w: max iterations %d is negative", ErrInvalidConfig, c.MaxIter)
	case !(c.DivLimit > 0) || math.IsInf(c.DivLimit, 0):
		return fmt.Errorf("%w: divergence limit %g must be positive and finite", ErrInvalidConfig, c.DivLimit)
	case !finite(c.Region.Xmin, c.Region.Xmax, c.Region.Ymin, c.Region.Ymax):
		return fmt.Errorf("%w: region %s is not finite", ErrInvalidConfig, c.Region)
	}
	return nil
}

// Extent returns the region bounds as [xmin, xmax, ymin, ymax].
func (c Config) Extent() [4]float64 {
	return c.Region.Extent()
}

// Params returns the evaluator parameters of c.
func (c Config) Params() escape.Params {
	return escape.Params{MaxIter: c.MaxIter, DivLimit: c.DivLimit}
}

// Grid samples the configured region at the configured resolution.
func (c Config) Grid() coords.Grid {
	return coords.Plane(c.Region.Xmin, c.Region.Xmax, c.XRes, c.Region.Ymin, c.Region.Ymax, c.YRes)
}

// Evaluate samples the configured region and returns its escape-time map.
func (c Config) Evaluate() escape.Map {
	return escape.Evaluate(c.Grid(), c.MaxIter, c.DivLimit)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
