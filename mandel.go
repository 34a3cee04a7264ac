// Package mandel evaluates the Mandelbrot set over a rectangular region of the
// complex plane.
//
// Grid construction lives in package coords and escape-time evaluation in package
// escape; this package ties them together through Config.
package mandel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marben/mandelplane/coords"
	"github.com/marben/mandelplane/escape"
)

// Region within the complex plane
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Extent returns the region as [xmin, xmax, ymin, ymax].
func (r Region) Extent() [4]float64 {
	return [4]float64{r.Xmin, r.Xmax, r.Ymin, r.Ymax}
}

func (r Region) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

// DefaultRegion is the square [-1.5, 1.5] x [-1.5, 1.5].
var DefaultRegion = Region{
	Xmin: coords.DefaultXMin,
	Xmax: coords.DefaultXMax,
	Ymin: coords.DefaultYMin,
	Ymax: coords.DefaultYMax,
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

var namedRegions = map[string]Region{
	"default":              DefaultRegion,
	"seahorse-valley":      SeahorseValley,
	"elephant-valley":      ElephantValley,
	"spiral-minibrot":      SpiralMinibrot,
	"triple-spiral":        TripleSpiral,
	"valley-of-the-dragon": ValleyOfTheDragon,
	"minibrot-mini-spiral": MinibrotInMiniSpiral,
}

// LookupRegion returns the landmark region registered under name.
func LookupRegion(name string) (Region, bool) {
	r, ok := namedRegions[strings.ToLower(name)]
	return r, ok
}

// RegionNames lists the names accepted by LookupRegion, sorted.
func RegionNames() []string {
	names := make([]string, 0, len(namedRegions))
	for n := range namedRegions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Mandelbrot returns the escape time of every point of grid. See escape.Evaluate.
func Mandelbrot(grid coords.Grid, maxIter int, divLimit float64) escape.Map {
	return escape.Evaluate(grid, maxIter, divLimit)
}
