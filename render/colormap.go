package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
)

// ErrUnknownColorMap is returned by Lookup for names it does not know.
var ErrUnknownColorMap = errors.New("unknown color map")

// ColorMap maps a normalised value in [0, 1] to a colour.
type ColorMap func(t float64) color.RGBA

var colorMaps = map[string]ColorMap{
	"gist_heat": GistHeat,
	"gray":      Gray,
	"hot":       Hot,
	"hsv":       HSV,
}

// Lookup returns the colour map registered under name.
func Lookup(name string) (ColorMap, error) {
	cm, ok := colorMaps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownColorMap, name, ColorMapNames())
	}
	return cm, nil
}

// ColorMapNames lists the registered colour maps, sorted.
func ColorMapNames() []string {
	names := make([]string, 0, len(colorMaps))
	for n := range colorMaps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GistHeat is black through red and orange to white.
func GistHeat(t float64) color.RGBA {
	t = clamp01(t)
	return rgb(1.5*t, 2*t-1, 4*t-3)
}

// Hot is black, red, yellow, white with equal thirds.
func Hot(t float64) color.RGBA {
	t = clamp01(t)
	const a, b = 0.365079, 0.746032
	return rgb(t/a, (t-a)/(b-a), (t-b)/(1-b))
}

// Gray is a linear black to white ramp.
func Gray(t float64) color.RGBA {
	t = clamp01(t)
	return rgb(t, t, t)
}

// HSV walks the hue circle at full saturation and value.
func HSV(t float64) color.RGBA {
	return hsv(clamp01(t), 1, 1)
}

// Simple HSV → RGB
func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return rgb(r, g, b)
}

func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{channel(r), channel(g), channel(b), 255}
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
