// Package render turns escape-time maps into images: colour mapping, framed plots
// with axis labels, and image files.
package render

import (
	"image"

	"github.com/marben/mandelplane/escape"
)

// Image colours m with cm after scaling its values linearly between the smallest
// and largest count. Row 0 of m becomes the top row of the image.
func Image(m escape.Map, cm ColorMap) *image.RGBA {
	lo, hi := bounds(m.Counts)
	return imageRange(m, image.Point{}, lo, hi, cm)
}

// Tile colours a tile of a larger map. The returned image uses global coordinates,
// starting at origin, and values are scaled against [0, vmax] so that independently
// rendered tiles agree with each other.
func Tile(m escape.Map, origin image.Point, vmax int, cm ColorMap) *image.RGBA {
	return imageRange(m, origin, 0, vmax, cm)
}

func imageRange(m escape.Map, origin image.Point, lo, hi int, cm ColorMap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Cols, m.Rows).Add(origin))
	span := float64(hi - lo)
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			t := 0.0
			if span > 0 {
				t = float64(m.At(r, c)-lo) / span
			}
			img.SetRGBA(origin.X+c, origin.Y+r, cm(t))
		}
	}
	return img
}

func bounds(vs []int) (lo, hi int) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
