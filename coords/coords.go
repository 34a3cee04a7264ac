// Package coords builds grids of sample points in the complex plane.
package coords

import "image"

// Default plane bounds and resolution.
const (
	DefaultXMin = -1.5
	DefaultXMax = 1.5
	DefaultXRes = 1 << 10
	DefaultYMin = -1.5
	DefaultYMax = 1.5
	DefaultYRes = 1 << 10
)

// Grid is a row-major 2-D array of complex sample points.
// Rows run along the imaginary axis, columns along the real axis.
type Grid struct {
	Rows, Cols int
	Points     []complex128
}

// FromPoints wraps pts as a rows × cols grid. It panics if the sizes disagree.
func FromPoints(rows, cols int, pts []complex128) Grid {
	if rows < 0 || cols < 0 || rows*cols != len(pts) {
		panic("coords: points do not match grid shape")
	}
	return Grid{Rows: rows, Cols: cols, Points: pts}
}

// At returns the point at row r, column c.
func (g Grid) At(r, c int) complex128 {
	return g.Points[r*g.Cols+c]
}

// Shape returns (rows, cols).
func (g Grid) Shape() (rows, cols int) {
	return g.Rows, g.Cols
}

// Bounds returns the grid as an image rectangle: X spans columns, Y spans rows.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Cols, g.Rows)
}

// Sub copies the points inside r (in grid coordinates) into a new grid.
// r is clipped to the grid bounds.
func (g Grid) Sub(r image.Rectangle) Grid {
	r = r.Intersect(g.Bounds())
	sub := Grid{Rows: r.Dy(), Cols: r.Dx(), Points: make([]complex128, 0, r.Dx()*r.Dy())}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := g.Points[y*g.Cols : (y+1)*g.Cols]
		sub.Points = append(sub.Points, row[r.Min.X:r.Max.X]...)
	}
	return sub
}

// Linspace returns n evenly spaced values over [start, stop], both ends included.
// n == 1 yields [start]; n <= 0 yields an empty slice.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// keep the last sample exact
	out[n-1] = stop
	return out
}

// Plane returns the cross of Linspace(xmin, xmax, xres) and Linspace(ymin, ymax, yres)
// combined as x + iy. The grid has yres rows and xres columns; row 0 holds ymin.
func Plane(xmin, xmax float64, xres int, ymin, ymax float64, yres int) Grid {
	xs := Linspace(xmin, xmax, xres)
	ys := Linspace(ymin, ymax, yres)

	g := Grid{Rows: len(ys), Cols: len(xs), Points: make([]complex128, len(xs)*len(ys))}
	for r, y := range ys {
		row := g.Points[r*g.Cols : (r+1)*g.Cols]
		for c, x := range xs {
			row[c] = complex(x, y)
		}
	}
	return g
}

// DefaultPlane is Plane with the default bounds and resolution.
func DefaultPlane() Grid {
	return Plane(DefaultXMin, DefaultXMax, DefaultXRes, DefaultYMin, DefaultYMax, DefaultYRes)
}
