package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"github.com/marben/mandelplane/escape"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	XLabel = "Re(z)"
	YLabel = "Im(z)"
)

// plot margins in pixels
const (
	marginLeft   = 64
	marginBottom = 40
	marginTop    = 12
	marginRight  = 24
	tickLen      = 4
	ticks        = 5
)

var (
	background = color.RGBA{255, 255, 255, 255}
	foreground = color.RGBA{0, 0, 0, 255}

	labelFont tinyfont.Fonter = &proggy.TinySZ8pt7b
)

// Options control Plot.
type Options struct {
	// Path is where Save writes the plot. Empty means show it instead.
	Path string
	// Extent labels the axes with [xmin, xmax, ymin, ymax]. Nil labels them with
	// pixel indices.
	Extent *[4]float64
	// ColorMap names the palette, DefaultColorMap when empty.
	ColorMap string
}

// DefaultColorMap is used when Options.ColorMap is empty.
const DefaultColorMap = "gist_heat"

// Plot draws m inside a labelled frame. The horizontal axis is Re(z), the vertical
// axis Im(z); the top row of m is drawn at the top.
func Plot(m escape.Map, opts Options) (*image.RGBA, error) {
	name := opts.ColorMap
	if name == "" {
		name = DefaultColorMap
	}
	cm, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	data := Image(m, cm)
	w, h := m.Cols, m.Rows
	out := image.NewRGBA(image.Rect(0, 0, marginLeft+w+marginRight, marginTop+h+marginBottom))
	draw.Draw(out, out.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	area := image.Rect(marginLeft, marginTop, marginLeft+w, marginTop+h)
	draw.Draw(out, area, data, image.Point{}, draw.Src)
	frame(out, area.Inset(-1))

	xmin, xmax, ytop, ybottom := 0.0, float64(max(w-1, 0)), 0.0, float64(max(h-1, 0))
	if opts.Extent != nil {
		e := *opts.Extent
		xmin, xmax, ytop, ybottom = e[0], e[1], e[3], e[2]
	}

	cv := canvas{out}
	for i := 0; i < ticks; i++ {
		f := float64(i) / float64(ticks-1)

		x := area.Min.X + int(math.Round(f*float64(max(w-1, 0))))
		vline(out, x, area.Max.Y, area.Max.Y+tickLen)
		label := tickLabel(xmin + f*(xmax-xmin))
		lw := textWidth(label)
		tinyfont.WriteLine(cv, labelFont, int16(x-lw/2), int16(area.Max.Y+tickLen+10), label, foreground)

		y := area.Min.Y + int(math.Round(f*float64(max(h-1, 0))))
		hline(out, area.Min.X-tickLen-1, area.Min.X-1, y)
		label = tickLabel(ytop + f*(ybottom-ytop))
		lw = textWidth(label)
		tinyfont.WriteLine(cv, labelFont, int16(area.Min.X-tickLen-3-lw), int16(y+3), label, foreground)
	}

	xw := textWidth(XLabel)
	tinyfont.WriteLine(cv, labelFont, int16(area.Min.X+w/2-xw/2), int16(area.Max.Y+tickLen+24), XLabel, foreground)
	yw := textWidth(YLabel)
	tinyfont.WriteLineRotated(cv, labelFont, 12, int16(area.Min.Y+h/2+yw/2), YLabel, foreground, tinyfont.ROTATION_270)

	return out, nil
}

func tickLabel(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func textWidth(s string) int {
	_, outbox := tinyfont.LineWidth(labelFont, s)
	return int(outbox)
}

func frame(img *image.RGBA, r image.Rectangle) {
	hline(img, r.Min.X, r.Max.X, r.Min.Y)
	hline(img, r.Min.X, r.Max.X, r.Max.Y-1)
	vline(img, r.Min.X, r.Min.Y, r.Max.Y)
	vline(img, r.Max.X-1, r.Min.Y, r.Max.Y)
}

func hline(img *image.RGBA, x0, x1, y int) {
	for x := x0; x < x1; x++ {
		img.SetRGBA(x, y, foreground)
	}
}

func vline(img *image.RGBA, x, y0, y1 int) {
	for y := y0; y < y1; y++ {
		img.SetRGBA(x, y, foreground)
	}
}

// canvas lets tinyfont draw into an image.RGBA.
type canvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = canvas{}

func (c canvas) Size() (x, y int16) {
	b := c.img.Bounds()
	return int16(min(b.Dx(), math.MaxInt16)), int16(min(b.Dy(), math.MaxInt16))
}

func (c canvas) SetPixel(x, y int16, col color.RGBA) {
	c.img.SetRGBA(int(x), int(y), col)
}

func (c canvas) Display() error { return nil }
