package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/meko-christian/algo-approx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/cwbudde/algo-spiro/dsp/core"
	"github.com/cwbudde/algo-spiro/measure/extent"
)

// Surface displays a connected curve and supports replacing its data in place.
type Surface interface {
	SetData(x, y []float64) error
	Draw() error
}

// Canvas is an in-memory raster Surface.
type Canvas struct {
	opts  Options
	x, y  []float64
	img   *image.RGBA
	ras   *vector.Rasterizer
	view  viewport
	draws int
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a blank canvas.
func NewCanvas(opts ...Option) *Canvas {
	o := ApplyOptions(opts...)
	return &Canvas{
		opts: o,
		img:  image.NewRGBA(image.Rect(0, 0, o.Width, o.Height)),
		ras:  vector.NewRasterizer(o.Width, o.Height),
	}
}

// SetData replaces the curve. The slices are copied.
func (c *Canvas) SetData(x, y []float64) error {
	if err := validateData(x, y); err != nil {
		return err
	}
	c.x = core.EnsureLen(c.x, len(x))
	c.y = core.EnsureLen(c.y, len(y))
	copy(c.x, x)
	copy(c.y, y)
	c.view = newViewport(c.opts, extent.MeasureParts(c.x, c.y))
	return nil
}

// Draw repaints the whole canvas from the current data.
func (c *Canvas) Draw() error {
	o := c.opts
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	c.ras.Reset(o.Width, o.Height)
	c.frame()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(o.Axis), image.Point{})

	c.ras.Reset(o.Width, o.Height)
	segments := 0
	for i := 1; i < len(c.x); i++ {
		x0, y0 := c.view.project(c.x[i-1], c.y[i-1])
		x1, y1 := c.view.project(c.x[i], c.y[i])
		if c.segment(x0, y0, x1, y1, o.LineWidth) {
			segments++
		}
	}
	if segments > 0 {
		c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(o.Line), image.Point{})
	}

	if o.Labels {
		c.labels()
	}

	c.draws++
	Logger().Debug("render: canvas drawn",
		"points", len(c.x),
		"segments", segments,
		"scale", c.view.scale,
		"draws", c.draws)
	return nil
}

// Draws returns how often Draw has run.
func (c *Canvas) Draws() int {
	return c.draws
}

// Image returns the backing image. It is overwritten by the next Draw.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Project maps a data point to pixel coordinates using the current data's scale.
func (c *Canvas) Project(x, y float64) (px, py float64) {
	return c.view.project(x, y)
}

// EncodePNG writes the current image as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// segment adds a stroke of width lw from (x0,y0) to (x1,y1), extended by half
// the width at both ends so consecutive segments overlap at joints.
func (c *Canvas) segment(x0, y0, x1, y1, lw float64) bool {
	dx, dy := x1-x0, y1-y0
	d2 := dx*dx + dy*dy
	if d2 == 0 {
		return false
	}
	l := approx.FastSqrt(d2)
	if l == 0 {
		return false
	}

	hw := lw / 2
	ux, uy := dx/l*hw, dy/l*hw // along the segment
	nx, ny := -uy, ux          // left normal

	c.quad(
		x0-ux+nx, y0-uy+ny,
		x1+ux+nx, y1+uy+ny,
		x1+ux-nx, y1+uy-ny,
		x0-ux-nx, y0-uy-ny,
	)
	return true
}

func (c *Canvas) quad(ax, ay, bx, by, cx, cy, dx, dy float64) {
	c.ras.MoveTo(float32(ax), float32(ay))
	c.ras.LineTo(float32(bx), float32(by))
	c.ras.LineTo(float32(cx), float32(cy))
	c.ras.LineTo(float32(dx), float32(dy))
	c.ras.ClosePath()
}

func (c *Canvas) frame() {
	v := c.view
	if len(c.x) == 0 {
		v = newViewport(c.opts, extent.Extent{})
	}
	const t = 1.0
	c.quad(v.boxX0, v.boxY0, v.boxX1, v.boxY0, v.boxX1, v.boxY0+t, v.boxX0, v.boxY0+t)
	c.quad(v.boxX0, v.boxY1-t, v.boxX1, v.boxY1-t, v.boxX1, v.boxY1, v.boxX0, v.boxY1)
	c.quad(v.boxX0, v.boxY0, v.boxX0+t, v.boxY0, v.boxX0+t, v.boxY1, v.boxX0, v.boxY1)
	c.quad(v.boxX1-t, v.boxY0, v.boxX1, v.boxY0, v.boxX1, v.boxY1, v.boxX1-t, v.boxY1)
}

func (c *Canvas) labels() {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.opts.Axis),
		Face: face,
	}

	w := d.MeasureString(labelReal).Ceil()
	d.Dot = fixed.P((c.opts.Width-w)/2, c.opts.Height-marginBottom/2+face.Ascent/2)
	d.DrawString(labelReal)

	d.Dot = fixed.P(marginLeft, marginTop-face.Descent-4)
	d.DrawString(labelImag)
}

func colorHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	const hex = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint32{r >> 8, g >> 8, b >> 8} {
		buf[1+2*i] = hex[v>>4]
		buf[2+2*i] = hex[v&0xf]
	}
	return string(buf)
}
