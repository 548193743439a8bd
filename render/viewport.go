package render

import (
	"fmt"

	"github.com/cwbudde/algo-spiro/measure/extent"
)

const (
	marginLeft   = 24
	marginRight  = 16
	marginTop    = 24
	marginBottom = 32

	labelReal = "Real component"
	labelImag = "Imaginary component"
)

// viewport maps data coordinates to pixels with a shared scale on both
// axes. Pixel y grows downwards, data y upwards.
type viewport struct {
	boxX0, boxY0, boxX1, boxY1 float64
	scale                      float64
	cx, cy                     float64
}

func newViewport(o Options, ext extent.Extent) viewport {
	v := viewport{
		boxX0: marginLeft,
		boxY0: marginTop,
		boxX1: float64(o.Width - marginRight),
		boxY1: float64(o.Height - marginBottom),
	}
	if !o.Labels {
		v.boxX0, v.boxY0 = marginRight, marginRight
		v.boxY1 = float64(o.Height - marginRight)
	}

	w := max(ext.Width(), 1e-12)
	h := max(ext.Height(), 1e-12)
	if ext.Width() == 0 && ext.Height() == 0 {
		w, h = 1, 1
	}
	w *= 1 + 2*o.Padding
	h *= 1 + 2*o.Padding

	v.scale = min((v.boxX1-v.boxX0)/w, (v.boxY1-v.boxY0)/h)
	c := ext.Center()
	v.cx, v.cy = real(c), imag(c)
	return v
}

func (v viewport) project(x, y float64) (px, py float64) {
	mx := (v.boxX0 + v.boxX1) / 2
	my := (v.boxY0 + v.boxY1) / 2
	return mx + (x-v.cx)*v.scale, my - (y-v.cy)*v.scale
}

func validateData(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("render: x and y must have same length: %d vs %d", len(x), len(y))
	}
	return nil
}
