package render

import "image/color"

// Options controls output size and styling.
type Options struct {
	Width     int
	Height    int
	LineWidth float64
	// Padding is the fraction of the data span left free around the curve.
	Padding    float64
	Background color.Color
	Line       color.Color
	Axis       color.Color
	Labels     bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns an 800x800 white plot with a 2px blue line and axis labels.
func DefaultOptions() Options {
	return Options{
		Width:      800,
		Height:     800,
		LineWidth:  2,
		Padding:    0.05,
		Background: color.White,
		Line:       color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		Axis:       color.Black,
		Labels:     true,
	}
}

// WithSize sets the output size in pixels.
func WithSize(width, height int) Option {
	return func(o *Options) {
		if width > 0 && height > 0 {
			o.Width = width
			o.Height = height
		}
	}
}

// WithLineWidth sets the curve stroke width in pixels.
func WithLineWidth(lw float64) Option {
	return func(o *Options) {
		if lw > 0 {
			o.LineWidth = lw
		}
	}
}

// WithLineColor sets the curve colour.
func WithLineColor(c color.Color) Option {
	return func(o *Options) {
		if c != nil {
			o.Line = c
		}
	}
}

// WithBackground sets the background colour.
func WithBackground(c color.Color) Option {
	return func(o *Options) {
		if c != nil {
			o.Background = c
		}
	}
}

// WithoutLabels suppresses the axis labels.
func WithoutLabels() Option {
	return func(o *Options) {
		o.Labels = false
	}
}

// ApplyOptions applies zero or more options to the defaults.
func ApplyOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
