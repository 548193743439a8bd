// Package extent measures the geometry of a sampled complex curve.
package extent

import (
	"github.com/cwbudde/algo-vecmath"
)

// Extent summarises where a curve lives in the complex plane.
type Extent struct {
	Samples    int
	MinReal    float64
	MaxReal    float64
	MinImag    float64
	MaxImag    float64
	MaxRadius  float64
	MeanRadius float64
	// PathLength is the length of the polyline through all samples.
	PathLength float64
}

// Width returns the real-axis span.
func (e Extent) Width() float64 {
	return e.MaxReal - e.MinReal
}

// Height returns the imaginary-axis span.
func (e Extent) Height() float64 {
	return e.MaxImag - e.MinImag
}

// Center returns the midpoint of the bounding box.
func (e Extent) Center() complex128 {
	return complex((e.MinReal+e.MaxReal)/2, (e.MinImag+e.MaxImag)/2)
}

// Measure computes the Extent of curve. An empty curve yields the zero value.
func Measure(curve []complex128) Extent {
	n := len(curve)
	if n == 0 {
		return Extent{}
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range curve {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return MeasureParts(re, im)
}

// MeasureParts is Measure for a curve already split into real and imaginary
// parts. Both slices must have the same length.
func MeasureParts(re, im []float64) Extent {
	n := len(re)
	if n == 0 || len(im) != n {
		return Extent{}
	}

	e := Extent{
		Samples: n,
		MinReal: re[0],
		MaxReal: re[0],
		MinImag: im[0],
		MaxImag: im[0],
	}
	for i := 1; i < n; i++ {
		e.MinReal = min(e.MinReal, re[i])
		e.MaxReal = max(e.MaxReal, re[i])
		e.MinImag = min(e.MinImag, im[i])
		e.MaxImag = max(e.MaxImag, im[i])
	}

	radius := make([]float64, n)
	vecmath.Magnitude(radius, re, im)
	sum := 0.0
	for _, r := range radius {
		sum += r
		e.MaxRadius = max(e.MaxRadius, r)
	}
	e.MeanRadius = sum / float64(n)

	if n > 1 {
		dre := make([]float64, n-1)
		dim := make([]float64, n-1)
		for i := 1; i < n; i++ {
			dre[i-1] = re[i] - re[i-1]
			dim[i-1] = im[i] - im[i-1]
		}
		seg := radius[:n-1]
		vecmath.Magnitude(seg, dre, dim)
		for _, s := range seg {
			e.PathLength += s
		}
	}

	return e
}
