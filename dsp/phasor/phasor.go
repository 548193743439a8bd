package phasor

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spiro/dsp/core"
)

// ErrInvalidInput is returned when the ratio and radius sequences differ in length.
var ErrInvalidInput = errors.New("phasor: invalid input")

// Phasor returns r·e^(iθ). A negative r flips the phase by π.
func Phasor(theta, r float64) complex128 {
	s, c := math.Sincos(theta)
	return complex(r*c, r*s)
}

// Eval returns Phasor(theta[n], r) for every angle.
func Eval(theta []float64, r float64) []complex128 {
	return EvalInto(nil, theta, r)
}

// EvalInto is Eval writing into dst, which is grown as needed and returned.
func EvalInto(dst []complex128, theta []float64, r float64) []complex128 {
	dst = core.EnsureComplexLen(dst, len(theta))
	for i, th := range theta {
		dst[i] = Phasor(th, r)
	}
	return dst
}

// Sum adds K phasors over the sweep theta. Element n of the result is the sum
// over k of Phasor(theta[n]*ratios[k], radii[k]). With no phasors the result
// is all zeros. The result always has len(theta) elements.
func Sum(theta, ratios, radii []float64) ([]complex128, error) {
	return SumInto(nil, theta, ratios, radii)
}

// SumInto is Sum writing into dst, which is grown as needed and returned.
// On error dst is left untouched.
func SumInto(dst []complex128, theta, ratios, radii []float64) ([]complex128, error) {
	if err := validate(ratios, radii); err != nil {
		return dst, err
	}

	dst = core.EnsureComplexLen(dst, len(theta))
	core.ZeroComplex(dst)

	for k, ratio := range ratios {
		r := radii[k]
		for n, th := range theta {
			dst[n] += Phasor(th*ratio, r)
		}
	}

	return dst, nil
}

func validate(ratios, radii []float64) error {
	if len(ratios) != len(radii) {
		return fmt.Errorf("%w: %d ratios but %d radii", ErrInvalidInput, len(ratios), len(radii))
	}
	return nil
}

// Split projects a curve onto its real and imaginary parts.
func Split(curve []complex128) (re, im []float64) {
	return SplitInto(nil, nil, curve)
}

// SplitInto is Split writing into re and im, which are grown as needed.
func SplitInto(re, im []float64, curve []complex128) ([]float64, []float64) {
	re = core.EnsureLen(re, len(curve))
	im = core.EnsureLen(im, len(curve))
	for i, c := range curve {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}
