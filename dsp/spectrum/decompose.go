package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spiro/dsp/core"
)

// DefaultMinRadius is the radius below which Decompose ignores bins.
const DefaultMinRadius = 1e-6

var errLengthMismatch = errors.New("curve and angle sweep must have same length")

// Component is one rotating phasor found in a curve.
type Component struct {
	Bin    int
	Ratio  float64
	Radius float64
	Phase  float64
}

// Analyzer decomposes curves of a fixed length and loop count.
type Analyzer struct {
	samples int
	loops   float64
	plan    *algofft.Plan[complex128]
	bins    []complex128
	re, im  []float64
	mag     []float64
}

// NewAnalyzer creates an analyzer for curves of samples points swept over
// loops full turns with the endpoint excluded. samples must be a power of two.
func NewAnalyzer(samples int, loops float64) (*Analyzer, error) {
	if !core.IsPowerOfTwo(samples) {
		return nil, fmt.Errorf("spectrum: samples must be a power of two: %d", samples)
	}
	if loops <= 0 || math.IsNaN(loops) || math.IsInf(loops, 0) {
		return nil, fmt.Errorf("spectrum: loops must be > 0: %v", loops)
	}

	plan, err := algofft.NewPlan64(samples)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	return &Analyzer{
		samples: samples,
		loops:   loops,
		plan:    plan,
		bins:    make([]complex128, samples),
		re:      make([]float64, samples),
		im:      make([]float64, samples),
		mag:     make([]float64, samples),
	}, nil
}

// Samples returns the curve length the analyzer accepts.
func (a *Analyzer) Samples() int {
	return a.samples
}

// Spectrum returns the FFT of curve scaled by 1/N, so a lone phasor of
// radius r shows up as a bin of modulus r.
func (a *Analyzer) Spectrum(curve []complex128) ([]complex128, error) {
	if err := a.transform(curve); err != nil {
		return nil, err
	}
	return append([]complex128(nil), a.bins...), nil
}

// Decompose returns the phasors in curve with radius of at least minRadius,
// largest first. Phasors sharing a ratio merge into one component. A
// minRadius <= 0 selects DefaultMinRadius.
func (a *Analyzer) Decompose(curve []complex128, minRadius float64) ([]Component, error) {
	if minRadius <= 0 {
		minRadius = DefaultMinRadius
	}
	if err := a.transform(curve); err != nil {
		return nil, err
	}

	for i, b := range a.bins {
		a.re[i] = real(b)
		a.im[i] = imag(b)
	}
	vecmath.Magnitude(a.mag, a.re, a.im)

	var out []Component
	for k, m := range a.mag {
		if m < minRadius {
			continue
		}
		out = append(out, Component{
			Bin:    k,
			Ratio:  a.binRatio(k),
			Radius: m,
			Phase:  cmplx.Phase(a.bins[k]),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Radius > out[j].Radius
	})
	return out, nil
}

// binRatio maps bin k to a rotation ratio. Bins in the upper half are
// clockwise rotations.
func (a *Analyzer) binRatio(k int) float64 {
	if k >= a.samples/2 {
		k -= a.samples
	}
	return float64(k) / a.loops
}

func (a *Analyzer) transform(curve []complex128) error {
	if len(curve) != a.samples {
		return fmt.Errorf("spectrum: curve length %d, analyzer expects %d", len(curve), a.samples)
	}
	if err := a.plan.Forward(a.bins, curve); err != nil {
		return fmt.Errorf("spectrum: forward FFT: %w", err)
	}
	scale := complex(1/float64(a.samples), 0)
	for i := range a.bins {
		a.bins[i] *= scale
	}
	return nil
}

// Decompose is a one-shot Analyzer.Decompose.
func Decompose(curve []complex128, loops, minRadius float64) ([]Component, error) {
	a, err := NewAnalyzer(len(curve), loops)
	if err != nil {
		return nil, err
	}
	return a.Decompose(curve, minRadius)
}

// Probe estimates the complex amplitude of the phasor rotating at ratio by
// averaging curve[n]·e^(-i·ratio·theta[n]). For a periodic sweep and a
// bin-aligned ratio the estimate is exact; otherwise neighbouring phasors
// leak into it.
func Probe(curve []complex128, theta []float64, ratio float64) (complex128, error) {
	if len(curve) != len(theta) {
		return 0, fmt.Errorf("spectrum: %w: %d vs %d", errLengthMismatch, len(curve), len(theta))
	}
	if len(curve) == 0 {
		return 0, nil
	}

	var acc complex128
	for n, c := range curve {
		s, co := math.Sincos(-ratio * theta[n])
		acc += c * complex(co, s)
	}
	return acc / complex(float64(len(curve)), 0), nil
}
