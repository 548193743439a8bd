// Package webdemo drives the interactive spirograph: it owns the parameter
// state, recomputes the curve whenever a control changes, and hands the
// result to a rendering surface.
package webdemo

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-spiro/dsp/controls"
	"github.com/cwbudde/algo-spiro/dsp/core"
	"github.com/cwbudde/algo-spiro/dsp/phasor"
	"github.com/cwbudde/algo-spiro/dsp/spectrum"
	"github.com/cwbudde/algo-spiro/dsp/sweep"
	"github.com/cwbudde/algo-spiro/measure/extent"
	"github.com/cwbudde/algo-spiro/render"
)

// Config sizes the engine.
type Config struct {
	Samples  int
	Loops    float64
	Phasors  int
	Periodic bool
}

// DefaultConfig returns 3 phasors over 10000 samples and 25 loops.
func DefaultConfig() Config {
	sc := core.DefaultSweepConfig()
	return Config{
		Samples: sc.Samples,
		Loops:   sc.Loops,
		Phasors: controls.DefaultPhasors,
	}
}

// Engine recomputes the composite curve on every parameter change.
type Engine struct {
	cfg      Config
	theta    []float64
	params   *controls.Params
	curve    []complex128
	re, im   []float64
	surface  render.Surface
	analyzer *spectrum.Analyzer
	redraws  int
	lastErr  error
}

// NewEngine builds the sweep, the parameter state and the initial curve.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Samples <= 0 {
		return nil, fmt.Errorf("samples must be > 0: %d", cfg.Samples)
	}
	if cfg.Loops <= 0 || math.IsNaN(cfg.Loops) || math.IsInf(cfg.Loops, 0) {
		return nil, fmt.Errorf("loops must be finite and > 0: %f", cfg.Loops)
	}

	opts := []core.SweepOption{core.WithSamples(cfg.Samples), core.WithLoops(cfg.Loops)}
	if cfg.Periodic {
		opts = append(opts, core.WithPeriodic())
	}
	theta, err := sweep.NewGenerator(opts...).Angles()
	if err != nil {
		return nil, fmt.Errorf("build sweep: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		theta:  theta,
		params: controls.New(cfg.Phasors),
	}
	e.cfg.Phasors = e.params.Len()

	if cfg.Periodic && core.IsPowerOfTwo(cfg.Samples) {
		a, err := spectrum.NewAnalyzer(cfg.Samples, cfg.Loops)
		if err != nil {
			return nil, fmt.Errorf("build analyzer: %w", err)
		}
		e.analyzer = a
	}

	if err := e.recompute(); err != nil {
		return nil, err
	}
	e.params.OnChange(e.onChange)
	return e, nil
}

// Config returns the resolved engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Params exposes the parameter state. Changes made through it trigger
// recomputation like SetControl does.
func (e *Engine) Params() *controls.Params {
	return e.params
}

// AttachSurface connects s, pushes the current curve and draws it. Every
// later change redraws s.
func (e *Engine) AttachSurface(s render.Surface) error {
	e.surface = s
	return e.push()
}

// SetControl updates one control and returns the clamped value.
func (e *Engine) SetControl(kind controls.Kind, i int, v float64) (float64, error) {
	e.lastErr = nil
	got, err := e.params.Set(kind, i, v)
	if err != nil {
		return 0, err
	}
	return got, e.lastErr
}

// SetRatio updates the rotation ratio of phasor i.
func (e *Engine) SetRatio(i int, v float64) (float64, error) {
	return e.SetControl(controls.KindRatio, i, v)
}

// SetRadius updates the radius of phasor i.
func (e *Engine) SetRadius(i int, v float64) (float64, error) {
	return e.SetControl(controls.KindRadius, i, v)
}

// Curve returns the real and imaginary parts of the current curve. The
// slices are reused by the next recomputation.
func (e *Engine) Curve() (re, im []float64) {
	return e.re, e.im
}

// Complex returns the current curve. The slice is reused by the next
// recomputation.
func (e *Engine) Complex() []complex128 {
	return e.curve
}

// Angles returns the sweep the curve is evaluated over.
func (e *Engine) Angles() []float64 {
	return e.theta
}

// Controls lists every control with its current value.
func (e *Engine) Controls() []controls.Control {
	return e.params.Controls()
}

// Extent measures the current curve.
func (e *Engine) Extent() extent.Extent {
	return extent.MeasureParts(e.re, e.im)
}

// Redraws returns how many times the curve was recomputed after a change.
func (e *Engine) Redraws() int {
	return e.redraws
}

// Components reports the phasors present in the current curve. Periodic
// power-of-two sweeps where every active ratio falls on an FFT bin use a full
// decomposition. Otherwise each distinct active ratio is probed and reported
// with the summed radius of the phasors sharing it; the probe only
// contributes the phase. Phasors with zero radius are never reported.
func (e *Engine) Components(minRadius float64) ([]spectrum.Component, error) {
	groups := e.activeRatios()
	if e.analyzer != nil && e.binAligned(groups) {
		return e.analyzer.Decompose(e.curve, minRadius)
	}

	out := make([]spectrum.Component, 0, len(groups))
	for _, g := range groups {
		if g.radius < minRadius {
			continue
		}
		amp, err := spectrum.Probe(e.curve, e.theta, g.ratio)
		if err != nil {
			return nil, err
		}
		out = append(out, spectrum.Component{
			Bin:    -1,
			Ratio:  g.ratio,
			Radius: g.radius,
			Phase:  cmplx.Phase(amp),
		})
	}
	slices.SortStableFunc(out, func(a, b spectrum.Component) int {
		switch {
		case a.Radius > b.Radius:
			return -1
		case a.Radius < b.Radius:
			return 1
		default:
			return 0
		}
	})
	return out, nil
}

type ratioGroup struct {
	ratio  float64
	radius float64
}

// activeRatios groups phasors by ratio, sums their radii and drops groups
// with no radius. Groups are ordered by ratio.
func (e *Engine) activeRatios() []ratioGroup {
	ratios, radii := e.params.View()
	var groups []ratioGroup
	for k, q := range ratios {
		i, found := slices.BinarySearchFunc(groups, q, func(g ratioGroup, q float64) int {
			switch {
			case g.ratio < q:
				return -1
			case g.ratio > q:
				return 1
			default:
				return 0
			}
		})
		if found {
			groups[i].radius += radii[k]
			continue
		}
		groups = slices.Insert(groups, i, ratioGroup{ratio: q, radius: radii[k]})
	}
	return slices.DeleteFunc(groups, func(g ratioGroup) bool { return g.radius <= 0 })
}

// binAligned reports whether every group rotates an integer number of
// times over the sweep.
func (e *Engine) binAligned(groups []ratioGroup) bool {
	const eps = 1e-9
	for _, g := range groups {
		cycles := g.ratio * e.cfg.Loops
		if math.Abs(cycles-math.Round(cycles)) > eps {
			return false
		}
	}
	return true
}

func (e *Engine) onChange(controls.Change) {
	if err := e.recompute(); err != nil {
		e.lastErr = err
		return
	}
	e.redraws++
	if err := e.push(); err != nil {
		e.lastErr = err
	}
}

func (e *Engine) recompute() error {
	ratios, radii := e.params.View()
	curve, err := phasor.SumInto(e.curve, e.theta, ratios, radii)
	if err != nil {
		return fmt.Errorf("recompute curve: %w", err)
	}
	e.curve = curve
	e.re, e.im = phasor.SplitInto(e.re, e.im, e.curve)
	return nil
}

func (e *Engine) push() error {
	if e.surface == nil {
		return nil
	}
	if err := e.surface.SetData(e.re, e.im); err != nil {
		return fmt.Errorf("update surface: %w", err)
	}
	if err := e.surface.Draw(); err != nil {
		return fmt.Errorf("draw surface: %w", err)
	}
	return nil
}
