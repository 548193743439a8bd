// Package controls holds the mutable phasor parameter state driven by an
// interactive shell.
//
// [Params] replaces loose slider-bound arrays with one object that owns the
// rotation ratios and radii, keeps every value inside its control range, and
// tells registered handlers about each change. It is not safe for concurrent
// mutation; the owning shell is expected to serialise updates.
package controls

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spiro/dsp/core"
)

// DefaultPhasors is the number of phasors a zero-configured Params holds.
const DefaultPhasors = 3

// Kind selects which parameter of a phasor a control adjusts.
type Kind int

const (
	KindRatio Kind = iota
	KindRadius
)

func (k Kind) String() string {
	switch k {
	case KindRatio:
		return "ratio"
	case KindRadius:
		return "radius"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Range is the inclusive bound and initial value of a control.
type Range struct {
	Min  float64
	Max  float64
	Init float64
}

var (
	// RatioRange bounds angular-speed ratios.
	RatioRange = Range{Min: 0.1, Max: 1.9, Init: 1.0}
	// RadiusRange bounds phasor radii.
	RadiusRange = Range{Min: 0.0, Max: 2.0, Init: 1.0}
)

var (
	errBadValue = errors.New("control value must be a finite number")
	errBadKind  = errors.New("unknown control kind")
)

// Control describes one bounded scalar control.
type Control struct {
	Label string
	Kind  Kind
	Index int
	Range Range
	Value float64
}

// Change is delivered to handlers after a value has been updated.
type Change struct {
	Kind  Kind
	Index int
	Value float64
}

// Handler observes parameter changes.
type Handler func(Change)

// Params owns the ratios and radii of K phasors.
type Params struct {
	ratios   []float64
	radii    []float64
	handlers []Handler
}

// New creates parameter state for k phasors with every control at its
// initial value. k <= 0 selects DefaultPhasors.
func New(k int) *Params {
	if k <= 0 {
		k = DefaultPhasors
	}
	p := &Params{
		ratios: make([]float64, k),
		radii:  make([]float64, k),
	}
	for i := 0; i < k; i++ {
		p.ratios[i] = RatioRange.Init
		p.radii[i] = RadiusRange.Init
	}
	return p
}

// Len returns the number of phasors.
func (p *Params) Len() int {
	return len(p.ratios)
}

// Ratios returns a copy of the current rotation ratios.
func (p *Params) Ratios() []float64 {
	return append([]float64(nil), p.ratios...)
}

// Radii returns a copy of the current radii.
func (p *Params) Radii() []float64 {
	return append([]float64(nil), p.radii...)
}

// View exposes the current ratios and radii without copying. The slices are
// only valid until the next mutation and must not be modified.
func (p *Params) View() (ratios, radii []float64) {
	return p.ratios, p.radii
}

// OnChange registers h. Handlers run synchronously in registration order.
func (p *Params) OnChange(h Handler) {
	if h != nil {
		p.handlers = append(p.handlers, h)
	}
}

// SetRatio sets the rotation ratio of phasor i, clamped to RatioRange.
func (p *Params) SetRatio(i int, v float64) (float64, error) {
	return p.Set(KindRatio, i, v)
}

// SetRadius sets the radius of phasor i, clamped to RadiusRange.
func (p *Params) SetRadius(i int, v float64) (float64, error) {
	return p.Set(KindRadius, i, v)
}

// Set updates one control and returns the stored, clamped value. Handlers
// are only notified when the stored value actually changes.
func (p *Params) Set(kind Kind, i int, v float64) (float64, error) {
	if i < 0 || i >= len(p.ratios) {
		return 0, fmt.Errorf("control index out of range [0,%d): %d", len(p.ratios), i)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %d: %w: %v", kind, i, errBadValue, v)
	}

	var dst []float64
	var r Range
	switch kind {
	case KindRatio:
		dst, r = p.ratios, RatioRange
	case KindRadius:
		dst, r = p.radii, RadiusRange
	default:
		return 0, fmt.Errorf("%w: %d", errBadKind, int(kind))
	}

	v = core.Clamp(v, r.Min, r.Max)
	if dst[i] == v {
		return v, nil
	}
	dst[i] = v

	c := Change{Kind: kind, Index: i, Value: v}
	for _, h := range p.handlers {
		h(c)
	}
	return v, nil
}

// Controls lists the ratio and radius control of every phasor, interleaved
// as ratio 1, radius 1, ratio 2, radius 2, and so on.
func (p *Params) Controls() []Control {
	out := make([]Control, 0, 2*len(p.ratios))
	for i := range p.ratios {
		out = append(out,
			Control{
				Label: fmt.Sprintf("Theta %d", i+1),
				Kind:  KindRatio,
				Index: i,
				Range: RatioRange,
				Value: p.ratios[i],
			},
			Control{
				Label: fmt.Sprintf("Radius %d", i+1),
				Kind:  KindRadius,
				Index: i,
				Range: RadiusRange,
				Value: p.radii[i],
			},
		)
	}
	return out
}
