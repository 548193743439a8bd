// Package sweep builds the angle sequences phasor curves are evaluated over.
package sweep

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spiro/dsp/core"
)

// Generator creates angle sweeps from a shared configuration.
type Generator struct {
	cfg core.SweepConfig
}

// NewGenerator creates a configured sweep generator.
func NewGenerator(opts ...core.SweepOption) *Generator {
	return &Generator{cfg: core.ApplySweepOptions(opts...)}
}

// Config returns the generator sweep configuration.
func (g *Generator) Config() core.SweepConfig {
	return g.cfg
}

// Angles returns Samples monotonically increasing angles from 0 to
// Loops·2π. The final angle is omitted for periodic sweeps.
func (g *Generator) Angles() ([]float64, error) {
	if g.cfg.Loops <= 0 || math.IsInf(g.cfg.Loops, 0) || math.IsNaN(g.cfg.Loops) {
		return nil, fmt.Errorf("sweep loops must be > 0: %f", g.cfg.Loops)
	}
	return Linspace(0, g.cfg.Loops*2*math.Pi, g.cfg.Samples, !g.cfg.Periodic)
}

// Linspace returns n evenly spaced values from start towards stop. When
// endpoint is true the last value is exactly stop, otherwise the interval is
// half-open.
func Linspace(start, stop float64, n int, endpoint bool) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("linspace samples must be > 0: %d", n)
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out, nil
	}

	div := float64(n)
	if endpoint {
		div = float64(n - 1)
	}
	step := (stop - start) / div
	for i := range out {
		out[i] = start + step*float64(i)
	}
	if endpoint {
		out[n-1] = stop
	}
	return out, nil
}
