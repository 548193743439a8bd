package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-spiro/dsp/core"
	"github.com/cwbudde/algo-spiro/dsp/phasor"
	"github.com/cwbudde/algo-spiro/dsp/spectrum"
	"github.com/cwbudde/algo-spiro/dsp/sweep"
)

func ExampleDecompose() {
	theta, err := sweep.NewGenerator(
		core.WithSamples(512),
		core.WithLoops(8),
		core.WithPeriodic(),
	).Angles()
	if err != nil {
		panic(err)
	}

	curve, err := phasor.Sum(theta, []float64{1, 1.5}, []float64{1, 0.4})
	if err != nil {
		panic(err)
	}

	comps, err := spectrum.Decompose(curve, 8, 0)
	if err != nil {
		panic(err)
	}
	for _, c := range comps {
		fmt.Printf("bin=%d ratio=%.2f radius=%.2f\n", c.Bin, c.Ratio, c.Radius)
	}

	// Output:
	// bin=8 ratio=1.00 radius=1.00
	// bin=12 ratio=1.50 radius=0.40
}
