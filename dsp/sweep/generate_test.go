package sweep

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spiro/dsp/core"
	"github.com/cwbudde/algo-spiro/internal/testutil"
)

func TestLinspaceEndpoint(t *testing.T) {
	out, err := Linspace(0, 1, 5, true)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0.25, 0.5, 0.75, 1}, 1e-15)
}

func TestLinspaceHalfOpen(t *testing.T) {
	out, err := Linspace(0, 1, 4, false)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0, 0.25, 0.5, 0.75}, 1e-15)
}

func TestLinspaceSingle(t *testing.T) {
	out, err := Linspace(3, 9, 1, true)
	if err != nil {
		t.Fatalf("Linspace() error = %v", err)
	}
	if len(out) != 1 || out[0] != 3 {
		t.Fatalf("out = %v, want [3]", out)
	}
}

func TestLinspaceInvalid(t *testing.T) {
	if _, err := Linspace(0, 1, 0, true); err == nil {
		t.Fatal("expected error for zero samples")
	}
}

func TestAnglesDefault(t *testing.T) {
	g := NewGenerator()
	theta, err := g.Angles()
	if err != nil {
		t.Fatalf("Angles() error = %v", err)
	}
	if len(theta) != 10000 {
		t.Fatalf("len = %d, want 10000", len(theta))
	}
	if theta[0] != 0 {
		t.Fatalf("theta[0] = %v, want 0", theta[0])
	}
	if theta[len(theta)-1] != 25*2*math.Pi {
		t.Fatalf("last = %v, want %v", theta[len(theta)-1], 25*2*math.Pi)
	}
	for i := 1; i < len(theta); i++ {
		if theta[i] <= theta[i-1] {
			t.Fatalf("sweep not increasing at %d", i)
		}
	}
}

func TestAnglesPeriodic(t *testing.T) {
	g := NewGenerator(core.WithSamples(8), core.WithLoops(2), core.WithPeriodic())
	theta, err := g.Angles()
	if err != nil {
		t.Fatalf("Angles() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, theta, testutil.PeriodicSweep(8, 2), 1e-12)
}

func TestConfig(t *testing.T) {
	g := NewGenerator(core.WithSamples(64))
	if g.Config().Samples != 64 {
		t.Fatalf("samples = %d, want 64", g.Config().Samples)
	}
}
