package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates uniform values in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// PeriodicSweep returns n angles covering loops full turns, endpoint excluded.
func PeriodicSweep(n int, loops float64) []float64 {
	out := make([]float64, n)
	step := loops * 2 * math.Pi / float64(n)
	for i := range out {
		out[i] = step * float64(i)
	}
	return out
}

// Circle returns n points on a circle of the given radius, one full turn,
// endpoint excluded.
func Circle(radius float64, n int) []complex128 {
	out := make([]complex128, n)
	for i, th := range PeriodicSweep(n, 1) {
		out[i] = complex(radius*math.Cos(th), radius*math.Sin(th))
	}
	return out
}
