// Package spectrum recovers the phasor content of a sampled curve.
//
// A curve built from phasors over a periodic sweep of L loops puts a phasor
// with ratio q into FFT bin q·L. [Analyzer] runs the transform through an
// algo-fft plan and turns the significant bins back into [Component] values.
// [Probe] correlates against a single ratio and also works when the ratio
// does not fall on a bin.
package spectrum
