// Package phasor evaluates rotating complex phasors and sums them into a
// composite curve.
//
// A phasor with radius r at angle θ is r·e^(iθ). [Sum] evaluates K phasors
// over a shared angle sweep, each rotating at its own multiple of the sweep
// angle, and adds them sample by sample. The result traces the familiar
// spirograph figures.
//
// All functions are pure: they never mutate their inputs and keep no state,
// so they are safe to call concurrently as long as callers do not share
// destination buffers.
package phasor
