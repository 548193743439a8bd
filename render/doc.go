// Package render draws phasor curves.
//
// A [Surface] accepts two equal-length sequences (real parts and imaginary
// parts) and redraws them as a connected line whenever asked. [Canvas] is a
// raster Surface built on golang.org/x/image/vector that can be encoded as
// PNG. [WriteSVG] and [WriteCSV] export the same data as vector graphics and
// plain text.
//
// All outputs keep an equal aspect ratio, so circles stay circles.
package render
