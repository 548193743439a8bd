// Command spiroplot sums rotating phasors into a spirograph curve and writes
// it as PNG, SVG or CSV.
//
// Usage:
//
//	spiroplot [flags]
//
// Ratios and radii are applied through the same bounded controls the
// interactive demo uses, so values outside ratio [0.1, 1.9] and radius
// [0, 2] are clamped.
//
// Examples:
//
//	spiroplot -o spiro.png
//	spiroplot -ratios 1,0.5,1.5 -radii 1,0.6,0.3 -o spiro.svg
//	spiroplot -samples 4096 -loops 16 -periodic -ratios 1,1.25 -analyze -o -
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spiro/internal/webdemo"
	"github.com/cwbudde/algo-spiro/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	samples  int
	loops    float64
	phasors  int
	ratios   []float64
	radii    []float64
	periodic bool
	output   string
	width    int
	height   int
	lw       float64
	analyze  bool
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	def := webdemo.DefaultConfig()
	var o options
	var ratios, radii string

	fs := flag.NewFlagSet("spiroplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.samples, "samples", def.Samples, "number of points in the angle sweep")
	fs.Float64Var(&o.loops, "loops", def.Loops, "number of full turns covered by the sweep")
	fs.IntVar(&o.phasors, "phasors", def.Phasors, "number of phasors (overridden by -ratios/-radii length)")
	fs.StringVar(&ratios, "ratios", "", "comma-separated rotation ratios, e.g. 1,0.5,1.5")
	fs.StringVar(&radii, "radii", "", "comma-separated radii, e.g. 1,0.6,0.3")
	fs.BoolVar(&o.periodic, "periodic", false, "exclude the sweep endpoint (enables FFT analysis for power-of-two samples)")
	fs.StringVar(&o.output, "o", "spiro.png", "output file (.png, .svg, .csv) or - for CSV on stdout")
	fs.IntVar(&o.width, "width", 800, "image width in pixels")
	fs.IntVar(&o.height, "height", 800, "image height in pixels")
	fs.Float64Var(&o.lw, "lw", 2, "line width in pixels")
	fs.BoolVar(&o.analyze, "analyze", false, "print recovered phasor components and curve extent")
	fs.BoolVar(&o.verbose, "v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: spiroplot [flags]\n\n")
		fmt.Fprintf(stderr, "Sums rotating phasors into a spirograph curve and writes it to a file.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  spiroplot -o spiro.png\n")
		fmt.Fprintf(stderr, "  spiroplot -ratios 1,0.5,1.5 -radii 1,0.6,0.3 -o spiro.svg\n")
		fmt.Fprintf(stderr, "  spiroplot -samples 4096 -loops 16 -periodic -analyze -o -\n")
	}
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	var err error
	if o.ratios, err = parseList(ratios); err != nil {
		return o, fmt.Errorf("-ratios: %w", err)
	}
	if o.radii, err = parseList(radii); err != nil {
		return o, fmt.Errorf("-radii: %w", err)
	}
	if o.ratios != nil && o.radii != nil && len(o.ratios) != len(o.radii) {
		return o, fmt.Errorf("-ratios has %d values but -radii has %d", len(o.ratios), len(o.radii))
	}
	if n := max(len(o.ratios), len(o.radii)); n > 0 {
		o.phasors = n
	}
	return o, nil
}

func parseList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, o.verbose)
	render.SetLogger(logger)

	e, err := webdemo.NewEngine(webdemo.Config{
		Samples:  o.samples,
		Loops:    o.loops,
		Phasors:  o.phasors,
		Periodic: o.periodic,
	})
	if err != nil {
		return err
	}

	for i, v := range o.ratios {
		got, err := e.SetRatio(i, v)
		if err != nil {
			return err
		}
		if got != v {
			logger.Warn("ratio clamped", "phasor", i+1, "requested", v, "used", got)
		}
	}
	for i, v := range o.radii {
		got, err := e.SetRadius(i, v)
		if err != nil {
			return err
		}
		if got != v {
			logger.Warn("radius clamped", "phasor", i+1, "requested", v, "used", got)
		}
	}
	logger.Debug("curve computed",
		"samples", o.samples,
		"loops", o.loops,
		"phasors", e.Config().Phasors,
		"recomputes", e.Redraws())

	if err := writeOutput(e, o, stdout); err != nil {
		return err
	}

	if o.analyze {
		w := stdout
		if o.output == "-" {
			w = stderr
		}
		return printAnalysis(w, e)
	}
	return nil
}

func writeOutput(e *webdemo.Engine, o options, stdout io.Writer) error {
	re, im := e.Curve()
	if o.output == "-" {
		return render.WriteCSV(stdout, re, im)
	}

	ext := strings.ToLower(filepath.Ext(o.output))
	switch ext {
	case ".svg", ".csv", ".png", "":
	default:
		return fmt.Errorf("unsupported output format: %s", filepath.Ext(o.output))
	}

	f, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	ropts := []render.Option{render.WithSize(o.width, o.height), render.WithLineWidth(o.lw)}
	switch ext {
	case ".svg":
		err = render.WriteSVG(f, re, im, ropts...)
	case ".csv":
		err = render.WriteCSV(f, re, im)
	default:
		c := render.NewCanvas(ropts...)
		if err = e.AttachSurface(c); err == nil {
			err = c.EncodePNG(f)
		}
	}

	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return err
}

func printAnalysis(w io.Writer, e *webdemo.Engine) error {
	comps, err := e.Components(1e-3)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tRatio\tRadius\tPhase [rad]\n")
	fmt.Fprintf(tw, "---\t-----\t------\t-----------\n")
	for _, c := range comps {
		bin := "-"
		if c.Bin >= 0 {
			bin = strconv.Itoa(c.Bin)
		}
		fmt.Fprintf(tw, "%s\t%.4f\t%.6f\t%.4f\n", bin, c.Ratio, c.Radius, c.Phase)
	}

	ext := e.Extent()
	fmt.Fprintf(tw, "\nReal span\t[%.4f, %.4f]\n", ext.MinReal, ext.MaxReal)
	fmt.Fprintf(tw, "Imag span\t[%.4f, %.4f]\n", ext.MinImag, ext.MaxImag)
	fmt.Fprintf(tw, "Max radius\t%.4f\n", ext.MaxRadius)
	fmt.Fprintf(tw, "Path length\t%.4f\n", ext.PathLength)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}
	return nil
}
