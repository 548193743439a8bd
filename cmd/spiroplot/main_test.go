package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseList(t *testing.T) {
	got, err := parseList(" 1, 0.5 ,1.5")
	if err != nil {
		t.Fatalf("parseList() error = %v", err)
	}
	want := []float64{1, 0.5, 1.5}
	if len(got) != len(want) {
		t.Fatalf("parseList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parseList()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got, err := parseList(""); err != nil || got != nil {
		t.Fatalf("parseList(\"\") = %v, %v", got, err)
	}
	if _, err := parseList("1,x"); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
}

func TestParseFlagsMismatch(t *testing.T) {
	var stderr bytes.Buffer
	if _, err := parseFlags([]string{"-ratios", "1,2", "-radii", "1,2,3"}, &stderr); err == nil {
		t.Fatal("expected error for mismatched list lengths")
	}
}

func TestParseFlagsPhasorCount(t *testing.T) {
	var stderr bytes.Buffer
	o, err := parseFlags([]string{"-phasors", "7", "-radii", "1,0.5"}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if o.phasors != 2 {
		t.Fatalf("phasors = %d, want 2", o.phasors)
	}
}

func TestRunCSVStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-samples", "3", "-loops", "0.25", "-phasors", "1", "-o", "-"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v (stderr: %s)", err, stderr.String())
	}

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 4 || lines[0] != "real,imag" || lines[1] != "1,0" {
		t.Fatalf("unexpected csv:\n%s", stdout.String())
	}
}

func TestRunPNGWithClampWarning(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spiro.png")
	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-samples", "512", "-width", "64", "-height", "64",
		"-ratios", "1,5", "-radii", "1,0.5",
		"-o", out,
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stderr.String(), "ratio clamped") {
		t.Fatalf("expected clamp warning, stderr: %s", stderr.String())
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds().Dx() != 64 {
		t.Fatalf("width = %d, want 64", img.Bounds().Dx())
	}
}

func TestRunSVGAndAnalyze(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spiro.svg")
	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-samples", "256", "-loops", "4", "-periodic",
		"-ratios", "1,0.5", "-radii", "1,0.25",
		"-analyze", "-o", out,
	}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg ")) {
		t.Fatalf("output is not svg: %.40s", data)
	}

	report := stdout.String()
	for _, want := range []string{"Ratio", "1.0000", "0.5000", "0.250000", "Max radius"} {
		if !strings.Contains(report, want) {
			t.Fatalf("analysis missing %q:\n%s", want, report)
		}
	}
}

func TestRunUnsupportedFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spiro.gif")
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-samples", "8", "-o", out}, &stdout, &stderr); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("unsupported format left a file behind: %v", err)
	}
}

func TestRunRejectsNaNLoops(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-samples", "8", "-loops", "NaN", "-o", "-"}, &stdout, &stderr); err == nil {
		t.Fatal("expected error for NaN loops")
	}
}
