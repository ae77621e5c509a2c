package main

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Arr1738/SPIDAM-project/internal/audio"
	"github.com/Arr1738/SPIDAM-project/internal/cli"
	"github.com/Arr1738/SPIDAM-project/measure/decay"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	oldOut, oldErr := cli.Stdout, cli.Stderr
	cli.Stdout, cli.Stderr = &buf, &buf

	t.Cleanup(func() { cli.Stdout, cli.Stderr = oldOut, oldErr })

	return &buf
}

func synthFile(t *testing.T, rt60 float64) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "decay.wav")
	cmd := synthCmd{
		Output:    path,
		RT60:      rt60,
		Duration:  1.5,
		Rate:      16000,
		Amplitude: 0.5,
		Seed:      3,
		BitDepth:  24,
	}

	if err := cmd.Run(); err != nil {
		t.Fatalf("synth: %v", err)
	}

	return path
}

func TestSynthThenEstimateRecoversRT60(t *testing.T) {
	out := captureOutput(t)

	const rt60 = 0.4

	path := synthFile(t, rt60)

	if !strings.Contains(out.String(), "wrote") {
		t.Fatalf("synth output = %q", out.String())
	}

	clip, err := audio.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	res, err := decay.NewAnalyzer(float64(clip.SampleRate)).Estimate(clip.Samples)
	if err != nil {
		t.Fatal(err)
	}

	if !res.Found || math.Abs(res.RT60-rt60) > 0.1*rt60 {
		t.Fatalf("estimate = %+v, want RT60 near %g", res, rt60)
	}
}

func TestAnalyzeWithBands(t *testing.T) {
	out := captureOutput(t)
	path := synthFile(t, 0.4)
	out.Reset()

	cmd := analyzeCmd{
		Input:   path,
		Bands:   true,
		LowMid:  500,
		MidHigh: 2000,
		Order:   4,
		Verbose: true,
	}

	if err := cmd.Run(); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	for _, want := range []string{"Input", "16000 Hz", "Broadband", "RT60", "T30", "C50", "Center time", "Curve -60 dB", "Bands", "Edges dB", "low", "mid", "high"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestAnalyzeOctaveBands(t *testing.T) {
	out := captureOutput(t)
	path := synthFile(t, 0.4)
	out.Reset()

	cmd := analyzeCmd{
		Input:   path,
		Octave:  1,
		MinFreq: 100,
		MaxFreq: 4000,
		Order:   4,
	}

	if err := cmd.Run(); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	for _, want := range []string{"126 Hz", "1 kHz", "3.98 kHz"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestAnalyzeRejectsBadOctave(t *testing.T) {
	captureOutput(t)
	path := synthFile(t, 0.4)

	cmd := analyzeCmd{Input: path, Octave: 2, Order: 4}

	if err := cmd.Run(); !errors.Is(err, errOctaveFraction) {
		t.Fatalf("err = %v, want errOctaveFraction", err)
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	captureOutput(t)

	cmd := analyzeCmd{Input: filepath.Join(t.TempDir(), "missing.wav")}
	if err := cmd.Run(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSynthValidation(t *testing.T) {
	captureOutput(t)

	dir := t.TempDir()

	tests := []struct {
		name string
		cmd  synthCmd
	}{
		{"zero rate", synthCmd{Output: filepath.Join(dir, "a.wav"), RT60: 0.5, Duration: 1, Rate: 0, BitDepth: 16}},
		{"zero duration", synthCmd{Output: filepath.Join(dir, "b.wav"), RT60: 0.5, Duration: 0, Rate: 8000, BitDepth: 16}},
		{"zero rt60", synthCmd{Output: filepath.Join(dir, "c.wav"), RT60: 0, Duration: 1, Rate: 8000, BitDepth: 16}},
		{"bad bit depth", synthCmd{Output: filepath.Join(dir, "d.wav"), RT60: 0.5, Duration: 1, Rate: 8000, BitDepth: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
