package biquad

import (
	"math"
	"testing"
)

// unityDC is traced() scaled to 0 dB at DC.
func unityDC() Coefficients {
	return Coefficients{B0: 0.21, B1: 0.42, B2: 0.21, A1: -0.2, A2: 0.04}
}

func TestDefaultPadLength(t *testing.T) {
	tests := []struct {
		sections, want int
	}{
		{0, 0},
		{1, 9},
		{2, 15},
		{4, 27},
	}
	for _, tt := range tests {
		if got := DefaultPadLength(tt.sections); got != tt.want {
			t.Errorf("DefaultPadLength(%d) = %d, want %d", tt.sections, got, tt.want)
		}
	}
}

func TestFiltFilt_Empty(t *testing.T) {
	out := FiltFilt(twoSectionCoeffs(), nil, -1)
	if out == nil || len(out) != 0 {
		t.Fatalf("FiltFilt(nil) = %v, want empty non-nil slice", out)
	}
}

func TestFiltFilt_PreservesInputAndLength(t *testing.T) {
	x := []float64{0.1, -0.4, 0.9, 0.3, -0.2, 0.05, 0.7}
	orig := append([]float64(nil), x...)

	out := FiltFilt(twoSectionCoeffs(), x, -1)
	if len(out) != len(x) {
		t.Fatalf("len = %d, want %d", len(out), len(x))
	}

	for i := range x {
		if x[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}

func TestFiltFilt_NoSectionsIsCopy(t *testing.T) {
	x := []float64{1, 2, 3, 4}

	out := FiltFilt(nil, x, -1)
	for i := range x {
		if out[i] != x[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], x[i])
		}
	}

	out[0] = 42
	if x[0] == 42 {
		t.Fatal("output aliases input")
	}
}

func TestFiltFilt_ConstantInput(t *testing.T) {
	x := make([]float64, 64)
	for i := range x {
		x[i] = 0.5
	}

	out := FiltFilt([]Coefficients{unityDC(), unityDC()}, x, -1)
	for i, v := range out {
		if !almostEqual(v, 0.5, 1e-9) {
			t.Fatalf("out[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestFiltFilt_ShortInputClampsPad(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		x := make([]float64, n)
		x[0] = 1

		out := FiltFilt(twoSectionCoeffs(), x, 100)
		if len(out) != n {
			t.Fatalf("n=%d: len = %d", n, len(out))
		}

		for i, v := range out {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("n=%d: out[%d] = %v", n, i, v)
			}
		}
	}
}

func TestFiltFilt_ZeroPhasePulse(t *testing.T) {
	const (
		n      = 401
		center = 200
	)

	x := make([]float64, n)
	for i := range x {
		d := float64(i - center)
		x[i] = math.Exp(-d * d / 50)
	}

	out := FiltFilt(twoSectionCoeffs(), x, -1)

	peak := 0
	for i := range out {
		if out[i] > out[peak] {
			peak = i
		}
	}

	if peak != center {
		t.Fatalf("peak moved from %d to %d", center, peak)
	}

	for k := 1; k < 100; k++ {
		if !almostEqual(out[center-k], out[center+k], 1e-9*out[center]) {
			t.Fatalf("asymmetric at offset %d: %v vs %v", k, out[center-k], out[center+k])
		}
	}
}

func TestFiltFilt_SquaredMagnitude(t *testing.T) {
	const (
		sr   = 48000.0
		freq = 1000.0
		n    = 4800
	)

	coeffs := twoSectionCoeffs()
	gain := NewChain(coeffs).MagnitudeDB(freq, sr)
	want := math.Pow(10, 2*gain/20)

	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * freq * float64(i) / sr)
	}

	out := FiltFilt(coeffs, x, -1)

	// Away from the edges the output is the input scaled by |H|², no delay.
	for i := 1000; i < n-1000; i++ {
		if !almostEqual(out[i], want*x[i], 1e-6) {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want*x[i])
		}
	}
}

func BenchmarkFiltFilt(b *testing.B) {
	coeffs := []Coefficients{benchCoeffs, benchCoeffs}
	x := make([]float64, 48000)

	for i := range x {
		x[i] = math.Sin(float64(i) * 0.01)
	}

	b.SetBytes(int64(len(x) * 8))

	for b.Loop() {
		_ = FiltFilt(coeffs, x, -1)
	}
}
