package decay

import (
	"errors"
	"math"
	"testing"
)

func TestEnergyMetricsExponentialDecay(t *testing.T) {
	const (
		sampleRate = 1000.0
		rt60       = 0.5
		n          = 2000
	)

	buf := makeExponentialDecay(t, sampleRate, rt60, n/sampleRate)

	m, err := NewAnalyzer(sampleRate).EnergyMetrics(buf)
	if err != nil {
		t.Fatal(err)
	}

	// per-sample energy ratio
	r := math.Pow(10, -6/(rt60*sampleRate))
	tailAt := func(k float64) float64 { return math.Pow(r, k) - math.Pow(r, n) }
	total := tailAt(0)

	tests := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"D50", m.D50, 1 - tailAt(50)/total, 1e-9},
		{"D80", m.D80, 1 - tailAt(80)/total, 1e-9},
		{"C50", m.C50, 10 * math.Log10((total-tailAt(50))/tailAt(50)), 1e-6},
		{"C80", m.C80, 10 * math.Log10((total-tailAt(80))/tailAt(80)), 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > tt.tol {
				t.Fatalf("%s = %.12g, want %.12g", tt.name, tt.got, tt.want)
			}
		})
	}

	var num, den float64
	for i := range n {
		e := math.Pow(r, float64(i))
		num += float64(i) * e
		den += e
	}

	if want := num / den / sampleRate; math.Abs(m.CenterTime-want) > 1e-9 {
		t.Fatalf("CenterTime = %.12g, want %.12g", m.CenterTime, want)
	}

	if m.PeakIndex != 0 {
		t.Fatalf("PeakIndex = %d, want 0", m.PeakIndex)
	}
}

func TestEnergyMetricsIgnorePreDelay(t *testing.T) {
	const sampleRate = 8000.0

	decayed := makeExponentialDecay(t, sampleRate, 0.3, 1)

	delayed := make([]float64, 200+len(decayed))
	copy(delayed[200:], decayed)

	a := NewAnalyzer(sampleRate)

	want, err := a.EnergyMetrics(decayed)
	if err != nil {
		t.Fatal(err)
	}

	got, err := a.EnergyMetrics(delayed)
	if err != nil {
		t.Fatal(err)
	}

	if got.PeakIndex != 200 {
		t.Fatalf("PeakIndex = %d, want 200", got.PeakIndex)
	}

	got.PeakIndex = 0
	if got != want {
		t.Fatalf("metrics with pre-delay = %+v, want %+v", got, want)
	}
}

func TestEnergyMetricsStayFinite(t *testing.T) {
	a := NewAnalyzer(1000)

	silent, err := a.EnergyMetrics(make([]float64, 500))
	if err != nil {
		t.Fatal(err)
	}

	if silent != (EnergyMetrics{}) {
		t.Fatalf("silent metrics = %+v, want zero value", silent)
	}

	click := make([]float64, 500)
	click[0] = 1

	m, err := a.EnergyMetrics(click)
	if err != nil {
		t.Fatal(err)
	}

	if m.D50 != 1 || m.D80 != 1 {
		t.Fatalf("click definition = %g/%g, want 1", m.D50, m.D80)
	}

	if math.IsInf(m.C50, 0) || m.C50 < 99 {
		t.Fatalf("click C50 = %g, want large and finite", m.C50)
	}

	// boundary past the end of the buffer
	short, err := a.EnergyMetrics([]float64{1, 0.5, 0.25})
	if err != nil {
		t.Fatal(err)
	}

	if short.D50 != 1 || math.IsInf(short.C80, 0) {
		t.Fatalf("short buffer metrics = %+v", short)
	}
}

func TestEnergyMetricsRejectsInvalidInput(t *testing.T) {
	if _, err := NewAnalyzer(1000).EnergyMetrics(nil); !errors.Is(err, ErrEmptyBuffer) {
		t.Fatalf("err = %v, want ErrEmptyBuffer", err)
	}

	if _, err := NewAnalyzer(0).EnergyMetrics([]float64{1}); !errors.Is(err, ErrContractViolation) {
		t.Fatalf("err = %v, want ErrContractViolation", err)
	}
}
