package core

import (
	"math"
	"testing"
)

func TestTimeAxisEndpoints(t *testing.T) {
	axis := TimeAxis(5, 4)
	want := []float64{0, 0.3125, 0.625, 0.9375, 1.25}

	if len(axis) != len(want) {
		t.Fatalf("len = %d, want %d", len(axis), len(want))
	}

	for i := range want {
		if math.Abs(axis[i]-want[i]) > 1e-12 {
			t.Errorf("axis[%d] = %v, want %v", i, axis[i], want[i])
		}
	}
}

func TestTimeAxisSinglePoint(t *testing.T) {
	axis := TimeAxis(1, 48000)
	if len(axis) != 1 || axis[0] != 0 {
		t.Fatalf("TimeAxis(1) = %v, want [0]", axis)
	}

	if TimeAxis(0, 48000) != nil {
		t.Fatal("TimeAxis(0) should be nil")
	}
}

func TestTimeAxisMatchesSampleTime(t *testing.T) {
	const n = 1001

	axis := TimeAxis(n, 44100)
	for i, v := range axis {
		if v != SampleTime(i, n, 44100) {
			t.Fatalf("axis[%d] = %v, SampleTime = %v", i, v, SampleTime(i, n, 44100))
		}
	}

	if axis[n-1] != Duration(n, 44100) {
		t.Fatalf("last point = %v, want duration %v", axis[n-1], Duration(n, 44100))
	}
}

func TestTimeAxisMonotonic(t *testing.T) {
	axis := TimeAxis(4096, 48000)
	for i := 1; i < len(axis); i++ {
		if axis[i] <= axis[i-1] {
			t.Fatalf("axis not increasing at %d: %v <= %v", i, axis[i], axis[i-1])
		}
	}
}
