package biquad

import (
	"math/cmplx"
	"testing"
)

func TestPoles(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want [2]complex128
	}{
		{
			name: "complex pair",
			c:    Coefficients{B0: 1, A1: -1.4, A2: 0.53},
			want: [2]complex128{complex(0.7, 0.2), complex(0.7, -0.2)},
		},
		{
			name: "real pair",
			c:    Coefficients{B0: 1, A1: -0.5, A2: 0.06},
			want: [2]complex128{0.3, 0.2},
		},
		{
			name: "first order",
			c:    Coefficients{B0: 1, A1: -0.8},
			want: [2]complex128{0.8, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Poles()
			for i := range got {
				if cmplx.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Fatalf("pole %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStable(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []Coefficients
		want   bool
	}{
		{"empty", nil, true},
		{"two stable sections", twoSectionCoeffs(), true},
		{"pole on unit circle", []Coefficients{{B0: 1, A1: -1}}, false},
		{"pole outside", []Coefficients{traced(), {B0: 1, A1: -2.1, A2: 1.1}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stable(tt.coeffs); got != tt.want {
				t.Fatalf("Stable = %v, want %v", got, tt.want)
			}
		})
	}
}
