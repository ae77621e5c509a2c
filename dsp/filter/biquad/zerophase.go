package biquad

import "slices"

// DefaultPadLength returns the reflection pad used by [FiltFilt] for a
// cascade of the given number of sections: three times the cascade's
// coefficient count, the same rule of thumb used by common filtfilt
// implementations.
func DefaultPadLength(sections int) int {
	if sections <= 0 {
		return 0
	}

	return 3 * (2*sections + 1)
}

// FiltFilt filters x through the cascade forward and then backward and
// returns the result in a new slice of the same length. x is not modified.
//
// The output has zero phase and a magnitude response equal to the square
// of the cascade's. Before filtering, x is extended at both ends by padLen
// samples of odd reflection (2*x[0]-x[k] at the start, likewise at the
// end) and each pass starts from the DC steady state of its first sample,
// which keeps edge transients short. A negative padLen selects
// [DefaultPadLength]; padLen is clamped to len(x)-1.
func FiltFilt(coeffs []Coefficients, x []float64, padLen int) []float64 {
	n := len(x)
	if n == 0 {
		return []float64{}
	}

	if padLen < 0 {
		padLen = DefaultPadLength(len(coeffs))
	}

	if padLen > n-1 {
		padLen = n - 1
	}

	ext := make([]float64, n+2*padLen)
	copy(ext[padLen:], x)

	for i := 1; i <= padLen; i++ {
		ext[padLen-i] = 2*x[0] - x[i]
		ext[padLen+n-1+i] = 2*x[n-1] - x[n-1-i]
	}

	chain := NewChain(coeffs)

	chain.PrimeDC(ext[0])
	chain.ProcessBlock(ext)

	slices.Reverse(ext)
	chain.PrimeDC(ext[0])
	chain.ProcessBlock(ext)
	slices.Reverse(ext)

	out := make([]float64, n)
	copy(out, ext[padLen:padLen+n])

	return out
}
