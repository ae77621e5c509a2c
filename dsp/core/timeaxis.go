package core

// SampleTime returns the i-th value of an n-point time axis spanning
// [0, n/sampleRate] inclusive. The spacing is (n/sampleRate)/(n-1), so the
// last point lands exactly on the buffer duration. A one-point axis is {0}.
//
// i outside [0, n) is extrapolated with the same spacing.
func SampleTime(i, n int, sampleRate float64) float64 {
	if n <= 1 || sampleRate <= 0 {
		return 0
	}

	duration := float64(n) / sampleRate
	if i == n-1 {
		return duration
	}

	return float64(i) * duration / float64(n-1)
}

// TimeAxis returns the n-point time axis described by [SampleTime].
func TimeAxis(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}

	axis := make([]float64, n)
	for i := range axis {
		axis[i] = SampleTime(i, n, sampleRate)
	}

	return axis
}

// Duration returns the length of n samples in seconds.
func Duration(n int, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return 0
	}

	return float64(n) / sampleRate
}
