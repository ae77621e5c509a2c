package bands

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// EnergyShare returns, for each band, the fraction of the energy of buf's
// spectrum whose frequency lies in [LowCutoff, HighCutoff) of that band.
// The highest band also includes the Nyquist bin. A silent buffer yields
// all zeros.
func (a *Analyzer) EnergyShare(buf []float64) ([]float64, error) {
	if err := a.decay.Validate(buf); err != nil {
		return nil, fmt.Errorf("bands: %w", err)
	}

	power, err := oneSidedPower(buf)
	if err != nil {
		return nil, err
	}

	bands := a.bank.Bands()
	shares := make([]float64, len(bands))

	var total float64
	for _, p := range power {
		total += p
	}

	if total == 0 {
		return shares, nil
	}

	fftSize := 2 * (len(power) - 1)
	binHz := a.decay.SampleRate / float64(fftSize)
	last := len(power) - 1

	for i, band := range bands {
		var sum float64

		for k, p := range power {
			f := float64(k) * binHz
			if f >= band.LowCutoff && (f < band.HighCutoff || (k == last && band.HighCutoff >= f)) {
				sum += p
			}
		}

		shares[i] = sum / total
	}

	return shares, nil
}

// oneSidedPower returns the power of bins 0..N/2 of a zero-padded
// power-of-two FFT of x, with interior bins doubled to account for the
// mirrored half.
func oneSidedPower(x []float64) ([]float64, error) {
	fftSize := nextPowerOfTwo(len(x))
	if fftSize < 2 {
		fftSize = 2
	}

	in := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("bands: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("bands: fft: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for k := range half {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	for k := 1; k < half-1; k++ {
		power[k] *= 2
	}

	return power, nil
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
