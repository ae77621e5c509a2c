package signal

import (
	"fmt"
	"math"
)

// decayDB is the energy drop that defines a reverberation time.
const decayDB = 60.0

// DecayRatio returns the per-sample amplitude ratio r for which r^n, with
// n = rt60*sampleRate, is an amplitude drop of 1e-3 (an energy drop of
// 60 dB).
func DecayRatio(rt60, sampleRate float64) float64 {
	if rt60 <= 0 || sampleRate <= 0 {
		return 0
	}

	return math.Pow(10, -decayDB/20/(rt60*sampleRate))
}

// ExponentialDecay returns amplitude * ratio^i for i in [0, samples).
// ratio must lie in (0, 1].
func ExponentialDecay(amplitude, ratio float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("decay samples must be > 0: %d", samples)
	}

	if ratio <= 0 || ratio > 1 {
		return nil, fmt.Errorf("decay ratio must be in (0, 1]: %f", ratio)
	}

	out := make([]float64, samples)

	v := amplitude
	for i := range out {
		out[i] = v
		v *= ratio
	}

	return out, nil
}

// DecayingNoise generates white noise shaped by an exponential envelope
// whose energy falls by 60 dB after rt60 seconds. It is the usual stand-in
// for a diffuse room impulse response.
func (g *Generator) DecayingNoise(rt60, amplitude float64, samples int) ([]float64, error) {
	if rt60 <= 0 {
		return nil, fmt.Errorf("decay rt60 must be > 0: %f", rt60)
	}

	out, err := g.WhiteNoise(amplitude, samples)
	if err != nil {
		return nil, err
	}

	applyEnvelope(out, DecayRatio(rt60, g.cfg.SampleRate))

	return out, nil
}

// DecayingSine generates a sine at freqHz with the same envelope as
// [Generator.DecayingNoise].
func (g *Generator) DecayingSine(freqHz, rt60, amplitude float64, samples int) ([]float64, error) {
	if rt60 <= 0 {
		return nil, fmt.Errorf("decay rt60 must be > 0: %f", rt60)
	}

	out, err := g.Sine(freqHz, amplitude, samples)
	if err != nil {
		return nil, err
	}

	applyEnvelope(out, DecayRatio(rt60, g.cfg.SampleRate))

	return out, nil
}

// AppendSilence returns a copy of data followed by n zero samples.
func AppendSilence(data []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}

	out := make([]float64, len(data)+n)
	copy(out, data)

	return out
}

func applyEnvelope(buf []float64, ratio float64) {
	env := 1.0
	for i := range buf {
		buf[i] *= env
		env *= ratio
	}
}
