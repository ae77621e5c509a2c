package bands

import (
	"github.com/Arr1738/SPIDAM-project/dsp/filter/bank"
	"github.com/Arr1738/SPIDAM-project/measure/decay"
)

type config struct {
	bankOpts  []bank.Option
	octave    int
	padLen    int
	workers   int
	decayOpts []decay.Option
}

func defaultConfig() config {
	return config{
		padLen: -1,
	}
}

// Option configures an Analyzer.
type Option func(*config)

// WithOrder sets the Butterworth order per band edge (default 4). The
// forward-backward pass doubles the effective order.
func WithOrder(n int) Option {
	return func(cfg *config) {
		cfg.bankOpts = append(cfg.bankOpts, bank.WithOrder(n))
	}
}

// WithCrossovers overrides the low/mid and mid/high crossover frequencies
// of the three-band split. Ignored with [WithOctaveBands].
func WithCrossovers(lowMid, midHigh float64) Option {
	return func(cfg *config) {
		cfg.bankOpts = append(cfg.bankOpts, bank.WithCrossovers(lowMid, midHigh))
	}
}

// WithOctaveBands replaces the three-band split with a 1/fraction-octave
// bank (1 for octaves, 3 for third-octaves).
func WithOctaveBands(fraction int) Option {
	return func(cfg *config) {
		if fraction > 0 {
			cfg.octave = fraction
		}
	}
}

// WithFrequencyRange limits the octave bank to centers within
// [lower, upper] Hz. Ignored for the three-band split.
func WithFrequencyRange(lower, upper float64) Option {
	return func(cfg *config) {
		cfg.bankOpts = append(cfg.bankOpts, bank.WithFrequencyRange(lower, upper))
	}
}

// WithPadLength sets the odd-reflection padding applied at each end of
// the buffer before filtering. Negative values select the default of
// three times the cascade's coefficient count.
func WithPadLength(n int) Option {
	return func(cfg *config) {
		cfg.padLen = n
	}
}

// WithWorkers bounds the number of bands analyzed concurrently.
// Zero or negative means one goroutine per band.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		cfg.workers = n
	}
}

// WithDecayOptions passes options through to the per-band decay analyzer.
func WithDecayOptions(opts ...decay.Option) Option {
	return func(cfg *config) {
		cfg.decayOpts = append(cfg.decayOpts, opts...)
	}
}
