package bands

import (
	"errors"
	"fmt"

	"github.com/Arr1738/SPIDAM-project/dsp/core"
	"github.com/Arr1738/SPIDAM-project/dsp/filter/bank"
	"github.com/Arr1738/SPIDAM-project/measure/decay"
	"golang.org/x/sync/errgroup"
)

// Construction errors. The bank errors are re-exported so callers need
// only this package.
var (
	ErrBandAboveNyquist = bank.ErrBandAboveNyquist
	ErrInvalidCrossover = bank.ErrInvalidCrossover
	ErrNoBands          = errors.New("bands: no band fits below Nyquist")
)

// ReliabilityRatio is how many times longer than its filter's own RT60 a
// band estimate must be to count as reliable.
const ReliabilityRatio = 2.0

// filterIRSeconds is the length of the impulse response used to measure
// filter ringing.
const filterIRSeconds = 1.0

// BandResult is the RT60 estimate for one band.
type BandResult struct {
	Band   bank.Band
	Result decay.Result

	// EnergyShare is the fraction of the signal's spectral energy that lies
	// between the band edges.
	EnergyShare float64

	// FilterRT60 is the RT60 of the band filter's zero-phase impulse
	// response in seconds; 0 when it does not decay by 60 dB within
	// one second, in which case no estimate in the band is reliable.
	FilterRT60 float64
}

// Reliable reports whether a decay was found and is at least
// ReliabilityRatio times the filter's own ringing.
func (r BandResult) Reliable() bool {
	if !r.Result.Found || r.FilterRT60 <= 0 {
		return false
	}

	return r.Result.RT60 >= ReliabilityRatio*r.FilterRT60
}

// Results holds per-band results ordered from low to high frequency.
type Results []BandResult

// Get returns the result for the band with the given name.
func (rs Results) Get(name string) (BandResult, bool) {
	for _, r := range rs {
		if r.Band.Name == name {
			return r, true
		}
	}

	return BandResult{}, false
}

// Analyzer runs a decay estimate in every band of a filter bank.
// It is safe for concurrent use.
type Analyzer struct {
	bank       *bank.Bank
	decay      *decay.Analyzer
	filterRT60 []float64
	padLen     int
	workers    int
}

// NewAnalyzer designs the band filters for sampleRate and measures their
// ringing. It fails when the sample rate is invalid or a band cannot be
// placed below Nyquist.
func NewAnalyzer(sampleRate float64, opts ...Option) (*Analyzer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("bands: %w: %v", decay.ErrInvalidSampleRate, sampleRate)
	}

	da := decay.NewAnalyzer(sampleRate, cfg.decayOpts...)

	var (
		b   *bank.Bank
		err error
	)

	if cfg.octave > 0 {
		b = bank.Octave(cfg.octave, sampleRate, cfg.bankOpts...)
		if b.NumBands() == 0 {
			err = ErrNoBands
		}
	} else {
		b, err = bank.ThreeBand(sampleRate, cfg.bankOpts...)
	}

	if err != nil {
		return nil, fmt.Errorf("bands: %w", err)
	}

	a := &Analyzer{
		bank:    b,
		decay:   da,
		padLen:  cfg.padLen,
		workers: cfg.workers,
	}

	a.filterRT60 = make([]float64, b.NumBands())
	irLen := int(filterIRSeconds * sampleRate)

	for i, band := range b.Bands() {
		res, err := da.Estimate(band.ImpulseResponse(irLen))
		if err != nil {
			return nil, fmt.Errorf("bands: filter response of %s: %w", band.Name, err)
		}

		a.filterRT60[i] = res.RT60
	}

	return a, nil
}

// Bands returns the analyzer's bands, ordered low to high.
func (a *Analyzer) Bands() []bank.Band { return a.bank.Bands() }

// SampleRate returns the sample rate the analyzer was built for.
func (a *Analyzer) SampleRate() float64 { return a.decay.SampleRate }

// AnalyzeBands filters buf into every band and estimates each band's RT60.
// Contract violations are reported before any filtering and no partial
// results are returned with an error.
func (a *Analyzer) AnalyzeBands(buf []float64) (Results, error) {
	if err := a.decay.Validate(buf); err != nil {
		return nil, fmt.Errorf("bands: %w", err)
	}

	shares, err := a.EnergyShare(buf)
	if err != nil {
		return nil, err
	}

	bands := a.bank.Bands()
	results := make(Results, len(bands))

	var g errgroup.Group
	if a.workers > 0 {
		g.SetLimit(a.workers)
	}

	for i := range bands {
		g.Go(func() error {
			filtered := bands[i].Filter(buf, a.padLen)

			res, err := a.decay.Estimate(filtered)
			if err != nil {
				return fmt.Errorf("bands: %s: %w", bands[i].Name, err)
			}

			results[i] = BandResult{
				Band:        bands[i],
				Result:      res,
				EnergyShare: shares[i],
				FilterRT60:  a.filterRT60[i],
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
