package bank

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/Arr1738/SPIDAM-project/dsp/filter/biquad"
	"github.com/Arr1738/SPIDAM-project/dsp/filter/design"
)

// Default crossover frequencies between the low, mid and high bands.
const (
	LowMidCrossover  = 500.0
	MidHighCrossover = 2000.0
)

// Names of the three default bands.
const (
	NameLow  = "low"
	NameMid  = "mid"
	NameHigh = "high"
)

// octaveRatio is G = 10^(3/10) per IEC 61260.
var octaveRatio = math.Pow(10, 0.3)

const (
	defaultOrder     = 4
	defaultLowerFreq = 20.0
	defaultUpperFreq = 20000.0
)

var (
	// ErrInvalidSampleRate is returned when the sample rate is not positive and finite.
	ErrInvalidSampleRate = errors.New("bank: sample rate must be positive and finite")
	// ErrInvalidCrossover is returned when crossovers are not 0 < lowMid < midHigh.
	ErrInvalidCrossover = errors.New("bank: crossovers must satisfy 0 < low/mid < mid/high")
	// ErrBandAboveNyquist is returned when a band edge is not below Nyquist.
	ErrBandAboveNyquist = errors.New("bank: band edge at or above Nyquist")
	// ErrUnstableFilter is returned when a designed cascade has a pole on or outside the unit circle.
	ErrUnstableFilter = errors.New("bank: band filter is unstable")
)

// Band represents one frequency band in a filter bank.
//
// A band is a pure description: the Butterworth sections are designed
// once, and every call to [Band.Filter] runs them with fresh delay lines,
// so a Band may be shared between goroutines.
type Band struct {
	Name       string
	CenterFreq float64 // geometric center in Hz; 0 for a lowpass-only band
	LowCutoff  float64 // lower -3 dB frequency in Hz; 0 when there is no highpass
	HighCutoff float64 // upper -3 dB frequency in Hz; Nyquist when there is no lowpass
	Sections   []biquad.Coefficients
}

// Filter returns a zero-phase band-limited copy of x (see [biquad.FiltFilt]).
// A negative padLen selects the default reflection pad for the cascade.
func (b *Band) Filter(x []float64, padLen int) []float64 {
	return biquad.FiltFilt(b.Sections, x, padLen)
}

// MagnitudeDB returns the single-pass band magnitude response in dB at the
// given frequency. [Band.Filter] applies it twice, doubling the dB value.
func (b *Band) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return biquad.NewChain(b.Sections).MagnitudeDB(freqHz, sampleRate)
}

// ImpulseResponse returns the first n samples of the band's zero-phase
// impulse response, starting at the peak. The full response is symmetric
// about the peak.
func (b *Band) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}

	x := make([]float64, 2*n-1)
	x[n-1] = 1

	return b.Filter(x, -1)[n-1:]
}

// Bank is a collection of frequency bands ordered from low to high.
type Bank struct {
	bands      []Band
	sampleRate float64
	order      int
}

type bankConfig struct {
	order   int
	lowMid  float64
	midHigh float64
	lowerHz float64
	upperHz float64
}

func defaultBankConfig() bankConfig {
	return bankConfig{
		order:   defaultOrder,
		lowMid:  LowMidCrossover,
		midHigh: MidHighCrossover,
		lowerHz: defaultLowerFreq,
		upperHz: defaultUpperFreq,
	}
}

// Option configures a Bank.
type Option func(*bankConfig)

// WithOrder sets the Butterworth filter order per band edge.
// Must be positive; defaults to 4.
func WithOrder(n int) Option {
	return func(cfg *bankConfig) {
		if n > 0 {
			cfg.order = n
		}
	}
}

// WithCrossovers overrides the low/mid and mid/high crossover frequencies
// used by [ThreeBand]. Values are validated when the bank is built.
func WithCrossovers(lowMid, midHigh float64) Option {
	return func(cfg *bankConfig) {
		cfg.lowMid = lowMid
		cfg.midHigh = midHigh
	}
}

// WithFrequencyRange sets custom lower and upper frequency limits
// for [Octave]. Bands outside this range are excluded.
func WithFrequencyRange(lower, upper float64) Option {
	return func(cfg *bankConfig) {
		if lower > 0 && upper > lower {
			cfg.lowerHz = lower
			cfg.upperHz = upper
		}
	}
}

// ThreeBand builds the default low / mid / high bank:
//
//	low  [0, lowMid)         lowpass at lowMid
//	mid  [lowMid, midHigh)   highpass at lowMid, lowpass at midHigh
//	high [midHigh, Nyquist)  highpass at midHigh
//
// The crossovers default to [LowMidCrossover] and [MidHighCrossover].
func ThreeBand(sampleRate float64, opts ...Option) (*Bank, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	cfg := defaultBankConfig()
	for _, o := range opts {
		o(&cfg)
	}

	lowMid, midHigh := cfg.lowMid, cfg.midHigh
	if !(lowMid > 0 && midHigh > lowMid) || math.IsInf(midHigh, 0) {
		return nil, fmt.Errorf("%w: %v, %v", ErrInvalidCrossover, lowMid, midHigh)
	}

	nyquist := sampleRate / 2
	if midHigh >= nyquist {
		return nil, fmt.Errorf("%w: %.1f Hz >= %.1f Hz", ErrBandAboveNyquist, midHigh, nyquist)
	}

	lp := design.ButterworthLP(lowMid, cfg.order, sampleRate)
	hp := design.ButterworthHP(midHigh, cfg.order, sampleRate)

	mid := append(design.ButterworthHP(lowMid, cfg.order, sampleRate),
		design.ButterworthLP(midHigh, cfg.order, sampleRate)...)

	bands := []Band{
		{Name: NameLow, LowCutoff: 0, HighCutoff: lowMid, Sections: lp},
		{Name: NameMid, CenterFreq: math.Sqrt(lowMid * midHigh), LowCutoff: lowMid, HighCutoff: midHigh, Sections: mid},
		{Name: NameHigh, CenterFreq: math.Sqrt(midHigh * nyquist), LowCutoff: midHigh, HighCutoff: nyquist, Sections: hp},
	}

	for _, band := range bands {
		if !biquad.Stable(band.Sections) {
			return nil, fmt.Errorf("%w: %s", ErrUnstableFilter, band.Name)
		}
	}

	return &Bank{
		bands:      bands,
		sampleRate: sampleRate,
		order:      cfg.order,
	}, nil
}

// Octave builds an octave or fractional-octave filter bank.
//
// The fraction parameter controls the bandwidth: fraction=1 gives full octave
// bands, fraction=3 gives 1/3-octave bands, etc. Center frequencies follow
// the IEC 61260 base-10 system: f_m = 1000 * G^(k/N) where G = 10^(3/10).
//
// Band edges are:
//
//	f_upper = f_center * G^(1/(2*N))
//	f_lower = f_center * G^(-1/(2*N))
//
// Bands whose upper edge reaches Nyquist are skipped, so the bank may be
// empty at low sample rates.
func Octave(fraction int, sampleRate float64, opts ...Option) *Bank {
	if fraction <= 0 {
		fraction = 1
	}

	cfg := defaultBankConfig()
	for _, o := range opts {
		o(&cfg)
	}

	specs := octaveBandSpecs(fraction, sampleRate, cfg.lowerHz, cfg.upperHz)

	bands := make([]Band, 0, len(specs))
	for _, spec := range specs {
		sections := append(design.ButterworthHP(spec.low, cfg.order, sampleRate),
			design.ButterworthLP(spec.high, cfg.order, sampleRate)...)

		bands = append(bands, Band{
			Name:       bandName(spec.center),
			CenterFreq: spec.center,
			LowCutoff:  spec.low,
			HighCutoff: spec.high,
			Sections:   sections,
		})
	}

	sort.Slice(bands, func(i, j int) bool {
		return bands[i].CenterFreq < bands[j].CenterFreq
	})

	return &Bank{
		bands:      bands,
		sampleRate: sampleRate,
		order:      cfg.order,
	}
}

// Bands returns all bands in the bank, ordered low to high frequency.
func (b *Bank) Bands() []Band { return b.bands }

// NumBands returns the number of bands.
func (b *Bank) NumBands() int { return len(b.bands) }

// SampleRate returns the sample rate the bank was built for.
func (b *Bank) SampleRate() float64 { return b.sampleRate }

// Order returns the Butterworth filter order used per band edge.
func (b *Bank) Order() int { return b.order }

// Band looks up a band by name.
func (b *Bank) Band(name string) (Band, bool) {
	for _, band := range b.bands {
		if band.Name == name {
			return band, true
		}
	}

	return Band{}, false
}

func bandName(center float64) string {
	if center >= 1000 {
		return fmt.Sprintf("%.3g kHz", center/1000)
	}

	return fmt.Sprintf("%.0f Hz", center)
}

type bandSpec struct {
	center float64
	low    float64
	high   float64
}

func octaveBandSpecs(fraction int, sampleRate, lowerHz, upperHz float64) []bandSpec {
	if fraction <= 0 || sampleRate <= 0 || lowerHz <= 0 || upperHz <= lowerHz {
		return nil
	}

	n := float64(fraction)
	halfBW := math.Pow(octaveRatio, 1/(2*n))
	nyquist := sampleRate / 2

	// Range of band indices k such that 1000 * G^(k/N) falls within
	// [lowerHz, upperHz].
	kMin := int(math.Ceil(n * math.Log(lowerHz/1000) / math.Log(octaveRatio)))

	kMax := int(math.Floor(n * math.Log(upperHz/1000) / math.Log(octaveRatio)))
	if kMax < kMin {
		return nil
	}

	specs := make([]bandSpec, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		fc := 1000 * math.Pow(octaveRatio, float64(k)/n)
		fLo := fc / halfBW
		fHi := fc * halfBW

		if fHi >= nyquist || fLo <= 0 {
			continue
		}

		specs = append(specs, bandSpec{center: fc, low: fLo, high: fHi})
	}

	return specs
}
