package decay

import (
	"fmt"
	"math"

	"github.com/Arr1738/SPIDAM-project/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// ThresholdDB is the decay level whose first crossing defines RT60.
const ThresholdDB = -60.0

// Result is the outcome of an RT60 estimate.
//
// When the decay curve never reaches [ThresholdDB], Found is false, Index
// is -1 and RT60 is 0. RT60 is never NaN or negative.
type Result struct {
	RT60  float64 // seconds
	Index int     // sample index of the first point at or below ThresholdDB
	Found bool
}

// String formats the result for display.
func (r Result) String() string {
	if !r.Found {
		return "undetermined"
	}

	return fmt.Sprintf("%.3f s", r.RT60)
}

func notFound() Result {
	return Result{Index: -1}
}

// Analyzer estimates RT60 from sample buffers at a fixed sample rate.
// It holds no per-call state and is safe for concurrent use.
type Analyzer struct {
	SampleRate float64

	energyFloor float64
}

// NewAnalyzer creates an analyzer for buffers sampled at sampleRate (Hz).
// The sample rate is validated on every call, not here.
func NewAnalyzer(sampleRate float64, opts ...Option) *Analyzer {
	a := &Analyzer{
		SampleRate:  sampleRate,
		energyFloor: DefaultEnergyFloor,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a
}

// EnergyFloor returns the numerical floor added to the decay curve.
func (a *Analyzer) EnergyFloor() float64 { return a.energyFloor }

// Validate checks buf and the analyzer's sample rate against the input
// contract without computing anything. Besides NaN and Inf samples it
// rejects buffers whose summed energy would overflow float64.
func (a *Analyzer) Validate(buf []float64) error {
	if a.SampleRate <= 0 || !core.IsFinite(a.SampleRate) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, a.SampleRate)
	}

	if len(buf) == 0 {
		return ErrEmptyBuffer
	}

	var energy float64

	for i, v := range buf {
		if !core.IsFinite(v) {
			return fmt.Errorf("%w: index %d is %v", ErrNonFiniteSample, i, v)
		}

		energy += v * v
	}

	// headroom for summation order and the energy floor
	if !core.IsFinite(energy) || energy > math.MaxFloat64/2 {
		return fmt.Errorf("%w: %v", ErrEnergyOverflow, energy)
	}

	return nil
}

// Estimate returns the RT60 of buf: the time of the first decay-curve point
// at or below [ThresholdDB]. buf is neither modified nor retained.
func (a *Analyzer) Estimate(buf []float64) (Result, error) {
	if err := a.Validate(buf); err != nil {
		return Result{}, err
	}

	curve := a.decayCurveDB(a.decayCurve(buf))

	return a.crossing(curve), nil
}

// DecayCurve returns the Schroeder backward-integrated energy of buf plus
// the energy floor. The curve has the same length as buf and is
// non-increasing.
func (a *Analyzer) DecayCurve(buf []float64) ([]float64, error) {
	if err := a.Validate(buf); err != nil {
		return nil, err
	}

	return a.decayCurve(buf), nil
}

// DecayCurveDB returns the decay curve in dB relative to its maximum.
// The first point is exactly 0 dB and no point is above it.
func (a *Analyzer) DecayCurveDB(buf []float64) ([]float64, error) {
	if err := a.Validate(buf); err != nil {
		return nil, err
	}

	return a.decayCurveDB(a.decayCurve(buf)), nil
}

// Curve returns the dB decay curve together with its time axis.
func (a *Analyzer) Curve(buf []float64) (Curve, error) {
	if err := a.Validate(buf); err != nil {
		return Curve{}, err
	}

	db := a.decayCurveDB(a.decayCurve(buf))

	return Curve{
		Times:    core.TimeAxis(len(db), a.SampleRate),
		DB:       db,
		Crossing: a.crossing(db),
	}, nil
}

// decayCurve computes the floored backward integral (unchecked).
func (a *Analyzer) decayCurve(buf []float64) []float64 {
	decay := make([]float64, len(buf))
	vecmath.MulBlock(decay, buf, buf)

	var cumSum float64
	for i := len(decay) - 1; i >= 0; i-- {
		cumSum += decay[i]
		decay[i] = cumSum
	}

	for i := range decay {
		decay[i] += a.energyFloor
	}

	return decay
}

// decayCurveDB converts a decay curve to dB in place and returns it.
func (a *Analyzer) decayCurveDB(decay []float64) []float64 {
	peak := decay[0]
	for _, v := range decay[1:] {
		peak = math.Max(peak, v)
	}

	for i, v := range decay {
		decay[i] = core.PowerRatioToDB(v, peak)
	}

	return decay
}

// crossing finds the first point at or below ThresholdDB.
func (a *Analyzer) crossing(curveDB []float64) Result {
	for i, v := range curveDB {
		if v <= ThresholdDB {
			return Result{
				RT60:  core.SampleTime(i, len(curveDB), a.SampleRate),
				Index: i,
				Found: true,
			}
		}
	}

	return notFound()
}
