package decay

import (
	"math"

	"github.com/Arr1738/SPIDAM-project/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Early/late boundaries for the clarity and definition indices, in
// milliseconds after the peak. 50 ms is used for speech, 80 ms for music.
const (
	SpeechBoundaryMs = 50.0
	MusicBoundaryMs  = 80.0
)

// EnergyMetrics are the early-to-late energy indices of a room response,
// measured from its absolute peak.
type EnergyMetrics struct {
	C50        float64 // clarity at 50 ms in dB
	C80        float64 // clarity at 80 ms in dB
	D50        float64 // definition at 50 ms, 0 to 1
	D80        float64 // definition at 80 ms, 0 to 1
	CenterTime float64 // energy centroid in seconds after the peak
	PeakIndex  int     // sample index of the absolute maximum
}

// EnergyMetrics computes clarity, definition and center time for buf.
// Energy before the peak is ignored. Clarity is regularized by the energy
// floor so it stays finite when either side of the boundary is silent.
func (a *Analyzer) EnergyMetrics(buf []float64) (EnergyMetrics, error) {
	if err := a.Validate(buf); err != nil {
		return EnergyMetrics{}, err
	}

	peak := peakIndex(buf)
	tail := buf[peak:]

	energy := make([]float64, len(tail))
	vecmath.MulBlock(energy, tail, tail)

	var total, moment float64
	for i, e := range energy {
		total += e
		moment += float64(i) * e
	}

	m := EnergyMetrics{PeakIndex: peak}
	m.C50, m.D50 = a.earlyLate(energy, total, SpeechBoundaryMs)
	m.C80, m.D80 = a.earlyLate(energy, total, MusicBoundaryMs)

	if total > 0 {
		m.CenterTime = moment / total / a.SampleRate
	}

	return m, nil
}

// earlyLate returns clarity (dB) and definition for a boundary in ms.
func (a *Analyzer) earlyLate(energy []float64, total, boundaryMs float64) (float64, float64) {
	boundary := int(math.Round(boundaryMs * 0.001 * a.SampleRate))
	boundary = min(max(boundary, 0), len(energy))

	var early float64
	for _, e := range energy[:boundary] {
		early += e
	}

	late := math.Max(total-early, 0)
	clarity := core.PowerRatioToDB(early+a.energyFloor, late+a.energyFloor)

	var definition float64
	if total > 0 {
		definition = early / total
	}

	return clarity, definition
}

func peakIndex(buf []float64) int {
	idx := 0
	peak := math.Abs(buf[0])

	for i, v := range buf[1:] {
		if av := math.Abs(v); av > peak {
			peak = av
			idx = i + 1
		}
	}

	return idx
}
