package audio

import (
	"math"

	"github.com/Arr1738/SPIDAM-project/dsp/core"
)

// Levels holds time-domain level statistics of a clip. dB values are
// relative to full scale and are -Inf for a silent clip.
type Levels struct {
	Peak      float64 // max |x|
	PeakIndex int
	PeakDB    float64
	RMS       float64
	RMSDB     float64
	DC        float64 // mean

	// CrestFactorDB is peak over RMS in dB; 0 for a silent clip.
	CrestFactorDB float64
}

// Levels computes peak, RMS, DC and crest factor in a single pass.
func (c *Clip) Levels() Levels {
	n := len(c.Samples)
	if n == 0 {
		return Levels{PeakDB: math.Inf(-1), RMSDB: math.Inf(-1)}
	}

	var lv Levels

	var sum, sumSq float64

	for i, v := range c.Samples {
		sum += v
		sumSq += v * v

		if av := math.Abs(v); av > lv.Peak {
			lv.Peak = av
			lv.PeakIndex = i
		}
	}

	lv.DC = sum / float64(n)
	lv.RMS = math.Sqrt(sumSq / float64(n))
	lv.PeakDB = core.LinearToDB(lv.Peak)
	lv.RMSDB = core.LinearToDB(lv.RMS)

	if lv.RMS > 0 {
		lv.CrestFactorDB = core.LinearToDB(lv.Peak / lv.RMS)
	}

	return lv
}
