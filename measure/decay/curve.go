package decay

// Curve is a dB decay curve on its time axis, as produced by
// [Analyzer.Curve]. Times and DB have equal length.
type Curve struct {
	Times    []float64 // seconds, 0 to buffer duration inclusive
	DB       []float64 // dB relative to the curve maximum
	Crossing Result    // first point at or below ThresholdDB
}

// TimeAt returns the time of the first curve point at or below levelDB.
func (c Curve) TimeAt(levelDB float64) (float64, bool) {
	for i, v := range c.DB {
		if v <= levelDB && i < len(c.Times) {
			return c.Times[i], true
		}
	}

	return 0, false
}

// EDT returns the early decay time: the 0 to -10 dB slope extrapolated to
// 60 dB.
func (c Curve) EDT() (float64, bool) { return c.ReverbTime(0, -10) }

// T20 returns the -5 to -25 dB slope extrapolated to 60 dB.
func (c Curve) T20() (float64, bool) { return c.ReverbTime(-5, -25) }

// T30 returns the -5 to -35 dB slope extrapolated to 60 dB.
func (c Curve) T30() (float64, bool) { return c.ReverbTime(-5, -35) }

// ReverbTime fits a least-squares line to the curve between the first
// points at or below startDB and endDB and extrapolates it to a 60 dB
// decay. It reports false when the curve does not span the range or does
// not decay.
func (c Curve) ReverbTime(startDB, endDB float64) (float64, bool) {
	if len(c.DB) != len(c.Times) || len(c.DB) < 2 || endDB >= startDB {
		return 0, false
	}

	startIdx := -1
	endIdx := -1

	for i, v := range c.DB {
		if startIdx < 0 && v <= startDB {
			startIdx = i
		}

		if startIdx >= 0 && v <= endDB {
			endIdx = i
			break
		}
	}

	if startIdx < 0 || endIdx <= startIdx {
		return 0, false
	}

	var sumX, sumY, sumXX, sumXY float64

	for i := startIdx; i <= endIdx; i++ {
		x := c.Times[i] - c.Times[startIdx]
		y := c.DB[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumXY += x * y
	}

	nf := float64(endIdx - startIdx + 1)

	denom := nf*sumXX - sumX*sumX
	if denom == 0 {
		return 0, false
	}

	// dB per second
	slope := (nf*sumXY - sumX*sumY) / denom
	if slope >= 0 {
		return 0, false
	}

	return ThresholdDB / slope, true
}
