package decay

import "math"

// DefaultEnergyFloor is added to every point of the decay curve before the
// dB conversion. It is a numerical guard, not a noise-floor model.
const DefaultEnergyFloor = 1e-10

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithEnergyFloor overrides [DefaultEnergyFloor]. Non-positive or
// non-finite values are ignored.
func WithEnergyFloor(floor float64) Option {
	return func(a *Analyzer) {
		if floor > 0 && !math.IsInf(floor, 0) && !math.IsNaN(floor) {
			a.energyFloor = floor
		}
	}
}
