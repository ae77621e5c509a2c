// Package bank provides frequency band filter bank builders.
//
// A filter bank is a collection of band filters that partition the audio
// spectrum. Each band is a cascade of Butterworth highpass and lowpass
// sections stored as plain coefficients; [Band.Filter] runs the cascade
// forward and backward so the band signal keeps its timing, which is what
// decay-time measurements need.
//
// Two construction modes are supported:
//
//   - [ThreeBand] builds the low / mid / high split at [LowMidCrossover]
//     and [MidHighCrossover] (overridable with [WithCrossovers]). The low
//     band is lowpass-only and the high band is highpass-only.
//   - [Octave] builds standard octave or fractional-octave (1/3, 1/6, etc.)
//     banks with center frequencies per IEC 61260 (base-10 system).
//
// Octave band edge frequencies follow the IEC 61260 standard:
//
//	G = 10^(3/10)              (octave ratio)
//	f_center = 1000 * G^(k/N)  (for 1/N-octave, integer k)
//	f_upper  = f_center * G^(1/(2*N))
//	f_lower  = f_center * G^(-1/(2*N))
//
// Basic usage:
//
//	b, err := bank.ThreeBand(48000)
//	if err != nil {
//	    return err
//	}
//	for _, band := range b.Bands() {
//	    y := band.Filter(x, -1)
//	    ...
//	}
package bank
