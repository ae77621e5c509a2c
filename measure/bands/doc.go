// Package bands estimates RT60 separately in frequency bands.
//
// The default analysis splits the signal into three bands at
// [bank.LowMidCrossover] and [bank.MidHighCrossover]:
//
//	low  [0, 500) Hz
//	mid  [500, 2000) Hz
//	high [2000 Hz, Nyquist)
//
// Each band is extracted with a zero-phase (forward-backward) Butterworth
// filter so the decay keeps its timing, and then measured with
// [decay.Analyzer]. Bands are independent; a band whose decay is not found
// never affects the others. [WithOctaveBands] switches to an IEC 61260
// octave or fractional-octave bank.
//
// Band filters ring. Every [BandResult] carries FilterRT60, the RT60 of the
// band filter's own zero-phase impulse response, and [BandResult.Reliable]
// flags estimates that are not clearly longer than that ringing.
package bands
