// Package decay estimates reverberation time (RT60) from a mono recording
// of a decaying sound field.
//
// The estimate follows the Schroeder backward-integration method:
//
//  1. square every sample to get instantaneous energy;
//  2. integrate the energy backwards from the end of the buffer, so each
//     point holds the energy still to come;
//  3. add a small numerical floor ([DefaultEnergyFloor]) so silent tails
//     never reach log(0);
//  4. normalize to the curve maximum and convert to dB, giving a
//     non-increasing curve that starts at exactly 0 dB;
//  5. place the curve on a time axis running from 0 to the buffer duration
//     inclusive;
//  6. report the time of the first point at or below [ThresholdDB].
//
// RT60 is read directly off the curve and never extrapolated. A decay that
// does not reach -60 dB inside the buffer yields a [Result] with Found set
// to false; this is an ordinary outcome, not an error. Errors are reserved
// for contract violations (empty buffer, invalid sample rate, NaN or Inf
// samples) and all of them match [ErrContractViolation] via errors.Is.
//
// For diagnostics, [Curve] exposes the dB curve and its time axis together
// with the ISO 3382 style regression estimates EDT, T20 and T30.
// [Analyzer.EnergyMetrics] adds the early-to-late indices C50, C80, D50,
// D80 and center time.
//
// # Usage
//
//	a := decay.NewAnalyzer(48000)
//	res, err := a.Estimate(samples)
//	if err != nil {
//	    return err
//	}
//	if res.Found {
//	    fmt.Printf("RT60 = %.2f s\n", res.RT60)
//	}
package decay
