// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters (Butterworth etc.).
//
// [FiltFilt] runs a cascade forward and then backward over a buffer, giving
// a zero-phase result: the output is not shifted in time relative to the
// input, which matters when the filtered signal feeds a decay-time
// measurement.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design.
package biquad
