// Package design provides digital IIR filter coefficient designers.
//
// The functions in this package produce biquad coefficients consumable by
// dsp/filter/biquad for runtime processing: RBJ-style second-order lowpass
// and highpass sections, and Butterworth cascades of arbitrary order built
// from them.
//
// Designers never fail loudly. Parameters outside the valid range (cutoff
// not strictly between 0 and Nyquist, non-positive order) yield zero-value
// coefficients or a nil cascade, and callers are expected to validate first.
package design
