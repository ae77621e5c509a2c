package decay

import (
	"errors"
	"fmt"
)

// ErrContractViolation is matched by every input-validation error returned
// from this package.
var ErrContractViolation = errors.New("decay: contract violation")

// Errors returned by Analyzer methods.
var (
	ErrEmptyBuffer       = fmt.Errorf("%w: buffer is empty", ErrContractViolation)
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be positive and finite", ErrContractViolation)
	ErrNonFiniteSample   = fmt.Errorf("%w: sample is NaN or Inf", ErrContractViolation)
	ErrEnergyOverflow    = fmt.Errorf("%w: total signal energy overflows float64", ErrContractViolation)
)
