package linalgbench

import (
	"errors"
	"fmt"
)

var (
	// ErrNumericalFailure is returned when the linear-algebra backend cannot
	// complete a call for the given input (singular matrix, failed
	// factorization, unconverged iteration, or a panic raised by the library).
	ErrNumericalFailure = errors.New("linalgbench: numerical failure")

	// ErrResourceExhaustion is returned when the estimated working set of a
	// size exceeds Config.MemoryBudget.
	ErrResourceExhaustion = errors.New("linalgbench: resource exhaustion")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("linalgbench: invalid config")
)

// numericalf wraps ErrNumericalFailure with a kernel-specific message.
func numericalf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNumericalFailure, fmt.Sprintf(format, args...))
}
