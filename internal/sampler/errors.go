package sampler

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned before any sampling happens when the
// arguments cannot describe a sample sequence.
var ErrInvalidArgument = errors.New("invalid argument")

// ComputationError reports the sample at which the sampled function failed.
// The function's own error is available through errors.Is and errors.As.
type ComputationError struct {
	Index  int
	Sample float64
	Err    error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("sample %d (x=%v): %v", e.Index, e.Sample, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}
