package sim

import "errors"

// ErrDimensionMismatch reports a weight matrix whose shape does not
// match the connected view and population.
var ErrDimensionMismatch = errors.New("dimension mismatch")
