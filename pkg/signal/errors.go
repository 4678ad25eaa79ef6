package signal

import "errors"

var (
	// ErrShapeMismatch reports a reshape whose target holds a different
	// number of elements than the view.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrUnsupported reports a view operation that cannot be expressed
	// without copying, such as reshaping a strided view or transposing.
	ErrUnsupported = errors.New("unsupported view operation")
	// ErrOutOfRange reports an index outside a dimension, or more
	// indices than the view has dimensions.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNotImplemented reports an index kind the calculus does not
	// handle.
	ErrNotImplemented = errors.New("index kind not implemented")
)
