// Package signal holds the buffer handles and the strided view calculus
// of the model-description core. A Signal owns a flat float64 buffer; a
// View is a non-owning (base, shape, elemstrides, offset) window onto
// one, derived only through reshape, indexing and slicing. Views never
// copy data, so an execution engine can map every view straight onto
// the base buffer it aliases.
package signal

import (
	"fmt"

	"github.com/google/uuid"
)

// Dtype describes the element type an engine should allocate for a
// signal. The description layer itself always stages float64 data; the
// dtype is advisory.
type Dtype int

const (
	// Float64 is the default element type.
	Float64 Dtype = iota
	// Float32 marks signals an engine may hold in single precision.
	Float32
)

func (d Dtype) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("dtype(%d)", int(d))
	}
}

// Signal owns a flat buffer of n scalar elements. It is its own base:
// its full view has shape (n), unit stride and zero offset. Constant
// signals carry a fixed initial value and are read-only by convention;
// the core does not police buffer writes.
type Signal struct {
	id       uuid.UUID
	dtype    Dtype
	buf      []float64
	constant bool
}

// New allocates a zero-valued signal of n elements with the default
// dtype.
func New(n int) (*Signal, error) {
	return NewWithDtype(n, Float64)
}

// NewWithDtype allocates a zero-valued signal of n elements.
func NewWithDtype(n int, dtype Dtype) (*Signal, error) {
	if n < 1 {
		return nil, fmt.Errorf("signal needs at least one element, got=%d", n)
	}
	return &Signal{
		id:    uuid.New(),
		dtype: dtype,
		buf:   make([]float64, n),
	}, nil
}

// NewConstant allocates a signal holding a fixed value. The value is
// copied; the signal's length is the value's length.
func NewConstant(value []float64) (*Signal, error) {
	if len(value) == 0 {
		return nil, fmt.Errorf("constant needs at least one element, got=%d", len(value))
	}
	return &Signal{
		id:       uuid.New(),
		dtype:    Float64,
		buf:      append([]float64(nil), value...),
		constant: true,
	}, nil
}

// ID returns the signal's stable identity.
func (s *Signal) ID() uuid.UUID { return s.id }

// Dtype returns the advisory element type.
func (s *Signal) Dtype() Dtype { return s.dtype }

// Len returns the number of elements.
func (s *Signal) Len() int { return len(s.buf) }

// Size returns the number of elements; for the one-dimensional base
// view it equals Len.
func (s *Signal) Size() int { return len(s.buf) }

// IsConstant reports whether the signal carries a fixed value and is
// read-only by convention.
func (s *Signal) IsConstant() bool { return s.constant }

// Buffer returns the owned flat buffer. Engines write simulation state
// through it; writing a constant's buffer is a usage error.
func (s *Signal) Buffer() []float64 { return s.buf }

// Value returns a copy of the current buffer contents. For constants
// this is the fixed value.
func (s *Signal) Value() []float64 {
	return append([]float64(nil), s.buf...)
}

// View returns the signal's full one-dimensional view.
func (s *Signal) View() *View {
	return &View{
		base:        s,
		shape:       []int{len(s.buf)},
		elemstrides: []int{1},
		offset:      0,
	}
}

// Reshape derives a view of this signal with the given dimensions.
func (s *Signal) Reshape(dims ...int) (*View, error) {
	return s.View().Reshape(dims...)
}

// Transpose is not expressible without copying and always fails.
func (s *Signal) Transpose() (*View, error) {
	return s.View().Transpose()
}

// Index derives a sub-view of this signal.
func (s *Signal) Index(indices ...Index) (*View, error) {
	return s.View().Index(indices...)
}

func (s *Signal) String() string {
	if s.constant {
		return fmt.Sprintf("Constant(n=%d)", len(s.buf))
	}
	return fmt.Sprintf("Signal(n=%d)", len(s.buf))
}

// Ref is any handle that resolves to a view of some signal's buffer.
// Both *Signal and *View qualify; operator factories accept either.
type Ref interface {
	View() *View
}

var (
	_ Ref = (*Signal)(nil)
	_ Ref = (*View)(nil)
)
