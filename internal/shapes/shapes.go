// Package shapes provides the shape and stride arithmetic behind the
// signal view calculus.
package shapes

import (
	"fmt"
	"strings"
)

// Prod returns the element count implied by shape. An empty shape is a
// scalar and has one element.
func Prod(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// ContiguousStrides returns the canonical row-major element strides for
// shape: the last dimension is unit stride and each earlier dimension
// strides over the product of the dimensions after it.
func ContiguousStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// IsContiguous reports whether strides are exactly the canonical
// row-major strides for shape, meaning the viewed elements occupy one
// dense run that can be reshaped without copying.
func IsContiguous(shape, strides []int) bool {
	if len(shape) != len(strides) {
		return false
	}
	return Equal(strides, ContiguousStrides(shape))
}

// FlatIndex resolves a per-dimension index tuple to a position in the
// base buffer. Bounds are the caller's responsibility.
func FlatIndex(strides []int, offset int, index []int) int {
	pos := offset
	for i, ix := range index {
		pos += ix * strides[i]
	}
	return pos
}

// Equal reports whether a and b hold the same dimensions.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of dims, never aliasing the input.
func Clone(dims []int) []int {
	if len(dims) == 0 {
		return []int{}
	}
	return append([]int(nil), dims...)
}

// Format renders dims for error messages, e.g. "(2, 3)" or "()".
func Format(dims []int) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
