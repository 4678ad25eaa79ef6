package signal

import (
	"fmt"

	"github.com/heath/nengo/internal/shapes"
)

// View is a non-owning strided window onto a base signal's buffer. The
// element at index (i0, i1, ...) lives at buffer position
// offset + i0*elemstrides[0] + i1*elemstrides[1] + ... . Views are
// derived from signals through Reshape, Index and slicing; they are
// never constructed free-form.
type View struct {
	base        *Signal
	shape       []int
	elemstrides []int
	offset      int
}

// Base returns the signal owning the aliased buffer.
func (v *View) Base() *Signal { return v.base }

// Shape returns a copy of the view's dimensions.
func (v *View) Shape() []int { return shapes.Clone(v.shape) }

// Elemstrides returns a copy of the per-dimension element strides.
func (v *View) Elemstrides() []int { return shapes.Clone(v.elemstrides) }

// Offset returns the view's starting position in the base buffer.
func (v *View) Offset() int { return v.offset }

// Dtype returns the base signal's advisory element type.
func (v *View) Dtype() Dtype { return v.base.Dtype() }

// Size returns the number of elements the view addresses. A
// zero-dimensional view addresses exactly one.
func (v *View) Size() int { return shapes.Prod(v.shape) }

// Len returns the leading dimension. Zero-dimensional views have no
// length.
func (v *View) Len() (int, error) {
	if len(v.shape) == 0 {
		return 0, fmt.Errorf("%w: length of zero-dimensional view", ErrOutOfRange)
	}
	return v.shape[0], nil
}

// View returns the view itself, satisfying Ref.
func (v *View) View() *View { return v }

// Contiguous reports whether the view's elements occupy one dense
// row-major run of the base buffer.
func (v *View) Contiguous() bool {
	return shapes.IsContiguous(v.shape, v.elemstrides)
}

// FlatIndex resolves one element's per-dimension indices to its
// position in the base buffer. The index tuple must name every
// dimension; zero-dimensional views take no indices.
func (v *View) FlatIndex(indices ...int) (int, error) {
	if len(indices) != len(v.shape) {
		return 0, fmt.Errorf("%w: %d indices into %s", ErrOutOfRange,
			len(indices), shapes.Format(v.shape))
	}
	for d, ix := range indices {
		if ix < 0 || ix >= v.shape[d] {
			return 0, fmt.Errorf("%w: index %d on dimension %d of %s", ErrOutOfRange,
				ix, d, shapes.Format(v.shape))
		}
	}
	return shapes.FlatIndex(v.elemstrides, v.offset, indices), nil
}

// Reshape derives a view with the given dimensions over the same
// elements. Only contiguous views reshape; the elements must already
// form one dense run, because a strided reshape would need a copy.
func (v *View) Reshape(dims ...int) (*View, error) {
	for _, d := range dims {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension in %s", ErrShapeMismatch,
				shapes.Format(dims))
		}
	}
	if shapes.Prod(dims) != v.Size() {
		return nil, fmt.Errorf("%w: cannot reshape %s to %s", ErrShapeMismatch,
			shapes.Format(v.shape), shapes.Format(dims))
	}
	if !shapes.IsContiguous(v.shape, v.elemstrides) {
		return nil, fmt.Errorf("%w: reshape of strided view %s / %s", ErrUnsupported,
			shapes.Format(v.shape), shapes.Format(v.elemstrides))
	}
	return &View{
		base:        v.base,
		shape:       shapes.Clone(dims),
		elemstrides: shapes.ContiguousStrides(dims),
		offset:      v.offset,
	}, nil
}

// Transpose is not expressible without copying and always fails.
func (v *View) Transpose() (*View, error) {
	return nil, fmt.Errorf("%w: transpose", ErrUnsupported)
}

// Index derives a sub-view by applying one Index per leading dimension.
// Integer indices resolve a position and drop their dimension; slice
// indices narrow theirs in place. No data moves. With no indices the
// result is an identical view.
func (v *View) Index(indices ...Index) (*View, error) {
	if len(indices) > len(v.shape) {
		return nil, fmt.Errorf("%w: %d indices into %s", ErrOutOfRange,
			len(indices), shapes.Format(v.shape))
	}

	shape := shapes.Clone(v.shape)
	elemstrides := shapes.Clone(v.elemstrides)
	offset := v.offset
	var drop []int

	for d, ix := range indices {
		switch ix.kind {
		case indexAt:
			if ix.at < 0 || ix.at >= shape[d] {
				return nil, fmt.Errorf("%w: index %d on dimension %d of %s", ErrOutOfRange,
					ix.at, d, shapes.Format(v.shape))
			}
			offset += ix.at * elemstrides[d]
			drop = append(drop, d)
		case indexSlice:
			if ix.step != 1 {
				return nil, fmt.Errorf("%w: slice step %d", ErrUnsupported, ix.step)
			}
			start, stop := ix.bounds(shape[d])
			offset += start * elemstrides[d]
			if stop < start {
				stop = start
			}
			shape[d] = stop - start
		default:
			return nil, fmt.Errorf("%w: %v", ErrNotImplemented, ix.kind)
		}
	}

	// Dimensions resolved by integer indices disappear; removal runs
	// from the highest dimension down so positions stay valid.
	for i := len(drop) - 1; i >= 0; i-- {
		d := drop[i]
		shape = append(shape[:d], shape[d+1:]...)
		elemstrides = append(elemstrides[:d], elemstrides[d+1:]...)
	}

	return &View{
		base:        v.base,
		shape:       shape,
		elemstrides: elemstrides,
		offset:      offset,
	}, nil
}

func (v *View) String() string {
	return fmt.Sprintf("View(shape=%s, elemstrides=%s, offset=%d)",
		shapes.Format(v.shape), shapes.Format(v.elemstrides), v.offset)
}
