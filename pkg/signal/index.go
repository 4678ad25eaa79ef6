package signal

import "fmt"

type indexKind int

const (
	indexInvalid indexKind = iota
	indexAt
	indexSlice
)

func (k indexKind) String() string {
	switch k {
	case indexInvalid:
		return "invalid index"
	case indexAt:
		return "integer index"
	case indexSlice:
		return "slice index"
	default:
		return fmt.Sprintf("index kind %d", int(k))
	}
}

// Index selects along one dimension of a view: a single position built
// with At, or a slice built with Range, RangeStep or All. The zero
// value is invalid and fails at application time.
type Index struct {
	kind     indexKind
	at       int
	start    int
	stop     int
	step     int
	hasStart bool
	hasStop  bool
}

// At selects position i along a dimension; the dimension disappears
// from the derived view. Positions outside [0, dim) fail; negative
// positions do not wrap.
func At(i int) Index { return Index{kind: indexAt, at: i} }

// Range selects the half-open span [start, stop) along a dimension.
// Negative endpoints count back from the dimension's end; endpoints
// beyond it clamp.
func Range(start, stop int) Index {
	return Index{kind: indexSlice, start: start, stop: stop, step: 1, hasStart: true, hasStop: true}
}

// RangeStep is Range with an explicit step. Only unit steps can be
// expressed as views, so any other step fails at application time.
func RangeStep(start, stop, step int) Index {
	return Index{kind: indexSlice, start: start, stop: stop, step: step, hasStart: true, hasStop: true}
}

// All selects a whole dimension unchanged.
func All() Index { return Index{kind: indexSlice, step: 1} }

// bounds resolves the slice endpoints against a dimension of length n
// by standard slice normalization: negative endpoints wrap once, then
// both clamp into [0, n].
func (ix Index) bounds(n int) (start, stop int) {
	start = 0
	if ix.hasStart {
		start = ix.start
		if start < 0 {
			start += n
		}
	}
	if start < 0 {
		start = 0
	} else if start > n {
		start = n
	}

	stop = n
	if ix.hasStop {
		stop = ix.stop
		if stop < 0 {
			stop += n
		}
	}
	if stop < 0 {
		stop = 0
	} else if stop > n {
		stop = n
	}
	return start, stop
}
