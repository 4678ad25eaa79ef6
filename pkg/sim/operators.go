package sim

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/heath/nengo/pkg/nonlin"
	"github.com/heath/nengo/pkg/signal"
)

// Alpha is the gain applied by a transform or filter each step,
// either a scalar or a full matrix.
type Alpha struct {
	scalar float64
	matrix *mat.Dense
}

// ScalarAlpha returns a scalar gain.
func ScalarAlpha(v float64) Alpha {
	return Alpha{scalar: v}
}

// MatrixAlpha returns a matrix gain. The matrix is stored as passed,
// not copied.
func MatrixAlpha(m *mat.Dense) Alpha {
	return Alpha{matrix: m}
}

// IsMatrix reports whether the gain is a matrix.
func (a Alpha) IsMatrix() bool { return a.matrix != nil }

// Scalar returns the scalar gain, zero when the gain is a matrix.
func (a Alpha) Scalar() float64 { return a.scalar }

// Matrix returns the matrix gain, nil when the gain is a scalar.
func (a Alpha) Matrix() *mat.Dense { return a.matrix }

func (a Alpha) String() string {
	if a.matrix != nil {
		r, c := a.matrix.Dims()
		return fmt.Sprintf("Alpha(%dx%d)", r, c)
	}
	return fmt.Sprintf("Alpha(%g)", a.scalar)
}

// Encoder is a linear transform from a signal into a population. The
// weight matrix has one row per population unit and one column per
// signal element.
type Encoder struct {
	Sig     *signal.View
	Pop     nonlin.Nonlinearity
	Weights *mat.Dense
}

// Decoder is a linear transform from a population into a signal. The
// weight matrix has one row per signal element and one column per
// population unit.
type Decoder struct {
	Pop     nonlin.Nonlinearity
	Sig     *signal.View
	Weights *mat.Dense
}

// Transform adds Alpha times InSig into OutSig on every step.
type Transform struct {
	Alpha  Alpha
	InSig  *signal.View
	OutSig *signal.View
}

// Filter carries Alpha times the previous step's OldSig into NewSig,
// replacing its contents.
type Filter struct {
	Alpha  Alpha
	OldSig *signal.View
	NewSig *signal.View
}

func (f *Filter) String() string {
	return fmt.Sprintf("Filter{%s, %s, %s}", f.Alpha, f.OldSig, f.NewSig)
}

// SignalProbe requests that a view be recorded every DT seconds of
// simulated time.
type SignalProbe struct {
	id  uuid.UUID
	Sig *signal.View
	DT  float64
}

// ID returns the probe's identity.
func (p *SignalProbe) ID() uuid.UUID { return p.id }
