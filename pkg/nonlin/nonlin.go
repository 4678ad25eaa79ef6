// Package nonlin defines the population-nonlinearity surface of the
// model core and the registry population kinds are constructed through.
// The core carries nonlinearities as opaque descriptions; evaluating
// them numerically is an engine's job.
package nonlin

import (
	"errors"
	"fmt"
)

// Nonlinearity is one population-scale computation in a model.
type Nonlinearity interface {
	// Kind returns the registry name the instance was built under.
	Kind() string
	// N returns the population's unit count, the inner dimension
	// encoders target and decoders read.
	N() int
}

// KindCustom names the built-in kind wrapping a caller-supplied step
// function.
const KindCustom = "custom"

// StepFunc is a caller-supplied population computation: one state
// vector in, one out.
type StepFunc func(x []float64) []float64

// Custom is a population stand-in around an arbitrary computation. The
// core only carries it; an engine decides when to call Fn.
type Custom struct {
	n  int
	fn StepFunc
}

// NewCustom wraps fn as a population of n units.
func NewCustom(n int, fn StepFunc) (*Custom, error) {
	if n < 1 {
		return nil, fmt.Errorf("custom nonlinearity needs at least one unit, got=%d", n)
	}
	if fn == nil {
		return nil, errors.New("custom nonlinearity function is required")
	}
	return &Custom{n: n, fn: fn}, nil
}

// Kind returns KindCustom.
func (c *Custom) Kind() string { return KindCustom }

// N returns the unit count.
func (c *Custom) N() int { return c.n }

// Fn returns the wrapped computation.
func (c *Custom) Fn() StepFunc { return c.fn }

func newCustomFromParams(params Params) (Nonlinearity, error) {
	n, ok := params.Int("n")
	if !ok {
		return nil, errors.New("custom nonlinearity params need an integer n")
	}
	fn, ok := params.Fn("func")
	if !ok {
		return nil, errors.New("custom nonlinearity params need a func")
	}
	return NewCustom(n, fn)
}
