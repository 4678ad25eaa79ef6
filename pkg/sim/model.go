// Package sim holds the model-description core: an append-only
// container of signals, populations, connection weights, and
// per-step operators. A model only describes a simulation; stepping
// it is an engine concern.
package sim

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/heath/nengo/pkg/dists"
	"github.com/heath/nengo/pkg/log"
	"github.com/heath/nengo/pkg/nonlin"
	"github.com/heath/nengo/pkg/signal"
)

const (
	// DefaultDT is the simulation step, in seconds, used when
	// Options.DT is zero.
	DefaultDT = 0.001

	// DefaultSeed seeds the model RNG when Options leaves both Seed
	// and RNG unset.
	DefaultSeed = 12345
)

// Options configures a Model. The zero value selects the defaults.
type Options struct {
	// DT is the simulation step in seconds. Zero selects DefaultDT.
	DT float64

	// Seed seeds the model RNG. Zero selects DefaultSeed. Ignored
	// when RNG is set.
	Seed uint64

	// RNG supplies a caller-owned generator instead of a seeded one.
	RNG *rand.Rand
}

// Model is an append-only description of a simulation. Every factory
// method appends exactly one component and returns it. Default
// weight draws consume the model's single RNG in build order, so the
// same seed and build sequence reproduce the same weights.
//
// A model is built, then read: once handed to an engine it should be
// treated as frozen. Nothing enforces the transition; components are
// never removed or reordered either way. Building happens from one
// goroutine; the factory methods are not safe for concurrent use.
type Model struct {
	dt  float64
	rng *rand.Rand

	signals        []*signal.Signal
	nonlinearities []nonlin.Nonlinearity
	encoders       []*Encoder
	decoders       []*Decoder
	transforms     []*Transform
	filters        []*Filter
	signalProbes   []*SignalProbe
}

// New returns an empty model.
func New(opts Options) (*Model, error) {
	if opts.DT < 0 {
		return nil, fmt.Errorf("dt must not be negative, got=%g", opts.DT)
	}
	dt := opts.DT
	if dt == 0 {
		dt = DefaultDT
	}
	rng := opts.RNG
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	return &Model{dt: dt, rng: rng}, nil
}

// DT returns the simulation step in seconds.
func (m *Model) DT() float64 { return m.dt }

// RNG returns the model's generator. Drawing from it advances the
// model's deterministic sequence.
func (m *Model) RNG() *rand.Rand { return m.rng }

// Signal appends a fresh zero signal of n elements.
func (m *Model) Signal(n int) (*signal.Signal, error) {
	s, err := signal.New(n)
	if err != nil {
		return nil, err
	}
	m.signals = append(m.signals, s)
	log.Debug3f("added %s", s)
	return s, nil
}

// Constant appends a signal holding a fixed value.
func (m *Model) Constant(value []float64) (*signal.Signal, error) {
	s, err := signal.NewConstant(value)
	if err != nil {
		return nil, err
	}
	m.signals = append(m.signals, s)
	log.Debug3f("added %s", s)
	return s, nil
}

// SignalProbe appends a probe recording sig every dt seconds.
func (m *Model) SignalProbe(sig signal.Ref, dt float64) (*SignalProbe, error) {
	if sig == nil {
		return nil, errors.New("probe signal is required")
	}
	if dt < 0 {
		return nil, fmt.Errorf("probe dt must not be negative, got=%g", dt)
	}
	p := &SignalProbe{id: uuid.New(), Sig: sig.View(), DT: dt}
	m.signalProbes = append(m.signalProbes, p)
	log.Debug3f("added probe %s on %s", p.id, p.Sig)
	return p, nil
}

// Nonlinearity builds a population of the registered kind and
// appends it. Unknown kinds fail with an error naming the requested
// kind.
func (m *Model) Nonlinearity(kind string, params nonlin.Params) (nonlin.Nonlinearity, error) {
	pop, err := nonlin.New(kind, params)
	if err != nil {
		return nil, err
	}
	m.nonlinearities = append(m.nonlinearities, pop)
	log.Debug3f("added %s nonlinearity with %d units", pop.Kind(), pop.N())
	return pop, nil
}

// Encoder appends a connection from sig into pop. A nil weights
// matrix draws standard-normal weights of shape (pop units, signal
// size) from the model RNG; an explicit matrix must already have
// that shape and is stored as passed.
func (m *Model) Encoder(sig signal.Ref, pop nonlin.Nonlinearity, weights *mat.Dense) (*Encoder, error) {
	if sig == nil {
		return nil, errors.New("encoder signal is required")
	}
	if pop == nil {
		return nil, errors.New("encoder population is required")
	}
	view := sig.View()
	weights, err := m.connectionWeights(weights, pop.N(), view.Size())
	if err != nil {
		return nil, err
	}
	enc := &Encoder{Sig: view, Pop: pop, Weights: weights}
	m.encoders = append(m.encoders, enc)
	r, c := weights.Dims()
	log.Debug3f("added encoder with %dx%d weights", r, c)
	return enc, nil
}

// Decoder appends a connection from pop into sig. A nil weights
// matrix draws standard-normal weights of shape (signal size, pop
// units) from the model RNG; an explicit matrix must already have
// that shape and is stored as passed.
func (m *Model) Decoder(pop nonlin.Nonlinearity, sig signal.Ref, weights *mat.Dense) (*Decoder, error) {
	if pop == nil {
		return nil, errors.New("decoder population is required")
	}
	if sig == nil {
		return nil, errors.New("decoder signal is required")
	}
	view := sig.View()
	weights, err := m.connectionWeights(weights, view.Size(), pop.N())
	if err != nil {
		return nil, err
	}
	dec := &Decoder{Pop: pop, Sig: view, Weights: weights}
	m.decoders = append(m.decoders, dec)
	r, c := weights.Dims()
	log.Debug3f("added decoder with %dx%d weights", r, c)
	return dec, nil
}

// Transform appends an operator adding alpha times insig into outsig
// each step. View shapes are not checked; compatibility is an engine
// concern.
func (m *Model) Transform(alpha Alpha, insig, outsig signal.Ref) (*Transform, error) {
	if insig == nil {
		return nil, errors.New("transform input signal is required")
	}
	if outsig == nil {
		return nil, errors.New("transform output signal is required")
	}
	tr := &Transform{Alpha: alpha, InSig: insig.View(), OutSig: outsig.View()}
	m.transforms = append(m.transforms, tr)
	log.Debug3f("added transform %s: %s -> %s", tr.Alpha, tr.InSig, tr.OutSig)
	return tr, nil
}

// Filter appends an operator carrying alpha times the previous
// step's oldsig into newsig. View shapes are not checked.
func (m *Model) Filter(alpha Alpha, oldsig, newsig signal.Ref) (*Filter, error) {
	if oldsig == nil {
		return nil, errors.New("filter old signal is required")
	}
	if newsig == nil {
		return nil, errors.New("filter new signal is required")
	}
	f := &Filter{Alpha: alpha, OldSig: oldsig.View(), NewSig: newsig.View()}
	m.filters = append(m.filters, f)
	log.Debug3f("added %s", f)
	return f, nil
}

// Signals returns the signals in append order.
func (m *Model) Signals() []*signal.Signal {
	return append([]*signal.Signal(nil), m.signals...)
}

// Nonlinearities returns the populations in append order.
func (m *Model) Nonlinearities() []nonlin.Nonlinearity {
	return append([]nonlin.Nonlinearity(nil), m.nonlinearities...)
}

// Encoders returns the encoders in append order.
func (m *Model) Encoders() []*Encoder {
	return append([]*Encoder(nil), m.encoders...)
}

// Decoders returns the decoders in append order.
func (m *Model) Decoders() []*Decoder {
	return append([]*Decoder(nil), m.decoders...)
}

// Transforms returns the transforms in append order.
func (m *Model) Transforms() []*Transform {
	return append([]*Transform(nil), m.transforms...)
}

// Filters returns the filters in append order.
func (m *Model) Filters() []*Filter {
	return append([]*Filter(nil), m.filters...)
}

// SignalProbes returns the probes in append order.
func (m *Model) SignalProbes() []*SignalProbe {
	return append([]*SignalProbe(nil), m.signalProbes...)
}

// connectionWeights resolves the weight matrix for a connection
// needing the given shape, drawing defaults from the model RNG.
func (m *Model) connectionWeights(weights *mat.Dense, rows, cols int) (*mat.Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("connection needs a non-empty view and population, got=%dx%d", rows, cols)
	}
	if weights == nil {
		return dists.StandardGaussian().Sample(m.rng, rows, cols)
	}
	r, c := weights.Dims()
	if r != rows || c != cols {
		return nil, fmt.Errorf("%w: weights got=%dx%d want=%dx%d", ErrDimensionMismatch, r, c, rows, cols)
	}
	return weights, nil
}
