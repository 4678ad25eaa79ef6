// Package dists provides the probability distributions used to seed
// model parameters such as encoders and decoders.
package dists

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution generates matrices of random samples.
type Distribution interface {
	// Sample draws an n by d matrix whose rows are independent samples.
	// A nil rng falls back to a freshly seeded generator.
	Sample(rng *rand.Rand, n, d int) (*mat.Dense, error)
}

// Uniform samples uniformly from [Low, High). The bounds may be given
// in either order. In integer mode every sample is a whole number
// drawn from [Low, High).
type Uniform struct {
	low, high float64
	integer   bool
}

// NewUniform returns a continuous uniform distribution over [low, high).
func NewUniform(low, high float64) Uniform {
	return Uniform{low: low, high: high}
}

// NewIntegerUniform returns a uniform distribution over the integers
// in [low, high).
func NewIntegerUniform(low, high int) Uniform {
	return Uniform{low: float64(low), high: float64(high), integer: true}
}

// Low returns the lower bound.
func (u Uniform) Low() float64 { return u.low }

// High returns the upper bound.
func (u Uniform) High() float64 { return u.high }

// Integer reports whether samples are restricted to whole numbers.
func (u Uniform) Integer() bool { return u.integer }

// Sample draws n rows of d uniform variates.
func (u Uniform) Sample(rng *rand.Rand, n, d int) (*mat.Dense, error) {
	if err := checkSampleShape(n, d); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	out := mat.NewDense(n, d, nil)
	if u.integer {
		low, high := int(u.low), int(u.high)
		if high <= low {
			return nil, fmt.Errorf("integer uniform needs high > low, got low=%d high=%d", low, high)
		}
		span := high - low
		for i := 0; i < n; i++ {
			row := out.RawRowView(i)
			for j := range row {
				row[j] = float64(low + rng.IntN(span))
			}
		}
		return out, nil
	}
	src := distuv.Uniform{Min: u.low, Max: u.high, Src: rng}
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		for j := range row {
			row[j] = src.Rand()
		}
	}
	return out, nil
}

// Gaussian samples from a normal distribution.
type Gaussian struct {
	mean, std float64
}

// NewGaussian returns a Gaussian with the given mean and standard
// deviation. The standard deviation must be positive.
func NewGaussian(mean, std float64) (Gaussian, error) {
	if std <= 0 {
		return Gaussian{}, fmt.Errorf("standard deviation must be positive, got=%g", std)
	}
	return Gaussian{mean: mean, std: std}, nil
}

// StandardGaussian returns the unit normal distribution.
func StandardGaussian() Gaussian {
	return Gaussian{std: 1}
}

// Mean returns the mean.
func (g Gaussian) Mean() float64 { return g.mean }

// Std returns the standard deviation.
func (g Gaussian) Std() float64 { return g.std }

// Sample draws n rows of d normal variates.
func (g Gaussian) Sample(rng *rand.Rand, n, d int) (*mat.Dense, error) {
	if err := checkSampleShape(n, d); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	src := distuv.Normal{Mu: g.mean, Sigma: g.std, Src: rng}
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		for j := range row {
			row[j] = src.Rand()
		}
	}
	return out, nil
}

// UniformHypersphere samples points uniformly from the volume of the
// unit hypersphere, or from its surface when constructed with surface
// set.
type UniformHypersphere struct {
	surface bool
}

// NewUniformHypersphere returns a hypersphere distribution. With
// surface set, samples lie on the unit sphere instead of inside it.
func NewUniformHypersphere(surface bool) UniformHypersphere {
	return UniformHypersphere{surface: surface}
}

// Surface reports whether samples are confined to the sphere surface.
func (u UniformHypersphere) Surface() bool { return u.surface }

// Sample draws n points in the d-dimensional unit ball or on its
// surface. Each row has norm at most one.
func (u UniformHypersphere) Sample(rng *rand.Rand, n, d int) (*mat.Dense, error) {
	if err := checkSampleShape(n, d); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: rng}
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		for j := range row {
			row[j] = norm.Rand()
		}
		scale := 1 / floats.Norm(row, 2)
		if !u.surface {
			scale *= math.Pow(rng.Float64(), 1/float64(d))
		}
		floats.Scale(scale, row)
	}
	return out, nil
}

// PDF samples from a discrete distribution given by points x and
// their probabilities p, interpolating linearly between neighboring
// points.
type PDF struct {
	x, cdf []float64
}

// NewPDF returns a PDF over the points x with probabilities p. The
// probabilities must sum to one.
func NewPDF(x, p []float64) (*PDF, error) {
	if len(x) == 0 {
		return nil, errors.New("pdf needs at least one point")
	}
	if len(x) != len(p) {
		return nil, fmt.Errorf("pdf needs one probability per point, got=%d want=%d", len(p), len(x))
	}
	if sum := floats.Sum(p); math.Abs(sum-1) > 1e-8 {
		return nil, fmt.Errorf("probabilities must sum to one, got=%g", sum)
	}
	// Treat each probability as the mass centered on its point, so the
	// cumulative value at x[i] sits halfway through p[i].
	cdf := floats.CumSum(make([]float64, len(p)), p)
	for i := range cdf {
		cdf[i] -= p[i] / 2
	}
	return &PDF{x: append([]float64(nil), x...), cdf: cdf}, nil
}

// Sample draws n rows of d variates by inverting the cumulative
// distribution.
func (f *PDF) Sample(rng *rand.Rand, n, d int) (*mat.Dense, error) {
	if err := checkSampleShape(n, d); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		for j := range row {
			row[j] = interp(rng.Float64(), f.cdf, f.x)
		}
	}
	return out, nil
}

// Choice samples rows from a fixed set of options, optionally
// weighted.
type Choice struct {
	options *mat.Dense
	cdf     []float64
}

// NewChoice returns a distribution over the rows of options. A nil
// weights slice weighs every row equally; otherwise weights must hold
// one non-negative entry per row and sum to a positive value.
func NewChoice(options *mat.Dense, weights []float64) (*Choice, error) {
	if options == nil {
		return nil, errors.New("choice needs at least one option")
	}
	rows, _ := options.Dims()
	if weights == nil {
		weights = make([]float64, rows)
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != rows {
		return nil, fmt.Errorf("choice needs one weight per option, got=%d want=%d", len(weights), rows)
	}
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("weights must be non-negative, got=%g", w)
		}
	}
	sum := floats.Sum(weights)
	if sum <= 0 {
		return nil, errors.New("weights must sum to a positive value")
	}
	cdf := floats.CumSum(make([]float64, len(weights)), weights)
	floats.Scale(1/sum, cdf)
	return &Choice{options: mat.DenseCopyOf(options), cdf: cdf}, nil
}

// Sample draws n rows from the options. The requested dimensionality
// must match the width of the option rows.
func (c *Choice) Sample(rng *rand.Rand, n, d int) (*mat.Dense, error) {
	if err := checkSampleShape(n, d); err != nil {
		return nil, err
	}
	_, cols := c.options.Dims()
	if d != cols {
		return nil, fmt.Errorf("choice options have dimensionality %d, got=%d", cols, d)
	}
	rng = ensureRNG(rng)
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		k := sort.SearchFloat64s(c.cdf, rng.Float64())
		// Roundoff in the cumulative sum can leave the last entry shy
		// of one.
		if k >= len(c.cdf) {
			k = len(c.cdf) - 1
		}
		out.SetRow(i, c.options.RawRowView(k))
	}
	return out, nil
}

// SqrtBeta samples the square root of a beta-distributed variable
// with shape parameters m/2 and n/2.
type SqrtBeta struct {
	n, m float64
}

// NewSqrtBeta returns a square-root beta distribution. Both shape
// parameters must be positive.
func NewSqrtBeta(n, m float64) (SqrtBeta, error) {
	if n <= 0 || m <= 0 {
		return SqrtBeta{}, fmt.Errorf("beta shape parameters must be positive, got n=%g m=%g", n, m)
	}
	return SqrtBeta{n: n, m: m}, nil
}

// Sample draws n rows of d square-root beta variates.
func (s SqrtBeta) Sample(rng *rand.Rand, n, d int) (*mat.Dense, error) {
	if err := checkSampleShape(n, d); err != nil {
		return nil, err
	}
	rng = ensureRNG(rng)
	src := distuv.Beta{Alpha: s.m / 2, Beta: s.n / 2, Src: rng}
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		row := out.RawRowView(i)
		for j := range row {
			row[j] = math.Sqrt(src.Rand())
		}
	}
	return out, nil
}

// Prob returns the value of the probability density at x.
func (s SqrtBeta) Prob(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	// Direct form of the density; routing through the beta density at
	// x*x would go 0 times Inf at the origin for m <= 1.
	b := mathext.Beta(0.5*s.n, 0.5*s.m)
	return 2 / b * math.Pow(x, s.m-1) * math.Pow(1-x*x, 0.5*s.n-1)
}

// CDF returns the cumulative probability at x.
func (s SqrtBeta) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	src := distuv.Beta{Alpha: s.m / 2, Beta: s.n / 2}
	return src.CDF(x * x)
}

// SubvectorLength is the distribution of the norm of a subvector of a
// uniformly sampled unit vector.
type SubvectorLength struct {
	SqrtBeta
	dimensions    int
	subdimensions int
}

// NewSubvectorLength returns the length distribution for a
// subdimensions-wide slice of a unit vector with the given number of
// dimensions.
func NewSubvectorLength(dimensions, subdimensions int) (SubvectorLength, error) {
	if subdimensions < 1 {
		return SubvectorLength{}, fmt.Errorf("subdimensions must be at least one, got=%d", subdimensions)
	}
	if dimensions <= subdimensions {
		return SubvectorLength{}, fmt.Errorf("dimensions must exceed subdimensions, got dimensions=%d subdimensions=%d", dimensions, subdimensions)
	}
	sb, err := NewSqrtBeta(float64(dimensions-subdimensions), float64(subdimensions))
	if err != nil {
		return SubvectorLength{}, err
	}
	return SubvectorLength{SqrtBeta: sb, dimensions: dimensions, subdimensions: subdimensions}, nil
}

// Dimensions returns the dimensionality of the full vector.
func (s SubvectorLength) Dimensions() int { return s.dimensions }

// Subdimensions returns the width of the measured subvector.
func (s SubvectorLength) Subdimensions() int { return s.subdimensions }

func checkSampleShape(n, d int) error {
	if n < 1 {
		return fmt.Errorf("sample count must be at least one, got=%d", n)
	}
	if d < 1 {
		return fmt.Errorf("sample dimensionality must be at least one, got=%d", d)
	}
	return nil
}

func ensureRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed))
}

// interp evaluates the piecewise linear curve through the knots
// (xs, ys) at x, clamping to the end values outside the knots.
func interp(x float64, xs, ys []float64) float64 {
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	j := sort.SearchFloat64s(xs, x)
	t := (x - xs[j-1]) / (xs[j] - xs[j-1])
	return ys[j-1] + t*(ys[j]-ys[j-1])
}

var (
	_ Distribution = Uniform{}
	_ Distribution = Gaussian{}
	_ Distribution = UniformHypersphere{}
	_ Distribution = (*PDF)(nil)
	_ Distribution = (*Choice)(nil)
	_ Distribution = SqrtBeta{}
	_ Distribution = SubvectorLength{}
)
