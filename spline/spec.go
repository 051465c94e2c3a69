// Package spline encodes scalars as VSA vectors with a piecewise-linear
// spline over random knot vectors, and decodes them back by correlating
// against every knot.
//
// Basic usage:
//
//	spec, _ := spline.NewSpec(10000, []float64{-1, 1, 2, 4}, spline.WithSeed(42))
//	v, _ := spec.Encode(1.5, vsa.NewRand(1))
//	x, _ := spec.Decode(v, spline.DefaultZeroThresh) // ≈ 1.5
package spline

import (
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/interp"

	"github.com/Amansingh-afk/vsaspline/vsa"
)

// Spec is an immutable scalar spline: K strictly increasing knot
// scalars paired with K knot vectors of one dimension.
// It is safe for concurrent use.
type Spec struct {
	dims  int
	knots []float64
	vecs  []vsa.Vector
	index interp.PiecewiseLinear // knot scalar → knot position; unset when K == 1
}

// SpecOption configures NewSpec.
type SpecOption func(*specOptions)

type specOptions struct {
	rng *rand.Rand
}

// WithSeed makes every knot vector a deterministic function of seed and
// knot order.
func WithSeed(seed uint64) SpecOption {
	return func(o *specOptions) { o.rng = vsa.NewRand(seed) }
}

// WithRand draws the knot vectors from rng.
func WithRand(rng *rand.Rand) SpecOption {
	return func(o *specOptions) { o.rng = rng }
}

// NewSpec generates one bipolar atom per knot and pairs them positionally
// with knots. Knots must be finite and strictly increasing.
func NewSpec(dims int, knots []float64, opts ...SpecOption) (*Spec, error) {
	if dims <= 0 {
		return nil, &vsa.ErrInvalidDimension{Dimension: dims}
	}
	if err := validateKnots(knots); err != nil {
		return nil, err
	}
	var o specOptions
	for _, opt := range opts {
		opt(&o)
	}
	vecs := make([]vsa.Vector, len(knots))
	for i := range vecs {
		v, err := vsa.Atom(dims, o.rng)
		if err != nil {
			return nil, err
		}
		vecs[i] = v
	}
	return newSpec(dims, knots, vecs)
}

// FromVectors builds a Spec from caller-supplied knot vectors, which need
// not be bipolar or independent. The decode threshold assumes independent
// bipolar knots and is only approximate otherwise.
func FromVectors(knots []float64, vecs []vsa.Vector) (*Spec, error) {
	if err := validateKnots(knots); err != nil {
		return nil, err
	}
	if len(vecs) != len(knots) {
		return nil, &ErrKnotCount{Knots: len(knots), Vectors: len(vecs)}
	}
	dims := vecs[0].Dims()
	if dims <= 0 {
		return nil, &vsa.ErrInvalidDimension{Dimension: dims}
	}
	for _, v := range vecs[1:] {
		if v.Dims() != dims {
			return nil, &vsa.ErrDimensionMismatch{Expected: dims, Actual: v.Dims()}
		}
	}
	return newSpec(dims, knots, slices.Clone(vecs))
}

func newSpec(dims int, knots []float64, vecs []vsa.Vector) (*Spec, error) {
	s := &Spec{
		dims:  dims,
		knots: slices.Clone(knots),
		vecs:  vecs,
	}
	if len(knots) > 1 {
		positions := make([]float64, len(knots))
		for i := range positions {
			positions[i] = float64(i)
		}
		if err := s.index.Fit(s.knots, positions); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func validateKnots(knots []float64) error {
	if len(knots) == 0 {
		return ErrNoKnots
	}
	for i, k := range knots {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return &ErrNonFiniteKnot{Index: i, Value: k}
		}
		if i > 0 && k <= knots[i-1] {
			return &ErrKnotOrder{Index: i, Prev: knots[i-1], Next: k}
		}
	}
	return nil
}

func (s *Spec) Dims() int { return s.dims }

// Len returns the number of knots.
func (s *Spec) Len() int { return len(s.knots) }

// Knots returns a copy of the knot scalars.
func (s *Spec) Knots() []float64 { return slices.Clone(s.knots) }

// Knot returns knot scalar i. It panics if i is out of range.
func (s *Spec) Knot(i int) float64 { return s.knots[i] }

// KnotVector returns knot vector i. It panics if i is out of range.
func (s *Spec) KnotVector(i int) vsa.Vector { return s.vecs[i] }

// KnotVectors returns the knot vectors in knot order.
func (s *Spec) KnotVectors() []vsa.Vector { return slices.Clone(s.vecs) }
