package vsa

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// SampleSpec names, for every output position, the source vector whose
// element is copied there by Add.
type SampleSpec []int

// AddOption configures Add.
type AddOption func(*addOptions)

type addOptions struct {
	spec    SampleSpec
	weights []float64
	rng     *rand.Rand
}

// WithSampleSpec pins the per-position source choice. Add becomes
// deterministic and ignores any weights.
func WithSampleSpec(spec SampleSpec) AddOption {
	return func(o *addOptions) { o.spec = spec }
}

// WithWeights sets the relative sampling weight of each source vector
// (default uniform). Weights must be non-negative with a positive total.
func WithWeights(weights ...float64) AddOption {
	return func(o *addOptions) { o.weights = weights }
}

// WithRand sets the generator used to draw the sample spec (default global).
func WithRand(rng *rand.Rand) AddOption {
	return func(o *addOptions) { o.rng = rng }
}

// NewSampleSpec draws dims independent source indices with probabilities
// proportional to weights.
func NewSampleSpec(dims int, weights []float64, rng *rand.Rand) (SampleSpec, error) {
	if err := checkDims(dims); err != nil {
		return nil, err
	}
	spec := make(SampleSpec, dims)
	if err := SampleInto(spec, weights, rng); err != nil {
		return nil, err
	}
	return spec, nil
}

// SampleInto fills dst with independent source indices drawn with
// probabilities proportional to weights.
func SampleInto(dst SampleSpec, weights []float64, rng *rand.Rand) error {
	if _, err := validateWeights(weights, len(weights)); err != nil {
		return err
	}
	if len(weights) == 1 {
		clear(dst)
		return nil
	}
	cat := distuv.NewCategorical(weights, orGlobal(rng))
	for i := range dst {
		dst[i] = int(cat.Rand())
	}
	return nil
}

// Add bundles vecs into one vector by per-element selection: output element j
// is element j of vecs[spec[j]]. Without WithSampleSpec a fresh spec is drawn
// from the weights, so the expected fraction of elements taken from each
// source equals its normalized weight.
//
// A single source is returned unchanged and its weights are not consulted.
func Add(vecs []Vector, opts ...AddOption) (Vector, error) {
	if len(vecs) == 0 {
		return Vector{}, ErrNoVectors
	}
	dims := vecs[0].Dims()
	if err := checkDims(dims); err != nil {
		return Vector{}, err
	}
	if err := requireSameDims(vecs...); err != nil {
		return Vector{}, err
	}

	var o addOptions
	for _, opt := range opts {
		opt(&o)
	}

	spec := o.spec
	if spec == nil {
		if len(vecs) == 1 {
			return vecs[0], nil
		}
		w := o.weights
		if w == nil {
			w = uniformWeights(len(vecs))
		}
		if _, err := validateWeights(w, len(vecs)); err != nil {
			return Vector{}, err
		}
		var err error
		if spec, err = NewSampleSpec(dims, w, o.rng); err != nil {
			return Vector{}, err
		}
	} else if len(spec) != dims {
		return Vector{}, &ErrDimensionMismatch{Expected: dims, Actual: len(spec)}
	}

	out := make([]float64, dims)
	for j, k := range spec {
		if k < 0 || k >= len(vecs) {
			return Vector{}, ErrSampleIndex
		}
		out[j] = vecs[k].data[j]
	}
	return Vector{data: out}, nil
}
