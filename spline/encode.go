package spline

import (
	"math"
	"math/rand/v2"

	"github.com/Amansingh-afk/vsaspline/vsa"
)

// Index maps x onto the continuous knot scale on which knot k sits at k.
// Values outside the knot range clamp to the nearest end; there is no
// extrapolation.
func (s *Spec) Index(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return x
	case len(s.knots) == 1:
		return 0
	}
	return s.index.Predict(x)
}

// Encode returns the VSA encoding of x.
//
// On a knot (including any clamped input) the knot vector itself is returned,
// without sampling noise. Between knots lo and hi the result bundles the two
// knot vectors with weights (1-offset, offset), so two calls with the same x
// generally return different vectors at the same expected similarity to each
// neighbouring knot.
func (s *Spec) Encode(x float64, rng *rand.Rand) (vsa.Vector, error) {
	return s.encode(x, rng, nil)
}

// encode draws into scratch when it is non-nil; scratch must have length s.dims.
func (s *Spec) encode(x float64, rng *rand.Rand, scratch vsa.SampleSpec) (vsa.Vector, error) {
	if math.IsNaN(x) {
		return vsa.Vector{}, ErrNaNInput
	}
	i := s.Index(x)
	lo, hi := math.Floor(i), math.Ceil(i)
	if lo == hi {
		return s.vecs[int(lo)], nil
	}

	offset := i - lo
	pair := []vsa.Vector{s.vecs[int(lo)], s.vecs[int(hi)]}
	weights := []float64{1 - offset, offset}
	if scratch == nil {
		return vsa.Add(pair, vsa.WithWeights(weights...), vsa.WithRand(rng))
	}
	if err := vsa.SampleInto(scratch, weights, rng); err != nil {
		return vsa.Vector{}, err
	}
	return vsa.Add(pair, vsa.WithSampleSpec(scratch))
}
