package spline

import (
	"math"

	"github.com/viterin/vek"

	"github.com/Amansingh-afk/vsaspline/vsa"
)

// DefaultZeroThresh is the default decode threshold, in standard deviations
// of the chance correlation between independent bipolar vectors.
const DefaultZeroThresh = 4.0

// Threshold converts zeroThresh (in standard deviations) to an absolute dot
// product cutoff. sqrt(dims/2) approximates the spread of the dot product of
// two independent random bipolar vectors; for other knot vectors it is an
// approximation only.
func (s *Spec) Threshold(zeroThresh float64) float64 {
	return zeroThresh * math.Sqrt(float64(s.dims)*0.5)
}

// Decode estimates the scalar encoded by v: the average of the knot scalars
// weighted by v's correlation with each knot vector, after correlations below
// the threshold are zeroed and the rest normalized to sum to 1.
//
// When no correlation reaches the threshold the normalization divides by zero
// and the estimate is NaN. Callers must treat a non-finite estimate as "v is
// not recognized as an encoding". With zeroThresh = -Inf nothing is zeroed
// and the estimate may fall outside the knot range.
func (s *Spec) Decode(v vsa.Vector, zeroThresh float64) (float64, error) {
	w := make([]float64, len(s.vecs))
	return s.decodeInto(w, v, zeroThresh)
}

// Weights returns the normalized, thresholded knot weights Decode averages with.
func (s *Spec) Weights(v vsa.Vector, zeroThresh float64) ([]float64, error) {
	w := make([]float64, len(s.vecs))
	if err := s.weightsInto(w, v, zeroThresh); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Spec) decodeInto(w []float64, v vsa.Vector, zeroThresh float64) (float64, error) {
	if err := s.weightsInto(w, v, zeroThresh); err != nil {
		return 0, err
	}
	return vek.Dot(w, s.knots), nil
}

// weightsInto fills w (length Len()) with the decode weights for v.
func (s *Spec) weightsInto(w []float64, v vsa.Vector, zeroThresh float64) error {
	if v.Dims() != s.dims {
		return &vsa.ErrDimensionMismatch{Expected: s.dims, Actual: v.Dims()}
	}
	t := s.Threshold(zeroThresh)
	for k, kv := range s.vecs {
		d, err := vsa.Dot(v, kv)
		if err != nil {
			return err
		}
		if d < t {
			d = 0
		}
		w[k] = d
	}
	// Exact division keeps a lone surviving weight at exactly 1.
	sum := vek.Sum(w)
	for k := range w {
		w[k] /= sum
	}
	return nil
}
