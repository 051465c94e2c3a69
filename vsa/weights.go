package vsa

import (
	"fmt"
	"math"

	"github.com/viterin/vek"
)

// uniformWeights returns count equal weights summing to 1.
func uniformWeights(count int) []float64 {
	w := make([]float64, count)
	for i := range w {
		w[i] = 1 / float64(count)
	}
	return w
}

// validateWeights checks that weights describe a categorical distribution over
// count sources and returns their total. Weights need not sum to 1.
func validateWeights(weights []float64, count int) (float64, error) {
	if len(weights) == 0 || len(weights) != count {
		return 0, fmt.Errorf("%w: got %d weights for %d sources", ErrInvalidWeights, len(weights), count)
	}
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("%w: weight %d is %v", ErrInvalidWeights, i, w)
		}
	}
	total := vek.Sum(weights)
	if total <= 0 {
		return 0, fmt.Errorf("%w: weights sum to %v", ErrInvalidWeights, total)
	}
	return total, nil
}
