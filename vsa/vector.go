// Package vsa implements Vector Symbolic Architecture primitives over
// real-valued hypervectors: atoms, similarity, binding, permutation and
// weighted bundling by per-element sampling.
//
// Randomized operations take an explicit *rand.Rand. A nil source draws from
// the runtime's global generator, which is safe for concurrent use but not
// reproducible.
package vsa

import (
	"slices"

	"github.com/viterin/vek"
)

// Vector is an immutable real-valued hypervector.
// The zero Vector has no dimension and is rejected by every operation that
// validates its inputs.
type Vector struct {
	data []float64
}

// FromSlice constructs a Vector holding a copy of values.
func FromSlice(values []float64) (Vector, error) {
	if err := checkDims(len(values)); err != nil {
		return Vector{}, err
	}
	return Vector{data: slices.Clone(values)}, nil
}

// Zero returns the all-zero Vector of the given dimension.
func Zero(dims int) (Vector, error) {
	if err := checkDims(dims); err != nil {
		return Vector{}, err
	}
	return Vector{data: make([]float64, dims)}, nil
}

func (v Vector) Dims() int { return len(v.data) }

// At returns element i. It panics if i is out of range.
func (v Vector) At(i int) float64 { return v.data[i] }

// Values returns a copy of the elements of v.
func (v Vector) Values() []float64 { return slices.Clone(v.data) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector { return Vector{data: slices.Clone(v.data)} }

// Equal reports whether a and b have the same dimension and elements.
func (v Vector) Equal(o Vector) bool { return slices.Equal(v.data, o.data) }

// IsBipolar reports whether every element of v is +1 or -1.
func (v Vector) IsBipolar() bool {
	if len(v.data) == 0 {
		return false
	}
	for _, x := range v.data {
		if x != 1 && x != -1 {
			return false
		}
	}
	return true
}

// Negate reverses the direction of v.
func Negate(v Vector) Vector {
	return Vector{data: vek.Neg(v.data)}
}

// Multiply binds vectors by element-wise product. For bipolar vectors the
// operation is its own inverse: Multiply(a, Multiply(a, b)) == b.
func Multiply(vecs ...Vector) (Vector, error) {
	if len(vecs) == 0 {
		return Vector{}, ErrNoVectors
	}
	if err := checkDims(vecs[0].Dims()); err != nil {
		return Vector{}, err
	}
	if err := requireSameDims(vecs...); err != nil {
		return Vector{}, err
	}
	result := slices.Clone(vecs[0].data)
	for _, v := range vecs[1:] {
		vek.Mul_Inplace(result, v.data)
	}
	return Vector{data: result}, nil
}
