package vsa

import "math/rand/v2"

// Perm is a permutation of 0..n-1. Permute(v, p) moves element p[i] of v to
// position i.
type Perm []int

// NewPerm draws a uniformly random permutation of 0..dims-1.
func NewPerm(dims int, rng *rand.Rand) (Perm, error) {
	if err := checkDims(dims); err != nil {
		return nil, err
	}
	return Perm(orGlobal(rng).Perm(dims)), nil
}

// Inverse returns the permutation that undoes p:
// Permute(Permute(v, p), p.Inverse()) == v.
func (p Perm) Inverse() Perm {
	inv := make(Perm, len(p))
	for i, k := range p {
		inv[k] = i
	}
	return inv
}

// Permute applies p to v.
func Permute(v Vector, p Perm) (Vector, error) {
	if err := checkDims(v.Dims()); err != nil {
		return Vector{}, err
	}
	if len(p) != v.Dims() {
		return Vector{}, &ErrDimensionMismatch{Expected: v.Dims(), Actual: len(p)}
	}
	out := make([]float64, len(p))
	for i, k := range p {
		if k < 0 || k >= len(p) {
			return Vector{}, ErrInvalidPerm
		}
		out[i] = v.data[k]
	}
	return Vector{data: out}, nil
}
