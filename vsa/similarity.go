package vsa

import "github.com/viterin/vek"

// Mag returns the Euclidean magnitude of v. The zero vector has magnitude 0.
// A bipolar vector of dimension D has magnitude sqrt(D).
func Mag(v Vector) float64 {
	if len(v.data) == 0 {
		return 0
	}
	return vek.Norm(v.data)
}

// Dot returns the dot product of a and b.
func Dot(a, b Vector) (float64, error) {
	if err := requireSameDims(a, b); err != nil {
		return 0, err
	}
	if len(a.data) == 0 {
		return 0, &ErrInvalidDimension{Dimension: 0}
	}
	return vek.Dot(a.data, b.data), nil
}

// CosSim returns the cosine similarity of a and b.
// If either vector has zero magnitude the result is NaN; the degenerate input
// is reported through the value rather than an error.
func CosSim(a, b Vector) (float64, error) {
	d, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	return d / (Mag(a) * Mag(b)), nil
}
