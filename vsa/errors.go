package vsa

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVectors is returned when an operation needs at least one vector.
	ErrNoVectors = errors.New("vsa: at least one vector is required")

	// ErrInvalidWeights is returned when sampling weights do not form a
	// categorical distribution: wrong count, negative or non-finite entries,
	// or a non-positive total.
	ErrInvalidWeights = errors.New("vsa: invalid sampling weights")

	// ErrSampleIndex is returned when a sample spec refers to a source vector
	// that does not exist.
	ErrSampleIndex = errors.New("vsa: sample spec index out of range")

	// ErrInvalidPerm is returned when a permutation holds an out-of-range index.
	ErrInvalidPerm = errors.New("vsa: invalid permutation")
)

// ErrDimensionMismatch indicates that two vectors (or a vector and a
// permutation / sample spec) disagree on dimension.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("vsa: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates a non-positive vector dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("vsa: invalid dimension: %d", e.Dimension)
}

func checkDims(dims int) error {
	if dims <= 0 {
		return &ErrInvalidDimension{Dimension: dims}
	}
	return nil
}

func requireSameDims(vecs ...Vector) error {
	d := vecs[0].Dims()
	for _, v := range vecs[1:] {
		if v.Dims() != d {
			return &ErrDimensionMismatch{Expected: d, Actual: v.Dims()}
		}
	}
	return nil
}
