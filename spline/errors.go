package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKnots is returned when a spec is built without knots.
	ErrNoKnots = errors.New("spline: at least one knot is required")

	// ErrNaNInput is returned when a NaN scalar is encoded.
	ErrNaNInput = errors.New("spline: cannot encode NaN")
)

// ErrKnotOrder indicates that knot scalars are not strictly increasing.
type ErrKnotOrder struct {
	Index int     // position of the offending knot
	Prev  float64 // knot at Index-1
	Next  float64 // knot at Index
}

func (e *ErrKnotOrder) Error() string {
	return fmt.Sprintf("spline: knots must be strictly increasing: knot %d (%v) follows %v", e.Index, e.Next, e.Prev)
}

// ErrNonFiniteKnot indicates a NaN or infinite knot scalar.
type ErrNonFiniteKnot struct {
	Index int
	Value float64
}

func (e *ErrNonFiniteKnot) Error() string {
	return fmt.Sprintf("spline: knot %d is not finite: %v", e.Index, e.Value)
}

// ErrKnotCount indicates that knot scalars and knot vectors differ in number.
type ErrKnotCount struct {
	Knots   int
	Vectors int
}

func (e *ErrKnotCount) Error() string {
	return fmt.Sprintf("spline: %d knots but %d knot vectors", e.Knots, e.Vectors)
}
