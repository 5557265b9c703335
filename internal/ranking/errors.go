// Package ranking builds classifier features from embedding vectors and
// measures how close a resume and a job description are.
package ranking

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is returned when two vectors that must align differ in length.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// DimensionError reports the lengths of two mismatched vectors.
type DimensionError struct {
	Op    string
	Left  int
	Right int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: dimension mismatch: %d != %d", e.Op, e.Left, e.Right)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

func checkDims(op string, a, b []float64) error {
	if len(a) != len(b) {
		return &DimensionError{Op: op, Left: len(a), Right: len(b)}
	}
	return nil
}
