package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when no points reach the engine.
	ErrEmptyInput = errors.New("no input points")
)

// ErrClusterCount indicates a cluster count outside the open interval (1, n).
type ErrClusterCount struct {
	K int
	N int
}

func (e *ErrClusterCount) Error() string {
	return fmt.Sprintf("invalid cluster count: k=%d with %d points (need 1 < k < n)", e.K, e.N)
}

// ErrIterationBound indicates an iteration cap outside the open interval (1, 1000).
type ErrIterationBound struct {
	MaxIter int
}

func (e *ErrIterationBound) Error() string {
	return fmt.Sprintf("invalid iteration bound: %d (need 1 < max_iter < %d)", e.MaxIter, MaxIterationLimit)
}

// ErrDimensionMismatch indicates a point/centroid dimensionality mismatch.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
