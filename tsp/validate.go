// Package tsp - input validation shared by the exact and heuristic solvers.
//
// Validation is split in two stages so that degenerate sizes short-circuit
// before any value is inspected:
//  1. validateShape: non-nil, square; returns n.
//  2. prefetchWeights: copies d into a flat row-major buffer w[i*n+j] while
//     rejecting NaN/±Inf, negative entries and a non-zero diagonal.
//
// Solvers then read only the flat buffer, which removes interface indirection
// from hot loops.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/openpath/matrix"
)

// diagTol is the structural tolerance for the zero-diagonal check.
const diagTol = 1e-12

// validateShape checks dist is non-nil and square, returning its order n.
//
// Complexity: O(1).
func validateShape(dist matrix.Matrix) (int, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	if d, ok := dist.(*matrix.Dense); ok && d == nil {
		return 0, ErrNilMatrix
	}
	if dist.Rows() != dist.Cols() || dist.Rows() < 0 {
		return 0, ErrNonSquare
	}

	return dist.Rows(), nil
}

// prefetchWeights copies the n×n matrix into w[i*n+j] and validates every entry.
// *matrix.Dense takes a single bulk copy; other implementations go through At.
//
// Complexity: O(n²) time and space.
func prefetchWeights(dist matrix.Matrix, n int) ([]float64, error) {
	var (
		w    []float64
		i, j int
		x    float64
		err  error
	)
	if d, ok := dist.(*matrix.Dense); ok {
		w = d.Flat()
	} else {
		w = make([]float64, n*n)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if x, err = dist.At(i, j); err != nil {
					return nil, fmt.Errorf("%w: %w", ErrNonSquare, err)
				}
				w[i*n+j] = x
			}
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = w[i*n+j]
			switch {
			case math.IsNaN(x) || math.IsInf(x, 0):
				return nil, fmt.Errorf("d[%d][%d]=%v: %w", i, j, x, ErrNaNInf)
			case i == j && math.Abs(x) > diagTol:
				return nil, fmt.Errorf("d[%d][%d]=%v: %w", i, j, x, ErrNonZeroDiagonal)
			case i != j && x < 0:
				return nil, fmt.Errorf("d[%d][%d]=%v: %w", i, j, x, ErrNegativeWeight)
			}
		}
		w[i*n+i] = 0 // snap tolerated diagonal noise
	}

	return w, nil
}

// loadWeights runs both validation stages. For n ≤ 1 it returns a nil buffer:
// such instances cost 0 whatever their content.
func loadWeights(dist matrix.Matrix) (int, []float64, error) {
	n, err := validateShape(dist)
	if err != nil {
		return 0, nil, err
	}
	if n <= 1 {
		return n, nil, nil
	}
	w, err := prefetchWeights(dist, n)
	if err != nil {
		return 0, nil, err
	}

	return n, w, nil
}

// allZero reports whether every weight is exactly zero.
func allZero(w []float64) bool {
	for _, x := range w {
		if x != 0 {
			return false
		}
	}

	return true
}
