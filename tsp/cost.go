// Package tsp - open-path cost utilities.
//
// The cost of a route is the sum of d[route[i]][route[i+1]] for i in [0, n-2].
// There is never a closing edge back to route[0].
//
// Every solver accumulates left to right in route order, so costs from
// PathCost, the exact solver and the heuristic are directly comparable with no
// rounding step.
package tsp

import "github.com/katalvlaran/openpath/matrix"

// PathCost returns the open-path cost of route over dist.
// route must be a permutation of 0..n-1 where n is the matrix order.
//
// Errors: input sentinels from validation, or ErrInvalidRoute.
//
// Complexity: O(n²) validation + O(n) summation.
func PathCost(dist matrix.Matrix, route []int) (float64, error) {
	n, w, err := loadWeights(dist)
	if err != nil {
		return 0, err
	}
	if err = ValidateRoute(route, n); err != nil {
		return 0, err
	}
	if n <= 1 {
		return 0, nil
	}

	return pathCostFlat(w, n, route), nil
}

// pathCostFlat sums the open path over a prefetched buffer. No validation.
//
// Complexity: O(n).
func pathCostFlat(w []float64, n int, route []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(route); i++ {
		sum += w[route[i]*n+route[i+1]]
	}

	return sum
}
