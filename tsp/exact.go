// Package tsp - exact open-path solver (Held–Karp).
//
// The DP runs forward: best[visited][end] is the cheapest path that covers
// exactly the cities of visited and stops at end. Extending a path appends one
// edge to the running sum, the same left-to-right order PathCost uses, so the
// optimum equals min over all routes of PathCost bit for bit.
package tsp

import (
	"math"

	"github.com/katalvlaran/openpath/matrix"
)

// SolveExact returns the minimum open-path cost visiting every city of dist
// exactly once, minimized over the starting city.
//
// n = 0 and n = 1 cost 0. Larger inputs must satisfy n ≤ MaxExactCities.
//
// Errors: input sentinels wrapping ErrInvalidInput, or ErrTooManyCities.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
func SolveExact(dist matrix.Matrix) (float64, error) {
	n, w, err := loadWeights(dist)
	if err != nil {
		return 0, err
	}
	if n <= 1 {
		return 0, nil
	}
	if n > MaxExactCities {
		return 0, ErrTooManyCities
	}

	cost, _ := heldKarpOpen(w, n, false)

	return cost, nil
}

// ExactPath is SolveExact plus reconstruction of one optimal visiting order.
// Among equal-cost optima it prefers the lowest final city, then the lowest
// predecessor at each step walking back from it.
func ExactPath(dist matrix.Matrix) (ExactResult, error) {
	n, w, err := loadWeights(dist)
	if err != nil {
		return ExactResult{}, err
	}
	if n <= 1 {
		return ExactResult{Path: identityRoute(n), Cost: 0}, nil
	}
	if n > MaxExactCities {
		return ExactResult{}, ErrTooManyCities
	}

	cost, path := heldKarpOpen(w, n, true)

	return ExactResult{Path: path, Cost: cost}, nil
}

// heldKarpOpen fills the memo
//
//	best[visited][end] = cheapest path covering visited that stops at end
//
// with the rule
//
//	|visited| == 1: 0
//	otherwise:      min_{prev ∈ visited \ {end}} best[visited \ {end}][prev] + d[prev][end]
//
// Sets are visited in ascending numeric order. visited \ {end} is always
// numerically smaller than visited, so every dependency is final when read.
// The answer is min_end best[all][end].
//
// When track is true, pred[visited*n+end] records the chosen predecessor and
// the optimal path is rebuilt backwards from the best end city.
func heldKarpOpen(w []float64, n int, track bool) (float64, []int) {
	var (
		full = FullSet(n)
		size = (int(full) + 1) * n
		memo = make([]float64, size)
		pred []int8
	)
	if track {
		pred = make([]int8, size)
	}

	var (
		visited, sub, ends, froms CitySet
		end, prev, arg            int
		best, v                   float64
	)
	for visited = 1; visited <= full; visited++ {
		if visited.Len() < 2 {
			continue // single-city paths cost 0
		}
		for ends = visited; ends != 0; ends = ends.Without(end) {
			end = ends.Min()
			sub = visited.Without(end)

			best, arg = math.Inf(1), -1
			for froms = sub; froms != 0; froms = froms.Without(prev) {
				prev = froms.Min()
				v = memo[int(sub)*n+prev] + w[prev*n+end]
				if v < best {
					best, arg = v, prev
				}
			}
			memo[int(visited)*n+end] = best
			if track {
				pred[int(visited)*n+end] = int8(arg)
			}
		}
	}

	// Minimize over the final city.
	var last = -1
	best = math.Inf(1)
	for end = 0; end < n; end++ {
		v = memo[int(full)*n+end]
		if v < best {
			best, last = v, end
		}
	}
	if last < 0 {
		// Unreachable for finite input; keep the defined fallback.
		return 0, identityRoute(n)
	}
	if !track {
		return best, nil
	}

	path := make([]int, n)
	visited, end = full, last
	for i := n - 1; i > 0; i-- {
		path[i] = end
		prev = int(pred[int(visited)*n+end])
		visited = visited.Without(end)
		end = prev
	}
	path[0] = end

	return best, path
}
