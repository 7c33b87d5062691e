// Package tsp - randomized 2-opt local search with stagnation restarts.
//
// One sweep scans every pair 1 ≤ i < k ≤ n-1 in ascending order, forms the
// candidate by reversing [i, k] of the working route (city route[0] is never
// moved) and recomputes its open-path cost. An improving candidate is adopted
// immediately, so later pairs in the same sweep act on the updated route
// (first-improvement, applied as found).
//
// Budget:
//   - maxIterations = n² sweeps.
//   - maxStagnation = ⌊n²/4⌋ consecutive non-improving sweeps trigger a restart
//     from a fresh random permutation.
//   - The search stops after MaxStagnationResets restarts.
//
// Costs:
//   - The working route's cost is recomputed on restart; acceptance compares
//     against it.
//   - The returned cost is the minimum over every route held during the call;
//     a restart never discards it.
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/openpath/matrix"
)

// SolveHeuristic returns a (possibly suboptimal) open-path cost for dist.
// n ≤ 1 and the all-zero matrix cost 0 without searching.
//
// Errors: input sentinels wrapping ErrInvalidInput.
func SolveHeuristic(dist matrix.Matrix, opts Options) (float64, error) {
	res, err := LocalSearch(dist, opts)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// LocalSearch runs the heuristic and returns the best route, its cost and
// search statistics.
func LocalSearch(dist matrix.Matrix, opts Options) (HeuristicResult, error) {
	n, w, err := loadWeights(dist)
	if err != nil {
		return HeuristicResult{}, err
	}
	if res, done := trivialHeuristic(n, w); done {
		return res, nil
	}

	return localSearch(w, n, opts.source()), nil
}

// trivialHeuristic handles the short-circuit cases checked before any search.
func trivialHeuristic(n int, w []float64) (HeuristicResult, bool) {
	if n <= 1 || allZero(w) {
		return HeuristicResult{Route: identityRoute(n), Cost: 0}, true
	}

	return HeuristicResult{}, false
}

// localSearch is the search loop over a validated flat buffer. n ≥ 2.
//
// Complexity: O(n²) sweeps × O(n²) candidates × O(n) cost = O(n⁵) worst case;
// O(n) extra space (working route, candidate buffer, best route).
func localSearch(w []float64, n int, rng *rand.Rand) HeuristicResult {
	var (
		route     = NewRandomRoute(n, rng)
		cand      = make(Route, n)
		current   = pathCostFlat(w, n, route)
		best      = current
		bestRoute = route.Clone()

		maxIterations = n * n
		maxStagnation = maxIterations / 4
		stagnation    int
		stats         Stats
	)

	var (
		i, k     int
		c        float64
		improved bool
	)
	for stats.Iterations < maxIterations && stats.Restarts < MaxStagnationResets {
		improved = false

		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				copy(cand, route)
				cand.Reverse(i, k)
				c = pathCostFlat(w, n, cand)
				if c < current {
					route, cand = cand, route
					current = c
					improved = true
					stats.Improvements++
					if c < best {
						best = c
						copy(bestRoute, route)
					}
				}
			}
		}

		if improved {
			stagnation = 0
		} else {
			stagnation++
			if stagnation >= maxStagnation {
				stagnation = 0
				stats.Restarts++
				resetRandomRoute(route, rng)
				current = pathCostFlat(w, n, route)
				if current < best {
					best = current
					copy(bestRoute, route)
				}
			}
		}

		stats.Iterations++
	}

	return HeuristicResult{Route: []int(bestRoute), Cost: best, Stats: stats}
}
