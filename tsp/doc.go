// Package tsp provides minimum-cost open Hamiltonian path solvers over a
// distance matrix.
//
// An open path visits every city exactly once; its cost is the sum of the
// consecutive edge weights, with NO closing edge back to the first city.
// Both solvers minimize over the choice of starting city.
//
//   - SolveExact / ExactPath: Held–Karp style dynamic programming over
//     (visited CitySet, final city) keys.
//
//   - Complexity: O(n²·2ⁿ)
//
//   - Memory:     O(n·2ⁿ)
//
//   - Limited to n ≤ MaxExactCities.
//
//   - SolveHeuristic / LocalSearch: randomized first-improvement 2-opt with
//     stagnation-triggered restarts. No optimality guarantee.
//
//   - Complexity: O(n⁵) worst case (n² passes × n² moves × O(n) cost).
//
//   - MultiStart: independent LocalSearch trials on derived RNG streams,
//     run concurrently and reduced by minimum cost.
//
// Inputs are any matrix.Matrix of order n ≥ 0 with a zero diagonal and
// non-negative finite entries. Symmetry is not required: weights are always
// read in the direction of travel, d[from][to]. Malformed inputs are rejected
// up front with errors matching ErrInvalidInput; instances with n ≤ 1 cost 0.
//
// Solvers are pure functions of their inputs (plus the RNG for the heuristic):
// they share no mutable state and are safe to call from multiple goroutines
// as long as each call owns its *rand.Rand.
package tsp
