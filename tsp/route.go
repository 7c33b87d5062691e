// Package tsp - route utilities for the local-search solver.
//
// A Route is a permutation of {0..n-1} read as an open visiting order.
// Provided helpers:
//   - NewRandomRoute: uniform random permutation (Fisher–Yates).
//   - Route.Reverse: in-place 2-opt segment reversal.
//   - TwoOptMove: copy-based 2-opt move for callers that keep the original.
//   - ValidateRoute: permutation check.
package tsp

import (
	"math/rand"

	"github.com/yourbasic/bit"
)

// Route is an ordered sequence of city indices.
type Route []int

// NewRandomRoute returns a uniformly random permutation of 0..n-1 drawn from rng.
// If rng==nil, the default deterministic stream is used. n<0 yields an empty route.
//
// Complexity: O(n).
func NewRandomRoute(n int, rng *rand.Rand) Route {
	if n < 0 {
		n = 0
	}
	r := make(Route, n)
	resetRandomRoute(r, rng)

	return r
}

// resetRandomRoute overwrites r with a fresh random permutation without allocating.
func resetRandomRoute(r Route, rng *rand.Rand) {
	var i int
	for i = range r {
		r[i] = i
	}
	shuffleIntsInPlace(r, rng)
}

// Clone returns an independent copy of r.
func (r Route) Clone() Route {
	return append(Route(nil), r...)
}

// Reverse reverses the contiguous segment [i, k] in place, leaving the prefix
// [0, i) and the suffix (k, n) untouched. Out-of-range or empty segments are a no-op.
//
// Complexity: O(k-i).
func (r Route) Reverse(i, k int) {
	if i < 0 || k >= len(r) || i >= k {
		return
	}
	for i < k {
		r[i], r[k] = r[k], r[i]
		i++
		k--
	}
}

// TwoOptMove returns a copy of route with segment [i, k] reversed.
// It requires 0 ≤ i < k < len(route).
//
// Errors: ErrInvalidRoute for an invalid segment.
func TwoOptMove(route []int, i, k int) (Route, error) {
	if i < 0 || k >= len(route) || i >= k {
		return nil, ErrInvalidRoute
	}
	out := Route(route).Clone()
	out.Reverse(i, k)

	return out, nil
}

// ValidateRoute checks that route is a permutation of {0..n-1}.
//
// Complexity: O(n).
func ValidateRoute(route []int, n int) error {
	if len(route) != n {
		return ErrInvalidRoute
	}

	seen := new(bit.Set)
	for _, v := range route {
		if v < 0 || v >= n || seen.Contains(v) {
			return ErrInvalidRoute
		}
		seen.Add(v)
	}

	return nil
}

// identityRoute returns [0, 1, …, n-1].
func identityRoute(n int) Route {
	r := make(Route, n)
	for i := range r {
		r[i] = i
	}

	return r
}
