// Package tsp - CitySet, the canonical set-of-cities form.
//
// The exact solver keys its memo by (CitySet, city). A CitySet is a bitmask
// over a machine word, so set equality is integer equality and iteration by
// Min/Without never allocates.
package tsp

import (
	"math/bits"

	"github.com/yourbasic/bit"
)

// CitySet is a set of city indices 0..63 in canonical bitmask form.
// Two sets are equal iff they contain the same cities, regardless of the order
// in which they were built; this makes it a direct memo key component.
type CitySet uint64

// FullSet returns {0, …, n-1}. n is clamped to [0, 64].
func FullSet(n int) CitySet {
	switch {
	case n <= 0:
		return 0
	case n >= 64:
		return ^CitySet(0)
	}

	return CitySet(1)<<uint(n) - 1
}

// Has reports whether city c is in s.
func (s CitySet) Has(c int) bool { return c >= 0 && c < 64 && s&(1<<uint(c)) != 0 }

// With returns s ∪ {c}.
func (s CitySet) With(c int) CitySet { return s | 1<<uint(c) }

// Without returns s \ {c}.
func (s CitySet) Without(c int) CitySet { return s &^ (1 << uint(c)) }

// Len returns |s|.
func (s CitySet) Len() int { return bits.OnesCount64(uint64(s)) }

// Min returns the smallest city in s, or -1 when s is empty.
func (s CitySet) Min() int {
	if s == 0 {
		return -1
	}

	return bits.TrailingZeros64(uint64(s))
}

// Members returns the cities of s in ascending order.
func (s CitySet) Members() []int {
	out := make([]int, 0, s.Len())
	for rest := s; rest != 0; {
		c := rest.Min()
		out = append(out, c)
		rest = rest.Without(c)
	}

	return out
}

// String renders s in compact interval notation, e.g. "{0 2..4}".
func (s CitySet) String() string {
	return bit.New(s.Members()...).String()
}
