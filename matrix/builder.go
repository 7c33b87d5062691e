// SPDX-License-Identifier: MIT

// Package matrix - constructors for distance matrices.
//
// Provided builders:
//   - FromRows: strict copy of a [][]float64 table (ragged rows rejected).
//   - NewRandomSymmetric: integer weights uniform in [lo, hi], zero diagonal,
//     mirrored across the diagonal. Deterministic for a given *rand.Rand.
//   - Permute: relabel cities, out[i][j] = m[perm[i]][perm[j]].
//
// Determinism:
//   - Fixed loop orders (row-major upper triangle) so a seeded source always
//     yields the same instance.

package matrix

import "math/rand"

// defaultGeneratorSeed is used by NewRandomSymmetric when rng is nil.
const defaultGeneratorSeed int64 = 1

// FromRows copies rows into a new n×c Dense.
// An empty (or nil) input yields the 0×0 matrix.
//
// Errors: ErrDimensionMismatch when rows have differing lengths or a non-empty
// table has zero-length rows.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	var r = len(rows)
	if r == 0 {
		return NewDense(0, 0)
	}
	var c = len(rows[0])
	if c == 0 {
		return nil, ErrDimensionMismatch
	}

	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrDimensionMismatch
		}
	}

	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i = 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewRandomSymmetric builds an n×n symmetric matrix whose off-diagonal entries
// are integers drawn uniformly from [lo, hi] and whose diagonal is zero.
// The upper triangle is drawn row by row and mirrored into the lower one.
//
// Errors: ErrBadShape if n<0, lo<0 or lo>hi.
//
// Complexity: O(n²).
func NewRandomSymmetric(n int, rng *rand.Rand, lo, hi int) (*Dense, error) {
	if n < 0 || lo < 0 || lo > hi {
		return nil, ErrBadShape
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultGeneratorSeed))
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		w    float64
		span = hi - lo + 1
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = float64(lo + rng.Intn(span))
			m.data[i*n+j] = w
			m.data[j*n+i] = w
		}
	}

	return m, nil
}

// Permute returns the relabeled matrix out[i][j] = m[perm[i]][perm[j]].
// Costs of corresponding paths are preserved: a path p in out maps to the
// path perm∘p in m.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (perm is not a
// permutation of 0..n-1), or an indexing error surfaced by m.At.
//
// Complexity: O(n²).
func Permute(m Matrix, perm []int) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	var n = m.Rows()
	if m.Cols() != n {
		return nil, ErrNonSquare
	}
	if len(perm) != n {
		return nil, ErrDimensionMismatch
	}

	var (
		seen = make([]bool, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		if perm[i] < 0 || perm[i] >= n || seen[perm[i]] {
			return nil, ErrDimensionMismatch
		}
		seen[perm[i]] = true
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(perm[i], perm[j]); err != nil {
				return nil, err
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}
