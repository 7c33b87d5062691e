// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package: fixture builders, a brute-force reference solver and a
// second matrix.Matrix implementation to exercise the generic At path.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/openpath/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// epsTiny is the tolerance used when comparing costs produced by
	// different summation orders.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)

	// heuristicTrials is the number of independent heuristic runs used by
	// statistical properties.
	heuristicTrials = 40
)

// sliceMatrix is a square matrix backed by [][]float64. It is NOT *matrix.Dense,
// so solvers must take the generic At-based prefetch path.
type sliceMatrix struct{ a [][]float64 }

var _ matrix.Matrix = sliceMatrix{}

func (m sliceMatrix) Rows() int { return len(m.a) }
func (m sliceMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.a) || j < 0 || j >= len(m.a[i]) {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m sliceMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= len(m.a) || j < 0 || j >= len(m.a[i]) {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m sliceMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return sliceMatrix{a: cp}
}

// dense builds a *matrix.Dense from literal rows or fails the test.
func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// lineDist places n cities on a line: d[i][j] = |i-j|. Optimal open path = n-1.
func lineDist(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = math.Abs(float64(i - j))
		}
	}

	return dense(t, rows)
}

// randomSym builds a seeded symmetric instance with weights in [1,100].
func randomSym(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewRandomSymmetric(n, rand.New(rand.NewSource(seed)), 1, 100)
	require.NoError(t, err)

	return m
}

// randomAsym builds a seeded asymmetric instance with a zero diagonal.
func randomAsym(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = float64(1 + rng.Intn(50))
			}
		}
	}

	return dense(t, rows)
}

// zeros builds an n×n all-zero matrix.
func zeros(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)

	return m
}

// bruteForceOpenPath enumerates every permutation (Heap's algorithm) and
// returns the cheapest open-path cost. Intended for n ≤ 8.
func bruteForceOpenPath(t testing.TB, m matrix.Matrix) float64 {
	t.Helper()
	n := m.Rows()
	if n <= 1 {
		return 0
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	cost := func() float64 {
		var s float64
		for i := 0; i+1 < n; i++ {
			w, err := m.At(perm[i], perm[i+1])
			require.NoError(t, err)
			s += w
		}

		return s
	}

	best := cost()
	c := make([]int, n)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			if v := cost(); v < best {
				best = v
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return best
}

// manualPathCost sums consecutive edges of route straight from the definition.
func manualPathCost(t testing.TB, m matrix.Matrix, route []int) float64 {
	t.Helper()
	var s float64
	for i := 0; i+1 < len(route); i++ {
		w, err := m.At(route[i], route[i+1])
		require.NoError(t, err)
		s += w
	}

	return s
}
