package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/openpath/matrix"
	"github.com/katalvlaran/openpath/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveHeuristic_Degenerate(t *testing.T) {
	cost, err := tsp.SolveHeuristic(zeros(t, 0), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, cost)

	cost, err = tsp.SolveHeuristic(dense(t, [][]float64{{-3}}), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, cost)
}

// TestLocalSearch_AllZero short-circuits before any sweep.
func TestLocalSearch_AllZero(t *testing.T) {
	res, err := tsp.LocalSearch(zeros(t, 6), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, res.Cost)
	require.Equal(t, tsp.Stats{}, res.Stats)
	require.NoError(t, tsp.ValidateRoute(res.Route, 6))
}

// TestLocalSearch_TwoCities walks the budget by hand: n=2 has no (i,k) pair,
// maxStagnation = 1, so every sweep restarts and the loop stops after two.
func TestLocalSearch_TwoCities(t *testing.T) {
	res, err := tsp.LocalSearch(dense(t, [][]float64{{0, 4}, {4, 0}}), tsp.Options{Seed: seedDet})
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Cost)
	require.Equal(t, tsp.Stats{Iterations: 2, Restarts: 2}, res.Stats)
}

// TestLocalSearch_NeverBelowExact is the statistical upper-bound property:
// over many seeds no heuristic run may beat the exact optimum.
func TestLocalSearch_NeverBelowExact(t *testing.T) {
	for _, n := range []int{3, 5, 7, 9} {
		instances := []struct {
			name string
			dist *matrix.Dense
		}{
			{name: "sym", dist: randomSym(t, n, int64(n))},
			{name: "asym", dist: randomAsym(t, n, int64(n))},
		}
		for _, in := range instances {
			exact, err := tsp.SolveExact(in.dist)
			require.NoError(t, err)

			var sum float64
			for trial := 1; trial <= heuristicTrials; trial++ {
				h, err := tsp.SolveHeuristic(in.dist, tsp.Options{Seed: int64(trial)})
				require.NoError(t, err)
				require.GreaterOrEqual(t, h, exact-epsTiny, "%s n=%d seed=%d", in.name, n, trial)
				sum += h
			}
			assert.GreaterOrEqual(t, sum/heuristicTrials, exact-epsTiny, "%s n=%d", in.name, n)
		}
	}
}

// TestLocalSearch_Budget checks the instrumentation bounds on many instances.
func TestLocalSearch_Budget(t *testing.T) {
	for n := 2; n <= 12; n++ {
		m := randomSym(t, n, int64(n*7))
		for seed := int64(1); seed <= 5; seed++ {
			res, err := tsp.LocalSearch(m, tsp.Options{Seed: seed})
			require.NoError(t, err)
			require.LessOrEqual(t, res.Stats.Iterations, n*n, "n=%d", n)
			require.LessOrEqual(t, res.Stats.Restarts, tsp.MaxStagnationResets, "n=%d", n)
			require.Positive(t, res.Stats.Iterations)
			// The loop stops on exactly one of its two guards.
			require.True(t, res.Stats.Iterations == n*n || res.Stats.Restarts == tsp.MaxStagnationResets,
				"n=%d stats=%+v", n, res.Stats)
		}
	}
}

// TestLocalSearch_NoCostDrift recomputes the returned route's cost from the definition.
func TestLocalSearch_NoCostDrift(t *testing.T) {
	for n := 3; n <= 14; n++ {
		m := randomAsym(t, n, int64(n))
		res, err := tsp.LocalSearch(m, tsp.Options{Seed: seedDet})
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateRoute(res.Route, n))

		pc, err := tsp.PathCost(m, res.Route)
		require.NoError(t, err)
		require.Equal(t, res.Cost, pc, "n=%d", n)
		require.InDelta(t, manualPathCost(t, m, res.Route), res.Cost, epsTiny)
	}
}

func TestLocalSearch_SeedDeterminism(t *testing.T) {
	m := randomSym(t, 11, seedDet)
	a, err := tsp.LocalSearch(m, tsp.Options{Seed: 9})
	require.NoError(t, err)
	b, err := tsp.LocalSearch(m, tsp.Options{Seed: 9})
	require.NoError(t, err)
	require.Equal(t, a, b)

	// The zero Options value is deterministic too.
	c, err := tsp.LocalSearch(m, tsp.DefaultOptions())
	require.NoError(t, err)
	d, err := tsp.LocalSearch(m, tsp.Options{})
	require.NoError(t, err)
	require.Equal(t, c, d)
}

// TestLocalSearch_InjectedRand verifies an injected source wins over Seed.
func TestLocalSearch_InjectedRand(t *testing.T) {
	m := randomSym(t, 10, seedDet)
	a, err := tsp.LocalSearch(m, tsp.Options{Seed: 1, Rand: rand.New(rand.NewSource(77))})
	require.NoError(t, err)
	b, err := tsp.LocalSearch(m, tsp.Options{Seed: 2, Rand: rand.New(rand.NewSource(77))})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestLocalSearch_LineNotBelowOptimum bounds the heuristic by the known optimum n-1.
func TestLocalSearch_LineNotBelowOptimum(t *testing.T) {
	for n := 2; n <= 10; n++ {
		cost, err := tsp.SolveHeuristic(lineDist(t, n), tsp.Options{Seed: int64(n)})
		require.NoError(t, err)
		require.GreaterOrEqual(t, cost, float64(n-1))
	}
}

func TestLocalSearch_GenericMatrix(t *testing.T) {
	m := sliceMatrix{a: [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}}
	cost, err := tsp.SolveHeuristic(m, tsp.DefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, cost, 3.0)
	require.LessOrEqual(t, cost, 5.0) // worst open path on this instance
}

// TestLocalSearch_KeepsBestAcrossRestarts: the first route drawn from the
// injected source is the initial working route, so the returned cost can
// never exceed its cost even after restarts replace it.
func TestLocalSearch_KeepsBestAcrossRestarts(t *testing.T) {
	for n := 3; n <= 10; n++ {
		m := randomSym(t, n, int64(n))
		for seed := int64(1); seed <= 10; seed++ {
			initial := tsp.NewRandomRoute(n, rand.New(rand.NewSource(seed)))
			initialCost, err := tsp.PathCost(m, initial)
			require.NoError(t, err)

			res, err := tsp.LocalSearch(m, tsp.Options{Rand: rand.New(rand.NewSource(seed))})
			require.NoError(t, err)
			require.LessOrEqual(t, res.Cost, initialCost, "n=%d seed=%d", n, seed)
		}
	}
}
