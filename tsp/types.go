package tsp

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidInput is the umbrella condition for malformed solver input.
// Every specific input sentinel below wraps it, so callers may match either.
var ErrInvalidInput = errors.New("tsp: invalid input")

var (
	// ErrNilMatrix is returned when dist is nil.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidInput)

	// ErrNonSquare is returned when Rows() != Cols().
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidInput)

	// ErrNegativeWeight is returned for a negative off-diagonal distance.
	ErrNegativeWeight = fmt.Errorf("%w: negative distance", ErrInvalidInput)

	// ErrNaNInf is returned when an entry is NaN or ±Inf.
	ErrNaNInf = fmt.Errorf("%w: non-finite distance", ErrInvalidInput)

	// ErrNonZeroDiagonal is returned when d[i][i] is not zero.
	ErrNonZeroDiagonal = fmt.Errorf("%w: self-distance must be 0", ErrInvalidInput)

	// ErrInvalidRoute is returned when a route is not a permutation of 0..n-1,
	// or a 2-opt segment [i,k] is out of range.
	ErrInvalidRoute = fmt.Errorf("%w: route is not a permutation", ErrInvalidInput)

	// ErrInvalidTrials is returned by MultiStart when trials < 1.
	ErrInvalidTrials = fmt.Errorf("%w: trials must be positive", ErrInvalidInput)
)

// ErrTooManyCities is returned by the exact solver when n exceeds MaxExactCities.
// It is a resource limit, not malformed input, and does not wrap ErrInvalidInput.
var ErrTooManyCities = errors.New("tsp: too many cities for the exact solver")

const (
	// MaxExactCities bounds the exact solver: its memo holds n·2ⁿ float64 values
	// (20 cities ≈ 160 MiB).
	MaxExactCities = 20

	// MaxStagnationResets is the number of stagnation-triggered restarts after
	// which LocalSearch stops.
	MaxStagnationResets = 2
)

// Options configures the randomized solvers.
type Options struct {
	// Seed seeds the default random source. Seed==0 selects a fixed default
	// seed, so the zero Options value is deterministic.
	Seed int64

	// Rand, when non-nil, is used instead of Seed. It is NOT goroutine-safe:
	// never share one *rand.Rand between concurrent calls.
	Rand *rand.Rand
}

// DefaultOptions returns the deterministic default configuration.
func DefaultOptions() Options {
	return Options{}
}

// source resolves the random stream for one solver call.
func (o Options) source() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// ExactResult holds the outcome of the exact solver.
type ExactResult struct {
	// Path is an optimal open visiting order; len(Path) == n.
	// For n == 0 it is empty, for n == 1 it is [0].
	Path []int

	// Cost is the open-path cost of Path (no closing edge).
	Cost float64
}

// Stats instruments one LocalSearch call.
type Stats struct {
	// Iterations counts full (i,k) sweeps; never exceeds n².
	Iterations int

	// Restarts counts stagnation-triggered restarts; never exceeds MaxStagnationResets.
	Restarts int

	// Improvements counts accepted 2-opt moves across all sweeps.
	Improvements int
}

// HeuristicResult holds the outcome of LocalSearch or MultiStart.
type HeuristicResult struct {
	// Route is the best route seen during the call; its open-path cost is Cost.
	Route []int

	// Cost is the smallest open-path cost seen across every route held in the call.
	Cost float64

	// Stats reports the search effort of the call (or of the winning trial).
	Stats Stats
}
