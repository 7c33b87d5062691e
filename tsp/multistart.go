// Package tsp - parallel independent local-search trials.
package tsp

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/openpath/matrix"
)

// MultiStart runs trials independent LocalSearch trials and returns the best one.
//
// Each trial t owns a stream derived from the Options source and t, so the
// outcome depends only on (opts, trials) and not on scheduling. Trials run on
// at most GOMAXPROCS goroutines and share the read-only weight buffer. Ties
// on cost go to the lowest trial index. Stats are those of the winning trial.
//
// Cancelling ctx stops scheduling further trials; trials already running
// finish their search. The context error is returned in that case.
//
// Errors: ErrInvalidTrials, input sentinels wrapping ErrInvalidInput, ctx.Err().
func MultiStart(ctx context.Context, dist matrix.Matrix, opts Options, trials int) (HeuristicResult, error) {
	if trials < 1 {
		return HeuristicResult{}, ErrInvalidTrials
	}
	n, w, err := loadWeights(dist)
	if err != nil {
		return HeuristicResult{}, err
	}
	if res, done := trivialHeuristic(n, w); done {
		return res, nil
	}

	// Derive every stream up front: deriveRNG consumes the base source.
	var (
		base    = opts.source()
		streams = make([]*rand.Rand, trials)
		results = make([]HeuristicResult, trials)
		t       int
	)
	for t = 0; t < trials; t++ {
		streams[t] = deriveRNG(base, uint64(t))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for t = 0; t < trials; t++ {
		trial := t
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[trial] = localSearch(w, n, streams[trial])

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return HeuristicResult{}, err
	}

	var winner = 0
	for t = 1; t < trials; t++ {
		if results[t].Cost < results[winner].Cost {
			winner = t
		}
	}

	return results[winner], nil
}
