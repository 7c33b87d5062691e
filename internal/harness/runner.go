// Package harness runs the exact and heuristic solvers on generated instances
// of increasing size and reports runtimes and costs.
package harness

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/openpath/internal/config"
	"github.com/katalvlaran/openpath/matrix"
	"github.com/katalvlaran/openpath/tsp"
)

// heuristicStream offsets the heuristic seed stream from the instance stream.
const heuristicStream = 1 << 32

// Runner executes one benchmark sweep.
type Runner struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *Metrics
}

// NewRunner wires a Runner; a nil logger is replaced by zap.NewNop.
func NewRunner(cfg *config.Config, logger *zap.Logger, metrics *Metrics) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{Config: cfg, Logger: logger, Metrics: metrics}
}

// Run benchmarks every size in [MinSize, MaxSize] and returns the records in
// ascending size order. Sizes run on at most Parallelism goroutines; with
// Parallelism > 1 the runtimes include scheduling contention.
func (r *Runner) Run(ctx context.Context) ([]Record, error) {
	cfg := r.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	records := make([]Record, cfg.MaxSize-cfg.MinSize+1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i := range records {
		idx, size := i, cfg.MinSize+i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := r.runSize(gctx, size)
			if err != nil {
				return fmt.Errorf("size %d: %w", size, err)
			}
			records[idx] = rec

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.Logger.Info("benchmark finished",
		zap.Int("min_size", cfg.MinSize),
		zap.Int("max_size", cfg.MaxSize),
		zap.Int("trials", cfg.Trials))

	return records, nil
}

// Instance returns the generated distance matrix for size; it depends only on
// the configured seed, weight range and size.
func (r *Runner) Instance(size int) (*matrix.Dense, error) {
	cfg := r.Config
	rng := rand.New(rand.NewSource(tsp.DeriveSeed(cfg.Seed, uint64(size))))

	return matrix.NewRandomSymmetric(size, rng, cfg.MinWeight, cfg.MaxWeight)
}

func (r *Runner) runSize(ctx context.Context, size int) (Record, error) {
	dist, err := r.Instance(size)
	if err != nil {
		return Record{}, fmt.Errorf("generate instance: %w", err)
	}

	rec := Record{Size: size}

	rec.ExactCost, rec.ExactRuntime, err = r.timed(SolverExact, size, func() (float64, error) {
		return tsp.SolveExact(dist)
	})
	if err != nil {
		return Record{}, err
	}

	opts := tsp.Options{Seed: tsp.DeriveSeed(r.Config.Seed, heuristicStream+uint64(size))}
	var res tsp.HeuristicResult
	rec.HeuristicCost, rec.HeuristicRuntime, err = r.timed(SolverHeuristic, size, func() (float64, error) {
		var hErr error
		res, hErr = tsp.MultiStart(ctx, dist, opts, r.Config.Trials)

		return res.Cost, hErr
	})
	if err != nil {
		return Record{}, err
	}
	rec.Iterations = res.Stats.Iterations
	rec.Restarts = res.Stats.Restarts

	return rec, nil
}

// timed runs fn, logs the outcome and feeds the metrics.
func (r *Runner) timed(solver string, size int, fn func() (float64, error)) (float64, time.Duration, error) {
	start := time.Now()
	cost, err := fn()
	dur := time.Since(start)

	if err != nil {
		r.Logger.Error("solver failed",
			zap.String("solver", solver),
			zap.Int("size", size),
			zap.Duration("duration", dur),
			zap.Error(err))

		return 0, dur, fmt.Errorf("%s: %w", solver, err)
	}

	r.Logger.Debug("solver finished",
		zap.String("solver", solver),
		zap.Int("size", size),
		zap.Float64("cost", cost),
		zap.Duration("duration", dur))
	r.Metrics.Observe(solver, size, cost, dur)

	return cost, dur, nil
}
