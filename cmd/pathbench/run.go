package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/openpath/internal/harness"
)

type runFlags struct {
	minSize, maxSize    int
	seed                int64
	trials, parallelism int
	csvPath, metrics    string
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark sweep and write the results CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.apply(cmd, a); err != nil {
				return err
			}
			return runBenchmark(cmd, a)
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&f.minSize, "min-size", 0, "smallest instance size")
	fs.IntVar(&f.maxSize, "max-size", 0, "largest instance size")
	fs.Int64Var(&f.seed, "seed", 0, "base seed for instances and search")
	fs.IntVar(&f.trials, "trials", 0, "local search trials per size")
	fs.IntVar(&f.parallelism, "parallelism", 0, "sizes benchmarked concurrently")
	fs.StringVar(&f.csvPath, "csv", "", "results CSV path (empty string disables)")
	fs.StringVar(&f.metrics, "metrics", "", "Prometheus textfile output path")

	return cmd
}

// apply overlays explicitly set flags onto the loaded config.
func (f *runFlags) apply(cmd *cobra.Command, a *app) error {
	fs := cmd.Flags()
	cfg := a.cfg
	if fs.Changed("min-size") {
		cfg.MinSize = f.minSize
	}
	if fs.Changed("max-size") {
		cfg.MaxSize = f.maxSize
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("trials") {
		cfg.Trials = f.trials
	}
	if fs.Changed("parallelism") {
		cfg.Parallelism = f.parallelism
	}
	if fs.Changed("csv") {
		cfg.CSVPath = f.csvPath
	}
	if fs.Changed("metrics") {
		cfg.MetricsPath = f.metrics
	}

	return cfg.Validate()
}

func runBenchmark(cmd *cobra.Command, a *app) error {
	cfg := a.cfg
	metrics := harness.NewMetrics()
	runner := harness.NewRunner(cfg, a.logger, metrics)

	records, err := runner.Run(cmd.Context())
	if err != nil {
		a.logger.Error("benchmark failed", zap.Error(err))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), harness.RenderTable(records))

	if cfg.CSVPath != "" {
		if err = harness.SaveCSV(cfg.CSVPath, records); err != nil {
			return err
		}
		a.logger.Info("results written", zap.String("path", cfg.CSVPath), zap.Int("rows", len(records)))
	}
	if cfg.MetricsPath != "" {
		if err = metrics.WriteTextfile(cfg.MetricsPath); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.logger.Info("metrics written", zap.String("path", cfg.MetricsPath))
	}

	return nil
}
