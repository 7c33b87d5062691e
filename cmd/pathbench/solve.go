package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/openpath/internal/harness"
	"github.com/katalvlaran/openpath/tsp"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		file   string
		trials int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one distance matrix given as YAML rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			if trials < 1 {
				trials = a.cfg.Trials
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}

			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			dist, err := harness.ReadMatrixYAML(f)
			if err != nil {
				return err
			}

			exact, err := tsp.ExactPath(dist)
			exactDone := err == nil
			switch {
			case errors.Is(err, tsp.ErrTooManyCities):
				a.logger.Warn("exact solver skipped",
					zap.Int("size", dist.Rows()),
					zap.Int("limit", tsp.MaxExactCities))
			case err != nil:
				return fmt.Errorf("exact: %w", err)
			}

			heur, err := tsp.MultiStart(cmd.Context(), dist, tsp.Options{Seed: seed}, trials)
			if err != nil {
				return fmt.Errorf("local search: %w", err)
			}
			a.logger.Debug("solved",
				zap.String("file", file),
				zap.Int("size", dist.Rows()),
				zap.Int("iterations", heur.Stats.Iterations),
				zap.Int("restarts", heur.Stats.Restarts))

			out := cmd.OutOrStdout()
			if exactDone {
				fmt.Fprintf(out, "exact cost:      %v\n", exact.Cost)
				fmt.Fprintf(out, "exact path:      %v\n", exact.Path)
			} else {
				fmt.Fprintf(out, "exact cost:      skipped (%d cities > limit %d)\n", dist.Rows(), tsp.MaxExactCities)
			}
			fmt.Fprintf(out, "heuristic cost:  %v\n", heur.Cost)
			fmt.Fprintf(out, "heuristic route: %v\n", heur.Route)

			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML file holding the matrix rows")
	cmd.Flags().IntVar(&trials, "trials", 0, "local search trials (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "search seed (default from config)")

	return cmd
}
