package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/qanneal/anneal"
	"github.com/katalvlaran/qanneal/anneal/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a config file and run the solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, configPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML or JSON run config (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-sample progress")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runSolve(cmd *cobra.Command, configPath string, verbose bool) error {
	run, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("qanneal: loading config: %w", err)
	}

	level := zerolog.Disabled
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	interaction, ranges := run.Problem()
	opts := append(run.Options(), anneal.WithLogger(logger))

	results, err := anneal.Solve(interaction, ranges, run.NumSweeps, opts...)
	if err != nil {
		return fmt.Errorf("qanneal: solving: %w", err)
	}

	return printReport(cmd, results)
}

type report struct {
	RunID      string         `json:"run_id"`
	Summary    anneal.Summary `json:"summary"`
	BestEnergy float64        `json:"best_energy"`
	Best       map[string]int `json:"best_assignment"`
}

func printReport(cmd *cobra.Command, results *anneal.Results) error {
	best := results.Best()
	assignment := map[string]int{}
	bestEnergy := 0.0
	if len(best) > 0 {
		bestEnergy = best[0].Energy
		for label, value := range best[0].Assignment {
			assignment[label.String()] = value
		}
	}

	out := report{
		RunID:      results.RunID.String(),
		Summary:    results.Summary(),
		BestEnergy: bestEnergy,
		Best:       assignment,
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}
