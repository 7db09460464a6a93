package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/teampair/roster"
	"github.com/katalvlaran/teampair/teams"
)

type buildFlags struct {
	file        string
	output      string
	seed        int64
	rounds      int
	noise       float64
	stagnation  int
	parallelism int
}

func (a *app) buildCmd() *cobra.Command {
	f := buildFlags{
		seed:        a.cfg.Seed,
		rounds:      a.cfg.Rounds,
		noise:       a.cfg.Noise,
		stagnation:  a.cfg.Stagnation,
		parallelism: a.cfg.Parallelism,
	}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build teams from a roster file",
		Long: `Reads a roster, runs the pairing engine and writes the teams as YAML.

Example:
  teampair build -f roster.yaml -o teams.yaml --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBuild(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "roster YAML file (required)")
	fl.StringVarP(&f.output, "output", "o", "", "write teams here instead of stdout")
	fl.Int64Var(&f.seed, "seed", f.seed, "noise seed; 0 picks one from the clock")
	fl.IntVar(&f.rounds, "rounds", f.rounds, "diversification rounds")
	fl.Float64Var(&f.noise, "noise", f.noise, "noise factor (half-width = floor(noise*10))")
	fl.IntVar(&f.stagnation, "stagnation", f.stagnation,
		"idle local-search passes allowed (>= 1); the search already ends on the first pass without a swap, so every valid value gives the same result")
	fl.IntVar(&f.parallelism, "parallel", f.parallelism, "rounds solved concurrently")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, f buildFlags) error {
	r, err := a.loadRoster(f.file)
	if err != nil {
		return err
	}

	seed := f.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Info("building teams",
		zap.String("roster", f.file),
		zap.Int("pairs", len(r.Leaders)),
		zap.Int64("seed", seed),
		zap.Int("rounds", f.rounds),
		zap.Float64("noise", f.noise),
	)

	res, err := teams.Build(cmd.Context(), r.LeaderIDs(), r.JuniorIDs(), r.LeaderBook(), r.JuniorBook(),
		teams.WithSeed(seed),
		teams.WithRounds(f.rounds),
		teams.WithNoiseFactor(f.noise),
		teams.WithStagnationLimit(f.stagnation),
		teams.WithParallelism(f.parallelism),
		teams.WithLogger(a.logger),
	)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	_, sats, err := teams.Score(res.Assignment, r.LeaderIDs(), r.JuniorIDs(), r.LeaderBook(), r.JuniorBook())
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	return writeReport(cmd.OutOrStdout(), f.output, r.NewReport(res.Teams, sats, res.HarmonicMean))
}

// loadRoster reads path and logs wishlist entries that match nobody.
func (a *app) loadRoster(path string) (*roster.Roster, error) {
	r, err := roster.LoadFile(path)
	if err != nil {
		return nil, err
	}
	for _, w := range r.Warnings() {
		a.logger.Warn("wishlist names unknown partners",
			zap.String("role", w.Role),
			zap.Int("owner", int(w.Owner)),
			zap.Any("unknown", w.Unknown),
		)
	}

	return r, nil
}

// writeReport encodes rep to path, or to stdout when path is empty.
func writeReport(stdout io.Writer, path string, rep roster.Report) (err error) {
	if path == "" {
		return roster.EncodeReport(stdout, rep)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("output: %w", cerr)
		}
	}()

	return roster.EncodeReport(out, rep)
}
