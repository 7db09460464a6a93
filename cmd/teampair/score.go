package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/roster"
	"github.com/katalvlaran/teampair/teams"
)

type scoreFlags struct {
	file       string
	assignment string
	report     string
	fromReport bool
}

func (a *app) scoreCmd() *cobra.Command {
	var f scoreFlags
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an existing pairing against a roster",
		Long: `Evaluates a pairing and prints per-team satisfaction and the harmonic mean.

The pairing is either a comma-separated list of junior indices, one per
leader in roster order, or a teams file written by "teampair build".

Examples:
  teampair score -f roster.yaml -a 2,0,1
  teampair score -f roster.yaml -r teams.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.fromReport = !cmd.Flags().Changed("assignment")
			return a.runScore(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "roster YAML file (required)")
	fl.StringVarP(&f.assignment, "assignment", "a", "", "junior index per leader, e.g. 2,0,1")
	fl.StringVarP(&f.report, "report", "r", "", "teams file produced by build")
	_ = cmd.MarkFlagRequired("file")
	cmd.MarkFlagsOneRequired("assignment", "report")
	cmd.MarkFlagsMutuallyExclusive("assignment", "report")

	return cmd
}

func (a *app) runScore(cmd *cobra.Command, f scoreFlags) error {
	r, err := a.loadRoster(f.file)
	if err != nil {
		return err
	}

	var asg assign.Assignment
	if f.fromReport {
		asg, err = assignmentFromReport(r, f.report)
	} else {
		asg, err = parseAssignment(f.assignment)
	}
	if err != nil {
		return err
	}

	h, sats, err := teams.Score(asg, r.LeaderIDs(), r.JuniorIDs(), r.LeaderBook(), r.JuniorBook())
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}
	ts, err := teams.Assemble(asg, r.LeaderIDs(), r.JuniorIDs())
	if err != nil {
		return fmt.Errorf("score: %w", err)
	}
	a.logger.Debug("pairing scored", zap.Float64("harmonic_mean", h), zap.Ints("satisfaction", sats))

	return roster.EncodeReport(cmd.OutOrStdout(), r.NewReport(ts, sats, h))
}

// parseAssignment parses "2,0,1" into an Assignment. Blank input yields an
// empty assignment, which is valid only for an empty roster.
func parseAssignment(s string) (assign.Assignment, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return assign.Assignment{}, nil
	}
	parts := strings.Split(s, ",")
	out := make(assign.Assignment, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("assignment position %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

func assignmentFromReport(r *roster.Roster, path string) (assign.Assignment, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	defer fh.Close()

	rep, err := roster.DecodeReport(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r.Assignment(rep.Teams)
}
