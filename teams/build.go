// Package teams - end-to-end pipeline.
package teams

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/preference"
)

// Build pairs every leader with exactly one junior.
//
// Stages:
//  1. Validate options and roster (equal counts, unique IDs).
//  2. Build the noise-free cost matrix and the Evaluator.
//  3. Diversify and keep the best candidate.
//  4. Refine it by pairwise swaps.
//  5. Assemble teams in leader order.
//
// An empty roster succeeds with an empty Result. Missing wishlists are
// legal and score at the baseline.
//
// Errors: option sentinels, preference.ErrUnequalRoster,
// preference.ErrDuplicateEmployee, ctx.Err().
func Build(
	ctx context.Context,
	leaders, juniors []preference.EmployeeID,
	leaderPrefs, juniorPrefs preference.Book,
	opts ...Option,
) (Result, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return Result{}, err
	}
	if err = preference.ValidateRoster(leaders, juniors); err != nil {
		return Result{}, err
	}
	if len(leaders) == 0 {
		return Result{Teams: []Team{}, Assignment: assign.Assignment{}}, nil
	}

	began := time.Now()
	base, err := preference.BuildCostMatrix(leaders, juniors, leaderPrefs, juniorPrefs)
	if err != nil {
		return Result{}, err
	}
	ev, err := NewEvaluator(leaders, juniors, leaderPrefs, juniorPrefs)
	if err != nil {
		return Result{}, err
	}

	cands, err := Diversify(ctx, base, ev, o)
	if err != nil {
		return Result{}, err
	}
	start, _ := Best(cands)

	final, stats, err := Refine(start.Assignment, ev, o)
	if err != nil {
		return Result{}, err
	}
	teams, err := Assemble(final, leaders, juniors)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Teams:        teams,
		Assignment:   final,
		HarmonicMean: ev.harmonicMean(final),
		Start:        start,
		Candidates:   len(cands),
		Refine:       stats,
	}
	o.Logger.Info("teams built",
		zap.Int("pairs", len(teams)),
		zap.Int("candidates", res.Candidates),
		zap.String("start_solver", start.Solver),
		zap.Int("start_round", start.Round),
		zap.Float64("start_harmonic_mean", start.Score),
		zap.Float64("harmonic_mean", res.HarmonicMean),
		zap.Int("passes", stats.Passes),
		zap.Int("swaps", stats.Swaps),
		zap.Duration("elapsed", time.Since(began)),
	)

	return res, nil
}

// Score evaluates an externally supplied assignment on the given roster and
// returns its harmonic mean together with the per-pair satisfactions.
//
// Errors: roster sentinels, assign.ErrNotPermutation.
func Score(
	a assign.Assignment,
	leaders, juniors []preference.EmployeeID,
	leaderPrefs, juniorPrefs preference.Book,
) (float64, []int, error) {
	ev, err := NewEvaluator(leaders, juniors, leaderPrefs, juniorPrefs)
	if err != nil {
		return 0, nil, err
	}
	sats, err := ev.Satisfactions(a)
	if err != nil {
		return 0, nil, err
	}

	return ev.harmonicMean(a), sats, nil
}
