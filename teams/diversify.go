// Package teams - multi-start diversification.
//
// The Hungarian solver returns one deterministic optimum of the cost *sum*,
// which is not the objective finally judged (harmonic mean). Diversify
// perturbs the cost matrix with small symmetric noise, once per round, and
// collects the answers of every solver on every noisy variant, giving the
// selection step several distinct, near-optimal starting points.
//
// Contracts:
//   - base is the noise-free N×N cost matrix; it is never mutated.
//   - ev scores on noise-free preferences, so noise only steers the solvers.
//   - Candidate order is fixed: round-major, then solver order.
//   - Each round owns its RNG stream (derived up front), so the output does
//     not depend on Parallelism or scheduling.
//   - Solvers run concurrently when Parallelism > 1 and must be stateless.
//
// Complexity: O(Rounds · Σ cost(solver)) ≈ O(Rounds · N³) with defaults.
package teams

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/matrix"
	"github.com/katalvlaran/teampair/preference"
)

// Diversify returns Rounds × len(Solvers) scored candidates.
//
// Errors: option sentinels, matrix shape errors, matrix.ErrDimensionMismatch
// when base and ev disagree on N, solver errors, assign.ErrNotPermutation
// from a misbehaving solver, and ctx.Err() on cancellation.
func Diversify(ctx context.Context, base matrix.Matrix, ev *Evaluator, opts Options) ([]Candidate, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(base); err != nil {
		return nil, err
	}
	n := base.Rows()
	if ev == nil || ev.Size() != n {
		return nil, fmt.Errorf("diversify: evaluator size mismatch: %w", matrix.ErrDimensionMismatch)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var (
		k       = len(opts.Solvers)
		streams = roundStreams(opts.baseRand(), opts.Rounds)
		cands   = make([]Candidate, opts.Rounds*k)
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Parallelism)
	for r := 0; r < opts.Rounds; r++ {
		r := r
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			noisy, err := preference.Perturb(base, opts.NoiseFactor, streams[r])
			if err != nil {
				return fmt.Errorf("round %d: %w", r, err)
			}

			var a assign.Assignment
			for s, solver := range opts.Solvers {
				if a, err = solver.Solve(noisy); err != nil {
					return fmt.Errorf("round %d %s: %w", r, solver.Name(), err)
				}
				if err = assign.ValidatePermutation(a, n); err != nil {
					return fmt.Errorf("round %d %s: %w", r, solver.Name(), err)
				}
				cands[r*k+s] = Candidate{
					Assignment: a,
					Score:      ev.harmonicMean(a),
					Round:      r,
					Solver:     solver.Name(),
				}
				log.Debug("candidate scored",
					zap.Int("round", r),
					zap.String("solver", solver.Name()),
					zap.Float64("harmonic_mean", cands[r*k+s].Score),
				)
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return cands, nil
}

// Best returns the highest-scoring candidate; ties go to the earliest one.
// ok is false for an empty slice.
func Best(cands []Candidate) (best Candidate, ok bool) {
	for i, c := range cands {
		if i == 0 || c.Score > best.Score {
			best = c
		}
	}

	return best, len(cands) > 0
}
