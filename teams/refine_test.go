package teams_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/teams"
	"github.com/stretchr/testify/require"
)

func TestRefine_FixesCrossedPairs(t *testing.T) {
	r := mirroredRoster()
	ev, err := teams.NewEvaluator(r.leaders, r.juniors, r.lp, r.jp)
	require.NoError(t, err)

	start := assign.Assignment{1, 0}
	got, stats, err := teams.Refine(start, ev, teams.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, assign.Assignment{0, 1}, got)
	require.Equal(t, assign.Assignment{1, 0}, start, "input must not be mutated")
	require.Equal(t, teams.RefineStats{Passes: 2, Swaps: 1}, stats)
}

func TestRefine_LocalOptimumIsFixedPoint(t *testing.T) {
	r := mirroredRoster()
	ev, err := teams.NewEvaluator(r.leaders, r.juniors, r.lp, r.jp)
	require.NoError(t, err)

	got, stats, err := teams.Refine(assign.Assignment{0, 1}, ev, teams.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, assign.Assignment{0, 1}, got)
	require.Equal(t, teams.RefineStats{Passes: 1, Swaps: 0}, stats)
}

// TestRefine_RandomInstances checks, on many random rosters, that the result
// is a permutation, never scores below its start, and that no single swap
// can improve it further.
func TestRefine_RandomInstances(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for trial := 0; trial < 60; trial++ {
		n := 2 + rng.Intn(10)
		r := randomRoster(n, rng)
		ev, err := teams.NewEvaluator(r.leaders, r.juniors, r.lp, r.jp)
		require.NoError(t, err)

		start := assign.Assignment(rng.Perm(n))
		h0, err := ev.HarmonicMean(start)
		require.NoError(t, err)

		got, _, err := teams.Refine(start, ev, teams.DefaultOptions())
		require.NoError(t, err)
		require.NoError(t, assign.ValidatePermutation(got, n))

		h, err := ev.HarmonicMean(got)
		require.NoError(t, err)
		require.GreaterOrEqual(t, h, h0)

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				trialA := got.Clone()
				trialA.Swap(i, j)
				ht, err := ev.HarmonicMean(trialA)
				require.NoError(t, err)
				require.LessOrEqual(t, ht, h+1e-12, "swap (%d,%d) improves a local optimum", i, j)
			}
		}
	}
}

// TestRefine_StagnationLimitDoesNotChangeResult pins that the search ends on
// its first idle pass whatever the limit.
func TestRefine_StagnationLimitDoesNotChangeResult(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for trial := 0; trial < 20; trial++ {
		n := 2 + rng.Intn(8)
		r := randomRoster(n, rng)
		ev, err := teams.NewEvaluator(r.leaders, r.juniors, r.lp, r.jp)
		require.NoError(t, err)
		start := assign.Assignment(rng.Perm(n))

		opts := teams.DefaultOptions()
		opts.StagnationLimit = 1
		low, lowStats, err := teams.Refine(start, ev, opts)
		require.NoError(t, err)

		opts.StagnationLimit = 1000
		high, highStats, err := teams.Refine(start, ev, opts)
		require.NoError(t, err)

		require.Equal(t, low, high)
		require.Equal(t, lowStats, highStats)
	}
}

// TestRefine_MonotonicAcrossPasses caps the number of passes and verifies
// that the objective never decreases as more passes are allowed.
func TestRefine_MonotonicAcrossPasses(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	r := randomRoster(12, rng)
	ev, err := teams.NewEvaluator(r.leaders, r.juniors, r.lp, r.jp)
	require.NoError(t, err)
	start := assign.Assignment(rng.Perm(12))

	opts := teams.DefaultOptions()
	prev, err := ev.HarmonicMean(start)
	require.NoError(t, err)
	for k := 1; k <= 8; k++ {
		opts.MaxPasses = k
		got, stats, err := teams.Refine(start, ev, opts)
		require.NoError(t, err)
		require.LessOrEqual(t, stats.Passes, k)

		h, err := ev.HarmonicMean(got)
		require.NoError(t, err)
		require.GreaterOrEqual(t, h, prev)
		prev = h
	}
}

func TestRefine_Errors(t *testing.T) {
	r := mirroredRoster()
	ev, err := teams.NewEvaluator(r.leaders, r.juniors, r.lp, r.jp)
	require.NoError(t, err)

	_, _, err = teams.Refine(assign.Assignment{0}, ev, teams.DefaultOptions())
	require.ErrorIs(t, err, assign.ErrNotPermutation)

	_, _, err = teams.Refine(assign.Assignment{0, 1}, nil, teams.DefaultOptions())
	require.ErrorIs(t, err, teams.ErrNilEvaluator)

	opts := teams.DefaultOptions()
	opts.StagnationLimit = 0
	_, _, err = teams.Refine(assign.Assignment{0, 1}, ev, opts)
	require.ErrorIs(t, err, teams.ErrBadStagnation)
}
