// Package teams - harmonic-mean objective.
//
// The Evaluator precomputes sat[i][j] = leaderScore(i, j) + juniorScore(j, i)
// once per roster, so scoring an assignment is O(N) table lookups and the
// local search can compare swaps in O(1).
package teams

import (
	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/preference"
)

// Evaluator scores assignments against the noise-free preferences.
// It is immutable after construction and safe for concurrent use.
type Evaluator struct {
	n   int
	sat []int // row-major N×N satisfaction table, every entry ≥ 2
}

// NewEvaluator builds the satisfaction table for a validated roster.
//
// Errors: preference.ErrUnequalRoster, preference.ErrDuplicateEmployee.
// Complexity: O(N² · L), L = longest wishlist.
func NewEvaluator(leaders, juniors []preference.EmployeeID, leaderPrefs, juniorPrefs preference.Book) (*Evaluator, error) {
	if err := preference.ValidateRoster(leaders, juniors); err != nil {
		return nil, err
	}
	n := len(leaders)
	ev := &Evaluator{n: n, sat: make([]int, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			ev.sat[i*n+j] = leaderPrefs.Score(leaders[i], juniors[j]) + juniorPrefs.Score(juniors[j], leaders[i])
		}
	}

	return ev, nil
}

// Size returns N.
func (ev *Evaluator) Size() int { return ev.n }

// Satisfaction returns the satisfaction of pairing leader i with junior j.
// Indices must be in range.
func (ev *Evaluator) Satisfaction(i, j int) int { return ev.sat[i*ev.n+j] }

// Satisfactions returns the per-pair satisfaction values of a.
//
// Errors: assign.ErrNotPermutation.
func (ev *Evaluator) Satisfactions(a assign.Assignment) ([]int, error) {
	if err := assign.ValidatePermutation(a, ev.n); err != nil {
		return nil, err
	}
	out := make([]int, ev.n)
	for i, j := range a {
		out[i] = ev.Satisfaction(i, j)
	}

	return out, nil
}

// HarmonicMean returns N / Σ 1/satisfaction for a (0 when N == 0).
//
// Errors: assign.ErrNotPermutation.
// Complexity: O(N).
func (ev *Evaluator) HarmonicMean(a assign.Assignment) (float64, error) {
	if err := assign.ValidatePermutation(a, ev.n); err != nil {
		return 0, err
	}

	return ev.harmonicMean(a), nil
}

// harmonicMean is HarmonicMean without validation, for trusted callers.
func (ev *Evaluator) harmonicMean(a assign.Assignment) float64 {
	if ev.n == 0 {
		return 0
	}
	var (
		inv     float64
		s       int
		first   = ev.Satisfaction(0, a[0])
		uniform = true
	)
	for i, j := range a {
		s = ev.Satisfaction(i, j)
		uniform = uniform && s == first
		inv += 1 / float64(s)
	}
	// Summing N rounded reciprocals can drift by an ulp; equal terms are exact.
	if uniform {
		return float64(first)
	}

	return float64(ev.n) / inv
}

// HarmonicMean returns len(values) / Σ 1/v. An empty slice yields 0.
// Values must be positive; equal values v give exactly v back.
func HarmonicMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var (
		inv     float64
		uniform = true
	)
	for _, v := range values {
		uniform = uniform && v == values[0]
		inv += 1 / v
	}
	if uniform {
		return values[0]
	}

	return float64(len(values)) / inv
}
