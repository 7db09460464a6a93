package assign

import (
	"math"

	"github.com/katalvlaran/teampair/matrix"
)

// Greedy assigns rows in order 0..n-1; each row takes the unused column
// with the strictly lowest cost (the first such column on ties) and the
// choice is never revisited. An early cheap pick can force an expensive
// late one, so Greedy is a fast baseline only.
type Greedy struct{}

// Name implements Solver.
func (Greedy) Name() string { return "greedy" }

// Solve implements Solver.
//
// Complexity: O(n²) time, O(n) extra space (plus the O(n²) prefetch).
func (Greedy) Solve(m matrix.Matrix) (Assignment, error) {
	w, n, err := prefetch(m)
	if err != nil {
		return nil, err
	}

	var (
		out  = make(Assignment, n)
		used = make([]bool, n)
		i, j int
		best int
		low  matrix.Cost
		c    matrix.Cost
	)
	for i = 0; i < n; i++ {
		best = -1
		low = math.MaxInt64
		for j = 0; j < n; j++ {
			if used[j] {
				continue
			}
			c = w[i*n+j]
			// Non-improving candidates are skipped, so the first minimum wins.
			if best >= 0 && c >= low {
				continue
			}
			low = c
			best = j
		}
		out[i] = best
		used[best] = true
	}

	return out, nil
}
