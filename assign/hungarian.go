// Package assign - Kuhn–Munkres (Hungarian) solver.
//
// The implementation is the classic O(n³) shortest-augmenting-path form with
// dual potentials u (rows) and v (columns):
//
//   - Rows are inserted one at a time. For row i a Dijkstra-like sweep over
//     columns grows an alternating tree using reduced costs c[i][j] − u[i] − v[j].
//   - minv[j] keeps the best reduced cost reaching column j; way[j] remembers
//     the predecessor column so the augmenting path can be flipped.
//   - After each sweep step potentials are shifted by delta so that reduced
//     costs stay non-negative and tree edges stay tight.
//
// Arithmetic is exact (int64), so the optimum is exact and ties are resolved
// by scan order: the first column with the smallest reduced cost wins.
//
// Contracts:
//   - m is square (ErrNonSquare otherwise) and non-nil (ErrNilMatrix).
//   - Costs may be negative; only their sum is minimised.
//   - |cost| must stay well below math.MaxInt64/4 so potentials cannot overflow.
package assign

import (
	"math"

	"github.com/katalvlaran/teampair/matrix"
)

// hungarianInf is the "unreached" sentinel for reduced costs.
const hungarianInf matrix.Cost = math.MaxInt64 / 4

// Hungarian is the optimal minimum-cost assignment solver.
type Hungarian struct{}

// Name implements Solver.
func (Hungarian) Name() string { return "hungarian" }

// Solve implements Solver. The result minimises Σ m[i][a[i]].
//
// Complexity: O(n³) time, O(n²) for the prefetched costs plus O(n) scratch.
func (Hungarian) Solve(m matrix.Matrix) (Assignment, error) {
	w, n, err := prefetch(m)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return Assignment{}, nil
	}
	at := func(i, j int) matrix.Cost { return w[i*n+j] }

	// 1-indexed scratch; index 0 is the virtual column/row of the sweep.
	var (
		u    = make([]matrix.Cost, n+1) // row potentials
		v    = make([]matrix.Cost, n+1) // column potentials
		p    = make([]int, n+1)         // p[j] = row matched to column j (0 = free)
		way  = make([]int, n+1)         // way[j] = previous column on the path
		minv = make([]matrix.Cost, n+1) // best reduced cost into column j
		used = make([]bool, n+1)        // column j already in the tree
	)

	var (
		i, j, j0, j1, i0 int
		delta, cur       matrix.Cost
	)
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= n; j++ {
			minv[j] = hungarianInf
			used[j] = false
		}

		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 = p[j0]
			delta = hungarianInf
			j1 = 0
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = at(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the augmenting path back to the virtual column.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	out := make(Assignment, n)
	for j = 1; j <= n; j++ {
		out[p[j]-1] = j - 1
	}

	return out, nil
}
