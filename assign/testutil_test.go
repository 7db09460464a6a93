package assign_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from literal rows or fails the test.
func mustDense(t *testing.T, rows [][]matrix.Cost) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// randomDense fills an n×n matrix with integers in [lo, hi].
func randomDense(t *testing.T, n int, lo, hi int, rng *rand.Rand) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, matrix.Cost(lo+rng.Intn(hi-lo+1))))
		}
	}

	return m
}

// bruteForceMin enumerates all n! permutations (Heap's algorithm) and
// returns the minimum total cost. Only for tiny n.
func bruteForceMin(t *testing.T, m matrix.Matrix) matrix.Cost {
	t.Helper()
	n := m.Rows()
	perm := make(assign.Assignment, n)
	for i := range perm {
		perm[i] = i
	}

	best, err := assign.TotalCost(m, perm)
	require.NoError(t, err)

	c := make([]int, n)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				perm.Swap(0, i)
			} else {
				perm.Swap(c[i], i)
			}
			cost, err := assign.TotalCost(m, perm)
			require.NoError(t, err)
			if cost < best {
				best = cost
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return best
}
