package assign_test

import (
	"testing"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/matrix"
	"github.com/stretchr/testify/require"
)

func TestGreedy_TakesCheapestUnused(t *testing.T) {
	m := mustDense(t, [][]matrix.Cost{
		{5, 1, 3},
		{2, 1, 4},
		{0, 9, 9},
	})

	a, err := assign.Greedy{}.Solve(m)
	require.NoError(t, err)
	// Row 0 takes col 1; row 1 then col 0; row 2 is left with col 2.
	require.Equal(t, assign.Assignment{1, 0, 2}, a)
}

func TestGreedy_FirstIndexWinsTies(t *testing.T) {
	m := mustDense(t, [][]matrix.Cost{
		{-3, -3, -3},
		{-3, -3, -3},
		{-3, -3, -3},
	})

	a, err := assign.Greedy{}.Solve(m)
	require.NoError(t, err)
	require.Equal(t, assign.Assignment{0, 1, 2}, a)
}

// TestGreedy_NoBacktracking shows the myopic first pick forcing a bad tail.
func TestGreedy_NoBacktracking(t *testing.T) {
	m := mustDense(t, [][]matrix.Cost{{1, 2}, {1, 100}})

	g, err := assign.Greedy{}.Solve(m)
	require.NoError(t, err)
	require.Equal(t, assign.Assignment{0, 1}, g)

	h, err := assign.Hungarian{}.Solve(m)
	require.NoError(t, err)
	require.Equal(t, assign.Assignment{1, 0}, h)

	gc, _ := assign.TotalCost(m, g)
	hc, _ := assign.TotalCost(m, h)
	require.Equal(t, matrix.Cost(101), gc)
	require.Equal(t, matrix.Cost(3), hc)
}

// TestSolvers_IdenticalPreferences: every leader wants the same junior.
// The solvers may disagree, but both must return permutations.
func TestSolvers_IdenticalPreferences(t *testing.T) {
	m := mustDense(t, [][]matrix.Cost{
		{-6, -3, -2, -1},
		{-6, -3, -2, -1},
		{-6, -3, -2, -1},
		{-6, -3, -2, -1},
	})

	for _, s := range []assign.Solver{assign.Hungarian{}, assign.Greedy{}} {
		a, err := s.Solve(m)
		require.NoError(t, err, s.Name())
		require.NoError(t, assign.ValidatePermutation(a, 4), s.Name())
	}
}

func TestGreedy_Errors(t *testing.T) {
	rect, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	_, err = assign.Greedy{}.Solve(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
