package assign_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/matrix"
	"github.com/stretchr/testify/require"
)

func TestHungarian_Mirrored2x2(t *testing.T) {
	m := mustDense(t, [][]matrix.Cost{{-4, -2}, {-2, -4}})

	a, err := assign.Hungarian{}.Solve(m)
	require.NoError(t, err)
	require.Equal(t, assign.Assignment{0, 1}, a)
}

func TestHungarian_ClassicInstance(t *testing.T) {
	// Textbook instance with optimum 140 (rows → cols 1,0,2,3... checked by brute force).
	m := mustDense(t, [][]matrix.Cost{
		{82, 83, 69, 92},
		{77, 37, 49, 92},
		{11, 69, 5, 86},
		{8, 9, 98, 23},
	})

	a, err := assign.Hungarian{}.Solve(m)
	require.NoError(t, err)
	require.NoError(t, assign.ValidatePermutation(a, 4))

	cost, err := assign.TotalCost(m, a)
	require.NoError(t, err)
	require.Equal(t, matrix.Cost(140), cost)
	require.Equal(t, bruteForceMin(t, m), cost)
}

// TestHungarian_MatchesBruteForce compares against exhaustive search on
// many small random instances, including negative costs.
func TestHungarian_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(6)
		m := randomDense(t, n, -20, 20, rng)

		a, err := assign.Hungarian{}.Solve(m)
		require.NoError(t, err)
		require.NoError(t, assign.ValidatePermutation(a, n))

		got, err := assign.TotalCost(m, a)
		require.NoError(t, err)
		require.Equal(t, bruteForceMin(t, m), got, "trial %d\n%s", trial, m)
	}
}

func TestHungarian_NeverWorseThanGreedy(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(12)
		m := randomDense(t, n, -10, 0, rng)

		h, err := assign.Hungarian{}.Solve(m)
		require.NoError(t, err)
		g, err := assign.Greedy{}.Solve(m)
		require.NoError(t, err)

		hc, err := assign.TotalCost(m, h)
		require.NoError(t, err)
		gc, err := assign.TotalCost(m, g)
		require.NoError(t, err)
		require.LessOrEqual(t, hc, gc)
	}
}

func TestHungarian_DoesNotMutateInput(t *testing.T) {
	m := mustDense(t, [][]matrix.Cost{{3, 1}, {2, 7}})
	before := m.String()

	_, err := assign.Hungarian{}.Solve(m)
	require.NoError(t, err)
	require.Equal(t, before, m.String())
}

func TestHungarian_Deterministic(t *testing.T) {
	// All-equal costs: every permutation is optimal; repeated runs must agree.
	m := mustDense(t, [][]matrix.Cost{{-2, -2, -2}, {-2, -2, -2}, {-2, -2, -2}})

	first, err := assign.Hungarian{}.Solve(m)
	require.NoError(t, err)
	for k := 0; k < 5; k++ {
		again, err := assign.Hungarian{}.Solve(m)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	require.NoError(t, assign.ValidatePermutation(first, 3))
}

func TestHungarian_Errors(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = assign.Hungarian{}.Solve(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = assign.Hungarian{}.Solve(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestHungarian_Empty(t *testing.T) {
	m, err := matrix.NewSquare(0)
	require.NoError(t, err)

	a, err := assign.Hungarian{}.Solve(m)
	require.NoError(t, err)
	require.Empty(t, a)
}
