package assign

import (
	"errors"

	"github.com/katalvlaran/teampair/matrix"
)

// Sentinel errors returned by the assign package.
var (
	// ErrNotPermutation indicates that an Assignment is not a permutation of 0..n-1
	// (wrong length, out-of-range entry, or a repeated column).
	ErrNotPermutation = errors.New("assign: assignment is not a permutation")

	// ErrNoSolver indicates that a nil Solver was supplied.
	ErrNoSolver = errors.New("assign: solver is nil")
)

// Assignment maps row i (leader index) to column a[i] (junior index).
type Assignment []int

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	if a == nil {
		return nil
	}
	out := make(Assignment, len(a))
	copy(out, a)

	return out
}

// Swap exchanges the columns held by rows i and j in place.
// Swapping two entries of a permutation yields a permutation.
func (a Assignment) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

// Solver produces an Assignment for a square cost matrix.
// Implementations must return a permutation or an error, and must not
// mutate the matrix.
type Solver interface {
	// Name is a short identifier used in logs.
	Name() string

	// Solve returns a[i] = column for row i.
	Solve(m matrix.Matrix) (Assignment, error)
}

// Compile-time checks.
var (
	_ Solver = Hungarian{}
	_ Solver = Greedy{}
)
