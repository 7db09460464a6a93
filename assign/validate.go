package assign

import (
	"fmt"

	"github.com/katalvlaran/teampair/matrix"
)

// ValidatePermutation verifies that len(a) == n and that a contains every
// value of 0..n-1 exactly once.
//
// Complexity: O(n) time and space.
func ValidatePermutation(a Assignment, n int) error {
	if len(a) != n {
		return fmt.Errorf("length %d, want %d: %w", len(a), n, ErrNotPermutation)
	}
	seen := make([]bool, n)

	var i, col int
	for i, col = range a {
		if col < 0 || col >= n {
			return fmt.Errorf("row %d -> column %d out of range: %w", i, col, ErrNotPermutation)
		}
		if seen[col] {
			return fmt.Errorf("row %d -> column %d used twice: %w", i, col, ErrNotPermutation)
		}
		seen[col] = true
	}

	return nil
}

// prefetch validates m as square and copies it into a flat row-major buffer
// w[i*n+j], removing interface indirection from solver hot loops.
//
// Complexity: O(n²).
func prefetch(m matrix.Matrix) ([]matrix.Cost, int, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, 0, err
	}
	n := m.Rows()
	w := make([]matrix.Cost, n*n)

	var (
		i, j int
		x    matrix.Cost
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, 0, err
			}
			w[i*n+j] = x
		}
	}

	return w, n, nil
}
