package assign

import "github.com/katalvlaran/teampair/matrix"

// TotalCost returns Σ m[i][a[i]] after checking that a is a permutation
// matching the order of m.
//
// Errors: matrix validation errors, ErrNotPermutation.
// Complexity: O(n).
func TotalCost(m matrix.Matrix, a Assignment) (matrix.Cost, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, err
	}
	if err := ValidatePermutation(a, m.Rows()); err != nil {
		return 0, err
	}

	var (
		sum matrix.Cost
		x   matrix.Cost
		err error
	)
	for i, j := range a {
		if x, err = m.At(i, j); err != nil {
			return 0, err
		}
		sum += x
	}

	return sum, nil
}
