package preference

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/teampair/matrix"
)

// noiseScale converts a noise factor into a half-width in cost units:
// bound = floor(factor * noiseScale). A factor of 0.1 gives ±1.
const noiseScale = 10

// maxNoiseBound caps the half-width so noisy costs stay far inside the
// solvers' int64 range and 2*bound+1 cannot overflow.
const maxNoiseBound = math.MaxInt32

// ValidateRoster checks that leaders and juniors have equal length and that
// no identifier repeats within a role.
//
// Complexity: O(n) time, O(n) extra space.
func ValidateRoster(leaders, juniors []EmployeeID) error {
	if len(leaders) != len(juniors) {
		return fmt.Errorf("%d leaders, %d juniors: %w", len(leaders), len(juniors), ErrUnequalRoster)
	}
	if err := validateUnique("leader", leaders); err != nil {
		return err
	}

	return validateUnique("junior", juniors)
}

// validateUnique rejects repeated IDs within one role.
func validateUnique(role string, ids []EmployeeID) error {
	seen := make(map[EmployeeID]struct{}, len(ids))
	var ok bool
	for _, id := range ids {
		if _, ok = seen[id]; ok {
			return fmt.Errorf("%s %d: %w", role, id, ErrDuplicateEmployee)
		}
		seen[id] = struct{}{}
	}

	return nil
}

// BuildCostMatrix returns the N×N compatibility matrix
//
//	m[i][j] = -(leaderPrefs.Score(leaders[i], juniors[j]) + juniorPrefs.Score(juniors[j], leaders[i]))
//
// Contracts:
//   - len(leaders) == len(juniors) (else ErrUnequalRoster);
//   - IDs are unique within each role (else ErrDuplicateEmployee);
//   - nil Books are legal and score everything at the baseline.
//
// N == 0 yields an empty 0×0 matrix.
//
// Complexity: O(N² · L) where L is the longest wishlist.
func BuildCostMatrix(leaders, juniors []EmployeeID, leaderPrefs, juniorPrefs Book) (*matrix.Dense, error) {
	if err := ValidateRoster(leaders, juniors); err != nil {
		return nil, err
	}
	n := len(leaders)
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	var (
		i, j   int
		ls, js int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			ls = leaderPrefs.Score(leaders[i], juniors[j])
			js = juniorPrefs.Score(juniors[j], leaders[i])
			if err = m.Set(i, j, -matrix.Cost(ls+js)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// NoiseBound returns the half-width of the integer noise interval for factor.
// Negative, non-finite, or factors whose half-width exceeds math.MaxInt32
// return ErrBadNoiseFactor.
func NoiseBound(factor float64) (int, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor < 0 {
		return 0, ErrBadNoiseFactor
	}
	scaled := math.Floor(factor * noiseScale)
	if scaled > maxNoiseBound {
		return 0, fmt.Errorf("half-width %.0f above %d: %w", scaled, maxNoiseBound, ErrBadNoiseFactor)
	}

	return int(scaled), nil
}

// Perturb returns base plus a noise matrix whose cells are independent
// uniform integers drawn from [-b, b], b = NoiseBound(factor). Noise cells are
// drawn in row-major order, so a given rng state always produces the same
// matrix. With b == 0 the copy is exact and rng is not consumed.
//
// Complexity: O(N²).
func Perturb(base matrix.Matrix, factor float64, rng *rand.Rand) (*matrix.Dense, error) {
	bound, err := NoiseBound(factor)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	if bound == 0 {
		return matrix.Apply(base, func(_, _ int, v matrix.Cost) matrix.Cost { return v })
	}
	if err = matrix.ValidateNotNil(base); err != nil {
		return nil, err
	}

	noise, err := matrix.NewDense(base.Rows(), base.Cols())
	if err != nil {
		return nil, err
	}
	var (
		span = 2*bound + 1
		i, j int
	)
	for i = 0; i < base.Rows(); i++ {
		for j = 0; j < base.Cols(); j++ {
			if err = noise.Set(i, j, matrix.Cost(rng.Intn(span)-bound)); err != nil {
				return nil, err
			}
		}
	}

	return matrix.Add(base, noise)
}
