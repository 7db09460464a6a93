// SPDX-License-Identifier: MIT

// Package matrix - element-wise kernels.
//
// Fixed i→j loop order; a *Dense fast-path walks the flat buffer directly,
// other implementations go through At/Set. Inputs are never mutated.

package matrix

// Add returns a new Dense holding a[i,j] + b[i,j].
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped).
// Complexity: O(r*c) time and space.
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf("Add", err)
	}
	r, c := a.Rows(), a.Cols()

	// Dense fast-path: single pass over both flat buffers.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		out := da.cloneDense()
		var k int
		for k = range out.data {
			out.data[k] += db.data[k]
		}

		return out, nil
	}

	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("Add", err)
	}
	var (
		i, j   int
		va, vb Cost
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if va, err = a.At(i, j); err != nil {
				return nil, matrixErrorf("Add", err)
			}
			if vb, err = b.At(i, j); err != nil {
				return nil, matrixErrorf("Add", err)
			}
			out.data[i*c+j] = va + vb
		}
	}

	return out, nil
}

// Apply returns a new Dense with out[i,j] = fn(i, j, m[i,j]).
// fn is called in row-major order exactly once per cell, which makes it
// safe to drive from a sequential random source.
//
// Complexity: O(r*c).
func Apply(m Matrix, fn func(i, j int, v Cost) Cost) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Apply", err)
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("Apply", err)
	}

	var (
		i, j int
		v    Cost
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("Apply", err)
			}
			out.data[i*c+j] = fn(i, j, v)
		}
	}

	return out, nil
}
