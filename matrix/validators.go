// SPDX-License-Identifier: MIT

// Package matrix - shape validators.
//
// Each validator is O(1), side-effect free, and returns a wrapped sentinel
// (ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch) so that callers can
// match with errors.Is.

package matrix

import "reflect"

// validatorErrorf tags validator failures with the validator name.
func validatorErrorf(name string, err error) error {
	return matrixErrorf(name, err)
}

// ValidateNotNil rejects nil interfaces and typed-nil pointers.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	// A typed nil (*Dense)(nil) stored in the interface is still nil for us.
	if v := reflect.ValueOf(m); v.Kind() == reflect.Ptr && v.IsNil() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks Rows()==Cols(). Nil input yields ErrNilMatrix.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape checks that a and b have identical dimensions.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}
