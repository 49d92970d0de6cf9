// SPDX-License-Identifier: MIT

// Package matrix: shared argument checks. Kernels call these first and wrap
// the returned sentinel with their own tag. Composite checks run in a fixed
// order (nil operands, then shape), so the first failure is stable.
package matrix

import "fmt"

// validatorErrorf prefixes err with the validator name.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil Matrix, including a typed nil *Dense,
// with ErrNilMatrix.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateBooleanNotNil rejects a nil *Boolean with ErrNilMatrix.
func ValidateBooleanNotNil(m *Boolean) error {
	if m == nil {
		return validatorErrorf("ValidateBooleanNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateProductCompatible checks that a ⊗ b is defined: both operands
// present (ErrNilMatrix) and a.Cols() == b.Rows() (ErrBadShape).
func ValidateProductCompatible(a, b *Boolean) error {
	if err := ValidateBooleanNotNil(a); err != nil {
		return validatorErrorf("ValidateProductCompatible", err)
	}
	if err := ValidateBooleanNotNil(b); err != nil {
		return validatorErrorf("ValidateProductCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateProductCompatible: inner %d != %d", a.Cols(), b.Rows()),
			ErrBadShape,
		)
	}

	return nil
}

// ValidateSameShape checks that a and b can be compared cell by cell,
// as Difference does.
func ValidateSameShape(a, b *Boolean) error {
	if err := ValidateBooleanNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateBooleanNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrBadShape)
	}

	return nil
}

// ValidateRectangular checks a 2-D layout before it is copied into flat storage.
// Returns (rows, cols) on success.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrBadShape when any row length differs from the first.
func ValidateRectangular[T any](layout [][]T) (int, int, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return 0, 0, validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	cols := len(layout[0])
	for i := 1; i < len(layout); i++ {
		if len(layout[i]) != cols {
			return 0, 0, validatorErrorf(
				fmt.Sprintf("ValidateRectangular: row %d has %d cols, want %d", i, len(layout[i]), cols),
				ErrBadShape,
			)
		}
	}

	return len(layout), cols, nil
}

// ValidateVecLen fails with ErrBadShape unless len(x) == n.
func ValidateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: got %d, want %d", len(x), n), ErrBadShape)
	}

	return nil
}
