// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for dimension preconditions.
//   - Keep kernels minimal by delegating nil/shape/square/invertible checks here.
//   - Model the four Check flags as independent fallible checks composed by Validate.
//
// Determinism & Performance:
//   - All checks except CheckInvertible are O(1) and allocate nothing.
//   - CheckInvertible evaluates a determinant (factorial time); request it only
//     when the caller would compute the determinant anyway.
//
// Note:
//   - Validate evaluates flags in a fixed order:
//     nil → CheckSquare → CheckSame → CheckReflect → CheckInvertible.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Width == Height).
//
// Errors: ErrNilMatrix if nil, ErrNotSquare otherwise.
// Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.width != m.height {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.height, m.width), ErrNotSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b have identical width and height.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (which is also ErrDimensionMismatch).
// Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.width != b.width {
		return validatorErrorf("ValidateSameShape: Width", ErrShapeMismatch)
	}
	if a.height != b.height {
		return validatorErrorf("ValidateSameShape: Height", ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Width == b.Height (the REFLECT rule).
//
// Errors: ErrNilMatrix, ErrNotConformable (which is also ErrDimensionMismatch).
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.width != b.height {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible(%dx%d · %dx%d)", a.height, a.width, b.height, b.width),
			ErrNotConformable)
	}

	return nil
}

// ValidateInvertible ensures m is square with a nonzero determinant.
//
// Errors: ErrNilMatrix, ErrNotSquare, ErrNotInvertible.
// Complexity: that of Determinant (factorial in the size).
func ValidateInvertible(m *Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateInvertible", err)
	}
	det, err := m.determinant()
	if err != nil {
		return validatorErrorf("ValidateInvertible", err)
	}
	if det == 0 {
		return validatorErrorf("ValidateInvertible", ErrNotInvertible)
	}

	return nil
}

// Validate runs every check set in checks against receiver m and operand o.
//
// Implementation:
//   - Stage 1: both must be non-nil.
//   - Stage 2: evaluate flags in the fixed order Square → Same → Reflect → Invertible;
//     the first failure is returned.
//
// Behavior highlights:
//   - CheckSquare and CheckInvertible inspect the operand o. For single-matrix
//     operations pass the receiver as both arguments.
//   - CheckNone always succeeds for non-nil inputs.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrShapeMismatch, ErrNotConformable, ErrNotInvertible.
func Validate(m, o *Matrix, checks Check) error {
	if m == nil || o == nil {
		return validatorErrorf("Validate", ErrNilMatrix)
	}
	if checks.Has(CheckSquare) {
		if err := ValidateSquare(o); err != nil {
			return err
		}
	}
	if checks.Has(CheckSame) {
		if err := ValidateSameShape(m, o); err != nil {
			return err
		}
	}
	if checks.Has(CheckReflect) {
		if err := ValidateMulCompatible(m, o); err != nil {
			return err
		}
	}
	if checks.Has(CheckInvertible) {
		if err := ValidateInvertible(o); err != nil {
			return err
		}
	}

	return nil
}
