// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points that read naturally as
//     free functions (Sum(a, b), Det(m), Pow(m, 3)).
//   - Avoid logic duplication: each facade delegates to exactly one
//     canonical method; none of them mutate their arguments.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the methods.
//   - Validation happens in the methods; facades only forward.

package matrix

// ---------- Constructors ----------

// NewZeros returns a zero-filled matrix of the given width and height.
// Thin alias of Create(width, height, 0).
func NewZeros(width, height int, opts ...Option) (*Matrix, error) {
	return Create(width, height, 0, opts...)
}

// NewSquare returns a size×size zero matrix (Create with the height defaulted
// to the width).
func NewSquare(size int, opts ...Option) (*Matrix, error) {
	return Create(size, size, 0, opts...)
}

// Identity returns I_n: ones on the main diagonal, zeros elsewhere.
//
// Errors: ErrInvalidDimensions for negative size.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(size int, opts ...Option) (*Matrix, error) {
	id, err := Create(size, size, 0, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		id.table[i][i] = 1
	}

	return id, nil
}

// ZerosLike returns a zero matrix with the shape and policy of m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return fromTable(newTable(m.width, m.height), m.validateNaNInf), nil
}

// IdentityLike returns the identity of m's size; m must be square.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	id, err := Identity(m.width)
	if err != nil {
		return nil, err
	}
	id.validateNaNInf = m.validateNaNInf

	return id, nil
}

// ---------- Arithmetic (pure; operands are never mutated) ----------

// Sum is an alias for a.Added(b).
func Sum(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Added(b)
}

// Diff is an alias for a.Subtracted(b).
func Diff(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return a.Subtracted(b)
}

// Product is an alias for a.Multiplied(b).
func Product(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.Multiplied(b)
}

// Quotient is an alias for a.Divided(b) = a·b⁻¹.
func Quotient(a, b *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return a.Divided(b)
}

// Scale is an alias for m.MultipliedScalar(s).
func Scale(m *Matrix, s float64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return m.MultipliedScalar(s)
}

// T is an alias for m.Transposed().
func T(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transposed(), nil
}

// InverseOf is an alias for m.Inverse().
func InverseOf(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return m.Inverse()
}

// Det is an alias for m.Determinant().
func Det(m *Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return m.Determinant()
}

// Pow is an alias for m.Exponentiated(n).
func Pow(m *Matrix, n int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExponential, err)
	}

	return m.Exponentiated(n)
}
