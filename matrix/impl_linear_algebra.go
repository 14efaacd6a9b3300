// SPDX-License-Identifier: MIT
// Package matrix provides matrix-matrix operations on *Matrix: the generalized
// row×column reduction (MapMatrix), the matrix product, division by an
// invertible matrix, transpose and integer exponentiation. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Define operation tags and shared constants for determinism and error reporting.
//   - Keep one algorithm per operation pair: the pure form computes a new
//     Matrix, the mutating form installs it via mutate/replace.

package matrix

import "fmt"

// ZeroSum is the initial value of every row×column accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMap         = "Map"
	opAdd         = "Add"
	opSub         = "Subtract"
	opScale       = "Multiply(scalar)"
	opDivide      = "Divide"
	opHadamard    = "Hadamard"
	opMapMatrix   = "MapMatrix"
	opMul         = "Multiply"
	opTranspose   = "Transpose"
	opExponential = "Exponential"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opTrace       = "Trace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// product is the unchecked reduction kernel behind MapMatrix.
// Result shape is o.width × m.height and
//
//	out[y][x] = Σ_z f(m[y][z], o[z][x]),  z ∈ [0, m.width).
//
// Callers guarantee m.width == o.height.
//
// Determinism:
//   - Fixed y→x→z order, so floating-point sums are reproducible.
//
// Complexity:
//   - Time O(h·w·o.w), Space O(h·o.w).
func product(m, o *Matrix, f ReduceFunc) [][]float64 {
	out := newTable(o.width, m.height)
	var (
		x, y, z int
		row     []float64
		sum     float64
	)
	for y = 0; y < m.height; y++ {
		row = m.table[y] // cache the receiver row once per y
		for x = 0; x < o.width; x++ {
			sum = ZeroSum
			for z = 0; z < m.width; z++ {
				sum += f(row[z], o.table[z][x])
			}
			out[y][x] = sum
		}
	}

	return out
}

// MapMatrix is the generalized matrix product: after validating checks it
// returns the o.width × m.height matrix whose cell (x, y) is
// Σ_z f(row y of m at z, column x of o at z).
//
// Implementation:
//   - Stage 1: Validate(m, o, checks).
//   - Stage 2: the reduction always needs m.width == o.height; that shape rule
//     is enforced even when CheckReflect is not requested.
//   - Stage 3: product kernel, then numeric policy via derive.
//
// Inputs:
//   - o: right operand.
//   - f: combining function; a*b yields the ordinary product.
//   - checks: extra preconditions (CheckSquare, CheckInvertible, ...).
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrShapeMismatch, ErrNotConformable,
//     ErrNotInvertible (per checks), ErrNaNInf (policy).
//
// Complexity:
//   - Time O(h·w·o.w) plus the cost of checks.
func (m *Matrix) MapMatrix(o *Matrix, f ReduceFunc, checks Check) (*Matrix, error) {
	if err := Validate(m, o, checks|CheckReflect); err != nil {
		return nil, matrixErrorf(opMapMatrix, err)
	}

	return m.derive(opMapMatrix, product(m, o, f))
}

// ApplyMatrix is the mutating counterpart of MapMatrix. The receiver takes the
// result's shape; on error it is left untouched.
func (m *Matrix) ApplyMatrix(o *Matrix, f ReduceFunc, checks Check) (*Matrix, error) {
	return m.mutate(m.MapMatrix(o, f, checks))
}

// mul is the ordinary product combiner.
func mul(a, b float64) float64 { return a * b }

// Multiplied returns the matrix product m·o.
//
// Errors:
//   - ErrNotConformable (ErrDimensionMismatch) when m.Width() != o.Height().
//
// Complexity: Time O(h·w·o.w), Space O(h·o.w).
func (m *Matrix) Multiplied(o *Matrix) (*Matrix, error) {
	if err := Validate(m, o, CheckReflect); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return m.derive(opMul, product(m, o, mul))
}

// Multiply replaces m with m·o. The shape may change (h×w · w×k → h×k).
func (m *Matrix) Multiply(o *Matrix) (*Matrix, error) {
	return m.mutate(m.Multiplied(o))
}

// Divided returns m · o⁻¹.
//
// Implementation:
//   - Stage 1: cheap shape checks first (o square, m.width == o.height) so no
//     determinant is computed for operands that could never qualify.
//   - Stage 2: o.Inverse() (ErrNotInvertible for singular o).
//   - Stage 3: product.
//
// Errors:
//   - ErrNilMatrix, ErrNotSquare, ErrNotConformable, ErrNotInvertible, ErrNaNInf.
//
// Complexity: dominated by o.Inverse(), factorial in o's size.
func (m *Matrix) Divided(o *Matrix) (*Matrix, error) {
	if err := Validate(m, o, CheckSquare|CheckReflect); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	inv, err := o.Inverse()
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return m.derive(opDivide, product(m, inv, mul))
}

// Divide replaces m with m · o⁻¹.
func (m *Matrix) Divide(o *Matrix) (*Matrix, error) {
	return m.mutate(m.Divided(o))
}

// Transposed returns mᵀ: cell (x, y) of the result is cell (y, x) of m, and
// the width and height are swapped.
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Matrix) Transposed() *Matrix {
	return fromTable(transposeTable(m.table, m.width, m.height), m.validateNaNInf)
}

// Transpose replaces m with mᵀ in place (the shape swaps).
func (m *Matrix) Transpose() *Matrix {
	return m.replace(m.Transposed())
}

// transposeTable builds the height×width swap of t.
func transposeTable(t [][]float64, width, height int) [][]float64 {
	out := newTable(height, width)
	var x, y int
	for y = 0; y < height; y++ {
		for x = 0; x < width; x++ {
			out[x][y] = t[y][x]
		}
	}

	return out
}

// Exponentiated returns mⁿ by n−1 successive multiplications with m.
//
// Behavior highlights:
//   - n == 1 returns an unchanged copy.
//   - n < 1 is rejected: negative and zero powers are not defined here.
//   - For n > 1 the self-product must be conformable, i.e. m must be square.
//
// Errors:
//   - ErrInvalidArgument (n < 1), ErrNotConformable (non-square, n > 1), ErrNaNInf.
//
// Complexity: Time O((n−1)·k³) for a k×k matrix.
func (m *Matrix) Exponentiated(n int) (*Matrix, error) {
	if n < 1 {
		return nil, matrixErrorf(opExponential, fmt.Errorf("exponent %d: %w", n, ErrInvalidArgument))
	}
	if n == 1 {
		return m.Clone(), nil
	}
	if err := Validate(m, m, CheckReflect); err != nil {
		return nil, matrixErrorf(opExponential, err)
	}

	acc := m
	var err error
	for i := 1; i < n; i++ {
		if acc, err = acc.derive(opExponential, product(acc, m, mul)); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Exponential replaces m with mⁿ.
func (m *Matrix) Exponential(n int) (*Matrix, error) {
	return m.mutate(m.Exponentiated(n))
}
