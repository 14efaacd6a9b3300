// SPDX-License-Identifier: MIT

// Package matrix - determinant family: minors, Laplace determinant, cofactors,
// adjugate and the adjugate-based inverse.
//
// Purpose:
//   - Exact, readable cofactor algebra for small and moderate matrices.
//   - The determinant ALWAYS expands along row 0, so recursion structure and
//     rounding are reproducible across runs and platforms.
//
// Complexity quicksheet:
//   - Minor: O(n²); Determinant: O(n!) time, O(n²) per recursion level;
//     Cofactors/Adjugate/Inverse: O(n²·(n−1)!).
//
// Notes:
//   - This is not a numerical kernel: beyond ~10×10 the factorial cost
//     dominates. Callers with large systems should use an LU-based library.

package matrix

import "fmt"

// signOf returns (−1)^k.
func signOf(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// minorTable copies t without column col and row row.
// t must be non-empty with uniform rows; col/row must be in range.
func minorTable(t [][]float64, col, row int) [][]float64 {
	height := len(t)
	width := len(t[0])
	out := newTable(width-1, height-1)
	var (
		x, y   int
		dy, dx int // destination coordinates
	)
	for y = 0; y < height; y++ {
		if y == row {
			continue
		}
		dx = 0
		for x = 0; x < width; x++ {
			if x == col {
				continue
			}
			out[dy][dx] = t[y][x]
			dx++
		}
		dy++
	}

	return out
}

// detTable evaluates the determinant of a square table.
//
// Implementation:
//   - 0×0 → 1 (empty product), 1×1 → the cell, 2×2 → ad − bc.
//   - n > 2 → Σ_x (−1)^x · t[0][x] · det(minor(x, 0)).
//
// Behavior highlights:
//   - Terms are accumulated in column order, zero cells included, so the
//     recursion tree and the rounding are the same on every run.
func detTable(t [][]float64) float64 {
	switch len(t) {
	case 0:
		return 1
	case 1:
		return t[0][0]
	case 2:
		return t[0][0]*t[1][1] - t[0][1]*t[1][0]
	}

	det := ZeroSum
	for x := 0; x < len(t[0]); x++ {
		det += signOf(x) * t[0][x] * detTable(minorTable(t, x, 0))
	}

	return det
}

// Minor returns the (height−1)×(width−1) submatrix obtained by deleting
// column x and row y.
//
// Errors:
//   - ErrOutOfRange when (x, y) is not a cell of m.
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Matrix) Minor(x, y int) (*Matrix, error) {
	if !m.inBounds(x, y) {
		return nil, matrixErrorf(opMinor, cellErrorf(opMinor, x, y, ErrOutOfRange))
	}

	return fromTable(minorTable(m.table, x, y), m.validateNaNInf), nil
}

// determinant is the untagged core shared by Determinant and the validators.
func (m *Matrix) determinant() (float64, error) {
	if m.width != m.height {
		return 0, fmt.Errorf("%dx%d: %w", m.height, m.width, ErrNotSquare)
	}

	return detTable(m.table), nil
}

// Determinant returns det(m) by Laplace expansion along row 0.
//
// Implementation:
//   - Stage 1: require a square matrix.
//   - Stage 2: base cases 1×1 and 2×2; recursion on row-0 minors otherwise.
//
// Behavior highlights:
//   - A 0×0 matrix has determinant 1.
//   - Integer-valued matrices yield exact integer determinants while the
//     intermediate products stay below 2⁵³.
//
// Errors:
//   - ErrNotSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level, depth n.
func (m *Matrix) Determinant() (float64, error) {
	det, err := m.determinant()
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// IsInvertible reports whether m is square with a nonzero determinant.
func (m *Matrix) IsInvertible() bool {
	det, err := m.determinant()

	return err == nil && det != 0
}

// cofactorTable computes (−1)^(x+y) · det(minor(x, y)) for every cell.
func cofactorTable(t [][]float64) [][]float64 {
	n := len(t)
	out := newTable(n, n)
	var x, y int
	for y = 0; y < n; y++ {
		for x = 0; x < n; x++ {
			out[y][x] = signOf(x+y) * detTable(minorTable(t, x, y))
		}
	}

	return out
}

// Cofactors returns the cofactor matrix C with C(x, y) = (−1)^(x+y)·det(minor(x, y)).
//
// Errors:
//   - ErrNotSquare; ErrNaNInf (policy) on overflow.
func (m *Matrix) Cofactors() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return m.derive(opCofactors, cofactorTable(m.table))
}

// Adjugate returns adj(m) = Cofactors(m)ᵀ.
//
// Errors:
//   - ErrNotSquare; ErrNaNInf (policy).
func (m *Matrix) Adjugate() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	n := m.width

	return m.derive(opAdjugate, transposeTable(cofactorTable(m.table), n, n))
}

// Inverse returns m⁻¹ = adj(m) / det(m). The receiver is not modified.
//
// Implementation:
//   - Stage 1: require square (ErrNotSquare) and det ≠ 0 (ErrNotInvertible).
//   - Stage 2: 1×1 fast path [[1/c]].
//   - Stage 3: adjugate divided elementwise by the determinant.
//
// Errors:
//   - ErrNotSquare, ErrNotInvertible, ErrNaNInf (policy).
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
//
// Notes:
//   - Results are generally non-integral; compare with AllClose, not Equals.
func (m *Matrix) Inverse() (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := detTable(m.table)
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrNotInvertible)
	}

	n := m.width
	if n == 1 {
		return m.derive(opInverse, [][]float64{{1 / m.table[0][0]}})
	}

	adj := transposeTable(cofactorTable(m.table), n, n)
	var x, y int
	for y = 0; y < n; y++ {
		for x = 0; x < n; x++ {
			adj[y][x] /= det
		}
	}

	return m.derive(opInverse, adj)
}

// Invert replaces m with m⁻¹. On error m is left untouched.
func (m *Matrix) Invert() (*Matrix, error) {
	return m.mutate(m.Inverse())
}
