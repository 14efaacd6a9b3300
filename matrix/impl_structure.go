// SPDX-License-Identifier: MIT

package matrix

// IsSquare reports Width == Height. Empty 0×0 matrices are square.
func (m *Matrix) IsSquare() bool { return m.width == m.height }

// IsUpperTriangular reports whether m is square and every cell strictly below
// the main diagonal (y > x) is exactly zero.
func (m *Matrix) IsUpperTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	var x, y int
	for y = 1; y < m.height; y++ {
		for x = 0; x < y; x++ {
			if m.table[y][x] != 0 {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports whether m is square and every cell strictly above
// the main diagonal (x > y) is exactly zero.
func (m *Matrix) IsLowerTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	var x, y int
	for y = 0; y < m.height; y++ {
		for x = y + 1; x < m.width; x++ {
			if m.table[y][x] != 0 {
				return false
			}
		}
	}

	return true
}

// IsDiagonal is upper AND lower triangular.
func (m *Matrix) IsDiagonal() bool { return m.IsUpperTriangular() && m.IsLowerTriangular() }

// IsTriangular is upper OR lower triangular.
func (m *Matrix) IsTriangular() bool { return m.IsUpperTriangular() || m.IsLowerTriangular() }

// IsSymmetric reports whether m is square and equals its transpose.
// Only the strict upper triangle is scanned; no transpose is materialized.
func (m *Matrix) IsSymmetric() bool {
	return m.mirrorsWith(1)
}

// IsSkewSymmetric reports whether m is square and −m equals mᵀ, which also
// forces a zero diagonal.
func (m *Matrix) IsSkewSymmetric() bool {
	return m.mirrorsWith(-1)
}

// mirrorsWith checks m[y][x] == sign·m[x][y] for all x, y (diagonal included,
// which matters only for sign == −1).
func (m *Matrix) mirrorsWith(sign float64) bool {
	if !m.IsSquare() {
		return false
	}
	var x, y int
	for y = 0; y < m.height; y++ {
		for x = y; x < m.width; x++ {
			if m.table[y][x] != sign*m.table[x][y] {
				return false
			}
		}
	}

	return true
}

// Trace returns the sum of the main diagonal.
//
// Errors:
//   - ErrNotSquare.
func (m *Matrix) Trace() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	sum := ZeroSum
	for i := 0; i < m.width; i++ {
		sum += m.table[i][i]
	}

	return sum, nil
}
