// SPDX-License-Identifier: MIT

// Package matrix offers a dense, arbitrary-size float64 matrix with exact,
// readable linear algebra.
//
// The package provides:
//
//   - Construction: New (from rows), Create (fill), Identity, Parse and Read
//     (text or JSON), FromGonum.
//   - Safe access: Get/Set/Row/Column return ErrOutOfRange instead of panicking.
//   - Elementwise and broadcast arithmetic: Add, Subtract, Hadamard and the
//     scalar variants, all built on Map/Apply.
//   - Matrix products: MapMatrix (generalized row×column reduction),
//     Multiply, Divide (by an invertible matrix), Exponential.
//   - The determinant family: Minor, Determinant (Laplace expansion along
//     row 0), Cofactors, Adjugate, Inverse.
//   - Structural predicates: IsSquare, IsUpperTriangular, IsLowerTriangular,
//     IsDiagonal, IsTriangular, IsSymmetric, IsSkewSymmetric, Trace, Equals.
//
// Mutating vs pure:
//
// Every operation comes in a pair. The pure form (Added, Multiplied,
// Transposed, Inverse, Exponentiated, Map, ...) returns a new *Matrix. The
// mutating form (Add, Multiply, Transpose, Invert, Exponential, Apply, ...)
// computes the same result and installs it in the receiver, returning the
// receiver for chaining. A failed mutating call leaves the receiver unchanged.
//
//	m := matrix.MustNew([][]float64{{1, 2}, {3, 4}})
//	if _, err := m.Multiply(m); err != nil { ... } // m is now [[7, 10], [15, 22]]
//	det, _ := m.Determinant()                        // 4
//
// Coordinates are (x, y) = (column, row), zero-based.
//
// Errors are package sentinels matched with errors.Is: ErrDimensionMismatch,
// ErrNotSquare, ErrNotInvertible, ErrDivisionByZero, ErrOutOfRange,
// ErrInvalidArgument, ErrNaNInf.
//
// Determinant, Cofactors, Adjugate and Inverse are factorial-time. The package
// targets correctness for small and moderate matrices, not numerical
// throughput.
package matrix
