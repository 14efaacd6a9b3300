// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations return these sentinels (optionally wrapped with an
// operation tag) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for programmer errors
// (MustNew, option constructors fed nonsense values).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations wrap
// sentinels with their tag ("Determinant: matrix: matrix is not square");
// callers match with errors.Is.
//
// CHECK ORDER (documented, enforced in tests):
// nil -> index/shape -> square -> same shape -> conformable -> invertible
// -> numeric policy (NaN/Inf) on the produced table.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a column or row index is outside valid bounds.
	// Public indexers (Get/Set/Row/Column/Minor) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions: ragged rows on
	// construction, Add/Subtract of different shapes, or Multiply where
	// a.Width() != b.Height().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrNotInvertible is returned when an inverse is requested for a matrix
	// whose determinant is exactly zero.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrDivisionByZero is returned by scalar division when the divisor is exactly 0.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrInvalidArgument marks malformed arguments such as a non-positive exponent.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (construction, Set, results of arithmetic).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or operand) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrParse is returned when textual input cannot be decoded into a matrix.
	ErrParse = errors.New("matrix: malformed input")
)

// Validation-specific sentinels. Each Check flag owns one of these so a caller
// can tell which precondition failed; the shape-related ones still match
// ErrDimensionMismatch under errors.Is.
var (
	// ErrShapeMismatch is the CheckSame failure: operand shape differs from the receiver's.
	ErrShapeMismatch = fmt.Errorf("%w: shapes differ", ErrDimensionMismatch)

	// ErrNotConformable is the CheckReflect failure: receiver width != operand height.
	ErrNotConformable = fmt.Errorf("%w: width does not match operand height", ErrDimensionMismatch)
)

// ErrIndexOutOfBounds names the same condition as ErrOutOfRange.
// Kept so errors.Is(err, ErrIndexOutOfBounds) reads naturally at call sites.
var ErrIndexOutOfBounds = ErrOutOfRange
