// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY domain-facing types (the Matrix container, callback
// signatures, cell coordinates and the validation bitset). Errors, options and
// algorithms live in dedicated files.
package matrix

// Matrix is a dense, row-major 2D container of float64 cells.
//
// The shape is fixed by the table: width and height are recomputed every time
// the table is replaced and are never set on their own. Mutating methods swap a
// freshly computed table in only after every check passed, so a failed call
// leaves the receiver exactly as it was.
//
// A Matrix exclusively owns its rows. Clone, ToArray, Row and Column all copy.
//
// Concurrency: no internal locking. Concurrent readers are safe; a mutating
// call must not overlap with any other call on the same Matrix.
type Matrix struct {
	width          int         // column count (>= 0)
	height         int         // row count (>= 0)
	table          [][]float64 // height rows of exactly width cells
	validateNaNInf bool        // numeric guard: reject NaN/Inf cells when true
}

// CellFunc maps a cell value at column x, row y to its replacement.
// Used by Apply (in place) and Map (copy).
type CellFunc func(v float64, x, y int) float64

// ReduceFunc combines one cell of a receiver row with the matching cell of an
// operand column. MapMatrix sums its results, so a*b yields the matrix product.
type ReduceFunc func(a, b float64) float64

// Cell addresses a single entry by zero-based column X and row Y.
type Cell struct {
	X int // column
	Y int // row
}

// Check is a bitset of dimension preconditions evaluated by Validate.
// Flags compose with |; each failing flag reports its own sentinel.
type Check uint8

const (
	// CheckSquare requires the operand to be square (ErrNotSquare).
	CheckSquare Check = 1 << iota
	// CheckSame requires the operand to have the receiver's exact shape (ErrShapeMismatch).
	CheckSame
	// CheckReflect requires receiver width == operand height (ErrNotConformable).
	CheckReflect
	// CheckInvertible requires the operand to have a nonzero determinant (ErrNotInvertible).
	CheckInvertible
)

// CheckNone disables all dimension checks (MapMatrix callers that validated already).
const CheckNone Check = 0

// Has reports whether every flag in f is set in c.
func (c Check) Has(f Check) bool { return c&f == f }
