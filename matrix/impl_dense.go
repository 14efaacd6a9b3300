// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-of-rows) & safe accessors.
//
// Purpose:
//   - Own a [][]float64 table whose shape is the single source of truth for
//     width and height (recomputed on every replace, never set on its own).
//   - Guarantee safety at the public surface: Get/Set/Row/Column return errors
//     instead of panicking.
//   - Keep algorithmic determinism (fixed x-inside-y loop order, no map iteration).
//   - Enforce the numeric policy (optional rejection of NaN/Inf) from one place.
//
// Complexity quicksheet:
//   - New/Create: O(w*h); Get/Set: O(1); Row/Column: O(w)/O(h); Clone: O(w*h).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxGet    = "Get"    // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRow    = "Row"    // method tag used in error wrappers
	ctxColumn = "Column" // method tag used in error wrappers
	ctxNew    = "New"    // ctor tag
	ctxCreate = "Create" // ctor tag
)

// cellErrorf wraps an error with a uniform Matrix context and callsite coordinates.
//
// Implementation:
//   - Stage 1: format "Matrix.<method>(x,y): %w".
//
// Notes:
//   - Keep tags in constants for grep-ability and consistency.
func cellErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, x, y, err)
}

// New builds a Matrix from a slice of rows. The outer slice length is the
// height, every inner slice must have the length of the first (the width).
//
// Implementation:
//   - Stage 1: resolve options (numeric policy).
//   - Stage 2: validate that rows are uniform; validate finiteness if the policy is on.
//   - Stage 3: deep-copy every row into a freshly owned table.
//
// Behavior highlights:
//   - Empty input (nil or zero rows) yields a valid 0×0 matrix.
//   - The caller's slices are never retained.
//
// Errors:
//   - ErrDimensionMismatch when a row length differs from the first row.
//   - ErrNaNInf when a cell is NaN/±Inf and the policy is on.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New(rows [][]float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 {
		return &Matrix{table: [][]float64{}, validateNaNInf: o.validateNaNInf}, nil
	}

	var (
		width = len(rows[0]) // first row fixes the width
		x, y  int            // loop counters
		v     float64        // current cell
	)
	table := make([][]float64, len(rows))
	for y = 0; y < len(rows); y++ {
		if len(rows[y]) != width {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w",
				ctxNew, y, len(rows[y]), width, ErrDimensionMismatch)
		}
		table[y] = make([]float64, width)
		for x = 0; x < width; x++ {
			v = rows[y][x]
			if o.validateNaNInf && isNonFinite(v) {
				return nil, cellErrorf(ctxNew, x, y, ErrNaNInf)
			}
			table[y][x] = v
		}
	}

	return fromTable(table, o.validateNaNInf), nil
}

// MustNew is New for fixtures and examples: it panics on error.
func MustNew(rows [][]float64, opts ...Option) *Matrix {
	m, err := New(rows, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// Create returns a height×width matrix with every cell set to fill.
//
// Behavior highlights:
//   - Width 0 or height 0 is legal and produces an empty matrix; since the
//     shape is derived from the table, a matrix without rows reports width 0.
//
// Errors:
//   - ErrInvalidDimensions on negative sizes.
//   - ErrNaNInf when fill is not finite and the policy is on.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func Create(width, height int, fill float64, opts ...Option) (*Matrix, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxCreate, width, height, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf && isNonFinite(fill) {
		return nil, fmt.Errorf("%s: fill %v: %w", ctxCreate, fill, ErrNaNInf)
	}

	table := newTable(width, height)
	if fill != 0 {
		var x, y int
		for y = 0; y < height; y++ {
			for x = 0; x < width; x++ {
				table[y][x] = fill
			}
		}
	}

	return fromTable(table, o.validateNaNInf), nil
}

// Width returns the column count. Complexity: O(1).
func (m *Matrix) Width() int { return m.width }

// Height returns the row count. Complexity: O(1).
func (m *Matrix) Height() int { return m.height }

// Shape packs Width() and Height() into a single call.
func (m *Matrix) Shape() (width, height int) { return m.width, m.height }

// IsEmpty reports whether the matrix has no cells.
func (m *Matrix) IsEmpty() bool { return m.width == 0 || m.height == 0 }

// inBounds reports whether (x, y) addresses an existing cell.
func (m *Matrix) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Get returns the cell at column x, row y.
//
// Errors:
//   - ErrOutOfRange when x or y falls outside the current shape.
//
// Complexity: O(1).
func (m *Matrix) Get(x, y int) (float64, error) {
	if !m.inBounds(x, y) {
		return 0, cellErrorf(ctxGet, x, y, ErrOutOfRange)
	}

	return m.table[y][x], nil
}

// Set stores v at column x, row y.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the policy.
//
// Complexity: O(1).
func (m *Matrix) Set(x, y int, v float64) error {
	if !m.inBounds(x, y) {
		return cellErrorf(ctxSet, x, y, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return cellErrorf(ctxSet, x, y, ErrNaNInf)
	}
	m.table[y][x] = v

	return nil
}

// Row returns a copy of row y.
func (m *Matrix) Row(y int) ([]float64, error) {
	if y < 0 || y >= m.height {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, y, ErrOutOfRange)
	}
	out := make([]float64, m.width)
	copy(out, m.table[y])

	return out, nil
}

// Column returns a copy of column x, top to bottom.
func (m *Matrix) Column(x int) ([]float64, error) {
	if x < 0 || x >= m.width {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxColumn, x, ErrOutOfRange)
	}
	out := make([]float64, m.height)
	for y := 0; y < m.height; y++ {
		out[y] = m.table[y][x]
	}

	return out, nil
}

// Diagonal returns cells (i, i) for i < min(width, height).
//
// Notes:
//   - Bounded by the shorter dimension so non-square matrices never read
//     past their last row or column.
func (m *Matrix) Diagonal() []float64 {
	n := min(m.width, m.height)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.table[i][i]
	}

	return out
}

// Antidiagonal returns cells (width-1-i, i) for i < min(width, height),
// i.e. top-right towards bottom-left.
func (m *Matrix) Antidiagonal() []float64 {
	n := min(m.width, m.height)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.table[i][m.width-1-i]
	}

	return out
}

// Clone returns a deep copy (new rows, same numeric policy).
// Mutating the clone never affects the original and vice versa.
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Matrix) Clone() *Matrix {
	return fromTable(copyTable(m.table), m.validateNaNInf)
}

// Each visits every cell in row-major order and stops early when f returns false.
//
// Determinism:
//   - Fixed y→x order.
//
// Complexity: Time O(w*h), Space O(1).
func (m *Matrix) Each(f func(x, y int, v float64) bool) {
	var x, y int
	for y = 0; y < m.height; y++ {
		for x = 0; x < m.width; x++ {
			if !f(x, y, m.table[y][x]) {
				return // early exit requested by caller
			}
		}
	}
}

// ---------- internal table plumbing ----------

// newTable allocates a zero-filled table of height rows and width columns.
// A single backing buffer keeps rows contiguous.
func newTable(width, height int) [][]float64 {
	buf := make([]float64, width*height)
	table := make([][]float64, height)
	for y := 0; y < height; y++ {
		table[y] = buf[y*width : (y+1)*width : (y+1)*width]
	}

	return table
}

// copyTable deep-copies a table into a fresh contiguous buffer.
func copyTable(src [][]float64) [][]float64 {
	width := 0
	if len(src) > 0 {
		width = len(src[0])
	}
	dst := newTable(width, len(src))
	for y := range src {
		copy(dst[y], src[y])
	}

	return dst
}

// fromTable wraps an owned table without copying and derives the shape from it.
func fromTable(table [][]float64, validateNaNInf bool) *Matrix {
	m := &Matrix{validateNaNInf: validateNaNInf}
	m.setTable(table)

	return m
}

// setTable installs table and recomputes width/height from its actual shape.
func (m *Matrix) setTable(table [][]float64) {
	m.table = table
	m.height = len(table)
	m.width = 0
	if m.height > 0 {
		m.width = len(table[0])
	}
}

// derive wraps a freshly computed table as a new Matrix carrying m's numeric
// policy. When the policy is on, the first non-finite cell aborts with
// ErrNaNInf tagged with op and its coordinates.
func (m *Matrix) derive(op string, table [][]float64) (*Matrix, error) {
	if m.validateNaNInf {
		var x, y int
		for y = 0; y < len(table); y++ {
			for x = 0; x < len(table[y]); x++ {
				if isNonFinite(table[y][x]) {
					return nil, matrixErrorf(op, cellErrorf(op, x, y, ErrNaNInf))
				}
			}
		}
	}

	return fromTable(table, m.validateNaNInf), nil
}

// replace swaps res's table into m. The only way mutating methods touch m,
// so a receiver is either fully updated or left untouched.
func (m *Matrix) replace(res *Matrix) *Matrix {
	m.setTable(res.table)

	return m
}
