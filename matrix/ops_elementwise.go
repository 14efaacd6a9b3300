// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise and broadcast arithmetic built on ONE primitive: mapTable.
//   - Every pure form (Map, Added, ...) computes a new table; every mutating
//     form (Apply, Add, ...) calls its pure twin and swaps the result in.
//
// Determinism & Performance:
//   - Fixed y→x loop order; exactly one result allocation per call.
//   - Checks (shape, zero divisor) run before any cell is computed, so a failed
//     mutating call never touches the receiver.

package matrix

import "math"

// mapTable computes f over every cell of m into a fresh table (row-major order).
// Internal kernel shared by Map/Apply and every broadcast operation.
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Matrix) mapTable(f CellFunc) [][]float64 {
	out := newTable(m.width, m.height)
	var x, y int
	for y = 0; y < m.height; y++ {
		for x = 0; x < m.width; x++ {
			out[y][x] = f(m.table[y][x], x, y)
		}
	}

	return out
}

// Map returns a new Matrix of the same shape where each cell is f(cell, x, y).
// The receiver is not modified.
//
// Errors:
//   - ErrNaNInf when f produces a non-finite value and the policy is on.
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Matrix) Map(f CellFunc) (*Matrix, error) {
	return m.derive(opMap, m.mapTable(f))
}

// Apply replaces every cell with f(cell, x, y), visiting cells row by row,
// and returns the receiver for chaining.
//
// Behavior highlights:
//   - All-or-nothing: results are staged in a new table and installed only if
//     every cell passes the numeric policy.
func (m *Matrix) Apply(f CellFunc) (*Matrix, error) {
	res, err := m.Map(f)
	if err != nil {
		return m, err
	}

	return m.replace(res), nil
}

// zipWith combines m and o cell by cell after a CheckSame validation.
func (m *Matrix) zipWith(op string, o *Matrix, f ReduceFunc) (*Matrix, error) {
	if err := Validate(m, o, CheckSame); err != nil {
		return nil, matrixErrorf(op, err)
	}

	return m.derive(op, m.mapTable(func(v float64, x, y int) float64 {
		return f(v, o.table[y][x])
	}))
}

// Added returns m + o elementwise. Shapes must match exactly.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (ErrDimensionMismatch), ErrNaNInf.
func (m *Matrix) Added(o *Matrix) (*Matrix, error) {
	return m.zipWith(opAdd, o, func(a, b float64) float64 { return a + b })
}

// Add adds o to m in place. On error m is left untouched.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	return m.mutate(m.Added(o))
}

// AddedScalar returns m with s added to every cell.
func (m *Matrix) AddedScalar(s float64) (*Matrix, error) {
	return m.broadcast(opAdd, s, func(v float64) float64 { return v + s })
}

// AddScalar adds s to every cell in place.
func (m *Matrix) AddScalar(s float64) (*Matrix, error) {
	return m.mutate(m.AddedScalar(s))
}

// Subtracted returns m − o elementwise. Shapes must match exactly.
func (m *Matrix) Subtracted(o *Matrix) (*Matrix, error) {
	return m.zipWith(opSub, o, func(a, b float64) float64 { return a - b })
}

// Subtract subtracts o from m in place.
func (m *Matrix) Subtract(o *Matrix) (*Matrix, error) {
	return m.mutate(m.Subtracted(o))
}

// SubtractedScalar returns m with s subtracted from every cell.
func (m *Matrix) SubtractedScalar(s float64) (*Matrix, error) {
	return m.broadcast(opSub, s, func(v float64) float64 { return v - s })
}

// SubtractScalar subtracts s from every cell in place.
func (m *Matrix) SubtractScalar(s float64) (*Matrix, error) {
	return m.mutate(m.SubtractedScalar(s))
}

// MultipliedScalar returns s·m.
func (m *Matrix) MultipliedScalar(s float64) (*Matrix, error) {
	return m.broadcast(opScale, s, func(v float64) float64 { return v * s })
}

// MultiplyScalar scales every cell by s in place.
func (m *Matrix) MultiplyScalar(s float64) (*Matrix, error) {
	return m.mutate(m.MultipliedScalar(s))
}

// DividedScalar returns m with every cell divided by s.
//
// Errors:
//   - ErrDivisionByZero when s is exactly zero (checked before any cell is read).
func (m *Matrix) DividedScalar(s float64) (*Matrix, error) {
	if s == 0 {
		return nil, matrixErrorf(opDivide, ErrDivisionByZero)
	}

	return m.broadcast(opDivide, s, func(v float64) float64 { return v / s })
}

// DivideScalar divides every cell by s in place.
func (m *Matrix) DivideScalar(s float64) (*Matrix, error) {
	return m.mutate(m.DividedScalar(s))
}

// Hadamarded returns the elementwise product m ⊙ o. Shapes must match exactly.
func (m *Matrix) Hadamarded(o *Matrix) (*Matrix, error) {
	return m.zipWith(opHadamard, o, func(a, b float64) float64 { return a * b })
}

// Hadamard multiplies m by o elementwise in place.
func (m *Matrix) Hadamard(o *Matrix) (*Matrix, error) {
	return m.mutate(m.Hadamarded(o))
}

// Negative returns −m.
func (m *Matrix) Negative() (*Matrix, error) {
	return m.MultipliedScalar(-1)
}

// broadcast applies a scalar kernel to every cell. A non-finite scalar is
// rejected up front under the policy so the error points at the argument.
func (m *Matrix) broadcast(op string, s float64, f func(float64) float64) (*Matrix, error) {
	if m.validateNaNInf && isNonFinite(s) {
		return nil, matrixErrorf(op, ErrNaNInf)
	}

	return m.derive(op, m.mapTable(func(v float64, _, _ int) float64 { return f(v) }))
}

// mutate installs the outcome of a pure call into m, or reports its error and
// leaves m as it was. Every mutating method funnels through here.
func (m *Matrix) mutate(res *Matrix, err error) (*Matrix, error) {
	if err != nil {
		return m, err
	}

	return m.replace(res), nil
}

// Equals reports whether o has the same shape and every cell is exactly equal.
// A nil operand is never equal.
//
// Complexity: Time O(w*h), Space O(1).
func (m *Matrix) Equals(o *Matrix) bool {
	if o == nil || m.width != o.width || m.height != o.height {
		return false
	}
	var x, y int
	for y = 0; y < m.height; y++ {
		for x = 0; x < m.width; x++ {
			if m.table[y][x] != o.table[y][x] {
				return false
			}
		}
	}

	return true
}

// AllClose checks |m[x,y] − o[x,y]| ≤ eps + rtol·|o[x,y]| for every cell.
// Shapes must match; a nil operand or shape difference yields false.
//
// Inputs:
//   - opts: WithEpsilon (absolute, DefaultEpsilon) and WithRelTol (DefaultRelTol).
//
// Notes:
//   - NaN is never close to anything; equal infinities are close.
//   - Use in tests and for results of Inverse/Divide where exact equality is
//     unrealistic.
func (m *Matrix) AllClose(o *Matrix, opts ...Option) bool {
	if o == nil || m.width != o.width || m.height != o.height {
		return false
	}
	cfg := gatherOptions(opts...)
	var (
		x, y   int
		av, bv float64
	)
	for y = 0; y < m.height; y++ {
		for x = 0; x < m.width; x++ {
			av, bv = m.table[y][x], o.table[y][x]
			if av == bv {
				continue // covers equal infinities
			}
			if math.Abs(av-bv) > cfg.eps+cfg.rtol*math.Abs(bv) || math.IsNaN(av-bv) {
				return false
			}
		}
	}

	return true
}
