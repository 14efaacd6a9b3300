// SPDX-License-Identifier: MIT

// Package matrix - conversions at the package boundary.
//
// Purpose:
//   - Nested-slice export (ToArray) and row/cell iteration.
//   - The human-readable row form ("[1, 2, 3]" per line) and its parser.
//   - JSON encoding as row-major nested arrays (github.com/goccy/go-json).
//   - Interop with gonum.org/v1/gonum/mat for callers that already hold *mat.Dense.
//
// Notes:
//   - Every export copies; nothing hands out the internal table.
//   - Every import goes through New, so shape and numeric-policy checks apply.

package matrix

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtRowBreak = "\n"
)

const (
	ctxParse     = "Parse"
	ctxRead      = "Read"
	ctxJSON      = "UnmarshalJSON"
	ctxToDense   = "ToDense"
	ctxFromGonum = "FromGonum"
)

// ToArray returns a deep copy of the table, row-major: out[y][x].
func (m *Matrix) ToArray() [][]float64 {
	out := make([][]float64, m.height)
	for y := 0; y < m.height; y++ {
		out[y] = make([]float64, m.width)
		copy(out[y], m.table[y])
	}

	return out
}

// Rows iterates the rows top to bottom, yielding (y, copy of row y).
//
//	for y, row := range m.Rows() { ... }
func (m *Matrix) Rows() iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		var row []float64
		for y := 0; y < m.height; y++ {
			row = make([]float64, m.width)
			copy(row, m.table[y])
			if !yield(y, row) {
				return
			}
		}
	}
}

// Cells iterates every cell in row-major order.
func (m *Matrix) Cells() iter.Seq2[Cell, float64] {
	return func(yield func(Cell, float64) bool) {
		m.Each(func(x, y int, v float64) bool {
			return yield(Cell{X: x, Y: y}, v)
		})
	}
}

// formatCell renders v with the shortest representation that round-trips
// (1 → "1", 0.5 → "0.5").
func formatCell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// String renders one line per row as "[v0, v1, ..., vn]", rows separated by
// a newline and no trailing newline. An empty row renders as "[]".
//
// Complexity: Time O(w*h), Space O(w*h).
func (m *Matrix) String() string {
	var b strings.Builder
	var x, y int
	for y = 0; y < m.height; y++ {
		if y > 0 {
			b.WriteString(_fmtRowBreak)
		}
		b.WriteString(_fmtRowOpen)
		for x = 0; x < m.width; x++ {
			if x > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(formatCell(m.table[y][x]))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Parse reads the String form back into a Matrix: one "[a, b, c]" row per
// line. Blank lines and surrounding whitespace are ignored.
//
// Errors:
//   - ErrParse (with the 1-based line number) on a malformed row or number.
//   - ErrDimensionMismatch / ErrNaNInf from New.
func Parse(text string, opts ...Option) (*Matrix, error) {
	var (
		rows [][]float64
		line string
	)
	for i, raw := range strings.Split(text, _fmtRowBreak) {
		line = strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", ctxParse, i+1, err)
		}
		rows = append(rows, row)
	}

	m, err := New(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxParse, err)
	}

	return m, nil
}

// parseRow decodes a single "[a, b, c]" line.
func parseRow(line string) ([]float64, error) {
	if !strings.HasPrefix(line, _fmtRowOpen) || !strings.HasSuffix(line, _fmtRowClose) {
		return nil, fmt.Errorf("%q is not bracketed: %w", line, ErrParse)
	}
	body := strings.TrimSpace(line[len(_fmtRowOpen) : len(line)-len(_fmtRowClose)])
	if body == "" {
		return []float64{}, nil
	}

	fields := strings.Split(body, ",")
	row := make([]float64, len(fields))
	for x, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %v: %w", x, err, ErrParse)
		}
		row[x] = v
	}

	return row, nil
}

// Read decodes a Matrix from r, accepting either JSON nested arrays
// ("[[1,2],[3,4]]") or the line-oriented String form.
//
// Implementation:
//   - Stage 1: read everything; empty input is a 0×0 matrix.
//   - Stage 2: an opening '[' followed by another '[' or ']' selects JSON,
//     anything else the line form.
func Read(r io.Reader, opts ...Option) (*Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, matrixErrorf(ctxRead, err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return New(nil, opts...)
	}

	if isJSONArray(trimmed) {
		var rows [][]float64
		if err = json.Unmarshal(trimmed, &rows); err != nil {
			return nil, fmt.Errorf("%s: %v: %w", ctxRead, err, ErrParse)
		}
		m, err := New(rows, opts...)
		if err != nil {
			return nil, matrixErrorf(ctxRead, err)
		}
		return m, nil
	}

	return Parse(string(trimmed), opts...)
}

// isJSONArray reports whether b starts with "[[" or "[]" modulo whitespace.
func isJSONArray(b []byte) bool {
	if len(b) == 0 || b[0] != '[' {
		return false
	}
	rest := bytes.TrimLeft(b[1:], " \t\r\n")

	return len(rest) > 0 && (rest[0] == '[' || rest[0] == ']')
}

// MarshalJSON encodes m as row-major nested arrays, identical to ToArray.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.ToArray())
}

// UnmarshalJSON decodes nested arrays into m through New (default options),
// so ragged input fails with ErrDimensionMismatch. On error m is unchanged.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%s: %v: %w", ctxJSON, err, ErrParse)
	}
	res, err := New(rows)
	if err != nil {
		return matrixErrorf(ctxJSON, err)
	}
	m.validateNaNInf = res.validateNaNInf
	m.replace(res)

	return nil
}

// ToDense copies m into a gonum *mat.Dense (rows = Height, cols = Width).
//
// Errors:
//   - ErrInvalidDimensions for empty matrices, which gonum cannot represent.
func (m *Matrix) ToDense() (*mat.Dense, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("%s(%dx%d): %w", ctxToDense, m.height, m.width, ErrInvalidDimensions)
	}
	data := make([]float64, 0, m.width*m.height)
	for y := 0; y < m.height; y++ {
		data = append(data, m.table[y]...)
	}

	return mat.NewDense(m.height, m.width, data), nil
}

// FromGonum copies any gonum mat.Matrix into a new Matrix.
func FromGonum(a mat.Matrix, opts ...Option) (*Matrix, error) {
	if a == nil {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	rows := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			rows[i][j] = a.At(i, j)
		}
	}
	m, err := New(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}

	return m, nil
}
