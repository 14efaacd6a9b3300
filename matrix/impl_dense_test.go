// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for construction and element access.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestNew_ShapeFromRows(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 3, m.Width())
	require.Equal(t, 2, m.Height())
	w, h := m.Shape()
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)
	require.False(t, m.IsEmpty())
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	for _, rows := range [][][]float64{nil, {}} {
		m, err := matrix.New(rows)
		require.NoError(t, err)
		require.Equal(t, 0, m.Width())
		require.Equal(t, 0, m.Height())
		require.True(t, m.IsEmpty())
		require.Equal(t, [][]float64{}, m.ToArray())
	}
}

func TestNew_RaggedRows(t *testing.T) {
	t.Parallel()

	_, err := matrix.New([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{1, 2}, {3, 4}}
	m := MustNew(t, rows)
	rows[0][0] = 99 // caller keeps ownership of its slices
	require.Equal(t, 1.0, MustGet(t, m, 0, 0))
}

func TestNew_NaNInfPolicy(t *testing.T) {
	t.Parallel()

	_, err := matrix.New([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.New([][]float64{{math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.New([][]float64{{math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.True(t, math.IsInf(MustGet(t, m, 0, 0), 1))
}

func TestMustNew_Panics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.MustNew([][]float64{{1}, {1, 2}}) })
}

func TestCreate_Fill(t *testing.T) {
	t.Parallel()

	const w, h, fill = 4, 3, 7.5
	m, err := matrix.Create(w, h, fill)
	require.NoError(t, err)
	require.Equal(t, w, m.Width())
	require.Equal(t, h, m.Height())
	var x, y int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			require.Equal(t, fill, MustGet(t, m, x, y))
		}
	}
}

func TestCreate_Defaults(t *testing.T) {
	t.Parallel()

	sq, err := matrix.NewSquare(3)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, sq)

	z, err := matrix.NewZeros(2, 1)
	require.NoError(t, err)
	RequireRows(t, [][]float64{{0, 0}}, z)
}

func TestCreate_InvalidArgs(t *testing.T) {
	t.Parallel()

	_, err := matrix.Create(-1, 2, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Create(2, -1, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.Create(2, 2, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestCreate_ZeroHeightHasNoWidth(t *testing.T) {
	t.Parallel()

	m, err := matrix.Create(3, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 0, m.Height())
	require.Equal(t, 0, m.Width()) // shape is derived from the (empty) table
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	RequireRows(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, MustIdentity(t, 3))
	require.True(t, MustIdentity(t, 0).IsEmpty())

	_, err := matrix.Identity(-2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestGetSet(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 6.0, MustGet(t, m, 2, 1)) // x = column, y = row
	require.NoError(t, m.Set(0, 1, 40))
	require.Equal(t, 40.0, MustGet(t, m, 0, 1))

	require.ErrorIs(t, m.Set(1, 1, math.NaN()), matrix.ErrNaNInf)
	require.Equal(t, 5.0, MustGet(t, m, 1, 1)) // rejected write leaves the cell alone
}

func TestGetSet_OutOfBounds(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	for _, c := range []struct{ x, y int }{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		_, err := m.Get(c.x, c.y)
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
		require.ErrorIs(t, m.Set(c.x, c.y, 1), matrix.ErrOutOfRange)
	}
}

func TestRowColumn(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 6}, row)
	row[0] = 100 // copy, not a view
	require.Equal(t, 4.0, MustGet(t, m, 0, 1))

	col, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDiagonals(t *testing.T) {
	t.Parallel()

	sq := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.Equal(t, []float64{1, 5, 9}, sq.Diagonal())
	require.Equal(t, []float64{3, 5, 7}, sq.Antidiagonal())

	// Non-square: bounded by the shorter dimension.
	wide := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, []float64{1, 5}, wide.Diagonal())
	require.Equal(t, []float64{3, 5}, wide.Antidiagonal())

	tall := MustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.Equal(t, []float64{1, 4}, tall.Diagonal())
	require.Equal(t, []float64{2, 3}, tall.Antidiagonal())
}

func TestClone_Independence(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.True(t, c.Equals(m))

	require.NoError(t, c.Set(0, 0, 9))
	require.Equal(t, 1.0, MustGet(t, m, 0, 0))
	require.NoError(t, m.Set(1, 1, 8))
	require.Equal(t, 4.0, MustGet(t, c, 1, 1))
}

func TestEach_EarlyStop(t *testing.T) {
	t.Parallel()

	m := MustNew(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.Each(func(x, y int, v float64) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}
