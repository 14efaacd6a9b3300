// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the matrix tests.
//   - Keep all data finite and integer-valued where exact equality is asserted.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// closeTol is the absolute tolerance for results that go through a division.
const closeTol = 1e-9

// MustNew builds a Matrix from rows or fails the test.
func MustNew(t testing.TB, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity(t testing.TB, n int) *matrix.Matrix {
	t.Helper()
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	return id
}

// MustGet reads (x, y) or fails the test.
func MustGet(t testing.TB, m *matrix.Matrix, x, y int) float64 {
	t.Helper()
	v, err := m.Get(x, y)
	require.NoError(t, err)

	return v
}

// RequireRows asserts the exact table content of m.
func RequireRows(t testing.TB, want [][]float64, m *matrix.Matrix) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.ToArray())
}

// RequireClose asserts m ≈ want within closeTol, cell by cell.
func RequireClose(t testing.TB, want, m *matrix.Matrix) {
	t.Helper()
	require.Truef(t, m.AllClose(want, matrix.WithEpsilon(closeTol)),
		"not close:\n got:\n%s\nwant:\n%s", m, want)
}

// RandIntMatrix returns a width×height matrix of integers in [-5, 5] for a seed.
// Small integers keep determinants exact in float64.
func RandIntMatrix(t testing.TB, width, height int, seed int64) *matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, height)
	var x, y int
	for y = 0; y < height; y++ {
		rows[y] = make([]float64, width)
		for x = 0; x < width; x++ {
			rows[y][x] = float64(rng.Intn(11) - 5)
		}
	}

	return MustNew(t, rows)
}

// RandInvertible returns an n×n integer matrix with a nonzero determinant,
// retrying seeds deterministically.
func RandInvertible(t testing.TB, n int, seed int64) *matrix.Matrix {
	t.Helper()
	for s := seed; s < seed+100; s++ {
		m := RandIntMatrix(t, n, n, s)
		if m.IsInvertible() {
			return m
		}
	}
	t.Fatalf("no invertible %dx%d matrix found from seed %d", n, n, seed)

	return nil
}
