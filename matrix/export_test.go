// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported kernels and panic messages to matrix_test
// without widening the production API.

const (
	PanicEpsilonInvalid = panicEpsilonInvalid
	PanicRelTolInvalid  = panicRelTolInvalid
)

var (
	// ExportedDetTable is the raw row-0 Laplace kernel.
	ExportedDetTable = detTable
	// ExportedMinorTable drops one column and one row from a table.
	ExportedMinorTable = minorTable
	// ExportedTransposeTable swaps a width×height table.
	ExportedTransposeTable = transposeTable
)
