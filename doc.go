// Package lvmatrix is a dense, arbitrary-size float64 matrix library with
// exact, readable linear algebra: elementwise and matrix-matrix arithmetic,
// structural queries and the determinant family (minors, cofactors, adjugate,
// inverse) plus integer powers.
//
// What is inside:
//
//	matrix/        the Matrix type, its operation pairs, validators, options
//	               and text/JSON/gonum conversions
//	cmd/matcalc/   command-line calculator over JSON or text matrix files
//	examples/      runnable scenarios (Markov chains)
//
// Every operation comes as a pair: a pure form that returns a new matrix
// (Multiplied, Inverse, Transposed) and a mutating form that installs the same
// result in the receiver (Multiply, Invert, Transpose). Failed mutating calls
// leave the receiver untouched.
//
// Quick example:
//
//	m := matrix.MustNew([][]float64{{1, 2}, {3, 4}})
//	det, _ := m.Determinant()    // -2
//	inv, _ := m.Inverse()        // [[-2, 1], [1.5, -0.5]]
//	sq, _ := m.Exponentiated(2)  // [[7, 10], [15, 22]]
//
// Determinant, Cofactors, Adjugate and Inverse use Laplace expansion and are
// factorial-time: the library favors correctness and reproducibility on small
// and moderate matrices. Convert with ToDense for gonum's LU-based kernels
// when sizes grow.
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
