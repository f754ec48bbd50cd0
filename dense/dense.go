// Package dense implements a small dense linear-algebra kernel over
// real-valued matrices and vectors: multiplication, element-wise
// arithmetic, transposition, determinants, inversion, linear solves and
// vector products.
//
// All operations are pure functions. Inputs are never mutated, every
// result is a fresh allocation, and there is no shared or package-level
// state, so the kernel is safe to call concurrently from independent
// call sites. Every operation validates its operands before computing and
// returns a typed error from pkg/errors on a shape mismatch; no partial
// results are ever produced.
//
// # Singularity policy
//
// Elimination always uses the current diagonal entry as the pivot; there
// is no pivot search. A pivot whose magnitude falls below
// SingularityThreshold (1e-10) is treated as singular: Inverse and Solve
// fail with an error wrapping errors.ErrSingularMatrix, while Determinant
// returns 0 and emits a SingularityWarning through the pkg/errors warning
// handler. A consequence of the missing pivot search is that matrices
// which are invertible but present a near-zero leading pivot at some
// elimination step, such as {{0, 1}, {1, 0}}, are reported singular.
package dense

import (
	"fmt"

	"github.com/matgo-dev/matgo/pkg/errors"
)

// SingularityThreshold is the pivot magnitude below which elimination
// treats a matrix as singular. It is compared against the absolute value
// of the current diagonal entry.
const SingularityThreshold = 1e-10

// Matrix is a rectangular array of float64 values, row-major. A valid
// matrix has at least one row, at least one column, and rows of equal
// length; the validation helpers reject anything else before an operation
// touches the data.
type Matrix [][]float64

// Vector is a flat ordered sequence of float64 values.
type Vector []float64

// NewMatrix returns a zero-filled rows×cols matrix. It panics if either
// dimension is not positive, mirroring gonum's constructor behavior.
func NewMatrix(rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		panic("dense: non-positive matrix dimension")
	}
	m := make(Matrix, rows)
	backing := make([]float64, rows*cols)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return m
}

// Identity returns the n×n identity matrix. It panics if n is not
// positive.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1.0
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns, 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsSquare reports whether the matrix is square and non-empty.
func (m Matrix) IsSquare() bool {
	return m.Rows() >= 1 && m.Rows() == m.Cols()
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	return out
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// checkMatrix rejects empty and ragged matrices. It is the first thing
// every matrix operation runs on each of its operands.
func checkMatrix(op string, m Matrix) error {
	if m.Rows() == 0 || m.Cols() == 0 {
		return errors.NewEmptyDataError(op)
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return errors.NewValueError(op, fmt.Sprintf("ragged matrix: row %d has length %d, want %d", i, len(row), cols))
		}
	}
	return nil
}

// checkSquare rejects non-square matrices. Callers run checkMatrix first.
func checkSquare(op string, m Matrix) error {
	if m.Rows() != m.Cols() {
		return errors.NewDimensionError(op, m.Rows(), m.Cols(), 1)
	}
	return nil
}
