package dense

import (
	"math"

	"github.com/matgo-dev/matgo/pkg/errors"
)

// Determinant computes the determinant of the square matrix a by Gaussian
// elimination to upper-triangular form, multiplying the pivots. No pivot
// search is performed: if at any step the magnitude of the diagonal entry
// falls below SingularityThreshold the matrix is treated as singular and
// 0 is returned, after a SingularityWarning has been emitted through the
// pkg/errors warning handler. O(n³) time.
func Determinant(a Matrix) (float64, error) {
	const op = "dense.Determinant"
	if err := checkMatrix(op, a); err != nil {
		return 0, err
	}
	if err := checkSquare(op, a); err != nil {
		return 0, err
	}

	n := a.Rows()
	t := a.Clone()
	det := 1.0
	for i := 0; i < n; i++ {
		pivot := t[i][i]
		if math.Abs(pivot) < SingularityThreshold {
			errors.Warn(errors.NewSingularityWarning(op, i, pivot))
			return 0.0, nil
		}
		for k := i + 1; k < n; k++ {
			factor := t[k][i] / pivot
			for j := i; j < n; j++ {
				t[k][j] -= factor * t[i][j]
			}
		}
		det *= pivot
	}
	return det, nil
}

// DeterminantCofactor computes the determinant of the square matrix a by
// recursive cofactor expansion along the first row, with (-1)^j sign
// alternation and minor extraction. 1×1 and 2×2 inputs use the closed
// forms. On any non-singular input it agrees with Determinant up to
// floating-point rounding.
//
// Cofactor expansion is exponential in the matrix dimension (O(n!)
// scalar multiplications); it is acceptable only for small matrices.
// Prefer Determinant for anything beyond toy sizes.
func DeterminantCofactor(a Matrix) (float64, error) {
	const op = "dense.DeterminantCofactor"
	if err := checkMatrix(op, a); err != nil {
		return 0, err
	}
	if err := checkSquare(op, a); err != nil {
		return 0, err
	}
	return cofactorDet(a), nil
}

// cofactorDet runs on validated square input.
func cofactorDet(a Matrix) float64 {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}
	if n == 2 {
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	det := 0.0
	sign := 1.0
	for j := 0; j < n; j++ {
		det += sign * a[0][j] * cofactorDet(minor(a, 0, j))
		sign = -sign
	}
	return det
}

// minor returns the submatrix of a with the given row and column dropped.
func minor(a Matrix, row, col int) Matrix {
	n := len(a)
	m := NewMatrix(n-1, n-1)
	mi := 0
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		mj := 0
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			m[mi][mj] = a[i][j]
			mj++
		}
		mi++
	}
	return m
}
