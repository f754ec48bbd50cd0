package dense

import (
	"math"

	"github.com/matgo-dev/matgo/pkg/errors"
)

// Inverse computes the inverse of the square matrix a by Gauss-Jordan
// elimination on the augmented matrix [A|I]: each pivot row is scaled so
// the pivot becomes 1, then the pivot column is eliminated from every
// other row. The right half of the augmented matrix is the inverse.
//
// No pivot search is performed. If the magnitude of a diagonal entry
// falls below SingularityThreshold at any step, a SingularError wrapping
// errors.ErrSingularMatrix is returned. O(n³) time.
func Inverse(a Matrix) (Matrix, error) {
	const op = "dense.Inverse"
	if err := checkMatrix(op, a); err != nil {
		return nil, err
	}
	if err := checkSquare(op, a); err != nil {
		return nil, err
	}

	n := a.Rows()

	// Augmented matrix [A|I].
	aug := NewMatrix(n, 2*n)
	for i := 0; i < n; i++ {
		copy(aug[i][:n], a[i])
		aug[i][n+i] = 1.0
	}

	for i := 0; i < n; i++ {
		pivot := aug[i][i]
		if math.Abs(pivot) < SingularityThreshold {
			return nil, errors.NewSingularError(op, i, pivot)
		}

		// Scale the pivot row so the pivot becomes 1.
		for j := 0; j < 2*n; j++ {
			aug[i][j] /= pivot
		}

		// Eliminate column i from every other row.
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			factor := aug[k][i]
			for j := 0; j < 2*n; j++ {
				aug[k][j] -= factor * aug[i][j]
			}
		}
	}

	inv := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		copy(inv[i], aug[i][n:])
	}
	return inv, nil
}
