package dense

import (
	"math"

	"github.com/matgo-dev/matgo/pkg/errors"
)

// Solve solves the linear system A·x = b by Gauss-Jordan elimination
// applied to the coefficient matrix and the right-hand side in lockstep.
// A must be square and len(b) must equal A's row count.
//
// The same singularity policy as Inverse applies: no pivot search, and a
// diagonal entry with magnitude below SingularityThreshold yields a
// SingularError wrapping errors.ErrSingularMatrix. O(n³) time.
func Solve(a Matrix, b Vector) (Vector, error) {
	const op = "dense.Solve"
	if err := checkMatrix(op, a); err != nil {
		return nil, err
	}
	if err := checkSquare(op, a); err != nil {
		return nil, err
	}
	if len(b) != a.Rows() {
		return nil, errors.NewDimensionError(op, a.Rows(), len(b), 0)
	}

	n := a.Rows()
	t := a.Clone()
	x := b.Clone()
	for i := 0; i < n; i++ {
		pivot := t[i][i]
		if math.Abs(pivot) < SingularityThreshold {
			return nil, errors.NewSingularError(op, i, pivot)
		}

		// Normalize the pivot row together with the right-hand side.
		for j := i; j < n; j++ {
			t[i][j] /= pivot
		}
		x[i] /= pivot

		// Eliminate column i from every other row.
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			factor := t[k][i]
			for j := i; j < n; j++ {
				t[k][j] -= factor * t[i][j]
			}
			x[k] -= factor * x[i]
		}
	}
	return x, nil
}
