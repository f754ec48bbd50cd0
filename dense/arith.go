package dense

import (
	"github.com/matgo-dev/matgo/pkg/errors"
)

// Multiply returns the matrix product of a and b. The inner dimensions
// must agree: a.Cols() == b.Rows(). The result is a.Rows()×b.Cols() with
// entry (i,j) = Σ_k a[i][k]*b[k][j].
func Multiply(a, b Matrix) (Matrix, error) {
	const op = "dense.Multiply"
	if err := checkMatrix(op, a); err != nil {
		return nil, err
	}
	if err := checkMatrix(op, b); err != nil {
		return nil, err
	}
	if a.Cols() != b.Rows() {
		return nil, errors.NewDimensionError(op, a.Cols(), b.Rows(), 0)
	}

	result := NewMatrix(a.Rows(), b.Cols())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < b.Cols(); j++ {
			for k := 0; k < b.Rows(); k++ {
				result[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return result, nil
}

// Add returns the element-wise sum of a and b, which must have identical
// shape.
func Add(a, b Matrix) (Matrix, error) {
	const op = "dense.Add"
	if err := checkSameShape(op, a, b); err != nil {
		return nil, err
	}

	result := a.Clone()
	for i := range result {
		for j := range result[i] {
			result[i][j] += b[i][j]
		}
	}
	return result, nil
}

// Subtract returns the element-wise difference a - b. The operands must
// have identical shape.
func Subtract(a, b Matrix) (Matrix, error) {
	const op = "dense.Subtract"
	if err := checkSameShape(op, a, b); err != nil {
		return nil, err
	}

	result := a.Clone()
	for i := range result {
		for j := range result[i] {
			result[i][j] -= b[i][j]
		}
	}
	return result, nil
}

// Scale returns a copy of a with every entry multiplied by s. There is no
// shape constraint and no failure mode.
func Scale(a Matrix, s float64) Matrix {
	result := a.Clone()
	for i := range result {
		for j := range result[i] {
			result[i][j] *= s
		}
	}
	return result
}

// Transpose returns the transpose of a: the result is a.Cols()×a.Rows()
// with result[j][i] = a[i][j]. Pure reindexing, no arithmetic is
// performed.
func Transpose(a Matrix) (Matrix, error) {
	const op = "dense.Transpose"
	if err := checkMatrix(op, a); err != nil {
		return nil, err
	}

	result := NewMatrix(a.Cols(), a.Rows())
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			result[j][i] = a[i][j]
		}
	}
	return result, nil
}

func checkSameShape(op string, a, b Matrix) error {
	if err := checkMatrix(op, a); err != nil {
		return err
	}
	if err := checkMatrix(op, b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() {
		return errors.NewDimensionError(op, a.Rows(), b.Rows(), 0)
	}
	if a.Cols() != b.Cols() {
		return errors.NewDimensionError(op, a.Cols(), b.Cols(), 1)
	}
	return nil
}
