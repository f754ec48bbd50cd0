package dense

import (
	"gonum.org/v1/gonum/mat"

	"github.com/matgo-dev/matgo/pkg/errors"
)

// Conversions between kernel values and gonum containers. This is the
// marshaling seam for callers that hold their data in gonum types; the
// kernel itself never computes through gonum.

// ToDense converts the matrix to a gonum *mat.Dense.
func ToDense(m Matrix) (*mat.Dense, error) {
	const op = "dense.ToDense"
	if err := checkMatrix(op, m); err != nil {
		return nil, err
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]float64, 0, rows*cols)
	for _, row := range m {
		data = append(data, row...)
	}
	return mat.NewDense(rows, cols, data), nil
}

// FromDense converts a gonum matrix to a kernel Matrix. An empty gonum
// matrix yields an empty Matrix.
func FromDense(d mat.Matrix) Matrix {
	rows, cols := d.Dims()
	if rows == 0 || cols == 0 {
		return Matrix{}
	}

	m := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m[i][j] = d.At(i, j)
		}
	}
	return m
}

// ToVecDense converts the vector to a gonum *mat.VecDense.
func ToVecDense(v Vector) (*mat.VecDense, error) {
	const op = "dense.ToVecDense"
	if len(v) == 0 {
		return nil, errors.NewEmptyDataError(op)
	}
	return mat.NewVecDense(len(v), v.Clone()), nil
}

// FromVecDense converts a gonum vector to a kernel Vector.
func FromVecDense(d mat.Vector) Vector {
	v := make(Vector, d.Len())
	for i := range v {
		v[i] = d.AtVec(i)
	}
	return v
}
