package dense

import (
	"github.com/matgo-dev/matgo/pkg/errors"
)

// Dot returns the dot product Σ a[i]*b[i] of two vectors of equal length.
func Dot(a, b Vector) (float64, error) {
	const op = "dense.Dot"
	if len(a) != len(b) {
		return 0, errors.NewDimensionError(op, len(a), len(b), 0)
	}

	result := 0.0
	for i := range a {
		result += a[i] * b[i]
	}
	return result, nil
}

// Cross returns the cross product of two 3-vectors.
func Cross(a, b Vector) (Vector, error) {
	const op = "dense.Cross"
	if len(a) != 3 {
		return nil, errors.NewDimensionError(op, 3, len(a), 0)
	}
	if len(b) != 3 {
		return nil, errors.NewDimensionError(op, 3, len(b), 0)
	}

	return Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}
