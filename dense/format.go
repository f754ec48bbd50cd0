package dense

import (
	"strconv"
	"strings"
)

// String renders the matrix row-bracketed and comma-separated:
//
//	Matrix([
//	  [1, 2],
//	  [3, 4],
//	])
//
// Values round-trip through strconv's shortest representation; the output
// carries no numeric contract beyond that.
func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("Matrix([\n")
	for _, row := range m {
		sb.WriteString("  [")
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatValue(v))
		}
		sb.WriteString("],\n")
	}
	sb.WriteString("])")
	return sb.String()
}

// String renders the vector bracketed and comma-separated:
//
//	Vector([1, 2, 3])
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("Vector([")
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatValue(x))
	}
	sb.WriteString("])")
	return sb.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
