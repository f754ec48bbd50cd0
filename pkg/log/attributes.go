// Package log defines standard attribute keys for linear-algebra
// operations.
//
// Using these keys consistently across the library enables filtering and
// analysis of structured logs. Keys follow a hierarchical naming convention
// (e.g. "matrix.rows", "pivot.index").
package log

// Operation context.
const (
	// OpKey names the kernel operation being performed.
	// Standard values: "dense.Multiply", "dense.Inverse", "dense.Solve", ...
	OpKey = "op"

	// ComponentKey identifies the package performing the operation.
	// Examples: "dense", "viz"
	ComponentKey = "component"
)

// Shape of the data being processed.
const (
	// RowsKey is the row count of the matrix being processed.
	RowsKey = "matrix.rows"

	// ColsKey is the column count of the matrix being processed.
	ColsKey = "matrix.cols"

	// LenKey is the length of the vector being processed.
	LenKey = "vector.len"
)

// Elimination diagnostics.
const (
	// PivotIndexKey is the elimination step at which an event occurred.
	PivotIndexKey = "pivot.index"

	// PivotValueKey is the value of the pivot at that step.
	PivotValueKey = "pivot.value"
)

// Performance.
const (
	// DurationMSKey is the elapsed wall-clock time in milliseconds.
	DurationMSKey = "duration_ms"
)
