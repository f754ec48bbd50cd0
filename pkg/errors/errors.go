// Package errors provides the error and warning machinery used across
// MatGo. Errors carry stack traces via cockroachdb/errors and implement
// zerolog's LogObjectMarshaler so that callers get structured error
// information in their logs without extra plumbing.
//
// Two kinds of failure exist in the kernel: shape mismatches
// (DimensionError, ValueError) and numerical singularity (SingularError).
// Singularity detected on a path that does not fail, such as the
// determinant returning zero, is surfaced as a warning through Warn.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("MatGo-Warning: %v\n", w)
	}
	// zerolog sink, installed lazily to avoid an import cycle with pkg/log.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler sets the warning handler for the whole library.
// It controls what happens to non-fatal numerical events such as a
// determinant collapsing to zero on a sub-threshold pivot.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs a zerolog-backed warning sink. When set it
// takes precedence over the handler installed with SetWarningHandler.
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning through the configured sink.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// SingularityWarning is emitted when elimination encounters a pivot below
// the singularity threshold on a path that does not fail, i.e. the
// determinant returning zero instead of raising an error.
type SingularityWarning struct {
	Op    string
	Index int
	Pivot float64
}

func (w *SingularityWarning) Error() string {
	return fmt.Sprintf("%s: pivot %g at index %d is below the singularity threshold; matrix treated as singular", w.Op, w.Pivot, w.Index)
}

// MarshalZerologObject adds structured warning information to a zerolog event.
func (w *SingularityWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("pivot_index", w.Index).
		Float64("pivot_value", w.Pivot).
		Str("type", "SingularityWarning")
}

// NewSingularityWarning creates a new SingularityWarning.
func NewSingularityWarning(op string, index int, pivot float64) *SingularityWarning {
	return &SingularityWarning{Op: op, Index: index, Pivot: pivot}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// DimensionError reports operands whose dimensions are incompatible for the
// requested operation: non-conformant multiply, unequal shapes for
// element-wise arithmetic, wrong vector length, or a non-square input where
// a square one is required.
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns
}

func (e *DimensionError) Error() string {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("matgo: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "columns"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError creates a new DimensionError with a stack trace attached.
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// SingularError reports that elimination hit a pivot whose magnitude is
// below the singularity threshold during Inverse or Solve. It wraps
// ErrSingularMatrix, so errors.Is(err, ErrSingularMatrix) holds.
type SingularError struct {
	Op    string
	Index int     // elimination step at which the pivot collapsed
	Pivot float64 // offending pivot value
	Err   error
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("matgo: %s: matrix is singular (pivot %g at index %d)", e.Op, e.Pivot, e.Index)
}

func (e *SingularError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *SingularError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("pivot_index", e.Index).
		Float64("pivot_value", e.Pivot).
		Str("type", "SingularError")
}

// NewSingularError creates a new SingularError with a stack trace attached.
func NewSingularError(op string, index int, pivot float64) error {
	err := &SingularError{Op: op, Index: index, Pivot: pivot, Err: ErrSingularMatrix}
	return errors.WithStack(err)
}

// ValueError reports an input whose value, rather than its shape relative
// to another operand, is unacceptable: an empty matrix or a ragged one.
// When the input is empty the error wraps ErrEmptyData.
type ValueError struct {
	Op      string
	Message string
	Err     error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("matgo: %s: %s", e.Op, e.Message)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured error information to a zerolog event.
func (e *ValueError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("message", e.Message).
		Str("type", "ValueError")
}

// NewValueError creates a new ValueError with a stack trace attached.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// NewEmptyDataError creates a ValueError for an empty input, wrapping
// ErrEmptyData, with a stack trace attached.
func NewEmptyDataError(op string) error {
	err := &ValueError{Op: op, Message: "empty data", Err: ErrEmptyData}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to an error.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common sentinel errors
//
// ===========================================================================

var (
	// ErrEmptyData is the sentinel for empty input.
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix is the sentinel for a singular matrix.
	ErrSingularMatrix = New("singular matrix")
)
