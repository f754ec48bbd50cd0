// Package matgo provides a small, self-contained dense linear-algebra
// kernel for Go: matrix and vector arithmetic, determinants, inverses and
// linear solves over real-valued data of modest size.
//
// MatGo is aimed at callers that need a correct, referenceable kernel with
// explicit shape validation and a defined singularity policy, not at
// high-throughput numerical computing. For large-scale work use
// gonum.org/v1/gonum directly; MatGo interoperates with it through the
// conversion helpers in the dense package.
//
// # Features
//
// - Pure functions: inputs are never mutated, results are fresh allocations
// - Explicit validation: every operation checks shapes before computing
// - Typed errors: dimension mismatches and singular matrices are
// distinguishable with errors.As / errors.Is
// - Two determinant algorithms, cofactor expansion and triangularization,
// exposed side by side and guaranteed to agree on non-singular input
// - gonum interop: lossless conversion to and from mat.Dense / mat.VecDense
//
// # Installation
//
// Install MatGo using go get:
//
//	go get github.com/matgo-dev/matgo
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/matgo-dev/matgo/dense"
//	)
//
//	func main() {
//	    a := dense.Matrix{{4, 7}, {2, 6}}
//
//	    inv, err := dense.Inverse(a)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(inv)
//
//	    x, err := dense.Solve(a, dense.Vector{1, 2})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - dense: the kernel (multiply, add, subtract, scale, transpose,
//     determinant, inverse, solve, dot, cross) and gonum conversions
//   - viz: heat-map rendering of matrix values via gonum.org/v1/plot
//   - pkg/errors: typed errors and warnings used across the library
//   - pkg/log: structured, slog-compatible logging
//
// # Numerical policy
//
// Elimination always pivots on the current diagonal entry; there is no
// pivot search. A pivot whose magnitude falls below 1e-10 makes Inverse and
// Solve fail with a singular-matrix error, while Determinant returns 0.
// Matrices that are invertible but present a near-zero leading pivot at
// some elimination step are therefore reported singular. See the dense
// package documentation for details.
package matgo
