// Package linsolve defines sentinel errors and tolerances for the dense
// direct linear-system solver.
//
// Errors (sentinel):
//
//	– ErrNilSystem         if the matrix or right-hand side is nil/empty.
//	– ErrNotSquare         if the matrix is ragged or non-square.
//	– ErrDimensionMismatch if len(b) differs from the matrix order.
//	– ErrSingular          if elimination meets a (near-)zero pivot.
package linsolve

import "errors"

// Sentinel errors returned by Solve and Residual.
var (
	// ErrNilSystem indicates a nil or empty coefficient matrix or
	// right-hand side.
	ErrNilSystem = errors.New("linsolve: system must be non-empty")

	// ErrNotSquare indicates a ragged or non-square coefficient matrix.
	ErrNotSquare = errors.New("linsolve: matrix must be square")

	// ErrDimensionMismatch indicates that the right-hand side length
	// does not match the matrix order.
	ErrDimensionMismatch = errors.New("linsolve: rhs length must equal matrix order")

	// ErrSingular indicates a zero (or below-threshold) pivot during
	// elimination: the system has no unique solution.
	ErrSingular = errors.New("linsolve: matrix is singular or nearly singular")
)

// PivotThreshold is the scaled-pivot magnitude under which elimination
// treats the matrix as singular. Pivots are compared after scaling by
// each row's largest coefficient, so the threshold is dimensionless.
const PivotThreshold = 1e-12
