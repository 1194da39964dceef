// Package linsolve solves small dense linear systems a·x = b directly —
// the course's tool for steady-state mixing and reactor balances.
//
// 🚀 What is a direct solve?
//
//	Gaussian elimination reduces the system to triangular form once,
//	then back-substitutes — no iteration, no convergence question.
//	The course meets it wherever conservation statements couple a
//	handful of unknowns linearly:
//	  • steady-state concentrations in networks of mixed reactors
//	  • flows in small pipe or channel junction systems
//	  • fitting low-order polynomials through data points
//
// ✨ Key features:
//   - scaled partial pivoting: rows are promoted by pivot size relative
//     to their own largest coefficient, so badly scaled equations do
//     not poison the elimination
//   - fail-fast validation: ragged, non-square or mismatched systems
//     are rejected before any arithmetic
//   - singular and near-singular matrices surface ErrSingular instead
//     of overflowing quietly
//   - inputs are never mutated; Residual verifies any candidate answer
//
// ⚙️ Usage:
//
//	import "github.com/hiter-joe/Computing-in-CEE/linsolve"
//
//	a := [][]float64{{8, 0, -3}, {-8, 13, 0}, {0, -13, 13}}
//	b := []float64{50, 100, 0}
//
//	x, err := linsolve.Solve(a, b)
//	if err != nil {
//	  // ErrSingular, ErrNotSquare, …
//	}
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) working copy (inputs stay untouched)
//
// The course's systems are 2×2 to 4×4; nothing here is tuned beyond
// that scale.
package linsolve
