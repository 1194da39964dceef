// Package secant finds roots of continuous scalar functions by the
// secant method — the course's fast, bracket-free counterpart to bisect.
//
// 🚀 What is the secant method?
//
//	Newton's method without the derivative: each step draws the line
//	through the two most recent points on the curve and jumps to where
//	that line crosses zero. Convergence is superlinear (order ≈ 1.618)
//	near a simple root. The course uses it where evaluating f is easy
//	but differentiating it is not, most prominently:
//	  • the Green-Ampt infiltration equation, implicit in cumulative
//	    infiltration F (see the problems package)
//
// ✨ Key features:
//   - two starting guesses, no bracket required
//   - the same relative-error-percentage stopping rule as bisect, with
//     the same absolute floor near zero and hard iteration cap
//   - a horizontal secant (equal ordinates) surfaces ErrStalled instead
//     of dividing by zero
//   - cap exhaustion returns the best iterate tagged Converged=false
//     together with ErrMaxIterations
//   - optional OnIteration observer for tracing or early abort
//
// ⚙️ Usage:
//
//	import "github.com/hiter-joe/Computing-in-CEE/secant"
//
//	f := func(x float64) float64 { return x*x*x - x - 2 }
//	res, err := secant.Find(f, 1, 2, nil)
//	if err != nil {
//	  // ErrStalled, ErrMaxIterations, …
//	}
//	fmt.Printf("root ≈ %.6f\n", res.Root)
//
// When guarantees matter more than speed, use bisect instead; when the
// function's shape is unknown, plot first or bracket coarsely.
package secant
