// Package bisect finds roots of continuous scalar functions by interval
// halving — the bracketing workhorse of the numerical-methods course.
//
// 🚀 What is bisection?
//
//	Given an interval [a, b] where f changes sign, a continuous f must
//	cross zero somewhere inside. Bisection tests the midpoint, keeps
//	the half that still brackets the sign change, and repeats. Slow but
//	unconditionally convergent — the classroom counterpart to the
//	faster, riskier secant method. Typical course uses:
//	  • solving a beam's elastic curve for the point of a given deflection
//	  • backing out channel depth from a discharge relation
//	  • any one-unknown equation with a known sign-change interval
//
// ✨ Key features:
//   - bracket validated up front: a sign-change-free interval is
//     rejected with ErrInvalidBracket instead of iterating to garbage
//   - exact midpoint zero short-circuits as a converged root
//   - relative-error-percentage stopping rule with an absolute floor
//     near zero, plus a hard iteration cap
//   - cap exhaustion returns the best estimate tagged Converged=false
//     together with ErrMaxIterations — never a silent bad answer
//   - optional OnIteration observer for tracing or early abort
//
// ⚙️ Usage:
//
//	import "github.com/hiter-joe/Computing-in-CEE/bisect"
//
//	f := func(x float64) float64 { return x*x - 2 }
//	opts := bisect.DefaultOptions()
//	opts.Epsilon = 1e-6 // percent
//
//	res, err := bisect.Find(f, 0, 2, &opts)
//	if err != nil {
//	  // ErrInvalidBracket, ErrMaxIterations, …
//	}
//	fmt.Printf("root ≈ %.8f after %d iterations\n", res.Root, res.Iterations)
//
// Performance:
//
//   - Time:   one function evaluation per halving, ≤ MaxIterations+2 total
//   - Memory: O(1)
//
// See example_test.go for the beam-deflection walkthrough.
package bisect
