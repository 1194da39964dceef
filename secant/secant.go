package secant

import (
	"math"

	"github.com/hiter-joe/Computing-in-CEE/core"
)

// Find locates a root of f starting from the two guesses x0 and x1.
//
// Algorithm outline:
//  1. Validate inputs and evaluate f at both guesses; an exact root at
//     either guess is returned immediately.
//  2. Each step draws the secant through (x0, f(x0)) and (x1, f(x1))
//     and takes its x-intercept as the next iterate:
//     x2 = x1 - f(x1)·(x1-x0)/(f(x1)-f(x0)).
//     Equal ordinates make the step undefined; Find returns the best
//     iterate so far together with ErrStalled.
//  3. Iteration stops once the relative change
//     |x2-x1| / max(|x2|, AbsTolerance) × 100 falls under Epsilon, or
//     f(x2) is exactly zero.
//  4. If MaxIterations steps pass without convergence, Find returns the
//     current iterate tagged Converged=false alongside ErrMaxIterations.
//
// Unlike bisect.Find there is no bracketing guarantee: a poor pair of
// guesses can diverge, stall, or wander to a different root. Pair the
// method with a plot or a coarse bisection when the landscape is
// unknown.
func Find(f core.Func, x0, x1 float64, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if x0 == x1 {
		return Result{}, ErrEqualGuesses
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.AbsTolerance == 0 {
		o.AbsTolerance = DefaultAbsTolerance
	}
	if o.Epsilon < 0 {
		return Result{}, ErrBadEpsilon
	}
	if o.MaxIterations < 0 {
		return Result{}, ErrBadMaxIterations
	}

	f0 := f(x0)
	if !core.IsFinite(f0) {
		return Result{}, ErrNonFinite
	}
	if f0 == 0 {
		return Result{Root: x0, Converged: true}, nil
	}
	f1 := f(x1)
	if !core.IsFinite(f1) {
		return Result{}, ErrNonFinite
	}
	if f1 == 0 {
		return Result{Root: x1, Converged: true}, nil
	}

	for k := 1; ; k++ {
		if f1 == f0 {
			return Result{Root: x1, Iterations: k - 1}, ErrStalled
		}

		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if !core.IsFinite(x2) {
			return Result{Root: x1, Iterations: k - 1}, ErrNonFinite
		}
		f2 := f(x2)
		if !core.IsFinite(f2) {
			return Result{Root: x1, Iterations: k - 1}, ErrNonFinite
		}

		relErr := math.Abs(x2-x1) / math.Max(math.Abs(x2), o.AbsTolerance) * 100

		if o.OnIteration != nil {
			it := Iteration{K: k, X0: x0, X1: x1, X2: x2, FX2: f2, RelErr: relErr}
			if err := o.OnIteration(it); err != nil {
				return Result{Root: x2, Iterations: k, RelErr: relErr}, err
			}
		}

		if f2 == 0 {
			return Result{Root: x2, Iterations: k, Converged: true}, nil
		}
		if relErr < o.Epsilon {
			return Result{Root: x2, Iterations: k, RelErr: relErr, Converged: true}, nil
		}
		if k >= o.MaxIterations {
			return Result{Root: x2, Iterations: k, RelErr: relErr}, ErrMaxIterations
		}

		x0, f0, x1, f1 = x1, f1, x2, f2
	}
}
