package bisect

import (
	"math"

	"github.com/hiter-joe/Computing-in-CEE/core"
)

// Find locates a root of f inside the bracket [a, b].
//
// Algorithm outline:
//  1. Validate inputs and evaluate f(a), f(b). If either endpoint is an
//     exact root it is returned immediately; if both values share a
//     sign, Find refuses with ErrInvalidBracket.
//  2. Each iteration tests the midpoint m of the current interval:
//     – f(m) == 0 exactly → m is returned as a converged root.
//     – sign(f(a)) == sign(f(m)) → the root lies in [m, b]; keep it.
//     – otherwise                → the root lies in [a, m]; keep it.
//  3. The new estimate is the midpoint of the kept half. Iteration
//     stops once its relative change from the previous estimate,
//     |Δ| / max(|estimate|, AbsTolerance) × 100, falls under Epsilon.
//  4. If MaxIterations halvings pass without convergence, Find returns
//     the current estimate tagged Converged=false together with
//     ErrMaxIterations.
//
// Each halving shrinks the interval to exactly half its previous width,
// so for a bracket of width w the error after k iterations is bounded
// by w / 2^(k+1).
//
// Find is pure: it keeps no state between calls and is safe to invoke
// concurrently as long as f itself is.
func Find(f core.Func, a, b float64, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	if !(a < b) {
		return Result{}, ErrBadInterval
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

	fa := f(a)
	if !core.IsFinite(fa) {
		return Result{}, ErrNonFinite
	}
	if fa == 0 {
		return Result{Root: a, Converged: true}, nil
	}
	fb := f(b)
	if !core.IsFinite(fb) {
		return Result{}, ErrNonFinite
	}
	if fb == 0 {
		return Result{Root: b, Converged: true}, nil
	}
	if core.Sign(fa) == core.Sign(fb) {
		return Result{}, ErrInvalidBracket
	}

	// estimate is the midpoint of the current interval; each iteration
	// tests it, discards one half, and re-derives the next estimate.
	estimate := (a + b) / 2
	for k := 1; ; k++ {
		mid := estimate
		fm := f(mid)
		if !core.IsFinite(fm) {
			return Result{}, ErrNonFinite
		}
		if fm == 0 {
			// Exact hit: report convergence instead of routing a zero
			// sign through the bracketing comparison.
			res := Result{Root: mid, Iterations: k, Converged: true}
			if o.OnIteration != nil {
				it := Iteration{K: k, A: a, B: b, Mid: mid, FMid: fm, Width: b - a, Estimate: mid}
				if err := o.OnIteration(it); err != nil {
					return res, err
				}
			}
			return res, nil
		}

		if core.Sign(fa) == core.Sign(fm) {
			a, fa = mid, fm
		} else {
			b = mid
		}

		estimate = (a + b) / 2
		relErr := math.Abs(estimate-mid) / math.Max(math.Abs(estimate), o.AbsTolerance) * 100

		if o.OnIteration != nil {
			it := Iteration{
				K:        k,
				A:        a,
				B:        b,
				Mid:      mid,
				FMid:     fm,
				Width:    b - a,
				Estimate: estimate,
				RelErr:   relErr,
			}
			if err := o.OnIteration(it); err != nil {
				return Result{Root: estimate, Iterations: k, RelErr: relErr}, err
			}
		}

		if relErr < o.Epsilon {
			return Result{Root: estimate, Iterations: k, RelErr: relErr, Converged: true}, nil
		}
		if k >= o.MaxIterations {
			return Result{Root: estimate, Iterations: k, RelErr: relErr}, ErrMaxIterations
		}
	}
}
