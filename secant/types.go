// Package secant defines options, iteration records and sentinel errors
// for the secant-method root finder.
//
// The secant method replaces the derivative of Newton's method with a
// finite difference through the two most recent iterates. It needs no
// bracket — only two starting guesses — and converges superlinearly
// when it converges, but offers none of bisection's guarantees.
//
// Options:
//
//	– Epsilon:       relative-error percentage threshold for convergence.
//	– MaxIterations: hard cap on the number of secant steps.
//	– AbsTolerance:  absolute floor in the relative-error divisor.
//	– OnIteration:   optional per-iteration observer; return ErrStopped
//	                 to abort early.
//
// Errors (sentinel):
//
//	– ErrNilFunc          if the supplied function is nil.
//	– ErrEqualGuesses     if x0 == x1.
//	– ErrBadEpsilon       if Epsilon < 0 (zero selects the default).
//	– ErrBadMaxIterations if MaxIterations < 0 (zero selects the default).
//	– ErrStalled          if f(x0) == f(x1) makes the secant step undefined.
//	– ErrNonFinite        if f returns NaN or ±Inf.
//	– ErrMaxIterations    if the cap is reached before convergence.
//	– ErrStopped          if the OnIteration observer aborted the run.
package secant

import "errors"

// Sentinel errors returned by Find.
var (
	// ErrNilFunc indicates that a nil core.Func was supplied.
	ErrNilFunc = errors.New("secant: function is nil")

	// ErrEqualGuesses indicates that the two starting guesses coincide,
	// leaving no secant to draw.
	ErrEqualGuesses = errors.New("secant: starting guesses must differ")

	// ErrBadEpsilon indicates a negative convergence threshold; zero
	// selects DefaultEpsilon instead.
	ErrBadEpsilon = errors.New("secant: Epsilon must not be negative")

	// ErrBadMaxIterations indicates a negative iteration cap; zero
	// selects DefaultMaxIterations instead.
	ErrBadMaxIterations = errors.New("secant: MaxIterations must not be negative")

	// ErrStalled indicates that the last two ordinates are equal, so the
	// secant through them is horizontal and the next iterate undefined.
	ErrStalled = errors.New("secant: zero slope between last two iterates")

	// ErrNonFinite indicates that the supplied function returned NaN or
	// ±Inf at an evaluated point.
	ErrNonFinite = errors.New("secant: function returned a non-finite value")

	// ErrMaxIterations indicates the iteration cap was exhausted before
	// the relative error fell under Epsilon. The accompanying Result
	// still carries the best available estimate, tagged Converged=false.
	ErrMaxIterations = errors.New("secant: iteration cap reached before convergence")

	// ErrStopped is returned when the OnIteration observer requested an
	// early abort by returning this same sentinel.
	ErrStopped = errors.New("secant: stopped by OnIteration observer")
)

const (
	// DefaultEpsilon is the course's stock relative-error threshold,
	// in percent.
	DefaultEpsilon = 1e-4

	// DefaultMaxIterations is the course's stock iteration cap.
	DefaultMaxIterations = 100

	// DefaultAbsTolerance floors the relative-error divisor so estimates
	// near zero remain comparable.
	DefaultAbsTolerance = 1e-12
)

// Iteration is the state recorded after one secant step: the two
// iterates the secant was drawn through (X0, X1), the new iterate X2
// with its ordinate FX2, and the percentage change RelErr between X2
// and X1.
type Iteration struct {
	K      int
	X0, X1 float64
	X2     float64
	FX2    float64
	RelErr float64
}

// Options configures Find. Zero-value fields are replaced by the
// package defaults; see DefaultOptions.
type Options struct {
	// Epsilon is the relative-error percentage threshold: iteration
	// stops once |Δiterate| / |iterate| * 100 < Epsilon.
	Epsilon float64

	// MaxIterations caps the number of secant steps.
	MaxIterations int

	// AbsTolerance floors |iterate| in the relative-error divisor.
	AbsTolerance float64

	// OnIteration, when non-nil, observes every secant step. Returning
	// ErrStopped aborts the run; any other non-nil error is propagated
	// unchanged.
	OnIteration func(Iteration) error
}

// DefaultOptions returns the course-standard configuration:
// Epsilon=1e-4 (percent), MaxIterations=100.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		AbsTolerance:  DefaultAbsTolerance,
	}
}

// Result is the outcome of a Find call. Converged distinguishes genuine
// convergence from an estimate returned after cap exhaustion, a stall
// or an observer abort.
type Result struct {
	Root       float64
	Iterations int
	RelErr     float64
	Converged  bool
}
