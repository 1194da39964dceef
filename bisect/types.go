// Package bisect defines options, iteration records and sentinel errors
// for the bracketing (bisection) root finder.
//
// Bisection locates a root of a continuous function inside an interval
// whose endpoint values differ in sign, by repeatedly halving the
// interval and keeping the half that still brackets the sign change.
//
// Complexity:
//
//	– Time:  O(MaxIterations) function evaluations — one per halving,
//	   plus the two endpoint evaluations used to validate the bracket.
//	– Space: O(1) — the working state is the interval, the previous
//	   midpoint estimate and a counter.
//
// Options:
//
//	– Epsilon:       relative-error percentage threshold for convergence.
//	– MaxIterations: hard cap on the number of halvings.
//	– AbsTolerance:  absolute floor used in the relative-error divisor so
//	                 roots at (or near) zero do not divide by zero.
//	– OnIteration:   optional per-iteration observer; return ErrStopped
//	                 to abort early.
//
// Errors (sentinel):
//
//	– ErrNilFunc          if the supplied function is nil.
//	– ErrBadInterval      if a >= b.
//	– ErrBadEpsilon       if Epsilon < 0 (zero selects the default).
//	– ErrBadMaxIterations if MaxIterations < 0 (zero selects the default).
//	– ErrInvalidBracket   if f does not change sign over [a, b].
//	– ErrNonFinite        if f returns NaN or ±Inf.
//	– ErrMaxIterations    if the cap is reached before convergence.
//	– ErrStopped          if the OnIteration observer aborted the run.
package bisect

import "errors"

// Sentinel errors returned by Find.
var (
	// ErrNilFunc indicates that a nil core.Func was supplied.
	ErrNilFunc = errors.New("bisect: function is nil")

	// ErrBadInterval indicates that the interval endpoints are not
	// strictly ordered (a >= b).
	ErrBadInterval = errors.New("bisect: interval requires a < b")

	// ErrBadEpsilon indicates a negative convergence threshold; zero
	// selects DefaultEpsilon instead.
	ErrBadEpsilon = errors.New("bisect: Epsilon must not be negative")

	// ErrBadMaxIterations indicates a negative iteration cap; zero
	// selects DefaultMaxIterations instead.
	ErrBadMaxIterations = errors.New("bisect: MaxIterations must not be negative")

	// ErrInvalidBracket indicates that f(a) and f(b) share a sign, so the
	// interval is not known to contain a root. The finder refuses to
	// iterate rather than silently converge to a meaningless point.
	ErrInvalidBracket = errors.New("bisect: f(a) and f(b) must differ in sign")

	// ErrNonFinite indicates that the supplied function returned NaN or
	// ±Inf at an evaluated point.
	ErrNonFinite = errors.New("bisect: function returned a non-finite value")

	// ErrMaxIterations indicates the iteration cap was exhausted before
	// the relative error fell under Epsilon. The accompanying Result
	// still carries the best available estimate, tagged Converged=false.
	ErrMaxIterations = errors.New("bisect: iteration cap reached before convergence")

	// ErrStopped is returned when the OnIteration observer requested an
	// early abort by returning this same sentinel.
	ErrStopped = errors.New("bisect: stopped by OnIteration observer")
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

// Iteration is the state recorded at the end of one halving step.
//
// Mid is the midpoint *tested* during the step and FMid its function
// value; A and B are the interval endpoints after the halving; Width is
// B-A; Estimate is the new midpoint estimate (the midpoint of [A, B]);
// RelErr is the percentage change between Estimate and the previous
// step's estimate.
type Iteration struct {
	K        int
	A, B     float64
	Mid      float64
	FMid     float64
	Width    float64
	Estimate float64
	RelErr   float64
}

// Options configures Find. Zero-value fields are replaced by the
// package defaults; see DefaultOptions.
type Options struct {
	// Epsilon is the relative-error percentage threshold: iteration
	// stops once |Δestimate| / |estimate| * 100 < Epsilon.
	Epsilon float64

	// MaxIterations caps the number of halvings.
	MaxIterations int

	// AbsTolerance floors |estimate| in the relative-error divisor.
	AbsTolerance float64

	// OnIteration, when non-nil, observes every halving step. Returning
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

// Result is the outcome of a Find call.
//
// Converged distinguishes a genuine convergence from an estimate
// returned after cap exhaustion or an observer abort — an unconverged
// answer is never indistinguishable from a converged one.
type Result struct {
	Root       float64
	Iterations int
	RelErr     float64
	Converged  bool
}
