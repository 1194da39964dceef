package core

import "math"

// Func is a continuous real-valued function of one real variable.
// All fixed parameters (loads, lengths, conductivities, …) are captured
// by the closure; a Func must be safe to call repeatedly with no side
// effects observable by the solvers.
type Func func(x float64) float64

// Sign returns -1, 0 or +1 for negative, zero and positive x.
// NaN maps to 0, which callers must treat as "no usable sign" —
// solvers reject non-finite values before consulting Sign.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
