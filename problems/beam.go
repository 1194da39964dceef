package problems

import (
	"errors"

	"github.com/hiter-joe/Computing-in-CEE/core"
)

// ErrBadBeam indicates a BeamDeflection with non-physical parameters.
var ErrBadBeam = errors.New("problems: beam requires positive L, W, E and I")

// BeamDeflection parameterizes the elastic curve of a simply supported
// beam under uniform load. Units are the caller's business; the course
// works in SI (m, N/m, Pa, m⁴).
type BeamDeflection struct {
	L     float64 // span
	W     float64 // distributed load
	E     float64 // Young's modulus
	I     float64 // second moment of area
	Delta float64 // target deflection (negative = downward)
}

// Validate reports whether the parameters describe a physical beam.
func (p BeamDeflection) Validate() error {
	if p.L <= 0 || p.W <= 0 || p.E <= 0 || p.I <= 0 {
		return ErrBadBeam
	}
	return nil
}

// Func builds the root function
//
//	f(x) = Delta + W·x/(24·E·I)·(L³ - 2·L·x² + x³)
//
// whose zero is the position x where the beam's deflection equals
// Delta. On (0, L/2) the function changes sign whenever |Delta| is
// less than the midspan deflection, so it brackets for bisect.Find.
func (p BeamDeflection) Func() core.Func {
	c := p.W / (24 * p.E * p.I)
	return func(x float64) float64 {
		return p.Delta + c*x*(p.L*p.L*p.L-2*p.L*x*x+x*x*x)
	}
}

// MidspanDeflection returns the magnitude of the elastic-curve
// deflection at L/2, the largest on the span: 5·W·L⁴/(384·E·I).
// Useful for checking that Delta is reachable before bracketing.
func (p BeamDeflection) MidspanDeflection() float64 {
	return 5 * p.W * p.L * p.L * p.L * p.L / (384 * p.E * p.I)
}
