package problems

import "errors"

// ErrBadNetwork indicates MixingReactors flows that do not describe a
// realizable network.
var ErrBadNetwork = errors.New("problems: reactor network requires positive feeds and non-negative recycle")

// MixingReactors parameterizes a three-reactor cascade with recycle:
//
//	feed₁ ──▶ [R1] ──▶ [R2] ──▶ [R3] ──▶ exit
//	           ▲        ▲         │
//	           └────────┼─────────┘ recycle Q31
//	                  feed₂
//
// Q01 and Q02 are the two external feeds with tracer concentrations
// C01 and C02; Q31 is the recycle flow from R3 back to R1. Internal
// flows follow from continuity: Q12 = Q01 + Q31, Q23 = Q12 + Q02, and
// the exit carries Q23 - Q31.
type MixingReactors struct {
	Q01, C01 float64 // feed into R1: flow, concentration
	Q02, C02 float64 // feed into R2: flow, concentration
	Q31      float64 // recycle flow R3 → R1
}

// Validate reports whether the flow pattern is realizable.
func (p MixingReactors) Validate() error {
	if p.Q01 <= 0 || p.Q02 <= 0 || p.Q31 < 0 {
		return ErrBadNetwork
	}
	return nil
}

// System assembles the steady-state tracer mass balances as a
// linear system a·c = b over the three reactor concentrations:
//
//	R1: Q12·c1            - Q31·c3 = Q01·C01
//	R2: -Q12·c1 + Q23·c2           = Q02·C02
//	R3:          -Q23·c2 + Q23·c3 = 0
//
// ready for linsolve.Solve.
func (p MixingReactors) System() (a [][]float64, b []float64, err error) {
	if err = p.Validate(); err != nil {
		return nil, nil, err
	}

	q12 := p.Q01 + p.Q31
	q23 := q12 + p.Q02

	a = [][]float64{
		{q12, 0, -p.Q31},
		{-q12, q23, 0},
		{0, -q23, q23},
	}
	b = []float64{p.Q01 * p.C01, p.Q02 * p.C02, 0}

	return a, b, nil
}
