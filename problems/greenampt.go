package problems

import (
	"errors"
	"math"

	"github.com/hiter-joe/Computing-in-CEE/core"
)

// ErrBadSoil indicates GreenAmpt parameters outside the model's domain.
var ErrBadSoil = errors.New("problems: Green-Ampt requires positive K, Psi and DTheta")

// GreenAmpt parameterizes the Green-Ampt infiltration model for a
// ponded soil column. The course works in cm and hours.
type GreenAmpt struct {
	K      float64 // saturated hydraulic conductivity
	Psi    float64 // wetting-front suction head
	DTheta float64 // moisture deficit (porosity minus initial content)
}

// Validate reports whether the soil parameters are usable.
func (p GreenAmpt) Validate() error {
	if p.K <= 0 || p.Psi <= 0 || p.DTheta <= 0 {
		return ErrBadSoil
	}
	return nil
}

// Func builds the root function in cumulative infiltration F for a
// given ponding time t:
//
//	f(F) = F - Psi·DTheta·ln(1 + F/(Psi·DTheta)) - K·t
//
// The equation is implicit — F appears inside and outside the log —
// which is why the course solves it with secant.Find.
func (p GreenAmpt) Func(t float64) core.Func {
	pd := p.Psi * p.DTheta
	return func(infil float64) float64 {
		return infil - pd*math.Log(1+infil/pd) - p.K*t
	}
}

// Rate returns the infiltration rate for a cumulative infiltration F:
// K·(1 + Psi·DTheta/F). Evaluated at the root of Func(t), it gives the
// instantaneous rate at time t.
func (p GreenAmpt) Rate(infil float64) float64 {
	return p.K * (1 + p.Psi*p.DTheta/infil)
}
