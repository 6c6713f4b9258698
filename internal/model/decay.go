package model

import "math"

// Decay is the two-isotope sequential decay model: a parent population
// (Sr-79) feeding a daughter (Rb-79) whose activity is observed. The two
// free parameters are the decay constants in s^-1.
type Decay struct {
	// InitialNuclei is the initial parent population in units of 10^12
	// nuclei, so that activity comes out in TBq.
	InitialNuclei float64
}

// Activity is the daughter activity in TBq at time t seconds.
func (d *Decay) Activity(t, lambdaRb, lambdaSr float64) float64 {
	prefactor := d.InitialNuclei * lambdaRb * lambdaSr / (lambdaRb - lambdaSr)
	return prefactor * (math.Exp(-lambdaSr*t) - math.Exp(-lambdaRb*t))
}

// HalfLife converts a decay constant in s^-1 to a half-life in minutes.
func HalfLife(decayConstant float64) float64 {
	return math.Ln2 / decayConstant / 60
}

// HalfLifeError propagates the decay-constant error onto the half-life by
// the relative-error rule, so the percentage uncertainty is preserved.
func HalfLifeError(halfLife, decayConstant, decayConstantError float64) float64 {
	return halfLife * decayConstantError / decayConstant
}
