package model

import "math"

// Tunnel is the rectangular-barrier tunnelling model with image-charge
// corrections. The single free parameter is the barrier thickness in
// Angstroms; everything else is fixed by the material.
type Tunnel struct {
	BarrierHeight float64 // V0 in eV
	Wavenumber    float64 // sqrt(2m)/hbar in eV^-1/2 A^-1
	Lambda        float64 // image-charge constant
	InnerDistance float64 // first turning point d1, Angstroms
}

// NewTunnel computes the derived image-charge constants once; the returned
// model is never mutated.
func NewTunnel(barrierHeight, epsilon0, epsilonR, wavenumber float64) *Tunnel {
	lambda := math.Ln2 / (8 * math.Pi * epsilonR * epsilon0)
	return &Tunnel{
		BarrierHeight: barrierHeight,
		Wavenumber:    wavenumber,
		Lambda:        lambda,
		InnerDistance: 1.2 * lambda / barrierHeight,
	}
}

// OuterDistance is the second turning point d2 = thickness - d1.
func (t *Tunnel) OuterDistance(thickness float64) float64 {
	return thickness - t.InnerDistance
}

// AveragePotential is the image-charge-lowered barrier height between the
// two turning points.
func (t *Tunnel) AveragePotential(thickness float64) float64 {
	d1 := t.InnerDistance
	d2 := t.OuterDistance(thickness)
	lnTerm := math.Log(d2 * d2 / (d1 * d1))
	return t.BarrierHeight - 1.15*t.Lambda/(d2-d1)*lnTerm
}

// Transmission is the approximate transmission coefficient at the given
// energy (eV) for the given thickness (Angstroms). It is NaN where the
// average potential falls below the energy; callers route around that.
func (t *Tunnel) Transmission(energy, thickness float64) float64 {
	sqrtTerm := math.Sqrt(t.AveragePotential(thickness) - energy)
	exponent := -2 * (t.OuterDistance(thickness) - t.InnerDistance) * t.Wavenumber * sqrtTerm
	return math.Exp(exponent)
}

// LayerCount is the thickness expressed as a whole number of atomic layers.
func LayerCount(thickness, perLayer float64) int {
	return int(math.Round(thickness / perLayer))
}
