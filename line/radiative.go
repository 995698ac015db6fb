package line

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-rt/physics"
)

// LTEPopulations returns the relative level populations of d in local
// thermodynamic equilibrium at temperature [K]:
//
//	pop[i] = weight[i] * exp(-energy[i] / (kb T)),  normalized to sum 1.
//
// temperature must be positive; this is not checked.
func LTEPopulations(d *Data, temperature float64) []float64 {
	pop := make([]float64, d.NLev)
	if d.NLev == 0 {
		return pop
	}

	kT := physics.Kb * temperature
	for i := range pop {
		pop[i] = d.Weight[i] * math.Exp(-d.Energy[i]/kT)
	}

	sum := floats.Sum(pop)
	for i := range pop {
		pop[i] /= sum
	}

	return pop
}

// Emissivity returns the line emissivity of every radiative transition:
//
//	eta[k] = h nu[k] / 4pi * A[k] * pop[IRad[k]].
func Emissivity(d *Data, pop []float64) []float64 {
	eta := make([]float64, d.NRad)
	if d.NRad == 0 {
		return eta
	}

	for k := range eta {
		eta[k] = photonEnergyPerSteradian(d.Frequency[k]) * d.A[k] * pop[d.IRad[k]]
	}

	return eta
}

// Opacity returns the line opacity of every radiative transition:
//
//	chi[k] = h nu[k] / 4pi * (Ba[k] * pop[j] - Bs[k] * pop[i])
//
// with i = IRad[k] (upper) and j = JRad[k] (lower). The result is negative
// under population inversion.
func Opacity(d *Data, pop []float64) []float64 {
	chi := make([]float64, d.NRad)
	if d.NRad == 0 {
		return chi
	}

	for k := range chi {
		i, j := d.IRad[k], d.JRad[k]
		chi[k] = photonEnergyPerSteradian(d.Frequency[k]) * (d.Ba[k]*pop[j] - d.Bs[k]*pop[i])
	}

	return chi
}

// Source returns the line source function eta/chi of every radiative
// transition. Entries where the opacity is zero are +-Inf (or NaN when the
// emissivity is zero too).
func Source(d *Data, pop []float64) []float64 {
	eta := Emissivity(d, pop)
	chi := Opacity(d, pop)

	for k := range eta {
		eta[k] /= chi[k]
	}

	return eta
}

// photonEnergyPerSteradian returns h nu / 4pi.
func photonEnergyPerSteradian(nu float64) float64 {
	return physics.H * nu / (4.0 * math.Pi)
}
