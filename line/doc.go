// Package line computes radiative quantities of atomic and molecular line
// systems.
//
// A [Data] record describes the levels (statistical weights and energies) and
// the radiative transitions (rest frequency and Einstein coefficients) of one
// species. From it and a level population vector the package derives, per
// transition k with upper level i = IRad[k] and lower level j = JRad[k]:
//
//   - [Emissivity]: eta = h nu / 4pi * A * pop[i]
//   - [Opacity]:    chi = h nu / 4pi * (Ba * pop[j] - Bs * pop[i])
//   - [Source]:     S   = eta / chi
//
// Opacities are negative under population inversion and are returned as-is.
// Source functions are +-Inf or NaN where the opacity vanishes; callers must
// treat that as zero net opacity.
//
// [LTEPopulations] gives Boltzmann populations at a single temperature, and
// [DopplerWidth] and [Profile] give the thermal plus turbulent Gaussian line
// shape.
//
// None of the numeric functions validate their input. Temperatures must be
// positive and population vectors must have NLev entries; use
// [Data.Validate] at the boundary where data enters the program.
//
// # Usage
//
//	d, err := line.LoadData("co.yaml")
//	pop := line.LTEPopulations(d, 20)
//	eta := line.Emissivity(d, pop)
//	chi := line.Opacity(d, pop)
package line
