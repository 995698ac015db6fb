// Package physics provides the physical constants and blackbody helpers shared
// by the line radiative-transfer packages.
//
// All quantities are SI:
//
//   - [C]:    speed of light [m/s]
//   - [H]:    Planck constant [J s]
//   - [Kb]:   Boltzmann constant [J/K]
//   - [Amu]:  atomic mass unit [kg]
//   - [TCMB]: cosmic microwave background temperature [K]
//
// [Planck] evaluates the blackbody spectral radiance with an expm1
// formulation, so the Rayleigh-Jeans limit (h nu << kb T) keeps full
// precision. [CMBIntensity] is Planck at [TCMB].
package physics
