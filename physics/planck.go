package physics

import "math"

// planckPrefactor is 2h/c^2.
const planckPrefactor = 2.0 * H / (C * C)

// Planck returns the blackbody spectral radiance B(T, nu) [W m^-2 Hz^-1 sr^-1].
//
// temperature must be positive; zero or negative values yield Inf or NaN.
func Planck(temperature, frequency float64) float64 {
	return planckPrefactor * frequency * frequency * frequency /
		math.Expm1(H*frequency/(Kb*temperature))
}

// PlanckSpectrum evaluates [Planck] at every frequency in freqs.
// Returns nil for empty input.
func PlanckSpectrum(temperature float64, freqs []float64) []float64 {
	if len(freqs) == 0 {
		return nil
	}

	out := make([]float64, len(freqs))
	for i, nu := range freqs {
		out[i] = Planck(temperature, nu)
	}

	return out
}

// CMBIntensity returns the intensity of the cosmic microwave background at
// frequency, i.e. Planck(TCMB, frequency).
func CMBIntensity(frequency float64) float64 {
	return Planck(TCMB, frequency)
}

// RelativeError returns the symmetric relative difference 2(a-b)/(a+b).
func RelativeError(a, b float64) float64 {
	return 2.0 * (a - b) / (a + b)
}
