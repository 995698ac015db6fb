package line

import (
	"math"

	"github.com/cwbudde/algo-rt/physics"
)

// thermalFactor is 2 kb / (amu c^2).
const thermalFactor = 2.0 * physics.Kb / (physics.Amu * physics.C * physics.C)

// DopplerWidth returns the Doppler width [Hz] of transition k at temperature
// [K] with squared turbulent velocity vturb2 (in units of c^2):
//
//	dnu = nu[k] * sqrt(2 kb T / (amu c^2) * inverse_mass + vturb2)
func DopplerWidth(d *Data, k int, temperature, vturb2 float64) float64 {
	return d.Frequency[k] * math.Sqrt(thermalFactor*temperature*d.InverseMass+vturb2)
}

// Profile evaluates the area-normalized Gaussian line profile of transition k
// at frequency nu [Hz]:
//
//	phi(nu) = exp(-x^2) / (sqrt(pi) dnu),  x = (nu - nu[k]) / dnu
func Profile(d *Data, k int, temperature, vturb2, nu float64) float64 {
	width := DopplerWidth(d, k, temperature, vturb2)
	x := (nu - d.Frequency[k]) / width

	return math.Exp(-x*x) / (math.SqrtPi * width)
}
