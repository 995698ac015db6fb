package physics

// Physical constants (CODATA 2014 values, as used by the line data tables).
const (
	C    = 2.99792458e+08 // speed of light [m/s]
	H    = 6.62607004e-34 // Planck's constant [J s]
	Kb   = 1.38064852e-23 // Boltzmann's constant [J/K]
	Amu  = 1.66053904e-27 // atomic mass unit [kg]
	TCMB = 2.72548000e+00 // CMB temperature [K]
)

// IntensityUnit is the unit label of specific intensities produced by this
// module.
const IntensityUnit = "W m^-2 Hz^-1 ster^-1"
