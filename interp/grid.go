package interp

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n must be at least 2.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// MeanStep returns the mean difference between consecutive values of s,
// or NaN when s has fewer than two values.
func MeanStep(s []float64) float64 {
	d := Steps(s)
	if len(d) == 0 {
		return math.NaN()
	}
	return stat.Mean(d, nil)
}

// Steps returns the consecutive differences s[i+1]-s[i].
func Steps(s []float64) []float64 {
	if len(s) < 2 {
		return nil
	}
	return floats.SubTo(make([]float64, len(s)-1), s[1:], s[:len(s)-1])
}
