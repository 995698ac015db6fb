package interp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rt/internal/testutil"
)

func TestLinspace(t *testing.T) {
	got := Linspace(-1, 1, 5)
	testutil.RequireSliceNearlyEqual(t, got, []float64{-1, -0.5, 0, 0.5, 1}, 1e-15)

	got = Linspace(2, 3, 2)
	testutil.RequireSliceNearlyEqual(t, got, []float64{2, 3}, 0)
}

func TestSteps(t *testing.T) {
	got := Steps([]float64{1, 2, 4, 7})
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2, 3}, 0)

	if Steps([]float64{1}) != nil {
		t.Fatalf("Steps of one value should be nil")
	}
}

func TestMeanStep(t *testing.T) {
	testutil.RequireNearlyEqual(t, MeanStep([]float64{1, 2, 4, 7}), 2, 1e-15)
	testutil.RequireNearlyEqual(t, MeanStep(Linspace(0, 3, 31)), 0.1, 1e-15)

	if !math.IsNaN(MeanStep(nil)) || !math.IsNaN(MeanStep([]float64{5})) {
		t.Fatalf("MeanStep of fewer than two values should be NaN")
	}
}
