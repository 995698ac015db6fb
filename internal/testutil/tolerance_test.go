package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffNaN(t *testing.T) {
	nan := math.NaN()

	d, err := MaxAbsDiff([]float64{nan, 1}, []float64{nan, 1})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for matching NaNs", d)
	}

	d, _ = MaxAbsDiff([]float64{nan, 1}, []float64{0, 1})
	if !math.IsNaN(d) {
		t.Fatalf("MaxAbsDiff = %v, want NaN for one-sided NaN", d)
	}
}

func TestNearlyEqual(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()

	tests := []struct {
		name string
		a, b float64
		rel  float64
		want bool
	}{
		{"identical", 1.5, 1.5, 0, true},
		{"within", 1e20, 1e20 * (1 + 1e-13), 1e-12, true},
		{"outside", 1.0, 1.001, 1e-6, false},
		{"zero", 0, 0, 0, true},
		{"both inf", inf, inf, 1e-9, true},
		{"opposite inf", inf, -inf, 1e-9, false},
		{"both nan", nan, nan, 1e-9, true},
		{"one nan", nan, 1, 1e-9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NearlyEqual(tc.a, tc.b, tc.rel); got != tc.want {
				t.Fatalf("NearlyEqual(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.rel, got, tc.want)
			}
		})
	}
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, 1, -1, 1e300})
}
