package interp

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rt/internal/testutil"
)

func resampleFixture(t *testing.T, m Method, workers int) (*Resampler, [][]float64) {
	t.Helper()

	x, y := testutil.DeterministicScatter(21, 120, 1)
	s, err := New(m, x, y)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	bins := make([][]float64, 7)
	for f := range bins {
		bins[f] = testutil.Plane(x, y, float64(f), 1+0.1*float64(f), -0.5)
	}

	return NewResampler(s, Linspace(-1.2, 1.2, 9), Linspace(-0.8, 0.8, 6), workers), bins
}

func TestResamplerCubeMatchesChannels(t *testing.T) {
	for _, m := range []Method{Nearest, Linear, Cubic} {
		for _, workers := range []int{1, 4, 0} {
			r, bins := resampleFixture(t, m, workers)

			nx, ny := r.Shape()
			if nx != 9 || ny != 6 {
				t.Fatalf("Shape() = (%d, %d), want (9, 6)", nx, ny)
			}

			got := r.Cube(bins)
			if len(got) != len(bins)*nx*ny {
				t.Fatalf("%v/%d: cube length %d", m, workers, len(got))
			}

			plane := make([]float64, nx*ny)
			for f, b := range bins {
				r.Channel(plane, b)
				for i, v := range plane {
					g := got[f*nx*ny+i]
					if g != v && !(math.IsNaN(g) && math.IsNaN(v)) {
						t.Fatalf("%v/%d: bin %d point %d: cube %v, channel %v", m, workers, f, i, g, v)
					}
				}
			}
		}
	}
}

func TestResamplerGridOrder(t *testing.T) {
	// Values equal to x place the x coordinate in every cell, so x-major
	// ordering shows as runs of ny equal values.
	x, y := testutil.RegularScatter(5, 5, 0, 4, 0, 4)
	s, err := New(Linear, x, y)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	xs := []float64{0.5, 1.5, 2.5}
	ys := []float64{1, 2}
	r := NewResampler(s, xs, ys, 1)

	got := make([]float64, 6)
	r.Channel(got, x)
	testutil.RequireSliceNearlyEqual(t, got, []float64{0.5, 0.5, 1.5, 1.5, 2.5, 2.5}, 1e-12)
}

func TestResamplerOutside(t *testing.T) {
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}
	grid := Linspace(-1, 2, 4) // -1, 0, 1, 2

	lin, err := New(Linear, x, y)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Only (0..1) x (0..1) lies inside: 4 of 16 points.
	if got := NewResampler(lin, grid, grid, 1).Outside(); got != 12 {
		t.Fatalf("Linear Outside() = %d, want 12", got)
	}

	near, err := New(Nearest, x, y)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := NewResampler(near, grid, grid, 1).Outside(); got != 0 {
		t.Fatalf("Nearest Outside() = %d, want 0", got)
	}
}

func TestResamplerNoBins(t *testing.T) {
	r, _ := resampleFixture(t, Nearest, 2)
	if got := r.Cube(nil); len(got) != 0 {
		t.Fatalf("Cube(nil) length %d", len(got))
	}
}
