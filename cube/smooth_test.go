package cube

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-rt/internal/testutil"
)

func TestSmoothPreservesSums(t *testing.T) {
	// Odd pixel count exercises the unpaired final spectrum.
	c := NewCube(20, 3, 3)
	for i := range c.Data {
		c.Data[i] = math.Sin(0.37*float64(i)) + 2
	}
	before := make([][]float64, 0, 9)
	for ix := range 3 {
		for iy := range 3 {
			before = append(before, c.Spectrum(ix, iy))
		}
	}

	if err := smooth(c, 4, 2); err != nil {
		t.Fatalf("smooth: %v", err)
	}

	k := 0
	for ix := range 3 {
		for iy := range 3 {
			testutil.RequireNearlyEqual(t, sum(c.Spectrum(ix, iy)), sum(before[k]), 1e-12)
			k++
		}
	}
}

func TestSmoothConstantSpectrum(t *testing.T) {
	c := NewCube(12, 2, 1)
	for i := range c.Data {
		c.Data[i] = 5
	}
	if err := Smooth(c, 2.5); err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	for i, v := range c.Data {
		if math.Abs(v-5) > 1e-12 {
			t.Fatalf("value %d = %v, want 5", i, v)
		}
	}
}

func TestSmoothImpulse(t *testing.T) {
	const n, centre = 41, 20
	fwhm := 6.0

	c := NewCube(n, 1, 2)
	c.Data[centre*2] = 1

	if err := smooth(c, fwhm, 1); err != nil {
		t.Fatalf("smooth: %v", err)
	}

	spectrum := c.Spectrum(0, 0)
	kernel := gaussianKernel(fwhm * fwhmToSigma)
	half := len(kernel) / 2
	for f := range n {
		want := 0.0
		if d := f - centre; d >= -half && d <= half {
			want = kernel[d+half]
		}
		if math.Abs(spectrum[f]-want) > 1e-14 {
			t.Fatalf("channel %d = %v, want %v", f, spectrum[f], want)
		}
	}

	// Half maximum sits fwhm/2 channels from the peak.
	testutil.RequireNearlyEqual(t, spectrum[centre+3]/spectrum[centre], 0.5, 1e-12)

	// The paired spectrum was zero and stays zero.
	for f, v := range c.Spectrum(0, 1) {
		if math.Abs(v) > 1e-14 {
			t.Fatalf("neighbour channel %d = %v, want 0", f, v)
		}
	}
}

func TestSmoothWorkersAgree(t *testing.T) {
	a := NewCube(9, 4, 3)
	for i := range a.Data {
		a.Data[i] = float64(i%7) - 3
	}
	b := &Cube{NFreq: a.NFreq, NPixX: a.NPixX, NPixY: a.NPixY, Data: append([]float64(nil), a.Data...)}

	if err := smooth(a, 1.5, 1); err != nil {
		t.Fatal(err)
	}
	if err := smooth(b, 1.5, 5); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, a.Data, b.Data, 1e-12)
}

func TestSmoothWorkerCounts(t *testing.T) {
	ref := NewCube(16, 7, 5)
	for i := range ref.Data {
		ref.Data[i] = math.Sin(float64(i) * 0.37)
	}
	want := &Cube{NFreq: ref.NFreq, NPixX: ref.NPixX, NPixY: ref.NPixY, Data: append([]float64(nil), ref.Data...)}
	if err := smooth(want, 2.5, 1); err != nil {
		t.Fatal(err)
	}

	// Pairs are independent, so any worker count gives identical output.
	for _, workers := range []int{0, -3, 2, 18, 64} {
		c := &Cube{NFreq: ref.NFreq, NPixX: ref.NPixX, NPixY: ref.NPixY, Data: append([]float64(nil), ref.Data...)}
		if err := smooth(c, 2.5, workers); err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		testutil.RequireSliceNearlyEqual(t, c.Data, want.Data, 0)
	}
}

func TestSmoothZeroAndInvalid(t *testing.T) {
	c := rampCube(4, 2, 2)
	orig := append([]float64(nil), c.Data...)

	if err := Smooth(c, 0); err != nil {
		t.Fatalf("Smooth(0): %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, c.Data, orig, 0)

	for _, fwhm := range []float64{-1, math.NaN()} {
		if err := Smooth(c, fwhm); !errors.Is(err, ErrSmoothWidth) {
			t.Fatalf("Smooth(%v) error = %v, want ErrSmoothWidth", fwhm, err)
		}
	}

	bad := &Cube{NFreq: 2, NPixX: 1, NPixY: 1, Data: make([]float64, 3)}
	if err := Smooth(bad, 1); !errors.Is(err, ErrCubeShape) {
		t.Fatalf("Smooth(bad) error = %v, want ErrCubeShape", err)
	}
}

func TestMirror(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 0},
		{-2, 5, 1},
		{5, 5, 4},
		{6, 5, 3},
		{-6, 5, 4},
		{10, 5, 0},
	}
	for _, tc := range tests {
		if got := mirror(tc.i, tc.n); got != tc.want {
			t.Fatalf("mirror(%d, %d) = %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}
