package interp

import (
	"runtime"
	"sync"
)

// Resampler evaluates a [Scheme] on the regular grid xs x ys.
// Grid points are ordered x-major: point (ix, iy) is at ix*len(ys)+iy.
type Resampler struct {
	scheme  Scheme
	nx, ny  int
	sites   []Site
	workers int
}

// NewResampler locates every grid point of xs x ys in s. workers bounds the
// goroutines used by [Resampler.Cube]; values < 1 select runtime.NumCPU().
func NewResampler(s Scheme, xs, ys []float64, workers int) *Resampler {
	nx, ny := len(xs), len(ys)

	qx := make([]float64, 0, nx*ny)
	qy := make([]float64, 0, nx*ny)
	for _, x := range xs {
		for _, y := range ys {
			qx = append(qx, x)
			qy = append(qy, y)
		}
	}

	if workers < 1 {
		workers = runtime.NumCPU()
	}

	return &Resampler{
		scheme:  s,
		nx:      nx,
		ny:      ny,
		sites:   s.Locate(qx, qy),
		workers: workers,
	}
}

// Shape returns the grid dimensions.
func (r *Resampler) Shape() (nx, ny int) { return r.nx, r.ny }

// Outside returns the number of grid points that fall outside the sampled
// region for the scheme (always 0 for [Nearest]).
func (r *Resampler) Outside() int {
	n := 0
	for _, s := range r.sites {
		if s.Outside() {
			n++
		}
	}
	return n
}

// Channel resamples one value set into dst (length nx*ny).
func (r *Resampler) Channel(dst, values []float64) {
	r.scheme.Eval(dst, values, r.sites)
}

// Cube resamples every bin and returns the (bin, x, y) row-major cube.
// Bins are processed concurrently; each writes a disjoint plane.
func (r *Resampler) Cube(bins [][]float64) []float64 {
	planeSize := r.nx * r.ny
	out := make([]float64, len(bins)*planeSize)
	if len(bins) == 0 {
		return out
	}

	workers := min(r.workers, len(bins))
	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				r.Channel(out[f*planeSize:(f+1)*planeSize], bins[f])
			}
		}()
	}

	for f := range bins {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	return out
}
